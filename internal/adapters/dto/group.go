package dto

import "github.com/bnema/corral/internal/domain"

// GroupDocument is one entry of groups.yaml. A group without a master is
// written with an explicit null.
type GroupDocument struct {
	Master  *string  `yaml:"master"`
	Members []string `yaml:"members"`
}

// GroupsFromDomain converts groups to the document keyed by group name.
func GroupsFromDomain(groups map[string]*domain.Group) map[string]GroupDocument {
	doc := make(map[string]GroupDocument, len(groups))
	for name, g := range groups {
		entry := GroupDocument{Members: list(g.Members)}
		if g.HasMaster() {
			master := g.Master
			entry.Master = &master
		}
		doc[name] = entry
	}
	return doc
}

// GroupsToDomain converts a decoded document to domain groups.
func GroupsToDomain(doc map[string]GroupDocument) map[string]*domain.Group {
	groups := make(map[string]*domain.Group, len(doc))
	for name, entry := range doc {
		g := &domain.Group{Name: name, Members: list(entry.Members)}
		if entry.Master != nil {
			g.Master = *entry.Master
		}
		groups[name] = g
	}
	return groups
}
