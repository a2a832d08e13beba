package domain

import "slices"

// Group is a named set of containers with an optional master. The master is
// expected to also be listed in Members but this is not enforced.
type Group struct {
	Name    string
	Master  string
	Members []string
}

// NewGroup returns an empty group.
func NewGroup(name string) *Group {
	return &Group{Name: name, Members: []string{}}
}

// HasMaster reports whether a master is designated.
func (g *Group) HasMaster() bool {
	return g.Master != ""
}

// HasMember reports whether name is listed in Members.
func (g *Group) HasMember(name string) bool {
	return slices.Contains(g.Members, name)
}

// AddMember appends name when it is not already listed. It reports whether
// the group changed.
func (g *Group) AddMember(name string) bool {
	if g.HasMember(name) {
		return false
	}
	g.Members = append(g.Members, name)
	return true
}

// Followers returns the members in listing order, excluding the master.
func (g *Group) Followers() []string {
	out := make([]string, 0, len(g.Members))
	for _, m := range g.Members {
		if m != g.Master {
			out = append(out, m)
		}
	}
	return out
}

// Clone returns a deep copy of the group.
func (g *Group) Clone() *Group {
	c := *g
	c.Members = slices.Clone(g.Members)
	if c.Members == nil {
		c.Members = []string{}
	}
	return &c
}
