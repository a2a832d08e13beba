// Package group implements the group registry and the group orchestrator.
package group

import (
	"context"
	"fmt"
	"maps"
	"slices"

	"github.com/bnema/corral/internal/boundaries/in"
	"github.com/bnema/corral/internal/boundaries/out"
	"github.com/bnema/corral/internal/domain"
	"github.com/bnema/corral/internal/logging"
	"github.com/bnema/corral/pkg/validation"
)

// Service implements in.GroupService on top of a GroupStore.
type Service struct {
	store  out.GroupStore
	groups map[string]*domain.Group
}

// NewService loads every persisted group.
func NewService(ctx context.Context, store out.GroupStore) (*Service, error) {
	groups, err := store.Load(ctx)
	if err != nil {
		return nil, err
	}

	_, log := logging.WithFields(ctx, logging.FieldLayer, "usecase", logging.FieldUseCase, "group")
	log.Debug("groups loaded", "count", len(groups))

	return &Service{store: store, groups: groups}, nil
}

// Add registers a group and persists all groups. A nil group registers an
// empty one.
func (s *Service) Add(ctx context.Context, name string, group *domain.Group) error {
	_, log := logging.WithFields(ctx,
		logging.FieldLayer, "usecase",
		logging.FieldUseCase, "group",
		logging.FieldAction, "Add",
		logging.FieldGroup, name,
	)

	if err := validation.ValidateName(name); err != nil {
		return fmt.Errorf("%w: group name: %v", domain.ErrInvalidConfig, err)
	}

	if _, ok := s.groups[name]; ok {
		log.Debug("group already exists")
		return nil
	}

	g := domain.NewGroup(name)
	if group != nil {
		g = group.Clone()
		g.Name = name
	}

	s.groups[name] = g
	if err := s.Save(ctx); err != nil {
		delete(s.groups, name)
		return err
	}

	log.Debug("group added")
	return nil
}

// Get returns a copy of the named group.
func (s *Service) Get(_ context.Context, name string) (*domain.Group, error) {
	g, ok := s.groups[name]
	if !ok {
		return nil, fmt.Errorf("%w: '%s'", domain.ErrGroupNotDefined, name)
	}
	return g.Clone(), nil
}

// List returns the group names, sorted.
func (s *Service) List(_ context.Context) []string {
	return slices.Sorted(maps.Keys(s.groups))
}

// Exists reports whether name is registered.
func (s *Service) Exists(name string) bool {
	_, ok := s.groups[name]
	return ok
}

// Save overwrites the persisted document with every known group.
func (s *Service) Save(ctx context.Context) error {
	return s.store.Save(ctx, s.groups)
}

// SetMaster designates master for group. Membership is not changed.
func (s *Service) SetMaster(ctx context.Context, group, master string) error {
	g, ok := s.groups[group]
	if !ok {
		return fmt.Errorf("%w: '%s'", domain.ErrGroupNotDefined, group)
	}

	previous := g.Master
	g.Master = master
	if err := s.Save(ctx); err != nil {
		g.Master = previous
		return err
	}

	_, log := logging.WithFields(ctx, logging.FieldLayer, "usecase", logging.FieldUseCase, "group", logging.FieldGroup, group)
	log.Debug("master set", "master", master)
	return nil
}

// StageMember prepares adding member to group. The groups document is
// written to a temporary file and only replaced on Commit.
func (s *Service) StageMember(ctx context.Context, group, member string) (in.MemberChange, error) {
	if _, ok := s.groups[group]; !ok {
		return nil, fmt.Errorf("%w: container '%s' declares group '%s', add the group first",
			domain.ErrGroupMissing, member, group)
	}

	previous := cloneGroups(s.groups)
	next := cloneGroups(s.groups)
	if !next[group].AddMember(member) {
		return &memberChange{}, nil
	}

	staged, err := s.store.Stage(ctx, next)
	if err != nil {
		return nil, err
	}

	return &memberChange{
		svc:      s,
		staged:   staged,
		previous: previous,
		next:     next,
	}, nil
}

// memberChange implements in.MemberChange. The zero value is a change that
// does nothing.
type memberChange struct {
	svc       *Service
	staged    out.StagedWrite
	previous  map[string]*domain.Group
	next      map[string]*domain.Group
	committed bool
}

func (c *memberChange) Changed() bool {
	return c.staged != nil
}

func (c *memberChange) Commit(_ context.Context) error {
	if c.staged == nil || c.committed {
		return nil
	}
	if err := c.staged.Commit(); err != nil {
		return err
	}
	c.committed = true
	c.svc.groups = c.next
	return nil
}

func (c *memberChange) Discard(_ context.Context) error {
	if c.staged == nil || c.committed {
		return nil
	}
	return c.staged.Discard()
}

func (c *memberChange) Revert(ctx context.Context) error {
	if !c.committed {
		return c.Discard(ctx)
	}
	if err := c.svc.store.Save(ctx, c.previous); err != nil {
		return err
	}
	c.svc.groups = c.previous
	c.committed = false
	return nil
}

func cloneGroups(groups map[string]*domain.Group) map[string]*domain.Group {
	cloned := make(map[string]*domain.Group, len(groups))
	for name, g := range groups {
		cloned[name] = g.Clone()
	}
	return cloned
}
