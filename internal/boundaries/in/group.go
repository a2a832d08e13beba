package in

import (
	"context"

	"github.com/bnema/corral/internal/domain"
)

// GroupService defines the contract for the group registry.
type GroupService interface {
	// Add registers a group and persists all groups. Adding an existing
	// name is a no-op.
	Add(ctx context.Context, name string, group *domain.Group) error

	Get(ctx context.Context, name string) (*domain.Group, error)
	List(ctx context.Context) []string
	Exists(name string) bool

	// Save persists all groups, overwriting the document.
	Save(ctx context.Context) error

	// SetMaster records master as the group's master and persists.
	SetMaster(ctx context.Context, group, master string) error

	// StageMember prepares appending member to group.
	StageMember(ctx context.Context, group, member string) (MemberChange, error)
}

// MemberChange is a staged group membership update.
type MemberChange interface {
	// Changed reports whether committing would modify the document.
	Changed() bool
	Commit(ctx context.Context) error
	Discard(ctx context.Context) error
	// Revert restores the document as it was before Commit.
	Revert(ctx context.Context) error
}

// GroupOrchestrator runs lifecycle operations across a group.
type GroupOrchestrator interface {
	Start(ctx context.Context, group string) error
	Stop(ctx context.Context, group string, remove bool) error
	Update(ctx context.Context, group string) error
	Restart(ctx context.Context, group string) error
	SetMaster(ctx context.Context, group, master string) error
}
