package out

import (
	"context"

	"github.com/bnema/corral/internal/domain"
)

// StagedWrite is a file write prepared in a temporary location. Commit moves
// it into place atomically; Discard drops it. Calling either after the other
// is a no-op.
type StagedWrite interface {
	Commit() error
	Discard() error
}

// DefinitionStore defines the contract for container definition files.
type DefinitionStore interface {
	// List returns the names of the definitions found on disk.
	List(ctx context.Context) ([]string, error)

	// Path returns the canonical file location for a definition name.
	Path(name string) string

	// ReadFile decodes any definition file into its raw mapping.
	ReadFile(ctx context.Context, path string) (map[string]any, error)

	// WriteFile writes options to an arbitrary path.
	WriteFile(ctx context.Context, path string, opts *domain.ContainerOptions) error

	// Stage prepares writing opts to its canonical path.
	Stage(ctx context.Context, opts *domain.ContainerOptions) (StagedWrite, error)
}

// GroupStore defines the contract for the groups document.
type GroupStore interface {
	// Load returns every persisted group. A missing document yields an
	// empty map.
	Load(ctx context.Context) (map[string]*domain.Group, error)

	// Save overwrites the document with groups.
	Save(ctx context.Context, groups map[string]*domain.Group) error

	// Stage prepares overwriting the document with groups.
	Stage(ctx context.Context, groups map[string]*domain.Group) (StagedWrite, error)
}
