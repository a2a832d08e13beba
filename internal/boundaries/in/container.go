// Package in defines input ports (interfaces) for use cases.
// These interfaces define the contract between driving adapters (CLI)
// and the business logic (use cases).
package in

import (
	"context"

	"github.com/bnema/corral/internal/domain"
)

// ContainerService defines the contract for the container registry.
type ContainerService interface {
	// Define validates the definition file at path and registers it.
	// Returns the container name.
	Define(ctx context.Context, path string) (string, error)

	// Get returns a runtime handle for a defined container.
	Get(ctx context.Context, name string) (ContainerHandle, error)

	// List returns all defined container names, sorted.
	List(ctx context.Context) []string

	// Exists reports whether name is defined.
	Exists(name string) bool
}

// ContainerHandle drives the lifecycle of one defined container.
type ContainerHandle interface {
	Name() string
	Options() *domain.ContainerOptions
	State() domain.HandleState

	// Start starts the existing instance, or runs a new one when none exists.
	Start(ctx context.Context) error

	// Run creates and starts a new detached instance.
	Run(ctx context.Context) error

	Stop(ctx context.Context) error
	Restart(ctx context.Context) error
	Remove(ctx context.Context) error

	// Rebuild stops, removes and starts the container.
	Rebuild(ctx context.Context) error

	// Update pulls or builds the image. Running instances are untouched.
	Update(ctx context.Context) error

	// Tag changes the image tag and rewrites the definition file.
	Tag(ctx context.Context, tag string) error

	// Dump writes the definition to <name>.yaml in the working directory
	// and returns the written path.
	Dump(ctx context.Context) (string, error)
}
