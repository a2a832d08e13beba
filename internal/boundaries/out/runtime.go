// Package out defines output ports (interfaces) for infrastructure.
// These interfaces define the contract between use cases and driven adapters
// (Docker, filesystem, env files).
package out

import (
	"context"

	"github.com/bnema/corral/internal/domain"
)

// ContainerRuntime defines the contract for container engine operations.
// Failures are reported in the domain.ErrDocker class.
type ContainerRuntime interface {
	// Runtime information
	Ping(ctx context.Context) error
	APIVersion(ctx context.Context) (string, error)

	// Image operations
	ImageExists(ctx context.Context, imageRef string) (bool, error)
	PullImage(ctx context.Context, req domain.PullRequest) error
	BuildImage(ctx context.Context, req domain.BuildRequest) error

	// FindContainer looks up an instance by name and returns
	// domain.ErrContainerNotFound when there is none.
	FindContainer(ctx context.Context, name string) (*domain.Container, error)

	// Container lifecycle
	RunContainer(ctx context.Context, cfg *domain.RunConfig) (*domain.Container, error)
	StartContainer(ctx context.Context, containerID string) error
	StopContainer(ctx context.Context, containerID string) error
	RemoveContainer(ctx context.Context, containerID string) error
}
