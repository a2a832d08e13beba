// Package docker implements the container runtime adapter using Docker API.
package docker

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/docker/docker/api/types"
	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/image"
	"github.com/docker/docker/api/types/network"
	"github.com/docker/docker/client"
	specs "github.com/opencontainers/image-spec/specs-go/v1"
)

// DefaultStopTimeout is used when Config.StopTimeout is zero.
const DefaultStopTimeout = 10 * time.Second

// dockerAPI is the subset of the engine client the runtime relies on.
type dockerAPI interface {
	Ping(ctx context.Context) (types.Ping, error)
	ServerVersion(ctx context.Context) (types.Version, error)

	ImageList(ctx context.Context, options image.ListOptions) ([]image.Summary, error)
	ImagePull(ctx context.Context, refStr string, options image.PullOptions) (io.ReadCloser, error)
	ImageBuild(ctx context.Context, buildContext io.Reader, options types.ImageBuildOptions) (types.ImageBuildResponse, error)

	ContainerCreate(
		ctx context.Context,
		config *container.Config,
		hostConfig *container.HostConfig,
		networkingConfig *network.NetworkingConfig,
		platform *specs.Platform,
		containerName string,
	) (container.CreateResponse, error)
	ContainerInspect(ctx context.Context, containerID string) (container.InspectResponse, error)
	ContainerStart(ctx context.Context, containerID string, options container.StartOptions) error
	ContainerStop(ctx context.Context, containerID string, options container.StopOptions) error
	ContainerRemove(ctx context.Context, containerID string, options container.RemoveOptions) error
	Close() error
}

// Config configures the engine connection.
type Config struct {
	// Host overrides DOCKER_HOST when set.
	Host        string
	StopTimeout time.Duration
}

// Runtime implements the ContainerRuntime interface using Docker API.
type Runtime struct {
	client      dockerAPI
	stopTimeout time.Duration
}

// NewRuntime creates a new Docker runtime instance.
func NewRuntime(cfg Config) (*Runtime, error) {
	opts := []client.Opt{client.FromEnv, client.WithAPIVersionNegotiation()}
	if cfg.Host != "" {
		opts = append(opts, client.WithHost(cfg.Host))
	}

	cli, err := client.NewClientWithOpts(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Docker client: %w", err)
	}

	return newRuntimeWithClient(cli, cfg), nil
}

func newRuntimeWithClient(api dockerAPI, cfg Config) *Runtime {
	timeout := cfg.StopTimeout
	if timeout <= 0 {
		timeout = DefaultStopTimeout
	}
	return &Runtime{client: api, stopTimeout: timeout}
}

// Close releases the engine client's connections.
func (r *Runtime) Close() error {
	return r.client.Close()
}
