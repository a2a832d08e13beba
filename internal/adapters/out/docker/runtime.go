package docker

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	cerrdefs "github.com/containerd/errdefs"
	"github.com/docker/docker/api/types/container"

	"github.com/bnema/corral/internal/domain"
	"github.com/bnema/corral/internal/logging"
)

func (r *Runtime) logger(ctx context.Context, action string, keyvals ...any) *log.Logger {
	_, l := logging.WithFields(ctx, append([]any{
		logging.FieldLayer, "adapter",
		logging.FieldAdapter, "docker",
		logging.FieldAction, action,
	}, keyvals...)...)
	return l
}

// Ping checks if Docker is responsive.
func (r *Runtime) Ping(ctx context.Context) error {
	log := r.logger(ctx, "Ping")

	if _, err := r.client.Ping(ctx); err != nil {
		return domain.DockerErr(err, "failed to ping docker")
	}

	log.Debug("docker is responsive")
	return nil
}

// APIVersion returns the API version negotiated with the engine.
func (r *Runtime) APIVersion(ctx context.Context) (string, error) {
	v, err := r.client.ServerVersion(ctx)
	if err != nil {
		return "", domain.DockerErr(err, "failed to get docker version")
	}
	return v.APIVersion, nil
}

// FindContainer inspects the instance named name.
func (r *Runtime) FindContainer(ctx context.Context, name string) (*domain.Container, error) {
	log := r.logger(ctx, "FindContainer", logging.FieldContainer, name)

	resp, err := r.client.ContainerInspect(ctx, name)
	if err != nil {
		if cerrdefs.IsNotFound(err) {
			log.Debug("no container instance")
			return nil, fmt.Errorf("%w: %s", domain.ErrContainerNotFound, name)
		}
		return nil, domain.DockerErr(err, "failed to inspect container")
	}

	return toDomainContainer(resp), nil
}

// RunContainer creates and starts a detached instance.
func (r *Runtime) RunContainer(ctx context.Context, cfg *domain.RunConfig) (*domain.Container, error) {
	log := r.logger(ctx, "RunContainer", logging.FieldContainer, cfg.Name, "image", cfg.Image)

	spec, err := buildContainerSpec(cfg)
	if err != nil {
		return nil, err
	}

	resp, err := r.client.ContainerCreate(ctx, spec.config, spec.host, spec.network, nil, cfg.Name)
	if err != nil {
		return nil, domain.DockerErr(err, "failed to create container")
	}
	for _, w := range resp.Warnings {
		log.Warn("docker warning", "warning", w)
	}
	log.Debug("container created", "id", resp.ID)

	if err := r.client.ContainerStart(ctx, resp.ID, container.StartOptions{}); err != nil {
		return nil, domain.DockerErr(err, "failed to start container")
	}
	log.Info("container started", "id", shortID(resp.ID))

	inspected, err := r.client.ContainerInspect(ctx, resp.ID)
	if err != nil {
		return &domain.Container{ID: resp.ID, Name: cfg.Name, Image: cfg.Image}, nil
	}
	return toDomainContainer(inspected), nil
}

// StartContainer starts an existing instance.
func (r *Runtime) StartContainer(ctx context.Context, containerID string) error {
	log := r.logger(ctx, "StartContainer", "id", shortID(containerID))

	if err := r.client.ContainerStart(ctx, containerID, container.StartOptions{}); err != nil {
		return domain.DockerErr(err, "failed to start container")
	}

	log.Info("container started")
	return nil
}

// StopContainer stops an instance, waiting up to the configured timeout.
func (r *Runtime) StopContainer(ctx context.Context, containerID string) error {
	log := r.logger(ctx, "StopContainer", "id", shortID(containerID))

	timeout := int(r.stopTimeout.Seconds())
	if err := r.client.ContainerStop(ctx, containerID, container.StopOptions{Timeout: &timeout}); err != nil {
		return domain.DockerErr(err, "failed to stop container")
	}

	log.Info("container stopped")
	return nil
}

// RemoveContainer removes a stopped instance.
func (r *Runtime) RemoveContainer(ctx context.Context, containerID string) error {
	log := r.logger(ctx, "RemoveContainer", "id", shortID(containerID))

	if err := r.client.ContainerRemove(ctx, containerID, container.RemoveOptions{}); err != nil {
		return domain.DockerErr(err, "failed to remove container")
	}

	log.Info("container removed")
	return nil
}

func toDomainContainer(resp container.InspectResponse) *domain.Container {
	c := &domain.Container{}
	if resp.ContainerJSONBase != nil {
		c.ID = resp.ID
		c.Name = strings.TrimPrefix(resp.Name, "/")
		if resp.State != nil {
			c.Status = resp.State.Status
		}
	}
	if resp.Config != nil {
		c.Image = resp.Config.Image
	}
	return c
}

func shortID(id string) string {
	if len(id) > 12 {
		return id[:12]
	}
	return id
}
