package container

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/bnema/corral/internal/boundaries/out"
	"github.com/bnema/corral/internal/domain"
	"github.com/bnema/corral/internal/logging"
	"github.com/bnema/corral/pkg/validation"
)

// Handle implements in.ContainerHandle. It starts Unbound and becomes Bound
// once the engine instance for the container has been looked up or created.
// Remove is the only transition back to Unbound.
type Handle struct {
	opts    *domain.ContainerOptions
	path    string
	image   *Image
	runtime out.ContainerRuntime
	defs    out.DefinitionStore
	env     out.EnvLoader
	workDir func() (string, error)

	state    domain.HandleState
	instance *domain.Container
}

func (h *Handle) Name() string {
	return h.opts.Name
}

// Options returns a copy of the current options.
func (h *Handle) Options() *domain.ContainerOptions {
	return h.opts.Clone()
}

func (h *Handle) State() domain.HandleState {
	return h.state
}

// Image returns the image handle the container runs from.
func (h *Handle) Image() *Image {
	return h.image
}

// Start starts the existing instance, or runs a new one when the engine
// knows none by this name.
func (h *Handle) Start(ctx context.Context) error {
	ctx, log := h.logger(ctx, "Start")

	found, err := h.resolve(ctx)
	if err != nil {
		return err
	}
	if !found {
		log.Debug("no instance, running a new one")
		return h.Run(ctx)
	}

	if err := h.runtime.StartContainer(ctx, h.instance.ID); err != nil {
		return err
	}
	log.Info("container started", "id", h.instance.ID)
	return nil
}

// Run creates and starts a detached instance, fetching the image first when
// it is not present locally.
func (h *Handle) Run(ctx context.Context) error {
	ctx, log := h.logger(ctx, "Run")

	if h.state == domain.HandleBound {
		return fmt.Errorf("%w: '%s'", domain.ErrContainerBound, h.Name())
	}

	if !h.image.Exists(ctx) {
		if err := h.image.Pull(ctx); err != nil {
			return err
		}
	}

	var extraEnv []string
	if h.opts.EnvFile != "" {
		env, err := h.env.LoadEnvFile(ctx, h.opts.EnvFile)
		if err != nil {
			return err
		}
		extraEnv = env
	}

	cfg, err := domain.BuildRunConfig(h.opts, h.image.Ref(), extraEnv)
	if err != nil {
		return err
	}

	c, err := h.runtime.RunContainer(ctx, cfg)
	if err != nil {
		return err
	}
	h.bind(c)

	log.Info("container running", "id", c.ID, "image", cfg.Image)
	return nil
}

func (h *Handle) Stop(ctx context.Context) error {
	ctx, log := h.logger(ctx, "Stop")

	if err := h.requireInstance(ctx); err != nil {
		return err
	}
	if err := h.runtime.StopContainer(ctx, h.instance.ID); err != nil {
		return err
	}
	log.Info("container stopped", "id", h.instance.ID)
	return nil
}

// Restart stops then starts the container. These are two engine calls.
func (h *Handle) Restart(ctx context.Context) error {
	if err := h.Stop(ctx); err != nil {
		return err
	}
	return h.Start(ctx)
}

// Remove deletes the instance and returns the handle to Unbound.
func (h *Handle) Remove(ctx context.Context) error {
	ctx, log := h.logger(ctx, "Remove")

	if err := h.requireInstance(ctx); err != nil {
		return err
	}
	id := h.instance.ID
	if err := h.runtime.RemoveContainer(ctx, id); err != nil {
		return err
	}
	h.unbind()

	log.Info("container removed", "id", id)
	return nil
}

// Rebuild recreates the container from its stored definition.
func (h *Handle) Rebuild(ctx context.Context) error {
	if err := h.Stop(ctx); err != nil {
		return err
	}
	if err := h.Remove(ctx); err != nil {
		return err
	}
	return h.Start(ctx)
}

// Update pulls or builds the image. The running instance keeps its image
// until Rebuild.
func (h *Handle) Update(ctx context.Context) error {
	ctx, _ = h.logger(ctx, "Update")
	return h.image.Pull(ctx)
}

// Tag switches the image tag and rewrites the definition file when the
// handle was loaded from one.
func (h *Handle) Tag(ctx context.Context, tag string) error {
	ctx, log := h.logger(ctx, "Tag")

	if err := validation.ValidateTag(tag); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidConfig, err)
	}

	previous := h.opts.Tag
	h.opts.Tag = tag
	if h.path != "" {
		if err := h.defs.WriteFile(ctx, h.path, h.opts); err != nil {
			h.opts.Tag = previous
			return err
		}
	}
	h.image = NewImage(h.runtime, h.opts)

	log.Info("tag changed", "from", previous, "to", tag)
	return nil
}

// Dump writes the current options to <name>.yaml in the working directory.
func (h *Handle) Dump(ctx context.Context) (string, error) {
	ctx, log := h.logger(ctx, "Dump")

	dir, err := h.workDir()
	if err != nil {
		return "", fmt.Errorf("failed to get working directory: %w", err)
	}

	path := filepath.Join(dir, h.Name()+".yaml")
	if err := h.defs.WriteFile(ctx, path, h.opts); err != nil {
		return "", err
	}

	log.Debug("definition dumped", "path", path)
	return path, nil
}

// resolve looks the instance up by name while Unbound. It reports whether
// an instance exists.
func (h *Handle) resolve(ctx context.Context) (bool, error) {
	if h.state == domain.HandleBound {
		return true, nil
	}

	c, err := h.runtime.FindContainer(ctx, h.Name())
	if errors.Is(err, domain.ErrContainerNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	h.bind(c)
	return true, nil
}

func (h *Handle) requireInstance(ctx context.Context) error {
	found, err := h.resolve(ctx)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("%w: '%s'", domain.ErrContainerNotFound, h.Name())
	}
	return nil
}

func (h *Handle) bind(c *domain.Container) {
	h.instance = c
	h.state = domain.HandleBound
}

func (h *Handle) unbind() {
	h.instance = nil
	h.state = domain.HandleUnbound
}

func (h *Handle) logger(ctx context.Context, action string) (context.Context, *log.Logger) {
	return logging.WithFields(ctx,
		logging.FieldLayer, "usecase",
		logging.FieldUseCase, "container",
		logging.FieldAction, action,
		logging.FieldContainer, h.Name(),
	)
}
