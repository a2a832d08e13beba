// Package container implements the container registry and the runtime
// handles that drive one container through the engine.
package container

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"os"
	"slices"

	"github.com/bnema/corral/internal/boundaries/in"
	"github.com/bnema/corral/internal/boundaries/out"
	"github.com/bnema/corral/internal/domain"
	"github.com/bnema/corral/internal/logging"
)

// Service implements in.ContainerService.
type Service struct {
	runtime out.ContainerRuntime
	defs    out.DefinitionStore
	env     out.EnvLoader
	groups  in.GroupService

	// index maps a container name to its definition file.
	index   map[string]string
	workDir func() (string, error)
}

// NewService indexes the definitions present on disk. Definitions added by
// other processes afterwards are not picked up.
func NewService(
	ctx context.Context,
	runtime out.ContainerRuntime,
	defs out.DefinitionStore,
	env out.EnvLoader,
	groups in.GroupService,
) (*Service, error) {
	names, err := defs.List(ctx)
	if err != nil {
		return nil, err
	}

	index := make(map[string]string, len(names))
	for _, name := range names {
		index[name] = defs.Path(name)
	}

	_, log := logging.WithFields(ctx, logging.FieldLayer, "usecase", logging.FieldUseCase, "container")
	log.Debug("definitions indexed", "count", len(index))

	return &Service{
		runtime: runtime,
		defs:    defs,
		env:     env,
		groups:  groups,
		index:   index,
		workDir: os.Getwd,
	}, nil
}

// Define validates the definition at path and registers it. When the
// definition declares a group, the group document and the container file
// are both staged before anything is committed: the group is committed
// first and restored if the container commit fails.
func (s *Service) Define(ctx context.Context, path string) (string, error) {
	ctx, log := logging.WithFields(ctx,
		logging.FieldLayer, "usecase",
		logging.FieldUseCase, "container",
		logging.FieldAction, "Define",
		"path", path,
	)

	raw, err := s.defs.ReadFile(ctx, path)
	if err != nil {
		return "", err
	}

	opts, err := domain.ValidateOptions(raw)
	if err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}

	if s.Exists(opts.Name) {
		return "", fmt.Errorf("%w: '%s'", domain.ErrContainerAlreadyDefined, opts.Name)
	}

	var change in.MemberChange
	if opts.Group != "" {
		change, err = s.groups.StageMember(ctx, opts.Group, opts.Name)
		if err != nil {
			return "", err
		}
	}

	staged, err := s.defs.Stage(ctx, opts)
	if err != nil {
		return "", errors.Join(err, discard(ctx, change))
	}

	if change != nil {
		if err := change.Commit(ctx); err != nil {
			return "", errors.Join(err, change.Discard(ctx), staged.Discard())
		}
	}

	if err := staged.Commit(); err != nil {
		if change != nil {
			if rerr := change.Revert(ctx); rerr != nil {
				return "", errors.Join(err, fmt.Errorf("failed to restore group '%s': %w", opts.Group, rerr))
			}
		}
		return "", err
	}

	s.index[opts.Name] = s.defs.Path(opts.Name)

	log.Info("container defined", logging.FieldContainer, opts.Name, logging.FieldGroup, opts.Group)
	return opts.Name, nil
}

// Get re-reads and re-validates the definition and returns an Unbound
// handle for it.
func (s *Service) Get(ctx context.Context, name string) (in.ContainerHandle, error) {
	h, err := s.handle(ctx, name)
	if err != nil {
		return nil, err
	}
	return h, nil
}

func (s *Service) handle(ctx context.Context, name string) (*Handle, error) {
	path, ok := s.index[name]
	if !ok {
		return nil, fmt.Errorf("%w: '%s'", domain.ErrContainerNotDefined, name)
	}

	raw, err := s.defs.ReadFile(ctx, path)
	if err != nil {
		return nil, err
	}

	opts, err := domain.ValidateOptions(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return &Handle{
		opts:    opts,
		path:    path,
		image:   NewImage(s.runtime, opts),
		runtime: s.runtime,
		defs:    s.defs,
		env:     s.env,
		workDir: s.workDir,
	}, nil
}

// List returns the defined names, sorted.
func (s *Service) List(_ context.Context) []string {
	return slices.Sorted(maps.Keys(s.index))
}

func (s *Service) Exists(name string) bool {
	_, ok := s.index[name]
	return ok
}

func discard(ctx context.Context, change in.MemberChange) error {
	if change == nil {
		return nil
	}
	return change.Discard(ctx)
}
