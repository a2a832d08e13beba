// Package app provides the application initialization and wiring.
package app

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/bnema/corral/internal/adapters/out/docker"
	"github.com/bnema/corral/internal/adapters/out/envloader"
	"github.com/bnema/corral/internal/adapters/out/filesystem"
	"github.com/bnema/corral/internal/boundaries/in"
	"github.com/bnema/corral/internal/config"
	"github.com/bnema/corral/internal/logging"
	"github.com/bnema/corral/internal/usecase/container"
	"github.com/bnema/corral/internal/usecase/group"
)

// Kernel holds the services of one CLI invocation.
//
// Creating it does not contact the engine; the first lifecycle operation does.
type Kernel struct {
	cfg          *config.Config
	runtime      *docker.Runtime
	containers   *container.Service
	groups       *group.Service
	orchestrator *group.Orchestrator
}

// NewKernel wires adapters and use cases for cfg.
func NewKernel(ctx context.Context, cfg *config.Config, logger *log.Logger) (_ *Kernel, err error) {
	ctx = logging.WithLogger(ctx, logger)

	runtime, err := docker.NewRuntime(docker.Config{
		Host:        cfg.DockerHost,
		StopTimeout: cfg.StopTimeout(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create docker runtime: %w", err)
	}
	defer func() {
		if err != nil {
			_ = runtime.Close()
		}
	}()

	defs, err := filesystem.NewDefinitionStore(cfg.ConfigDir, logger)
	if err != nil {
		return nil, err
	}
	groupStore, err := filesystem.NewGroupStore(cfg.ConfigDir, logger)
	if err != nil {
		return nil, err
	}
	env := envloader.NewFileLoader(cfg.ConfigDir, logger)

	groups, err := group.NewService(ctx, groupStore)
	if err != nil {
		return nil, err
	}
	containers, err := container.NewService(ctx, runtime, defs, env, groups)
	if err != nil {
		return nil, err
	}

	logger.Debug("kernel ready", "config_dir", cfg.ConfigDir, "config_file", cfg.File)

	return &Kernel{
		cfg:          cfg,
		runtime:      runtime,
		containers:   containers,
		groups:       groups,
		orchestrator: group.NewOrchestrator(containers, groups),
	}, nil
}

func (k *Kernel) Close() error {
	if k == nil || k.runtime == nil {
		return nil
	}
	return k.runtime.Close()
}

func (k *Kernel) Config() *config.Config { return k.cfg }

func (k *Kernel) Containers() in.ContainerService { return k.containers }

func (k *Kernel) Groups() in.GroupService { return k.groups }

func (k *Kernel) Orchestrator() in.GroupOrchestrator { return k.orchestrator }

// EngineVersion pings the engine and returns its API version.
func (k *Kernel) EngineVersion(ctx context.Context) (string, error) {
	if err := k.runtime.Ping(ctx); err != nil {
		return "", err
	}
	return k.runtime.APIVersion(ctx)
}
