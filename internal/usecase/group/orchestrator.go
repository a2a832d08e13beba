package group

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/bnema/corral/internal/boundaries/in"
	"github.com/bnema/corral/internal/domain"
	"github.com/bnema/corral/internal/logging"
)

// Plan is a group resolved to runtime handles: the master, if any, and the
// other members in listing order.
type Plan struct {
	Group   *domain.Group
	Master  in.ContainerHandle
	Members []in.ContainerHandle
}

// startOrder is master first, then members.
func (p *Plan) startOrder() []in.ContainerHandle {
	if p.Master == nil {
		return p.Members
	}
	return append([]in.ContainerHandle{p.Master}, p.Members...)
}

// stopOrder is members first, master last.
func (p *Plan) stopOrder() []in.ContainerHandle {
	if p.Master == nil {
		return p.Members
	}
	return append(append([]in.ContainerHandle{}, p.Members...), p.Master)
}

// Orchestrator implements in.GroupOrchestrator. Sequences run one container
// at a time and stop at the first failure without rolling back.
type Orchestrator struct {
	containers in.ContainerService
	groups     in.GroupService
}

// NewOrchestrator creates a group orchestrator.
func NewOrchestrator(containers in.ContainerService, groups in.GroupService) *Orchestrator {
	return &Orchestrator{containers: containers, groups: groups}
}

// Resolve builds the plan for the named group.
func (o *Orchestrator) Resolve(ctx context.Context, name string) (*Plan, error) {
	g, err := o.groups.Get(ctx, name)
	if err != nil {
		return nil, err
	}

	plan := &Plan{Group: g}
	if g.HasMaster() {
		if plan.Master, err = o.containers.Get(ctx, g.Master); err != nil {
			return nil, fmt.Errorf("group '%s' master: %w", name, err)
		}
	}

	for _, member := range g.Followers() {
		h, err := o.containers.Get(ctx, member)
		if err != nil {
			return nil, fmt.Errorf("group '%s' member: %w", name, err)
		}
		plan.Members = append(plan.Members, h)
	}

	return plan, nil
}

// Start starts the master, then every other member.
func (o *Orchestrator) Start(ctx context.Context, name string) error {
	ctx, log := o.logger(ctx, "Start", name)

	plan, err := o.Resolve(ctx, name)
	if err != nil {
		return err
	}

	log.Info("starting group")
	if err := o.startAll(ctx, plan); err != nil {
		return err
	}
	log.Info("group started")
	return nil
}

// Stop stops every member, then the master, removing each when remove is set.
func (o *Orchestrator) Stop(ctx context.Context, name string, remove bool) error {
	ctx, log := o.logger(ctx, "Stop", name)

	plan, err := o.Resolve(ctx, name)
	if err != nil {
		return err
	}

	log.Info("stopping group", "remove", remove)
	if err := o.stopAll(ctx, plan, remove); err != nil {
		return err
	}
	log.Info("group stopped")
	return nil
}

// Update refreshes every image, then recreates the group: a full stop and
// remove followed by a full start.
func (o *Orchestrator) Update(ctx context.Context, name string) error {
	ctx, log := o.logger(ctx, "Update", name)

	plan, err := o.Resolve(ctx, name)
	if err != nil {
		return err
	}

	for _, h := range plan.startOrder() {
		log.Info("updating image", logging.FieldContainer, h.Name())
		if err := h.Update(ctx); err != nil {
			return fmt.Errorf("update '%s': %w", h.Name(), err)
		}
	}

	if err := o.stopAll(ctx, plan, true); err != nil {
		return err
	}
	if err := o.startAll(ctx, plan); err != nil {
		return err
	}

	log.Info("group updated and rebuilt")
	return nil
}

// Restart is not supported at the group level.
func (o *Orchestrator) Restart(_ context.Context, name string) error {
	return fmt.Errorf("%w: restart of group '%s', use stop and start", domain.ErrUnsupported, name)
}

// SetMaster designates a defined container as the group's master.
func (o *Orchestrator) SetMaster(ctx context.Context, group, master string) error {
	if !o.containers.Exists(master) {
		return fmt.Errorf("%w: '%s'", domain.ErrContainerNotDefined, master)
	}
	return o.groups.SetMaster(ctx, group, master)
}

func (o *Orchestrator) startAll(ctx context.Context, plan *Plan) error {
	_, log := logging.WithFields(ctx)
	for _, h := range plan.startOrder() {
		log.Info("starting container", logging.FieldContainer, h.Name())
		if err := h.Start(ctx); err != nil {
			return fmt.Errorf("start '%s': %w", h.Name(), err)
		}
	}
	return nil
}

func (o *Orchestrator) stopAll(ctx context.Context, plan *Plan, remove bool) error {
	_, log := logging.WithFields(ctx)
	for _, h := range plan.stopOrder() {
		log.Info("stopping container", logging.FieldContainer, h.Name(), "remove", remove)
		if err := h.Stop(ctx); err != nil {
			return fmt.Errorf("stop '%s': %w", h.Name(), err)
		}
		if remove {
			if err := h.Remove(ctx); err != nil {
				return fmt.Errorf("remove '%s': %w", h.Name(), err)
			}
		}
	}
	return nil
}

func (o *Orchestrator) logger(ctx context.Context, action, group string) (context.Context, *log.Logger) {
	return logging.WithFields(ctx,
		logging.FieldLayer, "usecase",
		logging.FieldUseCase, "group",
		logging.FieldAction, action,
		logging.FieldGroup, group,
	)
}
