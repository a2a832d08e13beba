package domain

import (
	"fmt"
	"slices"
)

// Container represents a live engine instance.
type Container struct {
	ID     string
	Name   string
	Image  string
	Status string
}

// HandleState is the lifecycle state of a runtime handle within one process.
type HandleState int

const (
	// HandleUnbound means no live engine instance has been resolved yet.
	HandleUnbound HandleState = iota
	// HandleBound means the live engine instance is known.
	HandleBound
)

func (s HandleState) String() string {
	switch s {
	case HandleUnbound:
		return "unbound"
	case HandleBound:
		return "bound"
	}
	return fmt.Sprintf("HandleState(%d)", int(s))
}

// HostNetwork is the literal net value that selects the host namespace.
const HostNetwork = "host"

// RunConfig holds the engine-neutral parameters for creating a container.
type RunConfig struct {
	Name          string
	Image         string
	Cmd           []string
	Env           []string
	CapAdd        []string
	CapDrop       []string
	Devices       []string
	DNS           []string
	Mounts        []Mount
	Ports         []string
	Tmpfs         map[string]string
	NetworkName   string // named network to join
	NetworkMode   string // "host" or "container:<name>"
	RestartPolicy string
}

// BuildRunConfig translates validated options into run parameters. extraEnv
// is appended after the definition's own environment.
func BuildRunConfig(opts *ContainerOptions, image ImageRef, extraEnv []string) (*RunConfig, error) {
	cfg := &RunConfig{
		Name:          opts.Name,
		Image:         image.String(),
		Cmd:           slices.Clone(opts.ImageArgs),
		Env:           append(slices.Clone(opts.Environment), extraEnv...),
		CapAdd:        slices.Clone(opts.CapAdd),
		CapDrop:       slices.Clone(opts.CapDrop),
		Devices:       slices.Clone(opts.Devices),
		DNS:           slices.Clone(opts.DNS),
		Ports:         slices.Clone(opts.Ports),
		Tmpfs:         map[string]string{},
		RestartPolicy: opts.RestartPolicy(),
	}

	for _, spec := range opts.Mounts {
		m, err := ParseMount(spec)
		if err != nil {
			return nil, err
		}
		cfg.Mounts = append(cfg.Mounts, m)
	}

	for _, spec := range opts.Tmpfs {
		path, options := ParseTmpfs(spec)
		cfg.Tmpfs[path] = options
	}

	switch {
	case opts.Network != "" && opts.Net != "":
		return nil, ErrNetworkConflict
	case opts.Network != "":
		cfg.NetworkName = opts.Network
	case opts.Net == HostNetwork:
		cfg.NetworkMode = HostNetwork
	case opts.Net != "":
		cfg.NetworkMode = "container:" + opts.Net
	}

	return cfg, nil
}
