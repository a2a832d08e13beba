package docker

import (
	"fmt"
	"strings"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/network"
	"github.com/docker/go-connections/nat"

	"github.com/bnema/corral/internal/domain"
)

type containerSpec struct {
	config  *container.Config
	host    *container.HostConfig
	network *network.NetworkingConfig
}

// buildContainerSpec translates a RunConfig into engine create parameters.
func buildContainerSpec(cfg *domain.RunConfig) (*containerSpec, error) {
	exposed, bindings, err := nat.ParsePortSpecs(cfg.Ports)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedPort, err)
	}

	devices := make([]container.DeviceMapping, 0, len(cfg.Devices))
	for _, d := range cfg.Devices {
		devices = append(devices, parseDevice(d))
	}

	// Binds accept named volumes and create missing host directories.
	binds := make([]string, 0, len(cfg.Mounts))
	for _, m := range cfg.Mounts {
		binds = append(binds, fmt.Sprintf("%s:%s:%s", m.Source, m.Target, m.Mode))
	}

	config := &container.Config{
		Image:        cfg.Image,
		Env:          cfg.Env,
		ExposedPorts: exposed,
	}
	if len(cfg.Cmd) > 0 {
		config.Cmd = cfg.Cmd
	}

	host := &container.HostConfig{
		PortBindings:  bindings,
		Binds:         binds,
		CapAdd:        cfg.CapAdd,
		CapDrop:       cfg.CapDrop,
		DNS:           cfg.DNS,
		RestartPolicy: container.RestartPolicy{Name: container.RestartPolicyMode(cfg.RestartPolicy)},
		Resources:     container.Resources{Devices: devices},
	}
	if len(cfg.Tmpfs) > 0 {
		host.Tmpfs = cfg.Tmpfs
	}

	var netConfig *network.NetworkingConfig
	switch {
	case cfg.NetworkName != "":
		host.NetworkMode = container.NetworkMode(cfg.NetworkName)
		netConfig = &network.NetworkingConfig{
			EndpointsConfig: map[string]*network.EndpointSettings{
				cfg.NetworkName: {},
			},
		}
	case cfg.NetworkMode != "":
		host.NetworkMode = container.NetworkMode(cfg.NetworkMode)
	}

	return &containerSpec{config: config, host: host, network: netConfig}, nil
}

// parseDevice reads host[:container[:permissions]].
func parseDevice(spec string) container.DeviceMapping {
	parts := strings.SplitN(spec, ":", 3)
	d := container.DeviceMapping{
		PathOnHost:        parts[0],
		PathInContainer:   parts[0],
		CgroupPermissions: "rwm",
	}
	if len(parts) > 1 && parts[1] != "" {
		d.PathInContainer = parts[1]
	}
	if len(parts) > 2 && parts[2] != "" {
		d.CgroupPermissions = parts[2]
	}
	return d
}
