// Package domain contains pure business types without external dependencies.
// Nothing here talks to the engine or the filesystem.
package domain

import "slices"

// DefaultRestartPolicy is applied when a definition leaves restart empty.
const DefaultRestartPolicy = "always"

// ContainerOptions is the validated desired configuration of one container.
type ContainerOptions struct {
	Name      string
	Image     string
	ImageArgs []string

	CapAdd      []string
	CapDrop     []string
	Devices     []string
	DNS         []string
	Environment []string
	EnvFile     string

	Mounts []string
	Ports  []string
	Tmpfs  []string

	Network string // join a named network
	Net     string // share another container's namespace, or "host"
	Restart string
	Group   string

	ImageInsecure    bool
	ImageUsername    string
	ImagePassword    string
	ImageBuildPath   string
	ImageBuildSquash bool
	Tag              string
}

// DefaultContainerOptions returns a freshly constructed record with every
// optional field at its zero value and every list empty but non-nil.
func DefaultContainerOptions() *ContainerOptions {
	return &ContainerOptions{
		ImageArgs:   []string{},
		CapAdd:      []string{},
		CapDrop:     []string{},
		Devices:     []string{},
		DNS:         []string{},
		Environment: []string{},
		Mounts:      []string{},
		Ports:       []string{},
		Tmpfs:       []string{},
	}
}

// Clone returns a deep copy of the options.
func (o *ContainerOptions) Clone() *ContainerOptions {
	c := *o
	c.ImageArgs = cloneList(o.ImageArgs)
	c.CapAdd = cloneList(o.CapAdd)
	c.CapDrop = cloneList(o.CapDrop)
	c.Devices = cloneList(o.Devices)
	c.DNS = cloneList(o.DNS)
	c.Environment = cloneList(o.Environment)
	c.Mounts = cloneList(o.Mounts)
	c.Ports = cloneList(o.Ports)
	c.Tmpfs = cloneList(o.Tmpfs)
	return &c
}

// RestartPolicy returns the restart policy name with the default applied.
func (o *ContainerOptions) RestartPolicy() string {
	if o.Restart == "" {
		return DefaultRestartPolicy
	}
	return o.Restart
}

// BuildsLocally reports whether the image is built from a local context
// instead of being pulled from a registry.
func (o *ContainerOptions) BuildsLocally() bool {
	return o.ImageBuildPath != ""
}

func cloneList(in []string) []string {
	if in == nil {
		return []string{}
	}
	return slices.Clone(in)
}
