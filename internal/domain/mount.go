package domain

import (
	"fmt"
	"strings"
)

// Mount modes accepted in a mount definition.
const (
	MountReadOnly  = "ro"
	MountReadWrite = "rw"
)

// Mount is a parsed host:container[:mode] bind definition.
type Mount struct {
	Source string
	Target string
	Mode   string
}

// ReadOnly reports whether the bind is mounted read-only.
func (m Mount) ReadOnly() bool {
	return m.Mode == MountReadOnly
}

// ParseMount parses a host:container[:mode] string. The mode defaults to rw.
// Anything but one or two separators, or a mode other than ro/rw, is malformed.
func ParseMount(spec string) (Mount, error) {
	parts := strings.Split(spec, ":")

	var m Mount
	switch len(parts) {
	case 2:
		m = Mount{Source: parts[0], Target: parts[1], Mode: MountReadWrite}
	case 3:
		if parts[2] != MountReadOnly && parts[2] != MountReadWrite {
			return Mount{}, fmt.Errorf("%w: %s", ErrMalformedMount, spec)
		}
		m = Mount{Source: parts[0], Target: parts[1], Mode: parts[2]}
	default:
		return Mount{}, fmt.Errorf("%w: %s", ErrMalformedMount, spec)
	}

	if m.Source == "" || m.Target == "" {
		return Mount{}, fmt.Errorf("%w: %s", ErrMalformedMount, spec)
	}

	return m, nil
}

// PortMapping is a parsed host:container[/proto] publish definition.
type PortMapping struct {
	Host      string
	Container string
	Protocol  string
}

// ParsePortMapping parses a host:container[/proto] string. The protocol
// defaults to tcp.
func ParsePortMapping(spec string) (PortMapping, error) {
	host, container, ok := strings.Cut(spec, ":")
	if !ok || host == "" || container == "" || strings.Contains(container, ":") {
		return PortMapping{}, fmt.Errorf("%w: %s", ErrMalformedPort, spec)
	}

	proto := "tcp"
	if port, p, found := strings.Cut(container, "/"); found {
		if port == "" || p == "" {
			return PortMapping{}, fmt.Errorf("%w: %s", ErrMalformedPort, spec)
		}
		container, proto = port, p
	}

	return PortMapping{Host: host, Container: container, Protocol: proto}, nil
}

// ParseTmpfs splits a path[:options] tmpfs definition.
func ParseTmpfs(spec string) (string, string) {
	path, options, _ := strings.Cut(spec, ":")
	return path, options
}
