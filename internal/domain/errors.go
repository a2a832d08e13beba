package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business-level errors that can occur in the system.
// ErrInvalidConfig and ErrDocker are the two error classes surfaced to the CLI;
// the more specific errors below wrap one of them.
var (
	// Error classes
	ErrInvalidConfig = errors.New("configuration error")
	ErrDocker        = errors.New("docker error")

	// Container errors
	ErrContainerNotDefined     = fmt.Errorf("%w: container not defined", ErrDocker)
	ErrContainerAlreadyDefined = fmt.Errorf("%w: container already defined", ErrDocker)
	ErrContainerBound          = fmt.Errorf("%w: container instance already exists, stop and remove it first", ErrDocker)
	ErrContainerNotFound       = fmt.Errorf("%w: container not found", ErrDocker)

	// Group errors
	ErrGroupNotDefined = fmt.Errorf("%w: group not defined", ErrDocker)
	ErrGroupMissing    = fmt.Errorf("%w: group that is not defined", ErrInvalidConfig)

	// Definition errors
	ErrMissingField    = fmt.Errorf("%w: required field missing", ErrInvalidConfig)
	ErrFieldType       = fmt.Errorf("%w: incorrect key type", ErrInvalidConfig)
	ErrListElement     = fmt.Errorf("%w: incorrect list contents", ErrInvalidConfig)
	ErrMalformedMount  = fmt.Errorf("%w: malformed path", ErrInvalidConfig)
	ErrMalformedPort   = fmt.Errorf("%w: malformed port", ErrInvalidConfig)
	ErrNetworkConflict = fmt.Errorf("%w: 'network' and 'net' are mutually exclusive", ErrInvalidConfig)

	// Operation errors
	ErrUnsupported = errors.New("operation not supported")
)

// IsConfigError reports whether err belongs to the configuration error class.
func IsConfigError(err error) bool {
	return errors.Is(err, ErrInvalidConfig)
}

// IsDockerError reports whether err belongs to the docker error class.
func IsDockerError(err error) bool {
	return errors.Is(err, ErrDocker)
}

// DockerErr wraps an engine failure into the docker error class, keeping
// the original error in the chain.
func DockerErr(err error, msg string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrDocker) {
		return fmt.Errorf("%s: %w", msg, err)
	}
	return fmt.Errorf("%w: %s: %w", ErrDocker, msg, err)
}
