// Package validation checks names, tags and paths that end up on disk or are
// handed to the container engine.
package validation

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

// Names follow the engine's container name rules and double as file names.
var nameRegex = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9_.-]*$`)

// Tags: alphanumeric start, then dots, underscores and hyphens, 128 max.
var tagRegex = regexp.MustCompile(`^[a-zA-Z0-9_][a-zA-Z0-9._-]{0,127}$`)

// MaxNameLength is the maximum allowed length for container and group names.
const MaxNameLength = 128

// ValidateName validates a container or group name.
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("name cannot be empty")
	}

	if len(name) > MaxNameLength {
		return fmt.Errorf("name too long: %d chars (max %d)", len(name), MaxNameLength)
	}

	if strings.Contains(name, "..") {
		return fmt.Errorf("name contains path traversal sequence")
	}

	if !nameRegex.MatchString(name) {
		return fmt.Errorf("invalid name format: must start with a letter or digit and contain only letters, digits, '_', '.' or '-'")
	}

	return nil
}

// ValidateTag validates an image tag.
func ValidateTag(tag string) error {
	if tag == "" {
		return fmt.Errorf("tag cannot be empty")
	}

	if !tagRegex.MatchString(tag) {
		return fmt.Errorf("invalid tag format: %q", tag)
	}

	return nil
}

// ValidatePathWithinRoot validates that a constructed path stays within the root directory.
func ValidatePathWithinRoot(rootDir, fullPath string) error {
	cleanRoot := filepath.Clean(rootDir)
	cleanPath := filepath.Clean(fullPath)

	if !strings.HasPrefix(cleanPath, cleanRoot+string(filepath.Separator)) && cleanPath != cleanRoot {
		return fmt.Errorf("path escapes root directory")
	}

	return nil
}

// ExpandHome replaces a leading "~" with the given home directory.
func ExpandHome(path, home string) string {
	if path == "~" {
		return home
	}
	if strings.HasPrefix(path, "~/") || strings.HasPrefix(path, "~\\") {
		return filepath.Join(home, path[2:])
	}
	return path
}
