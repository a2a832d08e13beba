// Package envloader implements the environment variable loader adapter.
package envloader

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"

	"github.com/bnema/corral/internal/domain"
	"github.com/bnema/corral/internal/logging"
)

// FileLoader implements the EnvLoader interface with dotenv files.
type FileLoader struct {
	baseDir string
	log     *log.Logger
}

// NewFileLoader creates a loader resolving relative paths against baseDir.
func NewFileLoader(baseDir string, logger *log.Logger) *FileLoader {
	logger = logger.With(logging.FieldLayer, "adapter", logging.FieldAdapter, "envloader")
	logger.Debug("env loader initialized", "base_dir", baseDir)

	return &FileLoader{baseDir: baseDir, log: logger}
}

// LoadEnvFile reads path and returns its entries as KEY=VALUE strings
// sorted by key. A referenced file that does not exist is a configuration
// error.
func (l *FileLoader) LoadEnvFile(_ context.Context, path string) ([]string, error) {
	if !filepath.IsAbs(path) {
		path = filepath.Join(l.baseDir, path)
	}

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: env file not found: %s", domain.ErrInvalidConfig, path)
		}
		return nil, fmt.Errorf("failed to stat env file %s: %w", path, err)
	}

	values, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse env file %s: %v", domain.ErrInvalidConfig, path, err)
	}

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	env := make([]string, 0, len(keys))
	for _, k := range keys {
		env = append(env, k+"="+values[k])
	}

	l.log.Debug("env file loaded", logging.FieldAction, "LoadEnvFile", "env_file", path, "count", len(env))
	return env, nil
}
