package filesystem

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"github.com/bnema/corral/internal/adapters/dto"
	"github.com/bnema/corral/internal/boundaries/out"
	"github.com/bnema/corral/internal/domain"
	"github.com/bnema/corral/internal/logging"
	"github.com/bnema/corral/pkg/validation"
)

const (
	containersDir = "containers"
	definitionExt = ".yaml"
	filePerm      = 0640
)

// DefinitionStore implements out.DefinitionStore on <root>/containers.
type DefinitionStore struct {
	dir string
	log *log.Logger
}

// NewDefinitionStore creates the containers directory when missing.
func NewDefinitionStore(rootDir string, logger *log.Logger) (*DefinitionStore, error) {
	dir := filepath.Join(rootDir, containersDir)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create containers directory: %w", err)
	}

	logger = logger.With(logging.FieldLayer, "adapter", logging.FieldAdapter, "filesystem")
	logger.Debug("definition store initialized", "dir", dir)

	return &DefinitionStore{dir: dir, log: logger}, nil
}

// List returns the names of every *.yaml file under the containers directory.
func (s *DefinitionStore) List(_ context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", s.dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") || filepath.Ext(e.Name()) != definitionExt {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), definitionExt))
	}
	sort.Strings(names)

	return names, nil
}

// Path returns <root>/containers/<name>.yaml.
func (s *DefinitionStore) Path(name string) string {
	return filepath.Join(s.dir, name+definitionExt)
}

// ReadFile decodes a YAML mapping from path.
func (s *DefinitionStore) ReadFile(_ context.Context, path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: definition file not found: %s", domain.ErrInvalidConfig, path)
		}
		return nil, fmt.Errorf("%w: failed to read %s: %v", domain.ErrInvalidConfig, path, err)
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: failed to parse %s: %v", domain.ErrInvalidConfig, path, err)
	}
	if raw == nil {
		raw = map[string]any{}
	}

	s.log.Debug("definition read", logging.FieldAction, "read", "path", path)
	return raw, nil
}

// WriteFile writes opts as YAML to path, replacing any existing file.
func (s *DefinitionStore) WriteFile(_ context.Context, path string, opts *domain.ContainerOptions) error {
	data, err := yaml.Marshal(dto.DefinitionFromOptions(opts))
	if err != nil {
		return fmt.Errorf("failed to encode definition %s: %w", opts.Name, err)
	}

	if err := writeFileAtomic(path, data, filePerm); err != nil {
		return err
	}

	s.log.Debug("definition written", logging.FieldAction, "write", "path", path)
	return nil
}

// Stage prepares writing opts to its canonical path.
func (s *DefinitionStore) Stage(_ context.Context, opts *domain.ContainerOptions) (out.StagedWrite, error) {
	target := s.Path(opts.Name)
	if err := validation.ValidatePathWithinRoot(s.dir, target); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidConfig, err)
	}

	data, err := yaml.Marshal(dto.DefinitionFromOptions(opts))
	if err != nil {
		return nil, fmt.Errorf("failed to encode definition %s: %w", opts.Name, err)
	}

	staged, err := stageFile(target, data, filePerm)
	if err != nil {
		return nil, err
	}

	s.log.Debug("definition staged", logging.FieldAction, "stage", "path", target)
	return staged, nil
}
