package filesystem

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"github.com/bnema/corral/internal/adapters/dto"
	"github.com/bnema/corral/internal/boundaries/out"
	"github.com/bnema/corral/internal/domain"
	"github.com/bnema/corral/internal/logging"
)

const groupsFile = "groups.yaml"

// GroupStore implements out.GroupStore on <root>/groups.yaml.
type GroupStore struct {
	path string
	log  *log.Logger
}

// NewGroupStore creates the root directory when missing.
func NewGroupStore(rootDir string, logger *log.Logger) (*GroupStore, error) {
	if err := os.MkdirAll(rootDir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	return &GroupStore{
		path: filepath.Join(rootDir, groupsFile),
		log:  logger.With(logging.FieldLayer, "adapter", logging.FieldAdapter, "filesystem"),
	}, nil
}

// Path returns the location of the groups document.
func (s *GroupStore) Path() string {
	return s.path
}

// Load reads every group. A missing or empty document yields no groups.
func (s *GroupStore) Load(_ context.Context) (map[string]*domain.Group, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.log.Debug("no groups document", "path", s.path)
			return map[string]*domain.Group{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", s.path, err)
	}

	var doc map[string]dto.GroupDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: failed to parse %s: %v", domain.ErrInvalidConfig, s.path, err)
	}

	return dto.GroupsToDomain(doc), nil
}

// Save overwrites the document with groups.
func (s *GroupStore) Save(ctx context.Context, groups map[string]*domain.Group) error {
	staged, err := s.Stage(ctx, groups)
	if err != nil {
		return err
	}
	return staged.Commit()
}

// Stage prepares overwriting the document with groups.
func (s *GroupStore) Stage(_ context.Context, groups map[string]*domain.Group) (out.StagedWrite, error) {
	data, err := yaml.Marshal(dto.GroupsFromDomain(groups))
	if err != nil {
		return nil, fmt.Errorf("failed to encode groups: %w", err)
	}

	staged, err := stageFile(s.path, data, filePerm)
	if err != nil {
		return nil, err
	}

	s.log.Debug("groups staged", logging.FieldAction, "stage", "groups", len(groups))
	return staged, nil
}
