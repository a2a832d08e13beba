package filesystem

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// stagedFile implements out.StagedWrite with a temporary sibling file that
// is renamed over the target on commit.
type stagedFile struct {
	tmpPath string
	target  string
	done    bool
}

func stageFile(target string, data []byte, perm fs.FileMode) (*stagedFile, error) {
	dir := filepath.Dir(target)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(target)+".*.tmp")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp file for %s: %w", target, err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return nil, fmt.Errorf("failed to write %s: %w", tmpPath, err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return nil, fmt.Errorf("failed to sync %s: %w", tmpPath, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return nil, fmt.Errorf("failed to close %s: %w", tmpPath, err)
	}
	if err := os.Chmod(tmpPath, perm); err != nil {
		_ = os.Remove(tmpPath)
		return nil, fmt.Errorf("failed to set permissions on %s: %w", tmpPath, err)
	}

	return &stagedFile{tmpPath: tmpPath, target: target}, nil
}

func (s *stagedFile) Commit() error {
	if s.done {
		return nil
	}
	s.done = true

	if err := os.Rename(s.tmpPath, s.target); err != nil {
		_ = os.Remove(s.tmpPath)
		return fmt.Errorf("failed to move %s into place: %w", s.target, err)
	}
	return nil
}

func (s *stagedFile) Discard() error {
	if s.done {
		return nil
	}
	s.done = true

	if err := os.Remove(s.tmpPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to remove %s: %w", s.tmpPath, err)
	}
	return nil
}

func writeFileAtomic(target string, data []byte, perm fs.FileMode) error {
	staged, err := stageFile(target, data, perm)
	if err != nil {
		return err
	}
	return staged.Commit()
}
