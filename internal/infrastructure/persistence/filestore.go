// Package persistence adapts the application layer's storage ports to the
// local filesystem.
package persistence

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vilosource/viloxterm/internal/application/port"
	"github.com/vilosource/viloxterm/internal/domain/entity"
)

const workspaceStateFileName = "workspace_state.json"

// FileWorkspaceStateStore persists workspace_state.json under a single
// directory, one file per (organization, application) install the way the
// settings engine lays out its own INI files.
type FileWorkspaceStateStore struct {
	fs  port.FileSystem
	dir string
}

// NewFileWorkspaceStateStore creates a store rooted at dir. dir is created
// on first Save if it does not already exist.
func NewFileWorkspaceStateStore(fs port.FileSystem, dir string) *FileWorkspaceStateStore {
	return &FileWorkspaceStateStore{fs: fs, dir: dir}
}

func (s *FileWorkspaceStateStore) path() string {
	return filepath.Join(s.dir, workspaceStateFileName)
}

// Save writes state as JSON, replacing any existing file atomically via a
// temp-file-then-rename so a crash mid-write never corrupts the last good
// snapshot.
func (s *FileWorkspaceStateStore) Save(ctx context.Context, state *entity.SessionState) error {
	if state == nil {
		return fmt.Errorf("workspace state is required")
	}

	isDir, err := s.fs.IsDirectory(ctx, s.dir)
	if err != nil || !isDir {
		if mkErr := os.MkdirAll(s.dir, 0o755); mkErr != nil {
			return fmt.Errorf("create settings dir: %w", mkErr)
		}
	}

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal workspace state: %w", err)
	}

	tmp := s.path() + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write workspace state: %w", err)
	}
	if err := os.Rename(tmp, s.path()); err != nil {
		return fmt.Errorf("finalize workspace state: %w", err)
	}
	return nil
}

// Load reads and decodes workspace_state.json. A missing file is not an
// error: it returns (nil, nil) so the caller can fall back to a fresh
// workspace.
func (s *FileWorkspaceStateStore) Load(ctx context.Context) (*entity.SessionState, error) {
	exists, err := s.fs.Exists(ctx, s.path())
	if err != nil {
		return nil, fmt.Errorf("check workspace state: %w", err)
	}
	if !exists {
		return nil, nil
	}

	data, err := os.ReadFile(s.path())
	if err != nil {
		return nil, fmt.Errorf("read workspace state: %w", err)
	}

	var state entity.SessionState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("parse workspace state: %w", err)
	}
	return &state, nil
}

var _ port.WorkspaceStateStore = (*FileWorkspaceStateStore)(nil)
