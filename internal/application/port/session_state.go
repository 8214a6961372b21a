package port

import (
	"context"

	"github.com/vilosource/viloxterm/internal/domain/entity"
)

// WorkspaceStateProvider provides access to the current workspace state.
// Implemented by the workspace model to let the autosave service read state
// without importing it directly.
type WorkspaceStateProvider interface {
	GetWorkspaceState() *entity.WorkspaceState
}

// WorkspaceStateStore persists the single workspace_state.json file that
// holds the serialized tab/pane tree across restarts.
type WorkspaceStateStore interface {
	Save(ctx context.Context, state *entity.SessionState) error
	Load(ctx context.Context) (*entity.SessionState, error)
}
