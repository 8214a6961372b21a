package usecase

import (
	"context"
	"fmt"

	"github.com/vilosource/viloxterm/internal/application/port"
	"github.com/vilosource/viloxterm/internal/domain/entity"
	"github.com/vilosource/viloxterm/internal/logging"
)

// SnapshotSessionUseCase serializes the current workspace state and writes
// it to the single workspace_state.json file.
type SnapshotSessionUseCase struct {
	store port.WorkspaceStateStore
}

// NewSnapshotSessionUseCase creates a new SnapshotSessionUseCase.
func NewSnapshotSessionUseCase(store port.WorkspaceStateStore) *SnapshotSessionUseCase {
	return &SnapshotSessionUseCase{store: store}
}

// SnapshotInput contains the parameters for creating a workspace snapshot.
type SnapshotInput struct {
	State *entity.WorkspaceState
}

// Execute creates a snapshot of the current workspace state and saves it.
func (uc *SnapshotSessionUseCase) Execute(ctx context.Context, input SnapshotInput) error {
	log := logging.FromContext(ctx)

	if input.State == nil {
		return fmt.Errorf("workspace state is required")
	}

	snapshot := entity.SnapshotFromWorkspaceState(input.State)

	log.Debug().
		Int("tab_count", len(snapshot.Tabs)).
		Int("pane_count", snapshot.CountPanes()).
		Msg("creating workspace snapshot")

	if err := uc.store.Save(ctx, snapshot); err != nil {
		return fmt.Errorf("save workspace snapshot: %w", err)
	}

	return nil
}
