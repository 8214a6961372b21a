package usecase

import (
	"context"
	"errors"

	"github.com/vilosource/viloxterm/internal/application/port"
	"github.com/vilosource/viloxterm/internal/domain/entity"
	"github.com/vilosource/viloxterm/internal/logging"
)

// ErrSessionNotFound is returned when no workspace state file exists yet.
var ErrSessionNotFound = errors.New("workspace state not found")

// ErrVersionMismatch is returned when the saved state's version differs
// from this binary's schema version.
var ErrVersionMismatch = errors.New("workspace state version mismatch")

// RestoreSessionUseCase loads and validates the persisted workspace state on
// startup.
type RestoreSessionUseCase struct {
	store port.WorkspaceStateStore
}

// NewRestoreSessionUseCase creates a new RestoreSessionUseCase.
func NewRestoreSessionUseCase(store port.WorkspaceStateStore) *RestoreSessionUseCase {
	return &RestoreSessionUseCase{store: store}
}

// RestoreOutput contains the restored workspace state.
type RestoreOutput struct {
	State *entity.SessionState
}

// Execute loads and validates the persisted workspace state for restoration.
func (uc *RestoreSessionUseCase) Execute(ctx context.Context) (*RestoreOutput, error) {
	log := logging.FromContext(ctx)

	log.Info().Msg("restoring workspace state")

	state, err := uc.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	if state == nil {
		return nil, ErrSessionNotFound
	}

	// Only the current schema version is understood; any other version,
	// older or newer, is rejected rather than parsed.
	if state.Version != entity.SessionStateVersion {
		log.Warn().
			Str("state_version", state.Version).
			Str("current_version", entity.SessionStateVersion).
			Msg("workspace state version does not match current version")
		return nil, ErrVersionMismatch
	}

	log.Info().
		Int("tab_count", len(state.Tabs)).
		Int("pane_count", state.CountPanes()).
		Msg("workspace state loaded for restoration")

	return &RestoreOutput{State: state}, nil
}
