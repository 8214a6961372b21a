package snapshot

import (
	"context"
	"errors"

	"github.com/vilosource/viloxterm/internal/application/usecase"
	"github.com/vilosource/viloxterm/internal/logging"
	"github.com/vilosource/viloxterm/internal/workspace"
)

// CommandAdapter exposes the autosave service and session restore as the
// narrow no-argument Save/Restore pair the command package's StateStore
// interface expects, keeping internal/command free of any dependency on
// this package or on usecase.RestoreSessionUseCase.
type CommandAdapter struct {
	service   *Service
	model     *workspace.Model
	restoreUC *usecase.RestoreSessionUseCase
	ctx       context.Context
}

// NewCommandAdapter builds an adapter bound to ctx for the lifetime of the
// process; ctx carries the structured logger every use case call expects.
func NewCommandAdapter(ctx context.Context, service *Service, model *workspace.Model, restoreUC *usecase.RestoreSessionUseCase) *CommandAdapter {
	return &CommandAdapter{ctx: ctx, service: service, model: model, restoreUC: restoreUC}
}

// Save forces an immediate, unconditional snapshot write.
func (a *CommandAdapter) Save() error {
	return a.service.SaveForce(a.ctx)
}

// Restore loads the persisted workspace state and applies it to the live
// model. A missing snapshot is not an error: the workspace simply stays as
// it is.
func (a *CommandAdapter) Restore() error {
	output, err := a.restoreUC.Execute(a.ctx)
	if err != nil {
		if errors.Is(err, usecase.ErrSessionNotFound) {
			return nil
		}
		logging.FromContext(a.ctx).Error().Err(err).Msg("failed to restore workspace state")
		return err
	}
	a.model.Deserialize(output.State)
	a.service.MarkDirty()
	return nil
}
