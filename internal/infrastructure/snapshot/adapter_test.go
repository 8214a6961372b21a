package snapshot

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/vilosource/viloxterm/internal/application/port/mocks"
	"github.com/vilosource/viloxterm/internal/application/usecase"
	"github.com/vilosource/viloxterm/internal/domain/entity"
	"github.com/vilosource/viloxterm/internal/idgen"
	"github.com/vilosource/viloxterm/internal/workspace"
)

func TestCommandAdapter_SaveForcesWriteEvenWhenClean(t *testing.T) {
	store := mocks.NewMockWorkspaceStateStore(t)
	calls := 0
	store.EXPECT().
		Save(mock.Anything, mock.AnythingOfType("*entity.SessionState")).
		RunAndReturn(func(_ context.Context, _ *entity.SessionState) error {
			calls++
			return nil
		})

	model := workspace.NewModel(idgen.New("t").Func())
	snapshotUC := usecase.NewSnapshotSessionUseCase(store)
	svc := NewService(snapshotUC, model, 1)

	adapter := NewCommandAdapter(context.Background(), svc, model, usecase.NewRestoreSessionUseCase(store))
	require.NoError(t, adapter.Save())
	require.Equal(t, 1, calls)
}

func TestCommandAdapter_RestoreWithNoSnapshotIsANoOp(t *testing.T) {
	store := mocks.NewMockWorkspaceStateStore(t)
	store.EXPECT().Load(mock.Anything).Return(nil, nil)

	model := workspace.NewModel(idgen.New("t").Func())
	snapshotUC := usecase.NewSnapshotSessionUseCase(store)
	svc := NewService(snapshotUC, model, 1)

	adapter := NewCommandAdapter(context.Background(), svc, model, usecase.NewRestoreSessionUseCase(store))
	require.NoError(t, adapter.Restore())
}

func TestCommandAdapter_RestoreAppliesPersistedState(t *testing.T) {
	store := mocks.NewMockWorkspaceStateStore(t)
	saved := &entity.SessionState{
		Version:     entity.SessionStateVersion,
		ActiveTabID: "tab-1",
	}
	store.EXPECT().Load(mock.Anything).Return(saved, nil)

	model := workspace.NewModel(idgen.New("t").Func())
	snapshotUC := usecase.NewSnapshotSessionUseCase(store)
	svc := NewService(snapshotUC, model, 1)

	adapter := NewCommandAdapter(context.Background(), svc, model, usecase.NewRestoreSessionUseCase(store))
	require.NoError(t, adapter.Restore())
	require.Equal(t, entity.TabID("tab-1"), model.GetWorkspaceState().ActiveTabID)
}
