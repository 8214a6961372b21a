package snapshot

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/vilosource/viloxterm/internal/application/port/mocks"
	"github.com/vilosource/viloxterm/internal/application/usecase"
	"github.com/vilosource/viloxterm/internal/domain/entity"
)

type testProvider struct {
	state *entity.WorkspaceState
}

func (p *testProvider) GetWorkspaceState() *entity.WorkspaceState {
	return p.state
}

func newTestState() *entity.WorkspaceState {
	state := entity.NewWorkspaceState()
	pane := entity.NewPane("pane-1", entity.WidgetTerminal)
	tab := entity.NewTab("tab-1", "node-1", pane)
	state.Tabs.Add(tab)
	state.ActiveTabID = tab.ID
	return state
}

func TestService_SaveSnapshot_Succeeds(t *testing.T) {
	store := mocks.NewMockWorkspaceStateStore(t)
	calls := 0
	store.EXPECT().
		Save(mock.Anything, mock.AnythingOfType("*entity.SessionState")).
		RunAndReturn(func(_ context.Context, _ *entity.SessionState) error {
			calls++
			return nil
		})

	uc := usecase.NewSnapshotSessionUseCase(store)
	svc := NewService(uc, &testProvider{state: newTestState()}, 1)
	svc.dirty = true

	err := svc.saveSnapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.False(t, svc.dirty)
}

func TestService_SaveSnapshot_ErrorKeepsDirty(t *testing.T) {
	store := mocks.NewMockWorkspaceStateStore(t)
	saveErr := errors.New("disk full")
	store.EXPECT().
		Save(mock.Anything, mock.AnythingOfType("*entity.SessionState")).
		Return(saveErr)

	uc := usecase.NewSnapshotSessionUseCase(store)
	svc := NewService(uc, &testProvider{state: newTestState()}, 1)
	svc.dirty = true

	err := svc.saveSnapshot(context.Background())
	require.Error(t, err)
	require.ErrorIs(t, err, saveErr)
	assert.True(t, svc.dirty)
}

func TestService_MarkDirty_SavesAfterDebounce(t *testing.T) {
	store := mocks.NewMockWorkspaceStateStore(t)
	saved := make(chan struct{}, 1)
	store.EXPECT().
		Save(mock.Anything, mock.AnythingOfType("*entity.SessionState")).
		RunAndReturn(func(_ context.Context, _ *entity.SessionState) error {
			saved <- struct{}{}
			return nil
		})

	uc := usecase.NewSnapshotSessionUseCase(store)
	svc := NewService(uc, &testProvider{state: newTestState()}, 10)
	svc.Start(context.Background())

	svc.MarkDirty()

	select {
	case <-saved:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("expected debounced save to fire")
	}
}

func TestService_SaveNow_NoOpWhenClean(t *testing.T) {
	store := mocks.NewMockWorkspaceStateStore(t)

	uc := usecase.NewSnapshotSessionUseCase(store)
	svc := NewService(uc, &testProvider{state: newTestState()}, 1)

	err := svc.SaveNow(context.Background())
	require.NoError(t, err)
}
