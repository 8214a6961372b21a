package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vilosource/viloxterm/internal/application/port/mocks"
	"github.com/vilosource/viloxterm/internal/application/usecase"
	"github.com/vilosource/viloxterm/internal/domain/entity"
)

func TestRestoreSessionUseCase_Execute_ReturnsState(t *testing.T) {
	store := mocks.NewMockWorkspaceStateStore(t)

	expectedState := &entity.SessionState{
		Version: entity.SessionStateVersion,
		Tabs: []entity.TabSnapshot{
			{
				ID:   "tab-1",
				Name: "Test Tab",
				Tree: &entity.PaneNodeSnapshot{
					Type: "leaf",
					ID:   "node-1",
					Pane: &entity.PaneSnapshot{
						ID:         "pane-1",
						WidgetKind: entity.WidgetTerminal,
					},
				},
			},
		},
		SavedAt: time.Now(),
	}

	store.EXPECT().Load(context.Background()).Return(expectedState, nil)

	uc := usecase.NewRestoreSessionUseCase(store)

	output, err := uc.Execute(context.Background())
	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, expectedState, output.State)
}

func TestRestoreSessionUseCase_Execute_NotFound(t *testing.T) {
	store := mocks.NewMockWorkspaceStateStore(t)

	store.EXPECT().Load(context.Background()).Return(nil, nil)

	uc := usecase.NewRestoreSessionUseCase(store)

	_, err := uc.Execute(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, usecase.ErrSessionNotFound)
}

func TestRestoreSessionUseCase_Execute_VersionMismatch(t *testing.T) {
	store := mocks.NewMockWorkspaceStateStore(t)

	futureState := &entity.SessionState{
		Version: "99.0",
		Tabs:    []entity.TabSnapshot{},
		SavedAt: time.Now(),
	}

	store.EXPECT().Load(context.Background()).Return(futureState, nil)

	uc := usecase.NewRestoreSessionUseCase(store)

	_, err := uc.Execute(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, usecase.ErrVersionMismatch)
}

func TestRestoreSessionUseCase_Execute_LoadError(t *testing.T) {
	store := mocks.NewMockWorkspaceStateStore(t)

	store.EXPECT().Load(context.Background()).Return(nil, assert.AnError)

	uc := usecase.NewRestoreSessionUseCase(store)

	_, err := uc.Execute(context.Background())
	require.Error(t, err)
}
