package snapshot

import (
	"context"
	"sync"
	"time"

	"github.com/vilosource/viloxterm/internal/application/port"
	"github.com/vilosource/viloxterm/internal/application/usecase"
	"github.com/vilosource/viloxterm/internal/logging"
)

const defaultSnapshotIntervalMs = 5000

// Service debounces writes of the workspace state to disk: mutations mark
// the state dirty, and a single timer coalesces bursts of mutations into
// one save after interval has elapsed.
type Service struct {
	snapshotUC *usecase.SnapshotSessionUseCase
	provider   port.WorkspaceStateProvider
	interval   time.Duration

	mu    sync.Mutex
	timer *time.Timer
	dirty bool
	ctx   context.Context
	stop  context.CancelFunc
}

// NewService creates a new autosave service.
func NewService(
	snapshotUC *usecase.SnapshotSessionUseCase,
	provider port.WorkspaceStateProvider,
	intervalMs int,
) *Service {
	if intervalMs <= 0 {
		intervalMs = defaultSnapshotIntervalMs
	}
	return &Service{
		snapshotUC: snapshotUC,
		provider:   provider,
		interval:   time.Duration(intervalMs) * time.Millisecond,
	}
}

// Start begins watching for dirty state.
func (s *Service) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ctx, s.stop = context.WithCancel(ctx)
	logging.FromContext(ctx).Debug().Dur("interval", s.interval).Msg("autosave service started")
}

// Stop cancels the debounce timer and saves final state.
func (s *Service) Stop(ctx context.Context) error {
	s.mu.Lock()
	if s.stop != nil {
		s.stop()
	}
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.mu.Unlock()

	return s.SaveNow(ctx)
}

// MarkDirty signals that the workspace state has changed, resetting the
// debounce timer.
func (s *Service) MarkDirty() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.dirty = true

	if s.timer != nil {
		s.timer.Stop()
	}

	s.timer = time.AfterFunc(s.interval, func() {
		s.mu.Lock()
		ctx := s.ctx
		s.mu.Unlock()

		if ctx == nil {
			return
		}

		if err := s.saveSnapshot(ctx); err != nil {
			logging.FromContext(ctx).Error().Err(err).Msg("failed to autosave workspace state")
		}
	})
}

// SaveNow forces an immediate save, used on shutdown.
func (s *Service) SaveNow(ctx context.Context) error {
	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	dirty := s.dirty
	s.mu.Unlock()

	if !dirty {
		return nil
	}

	return s.saveSnapshot(ctx)
}

// SaveForce saves unconditionally, ignoring the dirty flag, for an explicit
// user-invoked save rather than the debounced autosave path.
func (s *Service) SaveForce(ctx context.Context) error {
	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.mu.Unlock()

	return s.saveSnapshot(ctx)
}

func (s *Service) saveSnapshot(ctx context.Context) error {
	s.mu.Lock()
	s.dirty = false
	s.mu.Unlock()

	state := s.provider.GetWorkspaceState()
	if state == nil {
		return nil
	}

	if err := s.snapshotUC.Execute(ctx, usecase.SnapshotInput{State: state}); err != nil {
		s.markDirty()
		return err
	}

	return nil
}

func (s *Service) markDirty() {
	s.mu.Lock()
	s.dirty = true
	s.mu.Unlock()
}
