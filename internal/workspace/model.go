// Package workspace is the sole authority for workspace state: every
// mutation goes through a Model method, which applies the change, then
// notifies registered observers. Queries never mutate.
package workspace

import (
	"context"
	"fmt"
	"sync"

	"github.com/vilosource/viloxterm/internal/application/usecase"
	"github.com/vilosource/viloxterm/internal/domain/entity"
)

// Event names published to observers, matching spec.md's non-exhaustive list.
const (
	EventTabCreated         = "tab_created"
	EventTabClosed          = "tab_closed"
	EventTabRenamed         = "tab_renamed"
	EventTabDuplicated      = "tab_duplicated"
	EventActiveTabChanged   = "active_tab_changed"
	EventPaneSplit          = "pane_split"
	EventPaneClosed         = "pane_closed"
	EventPaneFocused        = "pane_focused"
	EventPaneWidgetChanged  = "pane_widget_changed"
	EventWidgetStateUpdated = "widget_state_updated"
	EventStateRestored      = "state_restored"
)

// Observer receives a notification after a mutation has fully applied.
type Observer func(eventKind string, payload map[string]any)

// Model is the public workspace façade: the only thing outside this package
// that's allowed to hold a *entity.WorkspaceState reference for mutation.
type Model struct {
	mu    sync.Mutex
	state *entity.WorkspaceState

	tabsUC  *usecase.ManageTabsUseCase
	panesUC *usecase.ManagePanesUseCase
	moveUC  *usecase.MovePaneToTabUseCase

	observers []Observer
}

// NewModel creates an empty workspace model using idGen for every new tab,
// pane, and split-node ID it mints.
func NewModel(idGen usecase.IDGenerator) *Model {
	return &Model{
		state:   entity.NewWorkspaceState(),
		tabsUC:  usecase.NewManageTabsUseCase(idGen),
		panesUC: usecase.NewManagePanesUseCase(idGen),
		moveUC:  usecase.NewMovePaneToTabUseCase(idGen),
	}
}

// Subscribe registers an observer, returning an unsubscribe function.
func (m *Model) Subscribe(obs Observer) func() {
	m.mu.Lock()
	m.observers = append(m.observers, obs)
	idx := len(m.observers) - 1
	m.mu.Unlock()

	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		if idx < len(m.observers) {
			m.observers[idx] = nil
		}
	}
}

// notify runs every observer after the structural edit has fully applied, so
// re-entrant calls from an observer never see a half-edited tree.
func (m *Model) notify(eventKind string, payload map[string]any) {
	m.mu.Lock()
	observers := make([]Observer, len(m.observers))
	copy(observers, m.observers)
	m.mu.Unlock()

	for _, obs := range observers {
		if obs != nil {
			obs(eventKind, payload)
		}
	}
}

// GetWorkspaceState implements port.WorkspaceStateProvider for the autosave
// service.
func (m *Model) GetWorkspaceState() *entity.WorkspaceState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// --- Tab operations ---

// CreateTab appends a tab with a single leaf of the given widget kind and
// makes it active.
func (m *Model) CreateTab(ctx context.Context, name string, kind entity.WidgetKind) (entity.TabID, error) {
	m.mu.Lock()
	out, err := m.tabsUC.Create(ctx, usecase.CreateTabInput{State: m.state, Name: name, WidgetKind: kind})
	m.mu.Unlock()
	if err != nil {
		return "", err
	}
	m.notify(EventTabCreated, map[string]any{"tab_id": out.Tab.ID})
	return out.Tab.ID, nil
}

// CloseTab destroys a tab and its panes, rejecting the close if it would
// leave zero tabs.
func (m *Model) CloseTab(ctx context.Context, tabID entity.TabID) error {
	m.mu.Lock()
	err := m.tabsUC.Close(ctx, m.state, tabID)
	m.mu.Unlock()
	if err != nil {
		return err
	}
	m.notify(EventTabClosed, map[string]any{"tab_id": tabID})
	return nil
}

// RenameTab sets a tab's display name.
func (m *Model) RenameTab(ctx context.Context, tabID entity.TabID, name string) error {
	m.mu.Lock()
	err := m.tabsUC.Rename(ctx, m.state, tabID, name)
	m.mu.Unlock()
	if err != nil {
		return err
	}
	m.notify(EventTabRenamed, map[string]any{"tab_id": tabID, "name": name})
	return nil
}

// SetActiveTab makes tabID the active tab.
func (m *Model) SetActiveTab(ctx context.Context, tabID entity.TabID) error {
	m.mu.Lock()
	err := m.tabsUC.SetActive(ctx, m.state, tabID)
	m.mu.Unlock()
	if err != nil {
		return err
	}
	m.notify(EventActiveTabChanged, map[string]any{"tab_id": tabID})
	return nil
}

// DuplicateTab deep-copies a tab's tree under fresh IDs, naming the copy
// "<original> (Copy)" and inserting it immediately after the original.
func (m *Model) DuplicateTab(ctx context.Context, tabID entity.TabID) (entity.TabID, error) {
	m.mu.Lock()
	out, err := m.tabsUC.Duplicate(ctx, m.state, tabID)
	m.mu.Unlock()
	if err != nil {
		return "", err
	}
	m.notify(EventTabDuplicated, map[string]any{"source_tab_id": tabID, "new_tab_id": out.Tab.ID})
	return out.Tab.ID, nil
}

// NextTab / PreviousTab cycle the active tab and return its ID.
func (m *Model) NextTab() entity.TabID     { return m.cycleTab(1) }
func (m *Model) PreviousTab() entity.TabID { return m.cycleTab(-1) }

func (m *Model) cycleTab(direction int) entity.TabID {
	m.mu.Lock()
	id := m.tabsUC.Next(m.state, direction)
	m.mu.Unlock()
	if id != "" {
		m.notify(EventActiveTabChanged, map[string]any{"tab_id": id})
	}
	return id
}

// --- Pane operations (scoped to the active tab) ---

// SplitPane splits paneID, creating a new pane of the same widget kind.
func (m *Model) SplitPane(ctx context.Context, paneID entity.PaneID, direction usecase.SplitDirection) (entity.PaneID, error) {
	m.mu.Lock()
	tab := m.state.ActiveTab()
	if tab == nil {
		m.mu.Unlock()
		return "", fmt.Errorf("no active tab")
	}
	target := tab.FindPane(paneID)
	if target == nil {
		m.mu.Unlock()
		return "", fmt.Errorf("pane not found: %s", paneID)
	}
	out, err := m.panesUC.Split(ctx, usecase.SplitPaneInput{
		Tab:        tab,
		TargetPane: target,
		Direction:  direction,
		WidgetKind: target.Pane.WidgetKind,
	})
	m.mu.Unlock()
	if err != nil {
		return "", err
	}
	m.notify(EventPaneSplit, map[string]any{"source_pane_id": paneID, "new_pane_id": out.NewPaneNode.Pane.ID})
	return out.NewPaneNode.Pane.ID, nil
}

// ClosePane closes paneID, promoting its sibling. Rejects closing the last
// pane in a tab.
func (m *Model) ClosePane(ctx context.Context, paneID entity.PaneID) error {
	m.mu.Lock()
	tab := m.state.ActiveTab()
	if tab == nil {
		m.mu.Unlock()
		return fmt.Errorf("no active tab")
	}
	node := tab.FindPane(paneID)
	if node == nil {
		m.mu.Unlock()
		return fmt.Errorf("pane not found: %s", paneID)
	}
	_, err := m.panesUC.Close(ctx, tab, node)
	m.mu.Unlock()
	if err != nil {
		return err
	}
	m.notify(EventPaneClosed, map[string]any{"pane_id": paneID})
	return nil
}

// FocusPane makes paneID the active pane in the active tab.
func (m *Model) FocusPane(ctx context.Context, paneID entity.PaneID) error {
	m.mu.Lock()
	tab := m.state.ActiveTab()
	if tab == nil {
		m.mu.Unlock()
		return fmt.Errorf("no active tab")
	}
	err := m.panesUC.Focus(ctx, tab, paneID)
	m.mu.Unlock()
	if err != nil {
		return err
	}
	m.notify(EventPaneFocused, map[string]any{"pane_id": paneID})
	return nil
}

// ChangePaneWidget replaces a pane's widget kind, discarding its state.
func (m *Model) ChangePaneWidget(paneID entity.PaneID, kind entity.WidgetKind) error {
	m.mu.Lock()
	tab := m.state.ActiveTab()
	if tab == nil {
		m.mu.Unlock()
		return fmt.Errorf("no active tab")
	}
	node := tab.FindPane(paneID)
	if node == nil || node.Pane == nil {
		m.mu.Unlock()
		return fmt.Errorf("pane not found: %s", paneID)
	}
	node.Pane.WidgetKind = kind
	node.Pane.WidgetState = nil
	m.mu.Unlock()

	m.notify(EventPaneWidgetChanged, map[string]any{"pane_id": paneID, "widget_kind": kind})
	return nil
}

// UpdateWidgetState merges or replaces a pane's opaque widget state.
func (m *Model) UpdateWidgetState(paneID entity.PaneID, updates map[string]any, merge bool) error {
	m.mu.Lock()
	tab := m.state.ActiveTab()
	if tab == nil {
		m.mu.Unlock()
		return fmt.Errorf("no active tab")
	}
	node := tab.FindPane(paneID)
	if node == nil || node.Pane == nil {
		m.mu.Unlock()
		return fmt.Errorf("pane not found: %s", paneID)
	}
	if !merge || node.Pane.WidgetState == nil {
		node.Pane.WidgetState = make(map[string]any, len(updates))
	}
	for k, v := range updates {
		node.Pane.WidgetState[k] = v
	}
	m.mu.Unlock()

	m.notify(EventWidgetStateUpdated, map[string]any{"pane_id": paneID})
	return nil
}

// MovePaneToTab moves a pane from one tab to another (or a new tab when
// targetTabID is empty).
func (m *Model) MovePaneToTab(sourceTabID entity.TabID, paneID entity.PaneID, targetTabID entity.TabID) (*usecase.MovePaneToTabOutput, error) {
	m.mu.Lock()
	out, err := m.moveUC.Execute(usecase.MovePaneToTabInput{
		TabList:      m.state.Tabs,
		SourceTabID:  sourceTabID,
		SourcePaneID: paneID,
		TargetTabID:  targetTabID,
	})
	m.mu.Unlock()
	if err != nil {
		return nil, err
	}
	m.notify(EventPaneFocused, map[string]any{"pane_id": paneID, "target_tab_id": out.TargetTab.ID})
	return out, nil
}
