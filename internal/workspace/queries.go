package workspace

import (
	"context"

	"github.com/vilosource/viloxterm/internal/application/usecase"
	"github.com/vilosource/viloxterm/internal/domain/entity"
)

// GetActiveTab returns the currently active tab, or nil if none.
func (m *Model) GetActiveTab() *entity.Tab {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state.ActiveTab()
}

// GetActivePane returns the active tab's active pane, or nil.
func (m *Model) GetActivePane() *entity.Pane {
	m.mu.Lock()
	defer m.mu.Unlock()
	tab := m.state.ActiveTab()
	if tab == nil {
		return nil
	}
	node := tab.ActivePaneNode()
	if node == nil {
		return nil
	}
	return node.Pane
}

// GetPane looks up a pane by ID across every tab.
func (m *Model) GetPane(id entity.PaneID) *entity.Pane {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, node := m.state.FindPane(id)
	if node == nil {
		return nil
	}
	return node.Pane
}

// GetAllPanesInActiveTab returns every leaf pane in the active tab.
func (m *Model) GetAllPanesInActiveTab() []*entity.Pane {
	m.mu.Lock()
	tab := m.state.ActiveTab()
	m.mu.Unlock()
	return m.panesUC.GetAllPanes(tab)
}

// ComputePaneBounds returns the normalized [0,1]² rectangle of every leaf
// pane in the active tab, by recursive descent from the tab's root.
func (m *Model) ComputePaneBounds() map[entity.PaneID]entity.Rect {
	m.mu.Lock()
	tab := m.state.ActiveTab()
	m.mu.Unlock()
	if tab == nil || tab.Tree == nil {
		return nil
	}
	return entity.ComputeBounds(tab.Tree)
}

// FindPaneInDirection returns the best pane in the given direction from
// fromPaneID, scoring candidates by perpendicular overlap and distance along
// the direction axis, or "" if no pane qualifies.
func (m *Model) FindPaneInDirection(ctx context.Context, fromPaneID entity.PaneID, direction usecase.NavigateDirection) (entity.PaneID, error) {
	bounds := m.ComputePaneBounds()
	if bounds == nil {
		return "", nil
	}

	rects := make([]entity.Rect, 0, len(bounds))
	for id, r := range bounds {
		r.PaneID = id
		rects = append(rects, r)
	}

	out, err := m.panesUC.NavigateFocusGeometric(ctx, usecase.GeometricNavigationInput{
		ActivePaneID: fromPaneID,
		PaneRects:    rects,
		Direction:    direction,
	})
	if err != nil {
		return "", err
	}
	if !out.Found {
		return "", nil
	}
	return out.TargetPaneID, nil
}

// PaneReadingIndex returns the 1-based position of paneID in the active
// tab's in-order leaf traversal, or 0 if it is not found or falls beyond
// the ninth pane (spec.md caps reading-order addressing at 9 panes).
func (m *Model) PaneReadingIndex(paneID entity.PaneID) int {
	m.mu.Lock()
	tab := m.state.ActiveTab()
	m.mu.Unlock()
	if tab == nil || tab.Tree == nil {
		return 0
	}

	for i, leaf := range tab.Tree.Leaves() {
		if leaf.Pane != nil && leaf.Pane.ID == paneID {
			if i >= 9 {
				return 0
			}
			return i + 1
		}
	}
	return 0
}
