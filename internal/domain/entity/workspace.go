package entity

import "time"

// WorkspaceState is the top-level persisted/observed state: an ordered
// collection of tabs plus the active one. This is the root the workspace
// model mutates and the serializer round-trips.
type WorkspaceState struct {
	Tabs        *TabList
	ActiveTabID TabID
	Metadata    map[string]any
	CreatedAt   time.Time
}

// NewWorkspaceState creates an empty workspace state with no tabs.
func NewWorkspaceState() *WorkspaceState {
	return &WorkspaceState{
		Tabs:      NewTabList(),
		Metadata:  make(map[string]any),
		CreatedAt: time.Now(),
	}
}

// ActiveTab returns the currently active tab, or nil if there are none.
func (s *WorkspaceState) ActiveTab() *Tab {
	if s.Tabs == nil {
		return nil
	}
	return s.Tabs.Find(s.ActiveTabID)
}

// TabCount returns the number of open tabs.
func (s *WorkspaceState) TabCount() int {
	if s.Tabs == nil {
		return 0
	}
	return s.Tabs.Count()
}

// FindPane searches every tab for a leaf holding the given pane ID, and
// returns both the owning tab and the node.
func (s *WorkspaceState) FindPane(id PaneID) (*Tab, *PaneNode) {
	if s.Tabs == nil {
		return nil, nil
	}
	for _, tab := range s.Tabs.Tabs {
		if node := tab.FindPane(id); node != nil {
			return tab, node
		}
	}
	return nil, nil
}

// AllPanes returns every pane across every tab, in tab then reading order.
func (s *WorkspaceState) AllPanes() []*Pane {
	var panes []*Pane
	if s.Tabs == nil {
		return panes
	}
	for _, tab := range s.Tabs.Tabs {
		if tab.Tree == nil {
			continue
		}
		for _, leaf := range tab.Tree.Leaves() {
			panes = append(panes, leaf.Pane)
		}
	}
	return panes
}
