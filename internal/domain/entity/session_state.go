package entity

import "time"

// SessionStateVersion is the current schema version for persisted workspace
// state. Bump when the document shape changes in a backward-incompatible
// way.
const SessionStateVersion = "2.0"

// SessionState is the serializable snapshot of a WorkspaceState: every tab,
// its pane tree, and the active tab/pane pointers. This is what
// serialize/deserialize round-trip to and from workspace_state.json.
type SessionState struct {
	Version     string         `json:"version"`
	Tabs        []TabSnapshot  `json:"tabs"`
	ActiveTabID TabID          `json:"active_tab_id"`
	Metadata    map[string]any `json:"metadata,omitempty"`
	SavedAt     time.Time      `json:"saved_at"`
}

// TabSnapshot captures one tab: its pane tree and active pane pointer.
type TabSnapshot struct {
	ID         TabID             `json:"id"`
	Name       string            `json:"name"`
	Tree       *PaneNodeSnapshot `json:"tree"`
	ActivePane PaneID            `json:"active_pane_id"`
	Metadata   map[string]any    `json:"metadata,omitempty"`
}

// PaneNodeSnapshot captures a node in the pane tree. Type discriminates the
// variant: "leaf" carries Pane and no Children; "split" carries Orientation,
// Ratio and exactly two Children.
type PaneNodeSnapshot struct {
	Type        string              `json:"type"`
	ID          string              `json:"id"`
	Pane        *PaneSnapshot       `json:"pane,omitempty"`
	Orientation Orientation         `json:"orientation,omitempty"`
	Ratio       float64             `json:"ratio,omitempty"`
	Children    []*PaneNodeSnapshot `json:"children,omitempty"`
}

// PaneSnapshot captures a pane's persisted identity and content.
type PaneSnapshot struct {
	ID          PaneID         `json:"id"`
	WidgetKind  WidgetKind     `json:"widget_kind"`
	WidgetState map[string]any `json:"widget_state,omitempty"`
	Metadata    map[string]any `json:"metadata,omitempty"`
}

// SnapshotFromWorkspaceState creates a SessionState from a live
// WorkspaceState, ready for JSON serialization.
func SnapshotFromWorkspaceState(ws *WorkspaceState) *SessionState {
	if ws == nil || ws.Tabs == nil {
		return &SessionState{
			Version: SessionStateVersion,
			Tabs:    []TabSnapshot{},
			SavedAt: time.Now(),
		}
	}

	snapTabs := make([]TabSnapshot, 0, len(ws.Tabs.Tabs))
	for _, tab := range ws.Tabs.Tabs {
		snapTabs = append(snapTabs, snapshotTab(tab))
	}

	return &SessionState{
		Version:     SessionStateVersion,
		Tabs:        snapTabs,
		ActiveTabID: ws.ActiveTabID,
		Metadata:    ws.Metadata,
		SavedAt:     time.Now(),
	}
}

func snapshotTab(tab *Tab) TabSnapshot {
	return TabSnapshot{
		ID:         tab.ID,
		Name:       tab.Name,
		Tree:       snapshotPaneNode(tab.Tree),
		ActivePane: tab.ActivePane,
		Metadata:   tab.Metadata,
	}
}

func snapshotPaneNode(node *PaneNode) *PaneNodeSnapshot {
	if node == nil {
		return nil
	}

	if node.IsLeaf() {
		return &PaneNodeSnapshot{
			Type: "leaf",
			ID:   node.ID,
			Pane: &PaneSnapshot{
				ID:          node.Pane.ID,
				WidgetKind:  node.Pane.WidgetKind,
				WidgetState: node.Pane.WidgetState,
				Metadata:    node.Pane.Metadata,
			},
		}
	}

	children := make([]*PaneNodeSnapshot, 0, len(node.Children))
	for _, child := range node.Children {
		children = append(children, snapshotPaneNode(child))
	}
	return &PaneNodeSnapshot{
		Type:        "split",
		ID:          node.ID,
		Orientation: node.Orientation,
		Ratio:       node.Ratio,
		Children:    children,
	}
}

// RestoreWorkspaceState rebuilds a live WorkspaceState from a persisted
// snapshot. Nodes that fail to reconstruct (e.g. a split missing a child)
// are replaced with a placeholder leaf rather than aborting the whole
// restore, so a corrupt single node doesn't lose the rest of the session.
func RestoreWorkspaceState(state *SessionState) *WorkspaceState {
	ws := NewWorkspaceState()
	if state == nil {
		return ws
	}
	ws.Metadata = state.Metadata
	if ws.Metadata == nil {
		ws.Metadata = make(map[string]any)
	}

	for _, snap := range state.Tabs {
		tab := &Tab{
			ID:         snap.ID,
			Name:       snap.Name,
			Tree:       restorePaneNode(snap.Tree),
			ActivePane: snap.ActivePane,
			Metadata:   snap.Metadata,
		}
		if tab.Metadata == nil {
			tab.Metadata = make(map[string]any)
		}
		if tab.Tree == nil {
			tab.Tree = placeholderLeaf("root")
			tab.ActivePane = tab.Tree.Pane.ID
		}
		ws.Tabs.Add(tab)
	}
	ws.ActiveTabID = state.ActiveTabID
	if ws.Tabs.Find(ws.ActiveTabID) == nil {
		if first := ws.Tabs.Active(); first != nil {
			ws.ActiveTabID = first.ID
		}
	}
	return ws
}

func restorePaneNode(snap *PaneNodeSnapshot) *PaneNode {
	if snap == nil {
		return nil
	}
	switch snap.Type {
	case "leaf":
		if snap.Pane == nil {
			return placeholderLeaf(snap.ID)
		}
		return &PaneNode{
			ID: snap.ID,
			Pane: &Pane{
				ID:          snap.Pane.ID,
				WidgetKind:  snap.Pane.WidgetKind,
				WidgetState: nonNilMap(snap.Pane.WidgetState),
				Metadata:    nonNilMap(snap.Pane.Metadata),
			},
		}
	case "split":
		if len(snap.Children) != 2 {
			return placeholderLeaf(snap.ID)
		}
		first := restorePaneNode(snap.Children[0])
		second := restorePaneNode(snap.Children[1])
		if first == nil || second == nil {
			return placeholderLeaf(snap.ID)
		}
		node := &PaneNode{
			ID:          snap.ID,
			Orientation: snap.Orientation,
			Ratio:       ClampRatio(snap.Ratio),
			Children:    []*PaneNode{first, second},
		}
		first.Parent = node
		second.Parent = node
		return node
	default:
		return placeholderLeaf(snap.ID)
	}
}

func placeholderLeaf(id string) *PaneNode {
	if id == "" {
		id = "placeholder"
	}
	return &PaneNode{ID: id, Pane: NewPane(PaneID(id), WidgetPlaceholder)}
}

func nonNilMap(m map[string]any) map[string]any {
	if m == nil {
		return make(map[string]any)
	}
	return m
}

// CountPanes returns the total number of panes across all tabs in the
// snapshot.
func (s *SessionState) CountPanes() int {
	count := 0
	for _, tab := range s.Tabs {
		count += countPanesInNode(tab.Tree)
	}
	return count
}

func countPanesInNode(node *PaneNodeSnapshot) int {
	if node == nil {
		return 0
	}
	if node.Type == "leaf" {
		return 1
	}
	count := 0
	for _, child := range node.Children {
		count += countPanesInNode(child)
	}
	return count
}
