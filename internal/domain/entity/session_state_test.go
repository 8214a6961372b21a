package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vilosource/viloxterm/internal/domain/entity"
)

func newSnapshotWorkspace() *entity.WorkspaceState {
	ws := entity.NewWorkspaceState()

	pane1 := entity.NewPane("p1", entity.WidgetTerminal)
	tab1 := entity.NewTab("t1", "node1", pane1)
	tab1.Name = "Search"
	ws.Tabs.Add(tab1)

	pane2 := entity.NewPane("p2", entity.WidgetEditor)
	tab2 := entity.NewTab("t2", "node2", pane2)
	tab2.Name = "Code"
	ws.Tabs.Add(tab2)

	ws.ActiveTabID = tab2.ID
	return ws
}

func TestSnapshotFromWorkspaceState_Nil(t *testing.T) {
	snap := entity.SnapshotFromWorkspaceState(nil)
	require.NotNil(t, snap)
	assert.Equal(t, entity.SessionStateVersion, snap.Version)
	assert.Empty(t, snap.Tabs)
}

func TestSnapshotFromWorkspaceState_MultipleTabs(t *testing.T) {
	ws := newSnapshotWorkspace()

	snap := entity.SnapshotFromWorkspaceState(ws)

	require.Len(t, snap.Tabs, 2)
	assert.Equal(t, entity.SessionStateVersion, snap.Version)
	assert.Equal(t, ws.ActiveTabID, snap.ActiveTabID)

	first := snap.Tabs[0]
	assert.Equal(t, "Search", first.Name)
	require.NotNil(t, first.Tree)
	assert.Equal(t, "leaf", first.Tree.Type)
	require.NotNil(t, first.Tree.Pane)
	assert.Equal(t, entity.WidgetTerminal, first.Tree.Pane.WidgetKind)
}

func TestSnapshotFromWorkspaceState_SplitPanes(t *testing.T) {
	left := entity.NewPane("left", entity.WidgetTerminal)
	tab := entity.NewTab("t1", "left_node", left)
	right := &entity.PaneNode{ID: "right_node", Pane: entity.NewPane("right", entity.WidgetEditor)}
	tab.Tree = &entity.PaneNode{
		ID:          "split",
		Orientation: entity.Horizontal,
		Ratio:       0.5,
		Children:    []*entity.PaneNode{tab.Tree, right},
	}

	ws := entity.NewWorkspaceState()
	ws.Tabs.Add(tab)

	snap := entity.SnapshotFromWorkspaceState(ws)
	root := snap.Tabs[0].Tree
	require.Equal(t, "split", root.Type)
	assert.InDelta(t, 0.5, root.Ratio, 0.001)
	require.Len(t, root.Children, 2)
	assert.Equal(t, entity.WidgetTerminal, root.Children[0].Pane.WidgetKind)
	assert.Equal(t, entity.WidgetEditor, root.Children[1].Pane.WidgetKind)
}

func TestRestoreWorkspaceState_Nil(t *testing.T) {
	ws := entity.RestoreWorkspaceState(nil)
	require.NotNil(t, ws)
	assert.Equal(t, 0, ws.TabCount())
}

func TestSnapshotRoundTrip(t *testing.T) {
	ws := newSnapshotWorkspace()

	snap := entity.SnapshotFromWorkspaceState(ws)
	restored := entity.RestoreWorkspaceState(snap)

	require.Equal(t, 2, restored.TabCount())
	assert.Equal(t, ws.ActiveTabID, restored.ActiveTabID)

	tab1 := restored.Tabs.Find("t1")
	require.NotNil(t, tab1)
	assert.Equal(t, "Search", tab1.Name)
	require.NotNil(t, tab1.Tree)
	assert.True(t, tab1.Tree.IsLeaf())
	assert.Equal(t, entity.WidgetTerminal, tab1.Tree.Pane.WidgetKind)

	tab2 := restored.Tabs.Find("t2")
	require.NotNil(t, tab2)
	assert.Equal(t, "Code", tab2.Name)
}

func TestRestoreWorkspaceState_CorruptSplitBecomesPlaceholder(t *testing.T) {
	state := &entity.SessionState{
		Version: entity.SessionStateVersion,
		Tabs: []entity.TabSnapshot{
			{
				ID:   "t1",
				Name: "Broken",
				Tree: &entity.PaneNodeSnapshot{
					Type: "split",
					ID:   "bad_split",
					// Missing children: a split must carry exactly two.
					Children: nil,
				},
			},
		},
	}

	ws := entity.RestoreWorkspaceState(state)

	tab := ws.Tabs.Find("t1")
	require.NotNil(t, tab)
	require.NotNil(t, tab.Tree)
	assert.True(t, tab.Tree.IsLeaf())
	assert.Equal(t, entity.WidgetPlaceholder, tab.Tree.Pane.WidgetKind)
}

func TestRestoreWorkspaceState_MissingTreeBecomesPlaceholderRoot(t *testing.T) {
	state := &entity.SessionState{
		Version: entity.SessionStateVersion,
		Tabs: []entity.TabSnapshot{
			{ID: "t1", Name: "Empty", Tree: nil},
		},
	}

	ws := entity.RestoreWorkspaceState(state)

	tab := ws.Tabs.Find("t1")
	require.NotNil(t, tab)
	require.NotNil(t, tab.Tree)
	assert.Equal(t, entity.WidgetPlaceholder, tab.Tree.Pane.WidgetKind)
	assert.Equal(t, tab.Tree.Pane.ID, tab.ActivePane)
}

func TestRestoreWorkspaceState_FallsBackToFirstTabWhenActiveMissing(t *testing.T) {
	state := &entity.SessionState{
		Version:     entity.SessionStateVersion,
		ActiveTabID: "does-not-exist",
		Tabs: []entity.TabSnapshot{
			{
				ID:   "t1",
				Name: "Only",
				Tree: &entity.PaneNodeSnapshot{
					Type: "leaf",
					ID:   "node1",
					Pane: &entity.PaneSnapshot{ID: "p1", WidgetKind: entity.WidgetTerminal},
				},
			},
		},
	}

	ws := entity.RestoreWorkspaceState(state)
	assert.Equal(t, entity.TabID("t1"), ws.ActiveTabID)
}

func TestSessionState_CountPanes(t *testing.T) {
	state := &entity.SessionState{
		Tabs: []entity.TabSnapshot{
			{
				Tree: &entity.PaneNodeSnapshot{
					Type: "leaf",
					Pane: &entity.PaneSnapshot{ID: "pane-1"},
				},
			},
			{
				Tree: &entity.PaneNodeSnapshot{
					Type: "split",
					Children: []*entity.PaneNodeSnapshot{
						{Type: "leaf", Pane: &entity.PaneSnapshot{ID: "pane-2"}},
						{Type: "leaf", Pane: &entity.PaneSnapshot{ID: "pane-3"}},
					},
				},
			},
		},
	}

	assert.Equal(t, 3, state.CountPanes())
}

func TestFindPaneAcrossTabs(t *testing.T) {
	ws := newSnapshotWorkspace()

	foundTab, node := ws.FindPane("p1")
	require.NotNil(t, node)
	assert.Equal(t, entity.TabID("t1"), foundTab.ID)
	assert.Equal(t, entity.PaneID("p1"), node.Pane.ID)

	_, missing := ws.FindPane("does-not-exist")
	assert.Nil(t, missing)
}

func TestFindPaneInNestedStructure(t *testing.T) {
	left := entity.NewPane("left_pane", entity.WidgetTerminal)
	tab := entity.NewTab("t1", "left_node", left)

	rightNode := &entity.PaneNode{ID: "right_node", Pane: entity.NewPane("right_pane", entity.WidgetEditor)}
	containerNode := &entity.PaneNode{
		ID:          "container",
		Orientation: entity.Horizontal,
		Ratio:       0.5,
		Children:    []*entity.PaneNode{tab.Tree, rightNode},
	}
	tab.Tree = containerNode

	leftNode := tab.FindPane("left_pane")
	require.NotNil(t, leftNode)
	assert.Equal(t, entity.PaneID("left_pane"), leftNode.Pane.ID)

	rightNodeFound := tab.FindPane("right_pane")
	require.NotNil(t, rightNodeFound)
	assert.Equal(t, entity.PaneID("right_pane"), rightNodeFound.Pane.ID)
}
