package entity

import "time"

// TabID uniquely identifies a tab.
type TabID string

// Tab is a top-level container: a pane tree plus the single active pane
// within it. Invariant: ActivePane, if set, references a leaf reachable
// from Tree.
type Tab struct {
	ID         TabID
	Name       string
	Tree       *PaneNode // root of the pane tree; non-nil once created
	ActivePane PaneID
	Metadata   map[string]any
	CreatedAt  time.Time
}

// NewTab creates a new tab with a single leaf holding initialPane.
func NewTab(id TabID, rootNodeID string, initialPane *Pane) *Tab {
	return &Tab{
		ID:         id,
		Tree:       &PaneNode{ID: rootNodeID, Pane: initialPane},
		ActivePane: initialPane.ID,
		Metadata:   make(map[string]any),
		CreatedAt:  time.Now(),
	}
}

// Title returns the display title for the tab: the explicit Name, or
// "New Tab" if unset. Pane content has no title in this core (widget_state
// is opaque), so there is no further fallback.
func (t *Tab) Title() string {
	if t.Name != "" {
		return t.Name
	}
	return "New Tab"
}

// PaneCount returns the number of panes (leaves) in this tab's tree.
func (t *Tab) PaneCount() int {
	if t.Tree == nil {
		return 0
	}
	return t.Tree.LeafCount()
}

// FindPane searches this tab's tree for the given pane ID.
func (t *Tab) FindPane(id PaneID) *PaneNode {
	if t.Tree == nil {
		return nil
	}
	return t.Tree.FindPane(id)
}

// ActivePaneNode returns the node holding the active pane, or nil.
func (t *Tab) ActivePaneNode() *PaneNode {
	return t.FindPane(t.ActivePane)
}

// TabList is the ordered collection of tabs that makes up a workspace.
type TabList struct {
	Tabs        []*Tab
	ActiveTabID TabID
}

// NewTabList creates an empty tab list.
func NewTabList() *TabList {
	return &TabList{
		Tabs: make([]*Tab, 0),
	}
}

// Add appends a tab to the end of the list.
func (tl *TabList) Add(tab *Tab) {
	tl.Tabs = append(tl.Tabs, tab)
	if tl.ActiveTabID == "" {
		tl.ActiveTabID = tab.ID
	}
}

// Insert places tab at position pos (clamped to the list bounds), shifting
// later tabs right. Used by duplicate_tab to land the copy immediately
// after its original.
func (tl *TabList) Insert(pos int, tab *Tab) {
	if pos < 0 {
		pos = 0
	}
	if pos > len(tl.Tabs) {
		pos = len(tl.Tabs)
	}
	tl.Tabs = append(tl.Tabs, nil)
	copy(tl.Tabs[pos+1:], tl.Tabs[pos:])
	tl.Tabs[pos] = tab
	if tl.ActiveTabID == "" {
		tl.ActiveTabID = tab.ID
	}
}

// IndexOf returns the position of the tab with the given ID, or -1.
func (tl *TabList) IndexOf(id TabID) int {
	for i, tab := range tl.Tabs {
		if tab.ID == id {
			return i
		}
	}
	return -1
}

// Remove removes a tab by ID. If it was active, the first remaining tab
// becomes active.
func (tl *TabList) Remove(id TabID) bool {
	i := tl.IndexOf(id)
	if i < 0 {
		return false
	}
	tl.Tabs = append(tl.Tabs[:i], tl.Tabs[i+1:]...)
	if tl.ActiveTabID == id && len(tl.Tabs) > 0 {
		tl.ActiveTabID = tl.Tabs[0].ID
	}
	return true
}

// Find returns a tab by ID.
func (tl *TabList) Find(id TabID) *Tab {
	for _, tab := range tl.Tabs {
		if tab.ID == id {
			return tab
		}
	}
	return nil
}

// Active returns the currently active tab.
func (tl *TabList) Active() *Tab {
	return tl.Find(tl.ActiveTabID)
}

// Count returns the number of tabs.
func (tl *TabList) Count() int {
	return len(tl.Tabs)
}
