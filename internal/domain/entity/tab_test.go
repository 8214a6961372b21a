package entity

import "testing"

func newTab(id TabID) *Tab {
	return &Tab{ID: id, Tree: &PaneNode{ID: string(id) + "-root", Pane: NewPane(PaneID(id), WidgetEditor)}}
}

func TestTabList_Remove_ClosingActiveTabActivatesFirstRemaining(t *testing.T) {
	tl := NewTabList()
	tl.Add(newTab("a"))
	tl.Add(newTab("b"))
	tl.Add(newTab("c"))
	tl.ActiveTabID = "b"

	if !tl.Remove("b") {
		t.Fatal("expected Remove to report success")
	}

	if tl.ActiveTabID != "a" {
		t.Errorf("ActiveTabID = %q, want %q (first remaining tab)", tl.ActiveTabID, "a")
	}
}

func TestTabList_Remove_ClosingFirstActiveTabActivatesNewFirst(t *testing.T) {
	tl := NewTabList()
	tl.Add(newTab("a"))
	tl.Add(newTab("b"))
	tl.Add(newTab("c"))
	tl.ActiveTabID = "a"

	if !tl.Remove("a") {
		t.Fatal("expected Remove to report success")
	}

	if tl.ActiveTabID != "b" {
		t.Errorf("ActiveTabID = %q, want %q (first remaining tab)", tl.ActiveTabID, "b")
	}
}

func TestTabList_Remove_ClosingInactiveTabLeavesActiveUnchanged(t *testing.T) {
	tl := NewTabList()
	tl.Add(newTab("a"))
	tl.Add(newTab("b"))
	tl.Add(newTab("c"))
	tl.ActiveTabID = "c"

	if !tl.Remove("a") {
		t.Fatal("expected Remove to report success")
	}

	if tl.ActiveTabID != "c" {
		t.Errorf("ActiveTabID = %q, want %q (unaffected)", tl.ActiveTabID, "c")
	}
}

func TestTabList_Remove_UnknownID(t *testing.T) {
	tl := NewTabList()
	tl.Add(newTab("a"))

	if tl.Remove("missing") {
		t.Fatal("expected Remove to report failure for unknown id")
	}
}
