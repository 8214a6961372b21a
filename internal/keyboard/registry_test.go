package keyboard

import "testing"

func mustSeq(t *testing.T, s string) Sequence {
	t.Helper()
	seq, ok := ParseSequence(s)
	if !ok {
		t.Fatalf("failed to parse sequence %q", s)
	}
	return seq
}

func TestRegistry_RegisterAndFindMatching(t *testing.T) {
	r := NewRegistry()
	r.Register(Shortcut{ID: "s1", Sequence: mustSeq(t, "ctrl+t"), CommandID: "tab.create"})

	matches := r.FindMatching(mustSeq(t, "ctrl+t"), Context{})
	if len(matches) != 1 || matches[0].CommandID != "tab.create" {
		t.Fatalf("expected one match, got %+v", matches)
	}
}

func TestRegistry_FindMatching_RespectsWhenClause(t *testing.T) {
	r := NewRegistry()
	r.Register(Shortcut{ID: "s1", Sequence: mustSeq(t, "ctrl+p"), CommandID: "term.paste", When: "terminalFocus"})

	if matches := r.FindMatching(mustSeq(t, "ctrl+p"), Context{}); len(matches) != 0 {
		t.Fatalf("expected no match without terminalFocus, got %+v", matches)
	}
	if matches := r.FindMatching(mustSeq(t, "ctrl+p"), Context{"terminalFocus": true}); len(matches) != 1 {
		t.Fatalf("expected match with terminalFocus, got %+v", matches)
	}
}

func TestRegistry_ExactConflict_HigherPriorityWins(t *testing.T) {
	r := NewRegistry()
	r.Register(Shortcut{ID: "low", Sequence: mustSeq(t, "ctrl+k"), CommandID: "a", Priority: 10})
	conflicts := r.Register(Shortcut{ID: "high", Sequence: mustSeq(t, "ctrl+k"), CommandID: "b", Priority: 1})

	if len(conflicts) != 1 || conflicts[0].Kind != ConflictExact {
		t.Fatalf("expected one exact conflict, got %+v", conflicts)
	}
	if _, ok := r.ByID("low"); ok {
		t.Fatalf("expected lower-priority shortcut to be evicted")
	}
	if _, ok := r.ByID("high"); !ok {
		t.Fatalf("expected higher-priority shortcut to survive")
	}
}

func TestRegistry_ExactConflict_LoserNotRegistered(t *testing.T) {
	r := NewRegistry()
	r.Register(Shortcut{ID: "winner", Sequence: mustSeq(t, "ctrl+k"), CommandID: "a", Priority: 1})
	r.Register(Shortcut{ID: "loser", Sequence: mustSeq(t, "ctrl+k"), CommandID: "b", Priority: 10})

	if _, ok := r.ByID("loser"); ok {
		t.Fatalf("expected loser to not be registered")
	}
	if r.Count() != 1 {
		t.Fatalf("expected only one shortcut registered, got %d", r.Count())
	}
}

func TestRegistry_PrefixConflict_BothKept(t *testing.T) {
	r := NewRegistry()
	r.Register(Shortcut{ID: "single", Sequence: mustSeq(t, "ctrl+k"), CommandID: "a"})
	conflicts := r.Register(Shortcut{ID: "chord", Sequence: mustSeq(t, "ctrl+k ctrl+w"), CommandID: "b"})

	if len(conflicts) != 1 || conflicts[0].Kind != ConflictPrefix {
		t.Fatalf("expected one prefix conflict, got %+v", conflicts)
	}
	if _, ok := r.ByID("single"); !ok {
		t.Fatalf("expected single-chord shortcut to survive a prefix conflict")
	}
	if _, ok := r.ByID("chord"); !ok {
		t.Fatalf("expected chord-sequence shortcut to survive a prefix conflict")
	}
}

func TestRegistry_Unregister(t *testing.T) {
	r := NewRegistry()
	r.Register(Shortcut{ID: "s1", Sequence: mustSeq(t, "ctrl+t"), CommandID: "tab.create"})
	if !r.Unregister("s1") {
		t.Fatalf("expected unregister to succeed")
	}
	if r.Unregister("s1") {
		t.Fatalf("expected second unregister to fail")
	}
}

func TestRegistry_GetConflicts(t *testing.T) {
	r := NewRegistry()
	r.Register(Shortcut{ID: "s1", Sequence: mustSeq(t, "ctrl+k"), CommandID: "a", When: "focusA", Priority: 1})
	r.byID["s2"] = Shortcut{ID: "s2", Sequence: mustSeq(t, "ctrl+k"), CommandID: "b", When: "focusB", Priority: 1}

	conflicts := r.GetConflicts()
	if len(conflicts) != 1 {
		t.Fatalf("expected one conflicting sequence, got %+v", conflicts)
	}
}

func TestRegistry_LoadKeymap_ClearsOnlyKeymapShortcuts(t *testing.T) {
	r := NewRegistry()
	r.Register(Shortcut{ID: "user.override", Sequence: mustSeq(t, "ctrl+q"), CommandID: "quit", Source: SourceUser})
	r.LoadKeymap([]Shortcut{{ID: "km.one", Sequence: mustSeq(t, "ctrl+t"), CommandID: "tab.create"}})

	if _, ok := r.ByID("user.override"); !ok {
		t.Fatalf("expected user override to survive keymap load")
	}
	if _, ok := r.ByID("km.one"); !ok {
		t.Fatalf("expected keymap shortcut to be registered")
	}

	r.LoadKeymap([]Shortcut{{ID: "km.two", Sequence: mustSeq(t, "ctrl+n"), CommandID: "tab.new"}})
	if _, ok := r.ByID("km.one"); ok {
		t.Fatalf("expected previous keymap shortcut to be cleared")
	}
	if _, ok := r.ByID("user.override"); !ok {
		t.Fatalf("expected user override to still survive second keymap load")
	}
}
