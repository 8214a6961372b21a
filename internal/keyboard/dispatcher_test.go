package keyboard

import "testing"

func TestDispatcher_SingleChordFiresImmediately(t *testing.T) {
	r := NewRegistry()
	r.Register(Shortcut{ID: "s1", Sequence: mustSeq(t, "ctrl+t"), CommandID: "tab.create"})
	d := NewDispatcher(r)

	cmd, fired := d.HandleChord(NewChord("t", ModCtrl), Context{})
	if !fired || cmd != "tab.create" {
		t.Fatalf("expected tab.create to fire, got %q fired=%v", cmd, fired)
	}
	if d.InAwaitingContinuation() {
		t.Fatalf("expected dispatcher to return to Idle")
	}
}

func TestDispatcher_PrefixOnlyEntersAwaitingContinuation(t *testing.T) {
	r := NewRegistry()
	r.Register(Shortcut{ID: "s1", Sequence: mustSeq(t, "ctrl+k ctrl+w"), CommandID: "pane.close"})
	d := NewDispatcher(r)

	var started bool
	d.OnSignal(func(sig Signal) {
		if sig.Kind == SignalChordSequenceStarted {
			started = true
		}
	})

	_, fired := d.HandleChord(NewChord("k", ModCtrl), Context{})
	if fired {
		t.Fatalf("expected no command to fire on the prefix chord")
	}
	if !d.InAwaitingContinuation() {
		t.Fatalf("expected dispatcher to be awaiting continuation")
	}
	if !started {
		t.Fatalf("expected chord_sequence_started signal")
	}

	cmd, fired := d.HandleChord(NewChord("w", ModCtrl), Context{})
	if !fired || cmd != "pane.close" {
		t.Fatalf("expected pane.close to fire on continuation, got %q fired=%v", cmd, fired)
	}
	if d.InAwaitingContinuation() {
		t.Fatalf("expected dispatcher to return to Idle after firing")
	}
}

func TestDispatcher_NonMatchAfterPrefixCancels(t *testing.T) {
	r := NewRegistry()
	r.Register(Shortcut{ID: "s1", Sequence: mustSeq(t, "ctrl+k ctrl+w"), CommandID: "pane.close"})
	d := NewDispatcher(r)

	d.HandleChord(NewChord("k", ModCtrl), Context{})

	var cancelled bool
	d.OnSignal(func(sig Signal) {
		if sig.Kind == SignalChordSequenceCancelled {
			cancelled = true
		}
	})

	cmd, fired := d.HandleChord(NewChord("z", ModCtrl), Context{})
	if fired || cmd != "" {
		t.Fatalf("expected no command to fire on an unmatched continuation")
	}
	if !cancelled {
		t.Fatalf("expected chord_sequence_cancelled signal")
	}
	if d.InAwaitingContinuation() {
		t.Fatalf("expected dispatcher to return to Idle")
	}
}

func TestDispatcher_AmbiguousPrefixAndExactMatch_TimeoutCommitsPending(t *testing.T) {
	r := NewRegistry()
	r.Register(Shortcut{ID: "single", Sequence: mustSeq(t, "ctrl+k"), CommandID: "focus.next"})
	r.Register(Shortcut{ID: "chord", Sequence: mustSeq(t, "ctrl+k ctrl+w"), CommandID: "pane.close"})
	d := NewDispatcher(r)

	_, fired := d.HandleChord(NewChord("k", ModCtrl), Context{})
	if fired {
		t.Fatalf("expected no immediate fire when a longer continuation is possible")
	}
	if !d.InAwaitingContinuation() {
		t.Fatalf("expected AwaitingContinuation since a prefix match also exists")
	}

	cmd, fired := d.Timeout()
	if !fired || cmd != "focus.next" {
		t.Fatalf("expected focus.next to fire on timeout, got %q fired=%v", cmd, fired)
	}
	if d.InAwaitingContinuation() {
		t.Fatalf("expected Idle after timeout")
	}
}

func TestDispatcher_ContinuationSupersedesPendingMatch(t *testing.T) {
	r := NewRegistry()
	r.Register(Shortcut{ID: "single", Sequence: mustSeq(t, "ctrl+k"), CommandID: "focus.next"})
	r.Register(Shortcut{ID: "chord", Sequence: mustSeq(t, "ctrl+k ctrl+w"), CommandID: "pane.close"})
	d := NewDispatcher(r)

	d.HandleChord(NewChord("k", ModCtrl), Context{})
	cmd, fired := d.HandleChord(NewChord("w", ModCtrl), Context{})
	if !fired || cmd != "pane.close" {
		t.Fatalf("expected pane.close to supersede the pending single-chord match, got %q", cmd)
	}
}

func TestDispatcher_Reset_CancelsWithoutFiring(t *testing.T) {
	r := NewRegistry()
	r.Register(Shortcut{ID: "chord", Sequence: mustSeq(t, "ctrl+k ctrl+w"), CommandID: "pane.close"})
	d := NewDispatcher(r)

	d.HandleChord(NewChord("k", ModCtrl), Context{})
	d.Reset()

	if d.InAwaitingContinuation() {
		t.Fatalf("expected Reset to return to Idle")
	}
}

func TestDispatcher_ContextGatesMatch(t *testing.T) {
	r := NewRegistry()
	r.Register(Shortcut{ID: "s1", Sequence: mustSeq(t, "ctrl+c"), CommandID: "term.interrupt", When: "terminalFocus"})
	d := NewDispatcher(r)

	_, fired := d.HandleChord(NewChord("c", ModCtrl), Context{})
	if fired {
		t.Fatalf("expected no fire without terminalFocus")
	}

	cmd, fired := d.HandleChord(NewChord("c", ModCtrl), Context{"terminalFocus": true})
	if !fired || cmd != "term.interrupt" {
		t.Fatalf("expected term.interrupt to fire with terminalFocus, got %q", cmd)
	}
}
