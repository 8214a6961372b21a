package keyboard

import "testing"

func TestEvalWhen_EmptyIsAlwaysTrue(t *testing.T) {
	if !EvalWhen("", Context{}) {
		t.Fatalf("expected empty expression to be true")
	}
}

func TestEvalWhen_BareIdentifier(t *testing.T) {
	ctx := Context{"terminalFocus": true}
	if !EvalWhen("terminalFocus", ctx) {
		t.Fatalf("expected truthy lookup to pass")
	}
	if EvalWhen("editorFocus", ctx) {
		t.Fatalf("expected missing key to be falsy")
	}
}

func TestEvalWhen_AndOr(t *testing.T) {
	ctx := Context{"a": true, "b": false}
	if EvalWhen("a && b", ctx) {
		t.Fatalf("expected a && b to be false")
	}
	if !EvalWhen("a || b", ctx) {
		t.Fatalf("expected a || b to be true")
	}
}

func TestEvalWhen_Negation(t *testing.T) {
	ctx := Context{"vimMode": false}
	if !EvalWhen("!vimMode", ctx) {
		t.Fatalf("expected !vimMode to be true")
	}
}

func TestEvalWhen_StringEquality(t *testing.T) {
	ctx := Context{"mode": "terminal"}
	if !EvalWhen(`mode == "terminal"`, ctx) {
		t.Fatalf("expected string equality to hold")
	}
	if EvalWhen(`mode == "editor"`, ctx) {
		t.Fatalf("expected string equality to fail")
	}
}

func TestMergeContexts_LaterProviderWins(t *testing.T) {
	p1 := func() Context { return Context{"focus": "a"} }
	p2 := func() Context { return Context{"focus": "b"} }
	merged := MergeContexts(p1, p2)
	if merged["focus"] != "b" {
		t.Fatalf("expected later provider to win, got %v", merged["focus"])
	}
}
