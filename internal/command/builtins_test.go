package command

import (
	"context"
	"testing"
)

func TestBuiltins_TabCreateAndClose(t *testing.T) {
	r, ctx := newRegistryWithModel(t)

	result := r.Execute("tab.create", ctx, map[string]any{"name": "Second"})
	if result.Status != StatusSuccess {
		t.Fatalf("expected success, got %+v", result)
	}
	newID := result.Data["tab_id"]

	result = r.Execute("tab.close", ctx, map[string]any{"tab_id": newID})
	if result.Status != StatusSuccess {
		t.Fatalf("expected close to succeed, got %+v", result)
	}
}

func TestBuiltins_TabCloseLastTabFails(t *testing.T) {
	r, ctx := newRegistryWithModel(t)

	result := r.Execute("tab.close", ctx, nil)
	if result.Status != StatusFailure {
		t.Fatalf("expected failure closing the only tab, got %+v", result)
	}
}

func TestBuiltins_PaneSplitAndClose(t *testing.T) {
	r, ctx := newRegistryWithModel(t)

	result := r.Execute("pane.splitHorizontal", ctx, nil)
	if result.Status != StatusSuccess {
		t.Fatalf("expected split to succeed, got %+v", result)
	}
	newPaneID := result.Data["new_pane_id"]

	result = r.Execute("pane.close", ctx, map[string]any{"pane_id": newPaneID})
	if result.Status != StatusSuccess {
		t.Fatalf("expected close to succeed, got %+v", result)
	}
}

func TestBuiltins_NavigateRight(t *testing.T) {
	r, ctx := newRegistryWithModel(t)

	split := r.Execute("pane.splitHorizontal", ctx, nil)
	if split.Status != StatusSuccess {
		t.Fatalf("setup split failed: %+v", split)
	}

	// Move focus back to the original (now-left) pane, then navigate right.
	original := ctx.Model.GetAllPanesInActiveTab()[0]
	if err := ctx.Model.FocusPane(context.Background(), original.ID); err != nil {
		t.Fatalf("focus failed: %v", err)
	}

	result := r.Execute("navigate.right", ctx, nil)
	if result.Status != StatusSuccess {
		t.Fatalf("expected navigate.right to succeed, got %+v", result)
	}
}

func TestBuiltins_UnknownCommandIsNotApplicable(t *testing.T) {
	r, ctx := newRegistryWithModel(t)
	result := r.Execute("nonexistent.command", ctx, nil)
	if result.Status != StatusNotApplicable {
		t.Fatalf("expected NotApplicable, got %+v", result)
	}
}

func TestBuiltins_SettingsCommandWithoutServiceIsNotApplicable(t *testing.T) {
	r, ctx := newRegistryWithModel(t)
	result := r.Execute("settings.open", ctx, nil)
	if result.Status != StatusNotApplicable {
		t.Fatalf("expected NotApplicable without a settings service, got %+v", result)
	}
}

func TestBuiltins_Alias(t *testing.T) {
	r, ctx := newRegistryWithModel(t)
	r.Alias("new-tab", "tab.create")

	result := r.Execute("new-tab", ctx, nil)
	if result.Status != StatusSuccess {
		t.Fatalf("expected aliased command to succeed, got %+v", result)
	}
}

func TestComposite_StopsOnFirstFailure(t *testing.T) {
	r, ctx := newRegistryWithModel(t)
	composite := NewComposite("composite.closeThenCloseAgain", r,
		CompositeStep{CommandName: "tab.create", Params: map[string]any{"name": "Extra"}},
		CompositeStep{CommandName: "tab.close", Params: map[string]any{"tab_id": "does-not-exist"}},
		CompositeStep{CommandName: "tab.create", Params: map[string]any{"name": "Unreached"}},
	)

	result := composite.Execute(ctx)
	if result.Status != StatusFailure {
		t.Fatalf("expected composite to fail at step 2, got %+v", result)
	}
	steps, ok := result.Data["steps"].([]Result)
	if !ok || len(steps) != 2 {
		t.Fatalf("expected exactly 2 step results recorded, got %+v", result.Data)
	}
}
