package command

import (
	"context"
	"fmt"

	"github.com/vilosource/viloxterm/internal/application/usecase"
	"github.com/vilosource/viloxterm/internal/domain/entity"
)

// RegisterBuiltins populates registry with the minimum required command
// catalog: tab, pane, navigation, settings, and state commands, each a thin
// wrapper around the corresponding workspace.Model operation.
func RegisterBuiltins(registry *Registry) {
	registerTabCommands(registry)
	registerPaneCommands(registry)
	registerNavigationCommands(registry)
	registerSettingsCommands(registry)
	registerStateCommands(registry)
}

// namedCommand adapts a name + execute func into a Command without a
// bespoke struct per builtin; CanExecute always defaults to true, matching
// spec.md's base behavior.
type namedCommand struct {
	BaseCommand
	name string
	run  func(ctx Context) Result
}

func (c *namedCommand) Name() string            { return c.name }
func (c *namedCommand) Execute(ctx Context) Result { return c.run(ctx) }

func simple(name string, run func(ctx Context) Result) Constructor {
	return func(map[string]any) Command {
		return &namedCommand{name: name, run: run}
	}
}

func registerTabCommands(r *Registry) {
	r.Register("tab.create", simple("tab.create", func(ctx Context) Result {
		name := ctx.ParamString("name")
		kind := entity.WidgetTerminal
		if k := ctx.ParamString("widget_kind"); k != "" {
			kind = entity.WidgetKind(k)
		}
		id, err := ctx.Model.CreateTab(context.Background(), name, kind)
		if err != nil {
			return Fail("tab.create failed", err)
		}
		return Ok("tab created", map[string]any{"tab_id": id})
	}))

	r.Register("tab.close", simple("tab.close", func(ctx Context) Result {
		id := entity.TabID(ctx.ParamString("tab_id"))
		if id == "" {
			id = ctx.ResolveTabID()
		}
		if err := ctx.Model.CloseTab(context.Background(), id); err != nil {
			return Fail("tab.close failed", err)
		}
		return Ok("tab closed", nil)
	}))

	r.Register("tab.rename", simple("tab.rename", func(ctx Context) Result {
		id := entity.TabID(ctx.ParamString("tab_id"))
		if id == "" {
			id = ctx.ResolveTabID()
		}
		name := ctx.ParamString("name")
		if err := ctx.Model.RenameTab(context.Background(), id, name); err != nil {
			return Fail("tab.rename failed", err)
		}
		return Ok("tab renamed", nil)
	}))

	r.Register("tab.switch", simple("tab.switch", func(ctx Context) Result {
		id := entity.TabID(ctx.ParamString("tab_id"))
		if err := ctx.Model.SetActiveTab(context.Background(), id); err != nil {
			return Fail("tab.switch failed", err)
		}
		return Ok("active tab changed", map[string]any{"tab_id": id})
	}))

	r.Register("tab.duplicate", simple("tab.duplicate", func(ctx Context) Result {
		id := entity.TabID(ctx.ParamString("tab_id"))
		if id == "" {
			id = ctx.ResolveTabID()
		}
		newID, err := ctx.Model.DuplicateTab(context.Background(), id)
		if err != nil {
			return Fail("tab.duplicate failed", err)
		}
		return Ok("tab duplicated", map[string]any{"new_tab_id": newID})
	}))

	r.Register("tab.next", simple("tab.next", func(ctx Context) Result {
		id := ctx.Model.NextTab()
		return Ok("switched to next tab", map[string]any{"tab_id": id})
	}))

	r.Register("tab.previous", simple("tab.previous", func(ctx Context) Result {
		id := ctx.Model.PreviousTab()
		return Ok("switched to previous tab", map[string]any{"tab_id": id})
	}))
}

func splitConstructor(name string, direction usecase.SplitDirection) Constructor {
	return simple(name, func(ctx Context) Result {
		paneID := entity.PaneID(ctx.ParamString("pane_id"))
		if paneID == "" {
			paneID = ctx.ResolvePaneID()
		}
		newID, err := ctx.Model.SplitPane(context.Background(), paneID, direction)
		if err != nil {
			return Fail(name+" failed", err)
		}
		return Ok("pane split", map[string]any{"new_pane_id": newID})
	})
}

func registerPaneCommands(r *Registry) {
	// pane.split takes its orientation from an "orientation" parameter
	// (left|right|up|down), defaulting to right.
	r.Register("pane.split", func(params map[string]any) Command {
		direction := usecase.SplitRight
		if o, ok := params["orientation"].(string); ok && o != "" {
			direction = usecase.SplitDirection(o)
		}
		return &namedCommand{name: "pane.split", run: func(ctx Context) Result {
			paneID := ctx.ResolvePaneID()
			if id := ctx.ParamString("pane_id"); id != "" {
				paneID = entity.PaneID(id)
			}
			newID, err := ctx.Model.SplitPane(context.Background(), paneID, direction)
			if err != nil {
				return Fail("pane.split failed", err)
			}
			return Ok("pane split", map[string]any{"new_pane_id": newID})
		}}
	})
	r.Register("pane.splitHorizontal", splitConstructor("pane.splitHorizontal", usecase.SplitRight))
	r.Register("pane.splitVertical", splitConstructor("pane.splitVertical", usecase.SplitDown))

	r.Register("pane.close", simple("pane.close", func(ctx Context) Result {
		paneID := entity.PaneID(ctx.ParamString("pane_id"))
		if paneID == "" {
			paneID = ctx.ResolvePaneID()
		}
		if err := ctx.Model.ClosePane(context.Background(), paneID); err != nil {
			return Fail("pane.close failed", err)
		}
		return Ok("pane closed", nil)
	}))

	r.Register("pane.focus", simple("pane.focus", func(ctx Context) Result {
		paneID := entity.PaneID(ctx.ParamString("pane_id"))
		if err := ctx.Model.FocusPane(context.Background(), paneID); err != nil {
			return Fail("pane.focus failed", err)
		}
		return Ok("pane focused", map[string]any{"pane_id": paneID})
	}))

	r.Register("pane.changeWidget", simple("pane.changeWidget", func(ctx Context) Result {
		paneID := entity.PaneID(ctx.ParamString("pane_id"))
		if paneID == "" {
			paneID = ctx.ResolvePaneID()
		}
		kind := entity.WidgetKind(ctx.ParamString("widget_kind"))
		if err := ctx.Model.ChangePaneWidget(paneID, kind); err != nil {
			return Fail("pane.changeWidget failed", err)
		}
		return Ok("pane widget changed", nil)
	}))

	// pane.replace_widget is an alias over the same model operation with a
	// "widget_id" parameter naming the replacement widget kind.
	r.Register("pane.replace_widget", simple("pane.replace_widget", func(ctx Context) Result {
		paneID := entity.PaneID(ctx.ParamString("pane_id"))
		if paneID == "" {
			paneID = ctx.ResolvePaneID()
		}
		kind := entity.WidgetKind(ctx.ParamString("widget_id"))
		if err := ctx.Model.ChangePaneWidget(paneID, kind); err != nil {
			return Fail("pane.replace_widget failed", err)
		}
		return Ok("pane widget replaced", nil)
	}))

	r.Register("pane.maximize_toggle", simple("pane.maximize_toggle", func(ctx Context) Result {
		paneID := ctx.ResolvePaneID()
		updates := map[string]any{"maximized": !isMaximized(ctx, paneID)}
		if err := ctx.Model.UpdateWidgetState(paneID, updates, true); err != nil {
			return Fail("pane.maximize_toggle failed", err)
		}
		return Ok("pane maximize toggled", updates)
	}))
}

func isMaximized(ctx Context, paneID entity.PaneID) bool {
	pane := ctx.Model.GetPane(paneID)
	if pane == nil || pane.WidgetState == nil {
		return false
	}
	v, _ := pane.WidgetState["maximized"].(bool)
	return v
}

func navConstructor(name string, direction usecase.NavigateDirection) Constructor {
	return simple(name, func(ctx Context) Result {
		paneID := ctx.ResolvePaneID()
		target, err := ctx.Model.FindPaneInDirection(context.Background(), paneID, direction)
		if err != nil {
			return Fail(name+" failed", err)
		}
		if target == "" {
			return Result{Status: StatusNotApplicable, Message: "no pane in that direction"}
		}
		if err := ctx.Model.FocusPane(context.Background(), target); err != nil {
			return Fail(name+" failed to focus target pane", err)
		}
		return Ok("focus moved", map[string]any{"pane_id": target})
	})
}

func registerNavigationCommands(r *Registry) {
	r.Register("navigate.left", navConstructor("navigate.left", usecase.NavLeft))
	r.Register("navigate.right", navConstructor("navigate.right", usecase.NavRight))
	r.Register("navigate.up", navConstructor("navigate.up", usecase.NavUp))
	r.Register("navigate.down", navConstructor("navigate.down", usecase.NavDown))

	r.Register("navigate.nextPane", simple("navigate.nextPane", func(ctx Context) Result {
		panes := ctx.Model.GetAllPanesInActiveTab()
		return cyclePane(ctx, panes, ctx.ResolvePaneID(), 1)
	}))
	r.Register("navigate.previousPane", simple("navigate.previousPane", func(ctx Context) Result {
		panes := ctx.Model.GetAllPanesInActiveTab()
		return cyclePane(ctx, panes, ctx.ResolvePaneID(), -1)
	}))

	r.Register("navigate.toPaneNumber", simple("navigate.toPaneNumber", func(ctx Context) Result {
		n, _ := ctx.Param("n")
		idx, ok := n.(int)
		if !ok || idx < 1 {
			return Result{Status: StatusNotApplicable, Message: "invalid pane number"}
		}
		panes := ctx.Model.GetAllPanesInActiveTab()
		for _, p := range panes {
			if ctx.Model.PaneReadingIndex(p.ID) == idx {
				if err := ctx.Model.FocusPane(context.Background(), p.ID); err != nil {
					return Fail("navigate.toPaneNumber failed", err)
				}
				return Ok("focus moved", map[string]any{"pane_id": p.ID})
			}
		}
		return Result{Status: StatusNotApplicable, Message: fmt.Sprintf("no pane numbered %d", idx)}
	}))
}

func cyclePane(ctx Context, panes []*entity.Pane, current entity.PaneID, step int) Result {
	if len(panes) == 0 {
		return Result{Status: StatusNotApplicable, Message: "no panes"}
	}
	idx := 0
	for i, p := range panes {
		if p.ID == current {
			idx = i
			break
		}
	}
	next := ((idx+step)%len(panes) + len(panes)) % len(panes)
	target := panes[next].ID
	if err := ctx.Model.FocusPane(context.Background(), target); err != nil {
		return Fail("pane cycle failed", err)
	}
	return Ok("focus moved", map[string]any{"pane_id": target})
}

// registerSettingsCommands registers thin commands that delegate to a
// "settings" service resolved through the context's ServiceLocator, since
// the settings engine lives in a separate package this one only depends on
// through that narrow interface.
func registerSettingsCommands(r *Registry) {
	r.Register("settings.open", simple("settings.open", func(ctx Context) Result {
		if _, ok := ctx.ServiceLocator.Service("settings"); !ok {
			return Result{Status: StatusNotApplicable, Message: "settings service unavailable"}
		}
		return Ok("settings opened", nil)
	}))

	r.Register("settings.reset", simple("settings.reset", func(ctx Context) Result {
		svc, ok := resolveResetter(ctx)
		if !ok {
			return Result{Status: StatusNotApplicable, Message: "settings service unavailable"}
		}
		if err := svc.ResetAll(); err != nil {
			return Fail("settings.reset failed", err)
		}
		return Ok("settings reset", nil)
	}))

	r.Register("settings.toggleTheme", simple("settings.toggleTheme", func(ctx Context) Result {
		svc, ok := resolveThemeToggler(ctx)
		if !ok {
			return Result{Status: StatusNotApplicable, Message: "settings service unavailable"}
		}
		theme := svc.ToggleTheme()
		return Ok("theme toggled", map[string]any{"theme": theme})
	}))

	r.Register("settings.setShortcut", simple("settings.setShortcut", func(ctx Context) Result {
		svc, ok := resolveShortcutSetter(ctx)
		if !ok {
			return Result{Status: StatusNotApplicable, Message: "settings service unavailable"}
		}
		commandID := ctx.ParamString("command_id")
		sequence := ctx.ParamString("sequence")
		if err := svc.SetShortcut(commandID, sequence); err != nil {
			return Fail("settings.setShortcut failed", err)
		}
		return Ok("shortcut set", map[string]any{"command_id": commandID, "sequence": sequence})
	}))

	r.Register("settings.resetShortcuts", simple("settings.resetShortcuts", func(ctx Context) Result {
		svc, ok := resolveShortcutSetter(ctx)
		if !ok {
			return Result{Status: StatusNotApplicable, Message: "settings service unavailable"}
		}
		if err := svc.ResetShortcuts(); err != nil {
			return Fail("settings.resetShortcuts failed", err)
		}
		return Ok("shortcuts reset", nil)
	}))
}

// Resetter, ThemeToggler, and ShortcutSetter are the narrow slices of the
// settings engine these commands need, kept here (rather than imported from
// internal/settings) so this package has no compile-time dependency on it.
type Resetter interface{ ResetAll() error }
type ThemeToggler interface{ ToggleTheme() string }
type ShortcutSetter interface {
	SetShortcut(commandID, sequence string) error
	ResetShortcuts() error
}

func resolveResetter(ctx Context) (Resetter, bool) {
	v, ok := ctx.ServiceLocator.Service("settings")
	if !ok {
		return nil, false
	}
	svc, ok := v.(Resetter)
	return svc, ok
}

func resolveThemeToggler(ctx Context) (ThemeToggler, bool) {
	v, ok := ctx.ServiceLocator.Service("settings")
	if !ok {
		return nil, false
	}
	svc, ok := v.(ThemeToggler)
	return svc, ok
}

func resolveShortcutSetter(ctx Context) (ShortcutSetter, bool) {
	v, ok := ctx.ServiceLocator.Service("settings")
	if !ok {
		return nil, false
	}
	svc, ok := v.(ShortcutSetter)
	return svc, ok
}

// StateStore is the narrow persistence slice state.save/state.restore need.
type StateStore interface {
	Save() error
	Restore() error
}

func registerStateCommands(r *Registry) {
	r.Register("state.save", simple("state.save", func(ctx Context) Result {
		svc, ok := ctx.ServiceLocator.Service("autosave")
		if !ok {
			return Result{Status: StatusNotApplicable, Message: "autosave service unavailable"}
		}
		store, ok := svc.(StateStore)
		if !ok {
			return Result{Status: StatusNotApplicable, Message: "autosave service unavailable"}
		}
		if err := store.Save(); err != nil {
			return Fail("state.save failed", err)
		}
		return Ok("state saved", nil)
	}))

	r.Register("state.restore", simple("state.restore", func(ctx Context) Result {
		svc, ok := ctx.ServiceLocator.Service("autosave")
		if !ok {
			return Result{Status: StatusNotApplicable, Message: "autosave service unavailable"}
		}
		store, ok := svc.(StateStore)
		if !ok {
			return Result{Status: StatusNotApplicable, Message: "autosave service unavailable"}
		}
		if err := store.Restore(); err != nil {
			return Fail("state.restore failed", err)
		}
		return Ok("state restored", nil)
	}))
}
