package settings

import (
	"context"
	"testing"

	"github.com/vilosource/viloxterm/internal/application/port"
	"github.com/vilosource/viloxterm/internal/keyboard"
)

func newGatewayFixture(t *testing.T) (*KeybindingsGateway, *keyboard.Registry) {
	t.Helper()
	registry := keyboard.NewRegistry()
	bundle, ok := keyboard.Bundle(keyboard.KeymapDefault)
	if !ok {
		t.Fatalf("expected default keymap bundle to exist")
	}
	registry.LoadKeymap(bundle)

	m, _ := newTempManager(t)
	return NewKeybindingsGateway(registry, m, keyboard.KeymapDefault), registry
}

func TestKeybindingsGateway_GetKeybindingsListsRegistered(t *testing.T) {
	gw, _ := newGatewayFixture(t)

	cfg, err := gw.GetKeybindings(context.Background())
	if err != nil {
		t.Fatalf("GetKeybindings failed: %v", err)
	}
	if len(cfg.Groups) != 1 || len(cfg.Groups[0].Bindings) == 0 {
		t.Fatalf("expected at least one bound shortcut, got %+v", cfg)
	}
}

func TestKeybindingsGateway_SetKeybindingPersistsAndRebinds(t *testing.T) {
	gw, registry := newGatewayFixture(t)

	err := gw.SetKeybinding(context.Background(), port.SetKeybindingRequest{Action: "tab.create", Keys: []string{"ctrl+shift+t"}})
	if err != nil {
		t.Fatalf("SetKeybinding failed: %v", err)
	}

	s, ok := registry.ByID("user.tab.create")
	if !ok {
		t.Fatalf("expected a user-sourced shortcut to be registered")
	}
	if s.Sequence.String() != "ctrl+shift+t" {
		t.Fatalf("expected the new sequence to be registered, got %q", s.Sequence.String())
	}
}

func TestKeybindingsGateway_ResetKeybindingRemovesOverride(t *testing.T) {
	gw, registry := newGatewayFixture(t)
	_ = gw.SetKeybinding(context.Background(), port.SetKeybindingRequest{Action: "tab.create", Keys: []string{"ctrl+shift+t"}})

	if err := gw.ResetKeybinding(context.Background(), port.ResetKeybindingRequest{Action: "tab.create"}); err != nil {
		t.Fatalf("ResetKeybinding failed: %v", err)
	}
	if _, ok := registry.ByID("user.tab.create"); ok {
		t.Fatalf("expected user override to be removed after reset")
	}
}

func TestKeybindingsGateway_CheckConflictsDetectsCollision(t *testing.T) {
	gw, _ := newGatewayFixture(t)

	bundle, _ := keyboard.Bundle(keyboard.KeymapDefault)
	existing := bundle[0]

	conflicts, err := gw.CheckConflicts(context.Background(), "global", "some.other.command", []string{existing.Sequence.String()})
	if err != nil {
		t.Fatalf("CheckConflicts failed: %v", err)
	}
	if len(conflicts) == 0 {
		t.Fatalf("expected a conflict against an existing binding")
	}
}
