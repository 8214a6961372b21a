package settings

import (
	"context"
	"fmt"

	"github.com/vilosource/viloxterm/internal/application/port"
	"github.com/vilosource/viloxterm/internal/keyboard"
)

// KeybindingsGateway adapts a live keyboard.Registry and this package's
// Manager to the application layer's KeybindingsProvider/Saver ports,
// the way the teacher's KeybindingsGateway wraps its own config.Manager.
// Unlike the teacher's mode-keyed groups (global/pane/tab/resize/session),
// this dispatcher has a single flat namespace gated by context
// expressions rather than modal state, so everything surfaces under one
// "global" group; DefaultKeys comes from the named keymap bundle that was
// loaded at startup.
type KeybindingsGateway struct {
	registry    *keyboard.Registry
	manager     *Manager
	defaultName keyboard.KeymapName
}

// NewKeybindingsGateway creates a gateway over registry, persisting
// overrides through manager and computing defaults from the given
// baseline keymap.
func NewKeybindingsGateway(registry *keyboard.Registry, manager *Manager, defaultKeymap keyboard.KeymapName) *KeybindingsGateway {
	return &KeybindingsGateway{registry: registry, manager: manager, defaultName: defaultKeymap}
}

func (g *KeybindingsGateway) defaultSequenceFor(commandID string) string {
	bundle, ok := keyboard.Bundle(g.defaultName)
	if !ok {
		return ""
	}
	for _, s := range bundle {
		if s.CommandID == commandID {
			return s.Sequence.String()
		}
	}
	return ""
}

func (g *KeybindingsGateway) buildGroup() port.KeybindingGroup {
	var entries []port.KeybindingEntry
	for _, s := range g.registry.All() {
		def := g.defaultSequenceFor(s.CommandID)
		entries = append(entries, port.KeybindingEntry{
			Action:      s.CommandID,
			Description: s.Description,
			Keys:        []string{s.Sequence.String()},
			DefaultKeys: []string{def},
			IsCustom:    s.Source == keyboard.SourceUser,
		})
	}
	return port.KeybindingGroup{Mode: "global", DisplayName: "Keyboard Shortcuts", Bindings: entries}
}

// GetKeybindings returns the current state of every registered shortcut.
func (g *KeybindingsGateway) GetKeybindings(_ context.Context) (port.KeybindingsConfig, error) {
	return port.KeybindingsConfig{Groups: []port.KeybindingGroup{g.buildGroup()}}, nil
}

// GetDefaultKeybindings returns what the active keymap bundle binds,
// ignoring any user overrides currently registered.
func (g *KeybindingsGateway) GetDefaultKeybindings(_ context.Context) (port.KeybindingsConfig, error) {
	bundle, ok := keyboard.Bundle(g.defaultName)
	if !ok {
		return port.KeybindingsConfig{}, fmt.Errorf("unknown default keymap %q", g.defaultName)
	}
	entries := make([]port.KeybindingEntry, 0, len(bundle))
	for _, s := range bundle {
		seq := s.Sequence.String()
		entries = append(entries, port.KeybindingEntry{
			Action:      s.CommandID,
			Description: s.Description,
			Keys:        []string{seq},
			DefaultKeys: []string{seq},
		})
	}
	return port.KeybindingsConfig{Groups: []port.KeybindingGroup{
		{Mode: "global", DisplayName: "Keyboard Shortcuts", Bindings: entries},
	}}, nil
}

// CheckConflicts reports existing shortcuts that would collide with
// binding keys[0] to the given action, regardless of mode (this dispatcher
// has no modal namespace to scope the check to).
func (g *KeybindingsGateway) CheckConflicts(_ context.Context, _, action string, keys []string) ([]port.KeybindingConflict, error) {
	if len(keys) == 0 {
		return nil, nil
	}
	seq, ok := keyboard.ParseSequence(keys[0])
	if !ok {
		return nil, fmt.Errorf("invalid key sequence %q", keys[0])
	}

	var conflicts []port.KeybindingConflict
	for _, s := range g.registry.All() {
		if s.CommandID == action {
			continue
		}
		if s.Sequence.Equal(seq) {
			conflicts = append(conflicts, port.KeybindingConflict{
				ConflictingAction: s.CommandID,
				ConflictingMode:   "global",
				Key:               keys[0],
			})
		}
	}
	return conflicts, nil
}

// SetKeybinding rebinds req.Action to req.Keys[0], persisting the override
// and re-registering it in the live registry as a user-sourced shortcut.
func (g *KeybindingsGateway) SetKeybinding(_ context.Context, req port.SetKeybindingRequest) error {
	if len(req.Keys) == 0 {
		return fmt.Errorf("at least one key sequence is required")
	}
	sequence := req.Keys[0]
	if err := g.manager.SetShortcut(req.Action, sequence); err != nil {
		return err
	}

	seq, _ := keyboard.ParseSequence(sequence)
	existing, hadExisting := g.findByCommand(req.Action)
	s := keyboard.Shortcut{
		ID:        fmt.Sprintf("user.%s", req.Action),
		Sequence:  seq,
		CommandID: req.Action,
		Source:    keyboard.SourceUser,
	}
	if hadExisting {
		s.Description = existing.Description
		s.When = existing.When
	}
	g.registry.Register(s)
	return nil
}

func (g *KeybindingsGateway) findByCommand(action string) (keyboard.Shortcut, bool) {
	for _, s := range g.registry.All() {
		if s.CommandID == action {
			return s, true
		}
	}
	return keyboard.Shortcut{}, false
}

// ResetKeybinding clears req.Action's override, reverting it to whatever
// the active keymap bundle provides.
func (g *KeybindingsGateway) ResetKeybinding(_ context.Context, req port.ResetKeybindingRequest) error {
	if err := g.manager.UnsetShortcut(req.Action); err != nil {
		return err
	}
	g.registry.Unregister(fmt.Sprintf("user.%s", req.Action))
	return nil
}

// ResetAllKeybindings clears every override.
func (g *KeybindingsGateway) ResetAllKeybindings(_ context.Context) error {
	return g.manager.ResetShortcuts()
}

var (
	_ port.KeybindingsProvider = (*KeybindingsGateway)(nil)
	_ port.KeybindingsSaver    = (*KeybindingsGateway)(nil)
)
