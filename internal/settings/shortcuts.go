package settings

import (
	"fmt"

	"github.com/vilosource/viloxterm/internal/keyboard"
)

// ShortcutChangeListener is re-published to whenever the keyboard-shortcut
// map changes, so a registered keyboard.Dispatcher can reload its bindings
// without the settings engine importing the dispatcher directly.
type ShortcutChangeListener func(commandID, sequence string)

// SetShortcut validates sequence against the chord grammar, stores it
// under commandID, persists the document, and re-publishes the change to
// every registered listener.
func (m *Manager) SetShortcut(commandID, sequence string) error {
	if sequence != "" {
		if err := keyboard.ValidateSequence(sequence); err != nil {
			return fmt.Errorf("invalid shortcut sequence for %s: %w", commandID, err)
		}
	}

	m.mu.Lock()
	if m.doc.KeyboardShortcuts == nil {
		m.doc.KeyboardShortcuts = map[string]string{}
	}
	m.doc.KeyboardShortcuts[commandID] = sequence
	err := m.saveLocked()
	listeners := make([]ShortcutChangeListener, len(m.shortcutListeners))
	copy(listeners, m.shortcutListeners)
	m.mu.Unlock()

	if err != nil {
		return err
	}
	for _, l := range listeners {
		l(commandID, sequence)
	}
	return nil
}

// UnsetShortcut removes a command's custom binding, reverting it to
// whatever the active keymap bundle provides.
func (m *Manager) UnsetShortcut(commandID string) error {
	m.mu.Lock()
	delete(m.doc.KeyboardShortcuts, commandID)
	err := m.saveLocked()
	listeners := make([]ShortcutChangeListener, len(m.shortcutListeners))
	copy(listeners, m.shortcutListeners)
	m.mu.Unlock()

	if err != nil {
		return err
	}
	for _, l := range listeners {
		l(commandID, "")
	}
	return nil
}

// GetShortcuts returns a defensive copy of the command-id -> sequence map.
func (m *Manager) GetShortcuts() map[string]string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make(map[string]string, len(m.doc.KeyboardShortcuts))
	for k, v := range m.doc.KeyboardShortcuts {
		out[k] = v
	}
	return out
}

// ResetShortcuts clears every custom binding back to empty (reverting to
// keymap/built-in bindings) and persists the result.
func (m *Manager) ResetShortcuts() error {
	m.mu.Lock()
	m.doc.KeyboardShortcuts = map[string]string{}
	err := m.saveLocked()
	listeners := make([]ShortcutChangeListener, len(m.shortcutListeners))
	copy(listeners, m.shortcutListeners)
	m.mu.Unlock()

	if err != nil {
		return err
	}
	for _, l := range listeners {
		l("*", "")
	}
	return nil
}

// OnShortcutChange registers a listener invoked after every successful
// SetShortcut/UnsetShortcut/ResetShortcuts call.
func (m *Manager) OnShortcutChange(listener ShortcutChangeListener) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.shortcutListeners = append(m.shortcutListeners, listener)
}
