package settings

// This file adapts Manager to the narrow consumer-side interfaces the
// command package declares (command.Resetter, command.ThemeToggler,
// command.ShortcutSetter) so it can be registered in a command.Context's
// ServiceLocator under the name "settings" without command importing this
// package. SetShortcut/ResetShortcuts already match command.ShortcutSetter
// structurally; ResetAll and ToggleTheme are added here.

// ResetAll restores every category to its default and persists the
// result, satisfying command.Resetter.
func (m *Manager) ResetAll() error {
	return m.Reset()
}

// ToggleTheme flips between the two built-in themes and returns the name
// now in effect, satisfying command.ThemeToggler. A theme of "system"
// toggles to "dark" rather than round-tripping through light/dark/system.
func (m *Manager) ToggleTheme() string {
	m.mu.Lock()
	if m.doc.Theme.Name == "dark" {
		m.doc.Theme.Name = "light"
	} else {
		m.doc.Theme.Name = "dark"
	}
	next := m.doc.Theme.Name
	_ = m.saveLocked()
	m.mu.Unlock()
	return next
}
