package settings

import (
	"os"
	"path/filepath"
	"testing"
)

func newTempManager(t *testing.T) (*Manager, string) {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.ini")
	m := NewManager()
	if err := m.Load(Options{SettingsFile: path}); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	return m, path
}

func TestManager_LoadWithMissingFileFallsBackToDefaults(t *testing.T) {
	m, _ := newTempManager(t)
	doc := m.Get()

	defaults := Defaults()
	if doc.Theme.Name != defaults.Theme.Name || doc.Theme.FontSize != defaults.Theme.FontSize {
		t.Fatalf("expected defaults, got %+v", doc.Theme)
	}
}

func TestManager_SaveThenLoadRoundTrips(t *testing.T) {
	m, path := newTempManager(t)

	doc := m.Get()
	doc.Theme.Name = "light"
	doc.Theme.FontSize = 16

	m.mu.Lock()
	m.doc = doc
	err := m.saveLocked()
	m.mu.Unlock()
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	reloaded := NewManager()
	if err := reloaded.Load(Options{SettingsFile: path}); err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	got := reloaded.Get()
	if got.Theme.Name != "light" || got.Theme.FontSize != 16 {
		t.Fatalf("expected persisted theme to round-trip, got %+v", got.Theme)
	}
}

func TestManager_InvalidPersistedValueFallsBackToDefault(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.ini")
	raw := "[theme]\ntheme=not-a-real-theme\nfont_size=12\n"
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatalf("write seed file: %v", err)
	}

	m := NewManager()
	if err := m.Load(Options{SettingsFile: path}); err != nil {
		t.Fatalf("load failed: %v", err)
	}

	doc := m.Get()
	if doc.Theme.Name != Defaults().Theme.Name {
		t.Fatalf("expected invalid theme to be discarded in favor of the default, got %q", doc.Theme.Name)
	}
}

func TestManager_SetShortcutValidatesSequence(t *testing.T) {
	m, _ := newTempManager(t)

	if err := m.SetShortcut("tab.create", "ctrl+t"); err != nil {
		t.Fatalf("expected valid sequence to be accepted, got %v", err)
	}
	if got := m.GetShortcuts()["tab.create"]; got != "ctrl+t" {
		t.Fatalf("expected shortcut to be stored, got %q", got)
	}

	if err := m.SetShortcut("tab.create", "not a valid chord!!"); err == nil {
		t.Fatalf("expected invalid sequence to be rejected")
	}
}

func TestManager_UnsetAndResetShortcuts(t *testing.T) {
	m, _ := newTempManager(t)
	_ = m.SetShortcut("tab.create", "ctrl+t")
	_ = m.SetShortcut("tab.close", "ctrl+w")

	if err := m.UnsetShortcut("tab.create"); err != nil {
		t.Fatalf("unset failed: %v", err)
	}
	if _, ok := m.GetShortcuts()["tab.create"]; ok {
		t.Fatalf("expected tab.create to be removed")
	}

	if err := m.ResetShortcuts(); err != nil {
		t.Fatalf("reset failed: %v", err)
	}
	if len(m.GetShortcuts()) != 0 {
		t.Fatalf("expected all shortcuts cleared after reset")
	}
}

func TestManager_ShortcutChangeIsRepublished(t *testing.T) {
	m, _ := newTempManager(t)

	var lastCommand, lastSequence string
	calls := 0
	m.OnShortcutChange(func(commandID, sequence string) {
		calls++
		lastCommand = commandID
		lastSequence = sequence
	})

	if err := m.SetShortcut("pane.split", "ctrl+\\"); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if calls != 1 || lastCommand != "pane.split" || lastSequence != "ctrl+\\" {
		t.Fatalf("expected listener to observe the new binding, got calls=%d command=%q seq=%q", calls, lastCommand, lastSequence)
	}
}

func TestManager_ResetAllRestoresDefaults(t *testing.T) {
	m, _ := newTempManager(t)

	doc := m.Get()
	doc.Theme.FontSize = 40
	m.mu.Lock()
	m.doc = doc
	m.mu.Unlock()

	if err := m.ResetAll(); err != nil {
		t.Fatalf("ResetAll failed: %v", err)
	}
	if got := m.Get().Theme.FontSize; got != Defaults().Theme.FontSize {
		t.Fatalf("expected font size reset to default, got %d", got)
	}
}

func TestManager_ToggleThemeFlipsBetweenDarkAndLight(t *testing.T) {
	m, _ := newTempManager(t)

	first := m.ToggleTheme()
	second := m.ToggleTheme()
	if first == second {
		t.Fatalf("expected theme to flip, got %q then %q", first, second)
	}
}

func TestManager_ExportImportRoundTrips(t *testing.T) {
	m, _ := newTempManager(t)
	_ = m.SetShortcut("tab.create", "ctrl+t")

	exportPath := filepath.Join(t.TempDir(), "exported.ini")
	if err := m.Export(exportPath); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	other, _ := newTempManager(t)
	n, err := other.Import(exportPath)
	if err != nil {
		t.Fatalf("import failed: %v", err)
	}
	if n == 0 {
		t.Fatalf("expected import to report at least one changed key")
	}
	if got := other.GetShortcuts()["tab.create"]; got != "ctrl+t" {
		t.Fatalf("expected imported shortcut to be present, got %q", got)
	}
}

func TestManager_BackupWritesTimestampedFile(t *testing.T) {
	m, _ := newTempManager(t)
	backupDir := t.TempDir()

	path, err := m.Backup(backupDir)
	if err != nil {
		t.Fatalf("backup failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected backup file to exist: %v", err)
	}
}

func TestResolveSettingsPath_FileWinsOverDir(t *testing.T) {
	path, _, err := resolveSettingsPath(Options{SettingsFile: "/explicit/file.ini", SettingsDir: "/other/dir"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if path != "/explicit/file.ini" {
		t.Fatalf("expected settings-file to win, got %q", path)
	}
}

func TestResolveSettingsPath_TempSettingsUsesScratchDir(t *testing.T) {
	path, tempDir, err := resolveSettingsPath(Options{TempSettings: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tempDir == "" {
		t.Fatalf("expected a temp dir to be created")
	}
	defer os.RemoveAll(tempDir)
	if filepath.Dir(path) != tempDir {
		t.Fatalf("expected settings file to live under the temp dir")
	}
}
