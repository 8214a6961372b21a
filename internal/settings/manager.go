package settings

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	zlog "github.com/rs/zerolog/log"
	"github.com/spf13/viper"
	"gopkg.in/ini.v1"
)

const envPrefix = "VILOXTERM"

// Manager owns one settings document: loading, layered merge, validation,
// INI persistence, and live reload. It mirrors the teacher's viper-backed
// config.Manager lifecycle (NewManager/Load/Get/Watch/OnConfigChange),
// generalized from a single YAML/JSON/TOML file to the INI format and the
// CLI/env bootstrap surface this engine's schema specifies.
type Manager struct {
	mu        sync.RWMutex
	viper     *viper.Viper
	doc       Document
	path      string
	tempDir   string
	callbacks []func(Document)
	watcher   *fsnotify.Watcher

	shortcutListeners []ShortcutChangeListener
}

// NewManager builds a Manager without loading anything yet; call Load to
// resolve the settings location and populate the document.
func NewManager() *Manager {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return &Manager{viper: v}
}

// Load resolves where settings live per opts, reads any existing file,
// layers defaults -> persisted file -> environment, validates, and leaves
// the manager ready for Get/Save. A missing file is not an error: the
// document falls back to defaults and Save will create it.
func (m *Manager) Load(opts Options) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	path, tempDir, err := resolveSettingsPath(opts)
	if err != nil {
		return fmt.Errorf("resolve settings path: %w", err)
	}
	m.path = path
	m.tempDir = tempDir

	if opts.ResetSettings {
		_ = os.Remove(path)
	}

	for key, value := range defaultsMap() {
		m.viper.SetDefault(key, value)
	}

	if _, statErr := os.Stat(path); statErr == nil {
		f, loadErr := ini.Load(path)
		if loadErr != nil {
			return fmt.Errorf("parse settings file %s: %w", path, loadErr)
		}
		if mergeErr := m.viper.MergeConfigMap(iniToNestedMap(f)); mergeErr != nil {
			return fmt.Errorf("merge settings file %s: %w", path, mergeErr)
		}
	}

	doc := Defaults()
	if err := m.viper.Unmarshal(&doc); err != nil {
		return fmt.Errorf("unmarshal settings: %w", err)
	}
	if doc.KeyboardShortcuts == nil {
		doc.KeyboardShortcuts = map[string]string{}
	}

	m.doc = sanitize(doc)
	return nil
}

// sanitize discards any category whose values fail validation, replacing
// it with its default rather than rejecting the whole document — the
// "offending value is discarded and the default is kept" recovery rule.
func sanitize(doc Document) Document {
	defaults := Defaults()
	for _, name := range categoryNames {
		if errs := ValidateCategory(name, doc); len(errs) > 0 {
			resetCategory(&doc, name, defaults)
		}
	}
	return doc
}

func resetCategory(doc *Document, name string, defaults Document) {
	switch name {
	case "command_palette":
		doc.CommandPalette = defaults.CommandPalette
	case "theme":
		doc.Theme = defaults.Theme
	case "ui":
		doc.UI = defaults.UI
	case "workspace":
		doc.Workspace = defaults.Workspace
	case "editor":
		doc.Editor = defaults.Editor
	case "terminal":
		doc.Terminal = defaults.Terminal
	case "performance":
		doc.Performance = defaults.Performance
	case "privacy":
		doc.Privacy = defaults.Privacy
	case "keyboard_shortcuts":
		for cmd := range doc.KeyboardShortcuts {
			if keyErrs := validateKeyboardShortcuts(map[string]string{cmd: doc.KeyboardShortcuts[cmd]}); len(keyErrs) > 0 {
				delete(doc.KeyboardShortcuts, cmd)
			}
		}
	}
}

// Get returns a defensive copy of the current document: reads from
// auxiliary tasks take a snapshot by value, never a live reference.
func (m *Manager) Get() Document {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return copyDocument(m.doc)
}

func copyDocument(doc Document) Document {
	out := doc
	out.KeyboardShortcuts = make(map[string]string, len(doc.KeyboardShortcuts))
	for k, v := range doc.KeyboardShortcuts {
		out.KeyboardShortcuts[k] = v
	}
	return out
}

// Save validates the current in-memory document and writes it to disk
// under a single-writer discipline: callers mutate via Set/SetShortcut,
// then Save persists the result.
func (m *Manager) Save() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saveLocked()
}

func (m *Manager) saveLocked() error {
	if errs := Validate(m.doc); len(errs) > 0 {
		return fmt.Errorf("settings save rejected: %v", errs)
	}
	if err := os.MkdirAll(filepath.Dir(m.path), 0o755); err != nil {
		return fmt.Errorf("create settings dir: %w", err)
	}
	f, err := encodeINI(m.doc)
	if err != nil {
		return err
	}
	if err := f.SaveTo(m.path); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}
	return nil
}

// Reset replaces the document with built-in defaults and persists it.
func (m *Manager) Reset() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.doc = Defaults()
	return m.saveLocked()
}

// Export writes the current document to an arbitrary path, independent of
// the manager's own settings file location.
func (m *Manager) Export(path string) error {
	m.mu.RLock()
	doc := m.doc
	m.mu.RUnlock()

	f, err := encodeINI(doc)
	if err != nil {
		return err
	}
	return f.SaveTo(path)
}

// Import reads an INI file from path and merges it on top of the current
// document, returning the number of keys it applied.
func (m *Manager) Import(path string) (int, error) {
	f, err := ini.Load(path)
	if err != nil {
		return 0, fmt.Errorf("parse import file %s: %w", path, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	before := m.doc
	merged, err := decodeINI(f, m.doc)
	if err != nil {
		return 0, err
	}
	merged = sanitize(merged)
	m.doc = merged

	return countChangedKeys(before, merged), m.saveLocked()
}

func countChangedKeys(before, after Document) int {
	count := 0
	if before.Theme != after.Theme {
		count++
	}
	if before.UI != after.UI {
		count++
	}
	if before.Workspace != after.Workspace {
		count++
	}
	if before.Editor != after.Editor {
		count++
	}
	if before.Terminal != after.Terminal {
		count++
	}
	if before.Performance != after.Performance {
		count++
	}
	if before.Privacy != after.Privacy {
		count++
	}
	if before.CommandPalette != after.CommandPalette {
		count++
	}
	count += len(after.KeyboardShortcuts)
	return count
}

// Backup copies the current settings file into dir, named with a
// timestamp so repeated backups never collide.
func (m *Manager) Backup(dir string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create backup dir: %w", err)
	}
	f, err := encodeINI(m.doc)
	if err != nil {
		return "", err
	}
	dest := filepath.Join(dir, fmt.Sprintf("settings-%s.ini", time.Now().UTC().Format("20060102T150405Z")))
	return dest, f.SaveTo(dest)
}

// Close releases the temp directory created for --temp-settings mode, and
// stops the file watcher if one is running.
func (m *Manager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.watcher != nil {
		_ = m.watcher.Close()
		m.watcher = nil
	}
	if m.tempDir != "" {
		return os.RemoveAll(m.tempDir)
	}
	return nil
}

// Watch begins watching the settings file for external edits and reloads
// on change, the INI-backed analogue of the teacher's viper.WatchConfig.
func (m *Manager) Watch() error {
	m.mu.Lock()
	if m.watcher != nil {
		m.mu.Unlock()
		return nil
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		m.mu.Unlock()
		return fmt.Errorf("create settings watcher: %w", err)
	}
	dir := filepath.Dir(m.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.mu.Unlock()
		_ = watcher.Close()
		return err
	}
	if err := watcher.Add(dir); err != nil {
		m.mu.Unlock()
		_ = watcher.Close()
		return fmt.Errorf("watch settings dir: %w", err)
	}
	m.watcher = watcher
	m.mu.Unlock()

	go m.watchLoop(watcher)
	return nil
}

func (m *Manager) watchLoop(watcher *fsnotify.Watcher) {
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != filepath.Clean(m.path) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			m.reloadAndNotify()
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			zlog.Warn().Err(err).Msg("settings watcher error")
		}
	}
}

func (m *Manager) reloadAndNotify() {
	m.mu.Lock()
	f, err := ini.Load(m.path)
	if err != nil {
		m.mu.Unlock()
		zlog.Warn().Err(err).Msg("failed to reload settings file")
		return
	}
	doc, err := decodeINI(f, Defaults())
	if err != nil {
		m.mu.Unlock()
		zlog.Warn().Err(err).Msg("failed to parse reloaded settings file")
		return
	}
	m.doc = sanitize(doc)
	current := copyDocument(m.doc)
	callbacks := make([]func(Document), len(m.callbacks))
	copy(callbacks, m.callbacks)
	m.mu.Unlock()

	for _, cb := range callbacks {
		cb(current)
	}
}

// OnConfigChange registers a callback invoked with a fresh snapshot every
// time Watch detects and applies an external edit.
func (m *Manager) OnConfigChange(callback func(Document)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callbacks = append(m.callbacks, callback)
}

func resolveSettingsPath(opts Options) (path string, tempDir string, err error) {
	switch {
	case opts.SettingsFile != "":
		return opts.SettingsFile, "", nil
	case opts.TempSettings:
		dir, mkErr := os.MkdirTemp("", "viloxterm-settings-*")
		if mkErr != nil {
			return "", "", mkErr
		}
		return filepath.Join(dir, "settings.ini"), dir, nil
	case opts.SettingsDir != "":
		return filepath.Join(opts.SettingsDir, "settings.ini"), "", nil
	case opts.Portable:
		return filepath.Join(".", "settings", "settings.ini"), "", nil
	default:
		dir, dirErr := defaultSettingsDir()
		if dirErr != nil {
			return "", "", dirErr
		}
		return filepath.Join(dir, "settings.ini"), "", nil
	}
}

func iniToNestedMap(f *ini.File) map[string]any {
	out := map[string]any{}
	for _, section := range f.Sections() {
		name := section.Name()
		if name == ini.DefaultSection || name == "" {
			continue
		}
		values := map[string]any{}
		for _, key := range section.Keys() {
			values[key.Name()] = key.Value()
		}
		out[name] = values
	}
	return out
}
