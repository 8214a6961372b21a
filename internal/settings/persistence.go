package settings

import (
	"fmt"
	"strconv"

	"gopkg.in/ini.v1"
)

const metaSection = "meta"
const keyboardSection = "keyboard_shortcuts"

// encodeINI renders doc as an INI document: one section per category
// (snake_case keys, values quoted by the library when they contain
// spaces), plus a distinguished [keyboard_shortcuts] section whose keys
// are command IDs, matching the example in the external-interfaces grammar
// ("[keyboard_shortcuts]\nfile.save=ctrl+s").
func encodeINI(doc Document) (*ini.File, error) {
	f := ini.Empty()

	meta, err := f.NewSection(metaSection)
	if err != nil {
		return nil, err
	}
	meta.NewKey("settings_version", doc.SettingsVersion)
	meta.NewKey("last_migration", doc.LastMigration)

	if err := writeCategory(f, "command_palette", map[string]string{
		"max_results":       strconv.Itoa(doc.CommandPalette.MaxResults),
		"fuzzy_match":       strconv.FormatBool(doc.CommandPalette.FuzzyMatch),
		"show_recent_first": strconv.FormatBool(doc.CommandPalette.ShowRecentFirst),
	}); err != nil {
		return nil, err
	}

	if err := writeCategory(f, "theme", map[string]string{
		"theme":     doc.Theme.Name,
		"font_size": strconv.Itoa(doc.Theme.FontSize),
	}); err != nil {
		return nil, err
	}

	if err := writeCategory(f, "ui", map[string]string{
		"show_tab_bar":      strconv.FormatBool(doc.UI.ShowTabBar),
		"show_status_bar":   strconv.FormatBool(doc.UI.ShowStatusBar),
		"confirm_tab_close": strconv.FormatBool(doc.UI.ConfirmTabClose),
		"density":           doc.UI.Density,
	}); err != nil {
		return nil, err
	}

	if err := writeCategory(f, "workspace", map[string]string{
		"default_split_ratio": strconv.FormatFloat(doc.Workspace.DefaultSplitRatio, 'f', -1, 64),
		"restore_on_startup":  strconv.FormatBool(doc.Workspace.RestoreOnStartup),
		"max_tabs":            strconv.Itoa(doc.Workspace.MaxTabs),
	}); err != nil {
		return nil, err
	}

	if err := writeCategory(f, "editor", map[string]string{
		"tab_width":     strconv.Itoa(doc.Editor.TabWidth),
		"insert_spaces": strconv.FormatBool(doc.Editor.InsertSpaces),
		"word_wrap":     strconv.FormatBool(doc.Editor.WordWrap),
	}); err != nil {
		return nil, err
	}

	if err := writeCategory(f, "terminal", map[string]string{
		"shell":           doc.Terminal.Shell,
		"scrollback_size": strconv.Itoa(doc.Terminal.ScrollbackSize),
		"cursor_style":    doc.Terminal.CursorStyle,
	}); err != nil {
		return nil, err
	}

	if err := writeCategory(f, "performance", map[string]string{
		"autosave_interval_ms":   strconv.Itoa(doc.Performance.AutosaveIntervalMs),
		"chord_timeout_ms":       strconv.Itoa(doc.Performance.ChordTimeoutMs),
		"pty_read_buffer_chunks": strconv.Itoa(doc.Performance.PTYReadBufferChunks),
	}); err != nil {
		return nil, err
	}

	if err := writeCategory(f, "privacy", map[string]string{
		"share_usage_stats":    strconv.FormatBool(doc.Privacy.ShareUsageStats),
		"save_command_history": strconv.FormatBool(doc.Privacy.SaveCommandHistory),
	}); err != nil {
		return nil, err
	}

	shortcuts, err := f.NewSection(keyboardSection)
	if err != nil {
		return nil, err
	}
	for commandID, sequence := range doc.KeyboardShortcuts {
		shortcuts.NewKey(commandID, sequence)
	}

	return f, nil
}

func writeCategory(f *ini.File, name string, values map[string]string) error {
	section, err := f.NewSection(name)
	if err != nil {
		return err
	}
	for k, v := range values {
		section.NewKey(k, v)
	}
	return nil
}

// decodeINI parses f on top of base, overwriting only the fields present
// in the file so a hand-edited partial INI still inherits defaults for
// anything it omits.
func decodeINI(f *ini.File, base Document) (Document, error) {
	doc := base

	if meta := f.Section(metaSection); meta != nil {
		if meta.HasKey("settings_version") {
			doc.SettingsVersion = meta.Key("settings_version").String()
		}
		if meta.HasKey("last_migration") {
			doc.LastMigration = meta.Key("last_migration").String()
		}
	}

	var err error
	if s := f.Section("command_palette"); s != nil {
		if doc.CommandPalette.MaxResults, err = intOr(s, "max_results", doc.CommandPalette.MaxResults); err != nil {
			return doc, err
		}
		doc.CommandPalette.FuzzyMatch = boolOr(s, "fuzzy_match", doc.CommandPalette.FuzzyMatch)
		doc.CommandPalette.ShowRecentFirst = boolOr(s, "show_recent_first", doc.CommandPalette.ShowRecentFirst)
	}

	if s := f.Section("theme"); s != nil {
		doc.Theme.Name = stringOr(s, "theme", doc.Theme.Name)
		if doc.Theme.FontSize, err = intOr(s, "font_size", doc.Theme.FontSize); err != nil {
			return doc, err
		}
	}

	if s := f.Section("ui"); s != nil {
		doc.UI.ShowTabBar = boolOr(s, "show_tab_bar", doc.UI.ShowTabBar)
		doc.UI.ShowStatusBar = boolOr(s, "show_status_bar", doc.UI.ShowStatusBar)
		doc.UI.ConfirmTabClose = boolOr(s, "confirm_tab_close", doc.UI.ConfirmTabClose)
		doc.UI.Density = stringOr(s, "density", doc.UI.Density)
	}

	if s := f.Section("workspace"); s != nil {
		if doc.Workspace.DefaultSplitRatio, err = floatOr(s, "default_split_ratio", doc.Workspace.DefaultSplitRatio); err != nil {
			return doc, err
		}
		doc.Workspace.RestoreOnStartup = boolOr(s, "restore_on_startup", doc.Workspace.RestoreOnStartup)
		if doc.Workspace.MaxTabs, err = intOr(s, "max_tabs", doc.Workspace.MaxTabs); err != nil {
			return doc, err
		}
	}

	if s := f.Section("editor"); s != nil {
		if doc.Editor.TabWidth, err = intOr(s, "tab_width", doc.Editor.TabWidth); err != nil {
			return doc, err
		}
		doc.Editor.InsertSpaces = boolOr(s, "insert_spaces", doc.Editor.InsertSpaces)
		doc.Editor.WordWrap = boolOr(s, "word_wrap", doc.Editor.WordWrap)
	}

	if s := f.Section("terminal"); s != nil {
		doc.Terminal.Shell = stringOr(s, "shell", doc.Terminal.Shell)
		if doc.Terminal.ScrollbackSize, err = intOr(s, "scrollback_size", doc.Terminal.ScrollbackSize); err != nil {
			return doc, err
		}
		doc.Terminal.CursorStyle = stringOr(s, "cursor_style", doc.Terminal.CursorStyle)
	}

	if s := f.Section("performance"); s != nil {
		if doc.Performance.AutosaveIntervalMs, err = intOr(s, "autosave_interval_ms", doc.Performance.AutosaveIntervalMs); err != nil {
			return doc, err
		}
		if doc.Performance.ChordTimeoutMs, err = intOr(s, "chord_timeout_ms", doc.Performance.ChordTimeoutMs); err != nil {
			return doc, err
		}
		if doc.Performance.PTYReadBufferChunks, err = intOr(s, "pty_read_buffer_chunks", doc.Performance.PTYReadBufferChunks); err != nil {
			return doc, err
		}
	}

	if s := f.Section("privacy"); s != nil {
		doc.Privacy.ShareUsageStats = boolOr(s, "share_usage_stats", doc.Privacy.ShareUsageStats)
		doc.Privacy.SaveCommandHistory = boolOr(s, "save_command_history", doc.Privacy.SaveCommandHistory)
	}

	if s := f.Section(keyboardSection); s != nil {
		if doc.KeyboardShortcuts == nil {
			doc.KeyboardShortcuts = map[string]string{}
		}
		for _, key := range s.Keys() {
			doc.KeyboardShortcuts[key.Name()] = key.Value()
		}
	}

	return doc, nil
}

func stringOr(s *ini.Section, key, fallback string) string {
	if !s.HasKey(key) {
		return fallback
	}
	return s.Key(key).String()
}

func boolOr(s *ini.Section, key string, fallback bool) bool {
	if !s.HasKey(key) {
		return fallback
	}
	v, err := s.Key(key).Bool()
	if err != nil {
		return fallback
	}
	return v
}

func intOr(s *ini.Section, key string, fallback int) (int, error) {
	if !s.HasKey(key) {
		return fallback, nil
	}
	v, err := s.Key(key).Int()
	if err != nil {
		return fallback, fmt.Errorf("%s: %w", key, err)
	}
	return v, nil
}

func floatOr(s *ini.Section, key string, fallback float64) (float64, error) {
	if !s.HasKey(key) {
		return fallback, nil
	}
	v, err := s.Key(key).Float64()
	if err != nil {
		return fallback, fmt.Errorf("%s: %w", key, err)
	}
	return v, nil
}
