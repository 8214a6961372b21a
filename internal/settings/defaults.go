package settings

// Defaults returns a fully-populated Document with every key set to its
// built-in default. Manager.Load mirrors this table into viper one key at
// a time through defaultsMap so CLI/env/file layers can override individual fields
// without requiring the whole category to be re-specified.
func Defaults() Document {
	return Document{
		SettingsVersion: CurrentSettingsVersion,
		LastMigration:   "",

		CommandPalette: CommandPaletteConfig{
			MaxResults:      20,
			FuzzyMatch:      true,
			ShowRecentFirst: true,
		},
		Theme: ThemeConfig{
			Name:     "dark",
			FontSize: 12,
		},
		UI: UIConfig{
			ShowTabBar:      true,
			ShowStatusBar:   true,
			ConfirmTabClose: false,
			Density:         "comfortable",
		},
		Workspace: WorkspaceConfig{
			DefaultSplitRatio: 0.5,
			RestoreOnStartup:  true,
			MaxTabs:           0,
		},
		Editor: EditorConfig{
			TabWidth:     4,
			InsertSpaces: true,
			WordWrap:     false,
		},
		Terminal: TerminalConfig{
			Shell:          defaultShell(),
			ScrollbackSize: 10000,
			CursorStyle:    "block",
		},
		Performance: PerformanceConfig{
			AutosaveIntervalMs:  30000,
			ChordTimeoutMs:      1000,
			PTYReadBufferChunks: 256,
		},
		Privacy: PrivacyConfig{
			ShareUsageStats:    false,
			SaveCommandHistory: true,
		},
		KeyboardShortcuts: map[string]string{},
	}
}

// defaultsMap flattens Defaults() into dotted keys the way the teacher's
// setDefaults calls viper.SetDefault one key at a time, so the manager can
// seed viper without hand-duplicating every value a second time.
func defaultsMap() map[string]any {
	d := Defaults()
	return map[string]any{
		"settings_version": d.SettingsVersion,
		"last_migration":   d.LastMigration,

		"command_palette.max_results":        d.CommandPalette.MaxResults,
		"command_palette.fuzzy_match":         d.CommandPalette.FuzzyMatch,
		"command_palette.show_recent_first":   d.CommandPalette.ShowRecentFirst,

		"theme.theme":     d.Theme.Name,
		"theme.font_size": d.Theme.FontSize,

		"ui.show_tab_bar":      d.UI.ShowTabBar,
		"ui.show_status_bar":   d.UI.ShowStatusBar,
		"ui.confirm_tab_close": d.UI.ConfirmTabClose,
		"ui.density":           d.UI.Density,

		"workspace.default_split_ratio": d.Workspace.DefaultSplitRatio,
		"workspace.restore_on_startup":  d.Workspace.RestoreOnStartup,
		"workspace.max_tabs":            d.Workspace.MaxTabs,

		"editor.tab_width":     d.Editor.TabWidth,
		"editor.insert_spaces": d.Editor.InsertSpaces,
		"editor.word_wrap":     d.Editor.WordWrap,

		"terminal.shell":           d.Terminal.Shell,
		"terminal.scrollback_size": d.Terminal.ScrollbackSize,
		"terminal.cursor_style":    d.Terminal.CursorStyle,

		"performance.autosave_interval_ms":   d.Performance.AutosaveIntervalMs,
		"performance.chord_timeout_ms":       d.Performance.ChordTimeoutMs,
		"performance.pty_read_buffer_chunks": d.Performance.PTYReadBufferChunks,

		"privacy.share_usage_stats":    d.Privacy.ShareUsageStats,
		"privacy.save_command_history": d.Privacy.SaveCommandHistory,
	}
}
