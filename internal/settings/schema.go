// Package settings implements the layered, schema-validated configuration
// engine: typed categories, defaults -> env -> CLI -> file precedence, INI
// persistence, and the typed keyboard-shortcut store the command and
// keyboard packages read at startup.
package settings

// CommandPaletteConfig controls the command palette's own behavior.
type CommandPaletteConfig struct {
	MaxResults      int  `mapstructure:"max_results"`
	FuzzyMatch      bool `mapstructure:"fuzzy_match"`
	ShowRecentFirst bool `mapstructure:"show_recent_first"`
}

// ThemeConfig controls color scheme and font selection.
type ThemeConfig struct {
	Name     string `mapstructure:"theme"`
	FontSize int    `mapstructure:"font_size"`
}

// UIConfig controls chrome-level presentation.
type UIConfig struct {
	ShowTabBar       bool   `mapstructure:"show_tab_bar"`
	ShowStatusBar    bool   `mapstructure:"show_status_bar"`
	ConfirmTabClose  bool   `mapstructure:"confirm_tab_close"`
	Density          string `mapstructure:"density"`
}

// WorkspaceConfig controls default split/tab behavior.
type WorkspaceConfig struct {
	DefaultSplitRatio float64 `mapstructure:"default_split_ratio"`
	RestoreOnStartup  bool    `mapstructure:"restore_on_startup"`
	MaxTabs           int     `mapstructure:"max_tabs"`
}

// EditorConfig controls the embedded editor widget defaults (the widget
// itself, and its text engine, are out of scope here; these are the
// settings that flow into it).
type EditorConfig struct {
	TabWidth     int  `mapstructure:"tab_width"`
	InsertSpaces bool `mapstructure:"insert_spaces"`
	WordWrap     bool `mapstructure:"word_wrap"`
}

// TerminalConfig controls PTY-backed terminal widget defaults.
type TerminalConfig struct {
	Shell          string `mapstructure:"shell"`
	ScrollbackSize int    `mapstructure:"scrollback_size"`
	CursorStyle    string `mapstructure:"cursor_style"`
}

// PerformanceConfig controls internal tuning knobs not exposed as features.
type PerformanceConfig struct {
	AutosaveIntervalMs  int `mapstructure:"autosave_interval_ms"`
	ChordTimeoutMs      int `mapstructure:"chord_timeout_ms"`
	PTYReadBufferChunks int `mapstructure:"pty_read_buffer_chunks"`
}

// PrivacyConfig controls telemetry/history-adjacent behavior.
type PrivacyConfig struct {
	ShareUsageStats bool `mapstructure:"share_usage_stats"`
	SaveCommandHistory bool `mapstructure:"save_command_history"`
}

// Document is the whole settings document: one struct per schema category
// plus the meta fields tracked across migrations.
type Document struct {
	SettingsVersion   string `mapstructure:"settings_version"`
	LastMigration     string `mapstructure:"last_migration"`

	CommandPalette   CommandPaletteConfig    `mapstructure:"command_palette"`
	Theme            ThemeConfig             `mapstructure:"theme"`
	UI               UIConfig                `mapstructure:"ui"`
	Workspace        WorkspaceConfig         `mapstructure:"workspace"`
	Editor           EditorConfig            `mapstructure:"editor"`
	Terminal         TerminalConfig          `mapstructure:"terminal"`
	Performance      PerformanceConfig       `mapstructure:"performance"`
	Privacy          PrivacyConfig           `mapstructure:"privacy"`

	// KeyboardShortcuts maps a command ID to its bound chord-sequence
	// string, in the grammar internal/keyboard parses. An empty string
	// disables the shortcut without removing the entry.
	KeyboardShortcuts map[string]string `mapstructure:"keyboard_shortcuts"`
}

// CurrentSettingsVersion is stamped onto every freshly-defaulted document.
const CurrentSettingsVersion = "1.0"

// categoryNames lists every schema category in document order, used by
// ValidateCategory and the schema provider to walk the document uniformly.
var categoryNames = []string{
	"command_palette",
	"theme",
	"ui",
	"workspace",
	"editor",
	"terminal",
	"performance",
	"privacy",
	"keyboard_shortcuts",
}
