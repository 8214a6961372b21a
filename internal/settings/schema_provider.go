package settings

import (
	"fmt"

	"github.com/vilosource/viloxterm/internal/domain/entity"
)

// Section labels for grouping config keys in a settings UI, mirroring the
// teacher's per-category section constants.
const (
	SectionCommandPalette = "Command Palette"
	SectionTheme          = "Theme"
	SectionUI             = "UI"
	SectionWorkspace      = "Workspace"
	SectionEditor         = "Editor"
	SectionTerminal       = "Terminal"
	SectionPerformance    = "Performance"
	SectionPrivacy        = "Privacy"
	SectionKeyboard       = "Keyboard Shortcuts"
)

// SchemaProvider implements port.ConfigSchemaProvider over this package's
// fixed category layout.
type SchemaProvider struct {
	manager *Manager
}

// NewSchemaProvider creates a SchemaProvider. manager supplies the live
// keyboard-shortcut map; every other category is documented from built-in
// defaults since their values don't need a live instance to describe.
func NewSchemaProvider(manager *Manager) *SchemaProvider {
	return &SchemaProvider{manager: manager}
}

// GetSchema returns every configuration key with its metadata.
func (p *SchemaProvider) GetSchema() []entity.ConfigKeyInfo {
	d := Defaults()
	keys := make([]entity.ConfigKeyInfo, 0, 32)

	keys = append(keys,
		entity.ConfigKeyInfo{Key: "command_palette.max_results", Type: "int", Default: fmt.Sprintf("%d", d.CommandPalette.MaxResults), Description: "Maximum results shown in the command palette", Range: "1-200", Section: SectionCommandPalette},
		entity.ConfigKeyInfo{Key: "command_palette.fuzzy_match", Type: "bool", Default: fmt.Sprintf("%t", d.CommandPalette.FuzzyMatch), Description: "Use fuzzy matching for palette queries", Section: SectionCommandPalette},
		entity.ConfigKeyInfo{Key: "command_palette.show_recent_first", Type: "bool", Default: fmt.Sprintf("%t", d.CommandPalette.ShowRecentFirst), Description: "List recently used commands first", Section: SectionCommandPalette},

		entity.ConfigKeyInfo{Key: "theme.theme", Type: "string", Default: d.Theme.Name, Description: "Active color theme", Values: []string{"dark", "light", "system"}, Section: SectionTheme},
		entity.ConfigKeyInfo{Key: "theme.font_size", Type: "int", Default: fmt.Sprintf("%d", d.Theme.FontSize), Description: "Base UI font size in points", Range: "6-72", Section: SectionTheme},

		entity.ConfigKeyInfo{Key: "ui.show_tab_bar", Type: "bool", Default: fmt.Sprintf("%t", d.UI.ShowTabBar), Description: "Show the tab bar", Section: SectionUI},
		entity.ConfigKeyInfo{Key: "ui.show_status_bar", Type: "bool", Default: fmt.Sprintf("%t", d.UI.ShowStatusBar), Description: "Show the status bar", Section: SectionUI},
		entity.ConfigKeyInfo{Key: "ui.confirm_tab_close", Type: "bool", Default: fmt.Sprintf("%t", d.UI.ConfirmTabClose), Description: "Prompt before closing a tab with running sessions", Section: SectionUI},
		entity.ConfigKeyInfo{Key: "ui.density", Type: "string", Default: d.UI.Density, Description: "UI chrome density", Values: []string{"compact", "comfortable", "spacious"}, Section: SectionUI},

		entity.ConfigKeyInfo{Key: "workspace.default_split_ratio", Type: "float64", Default: fmt.Sprintf("%.1f", d.Workspace.DefaultSplitRatio), Description: "Default pane split ratio for new splits", Range: "0.1-0.9", Section: SectionWorkspace},
		entity.ConfigKeyInfo{Key: "workspace.restore_on_startup", Type: "bool", Default: fmt.Sprintf("%t", d.Workspace.RestoreOnStartup), Description: "Restore the last workspace layout on launch", Section: SectionWorkspace},
		entity.ConfigKeyInfo{Key: "workspace.max_tabs", Type: "int", Default: fmt.Sprintf("%d", d.Workspace.MaxTabs), Description: "Maximum open tabs (0 = unlimited)", Section: SectionWorkspace},

		entity.ConfigKeyInfo{Key: "editor.tab_width", Type: "int", Default: fmt.Sprintf("%d", d.Editor.TabWidth), Description: "Spaces per indent level", Range: "1-16", Section: SectionEditor},
		entity.ConfigKeyInfo{Key: "editor.insert_spaces", Type: "bool", Default: fmt.Sprintf("%t", d.Editor.InsertSpaces), Description: "Insert spaces instead of tab characters", Section: SectionEditor},
		entity.ConfigKeyInfo{Key: "editor.word_wrap", Type: "bool", Default: fmt.Sprintf("%t", d.Editor.WordWrap), Description: "Wrap long lines at the viewport edge", Section: SectionEditor},

		entity.ConfigKeyInfo{Key: "terminal.shell", Type: "string", Default: d.Terminal.Shell, Description: "Shell executable launched in new terminal panes", Section: SectionTerminal},
		entity.ConfigKeyInfo{Key: "terminal.scrollback_size", Type: "int", Default: fmt.Sprintf("%d", d.Terminal.ScrollbackSize), Description: "Lines of scrollback retained per session", Section: SectionTerminal},
		entity.ConfigKeyInfo{Key: "terminal.cursor_style", Type: "string", Default: d.Terminal.CursorStyle, Description: "Terminal cursor rendering style", Values: []string{"block", "bar", "underline"}, Section: SectionTerminal},

		entity.ConfigKeyInfo{Key: "performance.autosave_interval_ms", Type: "int", Default: fmt.Sprintf("%d", d.Performance.AutosaveIntervalMs), Description: "Milliseconds between best-effort workspace autosaves", Section: SectionPerformance},
		entity.ConfigKeyInfo{Key: "performance.chord_timeout_ms", Type: "int", Default: fmt.Sprintf("%d", d.Performance.ChordTimeoutMs), Description: "Milliseconds the dispatcher waits for a chord continuation", Section: SectionPerformance},
		entity.ConfigKeyInfo{Key: "performance.pty_read_buffer_chunks", Type: "int", Default: fmt.Sprintf("%d", d.Performance.PTYReadBufferChunks), Description: "Bounded-queue depth for PTY reader goroutines", Section: SectionPerformance},

		entity.ConfigKeyInfo{Key: "privacy.share_usage_stats", Type: "bool", Default: fmt.Sprintf("%t", d.Privacy.ShareUsageStats), Description: "Share anonymous usage statistics", Section: SectionPrivacy},
		entity.ConfigKeyInfo{Key: "privacy.save_command_history", Type: "bool", Default: fmt.Sprintf("%t", d.Privacy.SaveCommandHistory), Description: "Persist command-palette history across restarts", Section: SectionPrivacy},
	)

	keys = append(keys, entity.ConfigKeyInfo{
		Key:         "keyboard_shortcuts.*",
		Type:        "string",
		Default:     "(per-command, see keymap bundle)",
		Description: "Chord sequence bound to a command ID; empty disables it",
		Section:     SectionKeyboard,
	})

	return keys
}
