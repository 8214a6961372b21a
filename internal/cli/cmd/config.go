package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vilosource/viloxterm/internal/keyboard"
	"github.com/vilosource/viloxterm/internal/settings"
)

func sourceName(s keyboard.Source) string {
	switch s {
	case keyboard.SourceBuiltIn:
		return "builtin"
	case keyboard.SourceKeymap:
		return "keymap"
	case keyboard.SourceUser:
		return "user"
	default:
		return "unknown"
	}
}

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Inspect and edit persisted settings",
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective settings document",
	RunE: func(_ *cobra.Command, _ []string) error {
		doc := GetApp().Settings.Get()
		fmt.Printf("settings_version: %d\n", doc.SettingsVersion)
		fmt.Printf("theme: %s (font size %d)\n", doc.Theme.Name, doc.Theme.FontSize)
		fmt.Printf("terminal: shell=%s scrollback=%d cursor=%s\n", doc.Terminal.Shell, doc.Terminal.ScrollbackSize, doc.Terminal.CursorStyle)
		fmt.Printf("performance: autosave_ms=%d chord_timeout_ms=%d\n", doc.Performance.AutosaveIntervalMs, doc.Performance.ChordTimeoutMs)
		fmt.Printf("workspace: split_ratio=%.2f restore_on_startup=%t max_tabs=%d\n", doc.Workspace.DefaultSplitRatio, doc.Workspace.RestoreOnStartup, doc.Workspace.MaxTabs)
		if len(doc.KeyboardShortcuts) > 0 {
			fmt.Println("keyboard overrides:")
			keys := make([]string, 0, len(doc.KeyboardShortcuts))
			for k := range doc.KeyboardShortcuts {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				fmt.Printf("  %s = %s\n", k, doc.KeyboardShortcuts[k])
			}
		}
		return nil
	},
}

var settingsSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "List every settings key, its type, default and description",
	RunE: func(_ *cobra.Command, _ []string) error {
		provider := settings.NewSchemaProvider(GetApp().Settings)
		for _, key := range provider.GetSchema() {
			fmt.Printf("%-40s %-8s default=%-8s %s\n", key.Key, key.Type, key.Default, key.Description)
		}
		return nil
	},
}

var settingsResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset every setting to its built-in default",
	RunE: func(_ *cobra.Command, _ []string) error {
		if err := GetApp().Settings.Reset(); err != nil {
			return wrapPrintedError(fmt.Errorf("reset settings: %w", err))
		}
		fmt.Println("settings reset to defaults")
		return nil
	},
}

var settingsExportCmd = &cobra.Command{
	Use:   "export <path>",
	Short: "Export the current settings document to a file",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		if err := GetApp().Settings.Export(args[0]); err != nil {
			return wrapPrintedError(fmt.Errorf("export settings: %w", err))
		}
		fmt.Printf("exported settings to %s\n", args[0])
		return nil
	},
}

var settingsImportCmd = &cobra.Command{
	Use:   "import <path>",
	Short: "Import settings from a file, validating every key",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		changed, err := GetApp().Settings.Import(args[0])
		if err != nil {
			return wrapPrintedError(fmt.Errorf("import settings: %w", err))
		}
		fmt.Printf("imported settings from %s (%d keys changed)\n", args[0], changed)
		return nil
	},
}

var settingsBackupCmd = &cobra.Command{
	Use:   "backup <dir>",
	Short: "Write a timestamped copy of the settings file to dir",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		path, err := GetApp().Settings.Backup(args[0])
		if err != nil {
			return wrapPrintedError(fmt.Errorf("backup settings: %w", err))
		}
		fmt.Printf("backed up settings to %s\n", path)
		return nil
	},
}

var shortcutsCmd = &cobra.Command{
	Use:   "shortcuts",
	Short: "List every registered keyboard shortcut",
	RunE: func(_ *cobra.Command, _ []string) error {
		all := GetApp().Keymap.All()
		for _, s := range all {
			fmt.Printf("%-30s %-20s %s\n", s.CommandID, s.Sequence.String(), sourceName(s.Source))
		}
		return nil
	},
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd, settingsSchemaCmd, settingsResetCmd, settingsExportCmd, settingsImportCmd, settingsBackupCmd)
	rootCmd.AddCommand(shortcutsCmd)
}
