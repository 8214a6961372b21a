package settings

import (
	"fmt"

	"github.com/vilosource/viloxterm/internal/keyboard"
)

// ValidationError reports one field-level schema violation. Path is a
// dotted field path (e.g. "theme.font_size") so callers can surface it
// alongside the offending value without re-deriving it.
type ValidationError struct {
	Path    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

var validDensities = map[string]bool{"compact": true, "comfortable": true, "spacious": true}
var validCursorStyles = map[string]bool{"block": true, "bar": true, "underline": true}

// Validate checks the whole document and returns every violation found; a
// nil/empty result means the document is acceptable. Unlike the teacher's
// validateConfig (which joins everything into one error string), each
// violation keeps its own dotted path so a caller can render a per-field
// settings UI or reject a save with precise diagnostics, per the schema
// violation error class.
func Validate(doc Document) []ValidationError {
	var errs []ValidationError
	for _, name := range categoryNames {
		errs = append(errs, ValidateCategory(name, doc)...)
	}
	return errs
}

// ValidateCategory checks a single named category, letting callers
// validate a partial edit (e.g. one settings-dialog tab) without paying
// for the whole document.
func ValidateCategory(name string, doc Document) []ValidationError {
	switch name {
	case "command_palette":
		return validateCommandPalette(doc.CommandPalette)
	case "theme":
		return validateTheme(doc.Theme)
	case "ui":
		return validateUI(doc.UI)
	case "workspace":
		return validateWorkspace(doc.Workspace)
	case "editor":
		return validateEditor(doc.Editor)
	case "terminal":
		return validateTerminal(doc.Terminal)
	case "performance":
		return validatePerformance(doc.Performance)
	case "privacy":
		return nil // booleans only, nothing to range-check
	case "keyboard_shortcuts":
		return validateKeyboardShortcuts(doc.KeyboardShortcuts)
	default:
		return []ValidationError{{Path: name, Message: "unknown settings category"}}
	}
}

func validateCommandPalette(c CommandPaletteConfig) []ValidationError {
	var errs []ValidationError
	if c.MaxResults < 1 || c.MaxResults > 200 {
		errs = append(errs, ValidationError{"command_palette.max_results", "must be between 1 and 200"})
	}
	return errs
}

func validateTheme(t ThemeConfig) []ValidationError {
	var errs []ValidationError
	if t.Name != "dark" && t.Name != "light" && t.Name != "system" {
		errs = append(errs, ValidationError{"theme.theme", "must be one of dark, light, system"})
	}
	if t.FontSize < 6 || t.FontSize > 72 {
		errs = append(errs, ValidationError{"theme.font_size", "must be between 6 and 72"})
	}
	return errs
}

func validateUI(u UIConfig) []ValidationError {
	var errs []ValidationError
	if !validDensities[u.Density] {
		errs = append(errs, ValidationError{"ui.density", "must be one of compact, comfortable, spacious"})
	}
	return errs
}

func validateWorkspace(w WorkspaceConfig) []ValidationError {
	var errs []ValidationError
	if w.DefaultSplitRatio < 0.1 || w.DefaultSplitRatio > 0.9 {
		errs = append(errs, ValidationError{"workspace.default_split_ratio", "must be between 0.1 and 0.9"})
	}
	if w.MaxTabs < 0 {
		errs = append(errs, ValidationError{"workspace.max_tabs", "must be non-negative (0 means unlimited)"})
	}
	return errs
}

func validateEditor(e EditorConfig) []ValidationError {
	var errs []ValidationError
	if e.TabWidth < 1 || e.TabWidth > 16 {
		errs = append(errs, ValidationError{"editor.tab_width", "must be between 1 and 16"})
	}
	return errs
}

func validateTerminal(t TerminalConfig) []ValidationError {
	var errs []ValidationError
	if t.Shell == "" {
		errs = append(errs, ValidationError{"terminal.shell", "must not be empty"})
	}
	if t.ScrollbackSize < 0 {
		errs = append(errs, ValidationError{"terminal.scrollback_size", "must be non-negative"})
	}
	if !validCursorStyles[t.CursorStyle] {
		errs = append(errs, ValidationError{"terminal.cursor_style", "must be one of block, bar, underline"})
	}
	return errs
}

func validatePerformance(p PerformanceConfig) []ValidationError {
	var errs []ValidationError
	if p.AutosaveIntervalMs < 0 {
		errs = append(errs, ValidationError{"performance.autosave_interval_ms", "must be non-negative"})
	}
	if p.ChordTimeoutMs <= 0 {
		errs = append(errs, ValidationError{"performance.chord_timeout_ms", "must be positive"})
	}
	if p.PTYReadBufferChunks < 1 {
		errs = append(errs, ValidationError{"performance.pty_read_buffer_chunks", "must be at least 1"})
	}
	return errs
}

// validateKeyboardShortcuts checks every stored sequence against the chord
// grammar. An empty string is the documented way to disable a shortcut, not
// a violation.
func validateKeyboardShortcuts(shortcuts map[string]string) []ValidationError {
	var errs []ValidationError
	for commandID, sequence := range shortcuts {
		if sequence == "" {
			continue
		}
		if err := keyboard.ValidateSequence(sequence); err != nil {
			errs = append(errs, ValidationError{
				Path:    fmt.Sprintf("keyboard_shortcuts.%s", commandID),
				Message: err.Error(),
			})
		}
	}
	return errs
}
