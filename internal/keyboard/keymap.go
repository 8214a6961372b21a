package keyboard

// KeymapName identifies one of the built-in key bundles.
type KeymapName string

const (
	KeymapDefault KeymapName = "default"
	KeymapVSCode  KeymapName = "vscode"
	KeymapVim     KeymapName = "vim"
)

// bindingSpec is the declarative shape a keymap bundle is built from, before
// parsing into a Shortcut.
type bindingSpec struct {
	id       string
	sequence string
	command  string
	desc     string
	when     string
	priority int
}

// Bundle returns the ordered shortcut list for a named built-in keymap. An
// unknown name yields (nil, false).
func Bundle(name KeymapName) ([]Shortcut, bool) {
	switch name {
	case KeymapDefault:
		return buildBundle(defaultBindings), true
	case KeymapVSCode:
		return buildBundle(vscodeBindings), true
	case KeymapVim:
		return buildBundle(vimBindings), true
	default:
		return nil, false
	}
}

func buildBundle(specs []bindingSpec) []Shortcut {
	out := make([]Shortcut, 0, len(specs))
	for _, spec := range specs {
		seq, ok := ParseSequence(spec.sequence)
		if !ok {
			continue
		}
		out = append(out, Shortcut{
			ID:          spec.id,
			Sequence:    seq,
			CommandID:   spec.command,
			Description: spec.desc,
			When:        spec.when,
			Priority:    spec.priority,
			Source:      SourceKeymap,
		})
	}
	return out
}

var defaultBindings = []bindingSpec{
	{id: "default.tab.create", sequence: "ctrl+t", command: "tab.create", desc: "New tab"},
	{id: "default.tab.close", sequence: "ctrl+w", command: "tab.close", desc: "Close tab"},
	{id: "default.tab.next", sequence: "ctrl+tab", command: "tab.next", desc: "Next tab"},
	{id: "default.tab.previous", sequence: "ctrl+shift+tab", command: "tab.previous", desc: "Previous tab"},
	{id: "default.pane.splitHorizontal", sequence: "ctrl+shift+d", command: "pane.splitHorizontal", desc: "Split pane horizontally"},
	{id: "default.pane.splitVertical", sequence: "ctrl+shift+e", command: "pane.splitVertical", desc: "Split pane vertically"},
	{id: "default.pane.close", sequence: "ctrl+shift+w", command: "pane.close", desc: "Close pane"},
	{id: "default.navigate.left", sequence: "alt+left", command: "navigate.left", desc: "Focus pane left"},
	{id: "default.navigate.right", sequence: "alt+right", command: "navigate.right", desc: "Focus pane right"},
	{id: "default.navigate.up", sequence: "alt+up", command: "navigate.up", desc: "Focus pane up"},
	{id: "default.navigate.down", sequence: "alt+down", command: "navigate.down", desc: "Focus pane down"},
	{id: "default.settings.open", sequence: "ctrl+,", command: "settings.open", desc: "Open settings"},
}

var vscodeBindings = []bindingSpec{
	{id: "vscode.tab.create", sequence: "ctrl+t", command: "tab.create", desc: "New tab"},
	{id: "vscode.pane.splitHorizontal", sequence: "ctrl+\\", command: "pane.splitHorizontal", desc: "Split editor"},
	{id: "vscode.navigate.left", sequence: "ctrl+k ctrl+left", command: "navigate.left", desc: "Focus group left"},
	{id: "vscode.navigate.right", sequence: "ctrl+k ctrl+right", command: "navigate.right", desc: "Focus group right"},
	{id: "vscode.settings.open", sequence: "ctrl+,", command: "settings.open", desc: "Open settings"},
}

var vimBindings = []bindingSpec{
	{id: "vim.navigate.left", sequence: "ctrl+w h", command: "navigate.left", desc: "Focus pane left"},
	{id: "vim.navigate.right", sequence: "ctrl+w l", command: "navigate.right", desc: "Focus pane right"},
	{id: "vim.navigate.up", sequence: "ctrl+w k", command: "navigate.up", desc: "Focus pane up"},
	{id: "vim.navigate.down", sequence: "ctrl+w j", command: "navigate.down", desc: "Focus pane down"},
	{id: "vim.pane.splitHorizontal", sequence: "ctrl+w s", command: "pane.splitHorizontal", desc: "Split pane below"},
	{id: "vim.pane.splitVertical", sequence: "ctrl+w v", command: "pane.splitVertical", desc: "Split pane right"},
	{id: "vim.pane.close", sequence: "ctrl+w c", command: "pane.close", desc: "Close pane"},
}
