package settings

import (
	"testing"

	"gopkg.in/ini.v1"
)

func TestEncodeDecodeINI_RoundTrips(t *testing.T) {
	doc := Defaults()
	doc.Theme.Name = "light"
	doc.Theme.FontSize = 14
	doc.KeyboardShortcuts = map[string]string{
		"file.save":                     "ctrl+s",
		"workbench.action.closePane": "ctrl+k ctrl+w",
	}

	f, err := encodeINI(doc)
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}

	decoded, err := decodeINI(f, Defaults())
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}

	if decoded.Theme.Name != "light" || decoded.Theme.FontSize != 14 {
		t.Fatalf("expected theme to round-trip, got %+v", decoded.Theme)
	}
	if decoded.KeyboardShortcuts["file.save"] != "ctrl+s" {
		t.Fatalf("expected shortcut to round-trip, got %q", decoded.KeyboardShortcuts["file.save"])
	}
	if decoded.KeyboardShortcuts["workbench.action.closePane"] != "ctrl+k ctrl+w" {
		t.Fatalf("expected multi-chord shortcut to round-trip, got %q", decoded.KeyboardShortcuts["workbench.action.closePane"])
	}
}

func TestDecodeINI_PartialFileInheritsDefaultsForOmittedFields(t *testing.T) {
	// A hand-edited partial file: only a [theme] section, no workspace
	// section at all.
	partial := ini.Empty()
	section, err := partial.NewSection("theme")
	if err != nil {
		t.Fatalf("build partial file: %v", err)
	}
	section.NewKey("theme", "light")

	decoded, err := decodeINI(partial, Defaults())
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if decoded.Workspace != Defaults().Workspace {
		t.Fatalf("expected omitted workspace section to inherit defaults, got %+v", decoded.Workspace)
	}
	if decoded.Theme.Name != "light" {
		t.Fatalf("expected the present theme section to override, got %+v", decoded.Theme)
	}
}
