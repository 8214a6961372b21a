package keyboard

import "testing"

func TestBundle_KnownNames(t *testing.T) {
	for _, name := range []KeymapName{KeymapDefault, KeymapVSCode, KeymapVim} {
		shortcuts, ok := Bundle(name)
		if !ok {
			t.Fatalf("expected %q to be a known keymap", name)
		}
		if len(shortcuts) == 0 {
			t.Fatalf("expected %q to have shortcuts", name)
		}
		for _, s := range shortcuts {
			if s.Source != SourceKeymap {
				t.Fatalf("expected bundle shortcut to have SourceKeymap, got %v", s.Source)
			}
		}
	}
}

func TestBundle_UnknownName(t *testing.T) {
	if _, ok := Bundle("nonexistent"); ok {
		t.Fatalf("expected unknown keymap name to fail")
	}
}

func TestBundle_LoadsIntoRegistry(t *testing.T) {
	r := NewRegistry()
	shortcuts, _ := Bundle(KeymapDefault)
	conflicts := r.LoadKeymap(shortcuts)
	if len(conflicts) != 0 {
		t.Fatalf("expected the default bundle to be internally conflict-free, got %+v", conflicts)
	}
	if r.Count() != len(shortcuts) {
		t.Fatalf("expected all %d shortcuts to register, got %d", len(shortcuts), r.Count())
	}
}
