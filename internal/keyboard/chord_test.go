package keyboard

import "testing"

func TestParseSequence_SingleChord(t *testing.T) {
	seq, ok := ParseSequence("ctrl+k")
	if !ok {
		t.Fatalf("expected ok")
	}
	if len(seq) != 1 {
		t.Fatalf("expected 1 chord, got %d", len(seq))
	}
	if seq[0].Key != "k" || !seq[0].Modifiers[ModCtrl] {
		t.Fatalf("unexpected chord: %+v", seq[0])
	}
}

func TestParseSequence_MultiChord(t *testing.T) {
	seq, ok := ParseSequence("ctrl+k ctrl+w")
	if !ok {
		t.Fatalf("expected ok")
	}
	if len(seq) != 2 {
		t.Fatalf("expected 2 chords, got %d", len(seq))
	}
}

func TestParseSequence_ModifierOrderIrrelevant(t *testing.T) {
	a, ok1 := ParseSequence("ctrl+shift+a")
	b, ok2 := ParseSequence("shift+ctrl+a")
	if !ok1 || !ok2 {
		t.Fatalf("expected both to parse")
	}
	if !a.Equal(b) {
		t.Fatalf("expected sequences to be equal regardless of modifier order")
	}
}

func TestParseSequence_RejectsInvalid(t *testing.T) {
	cases := []string{"", "ctrl+", "+a", "ctrl+nonsense", "  "}
	for _, c := range cases {
		if _, ok := ParseSequence(c); ok {
			t.Fatalf("expected %q to fail parsing", c)
		}
	}
}

func TestParseSequence_CaseInsensitiveModifiers(t *testing.T) {
	seq, ok := ParseSequence("CTRL+A")
	if !ok {
		t.Fatalf("expected ok")
	}
	if seq[0].Key != "a" || !seq[0].Modifiers[ModCtrl] {
		t.Fatalf("unexpected chord: %+v", seq[0])
	}
}

func TestSequence_HasPrefix(t *testing.T) {
	full, _ := ParseSequence("ctrl+k ctrl+w")
	prefix, _ := ParseSequence("ctrl+k")
	if !full.HasPrefix(prefix) {
		t.Fatalf("expected full to have prefix")
	}
	if full.HasPrefix(full) {
		t.Fatalf("a sequence is not a strict prefix of itself")
	}
}

func TestValidateSequence(t *testing.T) {
	if err := ValidateSequence("ctrl+k"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := ValidateSequence("ctrl+"); err == nil {
		t.Fatalf("expected error for trailing +")
	}
}
