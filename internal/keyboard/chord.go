// Package keyboard translates platform key events into command invocations,
// supporting multi-key chord sequences, context-gated bindings, conflict
// detection, and user overrides.
package keyboard

import (
	"sort"
	"strings"
)

// Modifier is one of the four supported key modifiers.
type Modifier string

const (
	ModCtrl  Modifier = "ctrl"
	ModShift Modifier = "shift"
	ModAlt   Modifier = "alt"
	ModMeta  Modifier = "meta"
)

var validKeys = buildValidKeys()

func buildValidKeys() map[string]bool {
	keys := map[string]bool{
		"escape": true, "tab": true, "space": true, "return": true,
		"backspace": true, "delete": true, "home": true, "end": true,
		"pageup": true, "pagedown": true,
		"up": true, "down": true, "left": true, "right": true,
	}
	for c := 'a'; c <= 'z'; c++ {
		keys[string(c)] = true
	}
	for c := '0'; c <= '9'; c++ {
		keys[string(c)] = true
	}
	for i := 1; i <= 24; i++ {
		keys["f"+itoa(i)] = true
	}
	for _, p := range []string{"-", "=", "[", "]", "\\", ";", "'", ",", ".", "/", "`"} {
		keys[p] = true
	}
	return keys
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var digits []byte
	for n > 0 {
		digits = append([]byte{byte('0' + n%10)}, digits...)
		n /= 10
	}
	return string(digits)
}

// Chord is a single key press together with the modifiers held during it.
// The key is always canonical (lower-case).
type Chord struct {
	Modifiers map[Modifier]bool
	Key       string
}

// NewChord builds a Chord from a key and a set of modifiers, normalizing the
// key to lower-case.
func NewChord(key string, mods ...Modifier) Chord {
	m := make(map[Modifier]bool, len(mods))
	for _, mod := range mods {
		m[mod] = true
	}
	return Chord{Modifiers: m, Key: strings.ToLower(key)}
}

// Equal reports whether two chords name the same key and modifier set,
// irrespective of modifier order.
func (c Chord) Equal(other Chord) bool {
	if c.Key != other.Key {
		return false
	}
	if len(c.Modifiers) != len(other.Modifiers) {
		return false
	}
	for m := range c.Modifiers {
		if !other.Modifiers[m] {
			return false
		}
	}
	return true
}

// String renders the chord in canonical "mod+mod+key" form, modifiers sorted
// so that equal chords always render identically.
func (c Chord) String() string {
	mods := make([]string, 0, len(c.Modifiers))
	for m := range c.Modifiers {
		mods = append(mods, string(m))
	}
	sort.Strings(mods)
	parts := append(mods, c.Key)
	return strings.Join(parts, "+")
}

// Sequence is a non-empty ordered list of chords. Length 1 is a plain
// shortcut; length ≥ 2 is a chord sequence (e.g. "ctrl+k ctrl+w").
type Sequence []Chord

// Equal reports whether two sequences have the same chords in the same order.
func (s Sequence) Equal(other Sequence) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if !s[i].Equal(other[i]) {
			return false
		}
	}
	return true
}

// HasPrefix reports whether prefix is a strict prefix of s (shorter, and
// every chord in prefix matches the corresponding chord in s).
func (s Sequence) HasPrefix(prefix Sequence) bool {
	if len(prefix) >= len(s) || len(prefix) == 0 {
		return false
	}
	for i := range prefix {
		if !s[i].Equal(prefix[i]) {
			return false
		}
	}
	return true
}

// String renders the sequence as space-separated chords.
func (s Sequence) String() string {
	parts := make([]string, len(s))
	for i, c := range s {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

var modifierNames = map[string]Modifier{
	"ctrl": ModCtrl, "shift": ModShift, "alt": ModAlt, "meta": ModMeta,
}

// ParseSequence parses a string such as "ctrl+k ctrl+w" into a Sequence.
// Space splits chords; within a chord, "+" splits modifiers from the key.
// Empty input, a trailing or leading "+", or an unknown key name all yield
// ok=false.
func ParseSequence(input string) (Sequence, bool) {
	fields := strings.Fields(input)
	if len(fields) == 0 {
		return nil, false
	}

	seq := make(Sequence, 0, len(fields))
	for _, field := range fields {
		chord, ok := parseChord(field)
		if !ok {
			return nil, false
		}
		seq = append(seq, chord)
	}
	return seq, true
}

func parseChord(field string) (Chord, bool) {
	if field == "" || strings.HasPrefix(field, "+") || strings.HasSuffix(field, "+") {
		return Chord{}, false
	}

	parts := strings.Split(field, "+")
	key := strings.ToLower(parts[len(parts)-1])
	if !validKeys[key] {
		return Chord{}, false
	}

	mods := make(map[Modifier]bool, len(parts)-1)
	for _, raw := range parts[:len(parts)-1] {
		mod, ok := modifierNames[strings.ToLower(raw)]
		if !ok {
			return Chord{}, false
		}
		mods[mod] = true
	}

	return Chord{Modifiers: mods, Key: key}, true
}

// ValidateSequence wraps ParseSequence, returning a descriptive error instead
// of a boolean.
func ValidateSequence(input string) error {
	if _, ok := ParseSequence(input); !ok {
		return &ParseError{Input: input}
	}
	return nil
}

// ParseError reports that a chord-sequence string could not be parsed.
type ParseError struct {
	Input string
}

func (e *ParseError) Error() string {
	return "invalid key sequence: " + e.Input
}
