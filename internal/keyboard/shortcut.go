package keyboard

// Source records where a shortcut came from, used to break priority ties.
type Source int

const (
	SourceBuiltIn Source = iota
	SourceKeymap
	SourceUser
)

// Shortcut binds a key sequence to a command, optionally gated by a
// context expression.
type Shortcut struct {
	ID          string
	Sequence    Sequence
	CommandID   string
	Description string
	When        string
	// Priority is lower-wins: a Shortcut with a numerically lower Priority
	// is preferred over one with a higher value when both match.
	Priority int
	Source   Source
}

// higherPriority reports whether a should win over b per the resolver
// policy: lower Priority wins; on a tie, User > Keymap > BuiltIn.
func higherPriority(a, b Shortcut) bool {
	if a.Priority != b.Priority {
		return a.Priority < b.Priority
	}
	return a.Source > b.Source
}
