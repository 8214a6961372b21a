// Package pty presents a uniform pseudo-terminal backend across platforms:
// a Unix implementation backed by github.com/creack/pty, and a Windows
// contract file describing the ConPTY equivalent.
package pty

import (
	"sync"
	"time"
)

// Session describes one pseudo-terminal child process.
type Session struct {
	ID           string
	Command      string
	Args         []string
	Cwd          string
	Rows         uint16
	Cols         uint16
	CreatedAt    time.Time
	LastActivity time.Time
	Active       bool

	// PlatformData holds the backend-specific handle (e.g. the Unix
	// backend's *os.File + *exec.Cmd, or a Windows ConPTY handle). It is
	// opaque to callers; only the Backend that created the session reads it.
	PlatformData any

	mu sync.Mutex
}

func newSession(id, command string, args []string, cwd string, rows, cols uint16) *Session {
	now := time.Now()
	return &Session{
		ID:           id,
		Command:      command,
		Args:         args,
		Cwd:          cwd,
		Rows:         rows,
		Cols:         cols,
		CreatedAt:    now,
		LastActivity: now,
	}
}

func (s *Session) touch() {
	s.mu.Lock()
	s.LastActivity = time.Now()
	s.mu.Unlock()
}

func (s *Session) setActive(active bool) {
	s.mu.Lock()
	s.Active = active
	s.mu.Unlock()
}

// IsActive reports whether the session is currently considered alive.
func (s *Session) IsActive() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Active
}

// Backend is the platform-polymorphic pseudo-terminal contract. Every method
// reports failures by return value; none panics or lets an exception escape
// across the backend boundary.
type Backend interface {
	// StartProcess spawns session's command in a PTY sized rows×cols and
	// retains the platform handle in session.PlatformData.
	StartProcess(session *Session) error

	// ReadOutput performs a non-blocking read of up to maxBytes of
	// accumulated output. It returns (nil, nil) if no data is currently
	// available, and updates session.LastActivity on a successful read.
	ReadOutput(session *Session, maxBytes int) ([]byte, error)

	// WriteInput enqueues data to the child's stdin.
	WriteInput(session *Session, data []byte) error

	// Resize propagates a new terminal window size to the OS PTY.
	Resize(session *Session, rows, cols uint16) error

	// IsProcessAlive reports whether the child process is still running.
	IsProcessAlive(session *Session) bool

	// TerminateProcess attempts graceful termination (SIGTERM or
	// equivalent), waits briefly, then force-kills if necessary.
	TerminateProcess(session *Session) error

	// Cleanup terminates the session if still alive and releases every
	// resource associated with it (handle, buffers, reader goroutine).
	Cleanup(session *Session) error

	// PollProcess reports whether output becomes available within timeout.
	PollProcess(session *Session, timeout time.Duration) bool

	// Supports reports whether this backend implements the named feature.
	// At minimum: "resize", "colors", "unicode", "input", "output".
	Supports(feature string) bool
}

const (
	FeatureResize  = "resize"
	FeatureColors  = "colors"
	FeatureUnicode = "unicode"
	FeatureInput   = "input"
	FeatureOutput  = "output"
)

var baseFeatures = map[string]bool{
	FeatureResize:  true,
	FeatureColors:  true,
	FeatureUnicode: true,
	FeatureInput:   true,
	FeatureOutput:  true,
}

func supportsBaseFeature(feature string) bool {
	return baseFeatures[feature]
}
