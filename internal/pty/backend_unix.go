//go:build !windows

package pty

// NewDefaultBackend returns the pseudo-terminal backend for the running
// platform, letting callers that don't care which OS they're on build a
// Manager without their own build-tagged file.
func NewDefaultBackend() Backend {
	return NewUnixBackend()
}
