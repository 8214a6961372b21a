//go:build windows

// This file documents the Windows ConPTY contract. It is a contract file,
// not a working implementation: building this package on windows requires
// a ConPTY-capable PTY library, which is absent from the retrieved
// dependency pack, so every method fails closed rather than silently
// degrading to a blocking read.
//
// The intended shape, matching spec.md §4.4's Windows notes: StartProcess
// creates a ConPTY and spawns the child attached to it; because blocking
// read is the norm on Windows, a background reader goroutine owns the
// blocking ConPTY read and pushes chunks into the same bounded channel
// the Unix backend uses, so ReadOutput's non-blocking-drain contract stays
// identical across platforms. Resize calls ResizePseudoConsole. The child
// environment sets ENABLE_VIRTUAL_TERMINAL_PROCESSING so ANSI output and
// UTF-8 work the way spec.md requires.
package pty

import (
	"errors"
	"time"
)

// ErrUnsupportedPlatform is returned by every WindowsBackend method that
// returns an error except Cleanup (StartProcess, ReadOutput, WriteInput,
// Resize, TerminateProcess): no ConPTY dependency is available in this build.
var ErrUnsupportedPlatform = errors.New("pty: windows ConPTY backend not implemented")

// WindowsBackend is the contract stub for the ConPTY equivalent of
// UnixBackend. It satisfies Backend so callers can compile and select a
// backend by platform, but every process and I/O operation reports failure
// rather than partially working: IsProcessAlive and PollProcess report
// false, Cleanup is a no-op, and Supports still reports the base feature set.
type WindowsBackend struct{}

func NewWindowsBackend() *WindowsBackend { return &WindowsBackend{} }

func (b *WindowsBackend) StartProcess(session *Session) error        { return ErrUnsupportedPlatform }
func (b *WindowsBackend) ReadOutput(session *Session, n int) ([]byte, error) {
	return nil, ErrUnsupportedPlatform
}
func (b *WindowsBackend) WriteInput(session *Session, data []byte) error { return ErrUnsupportedPlatform }
func (b *WindowsBackend) Resize(session *Session, rows, cols uint16) error {
	return ErrUnsupportedPlatform
}
func (b *WindowsBackend) IsProcessAlive(session *Session) bool         { return false }
func (b *WindowsBackend) TerminateProcess(session *Session) error     { return ErrUnsupportedPlatform }
func (b *WindowsBackend) Cleanup(session *Session) error              { return nil }
func (b *WindowsBackend) PollProcess(session *Session, d time.Duration) bool { return false }
func (b *WindowsBackend) Supports(feature string) bool                { return supportsBaseFeature(feature) }
