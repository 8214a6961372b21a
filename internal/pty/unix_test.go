//go:build !windows

package pty

import (
	"testing"
	"time"
)

func TestUnixBackend_StartWriteReadCleanup(t *testing.T) {
	b := NewUnixBackend()
	session := newSession("s1", "sh", []string{"-c", "read line; echo \"got:$line\""}, "", 24, 80)

	if err := b.StartProcess(session); err != nil {
		t.Fatalf("StartProcess failed: %v", err)
	}
	defer b.Cleanup(session)

	if !b.IsProcessAlive(session) {
		t.Fatalf("expected process to be alive right after start")
	}

	if err := b.WriteInput(session, []byte("hello\n")); err != nil {
		t.Fatalf("WriteInput failed: %v", err)
	}

	deadline := time.Now().Add(2 * time.Second)
	var out []byte
	for time.Now().Before(deadline) {
		chunk, err := b.ReadOutput(session, 4096)
		if err != nil {
			t.Fatalf("ReadOutput failed: %v", err)
		}
		out = append(out, chunk...)
		if len(out) > 0 {
			break
		}
		time.Sleep(20 * time.Millisecond)
	}

	if len(out) == 0 {
		t.Fatalf("expected some output from child process")
	}
}

func TestUnixBackend_ReadOutput_NoDataReturnsNil(t *testing.T) {
	b := NewUnixBackend()
	session := newSession("s2", "sleep", []string{"1"}, "", 24, 80)
	if err := b.StartProcess(session); err != nil {
		t.Fatalf("StartProcess failed: %v", err)
	}
	defer b.Cleanup(session)

	out, err := b.ReadOutput(session, 4096)
	if err != nil {
		t.Fatalf("ReadOutput failed: %v", err)
	}
	if out != nil {
		t.Fatalf("expected nil output when nothing has been written, got %q", out)
	}
}

func TestUnixBackend_TerminateProcess(t *testing.T) {
	b := NewUnixBackend()
	session := newSession("s3", "sleep", []string{"30"}, "", 24, 80)
	if err := b.StartProcess(session); err != nil {
		t.Fatalf("StartProcess failed: %v", err)
	}

	if err := b.TerminateProcess(session); err != nil {
		t.Fatalf("TerminateProcess failed: %v", err)
	}
	if b.IsProcessAlive(session) {
		t.Fatalf("expected process to be terminated")
	}
	if session.IsActive() {
		t.Fatalf("expected session marked inactive after termination")
	}
	_ = b.Cleanup(session)
}

func TestUnixBackend_Resize(t *testing.T) {
	b := NewUnixBackend()
	session := newSession("s4", "sleep", []string{"5"}, "", 24, 80)
	if err := b.StartProcess(session); err != nil {
		t.Fatalf("StartProcess failed: %v", err)
	}
	defer b.Cleanup(session)

	if err := b.Resize(session, 40, 120); err != nil {
		t.Fatalf("Resize failed: %v", err)
	}
	if session.Rows != 40 || session.Cols != 120 {
		t.Fatalf("expected session dimensions updated, got %dx%d", session.Rows, session.Cols)
	}
}

func TestUnixBackend_Supports(t *testing.T) {
	b := NewUnixBackend()
	for _, f := range []string{FeatureResize, FeatureColors, FeatureUnicode, FeatureInput, FeatureOutput} {
		if !b.Supports(f) {
			t.Fatalf("expected backend to support %q", f)
		}
	}
	if b.Supports("nonexistent") {
		t.Fatalf("expected backend to not support made-up feature")
	}
}

func TestUnixBackend_ReadOutput_UnknownSessionIsNilNotPanic(t *testing.T) {
	b := NewUnixBackend()
	session := newSession("orphan", "sh", nil, "", 24, 80)
	out, err := b.ReadOutput(session, 1024)
	if err != nil || out != nil {
		t.Fatalf("expected (nil, nil) for session with no platform data, got (%v, %v)", out, err)
	}
}
