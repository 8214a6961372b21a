//go:build !windows

package pty

import "testing"

func TestManager_OpenAssignsIDsAndTracksSessions(t *testing.T) {
	counter := 0
	idFunc := func() string {
		counter++
		return "sess-" + string(rune('0'+counter))
	}
	m := NewManager(NewUnixBackend(), idFunc)

	s, err := m.Open("sleep", []string{"5"}, "", 24, 80)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer m.CloseAll()

	if got := m.Get(s.ID); got != s {
		t.Fatalf("expected Get to return the session created by Open")
	}
}

func TestManager_CloseRemovesSession(t *testing.T) {
	m := NewManager(NewUnixBackend(), func() string { return "only" })
	s, err := m.Open("sleep", []string{"5"}, "", 24, 80)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	if err := m.Close(s.ID); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if got := m.Get(s.ID); got != nil {
		t.Fatalf("expected session to be removed after Close")
	}
}

func TestManager_CloseAllTerminatesEverySession(t *testing.T) {
	counter := 0
	m := NewManager(NewUnixBackend(), func() string {
		counter++
		return "multi-" + string(rune('0'+counter))
	})
	for i := 0; i < 3; i++ {
		if _, err := m.Open("sleep", []string{"5"}, "", 24, 80); err != nil {
			t.Fatalf("Open failed: %v", err)
		}
	}
	m.CloseAll()
}
