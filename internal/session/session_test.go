package session

import "testing"

func TestFileStateRoundTrip(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", t.TempDir())

	m, err := NewManager()
	if err != nil {
		t.Fatalf("NewManager error: %v", err)
	}
	m.SetFileState("/tmp/a.txt", FileState{CursorOffset: 17, Scroll: 2})
	m.Stop()

	m2, err := NewManager()
	if err != nil {
		t.Fatalf("NewManager reload error: %v", err)
	}
	defer m2.Stop()

	state, ok := m2.GetFileState("/tmp/a.txt")
	if !ok {
		t.Fatalf("GetFileState ok = false, want true")
	}
	if state.CursorOffset != 17 || state.Scroll != 2 {
		t.Fatalf("state = %+v, want offset 17 scroll 2", state)
	}
	if got := m2.GetActiveFile(); got != "/tmp/a.txt" {
		t.Fatalf("GetActiveFile = %q, want %q", got, "/tmp/a.txt")
	}
}

func TestGetFileStateMissing(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", t.TempDir())

	m, err := NewManager()
	if err != nil {
		t.Fatalf("NewManager error: %v", err)
	}
	defer m.Stop()

	if _, ok := m.GetFileState("/missing"); ok {
		t.Fatalf("GetFileState ok = true, want false")
	}
}

func TestSaveSkipsWhenClean(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", t.TempDir())

	m, err := NewManager()
	if err != nil {
		t.Fatalf("NewManager error: %v", err)
	}
	defer m.Stop()

	before := m.session.LastSaved
	if err := m.Save(); err != nil {
		t.Fatalf("Save error: %v", err)
	}
	if !m.session.LastSaved.Equal(before) {
		t.Fatalf("Save touched LastSaved on a clean session")
	}
}
