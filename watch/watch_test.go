package watch

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestIsProjectFile(t *testing.T) {
	cases := []struct {
		path string
		want bool
	}{
		{"game.json", true},
		{"dir/game.JSON", true},
		{"game.json.tmp", false},
		{"game.yaml", false},
		{"json", false},
	}
	for _, tc := range cases {
		if got := isProjectFile(tc.path); got != tc.want {
			t.Fatalf("isProjectFile(%q) = %v, want %v", tc.path, got, tc.want)
		}
	}
}

func TestWatcherReportsProjectWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "game.json")
	if err := os.WriteFile(path, []byte(`{}`), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte(`{"levels":[]}`), 0644); err != nil {
		t.Fatalf("rewrite: %v", err)
	}

	select {
	case got := <-w.Events:
		if filepath.Base(got) != "game.json" {
			t.Fatalf("event for %q, want game.json", got)
		}
	case err := <-w.Errors:
		t.Fatalf("watch error: %v", err)
	case <-time.After(3 * time.Second):
		t.Fatal("no event within 3s")
	}
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "game.json")
	if err := os.WriteFile(path, []byte(`{}`), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	select {
	case got := <-w.Events:
		t.Fatalf("unexpected event for %q", got)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcherCloseIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(filepath.Join(dir, "game.json"))
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("second close: %v", err)
	}
	if _, ok := <-w.Events; ok {
		t.Fatal("events channel should be closed")
	}
}
