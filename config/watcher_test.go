package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeLevel(t *testing.T, path, level string) {
	t.Helper()
	content := "[logging]\nlevel = \"" + level + "\"\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

func awaitChange(t *testing.T, w *Watcher) *Settings {
	t.Helper()
	select {
	case s := <-w.Changes():
		return s
	case err := <-w.Errors():
		t.Fatalf("unexpected watcher error: %v", err)
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for reload")
	}
	return nil
}

func TestWatcher_DeliversReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "richtext.toml")
	writeLevel(t, path, "info")

	w, err := NewWatcher(path, WithDebounce(20*time.Millisecond))
	if err != nil {
		t.Fatalf("new watcher: %v", err)
	}
	defer w.Close()

	writeLevel(t, path, "debug")

	s := awaitChange(t, w)
	if s.Logging.Level != "debug" {
		t.Errorf("expected reloaded level debug, got %q", s.Logging.Level)
	}
}

func TestWatcher_CoalescesRapidWrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "richtext.toml")
	writeLevel(t, path, "info")

	w, err := NewWatcher(path, WithDebounce(50*time.Millisecond))
	if err != nil {
		t.Fatalf("new watcher: %v", err)
	}
	defer w.Close()

	writeLevel(t, path, "warn")
	writeLevel(t, path, "error")
	writeLevel(t, path, "debug")

	s := awaitChange(t, w)
	if s.Logging.Level != "debug" {
		t.Errorf("expected final write to win, got %q", s.Logging.Level)
	}

	select {
	case extra := <-w.Changes():
		t.Errorf("expected writes coalesced, got extra delivery %+v", extra.Logging)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestWatcher_ReportsParseErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "richtext.toml")
	writeLevel(t, path, "info")

	w, err := NewWatcher(path, WithDebounce(20*time.Millisecond))
	if err != nil {
		t.Fatalf("new watcher: %v", err)
	}
	defer w.Close()

	if werr := os.WriteFile(path, []byte("[[["), 0o644); werr != nil {
		t.Fatalf("writing garbage: %v", werr)
	}

	select {
	case rerr := <-w.Errors():
		var perr *ParseError
		if !errors.As(rerr, &perr) {
			t.Errorf("expected *ParseError, got %T: %v", rerr, rerr)
		}
	case s := <-w.Changes():
		t.Fatalf("expected error, got settings %+v", s.Logging)
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for error")
	}
}

func TestWatcher_IgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "richtext.toml")
	writeLevel(t, path, "info")

	w, err := NewWatcher(path, WithDebounce(20*time.Millisecond))
	if err != nil {
		t.Fatalf("new watcher: %v", err)
	}
	defer w.Close()

	if werr := os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0o644); werr != nil {
		t.Fatalf("writing sibling: %v", werr)
	}

	select {
	case s := <-w.Changes():
		t.Fatalf("expected no delivery for sibling file, got %+v", s.Logging)
	case <-time.After(150 * time.Millisecond):
	}
}

func TestWatcher_CloseClosesChannels(t *testing.T) {
	path := filepath.Join(t.TempDir(), "richtext.toml")
	writeLevel(t, path, "info")

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("new watcher: %v", err)
	}

	if cerr := w.Close(); cerr != nil {
		t.Errorf("close: %v", cerr)
	}
	if cerr := w.Close(); cerr != nil {
		t.Errorf("second close: %v", cerr)
	}

	if _, ok := <-w.Changes(); ok {
		t.Error("expected changes channel closed")
	}
	if _, ok := <-w.Errors(); ok {
		t.Error("expected errors channel closed")
	}
}
