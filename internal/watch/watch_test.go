package watch

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func waitFor(t *testing.T, events <-chan Event, match func(Event) bool) Event {
	t.Helper()
	timeout := time.After(3 * time.Second)
	for {
		select {
		case evt, ok := <-events:
			if !ok {
				t.Fatal("event channel closed before expected event")
			}
			if evt.Err != nil {
				t.Fatalf("watch error: %v", evt.Err)
			}
			if match(evt) {
				return evt
			}
		case <-timeout:
			t.Fatal("timed out waiting for event")
		}
	}
}

func TestWatcher_Modify(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "landscape.txt")
	if err := os.WriteFile(path, []byte("before\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := New()
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	defer w.Close()

	if err := w.Add(path); err != nil {
		t.Fatalf("Add() error: %v", err)
	}
	events := w.Events()

	if err := os.WriteFile(path, []byte("after\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	evt := waitFor(t, events, func(e Event) bool { return e.Type == EventModified })
	if filepath.Base(evt.Path) != "landscape.txt" {
		t.Errorf("event path = %q, want landscape.txt", evt.Path)
	}
}

func TestWatcher_CreateInDirectory(t *testing.T) {
	dir := t.TempDir()

	w, err := New()
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	defer w.Close()

	if err := w.Add(dir); err != nil {
		t.Fatalf("Add() error: %v", err)
	}
	events := w.Events()

	path := filepath.Join(dir, "new.txt")
	if err := os.WriteFile(path, []byte("fresh\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	evt := waitFor(t, events, func(e Event) bool { return e.Type == EventCreated })
	if filepath.Base(evt.Path) != "new.txt" {
		t.Errorf("event path = %q, want new.txt", evt.Path)
	}
}

func TestWatcher_AddMissingPath(t *testing.T) {
	w, err := New()
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	defer w.Close()

	if err := w.Add(filepath.Join(t.TempDir(), "absent")); err == nil {
		t.Error("Add() of a missing path should fail")
	}
}
