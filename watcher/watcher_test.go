// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package watcher_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mdhender/ipagen/watcher"
)

func TestWatcher_CoalescesBurstIntoOneCallback(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "sym.typ")
	if err := os.WriteFile(file, []byte("before"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	changes := make(chan []string, 10)
	w, err := watcher.New(100*time.Millisecond, nil, func(changed []string) {
		changes <- changed
	})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	defer func() {
		_ = w.Close()
	}()
	if err := w.Watch(file); err != nil {
		t.Fatalf("watch: %v", err)
	}

	// a burst of writes inside the debounce window
	for i := 0; i < 3; i++ {
		if err := os.WriteFile(file, []byte("after"), 0644); err != nil {
			t.Fatalf("write: %v", err)
		}
		time.Sleep(10 * time.Millisecond)
	}

	select {
	case changed := <-changes:
		if len(changed) != 1 {
			t.Fatalf("changed = %v, want one path", changed)
		}
		if got, want := filepath.Base(changed[0]), "sym.typ"; got != want {
			t.Fatalf("changed[0] = %q, want %q", changed[0], want)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("timed out waiting for change callback")
	}

	// the burst must not produce a second callback
	select {
	case changed := <-changes:
		t.Fatalf("unexpected second callback: %v", changed)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcher_IgnoresUnwatchedAndExcludedFiles(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "diacritics.csv")
	if err := os.WriteFile(file, []byte("before"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	changes := make(chan []string, 10)
	w, err := watcher.New(50*time.Millisecond, []string{"*~"}, func(changed []string) {
		changes <- changed
	})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	defer func() {
		_ = w.Close()
	}()
	if err := w.Watch(file); err != nil {
		t.Fatalf("watch: %v", err)
	}

	// same directory, but not a watched file
	if err := os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	// excluded editor backup of the watched file's name
	if err := os.WriteFile(filepath.Join(dir, "diacritics.csv~"), []byte("x"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	select {
	case changed := <-changes:
		t.Fatalf("unexpected callback: %v", changed)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcher_BadExcludePattern(t *testing.T) {
	if _, err := watcher.New(time.Millisecond, []string{"[unterminated"}, func([]string) {}); err == nil {
		t.Fatalf("err = nil, want error")
	}
}
