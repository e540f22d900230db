// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package watcher reruns the generators when an input file changes.
// Every change triggers a full regeneration; there is no incremental
// mode and no state carried between regenerations.
package watcher

import (
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/gobwas/glob"
)

// Watcher watches a fixed set of input files and invokes a callback
// with the changed paths after a debounce interval. Editors replace
// files with rename-and-create dances, so the watcher registers parent
// directories and filters events down to the named files.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	debounce  time.Duration
	exclude   []glob.Glob
	onChange  func([]string)

	watched map[string]bool // absolute paths of the watched files

	pendingMu sync.Mutex
	pending   map[string]bool
	timer     *time.Timer

	done chan struct{}
}

// New creates a Watcher. The exclude patterns are matched against the
// base name of each event path.
func New(debounce time.Duration, exclude []string, onChange func([]string)) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		fsWatcher: fsw,
		debounce:  debounce,
		onChange:  onChange,
		watched:   make(map[string]bool),
		pending:   make(map[string]bool),
		done:      make(chan struct{}),
	}
	for _, pattern := range exclude {
		g, err := glob.Compile(pattern)
		if err != nil {
			_ = fsw.Close()
			return nil, err
		}
		w.exclude = append(w.exclude, g)
	}
	return w, nil
}

// Watch registers the files and starts delivering change callbacks.
func (w *Watcher) Watch(files ...string) error {
	dirs := make(map[string]bool)
	for _, file := range files {
		abs, err := filepath.Abs(file)
		if err != nil {
			return err
		}
		w.watched[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		if err := w.fsWatcher.Add(dir); err != nil {
			return err
		}
	}

	go w.run()
	return nil
}

// Close stops the watcher. Pending changes are dropped.
func (w *Watcher) Close() error {
	close(w.done)
	return w.fsWatcher.Close()
}

func (w *Watcher) run() {
	for {
		select {
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if w.excluded(filepath.Base(event.Name)) {
				continue
			}
			abs, err := filepath.Abs(event.Name)
			if err != nil || !w.watched[abs] {
				continue
			}
			w.schedule(abs)
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			log.Printf("watch: %v\n", err)
		case <-w.done:
			return
		}
	}
}

func (w *Watcher) excluded(name string) bool {
	for _, g := range w.exclude {
		if g.Match(name) {
			return true
		}
	}
	return false
}

// schedule adds the path to the pending set and (re)arms the debounce
// timer, so a burst of events produces a single callback.
func (w *Watcher) schedule(path string) {
	w.pendingMu.Lock()
	defer w.pendingMu.Unlock()

	w.pending[path] = true
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, w.flush)
}

func (w *Watcher) flush() {
	w.pendingMu.Lock()
	changed := make([]string, 0, len(w.pending))
	for path := range w.pending {
		changed = append(changed, path)
	}
	w.pending = make(map[string]bool)
	w.pendingMu.Unlock()

	if len(changed) == 0 {
		return
	}
	select {
	case <-w.done:
		return
	default:
	}
	w.onChange(changed)
}
