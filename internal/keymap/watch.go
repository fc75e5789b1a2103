package keymap

import (
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher watches one or more configuration files and re-parses them
// as a single Config whenever any of them changes, grounded on the
// same fsnotify event-loop shape as the teacher's recursive directory
// watchers, simplified to a fixed file set and a single debounced
// reparse callback instead of a raw event channel.
type Watcher struct {
	fsw   *fsnotify.Watcher
	paths []string

	onChange func(*Config, error)
	debounce time.Duration

	mu     sync.Mutex
	timer  *time.Timer
	closed chan struct{}
	done   sync.WaitGroup
}

// Watch starts watching paths for writes and renames, calling
// onChange with a freshly reparsed Config (or the error that reparse
// produced) after each settled burst of changes. It reparses once
// immediately before returning, so onChange always sees an initial
// result.
func Watch(paths []string, onChange func(*Config, error)) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	for _, p := range paths {
		if err := fsw.Add(p); err != nil {
			fsw.Close()
			return nil, err
		}
	}
	w := &Watcher{
		fsw:      fsw,
		paths:    append([]string(nil), paths...),
		onChange: onChange,
		debounce: 150 * time.Millisecond,
		closed:   make(chan struct{}),
	}
	w.done.Add(1)
	go w.loop()
	w.reparse()
	return w, nil
}

func (w *Watcher) loop() {
	defer w.done.Done()
	for {
		select {
		case <-w.closed:
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename) {
				w.scheduleReparse()
			}
		case _, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
		}
	}
}

// scheduleReparse coalesces a burst of filesystem events (editors
// commonly emit several writes per save) into one reparse, the same
// debounce idiom the teacher's watcher package documents for noisy
// write bursts.
func (w *Watcher) scheduleReparse() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, w.reparse)
}

func (w *Watcher) reparse() {
	cfg, err := ParseFiles(w.paths)
	w.onChange(cfg, err)
}

// Close stops the watcher and releases its fsnotify handle.
func (w *Watcher) Close() error {
	close(w.closed)
	w.done.Wait()
	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()
	return w.fsw.Close()
}
