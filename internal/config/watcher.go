package config

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"

	"github.com/streamkit-io/streamkit-shell/internal/logging"
)

// Watcher watches the global directory and fires a callback when
// settings.yaml changes, letting the shell pick up edits without a restart.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	onChange  func()
	done      chan struct{}
	closeOnce sync.Once
	log       zerolog.Logger

	debounceMu sync.Mutex
	debounce   *time.Timer
}

// NewWatcher creates a settings watcher. The callback runs on the watcher's
// own goroutine after a short debounce.
func NewWatcher(onChange func()) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	return &Watcher{
		fsWatcher: fsWatcher,
		onChange:  onChange,
		done:      make(chan struct{}),
		log:       logging.New("settings-watcher"),
	}, nil
}

// Start begins watching the global directory.
func (w *Watcher) Start() error {
	dir, err := GlobalDir()
	if err != nil {
		return err
	}
	if err := EnsureGlobalDir(); err != nil {
		return err
	}
	if err := w.fsWatcher.Add(dir); err != nil {
		return err
	}

	go w.processEvents()
	return nil
}

// Stop stops the watcher. Safe to call more than once.
func (w *Watcher) Stop() {
	w.closeOnce.Do(func() {
		close(w.done)
		_ = w.fsWatcher.Close()
	})
}

func (w *Watcher) processEvents() {
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			w.log.Warn().Err(err).Msg("watch error")
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	// Accept write, create, and rename events. Rename matters because
	// atomic saves (write tmp, rename over target) surface as Rename on
	// the target file.
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
		return
	}
	if filepath.Base(event.Name) != SettingsFileName {
		return
	}

	w.debounceMu.Lock()
	defer w.debounceMu.Unlock()

	if w.debounce != nil {
		w.debounce.Stop()
	}
	w.debounce = time.AfterFunc(100*time.Millisecond, func() {
		w.log.Debug().Str("path", event.Name).Msg("settings changed")
		w.onChange()
	})
}
