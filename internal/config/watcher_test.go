package config

import (
	"testing"
	"time"
)

func TestWatcherFiresOnSettingsSave(t *testing.T) {
	setTestHome(t)

	changed := make(chan struct{}, 1)
	watcher, err := NewWatcher(func() {
		select {
		case changed <- struct{}{}:
		default:
		}
	})
	if err != nil {
		t.Fatalf("NewWatcher() error = %v", err)
	}
	defer watcher.Stop()

	if err := watcher.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	settings, err := LoadSettings()
	if err != nil {
		t.Fatal(err)
	}
	settings.Logging.Level = "debug"
	if err := SaveSettings(settings); err != nil {
		t.Fatalf("SaveSettings() error = %v", err)
	}

	select {
	case <-changed:
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not fire after settings save")
	}
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	setTestHome(t)

	changed := make(chan struct{}, 1)
	watcher, err := NewWatcher(func() {
		select {
		case changed <- struct{}{}:
		default:
		}
	})
	if err != nil {
		t.Fatalf("NewWatcher() error = %v", err)
	}
	defer watcher.Stop()

	if err := watcher.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	path, err := ShellFile()
	if err != nil {
		t.Fatal(err)
	}
	if err := SaveYAML(path, map[string]int{"pid": 1}); err != nil {
		t.Fatal(err)
	}

	select {
	case <-changed:
		t.Fatal("watcher fired for a non-settings file")
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcherStopIsIdempotent(t *testing.T) {
	setTestHome(t)

	watcher, err := NewWatcher(func() {})
	if err != nil {
		t.Fatalf("NewWatcher() error = %v", err)
	}
	if err := watcher.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	watcher.Stop()
	watcher.Stop()
}
