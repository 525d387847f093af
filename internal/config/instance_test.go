package config

import (
	"os"
	"testing"

	"github.com/streamkit-io/streamkit-shell/internal/buildinfo"
	"github.com/streamkit-io/streamkit-shell/internal/models"
)

func setTestHome(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
}

func TestShellInfoRoundTrip(t *testing.T) {
	setTestHome(t)

	info := models.NewShellInfo(os.Getpid(), buildinfo.Version)
	if err := SaveShellInfo(info); err != nil {
		t.Fatalf("SaveShellInfo() error = %v", err)
	}

	got, err := LoadShellInfo()
	if err != nil {
		t.Fatalf("LoadShellInfo() error = %v", err)
	}
	if got == nil {
		t.Fatal("LoadShellInfo() = nil after save")
	}
	if got.PID != os.Getpid() {
		t.Errorf("PID = %d, want %d", got.PID, os.Getpid())
	}
	if got.SessionID != info.SessionID {
		t.Errorf("SessionID = %q, want %q", got.SessionID, info.SessionID)
	}

	if err := RemoveShellInfo(); err != nil {
		t.Fatalf("RemoveShellInfo() error = %v", err)
	}
	got, err = LoadShellInfo()
	if err != nil {
		t.Fatalf("LoadShellInfo() after remove error = %v", err)
	}
	if got != nil {
		t.Error("LoadShellInfo() != nil after remove")
	}
}

func TestRemoveShellInfoWithoutFile(t *testing.T) {
	setTestHome(t)

	if err := RemoveShellInfo(); err != nil {
		t.Fatalf("RemoveShellInfo() error = %v for missing file", err)
	}
}

func TestIsShellRunning(t *testing.T) {
	t.Run("no record", func(t *testing.T) {
		setTestHome(t)

		running, info, err := IsShellRunning()
		if err != nil {
			t.Fatalf("IsShellRunning() error = %v", err)
		}
		if running || info != nil {
			t.Errorf("IsShellRunning() = (%v, %v), want (false, nil)", running, info)
		}
	})

	t.Run("live process", func(t *testing.T) {
		setTestHome(t)

		// Our own PID always answers signal 0.
		if err := SaveShellInfo(models.NewShellInfo(os.Getpid(), buildinfo.Version)); err != nil {
			t.Fatal(err)
		}

		running, info, err := IsShellRunning()
		if err != nil {
			t.Fatalf("IsShellRunning() error = %v", err)
		}
		if !running {
			t.Error("IsShellRunning() = false for live PID")
		}
		if info == nil || info.PID != os.Getpid() {
			t.Errorf("info = %+v, want our PID", info)
		}
	})

	t.Run("stale record is cleaned up", func(t *testing.T) {
		setTestHome(t)

		// PID well above the default pid_max, so nothing answers.
		if err := SaveShellInfo(models.NewShellInfo(1<<30, buildinfo.Version)); err != nil {
			t.Fatal(err)
		}

		running, _, err := IsShellRunning()
		if err != nil {
			t.Fatalf("IsShellRunning() error = %v", err)
		}
		if running {
			t.Error("IsShellRunning() = true for dead PID")
		}

		got, err := LoadShellInfo()
		if err != nil {
			t.Fatal(err)
		}
		if got != nil {
			t.Error("stale shell.yaml not removed")
		}
	})
}
