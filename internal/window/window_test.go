package window

import (
	"errors"
	"testing"
)

type fakeWindow struct {
	shows   int
	hides   int
	focuses int
	visible bool
}

func (w *fakeWindow) Show() {
	w.shows++
	w.visible = true
}

func (w *fakeWindow) Hide() {
	w.hides++
	w.visible = false
}

func (w *fakeWindow) RequestFocus() { w.focuses++ }

func TestNewControllerRequiresWindow(t *testing.T) {
	if _, err := NewController(nil); !errors.Is(err, ErrNoWindow) {
		t.Fatalf("NewController(nil) error = %v, want ErrNoWindow", err)
	}
}

func TestShowFocusesWindow(t *testing.T) {
	win := &fakeWindow{}
	ctrl, err := NewController(win)
	if err != nil {
		t.Fatalf("NewController() error = %v", err)
	}

	ctrl.Show()

	if win.shows != 1 {
		t.Errorf("shows = %d, want 1", win.shows)
	}
	if win.focuses != 1 {
		t.Errorf("focuses = %d, want 1", win.focuses)
	}
	if !win.visible {
		t.Error("window not visible after Show")
	}
}

func TestCloseRequestHidesInsteadOfDestroying(t *testing.T) {
	win := &fakeWindow{visible: true}
	ctrl, err := NewController(win)
	if err != nil {
		t.Fatalf("NewController() error = %v", err)
	}

	ctrl.HandleCloseRequested()

	if win.hides != 1 {
		t.Errorf("hides = %d, want 1", win.hides)
	}
	if win.visible {
		t.Error("window still visible after close request")
	}

	// The window object stays alive: a later show must still work.
	ctrl.Show()
	if !win.visible {
		t.Error("window not visible after show following close request")
	}
}
