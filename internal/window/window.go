// Package window controls visibility of the shell's single main window.
//
// The window is never destroyed while the shell runs: a close request from
// the window system is substituted with a hide, and quitting is only
// reachable through the tray or an exit signal.
package window

import (
	"errors"

	"github.com/rs/zerolog"

	"github.com/streamkit-io/streamkit-shell/internal/logging"
)

// Name is the stable identifier of the main window.
const Name = "main"

// ErrNoWindow reports a violated single-window invariant: the main window
// should always exist for the process lifetime.
var ErrNoWindow = errors.New("main window " + Name + " not found")

// Window is the toolkit capability the controller drives. fyne.Window
// satisfies it.
type Window interface {
	Show()
	Hide()
	RequestFocus()
}

// Controller owns show/hide decisions for the borrowed main window reference.
type Controller struct {
	win Window
	log zerolog.Logger
}

// NewController wraps the main window. A nil window is an invariant
// violation and returns ErrNoWindow, which callers treat as fatal.
func NewController(win Window) (*Controller, error) {
	if win == nil {
		return nil, ErrNoWindow
	}
	return &Controller{
		win: win,
		log: logging.New("window"),
	}, nil
}

// Show makes the window visible and requests input focus.
func (c *Controller) Show() {
	c.log.Debug().Msg("showing main window")
	c.win.Show()
	c.win.RequestFocus()
}

// Hide makes the window invisible. The window object stays alive.
func (c *Controller) Hide() {
	c.log.Debug().Msg("hiding main window")
	c.win.Hide()
}

// HandleCloseRequested is the close interceptor: the default destroy is
// cancelled by the toolkit binding and the window is hidden instead.
// Unconditional, with no "really quit" path through the close button.
func (c *Controller) HandleCloseRequested() {
	c.log.Debug().Msg("close requested, hiding instead")
	c.Hide()
}
