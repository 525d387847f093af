// Package shell composes the supervisor, tray, and window controllers into
// the application runtime and owns the shutdown path.
package shell

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/skratchdot/open-golang/open"

	"github.com/streamkit-io/streamkit-shell/internal/buildinfo"
	"github.com/streamkit-io/streamkit-shell/internal/config"
	"github.com/streamkit-io/streamkit-shell/internal/logging"
	"github.com/streamkit-io/streamkit-shell/internal/models"
	"github.com/streamkit-io/streamkit-shell/internal/supervisor"
	"github.com/streamkit-io/streamkit-shell/internal/tray"
	"github.com/streamkit-io/streamkit-shell/internal/updater"
	"github.com/streamkit-io/streamkit-shell/internal/window"
)

// Notifier delivers a desktop notification.
type Notifier interface {
	Notify(title, body string)
}

// UpdateChecker is satisfied by *updater.Checker.
type UpdateChecker interface {
	Check(ctx context.Context) (*updater.Result, error)
}

// Runtime wires the components together and routes every quit trigger
// through a single shutdown routine.
type Runtime struct {
	log      zerolog.Logger
	settings *models.Settings
	sup      *supervisor.Supervisor
	win      *window.Controller
	notifier Notifier
	checker  UpdateChecker
	quit     func() // toolkit exit, invoked after cleanup

	life         lifecycle
	shutdownOnce sync.Once
	cleanupMu    sync.Mutex
	cleanups     []func()
}

// NewRuntime assembles a runtime. quit is the toolkit's exit request and is
// only ever called after cleanup has run.
func NewRuntime(settings *models.Settings, sup *supervisor.Supervisor, win *window.Controller, notifier Notifier, checker UpdateChecker, quit func()) *Runtime {
	return &Runtime{
		log:      logging.New("shell"),
		settings: settings,
		sup:      sup,
		win:      win,
		notifier: notifier,
		checker:  checker,
		quit:     quit,
	}
}

// Start spawns the background service and blocks for the startup grace
// period. It must run before the window is shown; a spawn failure is fatal
// and the caller aborts the launch.
func (r *Runtime) Start() error {
	if err := r.sup.Start(); err != nil {
		return fmt.Errorf("start background service: %w", err)
	}
	r.sup.WaitReady()
	return nil
}

// MarkRunning records that startup finished and the event loop is about to
// take over.
func (r *Runtime) MarkRunning() {
	r.life.advance(StateRunning)
}

// State returns the current lifecycle state.
func (r *Runtime) State() State {
	return r.life.Current()
}

// AddCleanup registers a function to run during shutdown, after the service
// has been terminated.
func (r *Runtime) AddCleanup(fn func()) {
	r.cleanupMu.Lock()
	r.cleanups = append(r.cleanups, fn)
	r.cleanupMu.Unlock()
}

// HandleTrayEvent routes a tray event to its action. Runs on the toolkit
// event loop.
func (r *Runtime) HandleTrayEvent(ev tray.Event) {
	action := tray.MapEvent(ev)
	switch action {
	case tray.ActionShowWindow:
		r.win.Show()
	case tray.ActionHideWindow:
		r.win.Hide()
	case tray.ActionToggleAutoStart:
		// Menu entry exists, behavior does not: unimplemented capability
		// boundary, kept as a logged placeholder.
		r.log.Info().Msg("auto-start toggled (not implemented)")
	case tray.ActionCheckForUpdates:
		r.CheckForUpdates()
	case tray.ActionQuit:
		r.Shutdown()
	case tray.ActionNone:
		r.log.Debug().Str("item", ev.ItemID).Msg("ignoring unknown tray item")
	}
}

// AppVersion returns the running build's semantic version.
func (r *Runtime) AppVersion() string {
	return buildinfo.Version
}

// MinimizeToTray hides the main window; the tray icon stays as the way back.
func (r *Runtime) MinimizeToTray() {
	r.win.Hide()
}

// OpenWebUI opens the served StreamKit UI in the default browser.
func (r *Runtime) OpenWebUI() {
	url := r.settings.Server.URL
	if err := open.Run(url); err != nil {
		r.log.Error().Err(err).Str("url", url).Msg("failed to open web UI")
	}
}

// CheckForUpdates runs one asynchronous update check. It never blocks the
// event loop, and shutdown never waits for it: a result arriving after
// shutdown begins is discarded.
func (r *Runtime) CheckForUpdates() {
	go func() {
		result, err := r.checker.Check(context.Background())
		r.handleUpdateResult(result, err)
	}()
}

func (r *Runtime) handleUpdateResult(result *updater.Result, err error) {
	if r.life.Current() >= StateShuttingDown {
		r.log.Debug().Msg("discarding update check result during shutdown")
		return
	}
	if err != nil {
		// No timestamp on failure, so the next launch retries.
		r.log.Warn().Err(err).Msg("update check failed")
		return
	}

	now := time.Now()
	r.settings.Updates.LastChecked = &now
	if err := config.SaveSettings(r.settings); err != nil {
		r.log.Warn().Err(err).Msg("failed to save update check timestamp")
	}

	if !result.Available {
		r.log.Info().Str("version", result.CurrentVersion).Msg("shell is up to date")
		return
	}

	r.log.Info().
		Str("current", result.CurrentVersion).
		Str("latest", result.LatestVersion).
		Msg("update available")
	r.notifier.Notify(
		"StreamKit update available",
		fmt.Sprintf("Version %s is available (you have %s).", result.LatestVersion, result.CurrentVersion),
	)
}

// Shutdown is the single cleanup path for every quit trigger: tray Quit, OS
// signal, or a toolkit exit request. The first caller wins; the service is
// terminated exactly once and only then is the toolkit allowed to exit.
func (r *Runtime) Shutdown() {
	r.shutdownOnce.Do(func() {
		// A quit can arrive before startup finished (early OS signal).
		if r.life.Current() == StateUninitialized {
			r.life.advance(StateRunning)
		}
		r.life.advance(StateShuttingDown)
		r.log.Info().Msg("shutting down")

		r.sup.Terminate()

		r.cleanupMu.Lock()
		cleanups := r.cleanups
		r.cleanupMu.Unlock()
		for _, fn := range cleanups {
			fn()
		}

		r.life.advance(StateTerminated)
		if r.quit != nil {
			r.quit()
		}
	})
}
