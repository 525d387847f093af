package shell

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"github.com/rs/zerolog"

	"github.com/streamkit-io/streamkit-shell/internal/buildinfo"
	"github.com/streamkit-io/streamkit-shell/internal/config"
	"github.com/streamkit-io/streamkit-shell/internal/logging"
	"github.com/streamkit-io/streamkit-shell/internal/models"
	"github.com/streamkit-io/streamkit-shell/internal/supervisor"
	"github.com/streamkit-io/streamkit-shell/internal/tray"
	"github.com/streamkit-io/streamkit-shell/internal/updater"
	"github.com/streamkit-io/streamkit-shell/internal/window"
)

const appID = "io.streamkit.shell"

// Run builds and runs the desktop shell. It blocks until the shell exits and
// returns nil on a normal quit.
func Run() error {
	settings, err := config.LoadSettings()
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	logDir := ""
	if settings.Logging.File {
		if err := config.EnsureLogsDir(); err == nil {
			logDir, _ = config.LogsDir()
		}
	}
	logging.Setup(settings.Logging.Level, logDir)
	log := logging.New("app")

	if running, info, err := config.IsShellRunning(); err != nil {
		return fmt.Errorf("check running instance: %w", err)
	} else if running {
		return fmt.Errorf("shell already running (PID %d)", info.PID)
	}

	grace := time.Duration(settings.Server.GracePeriodSeconds) * time.Second
	sup := supervisor.New(&supervisor.ExecLauncher{
		Command: settings.Server.Command,
		Dir:     settings.Server.Workdir,
	}, grace)

	a := app.NewWithID(appID)
	w := a.NewWindow("StreamKit")
	winCtl, err := window.NewController(w)
	if err != nil {
		return err
	}

	rt := NewRuntime(settings, sup, winCtl, &fyneNotifier{app: a}, updater.NewChecker(), a.Quit)

	// OS signals converge on the same shutdown path as tray Quit. The
	// handler is installed before the spawn, so a signal landing during the
	// startup grace period still terminates the service.
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		log.Info().Str("signal", sig.String()).Msg("received signal, shutting down")
		rt.Shutdown()
	}()

	// Spawn before any window is shown. A failed spawn aborts the launch
	// with a diagnostic and no window ever appears.
	if err := rt.Start(); err != nil {
		return err
	}

	info := models.NewShellInfo(os.Getpid(), buildinfo.Version)
	if err := config.SaveShellInfo(info); err != nil {
		log.Warn().Err(err).Msg("failed to record shell instance")
	}
	rt.AddCleanup(func() {
		if err := config.RemoveShellInfo(); err != nil {
			log.Warn().Err(err).Msg("failed to remove shell instance record")
		}
	})
	log = log.With().Str("session_id", info.SessionID).Logger()
	log.Info().
		Str("version", buildinfo.Version).
		Int("service_pid", sup.PID()).
		Msg("shell started")

	w.SetCloseIntercept(winCtl.HandleCloseRequested)
	w.SetContent(buildStatusPanel(rt, sup))
	w.Resize(fyne.NewSize(420, 280))
	w.CenterOnScreen()

	if desk, ok := a.(desktop.App); ok {
		desk.SetSystemTrayMenu(buildTrayMenu(rt))
		desk.SetSystemTrayIcon(theme.ComputerIcon())
	} else {
		log.Warn().Msg("no system tray support on this platform")
	}

	if watcher, err := config.NewWatcher(func() { applySettings(log) }); err != nil {
		log.Warn().Err(err).Msg("settings watcher unavailable")
	} else if err := watcher.Start(); err != nil {
		log.Warn().Err(err).Msg("settings watcher failed to start")
	} else {
		rt.AddCleanup(watcher.Stop)
	}

	maybeCheckForUpdates(rt, settings, log)

	rt.MarkRunning()
	if settings.Window.ShowOnStart {
		winCtl.Show()
	}

	a.Run()

	// If the toolkit ended the loop on its own (session end), cleanup has
	// not run yet; Shutdown is a no-op when the tray Quit already did it.
	rt.Shutdown()
	return nil
}

// applySettings re-reads settings.yaml and applies what can change live.
func applySettings(log zerolog.Logger) {
	settings, err := config.LoadSettings()
	if err != nil {
		log.Warn().Err(err).Msg("failed to reload settings")
		return
	}
	logging.SetLevel(settings.Logging.Level)
	log.Info().Str("level", settings.Logging.Level).Msg("settings reloaded")
}

// fyneNotifier surfaces notifications through the desktop toolkit.
type fyneNotifier struct {
	app fyne.App
}

func (n *fyneNotifier) Notify(title, body string) {
	n.app.SendNotification(fyne.NewNotification(title, body))
}

// buildTrayMenu renders the static menu model into a toolkit menu whose
// handlers feed tray events back to the runtime.
func buildTrayMenu(rt *Runtime) *fyne.Menu {
	entries := tray.Menu()
	items := make([]*fyne.MenuItem, 0, len(entries))
	for _, entry := range entries {
		if entry.Separator {
			items = append(items, fyne.NewMenuItemSeparator())
			continue
		}

		id := entry.ID
		item := fyne.NewMenuItem(entry.Label, func() {
			rt.HandleTrayEvent(tray.Event{Kind: tray.EventMenuItem, ItemID: id})
		})
		// Marking our Quit entry keeps the toolkit from appending its
		// own quit item, which would exit without cleanup.
		if entry.ID == tray.ItemQuit {
			item.IsQuit = true
		}
		items = append(items, item)
	}
	return fyne.NewMenu("StreamKit", items...)
}
