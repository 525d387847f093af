package shell

import (
	"fmt"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/streamkit-io/streamkit-shell/internal/supervisor"
)

const statusRefreshInterval = 5 * time.Second

// buildStatusPanel builds the main window content: version, service state,
// and the operations the web frontend used to invoke.
func buildStatusPanel(rt *Runtime, sup *supervisor.Supervisor) fyne.CanvasObject {
	title := widget.NewLabelWithStyle("StreamKit", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	version := widget.NewLabel(fmt.Sprintf("Version %s", rt.AppVersion()))
	status := widget.NewLabel(serviceStatus(sup))

	openBtn := widget.NewButton("Open Web UI", rt.OpenWebUI)
	updateBtn := widget.NewButton("Check for Updates", rt.CheckForUpdates)
	minimizeBtn := widget.NewButton("Minimize to Tray", rt.MinimizeToTray)

	go refreshStatus(rt, sup, status)

	return container.NewVBox(
		title,
		version,
		status,
		widget.NewSeparator(),
		openBtn,
		updateBtn,
		minimizeBtn,
	)
}

// refreshStatus keeps the service state label current. Updates are marshaled
// back onto the toolkit loop; the goroutine ends once shutdown begins.
func refreshStatus(rt *Runtime, sup *supervisor.Supervisor, status *widget.Label) {
	ticker := time.NewTicker(statusRefreshInterval)
	defer ticker.Stop()

	for range ticker.C {
		if rt.State() >= StateShuttingDown {
			return
		}
		text := serviceStatus(sup)
		fyne.Do(func() {
			status.SetText(text)
		})
	}
}

func serviceStatus(sup *supervisor.Supervisor) string {
	if sup.Running() {
		return fmt.Sprintf("Background service running (PID %d)", sup.PID())
	}
	return "Background service stopped"
}
