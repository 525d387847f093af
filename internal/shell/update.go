package shell

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/streamkit-io/streamkit-shell/internal/models"
)

// maybeCheckForUpdates runs the startup update check when settings allow it.
// The check timestamp is stamped once a check completes, so a failed check
// does not burn the daily or weekly window.
func maybeCheckForUpdates(rt *Runtime, settings *models.Settings, log zerolog.Logger) {
	if !settings.Updates.CheckOnStartup {
		return
	}

	if settings.Updates.LastChecked != nil {
		since := time.Since(*settings.Updates.LastChecked)
		switch settings.Updates.CheckFrequency {
		case models.CheckDaily:
			if since < 24*time.Hour {
				return
			}
		case models.CheckWeekly:
			if since < 7*24*time.Hour {
				return
			}
			// CheckEveryLaunch: always check
		}
	}

	log.Debug().Str("frequency", settings.Updates.CheckFrequency).Msg("running startup update check")
	rt.CheckForUpdates()
}
