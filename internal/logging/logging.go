// Package logging configures zerolog output for the shell.
//
// Console output goes to stderr so the background service's inherited stdio
// stays readable. When file logging is enabled, a rotating sink under the
// global logs directory is added alongside it.
package logging

import (
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

const logFileName = "shell.log"

var (
	mu   sync.Mutex
	base = zerolog.New(consoleWriter()).With().Timestamp().Logger()
)

func consoleWriter() zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: "15:04:05",
	}
}

// Setup applies the configured level and sinks. Pass an empty logDir to keep
// console-only output. STREAMKIT_DEBUG=1 forces debug level regardless of
// settings.
func Setup(level, logDir string) {
	SetLevel(level)

	writers := []io.Writer{consoleWriter()}
	if logDir != "" {
		writers = append(writers, &lumberjack.Logger{
			Filename:   filepath.Join(logDir, logFileName),
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     14, // days
		})
	}

	mu.Lock()
	base = zerolog.New(zerolog.MultiLevelWriter(writers...)).With().Timestamp().Logger()
	mu.Unlock()
}

// SetLevel changes the global level at runtime (settings watcher hook).
// Unparseable levels fall back to info.
func SetLevel(level string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	if os.Getenv("STREAMKIT_DEBUG") != "" {
		lvl = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(lvl)
}

// New returns a child logger tagged with the originating component.
func New(component string) zerolog.Logger {
	mu.Lock()
	defer mu.Unlock()
	return base.With().Str("component", component).Logger()
}
