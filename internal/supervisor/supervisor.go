// Package supervisor owns the background service process for the shell
// session: one spawn at startup, one termination attempt at shutdown.
package supervisor

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/streamkit-io/streamkit-shell/internal/logging"
)

// DefaultGracePeriod is the fixed wait after spawning the service before the
// UI is considered ready.
const DefaultGracePeriod = 2 * time.Second

// terminateTimeout bounds how long shutdown waits between SIGTERM and
// SIGKILL, so a wedged service cannot stall the exit path.
const terminateTimeout = 5 * time.Second

// ErrAlreadyStarted is returned when Start is called twice in one run.
var ErrAlreadyStarted = errors.New("service process already started this run")

// Supervisor owns exactly one Handle for the lifetime of the application.
type Supervisor struct {
	mu       sync.Mutex
	launcher Launcher
	grace    time.Duration
	handle   Handle
	started  bool
	log      zerolog.Logger
}

// New creates a supervisor. grace <= 0 falls back to DefaultGracePeriod.
func New(launcher Launcher, grace time.Duration) *Supervisor {
	if grace <= 0 {
		grace = DefaultGracePeriod
	}
	return &Supervisor{
		launcher: launcher,
		grace:    grace,
		log:      logging.New("supervisor"),
	}
}

// Start spawns the background service. Exactly one spawn happens per run; a
// second call returns ErrAlreadyStarted. A spawn failure is fatal to startup
// and the caller must not show any window.
func (s *Supervisor) Start() error {
	s.mu.Lock()
	if s.started {
		s.mu.Unlock()
		return ErrAlreadyStarted
	}
	s.started = true
	s.mu.Unlock()

	handle, err := s.launcher.Launch()
	if err != nil {
		return fmt.Errorf("spawn service process: %w", err)
	}

	s.mu.Lock()
	s.handle = handle
	s.mu.Unlock()

	s.log.Info().Int("pid", handle.PID()).Msg("service process started")
	return nil
}

// WaitReady blocks for the startup grace period. This is a plain wait, not a
// health check: the service is assumed ready afterwards, accepting a
// best-effort race. Acceptable only because it runs before the event loop
// starts, so no events can arrive during the sleep.
func (s *Supervisor) WaitReady() {
	time.Sleep(s.grace)
}

// Terminate stops the service if it is still held. Idempotent: the handle is
// taken under the lock exactly once, and a second call is a no-op. The lock
// is never held across the blocking terminate itself. Failures are logged,
// never escalated, since termination runs during shutdown.
func (s *Supervisor) Terminate() {
	s.mu.Lock()
	handle := s.handle
	s.handle = nil
	s.mu.Unlock()

	if handle == nil {
		s.log.Debug().Msg("no service process to terminate")
		return
	}

	s.log.Info().Int("pid", handle.PID()).Msg("terminating service process")
	if err := handle.Terminate(terminateTimeout); err != nil {
		s.log.Warn().Err(err).Msg("failed to terminate service process")
	}
}

// Running reports whether the supervisor still holds a live, unreaped handle.
func (s *Supervisor) Running() bool {
	s.mu.Lock()
	handle := s.handle
	s.mu.Unlock()

	if handle == nil {
		return false
	}
	select {
	case <-handle.Done():
		return false
	default:
		return true
	}
}

// PID returns the held process ID, or 0 if no process is held.
func (s *Supervisor) PID() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.handle == nil {
		return 0
	}
	return s.handle.PID()
}
