package supervisor

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"syscall"
	"time"
)

// Handle is a reference to a spawned service process. Exactly one live
// handle exists per shell run; once terminated it is never reused.
type Handle interface {
	PID() int
	// Done is closed once the process has been reaped.
	Done() <-chan struct{}
	// Terminate asks the process to exit: SIGTERM first, SIGKILL after the
	// timeout elapses. Returns nil if the process is already gone.
	Terminate(timeout time.Duration) error
}

// Launcher spawns the background service. Injectable so the supervisor can be
// tested with a fake handle.
type Launcher interface {
	Launch() (Handle, error)
}

// ExecLauncher launches the service with os/exec in a fixed working
// directory. Stdio is inherited from the shell; there is no further
// environment or argument contract.
type ExecLauncher struct {
	Command []string
	Dir     string
}

// Launch starts the configured command and begins reaping it in the
// background.
func (l *ExecLauncher) Launch() (Handle, error) {
	if len(l.Command) == 0 {
		return nil, errors.New("service command is empty")
	}

	cmd := exec.Command(l.Command[0], l.Command[1:]...)
	cmd.Dir = l.Dir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Start(); err != nil {
		return nil, err
	}

	h := &execHandle{
		cmd:  cmd,
		done: make(chan struct{}),
	}
	go func() {
		h.exitErr = cmd.Wait()
		close(h.done)
	}()
	return h, nil
}

// execHandle wraps a started exec.Cmd.
type execHandle struct {
	cmd     *exec.Cmd
	done    chan struct{}
	exitErr error
}

func (h *execHandle) PID() int {
	return h.cmd.Process.Pid
}

func (h *execHandle) Done() <-chan struct{} {
	return h.done
}

// Terminate sends SIGTERM, waits up to timeout for a graceful exit, then
// force kills.
func (h *execHandle) Terminate(timeout time.Duration) error {
	select {
	case <-h.done:
		return nil
	default:
	}

	_ = h.cmd.Process.Signal(syscall.SIGTERM)

	select {
	case <-h.done:
		return nil
	case <-time.After(timeout):
	}

	if err := h.cmd.Process.Kill(); err != nil {
		return fmt.Errorf("kill service process: %w", err)
	}
	<-h.done
	return nil
}
