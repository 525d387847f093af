package supervisor

import (
	"errors"
	"sync"
	"testing"
	"time"
)

type fakeHandle struct {
	mu         sync.Mutex
	terminates int
	done       chan struct{}
}

func newFakeHandle() *fakeHandle {
	return &fakeHandle{done: make(chan struct{})}
}

func (h *fakeHandle) PID() int { return 4242 }

func (h *fakeHandle) Done() <-chan struct{} { return h.done }

func (h *fakeHandle) Terminate(timeout time.Duration) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.terminates++
	select {
	case <-h.done:
	default:
		close(h.done)
	}
	return nil
}

func (h *fakeHandle) terminateCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.terminates
}

type fakeLauncher struct {
	mu       sync.Mutex
	launches int
	failWith error
	handle   *fakeHandle
}

func (l *fakeLauncher) Launch() (Handle, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.launches++
	if l.failWith != nil {
		return nil, l.failWith
	}
	return l.handle, nil
}

func (l *fakeLauncher) launchCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.launches
}

func TestStartSpawnsExactlyOnce(t *testing.T) {
	launcher := &fakeLauncher{handle: newFakeHandle()}
	sup := New(launcher, time.Millisecond)

	if err := sup.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if err := sup.Start(); !errors.Is(err, ErrAlreadyStarted) {
		t.Fatalf("second Start() error = %v, want ErrAlreadyStarted", err)
	}
	if got := launcher.launchCount(); got != 1 {
		t.Errorf("launch count = %d, want 1", got)
	}
	if !sup.Running() {
		t.Error("Running() = false after successful Start")
	}
	if got := sup.PID(); got != 4242 {
		t.Errorf("PID() = %d, want 4242", got)
	}
}

func TestStartSpawnFailure(t *testing.T) {
	spawnErr := errors.New("exec: \"node\": executable file not found in $PATH")
	launcher := &fakeLauncher{failWith: spawnErr}
	sup := New(launcher, time.Millisecond)

	err := sup.Start()
	if err == nil {
		t.Fatal("Start() error = nil, want spawn failure")
	}
	if !errors.Is(err, spawnErr) {
		t.Errorf("Start() error = %v, want wrapped %v", err, spawnErr)
	}
	if sup.Running() {
		t.Error("Running() = true after failed spawn")
	}
}

func TestTerminateIsIdempotent(t *testing.T) {
	handle := newFakeHandle()
	launcher := &fakeLauncher{handle: handle}
	sup := New(launcher, time.Millisecond)

	if err := sup.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	sup.Terminate()
	sup.Terminate()
	sup.Terminate()

	if got := handle.terminateCount(); got != 1 {
		t.Errorf("terminate count = %d, want 1", got)
	}
	if sup.Running() {
		t.Error("Running() = true after Terminate")
	}
}

func TestTerminateWithoutStart(t *testing.T) {
	launcher := &fakeLauncher{handle: newFakeHandle()}
	sup := New(launcher, time.Millisecond)

	// Must be a silent no-op.
	sup.Terminate()

	if got := launcher.handle.terminateCount(); got != 0 {
		t.Errorf("terminate count = %d, want 0", got)
	}
}

func TestRunningReflectsReapedProcess(t *testing.T) {
	handle := newFakeHandle()
	launcher := &fakeLauncher{handle: handle}
	sup := New(launcher, time.Millisecond)

	if err := sup.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if !sup.Running() {
		t.Fatal("Running() = false for live process")
	}

	close(handle.done)
	if sup.Running() {
		t.Error("Running() = true after process exit")
	}
}
