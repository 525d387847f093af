package config

import (
	"os"
	"syscall"

	"github.com/streamkit-io/streamkit-shell/internal/models"
)

// LoadShellInfo loads the live instance record from ~/.streamkit/shell.yaml.
// Returns nil if the file doesn't exist.
func LoadShellInfo() (*models.ShellInfo, error) {
	path, err := ShellFile()
	if err != nil {
		return nil, err
	}

	if !FileExists(path) {
		return nil, nil
	}

	var info models.ShellInfo
	if err := LoadYAML(path, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// SaveShellInfo saves the instance record to ~/.streamkit/shell.yaml.
func SaveShellInfo(info *models.ShellInfo) error {
	if err := EnsureGlobalDir(); err != nil {
		return err
	}

	path, err := ShellFile()
	if err != nil {
		return err
	}
	return SaveYAML(path, info)
}

// RemoveShellInfo removes the shell.yaml file.
func RemoveShellInfo() error {
	path, err := ShellFile()
	if err != nil {
		return err
	}

	if !FileExists(path) {
		return nil
	}
	return os.Remove(path)
}

// IsShellRunning checks whether another shell instance is still alive.
// Returns true if shell.yaml exists and the recorded PID responds to
// signal 0. A stale record is cleaned up on the spot.
func IsShellRunning() (bool, *models.ShellInfo, error) {
	info, err := LoadShellInfo()
	if err != nil {
		return false, nil, err
	}
	if info == nil {
		return false, nil, nil
	}

	process, err := os.FindProcess(info.PID)
	if err != nil {
		// On Unix, FindProcess always succeeds
		return false, info, nil
	}

	if err := process.Signal(syscall.Signal(0)); err != nil {
		_ = RemoveShellInfo()
		return false, info, nil
	}

	return true, info, nil
}
