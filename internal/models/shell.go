// Package models defines the YAML-backed data types shared across the shell.
package models

import (
	"time"

	"github.com/google/uuid"
)

// ShellInfo records the live shell instance.
// This corresponds to ~/.streamkit/shell.yaml and doubles as the
// single-instance guard: a second launch refuses to start while the recorded
// PID is alive.
type ShellInfo struct {
	Version    int       `yaml:"version"`
	PID        int       `yaml:"pid"`
	AppVersion string    `yaml:"app_version"`
	SessionID  string    `yaml:"session_id"`
	StartedAt  time.Time `yaml:"started_at"`
}

// NewShellInfo creates shell info for the current run with a fresh session ID.
func NewShellInfo(pid int, appVersion string) *ShellInfo {
	return &ShellInfo{
		Version:    1,
		PID:        pid,
		AppVersion: appVersion,
		SessionID:  uuid.NewString(),
		StartedAt:  time.Now().UTC(),
	}
}
