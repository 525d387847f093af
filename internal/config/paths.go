// Package config handles settings, instance state, and path management.
package config

import (
	"os"
	"path/filepath"
)

// GlobalDirName is the name of the global StreamKit directory.
const GlobalDirName = ".streamkit"

// File and directory names under the global directory.
const (
	SettingsFileName = "settings.yaml"
	ShellFileName    = "shell.yaml"
	LogsDirName      = "logs"
)

// GlobalDir returns the path to the global StreamKit directory (~/.streamkit/).
func GlobalDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, GlobalDirName), nil
}

// SettingsFile returns the path to the settings.yaml file.
func SettingsFile() (string, error) {
	dir, err := GlobalDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, SettingsFileName), nil
}

// ShellFile returns the path to the shell.yaml instance file.
func ShellFile() (string, error) {
	dir, err := GlobalDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ShellFileName), nil
}

// LogsDir returns the path to the logs directory.
func LogsDir() (string, error) {
	dir, err := GlobalDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, LogsDirName), nil
}

// EnsureGlobalDir creates the global StreamKit directory if it doesn't exist.
func EnsureGlobalDir() error {
	dir, err := GlobalDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0755)
}

// EnsureLogsDir creates the logs directory if it doesn't exist.
func EnsureLogsDir() error {
	dir, err := LogsDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0755)
}
