package models

import "time"

// Update check frequencies.
const (
	CheckEveryLaunch = "every_launch"
	CheckDaily       = "daily"
	CheckWeekly      = "weekly"
)

// ServerConfig describes the background service the shell keeps alive.
type ServerConfig struct {
	Command            []string `yaml:"command"`
	Workdir            string   `yaml:"workdir"`
	URL                string   `yaml:"url"`
	GracePeriodSeconds int      `yaml:"grace_period_seconds"`
}

// WindowConfig holds main window behavior.
type WindowConfig struct {
	ShowOnStart bool `yaml:"show_on_start"`
}

// UpdatesConfig holds settings for update checking.
type UpdatesConfig struct {
	CheckOnStartup bool       `yaml:"check_on_startup"`
	CheckFrequency string     `yaml:"check_frequency"` // "every_launch" | "daily" | "weekly"
	LastChecked    *time.Time `yaml:"last_checked,omitempty"`
}

// LoggingConfig holds log output settings.
type LoggingConfig struct {
	Level string `yaml:"level"`
	File  bool   `yaml:"file"`
}

// Settings represents global shell settings.
// This corresponds to ~/.streamkit/settings.yaml.
type Settings struct {
	Version int           `yaml:"version"`
	Server  ServerConfig  `yaml:"server"`
	Window  WindowConfig  `yaml:"window"`
	Updates UpdatesConfig `yaml:"updates"`
	Logging LoggingConfig `yaml:"logging"`
}

// NewSettings creates settings with default values.
func NewSettings() *Settings {
	return &Settings{
		Version: 1,
		Server: ServerConfig{
			Command:            []string{"node", "server.js"},
			Workdir:            ".",
			URL:                "http://localhost:3000",
			GracePeriodSeconds: 2,
		},
		Window: WindowConfig{
			ShowOnStart: true,
		},
		Updates: UpdatesConfig{
			CheckOnStartup: true,
			CheckFrequency: CheckDaily,
			LastChecked:    nil,
		},
		Logging: LoggingConfig{
			Level: "info",
			File:  true,
		},
	}
}
