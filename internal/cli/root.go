// Package cli defines the streamkit-shell command tree.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/streamkit-io/streamkit-shell/internal/shell"
)

var rootCmd = &cobra.Command{
	Use:   "streamkit-shell",
	Short: "Desktop shell for the StreamKit background service",
	Long: `streamkit-shell runs the StreamKit background service for a desktop
session and keeps it reachable from the system tray. Closing the window hides
it; the service keeps running until Quit is chosen from the tray.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return shell.Run()
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(settingsCmd)
}

// Execute runs the command tree.
func Execute() error {
	return rootCmd.Execute()
}
