package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/streamkit-io/streamkit-shell/internal/updater"
)

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Check whether a newer shell release is available",
	Long: `Check the releases feed for a newer shell build. This only reports;
the shell never replaces itself. Install updates from the release page.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("Checking for updates...")

		result, err := updater.NewChecker().Check(cmd.Context())
		if err != nil {
			return fmt.Errorf("update check failed: %w", err)
		}

		if !result.Available {
			fmt.Printf("Already up to date (v%s).\n", result.CurrentVersion)
			return nil
		}

		fmt.Printf("Update available: v%s -> v%s\n", result.CurrentVersion, result.LatestVersion)
		if result.ReleaseURL != "" {
			fmt.Printf("Release: %s\n", result.ReleaseURL)
		}
		return nil
	},
}
