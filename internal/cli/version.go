package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/streamkit-io/streamkit-shell/internal/buildinfo"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("streamkit-shell v%s\n", buildinfo.Version)
		fmt.Printf("  commit:   %s\n", buildinfo.CommitHash)
		fmt.Printf("  built:    %s\n", buildinfo.BuildDate)
		fmt.Printf("  platform: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		fmt.Printf("  go:       %s\n", runtime.Version())
	},
}
