package cmd

import (
	"os"

	"github.com/kokotatan/swipecut/pkg/config"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "swipecut",
	Short: "SwipeCut video review API server",
	Long: `SwipeCut - A video segment review and curation API

Ingests long videos, splits them into fixed-length segments without
re-encoding, and walks a reviewer through keep/drop decisions one
segment at a time. Kept segments export as a JSON manifest or a ZIP
archive of the untouched media files.

Features:
  • Direct video upload or import from an external photo library
  • Deterministic stream-copy segmenting via ffmpeg
  • One-at-a-time review cursor with live progress counts
  • Idempotent keep/drop decisions and segment naming
  • Manifest and ZIP export of kept segments`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// NewRootCmd creates a new root command (exported for testing)
func NewRootCmd() *cobra.Command {
	return rootCmd
}

// loadConfig initializes configuration for commands that need it
func loadConfig() error {
	return config.Init()
}
