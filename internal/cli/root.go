// Package cli provides the command-line interface for runseg.
package cli

import (
	"github.com/jmylchreest/runseg/internal/version"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose bool
	quiet   bool
	logJSON bool
)

// NewRootCmd builds the runseg command tree. Flags are bound to package
// variables, so only one tree should execute at a time.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "runseg",
		Short: "Segment images into coloured connected regions",
		Long: `runseg separates the foreground of an image from its background with Otsu's
threshold, groups foreground pixels into 4-connected regions using horizontal
runs and a union-find forest, and paints every region in its own random colour.

The grayscale, binary and segmented views can be written to disk in several
formats, and a per-region report can be printed to the terminal.`,
		Version:      version.Short(),
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress non-error output")
	rootCmd.PersistentFlags().BoolVar(&logJSON, "log-json", false, "write log lines as JSON")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newSegmentCmd())
	rootCmd.AddCommand(newThresholdCmd())

	return rootCmd
}
