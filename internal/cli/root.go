// Package cli provides the command-line interface for colorramp.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/colorramp/internal/version"
)

// NewRootCmd builds the root command with all subcommands attached.
// This is called by main.main().
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "colorramp",
		Short: "Build custom linear colormaps from colour stops",
		Long: `Colorramp converts short ordered lists of RGB colour stops into linearly
interpolated colormaps: the per-channel segment data used by plotting
libraries, saved as JSON and rendered as gradient ramps.

Stops can be given as hex colours or channel triples, positioned uniformly
or at explicit locations, extracted from an image, or taken from a built-in
preset.`,
		Version:      version.Short(),
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "suppress non-error output")

	// Set version template
	rootCmd.SetVersionTemplate(version.String() + "\n")

	// Add subcommands
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newBuildCmd())
	rootCmd.AddCommand(newRenderCmd())
	rootCmd.AddCommand(newPreviewCmd())
	rootCmd.AddCommand(newPresetsCmd())
	rootCmd.AddCommand(newStopsCmd())

	return rootCmd
}

// newVersionCmd builds the version command.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}
