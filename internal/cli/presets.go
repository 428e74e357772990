package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/colorramp/internal/colormap"
	"github.com/jmylchreest/colorramp/internal/colour"
)

var (
	// Presets command flags
	presetsShowPreview bool
)

// newPresetsCmd builds the presets command.
func newPresetsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "presets",
		Short: "List built-in colormaps",
		Long: `List the built-in colormaps usable with --preset.

Examples:
  # List preset names
  colorramp presets

  # List presets with colour ramps
  colorramp presets --preview`,
		Args: cobra.NoArgs,
		RunE: runPresets,
	}

	cmd.Flags().BoolVar(&presetsShowPreview, "preview", false, "show colour ramps in the terminal")

	return cmd
}

// runPresets executes the presets command.
func runPresets(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	for _, name := range colormap.PresetNames() {
		if !presetsShowPreview {
			fmt.Fprintln(out, name)
			continue
		}
		cm, err := colormap.Preset(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%-12s %s\n", name, colour.Ramp(cm, 32))
	}
	return nil
}
