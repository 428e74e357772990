package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/colorramp/internal/cmapfile"
	"github.com/jmylchreest/colorramp/internal/colormap"
)

var (
	// Build command flags
	buildSource sourceFlags
	buildFormat string
	buildOutput string
)

// newBuildCmd builds the build command.
func newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build a colormap from colour stops",
		Long: `Build a linearly interpolated colormap from an ordered list of colour stops.

Each stop is a colour along the gradient, low end first. Stops are spaced
uniformly unless explicit positions are given; positions must increase
strictly from 0.0 to 1.0. The result is the per-channel segment data used
by linear-segmented colormap constructors.

Examples:
  # Red fading to blue, 8-bit channel triples
  colorramp build --bit -s 255,0,0 -s 0,0,255

  # Hex stops with explicit positions
  colorramp build -s '#662200' -s '#ffffff' -s '#00552a' --positions 0,0.3,1

  # Save to a file (xz-compressed because of the suffix)
  colorramp build --preset viridis -o viridis.json.xz

  # Flip a preset and print its segment table
  colorramp build --preset jet --reverse --format table`,
		Args: cobra.NoArgs,
		RunE: runBuild,
	}

	buildSource.register(cmd, false)
	cmd.Flags().StringVarP(&buildFormat, "format", "f", "json", "output format (json, table)")
	cmd.Flags().StringVarP(&buildOutput, "output", "o", "", "output file (default: stdout)")

	return cmd
}

// runBuild executes the build command.
func runBuild(cmd *cobra.Command, args []string) error {
	logger := newLogger(cmd)

	cm, err := buildSource.resolve()
	if err != nil {
		return err
	}
	logger.Debug("built colormap", "name", cm.Name(), "anchors", len(cm.Data().Red))

	if buildOutput != "" && buildFormat == "json" {
		if err := cmapfile.Save(cm, buildOutput); err != nil {
			return err
		}
		logger.Info("wrote colormap", "path", buildOutput)
		return nil
	}

	var output string
	switch buildFormat {
	case "json":
		data, err := cm.ToJSON()
		if err != nil {
			return fmt.Errorf("failed to encode colormap: %w", err)
		}
		output = string(data) + "\n"
	case "table":
		output = formatSegmentTable(cm)
	default:
		return fmt.Errorf("unsupported format: %s (supported: json, table)", buildFormat)
	}

	if buildOutput != "" {
		if err := os.WriteFile(buildOutput, []byte(output), 0o644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		logger.Info("wrote colormap", "path", buildOutput)
		return nil
	}

	fmt.Fprint(cmd.OutOrStdout(), output)
	return nil
}

// formatSegmentTable renders the segment data as an aligned text table, one
// row per anchor.
func formatSegmentTable(cm *colormap.Colormap) string {
	data := cm.Data()

	var sb strings.Builder
	fmt.Fprintf(&sb, "colormap %q\n", cm.Name())
	fmt.Fprintf(&sb, "%8s  %8s  %8s  %8s\n", "position", "red", "green", "blue")
	for i := range data.Red {
		fmt.Fprintf(&sb, "%8.4f  %8.4f  %8.4f  %8.4f\n",
			data.Red[i].Pos, data.Red[i].V0, data.Green[i].V0, data.Blue[i].V0)
	}
	return sb.String()
}
