package cli

import (
	"github.com/spf13/cobra"

	"github.com/jmylchreest/colorramp/internal/render"
)

var (
	// Render command flags
	renderSource sourceFlags
	renderWidth  int
	renderHeight int
	renderOutput string
)

// newRenderCmd builds the render command.
func newRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a colormap to a PNG gradient ramp",
		Long: `Render a colormap as a horizontal gradient ramp image.

The colormap can come from inline stops, a built-in preset, or a colormap
file written by 'colorramp build'.

Examples:
  # Render a saved colormap
  colorramp render -i sunset.json -o sunset.png

  # Render a preset at a custom size
  colorramp render --preset viridis --width 1024 --height 64 -o viridis.png

  # Render inline stops
  colorramp render --bit -s 255,0,0 -s 0,0,255 -o redblue.png`,
		Args: cobra.NoArgs,
		RunE: runRender,
	}

	renderSource.register(cmd, true)
	cmd.Flags().IntVar(&renderWidth, "width", 512, "ramp width in pixels")
	cmd.Flags().IntVar(&renderHeight, "height", 48, "ramp height in pixels")
	cmd.Flags().StringVarP(&renderOutput, "output", "o", "", "output PNG file (required)")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}

// runRender executes the render command.
func runRender(cmd *cobra.Command, args []string) error {
	logger := newLogger(cmd)

	cm, err := renderSource.resolve()
	if err != nil {
		return err
	}

	logger.Debug("rendering ramp", "name", cm.Name(), "width", renderWidth, "height", renderHeight)
	if err := render.WritePNG(cm, renderOutput, renderWidth, renderHeight); err != nil {
		return err
	}
	logger.Info("wrote ramp", "path", renderOutput)
	return nil
}
