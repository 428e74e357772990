package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jmylchreest/colorramp/internal/colour"
)

var (
	// Preview command flags
	previewSource sourceFlags
	previewWidth  int
)

// newPreviewCmd builds the preview command.
func newPreviewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Preview a colormap in the terminal",
		Long: `Print a colormap as a truecolor gradient ramp in the terminal.

The ramp width defaults to the terminal width. Requires a terminal with
24-bit colour support.

Examples:
  # Preview a preset
  colorramp preview --preset plasma

  # Preview a saved colormap at a fixed width
  colorramp preview -i sunset.json --width 60

  # Preview inline stops
  colorramp preview -s '#1e1e2e' -s '#f38ba8'`,
		Args: cobra.NoArgs,
		RunE: runPreview,
	}

	previewSource.register(cmd, true)
	cmd.Flags().IntVar(&previewWidth, "width", 0, "ramp width in columns (default: terminal width)")

	return cmd
}

// runPreview executes the preview command.
func runPreview(cmd *cobra.Command, args []string) error {
	cm, err := previewSource.resolve()
	if err != nil {
		return err
	}

	width := previewWidth
	if width <= 0 {
		width = terminalWidth()
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s\n%s\n", cm.Name(), colour.Ramp(cm, width))
	return nil
}

// terminalWidth returns the current terminal width, falling back to 80
// columns when stdout is not a terminal.
func terminalWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 80
	}
	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		return 80
	}
	return width
}
