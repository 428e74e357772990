package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/colorramp/internal/cmapfile"
	"github.com/jmylchreest/colorramp/internal/colormap"
	"github.com/jmylchreest/colorramp/internal/colour"
	"github.com/jmylchreest/colorramp/internal/image"
)

var (
	// Stops command flags
	stopsCount       int
	stopsFormat      string
	stopsOutput      string
	stopsName        string
	stopsShowPreview bool
)

// newStopsCmd builds the stops command.
func newStopsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stops <image>",
		Short: "Extract colour stops from an image",
		Long: `Extract representative colour stops from an image.

The image is clustered into the requested number of colours, which are
returned dark to light as gradient stops. Nearly identical clusters are
merged, so fewer stops than requested may come back.

Supported image formats: JPEG, PNG, GIF, WebP

Examples:
  # Print 5 stops from a wallpaper
  colorramp stops wallpaper.jpg

  # Extract stops and show colour blocks
  colorramp stops --preview wallpaper.png

  # Build a colormap from the extracted stops and save it
  colorramp stops -c 7 --format colormap -o wallpaper.json wallpaper.jpg`,
		Args: cobra.ExactArgs(1),
		RunE: runStops,
	}

	cmd.Flags().IntVarP(&stopsCount, "count", "c", 5, "number of stops to extract (2-64)")
	cmd.Flags().StringVarP(&stopsFormat, "format", "f", "hex", "output format (hex, rgb, colormap)")
	cmd.Flags().StringVarP(&stopsOutput, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().StringVar(&stopsName, "name", "", "colormap name for --format colormap (default: image filename)")
	cmd.Flags().BoolVar(&stopsShowPreview, "preview", false, "show colour blocks in the terminal")

	return cmd
}

// runStops executes the stops command.
func runStops(cmd *cobra.Command, args []string) error {
	logger := newLogger(cmd)
	imagePath := args[0]

	logger.Debug("loading image", "path", imagePath)
	loader := image.NewFileLoader()
	img, err := loader.Load(imagePath)
	if err != nil {
		return fmt.Errorf("failed to load image: %w", err)
	}
	bounds := img.Bounds()
	logger.Debug("image loaded", "width", bounds.Dx(), "height", bounds.Dy())

	extractor := colour.NewExtractor()
	stops, err := extractor.Stops(img, stopsCount)
	if err != nil {
		return fmt.Errorf("failed to extract stops: %w", err)
	}
	logger.Debug("extracted stops", "requested", stopsCount, "got", len(stops))

	if stopsFormat == "colormap" {
		name := stopsName
		if name == "" {
			name = baseName(imagePath)
		}
		cm, err := colormap.FromStops(name, stops, nil, colormap.BuildOptions{})
		if err != nil {
			return fmt.Errorf("failed to build colormap: %w", err)
		}
		if stopsOutput != "" {
			if err := cmapfile.Save(cm, stopsOutput); err != nil {
				return err
			}
			logger.Info("wrote colormap", "path", stopsOutput)
			return nil
		}
		data, err := cm.ToJSON()
		if err != nil {
			return fmt.Errorf("failed to encode colormap: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}

	output, err := formatStops(stops, stopsFormat, stopsShowPreview)
	if err != nil {
		return err
	}

	if stopsOutput != "" {
		if err := os.WriteFile(stopsOutput, []byte(output), 0o644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		logger.Info("wrote stops", "path", stopsOutput)
		return nil
	}

	fmt.Fprint(cmd.OutOrStdout(), output)
	return nil
}

// formatStops renders extracted stops in the requested format.
func formatStops(stops []colormap.Stop, format string, showPreview bool) (string, error) {
	var sb strings.Builder
	for _, s := range stops {
		var line string
		switch format {
		case "hex":
			line = s.Hex()
		case "rgb":
			c := s.RGBA()
			line = fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
		default:
			return "", fmt.Errorf("unsupported format: %s (supported: hex, rgb, colormap)", format)
		}
		if showPreview {
			sb.WriteString(colour.Block(s, 8) + "  ")
		}
		sb.WriteString(line + "\n")
	}
	return sb.String(), nil
}

// baseName strips the directory and extension from an image path for use as
// a colormap name.
func baseName(path string) string {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	if base == "" || base == "." {
		return "custom"
	}
	return base
}
