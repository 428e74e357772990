// Package cmapfile saves and loads colormaps as JSON documents on disk,
// with transparent xz compression for paths ending in ".xz".
package cmapfile

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ulikunitz/xz"

	"github.com/jmylchreest/colorramp/internal/colormap"
)

// maxFileSize bounds how much of a colormap file is read, compressed or not.
// Real colormap documents are a few kilobytes.
const maxFileSize = 16 * 1024 * 1024

// Save writes the colormap's JSON form to path. A ".xz" suffix selects xz
// compression of the document.
func Save(cm *colormap.Colormap, path string) error {
	data, err := cm.ToJSON()
	if err != nil {
		return fmt.Errorf("failed to encode colormap: %w", err)
	}

	if strings.HasSuffix(path, ".xz") {
		var buf bytes.Buffer
		xzw, err := xz.NewWriter(&buf)
		if err != nil {
			return fmt.Errorf("failed to create xz writer: %w", err)
		}
		if _, err := xzw.Write(data); err != nil {
			return fmt.Errorf("failed to compress colormap: %w", err)
		}
		if err := xzw.Close(); err != nil {
			return fmt.Errorf("failed to finish xz stream: %w", err)
		}
		data = buf.Bytes()
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write colormap file: %w", err)
	}
	return nil
}

// Load reads a colormap written by Save and reconstructs an equivalent
// colormap without recomputation.
func Load(path string) (*colormap.Colormap, error) {
	raw, err := os.ReadFile(path) // #nosec G304 - user-specified colormap path, intended to be read
	if err != nil {
		return nil, fmt.Errorf("failed to read colormap file: %w", err)
	}

	if strings.HasSuffix(path, ".xz") {
		xzr, err := xz.NewReader(bytes.NewReader(raw))
		if err != nil {
			return nil, fmt.Errorf("failed to create xz reader: %w", err)
		}
		raw, err = io.ReadAll(io.LimitReader(xzr, maxFileSize))
		if err != nil {
			return nil, fmt.Errorf("failed to decompress colormap: %w", err)
		}
	}

	cm, err := colormap.FromJSON(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid colormap file %s: %w", path, err)
	}
	return cm, nil
}
