package colour

import (
	"fmt"
	"strings"

	"github.com/jmylchreest/colorramp/internal/colormap"
)

// ANSI escape codes for truecolor terminal output.
const (
	ansiReset    = "\033[0m"
	ansiBgPrefix = "\033[48;2;"
	ansiSuffix   = "m"
	defaultWidth = 8
)

// Block returns a solid ANSI-coloured block for a single stop. Width
// specifies how many characters wide the block should be.
func Block(s colormap.Stop, width int) string {
	if width <= 0 {
		width = defaultWidth
	}
	c := s.RGBA()
	bg := fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, c.R, c.G, c.B, ansiSuffix)
	return bg + strings.Repeat(" ", width) + ansiReset
}

// Ramp renders the colormap as a single line of ANSI background colours,
// one sample per terminal column.
func Ramp(cm *colormap.Colormap, width int) string {
	if width <= 0 {
		width = defaultWidth
	}

	var sb strings.Builder
	for i := 0; i < width; i++ {
		v := 0.0
		if width > 1 {
			v = float64(i) / float64(width-1)
		}
		c := cm.At(v)
		fmt.Fprintf(&sb, "%s%d;%d;%d%s ", ansiBgPrefix, c.R, c.G, c.B, ansiSuffix)
	}
	sb.WriteString(ansiReset)
	return sb.String()
}
