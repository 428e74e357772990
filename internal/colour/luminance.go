package colour

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// luminance calculates the relative luminance of a colour according to
// WCAG 2.0. Returns a value between 0 (darkest) and 1 (lightest).
// https://www.w3.org/TR/WCAG20/#relativeluminancedef.
func luminance(c colorful.Color) float64 {
	cc := c.Clamped()
	return 0.2126*gammaCorrect(cc.R) + 0.7152*gammaCorrect(cc.G) + 0.0722*gammaCorrect(cc.B)
}

// gammaCorrect applies gamma correction to a colour component.
func gammaCorrect(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}
