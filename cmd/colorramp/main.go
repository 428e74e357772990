// Colorramp - custom linear colormaps from colour stops
//
// Colorramp converts ordered lists of RGB colour stops into linearly
// interpolated colormaps for plotting libraries, and renders them as
// gradient ramps.
package main

import (
	"os"

	"github.com/jmylchreest/colorramp/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
