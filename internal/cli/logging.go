package cli

import (
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
)

// newLogger configures the command logger from the global verbose/quiet
// flags. Verbose enables debug output; quiet discards everything below
// error. Log output always goes to stderr so formatted results on stdout
// stay clean.
func newLogger(cmd *cobra.Command) hclog.Logger {
	verbose, _ := cmd.Flags().GetBool("verbose")
	quiet, _ := cmd.Flags().GetBool("quiet")

	level := hclog.Info
	var output io.Writer = os.Stderr
	switch {
	case verbose:
		level = hclog.Debug
	case quiet:
		level = hclog.Error
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:   "colorramp",
		Output: output,
		Level:  level,
	})
}
