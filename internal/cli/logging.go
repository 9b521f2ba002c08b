package cli

import (
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
)

// logLevelEnv names the environment variable holding the default log level.
const logLevelEnv = "RUNSEG_LOG_LEVEL"

// newLogger creates the command logger. --quiet wins over everything,
// --verbose over RUNSEG_LOG_LEVEL, which defaults to info.
func newLogger(cmd *cobra.Command) hclog.Logger {
	if quiet {
		return hclog.New(&hclog.LoggerOptions{
			Name:   "runseg",
			Output: io.Discard,
			Level:  hclog.Off,
		})
	}

	level := hclog.Info
	if env := os.Getenv(logLevelEnv); env != "" {
		if l := hclog.LevelFromString(env); l != hclog.NoLevel {
			level = l
		}
	}
	if verbose {
		level = hclog.Debug
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:       "runseg",
		Output:     cmd.ErrOrStderr(),
		Level:      level,
		JSONFormat: logJSON,
	})
}
