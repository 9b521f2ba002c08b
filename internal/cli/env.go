package cli

import (
	"fmt"
	"os"

	"github.com/jmylchreest/runseg/internal/image"
	"github.com/jmylchreest/runseg/internal/seed"
	"github.com/spf13/pflag"
)

// Environment variables that provide flag defaults.
const (
	seedEnv     = "RUNSEG_SEED"
	seedModeEnv = "RUNSEG_SEED_MODE"
	formatEnv   = "RUNSEG_FORMAT"
)

// envBinding maps a flag to the environment variable supplying its default.
type envBinding struct {
	flag  string
	env   string
	check func(string) error
}

// segmentEnv lists the environment defaults of the segment command.
func segmentEnv() []envBinding {
	return []envBinding{
		{flag: "seed", env: seedEnv, check: func(v string) error {
			_, err := seed.ParseValue(v)
			return err
		}},
		{flag: "seed-mode", env: seedModeEnv, check: func(v string) error {
			_, err := seed.ParseMode(v)
			return err
		}},
		{flag: "format", env: formatEnv, check: func(v string) error {
			_, err := image.ParseFormat(v)
			return err
		}},
	}
}

// applyEnvDefaults sets every flag that was not given on the command line from
// its environment variable, when that variable is set.
func applyEnvDefaults(flags *pflag.FlagSet, bindings []envBinding) error {
	for _, b := range bindings {
		if flags.Lookup(b.flag) == nil || flags.Changed(b.flag) {
			continue
		}
		value, ok := os.LookupEnv(b.env)
		if !ok || value == "" {
			continue
		}
		if b.check != nil {
			if err := b.check(value); err != nil {
				return fmt.Errorf("invalid %s: %w", b.env, err)
			}
		}
		if err := flags.Set(b.flag, value); err != nil {
			return fmt.Errorf("invalid %s: %w", b.env, err)
		}
	}
	return nil
}
