// Package config holds the small set of options rnes accepts, populated
// from the root Cobra command's flags.
package config

// Config is the full set of knobs the CLI exposes.
type Config struct {
	ROMPath string
	Tiles   bool
	Trace   bool
	Verbose bool
	Scale   int
}

// New returns a Config with the window scale defaulted; Cobra flag binding
// overwrites every field before use.
func New() *Config {
	return &Config{Scale: 3}
}
