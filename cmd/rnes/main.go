// Command rnes runs the NES emulator: load a ROM and either play it
// through an Ebitengine window, trace its CPU execution to stdout, or
// dump its CHR pattern tables as ASCII art.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/SyedAsadK/rnes/internal/bus"
	"github.com/SyedAsadK/rnes/internal/cartridge"
	"github.com/SyedAsadK/rnes/internal/config"
	"github.com/SyedAsadK/rnes/internal/host"
	"github.com/SyedAsadK/rnes/internal/logging"
	"github.com/SyedAsadK/rnes/internal/tiledump"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "[rnes] fatal: %v\n", r)
			os.Exit(1)
		}
	}()

	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cfg := config.New()

	cmd := &cobra.Command{
		Use:   "rnes <rom-path>",
		Short: "A NES emulator",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.ROMPath = args[0]
			return run(cfg)
		},
	}

	cmd.Flags().BoolVar(&cfg.Tiles, "tiles", false, "dump the ROM's CHR pattern tables as ASCII art and exit")
	cmd.Flags().BoolVar(&cfg.Trace, "trace", false, "mirror each CPU step's nestest-style trace line to stdout")
	cmd.Flags().BoolVarP(&cfg.Verbose, "verbose", "v", false, "log frame/cycle heartbeats")
	cmd.Flags().IntVar(&cfg.Scale, "scale", 3, "window scale factor")

	return cmd
}

func run(cfg *config.Config) error {
	if !cfg.Verbose {
		logging.Discard()
	}

	cart, err := cartridge.LoadFromFile(cfg.ROMPath)
	if err != nil {
		return fmt.Errorf("loading %s: %w", cfg.ROMPath, err)
	}
	logging.Logger.Printf("loaded %s: %s", cfg.ROMPath, cart.Info())

	if cfg.Tiles {
		return tiledump.Dump(os.Stdout, cart.CHR())
	}

	b := bus.New()
	b.LoadCartridge(cart)
	b.Reset()

	return host.Run(b, cfg)
}
