package cmd

import (
	"fmt"
	"os"

	"github.com/retroenv/retrogolib/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/beanboi7/chyp8/emu/cpu"
	"github.com/beanboi7/chyp8/emu/keypad"
	"github.com/beanboi7/chyp8/emu/terminal"
	"github.com/beanboi7/chyp8/emu/window"
)

// chyp8 'path/to/ROM' -r 60
func Start(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(viper.GetViper())
	if err != nil {
		return err
	}

	emu, err := loadEMU(args[0], cfg)
	if err != nil {
		return err
	}

	if cfg.Trace {
		logger.SetLevel(log.DebugLevel)
	}
	logger.Info("Loaded ROM",
		log.String("file", args[0]),
		log.String("frontend", cfg.Frontend),
		log.Int("clock", cfg.Clock))

	runCfg := cpu.RunConfig{
		TickRate:   cfg.Refresh,
		ClockSpeed: cfg.Clock,
		Logger:     logger,
		Trace:      cfg.Trace,
	}

	switch cfg.Frontend {
	case frontendTerminal:
		term, err := terminal.Open(cfg.Keys)
		if err != nil {
			return err
		}
		defer term.Close()
		return emu.Run(term, term, runCfg)

	default:
		return window.Run(func() error {
			win, err := window.New(cfg.Scale, cfg.Keys)
			if err != nil {
				return err
			}
			defer win.Destroy()
			return emu.Run(win, win, runCfg)
		})
	}
}

func loadEMU(romPath string, cfg config) (*cpu.EMU, error) {
	rom, err := os.ReadFile(romPath)
	if err != nil {
		return nil, fmt.Errorf("reading rom: %w", err)
	}

	emu := cpu.NewEMU(cpu.NewRandom(cfg.Seed))
	if err := emu.LoadROM(rom); err != nil {
		return nil, fmt.Errorf("loading %s: %w", romPath, err)
	}
	return emu, nil
}

func init() {
	flags := rootCmd.Flags()
	flags.IntP("refresh", "r", cpu.DefaultTickRate, "Set the refresh rate in Hz")
	flags.IntP("clock", "c", 700, "instructions per second, 0 runs as fast as possible")
	flags.StringP("frontend", "f", frontendWindow, "where to show the screen: window or terminal")
	flags.Int("scale", window.DefaultScale, "window pixels per Chip-8 pixel")
	flags.String("keys", keypad.DefaultLayout, "16 keys bound to the keypad 0-F")
	flags.Int64("seed", 0, "seed for the random opcode, 0 picks one")
	flags.Bool("trace", false, "log every instruction")

	for _, name := range []string{"refresh", "clock", "frontend", "scale", "keys", "seed", "trace"} {
		cobra.CheckErr(viper.BindPFlag(name, flags.Lookup(name)))
	}
}
