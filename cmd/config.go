package cmd

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/beanboi7/chyp8/emu/cpu"
	"github.com/beanboi7/chyp8/emu/keypad"
	"github.com/beanboi7/chyp8/emu/window"
)

const (
	frontendWindow   = "window"
	frontendTerminal = "terminal"
)

type config struct {
	Frontend string
	Scale    int
	Refresh  int
	Clock    int
	Keys     keypad.Layout
	Seed     int64
	Trace    bool
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("frontend", frontendWindow)
	v.SetDefault("scale", window.DefaultScale)
	v.SetDefault("refresh", cpu.DefaultTickRate)
	v.SetDefault("clock", 700)
	v.SetDefault("keys", keypad.DefaultLayout)
	v.SetDefault("seed", 0)
	v.SetDefault("trace", false)
}

func loadConfig(v *viper.Viper) (config, error) {
	setDefaults(v)

	cfg := config{
		Frontend: v.GetString("frontend"),
		Scale:    v.GetInt("scale"),
		Refresh:  v.GetInt("refresh"),
		Clock:    v.GetInt("clock"),
		Seed:     v.GetInt64("seed"),
		Trace:    v.GetBool("trace"),
	}

	switch cfg.Frontend {
	case frontendWindow, frontendTerminal:
	default:
		return cfg, fmt.Errorf("unknown frontend %q, want %q or %q", cfg.Frontend, frontendWindow, frontendTerminal)
	}
	if cfg.Refresh <= 0 {
		return cfg, fmt.Errorf("refresh rate must be positive, got %d", cfg.Refresh)
	}
	if cfg.Clock < 0 {
		return cfg, fmt.Errorf("clock speed can't be negative, got %d", cfg.Clock)
	}
	if cfg.Scale <= 0 {
		return cfg, fmt.Errorf("scale must be positive, got %d", cfg.Scale)
	}

	keys, err := keypad.Parse(v.GetString("keys"))
	if err != nil {
		return cfg, err
	}
	cfg.Keys = keys

	return cfg, nil
}
