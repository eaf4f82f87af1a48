package config

import (
	"sort"
	"time"
)

// Presets maps a name to a function that adjusts the defaults.
var Presets = map[string]func(*Config){
	"classic": func(c *Config) {},
	"fast": func(c *Config) {
		c.Timing.Step = time.Millisecond
		c.Timing.Swap = 2 * time.Millisecond
		c.Timing.Sweep = 2 * time.Millisecond
		c.Timing.Flash = 100 * time.Millisecond
	},
	"slow": func(c *Config) {
		c.Timing.Step = 25 * time.Millisecond
		c.Timing.Swap = 50 * time.Millisecond
		c.Timing.Sweep = 20 * time.Millisecond
		c.Timing.Flash = 300 * time.Millisecond
	},
	"tiny": func(c *Config) {
		c.Size = 32
		c.Window.BarWidth = 40
		c.Timing.Step = 40 * time.Millisecond
		c.Timing.Swap = 80 * time.Millisecond
		c.Timing.Sweep = 30 * time.Millisecond
	},
}

func GetPreset(name string) *Config {
	apply, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	apply(cfg)
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
