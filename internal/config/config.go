package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/san-kum/sortviz/internal/sorting"
	"github.com/san-kum/sortviz/internal/viz"
	"gopkg.in/yaml.v3"
)

const (
	DefaultSize     = 160
	DefaultMinValue = 50
	DefaultWidth    = 1280
	DefaultHeight   = 720
	DefaultBarWidth = 8
	DefaultTitle    = "Sorting Visualizer"
	DefaultTheme    = "classic"
	DefaultFrame    = 16 * time.Millisecond
)

var ErrInvalid = errors.New("config: invalid")

type Config struct {
	Size     int          `yaml:"size"`
	MinValue int          `yaml:"min_value"`
	MaxValue int          `yaml:"max_value"`
	Seed     int64        `yaml:"seed"`
	Theme    string       `yaml:"theme"`
	Sound    bool         `yaml:"sound"`
	Window   WindowConfig `yaml:"window"`
	Timing   TimingConfig `yaml:"timing"`
}

type WindowConfig struct {
	Width    int    `yaml:"width"`
	Height   int    `yaml:"height"`
	BarWidth int    `yaml:"bar_width"`
	Title    string `yaml:"title"`
}

type TimingConfig struct {
	Step  time.Duration `yaml:"step"`
	Swap  time.Duration `yaml:"swap"`
	Sweep time.Duration `yaml:"sweep"`
	Flash time.Duration `yaml:"flash"`
	Frame time.Duration `yaml:"frame"`
}

func DefaultConfig() *Config {
	t := sorting.DefaultTiming()
	return &Config{
		Size:     DefaultSize,
		MinValue: DefaultMinValue,
		MaxValue: DefaultHeight - DefaultMinValue,
		Theme:    DefaultTheme,
		Window: WindowConfig{
			Width:    DefaultWidth,
			Height:   DefaultHeight,
			BarWidth: DefaultBarWidth,
			Title:    DefaultTitle,
		},
		Timing: TimingConfig{
			Step:  t.Step,
			Swap:  t.Swap,
			Sweep: t.Sweep,
			Flash: t.Flash,
			Frame: DefaultFrame,
		},
	}
}

func Load(path string) (*Config, error) {
	return LoadOver(path, DefaultConfig())
}

// LoadOver reads path on top of base, so keys missing from the file keep
// the values of base.
func LoadOver(path string, base *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := *base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks the invariants the array and renderers rely on.
func (c *Config) Validate() error {
	switch {
	case c.Size <= 0:
		return fmt.Errorf("%w: size must be positive, got %d", ErrInvalid, c.Size)
	case c.MinValue <= 0:
		return fmt.Errorf("%w: min_value must be positive, got %d", ErrInvalid, c.MinValue)
	case c.MaxValue < c.MinValue:
		return fmt.Errorf("%w: max_value %d below min_value %d", ErrInvalid, c.MaxValue, c.MinValue)
	case c.Window.Height > 0 && c.MaxValue > c.Window.Height:
		return fmt.Errorf("%w: max_value %d exceeds window height %d", ErrInvalid, c.MaxValue, c.Window.Height)
	case c.Window.BarWidth <= 0:
		return fmt.Errorf("%w: bar_width must be positive", ErrInvalid)
	case c.Timing.Step < 0 || c.Timing.Swap < 0 || c.Timing.Sweep < 0 || c.Timing.Flash < 0:
		return fmt.Errorf("%w: delays must not be negative", ErrInvalid)
	case c.Timing.Frame <= 0:
		return fmt.Errorf("%w: frame interval must be positive", ErrInvalid)
	}
	if _, ok := viz.LookupTheme(c.Theme); !ok {
		return fmt.Errorf("%w: unknown theme %q (available: %v)", ErrInvalid, c.Theme, viz.ThemeNames())
	}
	return nil
}

func (c *Config) StepTiming() sorting.Timing {
	return sorting.Timing{
		Step:  c.Timing.Step,
		Swap:  c.Timing.Swap,
		Sweep: c.Timing.Sweep,
		Flash: c.Timing.Flash,
	}
}

// Seeded returns the configured seed, or a time based one when unset.
func (c *Config) Seeded() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}

// WindowWidth is the width needed to show every bar.
func (c *Config) WindowWidth() int {
	if w := c.Size * c.Window.BarWidth; w > c.Window.Width {
		return w
	}
	return c.Window.Width
}
