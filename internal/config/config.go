package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/goool/internal/color"
	"github.com/san-kum/goool/internal/life"
	"github.com/san-kum/goool/internal/render"
)

const (
	DefaultCellType = "small"
	DefaultDelay    = 100

	// EnvPrefix is prepended to every environment variable name.
	EnvPrefix = "GOOOL_"
)

// Config is the user-facing configuration. Colors are hex strings and empty
// means unset.
type Config struct {
	CellType   string `yaml:"cell_type" env:"CELL_TYPE"`
	Delay      uint64 `yaml:"delay" env:"DELAY"`
	AliveColor string `yaml:"alive_color,omitempty" env:"ALIVE_COLOR"`
	DeadColor  string `yaml:"dead_color,omitempty" env:"DEAD_COLOR"`
	Theme      string `yaml:"theme,omitempty" env:"THEME"`
	Seed       int64  `yaml:"seed,omitempty" env:"SEED"`
}

// Settings is a validated Config ready to build a board and renderer.
type Settings struct {
	Mode   life.Mode
	Delay  time.Duration
	Colors render.Colors
	Seed   uint64
}

func DefaultConfig() *Config {
	return &Config{
		CellType: DefaultCellType,
		Delay:    DefaultDelay,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ApplyEnv overrides fields from GOOOL_* environment variables that are set.
func ApplyEnv(cfg *Config) error {
	return applyEnv(cfg, nil)
}

func applyEnv(cfg *Config, environ map[string]string) error {
	opts := env.Options{Prefix: EnvPrefix}
	if environ != nil {
		opts.Environment = environ
	}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Resolve validates c. A theme supplies both colors; explicit colors win over it.
// A zero seed is replaced by one derived from the clock.
func (c *Config) Resolve() (*Settings, error) {
	mode, err := life.ParseMode(c.CellType)
	if err != nil {
		return nil, &ArgumentError{Name: "cell-type", Value: c.CellType, Err: err}
	}

	var colors render.Colors
	if c.Theme != "" {
		theme, ok := GetTheme(c.Theme)
		if !ok {
			return nil, &ArgumentError{Name: "theme", Value: c.Theme, Err: ErrUnknownTheme}
		}
		alive, dead := theme.Alive, theme.Dead
		colors = render.Colors{Alive: &alive, Dead: &dead}
	}

	if c.AliveColor != "" {
		rgb, err := color.Parse(c.AliveColor)
		if err != nil {
			return nil, &ArgumentError{Name: "alive-color", Value: c.AliveColor, Err: err}
		}
		colors.Alive = &rgb
	}
	if c.DeadColor != "" {
		rgb, err := color.Parse(c.DeadColor)
		if err != nil {
			return nil, &ArgumentError{Name: "dead-color", Value: c.DeadColor, Err: err}
		}
		colors.Dead = &rgb
	}

	seed := uint64(c.Seed)
	if c.Seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	return &Settings{
		Mode:   mode,
		Delay:  time.Duration(c.Delay) * time.Millisecond,
		Colors: colors,
		Seed:   seed,
	}, nil
}
