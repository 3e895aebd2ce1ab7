package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sirilv/termfolio/internal/commands"
	"github.com/sirilv/termfolio/internal/logging"
	"github.com/sirilv/termfolio/internal/rain"
	"github.com/sirilv/termfolio/internal/theme"
	"gopkg.in/yaml.v3"
)

const (
	DefaultFrameInterval  = 33 * time.Millisecond
	DefaultVisibleOpacity = rain.DefaultOpacity
	DefaultHiddenOpacity  = 0.4
	DefaultEggDuration    = 5 * time.Second
	DefaultEggPeriod      = 2 * time.Second
)

type Config struct {
	Theme   string `yaml:"theme"`
	Profile string `yaml:"profile,omitempty"`
	// OpenLinks lets github/telegram launch the system browser.
	OpenLinks bool `yaml:"open_links"`

	Delays    DelayConfig     `yaml:"delays"`
	Rain      RainConfig      `yaml:"rain"`
	EasterEgg EasterEggConfig `yaml:"easter_egg"`
	Log       LogConfig       `yaml:"log"`
}

type DelayConfig struct {
	Sudo         time.Duration `yaml:"sudo"`
	Exit         time.Duration `yaml:"exit"`
	WelcomeFrame time.Duration `yaml:"welcome_frame"`
	WelcomeText  time.Duration `yaml:"welcome_text"`
	WelcomePause time.Duration `yaml:"welcome_pause"`
}

type RainConfig struct {
	Enabled        bool          `yaml:"enabled"`
	Preset         string        `yaml:"preset,omitempty"`
	CellWidth      int           `yaml:"cell_width"`
	Speed          float64       `yaml:"speed"`
	ResetChance    float64       `yaml:"reset_chance"`
	Fade           float64       `yaml:"fade"`
	Depth          float64       `yaml:"depth"`
	Frame          time.Duration `yaml:"frame"`
	VisibleOpacity float64       `yaml:"visible_opacity"`
	HiddenOpacity  float64       `yaml:"hidden_opacity"`
}

type EasterEggConfig struct {
	Duration time.Duration `yaml:"duration"`
	Period   time.Duration `yaml:"period"`
}

type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file,omitempty"`
}

func DefaultConfig() *Config {
	opts := commands.DefaultOptions()
	return &Config{
		Theme:     theme.Dark.String(),
		OpenLinks: true,
		Delays: DelayConfig{
			Sudo:         opts.SudoDelay,
			Exit:         opts.ExitDelay,
			WelcomeFrame: opts.FrameDelay,
			WelcomeText:  opts.HintDelay,
			WelcomePause: opts.WelcomePause,
		},
		Rain: RainConfig{
			Enabled:        true,
			CellWidth:      rain.DefaultCellWidth,
			Speed:          rain.DefaultSpeed,
			ResetChance:    rain.DefaultResetChance,
			Fade:           rain.DefaultFade,
			Depth:          rain.DefaultDepth,
			Frame:          DefaultFrameInterval,
			VisibleOpacity: DefaultVisibleOpacity,
			HiddenOpacity:  DefaultHiddenOpacity,
		},
		EasterEgg: EasterEggConfig{
			Duration: DefaultEggDuration,
			Period:   DefaultEggPeriod,
		},
		Log: LogConfig{Level: "info"},
	}
}

// Load reads path and overlays it on the defaults. A preset named in the
// file is applied first, so explicit rain fields still win.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	var probe struct {
		Rain struct {
			Preset string `yaml:"preset"`
		} `yaml:"rain"`
	}
	if err := yaml.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}

	cfg := DefaultConfig()
	if probe.Rain.Preset != "" {
		if err := cfg.ApplyPreset(probe.Rain.Preset); err != nil {
			return nil, fmt.Errorf("config: %s: %w", path, err)
		}
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	logging.L().Debugw("config loaded", "path", path, "theme", cfg.Theme, "preset", cfg.Rain.Preset)
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("config: encode: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("config: create %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	return nil
}

// DefaultPath is $XDG_CONFIG_HOME/termfolio/config.yaml or its platform
// equivalent.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("config: locate config dir: %w", err)
	}
	return filepath.Join(dir, "termfolio", "config.yaml"), nil
}

func (c *Config) Validate() error {
	if _, err := theme.ParseMode(c.Theme); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	r := c.Rain
	switch {
	case r.CellWidth < 1:
		return fmt.Errorf("%w: rain.cell_width must be positive, got %d", ErrInvalid, r.CellWidth)
	case r.Frame <= 0:
		return fmt.Errorf("%w: rain.frame must be positive, got %s", ErrInvalid, r.Frame)
	case r.Speed <= 0:
		return fmt.Errorf("%w: rain.speed must be positive, got %g", ErrInvalid, r.Speed)
	case r.Depth <= 0:
		return fmt.Errorf("%w: rain.depth must be positive, got %g", ErrInvalid, r.Depth)
	case !unit(r.ResetChance), !unit(r.Fade):
		return fmt.Errorf("%w: rain.reset_chance and rain.fade must be within [0, 1]", ErrInvalid)
	case !unit(r.VisibleOpacity), !unit(r.HiddenOpacity):
		return fmt.Errorf("%w: rain opacities must be within [0, 1]", ErrInvalid)
	}

	d := c.Delays
	for name, v := range map[string]time.Duration{
		"sudo": d.Sudo, "exit": d.Exit, "welcome_frame": d.WelcomeFrame,
		"welcome_text": d.WelcomeText, "welcome_pause": d.WelcomePause,
	} {
		if v < 0 {
			return fmt.Errorf("%w: delays.%s must not be negative", ErrInvalid, name)
		}
	}
	if c.EasterEgg.Duration <= 0 || c.EasterEgg.Period <= 0 {
		return fmt.Errorf("%w: easter_egg durations must be positive", ErrInvalid)
	}
	return nil
}

func (c *Config) Mode() theme.Mode {
	m, _ := theme.ParseMode(c.Theme)
	return m
}

func (c *Config) CommandOptions() commands.Options {
	return commands.Options{
		SudoDelay:    c.Delays.Sudo,
		ExitDelay:    c.Delays.Exit,
		FrameDelay:   c.Delays.WelcomeFrame,
		HintDelay:    c.Delays.WelcomeText,
		WelcomePause: c.Delays.WelcomePause,
	}
}

// Engine returns the animator settings; colours come from the theme.
func (r RainConfig) Engine() rain.Config {
	cfg := rain.DefaultConfig()
	cfg.CellWidth = r.CellWidth
	cfg.Speed = r.Speed
	cfg.ResetChance = r.ResetChance
	cfg.Fade = r.Fade
	cfg.Depth = r.Depth
	cfg.Opacity = r.VisibleOpacity
	return cfg
}

func unit(v float64) bool { return v >= 0 && v <= 1 }
