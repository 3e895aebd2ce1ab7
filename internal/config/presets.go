package config

import (
	"fmt"
	"sort"
)

// RainPreset is a named set of animation parameters.
type RainPreset struct {
	Speed       float64
	ResetChance float64
	Fade        float64
	Depth       float64
}

var Presets = map[string]RainPreset{
	"classic": {Speed: 0.4, ResetChance: 0.025, Fade: 0.08, Depth: 100},
	"drizzle": {Speed: 0.2, ResetChance: 0.01, Fade: 0.05, Depth: 150},
	"calm":    {Speed: 0.25, ResetChance: 0.015, Fade: 0.06, Depth: 100},
	"storm":   {Speed: 0.8, ResetChance: 0.06, Fade: 0.12, Depth: 60},
}

func GetPreset(name string) (RainPreset, bool) {
	p, ok := Presets[name]
	return p, ok
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ApplyPreset overwrites the rain parameters with the named preset.
func (c *Config) ApplyPreset(name string) error {
	p, ok := GetPreset(name)
	if !ok {
		return fmt.Errorf("%w %q", ErrUnknownPreset, name)
	}
	c.Rain.Preset = name
	c.Rain.Speed = p.Speed
	c.Rain.ResetChance = p.ResetChance
	c.Rain.Fade = p.Fade
	c.Rain.Depth = p.Depth
	return nil
}
