package rain

import (
	"math"
)

// Glyphs is the character set the columns draw from.
const Glyphs = "01アイウエオカキクケコサシスセソタチツテトナニヌネノハヒフヘホマミムメモヤユヨラリルレロワヲン"

const (
	DefaultCellWidth   = 2
	DefaultSpeed       = 0.4
	DefaultResetChance = 0.025
	DefaultFade        = 0.08
	DefaultDepth       = 100.0
	DefaultOpacity     = 0.8
	DefaultBackground  = "#0a0118"

	// cells dimmer than this are dropped from the grid
	visibilityFloor = 0.04
)

var DefaultColors = []string{"#8a52ff", "#00d9ff", "#00ff88"}

// Rand is the randomness the animator consumes. *math/rand/v2.Rand satisfies it.
type Rand interface {
	Float64() float64
	IntN(n int) int
}

type Config struct {
	CellWidth   int
	Speed       float64
	ResetChance float64
	Fade        float64
	Depth       float64
	Opacity     float64
	Glyphs      string
	Colors      []string
	Background  string
}

func DefaultConfig() Config {
	return Config{
		CellWidth:   DefaultCellWidth,
		Speed:       DefaultSpeed,
		ResetChance: DefaultResetChance,
		Fade:        DefaultFade,
		Depth:       DefaultDepth,
		Opacity:     DefaultOpacity,
		Glyphs:      Glyphs,
		Colors:      DefaultColors,
		Background:  DefaultBackground,
	}
}

type cell struct {
	glyph     rune
	color     int
	intensity float64
}

// Rain is the falling-glyph simulation. One offset per column, measured in rows.
type Rain struct {
	cfg    Config
	rng    Rand
	glyphs []rune

	width, height int
	columns       int
	offsets       []float64
	grid          []cell

	opacity float64
	hue     float64
	pal     *palette
}

func New(cfg Config, rng Rand) *Rain {
	def := DefaultConfig()
	if cfg.CellWidth <= 0 {
		cfg.CellWidth = def.CellWidth
	}
	if cfg.Glyphs == "" {
		cfg.Glyphs = def.Glyphs
	}
	if len(cfg.Colors) == 0 {
		cfg.Colors = def.Colors
	}
	if cfg.Background == "" {
		cfg.Background = def.Background
	}
	if cfg.Opacity <= 0 {
		cfg.Opacity = def.Opacity
	}
	r := &Rain{
		cfg:     cfg,
		rng:     rng,
		glyphs:  []rune(cfg.Glyphs),
		opacity: cfg.Opacity,
	}
	r.pal = newPalette(cfg.Colors, cfg.Background, r.hue)
	return r
}

// Resize recomputes the surface and scatters every column above the top edge.
func (r *Rain) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	r.width, r.height = width, height
	r.columns = width / r.cfg.CellWidth
	r.offsets = make([]float64, r.columns)
	for i := range r.offsets {
		// 1-Float64 is in (0, 1], so offsets land in [-depth, 0)
		r.offsets[i] = -(1 - r.rng.Float64()) * r.cfg.Depth
	}
	r.grid = make([]cell, r.columns*r.height)
}

// Tick advances the simulation by one frame.
func (r *Rain) Tick() {
	keep := 1 - r.cfg.Fade
	for i := range r.grid {
		c := &r.grid[i]
		if c.intensity == 0 {
			continue
		}
		c.intensity *= keep
		if c.intensity < visibilityFloor {
			*c = cell{}
		}
	}

	for i := range r.offsets {
		glyph := r.glyphs[r.rng.IntN(len(r.glyphs))]
		color := r.rng.IntN(len(r.cfg.Colors))
		alpha := r.rng.Float64()*0.5 + 0.5

		row := int(math.Floor(r.offsets[i]))
		if row >= 0 && row < r.height {
			r.grid[row*r.columns+i] = cell{glyph: glyph, color: color, intensity: alpha}
		}

		if r.offsets[i] > float64(r.height) && r.rng.Float64() < r.cfg.ResetChance {
			r.offsets[i] = 0
			continue
		}
		r.offsets[i] += r.cfg.Speed
	}
}

func (r *Rain) Columns() int   { return r.columns }
func (r *Rain) Width() int     { return r.width }
func (r *Rain) Height() int    { return r.height }
func (r *Rain) CellWidth() int { return r.cfg.CellWidth }

// Offsets returns a copy of the per-column offsets.
func (r *Rain) Offsets() []float64 {
	out := make([]float64, len(r.offsets))
	copy(out, r.offsets)
	return out
}

// SetOffset places a column at an explicit offset.
func (r *Rain) SetOffset(col int, offset float64) {
	if col >= 0 && col < len(r.offsets) {
		r.offsets[col] = offset
	}
}

func (r *Rain) Opacity() float64 { return r.opacity }

// SetOpacity scales the brightness of every glyph without pausing the animation.
func (r *Rain) SetOpacity(o float64) {
	r.opacity = math.Max(0, math.Min(1, o))
}

// SetHue rotates the accent colours by deg degrees.
func (r *Rain) SetHue(deg float64) {
	deg = math.Mod(deg, 360)
	if deg == r.hue {
		return
	}
	r.hue = deg
	r.pal = newPalette(r.cfg.Colors, r.cfg.Background, r.hue)
}

// SetBackground changes the colour glyphs fade towards.
func (r *Rain) SetBackground(hex string) {
	if hex == "" || hex == r.cfg.Background {
		return
	}
	r.cfg.Background = hex
	r.pal = newPalette(r.cfg.Colors, r.cfg.Background, r.hue)
}
