package rain

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"
)

const levels = 8

// palette caches one style per accent colour and brightness level so a frame
// costs no style construction.
type palette struct {
	styles [][levels]lipgloss.Style
}

func newPalette(colors []string, background string, hue float64) *palette {
	bg, err := colorful.Hex(background)
	if err != nil {
		bg = colorful.Color{}
	}
	p := &palette{styles: make([][levels]lipgloss.Style, len(colors))}
	for i, hex := range colors {
		accent, err := colorful.Hex(hex)
		if err != nil {
			accent = colorful.Color{R: 1, G: 1, B: 1}
		}
		if hue != 0 {
			h, c, l := accent.Hcl()
			accent = colorful.Hcl(math.Mod(h+hue+360, 360), c, l).Clamped()
		}
		for lv := 0; lv < levels; lv++ {
			t := float64(lv+1) / levels
			p.styles[i][lv] = lipgloss.NewStyle().
				Foreground(lipgloss.Color(bg.BlendRgb(accent, t).Clamped().Hex()))
		}
	}
	return p
}

func (p *palette) style(color int, brightness float64) lipgloss.Style {
	lv := int(brightness*levels) - 1
	if lv < 0 {
		lv = 0
	}
	if lv >= levels {
		lv = levels - 1
	}
	return p.styles[color][lv]
}

// Row renders columns [from, to) of row y. The result is always
// (to-from)*CellWidth terminal cells wide.
func (r *Rain) Row(y, from, to int) string {
	if from < 0 {
		from = 0
	}
	if to > r.columns {
		to = r.columns
	}
	if from >= to {
		return ""
	}
	cw := r.cfg.CellWidth
	if y < 0 || y >= r.height {
		return strings.Repeat(" ", (to-from)*cw)
	}

	var b strings.Builder
	blank := 0
	flush := func() {
		if blank > 0 {
			b.WriteString(strings.Repeat(" ", blank))
			blank = 0
		}
	}

	for col := from; col < to; col++ {
		c := r.grid[y*r.columns+col]
		brightness := c.intensity * r.opacity
		if c.glyph == 0 || brightness < visibilityFloor {
			blank += cw
			continue
		}
		g := c.glyph
		w := runewidth.RuneWidth(g)
		if w > cw || w == 0 {
			g, w = '1', 1
		}
		flush()
		b.WriteString(r.pal.style(c.color, brightness).Render(string(g)))
		blank += cw - w
	}
	flush()
	return b.String()
}

// View renders the whole surface, one line per row.
func (r *Rain) View() string {
	rows := make([]string, r.height)
	pad := strings.Repeat(" ", r.width-r.columns*r.cfg.CellWidth)
	for y := range rows {
		rows[y] = r.Row(y, 0, r.columns) + pad
	}
	return strings.Join(rows, "\n")
}
