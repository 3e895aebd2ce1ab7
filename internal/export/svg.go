// Package export renders console output as standalone SVG screenshots.
package export

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/sirilv/termfolio/internal/console"
	"github.com/sirilv/termfolio/internal/theme"
)

const (
	fontSize   = 14.0
	charWidth  = fontSize * 0.6
	lineHeight = fontSize * 1.3
	padding    = 16.0
	titleBar   = 28.0
	minColumns = 40
)

// TranscriptSVG draws lines inside a window frame in the colours of t.
func TranscriptSVG(w io.Writer, lines []console.Line, t theme.Theme, title string) error {
	cols := minColumns
	for _, l := range lines {
		cols = max(cols, runewidth.StringWidth(l.String()))
	}
	width := float64(cols)*charWidth + 2*padding
	height := titleBar + float64(len(lines))*lineHeight + 2*padding
	colors := console.Colors(t)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" rx="10" fill="%s" stroke="%s"/>
`, width, height, width, height, t.Background, t.Border))

	for i, c := range []string{string(t.Close), string(t.Minimize), string(t.Maximize)} {
		sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="6" fill="%s"/>
`, padding+float64(i)*20, titleBar/2+4, c))
	}
	sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" text-anchor="middle" font-family="monospace" font-size="12" fill="%s">%s</text>
`, width/2, titleBar/2+8, t.Muted, escape(title)))

	sb.WriteString(fmt.Sprintf(`<g font-family="'IBM Plex Mono', monospace" font-size="%.0f" xml:space="preserve">
`, fontSize))
	for i, l := range lines {
		y := padding + titleBar + float64(i+1)*lineHeight - lineHeight*0.3
		sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f">`, padding, y))
		for _, s := range l.Spans {
			if s.Text == "" {
				continue
			}
			weight := ""
			if console.Bold(s.Class) {
				weight = ` font-weight="bold"`
			}
			span := fmt.Sprintf(`<tspan fill="%s"%s>%s</tspan>`, colors[s.Class], weight, escape(s.Text))
			if s.URL != "" {
				span = fmt.Sprintf(`<a href="%s">%s</a>`, escape(s.URL), span)
			}
			sb.WriteString(span)
		}
		sb.WriteString("</text>\n")
	}
	sb.WriteString("</g>\n</svg>\n")

	_, err := io.WriteString(w, sb.String())
	return err
}

func escape(s string) string {
	var b bytes.Buffer
	_ = xml.EscapeText(&b, []byte(s))
	return b.String()
}
