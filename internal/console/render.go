package console

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/sirilv/termfolio/internal/theme"
)

// Renderer turns lines into terminal strings.
type Renderer struct {
	styles map[Class]lipgloss.Style
	links  bool
}

// Colors maps every class to its foreground colour in t.
func Colors(t theme.Theme) map[Class]lipgloss.Color {
	return map[Class]lipgloss.Color{
		Plain:        t.Text,
		Info:         t.Secondary,
		Success:      t.Success,
		Warning:      t.Warning,
		Error:        t.Error,
		Dim:          t.Muted,
		Label:        t.Primary,
		Value:        t.Text,
		Accent:       t.Accent,
		Art:          t.Primary,
		CommandName:  t.Accent,
		Link:         t.Secondary,
		PromptUser:   t.Accent,
		PromptHost:   t.Secondary,
		PromptPath:   t.Primary,
		PromptSymbol: t.Accent,
	}
}

// Bold reports whether a class renders in bold.
func Bold(c Class) bool {
	switch c {
	case Error, Label, CommandName, PromptUser, PromptHost:
		return true
	}
	return false
}

func NewRenderer(t theme.Theme) *Renderer {
	styles := make(map[Class]lipgloss.Style)
	for class, color := range Colors(t) {
		style := lipgloss.NewStyle().Foreground(color).Bold(Bold(class))
		if class == Link {
			style = style.Underline(true)
		}
		styles[class] = style
	}
	return &Renderer{links: true, styles: styles}
}

// PlainRenderer writes bare text, for output that is not a terminal.
func PlainRenderer() *Renderer {
	return &Renderer{}
}

func (r *Renderer) Span(s Span) string {
	text := s.Text
	if style, ok := r.styles[s.Class]; ok {
		text = style.Render(text)
	}
	if r.links && s.URL != "" {
		text = ansi.SetHyperlink(s.URL) + text + ansi.ResetHyperlink()
	}
	return text
}

func (r *Renderer) Line(l Line) string {
	var b strings.Builder
	for _, s := range l.Spans {
		b.WriteString(r.Span(s))
	}
	return b.String()
}
