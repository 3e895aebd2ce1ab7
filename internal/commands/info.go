package commands

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/sirilv/termfolio/internal/console"
)

// tagRowWidth is how wide a row of skill tags may grow inside a panel.
const tagRowWidth = boxWidth - 4

// fastfetch prints the logo with the system panel to its right.
func (b *builtins) fastfetch() []console.Line {
	sys := b.profile.System
	logo := strings.Split(sys.Logo, "\n")
	logoWidth := 0
	for _, l := range logo {
		logoWidth = max(logoWidth, runewidth.StringWidth(l))
	}

	panel := []console.Line{
		console.Text(console.Label, sys.Header),
		console.Text(console.Dim, strings.Repeat("─", runewidth.StringWidth(sys.Header))),
	}
	for _, f := range sys.Info {
		panel = append(panel, console.Join(
			console.S(console.Label, f.Label),
			console.S(console.Plain, ": "),
			console.S(console.Value, f.Value),
		))
	}

	rows := max(len(logo), len(panel))
	out := make([]console.Line, 0, rows+1)
	for i := 0; i < rows; i++ {
		art := ""
		if i < len(logo) {
			art = logo[i]
		}
		line := console.Join(console.S(console.Art, pad(art, logoWidth)+"   "))
		if i < len(panel) {
			line.Spans = append(line.Spans, panel[i].Spans...)
		}
		out = append(out, line)
	}
	return append(out, console.Blank())
}

func (b *builtins) skills() []console.Line {
	sk := b.profile.Skills
	body := []console.Line{labelled("Primary", sk.Primary), console.Blank()}

	var row console.Line
	width := 0
	for _, tag := range sk.Tags {
		cell := "[" + tag + "]"
		w := runewidth.StringWidth(cell)
		if width > 0 && width+2+w > tagRowWidth {
			body = append(body, row)
			row, width = console.Line{}, 0
		}
		if width > 0 {
			row.Spans = append(row.Spans, console.S(console.Plain, "  "))
			width += 2
		}
		class := console.Info
		if strings.EqualFold(tag, sk.Primary) {
			class = console.Accent
		}
		row.Spans = append(row.Spans, console.S(class, cell))
		width += w
	}
	if width > 0 {
		body = append(body, row)
	}
	body = append(body, console.Blank())
	return boxed("Programming Languages & Technologies", body...)
}

func (b *builtins) whoami() []console.Line {
	out := make([]console.Line, len(b.profile.Whoami))
	for i, f := range b.profile.Whoami {
		out[i] = labelled(f.Label, f.Value)
	}
	return out
}

func (b *builtins) about() []console.Line {
	a := b.profile.About
	body := []console.Line{console.Text(console.Plain, a.Intro), console.Blank()}
	for _, sec := range a.Sections {
		body = append(body, console.Text(console.Label, sec.Title+":"))
		for _, item := range sec.Items {
			body = append(body, console.Join(console.S(console.Accent, "   • "), console.S(console.Plain, item)))
		}
		body = append(body, console.Blank())
	}
	return boxed("About Me", body...)
}

func (b *builtins) contact() []console.Line {
	var body []console.Line
	for _, c := range b.profile.Contacts {
		body = append(body, console.Join(
			console.S(console.Plain, c.Icon+" "),
			console.S(console.Label, c.Label+":"),
			console.S(console.Plain, " "),
			console.Href(c.Text, c.Link),
		))
	}
	body = append(body, console.Blank())
	return boxed("Contact Information", body...)
}

func (b *builtins) banner() []console.Line {
	var out []console.Line
	for _, l := range strings.Split(b.profile.Banner.Art, "\n") {
		out = append(out, console.Text(console.Art, l))
	}
	if b.profile.Banner.Tagline != "" {
		out = append(out, console.Text(console.Info, b.profile.Banner.Tagline))
	}
	return append(out, console.Blank())
}
