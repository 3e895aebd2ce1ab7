package commands

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/sirilv/termfolio/internal/console"
)

// boxWidth is the outer width of every framed panel, corners included.
const boxWidth = 53

func boxTop(title string) console.Line {
	dashes := boxWidth - 5 - runewidth.StringWidth(title)
	if dashes < 1 {
		dashes = 1
	}
	return console.Text(console.Info, "╭─ "+title+" "+strings.Repeat("─", dashes)+"╮")
}

func boxBottom() console.Line {
	return console.Text(console.Info, "╰"+strings.Repeat("─", boxWidth-2)+"╯")
}

// boxed frames body between a titled top edge and a bottom edge, with a blank
// line after the title.
func boxed(title string, body ...console.Line) []console.Line {
	lines := make([]console.Line, 0, len(body)+3)
	lines = append(lines, boxTop(title), console.Blank())
	lines = append(lines, body...)
	return append(lines, boxBottom())
}

func labelled(label, value string) console.Line {
	return console.Join(console.S(console.Label, label+":"), console.S(console.Value, " "+value))
}

func pad(s string, width int) string {
	return runewidth.FillRight(s, width)
}
