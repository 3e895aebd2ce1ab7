package commands

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"
	"github.com/sirilv/termfolio/internal/console"
)

func (b *builtins) servers() []console.Line {
	srv := b.profile.Servers
	body := []console.Line{
		console.Join(console.S(console.Plain, "🖥️  "), console.S(console.Label, "Total Servers:"), console.S(console.Value, fmt.Sprintf(" %d", srv.Count))),
		console.Blank(),
		console.Text(console.Success, "📊 Status: All systems operational ✓"),
		console.Blank(),
	}
	for i := 1; i <= srv.Count; i++ {
		body = append(body, console.Join(
			console.S(console.Plain, fmt.Sprintf("   Server %d: ", i)),
			console.S(console.Success, "●"),
			console.S(console.Plain, " Online"),
		))
	}
	body = append(body, console.Blank())

	if len(srv.Load) > 1 {
		chart := asciigraph.Plot(srv.Load,
			asciigraph.Height(5),
			asciigraph.Width(40),
			asciigraph.Precision(2),
			asciigraph.Caption("cluster load, last 24h"),
		)
		for _, l := range strings.Split(chart, "\n") {
			body = append(body, console.Text(console.Info, l))
		}
		body = append(body, console.Blank())
	}
	return boxed("Server Infrastructure", body...)
}
