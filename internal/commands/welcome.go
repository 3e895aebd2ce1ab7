package commands

import (
	"github.com/sirilv/termfolio/internal/console"
	"github.com/sirilv/termfolio/internal/content"
)

// Welcome is the script played once when the interactive console starts.
func Welcome(p *content.Profile, opts Options) []console.Action {
	var out []console.Action
	for _, l := range p.Welcome.Frame {
		out = append(out, console.Type{Line: console.Text(console.Info, l), Delay: opts.FrameDelay})
	}
	out = append(out,
		console.Pause{Duration: opts.WelcomePause},
		console.Print{Line: console.Blank()},
	)
	for _, h := range p.Welcome.Hints {
		out = append(out, console.Type{
			Line: console.Join(
				console.S(console.Plain, "Type "),
				console.S(console.Info, "'"+h.Command+"'"),
				console.S(console.Plain, " "+h.Text),
			),
			Delay: opts.HintDelay,
		})
	}
	return append(out, console.Print{Line: console.Blank()})
}
