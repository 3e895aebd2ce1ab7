package commands

import (
	"fmt"
	"math/rand/v2"

	"github.com/sirilv/termfolio/internal/console"
)

func (b *builtins) open(url string) console.Handler {
	return func(*console.Context, []string) []console.Action {
		return []console.Action{
			console.Print{Line: console.Join(console.S(console.Success, "Opening "), console.Href(url, url))},
			console.Open{URL: url},
		}
	}
}

func (b *builtins) sudo(_ *console.Context, args []string) []console.Action {
	if len(args) == 0 {
		return console.PrintLines(console.Text(console.Error, "usage: sudo <command>"))
	}
	user := b.profile.Identity.User
	return []console.Action{
		console.Print{Line: console.Text(console.Plain, fmt.Sprintf("[sudo] password for %s: ", user))},
		console.Pause{Duration: b.opts.SudoDelay},
		console.Print{Line: console.Text(console.Error, "Sorry, try again.")},
		console.Print{Line: console.Text(console.Warning, user+" is not in the sudoers file. This incident will be reported.")},
	}
}

func (b *builtins) exit(*console.Context, []string) []console.Action {
	return []console.Action{
		console.Print{Line: console.Text(console.Info, "Goodbye! 👋")},
		console.Pause{Duration: b.opts.ExitDelay},
		console.Quit{},
	}
}

// theme reports the mode the console is about to switch to.
func (b *builtins) theme(ctx *console.Context, _ []string) []console.Action {
	return []console.Action{
		console.ToggleTheme{},
		console.Print{Line: console.Text(console.Success, fmt.Sprintf("Theme switched to %s mode", ctx.Mode.Toggle()))},
	}
}

func (b *builtins) matrix() []console.Line {
	return []console.Line{
		console.Text(console.Success, "Matrix mode is already enabled! 🟢"),
		console.Text(console.Info, "The Matrix has you..."),
	}
}

func (b *builtins) quote(ctx *console.Context, _ []string) []console.Action {
	quotes := b.profile.Quotes
	var i int
	if ctx.Rand != nil {
		i = ctx.Rand.IntN(len(quotes))
	} else {
		i = rand.IntN(len(quotes))
	}
	q := quotes[i]
	return console.PrintLines(console.Text(console.Info, `"`+q+`"`))
}
