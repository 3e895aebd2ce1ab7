// Package commands defines the built-in command table of the terminal and the
// scripted output each command produces from the static profile.
package commands

import (
	"time"

	"github.com/sirilv/termfolio/internal/console"
	"github.com/sirilv/termfolio/internal/content"
)

// Options holds the delays used by scripted commands.
type Options struct {
	SudoDelay time.Duration
	ExitDelay time.Duration

	// Welcome banner timing.
	FrameDelay   time.Duration
	HintDelay    time.Duration
	WelcomePause time.Duration
}

func DefaultOptions() Options {
	return Options{
		SudoDelay:    500 * time.Millisecond,
		ExitDelay:    time.Second,
		FrameDelay:   time.Millisecond,
		HintDelay:    15 * time.Millisecond,
		WelcomePause: 200 * time.Millisecond,
	}
}

type builtins struct {
	profile *content.Profile
	opts    Options
}

// Builtin returns the registry of every built-in command.
func Builtin(p *content.Profile, opts Options) (*console.Registry, error) {
	b := &builtins{profile: p, opts: opts}
	static := func(f func() []console.Line) console.Handler {
		return func(*console.Context, []string) []console.Action {
			return console.PrintLines(f()...)
		}
	}
	clearScreen := func(*console.Context, []string) []console.Action {
		return []console.Action{console.Clear{}}
	}

	return console.NewRegistry(
		console.Command{Name: "help", Description: "Show this help", Hidden: true, Run: b.help},
		console.Command{Name: "fastfetch", Description: "Display system information", Run: static(b.fastfetch)},
		console.Command{Name: "projects", Usage: "projects [name]", Description: "Show my development projects", Run: b.projects},
		console.Command{Name: "skills", Description: "List programming languages & technologies", Run: static(b.skills)},
		console.Command{Name: "whoami", Description: "Information about me", Run: static(b.whoami)},
		console.Command{Name: "about", Description: "Detailed profile information", Run: static(b.about)},
		console.Command{Name: "contact", Description: "Get my contact information", Run: static(b.contact)},
		console.Command{Name: "servers", Description: "Show server infrastructure", Run: static(b.servers)},
		console.Command{Name: "github", Description: "Open my GitHub profile", Run: b.open(p.Links.GitHub)},
		console.Command{Name: "telegram", Description: "Open my Telegram", Run: b.open(p.Links.Telegram)},
		console.Command{Name: "clear", Description: "Clear terminal screen", Run: clearScreen},
		console.Command{Name: "theme", Description: "Toggle light/dark theme", Run: b.theme},
		console.Command{Name: "banner", Description: "Show welcome banner", Run: static(b.banner)},

		console.Command{Name: "neofetch", Description: "Display system information", Hidden: true, Run: static(b.fastfetch)},
		console.Command{Name: "ls", Description: "List project directories", Hidden: true, Run: static(b.ls)},
		console.Command{Name: "cls", Description: "Clear terminal screen", Hidden: true, Run: clearScreen},
		console.Command{Name: "sudo", Usage: "sudo <command>", Description: "Run a command as root", Hidden: true, Run: b.sudo},
		console.Command{Name: "exit", Description: "Close the terminal", Hidden: true, Run: b.exit},
		console.Command{Name: "matrix", Description: "Enter the Matrix", Hidden: true, Run: static(b.matrix)},
		console.Command{Name: "quote", Description: "Print a random quote", Hidden: true, Run: b.quote},
	)
}

// MustBuiltin is Builtin for the embedded profile, where a failure is a bug.
func MustBuiltin(p *content.Profile, opts Options) *console.Registry {
	reg, err := Builtin(p, opts)
	if err != nil {
		panic(err)
	}
	return reg
}

func (b *builtins) help(ctx *console.Context, _ []string) []console.Action {
	var body []console.Line
	for _, c := range ctx.Registry.Visible() {
		body = append(body, console.Join(
			console.S(console.CommandName, pad(c.Name, 12)),
			console.S(console.Dim, c.Description),
		))
	}
	return console.PrintLines(boxed("Available Commands", body...)...)
}
