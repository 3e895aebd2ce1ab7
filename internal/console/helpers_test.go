package console_test

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	. "github.com/onsi/gomega"
	"github.com/sirilv/termfolio/internal/console"
)

// clock records scheduled messages so specs can deliver them one at a time.
type clock struct {
	pending []tea.Msg
	delays  []time.Duration
}

func (c *clock) schedule(d time.Duration, msg tea.Msg) tea.Cmd {
	c.pending = append(c.pending, msg)
	c.delays = append(c.delays, d)
	return nil
}

func (c *clock) step(m *console.Model) bool {
	if len(c.pending) == 0 {
		return false
	}
	msg := c.pending[0]
	c.pending = c.pending[1:]
	m.Update(msg)
	return true
}

func (c *clock) drain(m *console.Model) {
	for c.step(m) {
	}
}

func constant(lines ...console.Line) console.Handler {
	return func(*console.Context, []string) []console.Action {
		return console.PrintLines(lines...)
	}
}

func script(actions ...console.Action) console.Handler {
	return func(*console.Context, []string) []console.Action {
		return actions
	}
}

func testRegistry() *console.Registry {
	reg, err := console.NewRegistry(
		console.Command{Name: "help", Description: "show help", Run: constant(
			console.Text(console.Info, "commands:"),
			console.Text(console.Plain, "help hello slow"),
		)},
		console.Command{Name: "hello", Description: "greet", Run: constant(console.Text(console.Success, "hi"))},
		console.Command{Name: "slow", Run: script(console.Type{Line: console.Text(console.Plain, "typed"), Delay: 10 * time.Millisecond})},
		console.Command{Name: "wait", Run: script(
			console.Print{Line: console.Text(console.Plain, "start")},
			console.Pause{Duration: 50 * time.Millisecond},
			console.Print{Line: console.Text(console.Plain, "done")},
		)},
		console.Command{Name: "clear", Run: script(console.Clear{})},
		console.Command{Name: "bye", Run: script(console.Print{Line: console.Text(console.Info, "bye")}, console.Quit{})},
		console.Command{Name: "theme", Hidden: true, Run: func(ctx *console.Context, _ []string) []console.Action {
			return []console.Action{
				console.ToggleTheme{},
				console.Print{Line: console.Text(console.Success, "now "+ctx.Mode.Toggle().String())},
			}
		}},
		console.Command{Name: "echo", Hidden: true, Run: func(_ *console.Context, args []string) []console.Action {
			return console.PrintLines(console.Text(console.Plain, strings.Join(args, " ")))
		}},
	)
	Expect(err).NotTo(HaveOccurred())
	return reg
}

func key(t tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: t} }

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func texts(lines []console.Line) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = l.String()
	}
	return out
}

func errorLines(lines []console.Line) []console.Line {
	var out []console.Line
	for _, l := range lines {
		if l.HasClass(console.Error) {
			out = append(out, l)
		}
	}
	return out
}
