package console

import (
	"fmt"
	"strings"

	"github.com/sirilv/termfolio/internal/theme"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Rand is the randomness handlers may consume.
type Rand interface {
	IntN(n int) int
}

// Context is what a handler sees when it runs.
type Context struct {
	Registry *Registry
	Mode     theme.Mode
	Rand     Rand
}

// Handler builds the script for one invocation. args excludes the command name.
type Handler func(ctx *Context, args []string) []Action

type Command struct {
	Name        string
	Usage       string
	Description string
	// Hidden commands work and complete but are left out of help.
	Hidden bool
	Run    Handler
}

// Registry maps command names to handlers. It is built once and never
// changes afterwards.
type Registry struct {
	commands []Command
	index    map[string]int
}

func NewRegistry(cmds ...Command) (*Registry, error) {
	r := &Registry{index: make(map[string]int, len(cmds))}
	for _, c := range cmds {
		key := fold(c.Name)
		if key == "" || c.Run == nil {
			return nil, fmt.Errorf("console: command %q needs a name and a handler", c.Name)
		}
		if _, dup := r.index[key]; dup {
			return nil, &CommandError{Name: c.Name, Wrapped: ErrDuplicateCommand}
		}
		r.index[key] = len(r.commands)
		r.commands = append(r.commands, c)
	}
	return r, nil
}

// Lookup finds a command by name, ignoring case.
func (r *Registry) Lookup(name string) (Command, bool) {
	i, ok := r.index[fold(name)]
	if !ok {
		return Command{}, false
	}
	return r.commands[i], true
}

// Commands returns every command in registration order.
func (r *Registry) Commands() []Command {
	out := make([]Command, len(r.commands))
	copy(out, r.commands)
	return out
}

// Visible returns the commands shown by help.
func (r *Registry) Visible() []Command {
	var out []Command
	for _, c := range r.commands {
		if !c.Hidden {
			out = append(out, c)
		}
	}
	return out
}

func (r *Registry) Names() []string {
	names := make([]string, len(r.commands))
	for i, c := range r.commands {
		names[i] = c.Name
	}
	return names
}

// Complete returns the canonical names that start with partial, ignoring case.
func (r *Registry) Complete(partial string) []string {
	prefix := fold(partial)
	var matches []string
	for _, c := range r.commands {
		if strings.HasPrefix(fold(c.Name), prefix) {
			matches = append(matches, c.Name)
		}
	}
	return matches
}

// Parse splits raw input into a lower-cased command name and its arguments.
func Parse(raw string) (string, []string) {
	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return "", nil
	}
	return fold(fields[0]), fields[1:]
}

// Dispatch resolves raw input to a script. Unknown names produce the
// not-found script together with a *CommandError.
func (r *Registry) Dispatch(ctx *Context, raw string) ([]Action, error) {
	name, args := Parse(raw)
	if name == "" {
		return nil, nil
	}
	cmd, ok := r.Lookup(name)
	if !ok {
		return NotFound(name), &CommandError{Name: name, Wrapped: ErrUnknownCommand}
	}
	if ctx.Registry == nil {
		ctx.Registry = r
	}
	return cmd.Run(ctx, args), nil
}

// NotFound is the script printed for an unrecognised command.
func NotFound(name string) []Action {
	return PrintLines(
		Text(Error, "Command not found: "+Sanitize(name)),
		Join(S(Plain, "Type "), S(Info, "'help'"), S(Plain, " for available commands.")),
	)
}

func fold(s string) string {
	return cases.Lower(language.Und).String(strings.TrimSpace(s))
}
