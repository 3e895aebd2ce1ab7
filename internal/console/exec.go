package console

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/sirilv/termfolio/internal/logging"
	"github.com/sirilv/termfolio/internal/theme"
)

const clearScreen = "\033[2J\033[H"

type ExecOptions struct {
	Renderer *Renderer
	// Typewriter reveals Type actions rune by rune; otherwise they print whole.
	Typewriter bool
	// Terminal enables screen clearing for Clear actions.
	Terminal bool
	Opener   Opener
	Mode     theme.Mode
	Rand     Rand
}

// Exec runs one command line to completion, writing its output to w. An
// unknown command still prints the not-found lines and then returns a
// *CommandError.
func Exec(ctx context.Context, reg *Registry, raw string, w io.Writer, opts ExecOptions) error {
	if opts.Rand == nil {
		opts.Rand = globalRand{}
	}
	actions, err := reg.Dispatch(&Context{Registry: reg, Mode: opts.Mode, Rand: opts.Rand}, raw)
	if perr := Play(ctx, actions, w, opts); perr != nil {
		return perr
	}
	return err
}

// Play writes a script to w, sleeping through pauses and typewriter delays.
func Play(ctx context.Context, actions []Action, w io.Writer, opts ExecOptions) error {
	r := opts.Renderer
	if r == nil {
		r = PlainRenderer()
	}

	for _, a := range actions {
		switch a := a.(type) {
		case Print:
			if _, err := fmt.Fprintln(w, r.Line(a.Line)); err != nil {
				return err
			}
		case Type:
			if err := typeLine(ctx, w, r, a, opts.Typewriter); err != nil {
				return err
			}
		case Pause:
			if err := sleep(ctx, a.Duration); err != nil {
				return err
			}
		case Clear:
			if opts.Terminal {
				if _, err := io.WriteString(w, clearScreen); err != nil {
					return err
				}
			}
		case Open:
			if opts.Opener != nil {
				if err := opts.Opener.Open(a.URL); err != nil {
					logging.L().Warnw("open link failed", "url", a.URL, "error", err)
				}
			}
		case ToggleTheme:
			opts.Mode = opts.Mode.Toggle()
		case Quit:
			return nil
		}
	}
	return nil
}

func typeLine(ctx context.Context, w io.Writer, r *Renderer, t Type, animate bool) error {
	n := t.Line.Len()
	if !animate || n == 0 {
		_, err := fmt.Fprintln(w, r.Line(t.Line))
		return err
	}
	for i := 1; i <= n; i++ {
		if _, err := io.WriteString(w, "\r"+r.Line(t.Line.Prefix(i))); err != nil {
			return err
		}
		if err := sleep(ctx, t.Delay); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "\n")
	return err
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Collect returns the lines a script leaves in a fresh transcript.
func Collect(actions []Action) []Line {
	var t Transcript
	for _, a := range actions {
		switch a := a.(type) {
		case Print:
			t.Append(a.Line)
		case Type:
			t.Append(a.Line)
		case Clear:
			t.Clear()
		case Quit:
			return t.Lines()
		}
	}
	return t.Lines()
}
