package console

import "time"

// Action is one step of a command script.
type Action interface {
	action()
}

// Print appends a line instantly.
type Print struct{ Line Line }

// Type appends a line and reveals it one rune per Delay.
type Type struct {
	Line  Line
	Delay time.Duration
}

// Pause holds the console in the executing state before the next step.
type Pause struct{ Duration time.Duration }

// Clear empties the transcript.
type Clear struct{}

// Open asks the host to open a URL.
type Open struct{ URL string }

// ToggleTheme flips the dark/light mode.
type ToggleTheme struct{}

// Quit ends the program.
type Quit struct{}

func (Print) action()       {}
func (Type) action()        {}
func (Pause) action()       {}
func (Clear) action()       {}
func (Open) action()        {}
func (ToggleTheme) action() {}
func (Quit) action()        {}

// PrintLines turns lines into consecutive Print actions.
func PrintLines(lines ...Line) []Action {
	out := make([]Action, len(lines))
	for i, l := range lines {
		out[i] = Print{Line: l}
	}
	return out
}
