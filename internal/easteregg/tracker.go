// Package easteregg watches key presses for a hidden sequence.
package easteregg

// Konami is the classic code, named the way bubbletea names keys.
var Konami = []string{"up", "up", "down", "down", "left", "right", "left", "right", "b", "a"}

// Tracker matches a key sequence incrementally. Any key that breaks the
// match resets progress to the start of the code without being re-checked.
type Tracker struct {
	code   []string
	pos    int
	active bool
}

func New(code []string) *Tracker {
	return &Tracker{code: append([]string(nil), code...)}
}

// Feed consumes one key and reports whether it completed the code. A
// completion while the effect is still active is ignored.
func (t *Tracker) Feed(key string) bool {
	if len(t.code) == 0 {
		return false
	}
	if t.code[t.pos] != key {
		t.pos = 0
		return false
	}
	t.pos++
	if t.pos < len(t.code) {
		return false
	}

	t.pos = 0
	if t.active {
		return false
	}
	t.active = true
	return true
}

func (t *Tracker) Active() bool { return t.active }

// Deactivate ends the effect so the next completion triggers again.
func (t *Tracker) Deactivate() { t.active = false }

// Progress is the number of code keys currently matched.
func (t *Tracker) Progress() int { return t.pos }
