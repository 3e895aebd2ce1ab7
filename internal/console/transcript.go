package console

// Transcript is the ordered log of rendered output lines.
type Transcript struct {
	lines []Line
}

func (t *Transcript) Append(l Line) { t.lines = append(t.lines, l) }

// Set replaces line i; used only while a line is being revealed.
func (t *Transcript) Set(i int, l Line) {
	if i >= 0 && i < len(t.lines) {
		t.lines[i] = l
	}
}

func (t *Transcript) Clear() { t.lines = nil }

func (t *Transcript) Len() int { return len(t.lines) }

func (t *Transcript) At(i int) Line { return t.lines[i] }

func (t *Transcript) Lines() []Line {
	out := make([]Line, len(t.lines))
	copy(out, t.lines)
	return out
}
