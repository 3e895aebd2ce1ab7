package console

// History keeps submitted commands and a navigation cursor. A cursor equal
// to Len means fresh, unsubmitted input.
type History struct {
	entries []string
	pos     int
}

func (h *History) Push(entry string) {
	h.entries = append(h.entries, entry)
	h.pos = len(h.entries)
}

// Prev steps toward the oldest entry. It reports false when already there.
func (h *History) Prev() (string, bool) {
	if h.pos == 0 {
		return "", false
	}
	h.pos--
	return h.entries[h.pos], true
}

// Next steps toward fresh input and returns the entry to show, or "" once
// the cursor moves past the newest entry.
func (h *History) Next() string {
	if h.pos < len(h.entries)-1 {
		h.pos++
		return h.entries[h.pos]
	}
	h.pos = len(h.entries)
	return ""
}

func (h *History) Cursor() int { return h.pos }

func (h *History) Len() int { return len(h.entries) }

func (h *History) Entries() []string {
	out := make([]string, len(h.entries))
	copy(out, h.entries)
	return out
}
