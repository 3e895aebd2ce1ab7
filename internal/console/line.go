package console

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/x/ansi"
)

// Class selects the style a span is rendered with.
type Class int

const (
	Plain Class = iota
	Info
	Success
	Warning
	Error
	Dim
	Label
	Value
	Accent
	Art
	CommandName
	Link

	PromptUser
	PromptHost
	PromptPath
	PromptSymbol
)

type Kind int

const (
	KindOutput Kind = iota
	KindEcho
)

// Span is a run of text in one class. A span with a URL renders as a
// terminal hyperlink.
type Span struct {
	Class Class
	Text  string
	URL   string
}

// Line is one transcript entry.
type Line struct {
	Kind  Kind
	Spans []Span
}

func S(c Class, text string) Span { return Span{Class: c, Text: text} }

func Href(text, url string) Span { return Span{Class: Link, Text: text, URL: url} }

func Text(c Class, text string) Line { return Line{Spans: []Span{S(c, text)}} }

func Join(spans ...Span) Line { return Line{Spans: spans} }

func Blank() Line { return Line{} }

// Prompt is the identity shown before echoed commands and the input line.
type Prompt struct {
	User string
	Host string
	Path string
}

func (p Prompt) Spans() []Span {
	return []Span{
		S(PromptUser, p.User),
		S(Dim, "@"),
		S(PromptHost, p.Host),
		S(Plain, " "),
		S(PromptPath, p.Path),
		S(Plain, " "),
		S(PromptSymbol, "❯"),
		S(Plain, " "),
	}
}

// EchoLine renders a submitted command after the prompt.
func EchoLine(p Prompt, text string) Line {
	spans := append(p.Spans(), S(Plain, Sanitize(text)))
	return Line{Kind: KindEcho, Spans: spans}
}

func (l Line) String() string {
	var b strings.Builder
	for _, s := range l.Spans {
		b.WriteString(s.Text)
	}
	return b.String()
}

// Len is the number of runes across all spans.
func (l Line) Len() int {
	n := 0
	for _, s := range l.Spans {
		n += utf8.RuneCountInString(s.Text)
	}
	return n
}

// Prefix returns the line cut after n runes, keeping span classes.
func (l Line) Prefix(n int) Line {
	out := Line{Kind: l.Kind}
	for _, s := range l.Spans {
		if n <= 0 {
			break
		}
		runes := []rune(s.Text)
		if len(runes) > n {
			s.Text = string(runes[:n])
		}
		n -= len(runes)
		out.Spans = append(out.Spans, s)
	}
	return out
}

func (l Line) HasClass(c Class) bool {
	for _, s := range l.Spans {
		if s.Class == c {
			return true
		}
	}
	return false
}

// Sanitize strips terminal escape sequences and control characters from
// user-typed text before it is written back to the screen.
func Sanitize(s string) string {
	s = ansi.Strip(s)
	return strings.Map(func(r rune) rune {
		if r == '\t' {
			return ' '
		}
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
}
