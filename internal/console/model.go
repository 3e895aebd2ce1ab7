package console

import (
	"math/rand/v2"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirilv/termfolio/internal/logging"
	"github.com/sirilv/termfolio/internal/theme"
	"go.uber.org/zap"
)

type State int

const (
	Idle State = iota
	Typing
	Executing
)

func (s State) String() string {
	switch s {
	case Typing:
		return "typing"
	case Executing:
		return "executing"
	}
	return "idle"
}

// Scheduler delivers msg after d. The default is tea.Tick.
type Scheduler func(d time.Duration, msg tea.Msg) tea.Cmd

func TickScheduler(d time.Duration, msg tea.Msg) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return msg })
}

// Opener opens external links.
type Opener interface {
	Open(url string) error
}

type revealMsg struct{ seq int }

type resumeMsg struct{ seq int }

type reveal struct {
	index int
	line  Line
	shown int
	delay time.Duration
}

type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }

type Option func(*Model)

func WithPrompt(p Prompt) Option             { return func(m *Model) { m.prompt = p } }
func WithScheduler(s Scheduler) Option       { return func(m *Model) { m.schedule = s } }
func WithOpener(o Opener) Option             { return func(m *Model) { m.opener = o } }
func WithRand(r Rand) Option                 { return func(m *Model) { m.rng = r } }
func WithMode(mode theme.Mode) Option        { return func(m *Model) { m.mode = mode } }
func WithLogger(l *zap.SugaredLogger) Option { return func(m *Model) { m.log = l } }

// Model is the console component: input line, transcript viewport, history
// and the script engine.
type Model struct {
	registry   *Registry
	transcript Transcript
	history    History
	input      textinput.Model
	viewport   viewport.Model

	prompt   Prompt
	mode     theme.Mode
	renderer *Renderer
	cache    []string

	rng      Rand
	schedule Scheduler
	opener   Opener
	log      *zap.SugaredLogger

	state    State
	queue    []Action
	reveal   reveal
	seq      int
	quitting bool

	width, height int
}

func New(reg *Registry, opts ...Option) *Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 256
	ti.Focus()

	m := &Model{
		registry: reg,
		input:    ti,
		viewport: viewport.New(0, 0),
		prompt:   Prompt{User: "user", Host: "localhost", Path: "~"},
		rng:      globalRand{},
		schedule: TickScheduler,
		log:      logging.L(),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.renderer = NewRenderer(theme.For(m.mode))
	return m
}

func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *Model) State() State        { return m.state }
func (m *Model) Mode() theme.Mode    { return m.mode }
func (m *Model) Quitting() bool      { return m.quitting }
func (m *Model) Registry() *Registry { return m.registry }
func (m *Model) Transcript() []Line  { return m.transcript.Lines() }
func (m *Model) History() []string   { return m.history.Entries() }
func (m *Model) Input() string       { return m.input.Value() }

func (m *Model) SetInput(s string) {
	m.input.SetValue(s)
	m.input.CursorEnd()
}

// SetSize fits the transcript and input line into w×h cells.
func (m *Model) SetSize(w, h int) {
	if w < 1 {
		w = 1
	}
	if h < 2 {
		h = 2
	}
	m.width, m.height = w, h
	m.viewport.Width = w
	m.viewport.Height = h - 1
	m.input.Width = max(w-lipgloss.Width(m.renderer.Line(Join(m.prompt.Spans()...)))-1, 1)
	m.cache = nil
	m.refresh()
}

// SetMode switches the theme without printing anything.
func (m *Model) SetMode(mode theme.Mode) {
	if mode == m.mode {
		return
	}
	m.mode = mode
	m.renderer = NewRenderer(theme.For(mode))
	m.cache = nil
	m.refresh()
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case revealMsg:
		if msg.seq == m.seq && m.state == Typing {
			return m.advance()
		}
	case resumeMsg:
		if msg.seq == m.seq && m.state == Executing {
			return m.run()
		}
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return cmd
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return cmd
	}
	return nil
}

// handleKey ignores every key while a line is being revealed. During a pause
// input stays live and anything it prints is queued behind the script.
func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.state == Typing {
		return nil
	}

	switch msg.String() {
	case "enter":
		return m.Submit(m.input.Value())
	case "up":
		m.HistoryPrev()
	case "down":
		m.HistoryNext()
	case "tab":
		m.Autocomplete()
	case "ctrl+l":
		m.ClearScreen()
	case "ctrl+c":
		m.Interrupt()
	case "pgup", "pgdown":
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return cmd
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return cmd
	}
	return nil
}

// Submit handles a line entered at the prompt.
func (m *Model) Submit(raw string) tea.Cmd {
	m.input.Reset()
	text := strings.TrimSpace(raw)
	if text == "" {
		return m.Start(Print{Line: Blank()})
	}

	m.history.Push(text)
	return m.Start(append([]Action{Print{Line: EchoLine(m.prompt, text)}}, m.dispatch(text)...)...)
}

// Execute dispatches a command line without echoing it or recording history.
func (m *Model) Execute(raw string) tea.Cmd {
	return m.Start(m.dispatch(raw)...)
}

func (m *Model) dispatch(raw string) []Action {
	actions, err := m.registry.Dispatch(&Context{Registry: m.registry, Mode: m.mode, Rand: m.rng}, raw)
	if err != nil {
		m.log.Debugw("command rejected", "input", Sanitize(raw), "error", err)
	} else {
		name, _ := Parse(raw)
		m.log.Debugw("command", "name", name, "steps", len(actions))
	}
	return actions
}

// Start queues a script. It runs immediately when the console is idle,
// otherwise after the current script.
func (m *Model) Start(actions ...Action) tea.Cmd {
	m.queue = append(m.queue, actions...)
	if m.state != Idle {
		return nil
	}
	return m.run()
}

func (m *Model) run() tea.Cmd {
	var cmds []tea.Cmd
	for len(m.queue) > 0 {
		a := m.queue[0]
		m.queue = m.queue[1:]

		switch a := a.(type) {
		case Print:
			m.transcript.Append(a.Line)
		case Clear:
			m.transcript.Clear()
			m.cache = nil
		case ToggleTheme:
			m.SetMode(m.mode.Toggle())
		case Open:
			cmds = append(cmds, m.open(a.URL))
		case Quit:
			m.quitting = true
			m.queue = nil
			m.state = Idle
			m.refresh()
			return tea.Batch(append(cmds, tea.Quit)...)
		case Pause:
			m.state = Executing
			m.seq++
			m.refresh()
			return tea.Batch(append(cmds, m.schedule(a.Duration, resumeMsg{seq: m.seq}))...)
		case Type:
			if a.Line.Len() == 0 {
				m.transcript.Append(a.Line)
				continue
			}
			m.state = Typing
			m.seq++
			m.reveal = reveal{index: m.transcript.Len(), line: a.Line, shown: 1, delay: a.Delay}
			m.transcript.Append(a.Line.Prefix(1))
			m.refresh()
			return tea.Batch(append(cmds, m.schedule(a.Delay, revealMsg{seq: m.seq}))...)
		}
	}
	m.state = Idle
	m.refresh()
	return tea.Batch(cmds...)
}

func (m *Model) advance() tea.Cmd {
	rv := &m.reveal
	if rv.shown >= rv.line.Len() {
		m.reveal = reveal{}
		return m.run()
	}
	rv.shown++
	m.transcript.Set(rv.index, rv.line.Prefix(rv.shown))
	if len(m.cache) > rv.index {
		m.cache = m.cache[:rv.index]
	}
	m.refresh()
	return m.schedule(rv.delay, revealMsg{seq: m.seq})
}

func (m *Model) open(url string) tea.Cmd {
	if m.opener == nil {
		return nil
	}
	opener, log := m.opener, m.log
	return func() tea.Msg {
		if err := opener.Open(url); err != nil {
			log.Warnw("open link failed", "url", url, "error", err)
		}
		return nil
	}
}

func (m *Model) HistoryPrev() {
	if v, ok := m.history.Prev(); ok {
		m.SetInput(v)
	}
}

func (m *Model) HistoryNext() {
	m.SetInput(m.history.Next())
}

// Autocomplete completes the input against registered command names.
func (m *Model) Autocomplete() {
	matches := m.registry.Complete(m.input.Value())
	switch len(matches) {
	case 0:
	case 1:
		m.SetInput(matches[0])
	default:
		m.Start(
			Print{Line: Text(Plain, strings.Join(matches, "  "))},
			Print{Line: Blank()},
		)
	}
}

// Interrupt abandons the current input line.
func (m *Model) Interrupt() {
	m.input.Reset()
	m.Start(Print{Line: Text(Plain, "^C")}, Print{Line: Blank()})
}

func (m *Model) ClearScreen() {
	m.Start(Clear{})
}

// Print appends a line from outside a script, after any script in progress.
func (m *Model) Print(l Line) {
	m.Start(Print{Line: l})
}

// refresh renders new transcript lines and scrolls to the newest one.
func (m *Model) refresh() {
	if len(m.cache) > m.transcript.Len() {
		m.cache = nil
	}
	wrap := lipgloss.NewStyle()
	if m.width > 0 {
		wrap = wrap.Width(m.width)
	}
	for i := len(m.cache); i < m.transcript.Len(); i++ {
		m.cache = append(m.cache, wrap.Render(m.renderer.Line(m.transcript.At(i))))
	}
	m.viewport.SetContent(strings.Join(m.cache, "\n"))
	m.viewport.GotoBottom()
}

func (m *Model) View() string {
	prompt := m.renderer.Line(Join(m.prompt.Spans()...))
	return m.viewport.View() + "\n" + prompt + m.input.View()
}
