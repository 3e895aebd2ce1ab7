// Package ui is the root program model: the animated background with the
// console window drawn on top of it.
package ui

import (
	"math"
	"math/rand/v2"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirilv/termfolio/internal/console"
	"github.com/sirilv/termfolio/internal/easteregg"
	"github.com/sirilv/termfolio/internal/logging"
	"github.com/sirilv/termfolio/internal/rain"
	"github.com/sirilv/termfolio/internal/theme"
	"go.uber.org/zap"
)

type Options struct {
	Registry *console.Registry
	Prompt   console.Prompt
	Title    string
	Welcome  []console.Action
	Mode     theme.Mode
	Opener   console.Opener

	Rain           rain.Config
	RainEnabled    bool
	Frame          time.Duration
	VisibleOpacity float64
	HiddenOpacity  float64

	EggDuration time.Duration
	EggPeriod   time.Duration

	// Rand and Scheduler default to a seeded generator and tea.Tick.
	Rand      rain.Rand
	Scheduler console.Scheduler
}

const defaultHiddenOpacity = 0.4

type frameMsg struct{}

type effectEndMsg struct{ seq int }

type Model struct {
	opts    Options
	console *console.Model
	rain    *rain.Rain
	egg     *easteregg.Tracker
	log     *zap.SugaredLogger

	mode      theme.Mode
	chrome    chrome
	maximized bool
	focused   bool

	ticking   bool
	hue       float64
	effectSeq int

	width, height int
	window        rect
}

func New(opts Options) *Model {
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if opts.Scheduler == nil {
		opts.Scheduler = console.TickScheduler
	}
	if opts.Frame <= 0 {
		opts.Frame = 33 * time.Millisecond
	}
	if opts.EggDuration <= 0 {
		opts.EggDuration = 5 * time.Second
	}
	if opts.EggPeriod <= 0 {
		opts.EggPeriod = 2 * time.Second
	}
	if opts.VisibleOpacity <= 0 {
		opts.VisibleOpacity = rain.DefaultOpacity
	}
	if opts.HiddenOpacity <= 0 {
		opts.HiddenOpacity = defaultHiddenOpacity
	}

	t := theme.For(opts.Mode)
	rc := opts.Rain
	rc.Background = string(t.Background)

	con := console.New(opts.Registry,
		console.WithPrompt(opts.Prompt),
		console.WithMode(opts.Mode),
		console.WithOpener(opts.Opener),
		console.WithScheduler(opts.Scheduler),
		console.WithRand(opts.Rand),
	)
	m := &Model{
		opts:    opts,
		console: con,
		rain:    rain.New(rc, opts.Rand),
		egg:     easteregg.New(easteregg.Konami),
		log:     logging.L(),
		mode:    opts.Mode,
		chrome:  chrome{t: t, title: opts.Title},
		focused: true,
	}
	m.rain.SetOpacity(opts.VisibleOpacity)
	return m
}

func (m *Model) Console() *console.Model { return m.console }
func (m *Model) Rain() *rain.Rain        { return m.rain }
func (m *Model) Mode() theme.Mode        { return m.mode }
func (m *Model) Maximized() bool         { return m.maximized }
func (m *Model) EffectActive() bool      { return m.egg.Active() }
func (m *Model) Focused() bool           { return m.focused }

func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.console.Init(), m.console.Start(m.opts.Welcome...)}
	if m.opts.RainEnabled {
		cmds = append(cmds, m.startFrames())
	}
	return tea.Batch(cmds...)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case frameMsg:
		return m, m.frame()

	case effectEndMsg:
		if msg.seq == m.effectSeq && m.egg.Active() {
			m.egg.Deactivate()
			m.setHue(0)
			m.log.Debugw("easter egg finished")
		}
		return m, nil

	case tea.FocusMsg:
		m.focused = true
		m.rain.SetOpacity(m.opts.VisibleOpacity)
		return m, nil

	case tea.BlurMsg:
		m.focused = false
		m.rain.SetOpacity(m.opts.HiddenOpacity)
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlD {
			return m, tea.Quit
		}
		var cmds []tea.Cmd
		if m.egg.Feed(msg.String()) {
			cmds = append(cmds, m.startEffect())
		}
		cmds = append(cmds, m.console.Update(msg))
		m.syncTheme()
		return m, tea.Batch(cmds...)

	case tea.MouseMsg:
		return m, m.mouse(msg)
	}

	cmd := m.console.Update(msg)
	m.syncTheme()
	return m, cmd
}

func (m *Model) resize(w, h int) {
	m.width, m.height = w, h
	m.rain.Resize(w, h)
	m.relayout()
}

func (m *Model) relayout() {
	m.window = layout(m.width, m.height, m.rain.CellWidth(), m.maximized)
	m.console.SetSize(m.window.inner())
}

func (m *Model) mouse(msg tea.MouseMsg) tea.Cmd {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		if m.window.contains(msg.X, msg.Y) {
			return m.console.Update(msg)
		}
		return nil
	}

	switch m.window.controlAt(msg.X, msg.Y) {
	case closeControl:
		return m.console.Execute("exit")
	case minimizeControl:
		m.console.Print(console.Text(console.Info, "Window minimized (not really 😉)"))
	case maximizeControl:
		m.maximized = !m.maximized
		m.relayout()
	case themeControl:
		m.console.SetMode(m.mode.Toggle())
		m.syncTheme()
	}
	return nil
}

// syncTheme follows mode changes made by the console.
func (m *Model) syncTheme() {
	if mode := m.console.Mode(); mode != m.mode {
		m.mode = mode
		t := theme.For(mode)
		m.chrome.t = t
		m.rain.SetBackground(string(t.Background))
		m.log.Debugw("theme changed", "mode", mode.String())
	}
}

func (m *Model) startFrames() tea.Cmd {
	if m.ticking {
		return nil
	}
	m.ticking = true
	return m.opts.Scheduler(m.opts.Frame, frameMsg{})
}

func (m *Model) frame() tea.Cmd {
	if m.opts.RainEnabled {
		m.rain.Tick()
	}
	if m.egg.Active() {
		step := 360 * m.opts.Frame.Seconds() / m.opts.EggPeriod.Seconds()
		m.setHue(math.Mod(m.hue+step, 360))
	}
	if !m.opts.RainEnabled && !m.egg.Active() {
		m.ticking = false
		return nil
	}
	return m.opts.Scheduler(m.opts.Frame, frameMsg{})
}

func (m *Model) startEffect() tea.Cmd {
	m.effectSeq++
	m.log.Infow("easter egg activated", "duration", m.opts.EggDuration)
	return tea.Batch(
		m.opts.Scheduler(m.opts.EggDuration, effectEndMsg{seq: m.effectSeq}),
		m.startFrames(),
	)
}

func (m *Model) setHue(deg float64) {
	m.hue = deg
	m.chrome.hue = deg
	m.rain.SetHue(deg)
}

func (m *Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}

	win := m.chrome.frame(m.window, m.console.View())
	cw := m.rain.CellWidth()
	cols := m.rain.Columns()
	leftCols := m.window.x / cw
	rightCols := (m.window.x + m.window.w) / cw
	pad := strings.Repeat(" ", m.width-m.window.x-m.window.w-(cols-rightCols)*cw)

	rows := make([]string, m.height)
	for y := range rows {
		wy := y - m.window.y
		if wy < 0 || wy >= len(win) {
			rows[y] = m.background(y, 0, cols) + pad
			continue
		}
		rows[y] = m.background(y, 0, leftCols) + win[wy] + m.background(y, rightCols, cols) + pad
	}
	return strings.Join(rows, "\n")
}

func (m *Model) background(y, from, to int) string {
	if !m.opts.RainEnabled {
		return strings.Repeat(" ", max(to-from, 0)*m.rain.CellWidth())
	}
	return m.rain.Row(y, from, to)
}

// Run starts the full-screen program and blocks until it exits.
func Run(opts Options) error {
	p := tea.NewProgram(New(opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithReportFocus(),
	)
	_, err := p.Run()
	return err
}
