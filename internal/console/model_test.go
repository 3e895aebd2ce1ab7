package console_test

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sirilv/termfolio/internal/console"
	"github.com/sirilv/termfolio/internal/theme"
)

var _ = Describe("Model", func() {
	var (
		clk *clock
		m   *console.Model
	)

	BeforeEach(func() {
		clk = &clock{}
		m = console.New(testRegistry(),
			console.WithScheduler(clk.schedule),
			console.WithPrompt(console.Prompt{User: "sirilv", Host: "cachyos", Path: "~"}),
		)
		m.SetSize(80, 20)
	})

	submit := func(s string) {
		m.SetInput(s)
		m.Update(key(tea.KeyEnter))
		clk.drain(m)
	}

	Describe("submitting", func() {
		It("turns empty input into a blank line", func() {
			submit("")
			submit("   \t ")
			lines := m.Transcript()
			Expect(lines).To(HaveLen(2))
			Expect(texts(lines)).To(Equal([]string{"", ""}))
			Expect(m.History()).To(BeEmpty())
		})

		It("echoes the command and runs its handler", func() {
			submit("  hello  ")
			lines := m.Transcript()
			Expect(lines).To(HaveLen(2))
			Expect(lines[0].Kind).To(Equal(console.KindEcho))
			Expect(lines[0].String()).To(Equal("sirilv@cachyos ~ ❯ hello"))
			Expect(lines[1].String()).To(Equal("hi"))
			Expect(m.History()).To(Equal([]string{"hello"}))
			Expect(m.Input()).To(BeEmpty())
			Expect(m.State()).To(Equal(console.Idle))
		})

		It("matches command names in any case", func() {
			for _, name := range []string{"HELP", "Help", "hElP"} {
				submit(name)
			}
			Expect(errorLines(m.Transcript())).To(BeEmpty())
		})

		It("prints exactly one error line for unknown commands", func() {
			submit("frobnicate --now")
			errs := errorLines(m.Transcript())
			Expect(errs).To(HaveLen(1))
			Expect(errs[0].String()).To(Equal("Command not found: frobnicate"))
			Expect(m.Transcript()[2].String()).To(Equal("Type 'help' for available commands."))
			Expect(m.State()).To(Equal(console.Idle))

			submit("hello")
			Expect(m.Transcript()[len(m.Transcript())-1].String()).To(Equal("hi"))
		})

		It("strips terminal escapes from echoed and quoted input", func() {
			m.Submit("\x1b[31mevil\x1b[0m")
			clk.drain(m)
			lines := m.Transcript()
			Expect(lines[0].String()).To(Equal("sirilv@cachyos ~ ❯ evil"))
			Expect(errorLines(lines)[0].String()).To(Equal("Command not found: evil"))
		})

		It("clears the whole transcript", func() {
			submit("help")
			submit("hello")
			Expect(len(m.Transcript())).To(BeNumerically(">", 3))
			submit("clear")
			Expect(m.Transcript()).To(BeEmpty())
		})

		It("produces identical blocks for repeated commands", func() {
			submit("help")
			first := m.Transcript()
			submit("help")
			second := m.Transcript()[len(first):]
			Expect(second).To(Equal(first))
		})

		It("executes without echo or history", func() {
			m.Execute("hello")
			Expect(texts(m.Transcript())).To(Equal([]string{"hi"}))
			Expect(m.History()).To(BeEmpty())
		})
	})

	Describe("history", func() {
		BeforeEach(func() {
			submit("help")
			submit("hello")
			submit("echo x")
		})

		It("walks back and clamps at the oldest entry", func() {
			var seen []string
			for i := 0; i < 4; i++ {
				m.Update(key(tea.KeyUp))
				seen = append(seen, m.Input())
			}
			Expect(seen).To(Equal([]string{"echo x", "hello", "help", "help"}))
		})

		It("walks forward and clears past the newest entry", func() {
			m.Update(key(tea.KeyUp))
			m.Update(key(tea.KeyUp))
			m.Update(key(tea.KeyUp))

			m.Update(key(tea.KeyDown))
			Expect(m.Input()).To(Equal("hello"))
			m.Update(key(tea.KeyDown))
			Expect(m.Input()).To(Equal("echo x"))
			m.Update(key(tea.KeyDown))
			Expect(m.Input()).To(BeEmpty())
			m.Update(key(tea.KeyDown))
			Expect(m.Input()).To(BeEmpty())
		})

		It("resets the cursor after each submission", func() {
			m.Update(key(tea.KeyUp))
			m.Update(key(tea.KeyUp))
			submit("hello")
			m.Update(key(tea.KeyUp))
			Expect(m.Input()).To(Equal("hello"))
		})
	})

	Describe("autocomplete", func() {
		It("replaces the input on a single match", func() {
			m.SetInput("SL")
			m.Update(key(tea.KeyTab))
			Expect(m.Input()).To(Equal("slow"))
			Expect(m.Transcript()).To(BeEmpty())
		})

		It("lists several matches and keeps the input", func() {
			m.SetInput("he")
			m.Update(key(tea.KeyTab))
			Expect(m.Input()).To(Equal("he"))
			Expect(texts(m.Transcript())).To(Equal([]string{"help  hello", ""}))
		})

		It("does nothing without matches", func() {
			m.SetInput("zz")
			m.Update(key(tea.KeyTab))
			Expect(m.Input()).To(Equal("zz"))
			Expect(m.Transcript()).To(BeEmpty())
		})
	})

	Describe("typewriter", func() {
		It("reveals one rune per tick and ignores keys meanwhile", func() {
			m.SetInput("slow")
			m.Update(key(tea.KeyEnter))
			Expect(m.State()).To(Equal(console.Typing))

			last := 0
			for m.State() == console.Typing {
				lines := m.Transcript()
				n := lines[len(lines)-1].Len()
				Expect(n).To(BeNumerically(">=", last))
				last = n

				m.Update(runes("x"))
				m.Update(key(tea.KeyEnter))
				Expect(m.Input()).To(BeEmpty())

				Expect(clk.step(m)).To(BeTrue())
			}

			Expect(last).To(Equal(len("typed")))
			Expect(texts(m.Transcript())).To(Equal([]string{"sirilv@cachyos ~ ❯ slow", "typed"}))
			Expect(m.History()).To(Equal([]string{"slow"}))
			for _, d := range clk.delays {
				Expect(d).To(Equal(10 * time.Millisecond))
			}
			Expect(clk.delays).To(HaveLen(len("typed")))
		})

		It("keeps span classes while revealing", func() {
			line := console.Join(console.S(console.Info, "ab"), console.S(console.Error, "cd"))
			m.Start(console.Type{Line: line, Delay: time.Millisecond})
			clk.step(m)
			clk.step(m)
			partial := m.Transcript()[0]
			Expect(partial.String()).To(Equal("abc"))
			Expect(partial.HasClass(console.Error)).To(BeTrue())
			clk.drain(m)
			Expect(m.Transcript()[0]).To(Equal(line))
		})

		It("runs queued scripts after the current one", func() {
			m.Start(console.Type{Line: console.Text(console.Plain, "one"), Delay: time.Millisecond})
			m.Start(console.Print{Line: console.Text(console.Plain, "two")})
			Expect(texts(m.Transcript())).To(Equal([]string{"o"}))
			clk.drain(m)
			Expect(texts(m.Transcript())).To(Equal([]string{"one", "two"}))
			Expect(m.State()).To(Equal(console.Idle))
		})
	})

	Describe("pauses", func() {
		It("holds the console in the executing state until resumed", func() {
			m.SetInput("wait")
			m.Update(key(tea.KeyEnter))
			Expect(m.State()).To(Equal(console.Executing))
			Expect(texts(m.Transcript())).To(Equal([]string{"sirilv@cachyos ~ ❯ wait", "start"}))

			clk.drain(m)
			Expect(m.State()).To(Equal(console.Idle))
			Expect(texts(m.Transcript())[2]).To(Equal("done"))
			Expect(clk.delays).To(Equal([]time.Duration{50 * time.Millisecond}))
		})

		It("accepts input during a pause and runs it afterwards", func() {
			m.SetInput("wait")
			m.Update(key(tea.KeyEnter))
			Expect(m.State()).To(Equal(console.Executing))

			m.Update(runes("hello"))
			Expect(m.Input()).To(Equal("hello"))
			m.Update(key(tea.KeyEnter))
			Expect(m.History()).To(Equal([]string{"wait", "hello"}))
			Expect(texts(m.Transcript())).To(Equal([]string{"sirilv@cachyos ~ ❯ wait", "start"}))

			m.Update(key(tea.KeyCtrlC))
			Expect(texts(m.Transcript())).To(HaveLen(2))

			clk.drain(m)
			Expect(texts(m.Transcript())).To(Equal([]string{
				"sirilv@cachyos ~ ❯ wait",
				"start",
				"done",
				"sirilv@cachyos ~ ❯ hello",
				"hi",
				"^C",
				"",
			}))
			Expect(m.State()).To(Equal(console.Idle))
		})
	})

	Describe("chords", func() {
		It("interrupts the input line without submitting", func() {
			m.SetInput("half typed")
			m.Update(key(tea.KeyCtrlC))
			Expect(texts(m.Transcript())).To(Equal([]string{"^C", ""}))
			Expect(m.Input()).To(BeEmpty())
			Expect(m.History()).To(BeEmpty())
		})

		It("clears the screen", func() {
			submit("help")
			m.Update(key(tea.KeyCtrlL))
			Expect(m.Transcript()).To(BeEmpty())
		})

		It("types ordinary keys into the input", func() {
			m.Update(runes("he"))
			m.Update(runes("y"))
			Expect(m.Input()).To(Equal("hey"))
		})
	})

	Describe("program effects", func() {
		It("quits after the goodbye line", func() {
			submit("bye")
			Expect(m.Quitting()).To(BeTrue())
			Expect(texts(m.Transcript())[1]).To(Equal("bye"))
		})

		It("toggles the theme mode", func() {
			Expect(m.Mode()).To(Equal(theme.Dark))
			submit("theme")
			Expect(m.Mode()).To(Equal(theme.Light))
			Expect(texts(m.Transcript())[1]).To(Equal("now light"))
			submit("theme")
			Expect(m.Mode()).To(Equal(theme.Dark))
		})

		It("renders the prompt and input in its view", func() {
			m.SetInput("abc")
			Expect(m.View()).To(ContainSubstring("abc"))
			Expect(m.View()).To(ContainSubstring("sirilv"))
		})
	})
})
