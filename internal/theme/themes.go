package theme

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Mode is the visual theme flag toggled by the theme command.
type Mode int

const (
	Dark Mode = iota
	Light
)

func (m Mode) String() string {
	if m == Light {
		return "light"
	}
	return "dark"
}

// Toggle returns the other mode.
func (m Mode) Toggle() Mode {
	if m == Light {
		return Dark
	}
	return Light
}

// ParseMode accepts "dark" or "light" in any case.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "dark":
		return Dark, nil
	case "light":
		return Light, nil
	}
	return Dark, fmt.Errorf("theme: unknown mode %q", s)
}

// Theme defines the colour scheme for the console window and transcript.
type Theme struct {
	Name       string
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Accent     lipgloss.Color
	Background lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Border     lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	Error      lipgloss.Color

	// window control dots
	Close    lipgloss.Color
	Minimize lipgloss.Color
	Maximize lipgloss.Color
}

var (
	ThemeDark = Theme{
		Name:       "dark",
		Primary:    lipgloss.Color("#8a52ff"), // violet
		Secondary:  lipgloss.Color("#00d9ff"), // cyan
		Accent:     lipgloss.Color("#00ff88"), // green
		Background: lipgloss.Color("#0a0118"),
		Text:       lipgloss.Color("#e4defc"),
		Muted:      lipgloss.Color("#6b6488"),
		Border:     lipgloss.Color("#3d2a6e"),
		Success:    lipgloss.Color("#00ff88"),
		Warning:    lipgloss.Color("#ffb86c"),
		Error:      lipgloss.Color("#ff5c8a"),
		Close:      lipgloss.Color("#ff5f57"),
		Minimize:   lipgloss.Color("#febc2e"),
		Maximize:   lipgloss.Color("#28c840"),
	}

	ThemeLight = Theme{
		Name:       "light",
		Primary:    lipgloss.Color("#6a32df"),
		Secondary:  lipgloss.Color("#0086a8"),
		Accent:     lipgloss.Color("#00a35a"),
		Background: lipgloss.Color("#f4f1ff"),
		Text:       lipgloss.Color("#1c1233"),
		Muted:      lipgloss.Color("#8a83a6"),
		Border:     lipgloss.Color("#b9a8ea"),
		Success:    lipgloss.Color("#00874f"),
		Warning:    lipgloss.Color("#b05e00"),
		Error:      lipgloss.Color("#cf1f4f"),
		Close:      lipgloss.Color("#ff5f57"),
		Minimize:   lipgloss.Color("#febc2e"),
		Maximize:   lipgloss.Color("#28c840"),
	}
)

// For returns the theme for a mode.
func For(m Mode) Theme {
	if m == Light {
		return ThemeLight
	}
	return ThemeDark
}
