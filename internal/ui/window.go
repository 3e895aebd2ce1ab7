package ui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/sirilv/termfolio/internal/theme"
)

const (
	// marginCols is the window inset in animation columns, so the window
	// edge never splits a glyph.
	marginCols = 2
	marginRows = 1

	minWindowWidth  = 24
	minWindowHeight = 8

	// title bar plus separator
	chromeRows = 2

	themeButton = "[theme]"
)

type rect struct {
	x, y, w, h int
}

func (r rect) contains(x, y int) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

type control int

const (
	noControl control = iota
	closeControl
	minimizeControl
	maximizeControl
	themeControl
)

// layout places the window on a width×height screen whose animation columns
// are cellWidth cells wide.
func layout(width, height, cellWidth int, maximized bool) rect {
	usable := width - width%cellWidth
	left, top := marginCols*cellWidth, marginRows
	if maximized || usable-2*left < minWindowWidth || height-2*top < minWindowHeight {
		left, top = 0, 0
	}
	return rect{x: left, y: top, w: usable - 2*left, h: height - 2*top}
}

// inner is the console area inside border, padding and title bar.
func (r rect) inner() (w, h int) {
	return max(r.w-4, 1), max(r.h-2-chromeRows, 2)
}

// controlAt maps a screen cell to the title bar control under it.
func (r rect) controlAt(x, y int) control {
	if y != r.y+1 {
		return noControl
	}
	switch x - r.x {
	case 2:
		return closeControl
	case 4:
		return minimizeControl
	case 6:
		return maximizeControl
	}
	end := r.x + r.w - 2
	if x >= end-len(themeButton) && x < end {
		return themeControl
	}
	return noControl
}

// rotate shifts a colour's hue by deg degrees in HCL space.
func rotate(c lipgloss.Color, deg float64) lipgloss.Color {
	if deg == 0 {
		return c
	}
	col, err := colorful.Hex(string(c))
	if err != nil {
		return c
	}
	h, ch, l := col.Hcl()
	return lipgloss.Color(colorful.Hcl(math.Mod(h+deg, 360), ch, l).Clamped().Hex())
}

type chrome struct {
	t     theme.Theme
	hue   float64
	title string
}

func (c chrome) titleBar(width int) string {
	bg := lipgloss.NewStyle().Background(c.t.Background)
	dot := func(col lipgloss.Color) string {
		return bg.Foreground(rotate(col, c.hue)).Render("●")
	}
	dots := dot(c.t.Close) + bg.Render(" ") + dot(c.t.Minimize) + bg.Render(" ") + dot(c.t.Maximize)
	button := bg.Foreground(rotate(c.t.Secondary, c.hue)).Render(themeButton)

	middle := width - lipgloss.Width(dots) - lipgloss.Width(button)
	if middle < 0 {
		return bg.Width(width).Render(dots)
	}
	title := bg.Foreground(rotate(c.t.Muted, c.hue)).Bold(true).
		Width(middle).MaxWidth(middle).Align(lipgloss.Center).
		Render(c.title)
	return dots + title + button
}

// frame renders the window as exactly r.h lines of r.w cells.
func (c chrome) frame(r rect, body string) []string {
	iw, ih := r.inner()
	bg := lipgloss.NewStyle().Background(c.t.Background)
	border := rotate(c.t.Border, c.hue)
	if c.hue != 0 {
		border = rotate(c.t.Primary, c.hue)
	}

	sep := bg.Foreground(border).Render(strings.Repeat("─", iw))
	content := lipgloss.JoinVertical(lipgloss.Left,
		c.titleBar(iw),
		sep,
		bg.Width(iw).Height(ih).MaxHeight(ih).Render(body),
	)

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		BorderBackground(c.t.Background).
		Background(c.t.Background).
		Padding(0, 1).
		Width(r.w - 2).
		MaxHeight(r.h).
		Render(content)
	return strings.Split(box, "\n")
}
