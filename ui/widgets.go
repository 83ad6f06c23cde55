package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/pthm-cable/meadow/game"
)

// Renderer handles all terminal drawing with consistent styling.
type Renderer struct {
	screen tcell.Screen
	Theme  Theme
}

// NewRenderer creates a renderer with the default theme.
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen, Theme: DefaultTheme()}
}

// DrawText writes text starting at (x, y) and returns the column after it.
// Text past the right edge of the screen is dropped.
func (r *Renderer) DrawText(x, y int, text string, style tcell.Style) int {
	w, h := r.screen.Size()
	if y < 0 || y >= h {
		return x
	}
	for _, ch := range text {
		if x >= w {
			break
		}
		if x >= 0 {
			r.screen.SetContent(x, y, ch, nil, style)
		}
		x++
	}
	return x
}

// DrawLabelValue draws "label: value" on one line and returns the column
// after it.
func (r *Renderer) DrawLabelValue(x, y int, label, value string) int {
	x = r.DrawText(x, y, label+": ", r.Theme.Label)
	return r.DrawText(x, y, value, r.Theme.Value)
}

// DrawSectionHeader draws a section header and returns the new Y position.
func (r *Renderer) DrawSectionHeader(x, y int, title string) int {
	r.DrawText(x, y, title, r.Theme.SectionHeader)
	return y + 1
}

// DrawGrid draws the live grid with its top-left corner at (x, y) and
// returns the row below it.
func (r *Renderer) DrawGrid(x, y int, g *game.Game) int {
	for row := 0; row < g.Height(); row++ {
		for col := 0; col < g.Width(); col++ {
			ch, style := r.Theme.CellStyle(g.Cell(row, col))
			r.screen.SetContent(x+col, y+row, ch, nil, style)
		}
	}
	return y + g.Height()
}

// ChartRows renders population samples as a bar chart of height rows, top
// row first. Each of the width columns is one sample, oldest on the left;
// when fewer samples exist the left columns stay blank. Bars are scaled to
// the largest value seen (at least 1). Wolves are drawn over rabbits.
func ChartRows(samples []game.Sample, width, height int) []string {
	if len(samples) > width {
		samples = samples[len(samples)-width:]
	}
	pad := width - len(samples)

	maxVal := 1
	for _, s := range samples {
		maxVal = max(maxVal, s.Rabbits, s.Wolves)
	}

	rows := make([]string, height)
	line := make([]rune, width)
	for i := range rows {
		level := height - 1 - i
		for col := range line {
			line[col] = ' '
			if col < pad {
				continue
			}
			s := samples[col-pad]
			if s.Rabbits*height/maxVal > level {
				line[col] = 'r'
			}
			if s.Wolves*height/maxVal > level {
				line[col] = 'W'
			}
		}
		rows[i] = string(line)
	}
	return rows
}

// DrawChart draws the history chart with an axis line and returns the row
// below it.
func (r *Renderer) DrawChart(x, y int, samples []game.Sample, width, height int) int {
	for _, row := range ChartRows(samples, width, height) {
		cx := r.DrawText(x, y, "| ", r.Theme.Axis)
		for _, ch := range row {
			style := r.Theme.Rabbit
			if ch == 'W' {
				style = r.Theme.Wolf
			}
			r.screen.SetContent(cx, y, ch, nil, style)
			cx++
		}
		y++
	}

	axis := make([]rune, width+1)
	axis[0] = '+'
	for i := 1; i < len(axis); i++ {
		axis[i] = '-'
	}
	r.DrawText(x, y, string(axis), r.Theme.Axis)
	return y + 1
}
