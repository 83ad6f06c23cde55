// Package ui draws the meadow in a terminal and drives the simulation from
// keyboard input. It only reads engine state through the game package.
package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/pthm-cable/meadow/components"
	"github.com/pthm-cable/meadow/game"
)

// Theme holds the terminal styles for every drawn element.
type Theme struct {
	Empty       tcell.Style
	GrassYoung  tcell.Style
	GrassMature tcell.Style
	Rabbit      tcell.Style
	Wolf        tcell.Style

	SectionHeader tcell.Style
	Label         tcell.Style
	Value         tcell.Style
	Paused        tcell.Style
	Message       tcell.Style
	Axis          tcell.Style
}

// DefaultTheme returns the default terminal theme.
func DefaultTheme() Theme {
	base := tcell.StyleDefault
	return Theme{
		Empty:         base.Foreground(tcell.ColorGray),
		GrassYoung:    base.Foreground(tcell.ColorGreen),
		GrassMature:   base.Foreground(tcell.ColorGreen).Bold(true),
		Rabbit:        base.Foreground(tcell.ColorTeal),
		Wolf:          base.Foreground(tcell.ColorPurple),
		SectionHeader: base.Foreground(tcell.ColorYellow),
		Label:         base.Foreground(tcell.ColorSilver),
		Value:         base.Foreground(tcell.ColorWhite),
		Paused:        base.Foreground(tcell.ColorYellow).Bold(true),
		Message:       base.Foreground(tcell.ColorAqua),
		Axis:          base.Foreground(tcell.ColorGray),
	}
}

// CellStyle returns the glyph and style for one grid cell.
func (t Theme) CellStyle(v game.CellView) (rune, tcell.Style) {
	cell := components.Cell{Kind: v.Kind, Maturity: v.Maturity}
	ch := cell.Glyph()
	switch v.Kind {
	case components.KindGrass:
		if ch == 'g' {
			return ch, t.GrassYoung
		}
		return ch, t.GrassMature
	case components.KindRabbit:
		return ch, t.Rabbit
	case components.KindWolf:
		return ch, t.Wolf
	default:
		return ch, t.Empty
	}
}

// HUDData holds all the data needed to render the status block.
type HUDData struct {
	Counters game.Counters
	Peaks    game.Peaks
	DelayMS  int
	Paused   bool
	FPS      float64
}

// Action is a driver command decoded from a key press.
type Action int

const (
	ActionNone   Action = iota
	ActionPause         // Toggle pause
	ActionFaster        // Shorten the tick delay
	ActionSlower        // Lengthen the tick delay
	ActionReset         // Reset with the current setup
	ActionSave          // Write a text snapshot
	ActionQuit          // Leave the driver loop
)

// String returns the action name used in logs.
func (a Action) String() string {
	switch a {
	case ActionPause:
		return "pause"
	case ActionFaster:
		return "faster"
	case ActionSlower:
		return "slower"
	case ActionReset:
		return "reset"
	case ActionSave:
		return "save"
	case ActionQuit:
		return "quit"
	default:
		return "none"
	}
}
