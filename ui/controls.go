package ui

import "github.com/gdamore/tcell/v2"

// ControlsHelp is the one-line key legend shown under the chart.
const ControlsHelp = "[space] pause  [+/=] faster  [-] slower  [r] reset  [s] snapshot  [q] quit"

// KeyAction decodes a key event into a driver action.
func KeyAction(ev *tcell.EventKey) Action {
	return keyAction(ev.Key(), ev.Rune())
}

func keyAction(key tcell.Key, ch rune) Action {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit
	case tcell.KeyRune:
	default:
		return ActionNone
	}

	switch ch {
	case ' ':
		return ActionPause
	case '+', '=':
		return ActionFaster
	case '-':
		return ActionSlower
	case 'r', 'R':
		return ActionReset
	case 's', 'S':
		return ActionSave
	case 'q', 'Q':
		return ActionQuit
	default:
		return ActionNone
	}
}
