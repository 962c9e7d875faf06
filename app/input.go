// Key dispatch for the main view, the help popup, the custom interval
// dialog and the celebration skip.
package app

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/tomatick/celebrate"
	"github.com/lixenwraith/tomatick/session"
)

// handleEvent returns false when the app should exit
func (a *App) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.handleKey(ev)
	case *tcell.EventResize:
		a.screen.Sync()
	}
	return true
}

func (a *App) handleKey(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyCtrlC {
		return false
	}

	// Any key skips the celebration
	if a.scene.Active() {
		a.scene.Stop()
		return true
	}

	if a.showInput {
		a.handleInputKey(ev)
		return true
	}

	if a.showHelp {
		a.showHelp = false
		return true
	}

	switch ev.Key() {
	case tcell.KeyEscape:
		return false
	case tcell.KeyEnter:
		a.timer.Toggle()
		return true
	case tcell.KeyRune:
	default:
		return true
	}

	switch ev.Rune() {
	case 'w', 'W':
		a.timer.StartWork()
	case 'b', 'B':
		a.timer.StartBreak()
	case 'c', 'C':
		a.showInput = true
		a.input = ""
	case ' ':
		a.timer.Toggle()
	case 't', 'T':
		a.toggleMode()
	case 's', 'S':
		if a.sounds != nil {
			a.sounds.ToggleMute()
		}
	case 'm', 'M':
		a.scene = celebrate.NewScene(a.sceneCues())
		a.scene.Start()
	case 'x', 'X':
		a.showHelp = true
	}
	return true
}

func (a *App) toggleMode() {
	if a.mode == session.Auto {
		a.mode = session.Manual
	} else {
		a.mode = session.Auto
	}
}

// handleInputKey edits the custom interval dialog
func (a *App) handleInputKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape:
		a.closeInput()
	case tcell.KeyEnter:
		a.applyInput()
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if len(a.input) > 0 {
			a.input = a.input[:len(a.input)-1]
		}
	case tcell.KeyRune:
		r := ev.Rune()
		switch {
		case r >= '0' && r <= '9', r == ',':
			if len(a.input) < 9 {
				a.input += string(r)
			}
		case r == 'x', r == 'X':
			a.closeInput()
		}
	}
}

func (a *App) applyInput() {
	work, brk, err := session.ParseIntervals(a.input)
	if err != nil {
		// Keep the dialog open so the user can correct the input
		a.input = ""
		return
	}
	a.timer.SetDurations(work, brk)
	a.timer.StartWork()
	a.closeInput()
}

func (a *App) closeInput() {
	a.showInput = false
	a.input = ""
}

// Mode reports the current cycle mode
func (a *App) Mode() session.Mode {
	return a.mode
}
