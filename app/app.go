// Package app wires the timer, audio engine, renderer and celebration
// scene into a single tcell event loop.
package app

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/tomatick/audio"
	"github.com/lixenwraith/tomatick/celebrate"
	"github.com/lixenwraith/tomatick/config"
	"github.com/lixenwraith/tomatick/render"
	"github.com/lixenwraith/tomatick/session"
)

// tickInterval is the poll cadence for timer updates and redraws
const tickInterval = 100 * time.Millisecond

// Sound is the slice of the audio engine the app drives
type Sound interface {
	PlayCue(audio.Cue) bool
	ToggleMute() bool
	IsMuted() bool
}

// App owns the terminal session
type App struct {
	screen tcell.Screen
	sounds Sound
	timer  *session.Timer
	scene  *celebrate.Scene

	mode session.Mode

	showHelp  bool
	showInput bool
	input     string
}

// New builds an app from loaded settings. The timer starts paused on a
// work interval.
func New(screen tcell.Screen, sounds Sound, settings config.Settings) *App {
	mode := session.Manual
	if settings.AutoCycle {
		mode = session.Auto
	}

	var cues celebrate.CuePlayer
	if sounds != nil {
		cues = sounds
	}

	return &App{
		screen: screen,
		sounds: sounds,
		timer:  session.NewTimer(session.SystemClock, settings.WorkDuration, settings.BreakDuration),
		scene:  celebrate.NewScene(cues),
		mode:   mode,
	}
}

// Timer exposes the session timer, mainly for startup configuration
func (a *App) Timer() *session.Timer {
	return a.timer
}

// Run drives the event loop until the user quits
func (a *App) Run() {
	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			eventChan <- a.screen.PollEvent()
		}
	}()

	a.draw()

	for {
		select {
		case ev := <-eventChan:
			if !a.handleEvent(ev) {
				return
			}
			a.draw()

		case <-ticker.C:
			a.tick()
			a.draw()
		}
	}
}

// tick advances the timer and the celebration scene one poll step
func (a *App) tick() {
	if a.scene.Active() {
		a.scene.Update()
		return
	}

	event, completed := a.timer.Tick(a.mode)
	if completed {
		a.handleCompletion(event)
	}
	a.updateTitle()
}

func (a *App) handleCompletion(event session.Event) {
	if a.sounds != nil {
		if event.Kind == session.Work {
			a.sounds.PlayCue(audio.CueWorkComplete)
		} else {
			a.sounds.PlayCue(audio.CueBreakComplete)
		}
	}
	if event.Kind == session.Work {
		a.scene = celebrate.NewScene(a.sceneCues())
		a.scene.Start()
	}
}

func (a *App) sceneCues() celebrate.CuePlayer {
	if a.sounds == nil {
		return nil
	}
	return a.sounds
}

func (a *App) updateTitle() {
	remaining := session.FormatDuration(a.timer.Remaining())
	a.screen.SetTitle(fmt.Sprintf("%s %s - Tomatick", remaining, a.timer.Kind()))
}

func (a *App) draw() {
	if a.scene.Active() {
		a.scene.Draw(a.screen)
		return
	}

	muted := false
	if a.sounds != nil {
		muted = a.sounds.IsMuted()
	}

	render.Draw(a.screen, render.State{
		TimeText:  session.FormatDuration(a.timer.Remaining()),
		Progress:  a.timer.Progress(),
		Kind:      a.timer.Kind(),
		Mode:      a.mode,
		Running:   a.timer.IsRunning(),
		Completed: a.timer.Completed(),
		Muted:     muted,
		ShowHelp:  a.showHelp,
		ShowInput: a.showInput,
		Input:     a.input,
	})
}
