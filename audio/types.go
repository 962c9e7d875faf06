package audio

import (
	"errors"
	"time"
)

// Tone is one note or rest in a cue sequence.
// Freq 0 is the rest sentinel, not a degenerate oscillator.
type Tone struct {
	Freq     float64 // Hz
	Duration time.Duration
}

// Rest returns a silent tone of the given duration.
func Rest(d time.Duration) Tone {
	return Tone{Duration: d}
}

// Cue identifies a fixed tone sequence
type Cue int

const (
	CueWorkComplete  Cue = iota // Descending four-tone work chime
	CueBreakComplete            // Notification + wake-up melody
	CueTheme                    // Celebration theme melody
	CueJump                     // Celebration sprite jump
	CueBrickBreak               // Celebration brick burst
	CuePowerUp                  // Celebration tomato pop
	cueCount
)

// Sentinel errors
var (
	ErrEngineClosed  = errors.New("audio engine closed")
	ErrEngineRunning = errors.New("audio engine already running")
)
