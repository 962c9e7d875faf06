package audio

import "time"

const (
	ms = time.Millisecond
)

// workCompleteCue is a short descending chime marking the end of a work
// interval: four octaves of A, top to bottom.
var workCompleteCue = []Tone{
	{noteA6, 100 * ms},
	{noteA5, 100 * ms},
	{noteA4, 150 * ms},
	{noteA3, 200 * ms},
}

// breakCompleteCue is the end-of-break sequence: an ascending
// notification arpeggio followed by a four-phrase wake-up melody,
// queued as one gapless sequence.
var breakCompleteCue = []Tone{
	// Notification
	{noteA3, 150 * ms},
	{noteA4, 150 * ms},
	{noteA5, 150 * ms},
	{noteA6, 300 * ms},
	Rest(300 * ms),
	// Phrase 1 - gentle wake-up
	{noteC5, 300 * ms},
	{noteD5, 300 * ms},
	{noteE5, 300 * ms},
	{noteF5, 400 * ms},
	Rest(100 * ms),
	// Phrase 2 - building energy
	{noteG5, 300 * ms},
	{noteA5, 300 * ms},
	{noteB5, 300 * ms},
	{noteC6, 500 * ms},
	Rest(200 * ms),
	// Phrase 3 - descending comfort
	{noteC6, 250 * ms},
	{noteB5, 250 * ms},
	{noteA5, 250 * ms},
	{noteG5, 250 * ms},
	{noteF5, 300 * ms},
	{noteE5, 400 * ms},
	Rest(150 * ms),
	// Phrase 4 - motivational ending
	{noteC5, 200 * ms},
	{noteE5, 200 * ms},
	{noteG5, 200 * ms},
	{noteC6, 300 * ms},
	{noteD6, 200 * ms},
	{noteE6, 600 * ms},
}

// themeCue is the celebration theme, a simplified rendition of the
// classic platformer opening riff.
var themeCue = []Tone{
	{noteE5, 150 * ms},
	{noteE5, 150 * ms},
	Rest(150 * ms),
	{noteE5, 150 * ms},
	Rest(150 * ms),
	{noteC5, 150 * ms},
	{noteE5, 150 * ms},
	Rest(150 * ms),
	{noteG5, 150 * ms},
	Rest(450 * ms),
	{noteG4, 150 * ms},
	Rest(450 * ms),
	{noteC5, 150 * ms},
	Rest(300 * ms),
	{noteG4, 150 * ms},
	Rest(300 * ms),
	{noteE4, 150 * ms},
	Rest(300 * ms),
	{noteA4, 150 * ms},
	Rest(150 * ms),
	{noteB4, 150 * ms},
	Rest(150 * ms),
	{noteAs4, 150 * ms},
	{noteA4, 150 * ms},
	Rest(150 * ms),
	{noteG4, 200 * ms},
	{noteE5, 200 * ms},
	{noteG5, 200 * ms},
	{noteA5, 150 * ms},
	Rest(150 * ms),
	{noteF5, 150 * ms},
	{noteG5, 150 * ms},
	Rest(150 * ms),
	{noteE5, 150 * ms},
	Rest(150 * ms),
	{noteC5, 150 * ms},
	{noteD5, 150 * ms},
	{noteB4, 150 * ms},
	Rest(300 * ms),
}

// jumpCue accompanies the celebration sprite leaving the ground
var jumpCue = []Tone{
	{noteC5, 100 * ms},
	{noteE5, 100 * ms},
}

// brickBreakCue marks the brick row bursting
var brickBreakCue = []Tone{
	{noteC6, 80 * ms},
	Rest(20 * ms),
	{noteD6, 80 * ms},
	Rest(20 * ms),
	{noteE6, 120 * ms},
}

// powerUpCue is the rising run when the tomato pops
var powerUpCue = []Tone{
	{noteG4, 100 * ms},
	{noteC5, 100 * ms},
	{noteE5, 100 * ms},
	{noteG5, 100 * ms},
	{noteC6, 100 * ms},
	{noteE6, 300 * ms},
}

// Sequence returns the tone table for a cue, nil for unknown cues
func (c Cue) Sequence() []Tone {
	switch c {
	case CueWorkComplete:
		return workCompleteCue
	case CueBreakComplete:
		return breakCompleteCue
	case CueTheme:
		return themeCue
	case CueJump:
		return jumpCue
	case CueBrickBreak:
		return brickBreakCue
	case CuePowerUp:
		return powerUpCue
	default:
		return nil
	}
}

// transient reports whether a cue belongs on the effects channel
// rather than the melody channel
func (c Cue) transient() bool {
	switch c {
	case CueJump, CueBrickBreak, CuePowerUp:
		return true
	default:
		return false
	}
}
