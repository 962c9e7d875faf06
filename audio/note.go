package audio

// NoteFrequencies contains precomputed frequencies for MIDI notes 0-127
// A4 (note 69) = 440Hz, equal temperament
var NoteFrequencies = func() [128]float64 {
	var freqs [128]float64
	for i := range freqs {
		freqs[i] = 440.0 * pow2((float64(i)-69.0)/12.0)
	}
	return freqs
}()

// pow2 computes 2^x using Taylor series
func pow2(x float64) float64 {
	ln2 := 0.693147180559945
	y := x * ln2
	sum := 1.0
	term := 1.0
	for i := 1; i < 20; i++ {
		term *= y / float64(i)
		sum += term
	}
	return sum
}

// NoteFreq returns frequency in Hz for MIDI note number
func NoteFreq(midi int) float64 {
	if midi < 0 || midi >= 128 {
		return 0
	}
	return NoteFrequencies[midi]
}

// Named pitches used by the cue tables
var (
	noteA3  = NoteFreq(57) // 220.00
	noteE4  = NoteFreq(64) // 329.63
	noteG4  = NoteFreq(67) // 392.00
	noteA4  = NoteFreq(69) // 440.00
	noteAs4 = NoteFreq(70) // 466.16
	noteB4  = NoteFreq(71) // 493.88
	noteC5  = NoteFreq(72) // 523.25
	noteD5  = NoteFreq(74) // 587.33
	noteE5  = NoteFreq(76) // 659.25
	noteF5  = NoteFreq(77) // 698.46
	noteG5  = NoteFreq(79) // 783.99
	noteA5  = NoteFreq(81) // 880.00
	noteB5  = NoteFreq(83) // 987.77
	noteC6  = NoteFreq(84) // 1046.50
	noteD6  = NoteFreq(86) // 1174.66
	noteE6  = NoteFreq(88) // 1318.51
	noteA6  = NoteFreq(93) // 1760.00
)
