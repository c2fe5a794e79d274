package audio

import (
	"time"

	"github.com/gopxl/beep"
)

// Cue names understood by the manager.
const (
	CueJump    = "jump"
	CueCollect = "collect"
	CueDeath   = "death"
)

const (
	jumpDuration    = 120 * time.Millisecond
	collectNote1    = 70 * time.Millisecond
	collectNote2    = 220 * time.Millisecond
	deathDuration   = 450 * time.Millisecond
	cueAttack       = 5 * time.Millisecond
	jumpRelease     = 60 * time.Millisecond
	collectRelease1 = 20 * time.Millisecond
	collectRelease2 = 160 * time.Millisecond
	deathRelease    = 250 * time.Millisecond
)

// jumpSound is a short rising square chirp.
func jumpSound(rate beep.SampleRate) beep.Streamer {
	osc := NewSweep(330, 660, jumpDuration, WaveSquare, rate)
	shaped := NewEnvelope(osc, jumpDuration, cueAttack, jumpRelease, rate)
	return newVolume(shaped, 0.35)
}

// collectSound is a two-note chime (B5, E6).
func collectSound(rate beep.SampleRate) beep.Streamer {
	n1 := NewOscillator(987.77, collectNote1, WaveSine, rate)
	n1Shaped := NewEnvelope(n1, collectNote1, cueAttack, collectRelease1, rate)

	n2 := NewOscillator(1318.51, collectNote2, WaveSine, rate)
	n2Shaped := NewEnvelope(n2, collectNote2, cueAttack, collectRelease2, rate)

	return newVolume(beep.Seq(n1Shaped, n2Shaped), 0.6)
}

// deathSound is a falling saw mixed with a burst of noise.
func deathSound(rate beep.SampleRate) beep.Streamer {
	saw := NewSweep(440, 90, deathDuration, WaveSaw, rate)
	sawShaped := NewEnvelope(saw, deathDuration, cueAttack, deathRelease, rate)

	noise := NewOscillator(0, deathDuration/3, WaveNoise, rate)
	noiseShaped := NewEnvelope(noise, deathDuration/3, cueAttack, deathDuration/4, rate)

	return beep.Mix(
		newVolume(sawShaped, 0.4),
		newVolume(noiseShaped, 0.2),
	)
}

// NewCue builds the streamer for a named cue at the given master volume.
// It reports false for unknown names.
func NewCue(name string, rate beep.SampleRate, volume float64) (beep.Streamer, bool) {
	var s beep.Streamer
	switch name {
	case CueJump:
		s = jumpSound(rate)
	case CueCollect:
		s = collectSound(rate)
	case CueDeath:
		s = deathSound(rate)
	default:
		return nil, false
	}
	return newVolume(s, volume), true
}
