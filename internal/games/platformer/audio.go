package platformer

// Sound cue names.
const (
	CueJump    = "jump"
	CueCollect = "collect"
	CueDeath   = "death"
)

// Audio plays named sound cues. Play must not block; implementations that
// are not ready yet drop the cue.
type Audio interface {
	Play(name string)
}

type silentAudio struct{}

func (silentAudio) Play(string) {}
