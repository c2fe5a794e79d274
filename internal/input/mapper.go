package input

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Default hold windows.
const (
	DefaultHold        = 180 * time.Millisecond
	DefaultInitialHold = 500 * time.Millisecond
)

// hold tracks one movement key. Terminals deliver repeated presses while
// a key is held but never a release, so a key counts as held until its
// window expires without another press.
type hold struct {
	until time.Time
}

func (h *hold) press(now time.Time, first, repeat time.Duration) {
	if now.Before(h.until) {
		h.until = now.Add(repeat)
		return
	}
	// Auto-repeat starts after a delay, so the first press needs a
	// longer window to bridge the gap.
	h.until = now.Add(first)
}

func (h *hold) release() {
	h.until = time.Time{}
}

func (h *hold) held(now time.Time) bool {
	return now.Before(h.until)
}

// Mapper accumulates key events between ticks. Not safe for concurrent
// use; it lives in the UI update loop.
type Mapper struct {
	keys        KeyMap
	repeat      time.Duration
	initialHold time.Duration

	left, right, jump hold
	queue             core.InputFrame

	// Set once the source has reported a release; from then on the
	// source is trusted for key-up and both directions may be held.
	releases bool
}

// NewMapper creates a mapper. Zero durations select the defaults.
func NewMapper(keys KeyMap, repeat, initialHold time.Duration) *Mapper {
	if repeat <= 0 {
		repeat = DefaultHold
	}
	if initialHold <= 0 {
		initialHold = DefaultInitialHold
	}
	initialHold = max(initialHold, repeat)
	return &Mapper{
		keys:        keys,
		repeat:      repeat,
		initialHold: initialHold,
	}
}

// KeyMap returns the mapper's bindings.
func (m *Mapper) KeyMap() KeyMap {
	return m.keys
}

// Press records a key press at time now. It returns the one-shot action
// the key maps to, or ActionNone for movement and unbound keys. Quit and
// Back are returned but not queued; they are handled by the platform.
func (m *Mapper) Press(k fmt.Stringer, now time.Time) core.Action {
	switch {
	case key.Matches(k, m.keys.Quit):
		return core.ActionQuit
	case key.Matches(k, m.keys.Back):
		return core.ActionBack
	case key.Matches(k, m.keys.Left):
		// A new key stops the terminal's repeat of the previous one.
		if !m.releases {
			m.right.release()
		}
		m.left.press(now, m.initialHold, m.repeat)
		return core.ActionNone
	case key.Matches(k, m.keys.Right):
		if !m.releases {
			m.left.release()
		}
		m.right.press(now, m.initialHold, m.repeat)
		return core.ActionNone
	case key.Matches(k, m.keys.Jump):
		repeated := m.jump.held(now)
		m.jump.press(now, m.initialHold, m.repeat)
		if repeated {
			// Holding jump does not jump again.
			return core.ActionNone
		}
		m.queue.Push(core.ActionJump)
		return core.ActionJump
	case key.Matches(k, m.keys.Pause):
		m.queue.Push(core.ActionPause)
		return core.ActionPause
	case key.Matches(k, m.keys.Restart):
		m.queue.Push(core.ActionRestart)
		return core.ActionRestart
	case key.Matches(k, m.keys.Confirm):
		m.queue.Push(core.ActionConfirm)
		return core.ActionConfirm
	}
	return core.ActionNone
}

// Release records a key release, for sources that report them.
// After the first release the mapper stops cancelling the opposite
// direction on press.
func (m *Mapper) Release(k fmt.Stringer) {
	switch {
	case key.Matches(k, m.keys.Left):
		m.releases = true
		m.left.release()
	case key.Matches(k, m.keys.Right):
		m.releases = true
		m.right.release()
	case key.Matches(k, m.keys.Jump):
		m.releases = true
		m.jump.release()
	}
}

// Frame returns the input for the next tick and drains the action queue.
func (m *Mapper) Frame(now time.Time) core.InputFrame {
	frame := core.NewInputFrame()
	frame.Held = core.Keys{
		Left:  m.left.held(now),
		Right: m.right.held(now),
		Jump:  m.jump.held(now),
	}
	for _, a := range m.queue.Actions {
		frame.Push(a)
	}
	m.queue.Actions = m.queue.Actions[:0]
	return frame
}

// Reset forgets held keys and queued actions.
func (m *Mapper) Reset() {
	m.left.release()
	m.right.release()
	m.jump.release()
	m.queue.Actions = m.queue.Actions[:0]
}
