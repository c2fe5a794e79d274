package core

// Action is a discrete one-shot input, abstracted from physical key presses.
// Actions are queued between ticks and consumed at the next tick boundary.
type Action int

const (
	ActionNone    Action = iota
	ActionJump           // Space, W, Up - jump (press, not hold)
	ActionPause          // Esc, P - toggle pause
	ActionRestart        // R - start a new run when not playing
	ActionConfirm        // Enter - start from idle, advance after level complete
	ActionBack           // B - back to menu
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionJump:
		return "Jump"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Keys is the held-key state sampled once per tick.
type Keys struct {
	Left  bool
	Right bool
	Jump  bool
}

// InputFrame is the input for one simulation tick: the held keys at the
// tick boundary plus every action queued since the previous tick, in
// arrival order.
type InputFrame struct {
	Held    Keys
	Actions []Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Push queues an action for this frame.
func (f *InputFrame) Push(a Action) {
	f.Actions = append(f.Actions, a)
}
