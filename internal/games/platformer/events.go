package platformer

// Event is a notification from a Session to its observers.
// The set of events is closed; observers switch on the concrete type.
type Event interface {
	platformerEvent()
}

// Observer receives session events synchronously, in emission order.
type Observer func(Event)

// HUDEvent is emitted whenever score, lives or level change.
type HUDEvent struct {
	Score int
	Lives int
	Level int
}

func (HUDEvent) platformerEvent() {}

// LevelLoadedEvent is emitted after a level has been cloned into the
// working world.
type LevelLoadedEvent struct {
	Level int
	Name  string
}

func (LevelLoadedEvent) platformerEvent() {}

// PauseChangedEvent is emitted when the session pauses or resumes.
type PauseChangedEvent struct {
	Paused bool
}

func (PauseChangedEvent) platformerEvent() {}

// LevelCompletedEvent is emitted when the last coin of a level is taken.
type LevelCompletedEvent struct {
	Score int
	Level int
}

func (LevelCompletedEvent) platformerEvent() {}

// GameOverEvent is emitted when the run ends. Completed is true when every
// level was cleared and false when the player ran out of lives.
type GameOverEvent struct {
	Score     int
	Completed bool
}

func (GameOverEvent) platformerEvent() {}
