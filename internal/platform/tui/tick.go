// Package tui provides the Bubble Tea integration for the platformer.
// It runs the fixed-rate tick loop, feeds key presses to the input mapper,
// paints the screen buffer with lipgloss, and serves sessions over SSH.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-platformer/internal/level"
)

// TickMsg is sent to trigger a game simulation tick. ID names the game
// model whose tick loop sent it.
type TickMsg struct {
	Time time.Time
	ID   uint64
}

var lastTickID atomic.Uint64

// nextTickID returns a fresh tick loop ID.
func nextTickID() uint64 {
	return lastTickID.Add(1)
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int, id uint64) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, ID: id}
	})
}

// LevelFileChangedMsg reports a changed level file in a watched directory.
type LevelFileChangedMsg struct {
	Path string
}

// WatchErrorMsg reports an error from the level watcher.
type WatchErrorMsg struct {
	Err error
}

// waitForLevelChange blocks on the watcher until the next event. It yields
// nil once the watcher is closed, which ends the chain.
func waitForLevelChange(w *level.Watcher) tea.Cmd {
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case path, ok := <-w.Events:
			if !ok {
				return nil
			}
			return LevelFileChangedMsg{Path: path}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			return WatchErrorMsg{Err: err}
		}
	}
}
