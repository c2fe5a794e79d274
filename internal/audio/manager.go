// Package audio synthesizes the platformer's sound cues with beep and plays
// them through the system speaker.
package audio

import (
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-platformer/internal/config"
)

const bufferDuration = 100 * time.Millisecond

// Manager plays cues on a shared mixer. Speaker initialization runs in the
// background; cues requested before it finishes are dropped.
type Manager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	rate        beep.SampleRate
	volume      float64
	enabled     bool
	initialized bool
	starting    bool
	logger      *log.Logger

	// Replaced in tests so no audio device is needed.
	initSpeaker func(rate beep.SampleRate, bufferSize int) error
	add         func(s beep.Streamer)
}

// New creates a manager from the audio config. It does not touch the
// speaker until Start is called.
func New(cfg config.AudioConfig, logger *log.Logger) *Manager {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	rate := cfg.SampleRate
	if rate <= 0 {
		rate = 44100
	}

	m := &Manager{
		mixer:   &beep.Mixer{},
		rate:    beep.SampleRate(rate),
		volume:  cfg.Volume,
		enabled: cfg.Enabled,
		logger:  logger,
	}
	m.initSpeaker = func(rate beep.SampleRate, bufferSize int) error {
		if err := speaker.Init(rate, bufferSize); err != nil {
			return err
		}
		speaker.Play(m.mixer)
		return nil
	}
	m.add = func(s beep.Streamer) {
		speaker.Lock()
		m.mixer.Add(s)
		speaker.Unlock()
	}
	return m
}

// Start initializes the speaker on its own goroutine and returns
// immediately. It is a no-op when audio is disabled or already started.
func (m *Manager) Start() {
	m.mu.Lock()
	if !m.enabled || m.initialized || m.starting {
		m.mu.Unlock()
		return
	}
	m.starting = true
	m.mu.Unlock()

	go func() {
		if err := m.initialize(); err != nil {
			m.logger.Warn("audio unavailable", "err", err)
		}
	}()
}

func (m *Manager) initialize() error {
	err := m.initSpeaker(m.rate, m.rate.N(bufferDuration))

	m.mu.Lock()
	defer m.mu.Unlock()
	m.starting = false
	if err != nil {
		return err
	}
	m.initialized = true
	m.logger.Debug("audio ready", "sample_rate", int(m.rate))
	return nil
}

// Ready reports whether the speaker is initialized.
func (m *Manager) Ready() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.initialized
}

// Play queues the named cue. It never blocks on the device.
func (m *Manager) Play(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	s, ok := NewCue(name, m.rate, m.volume)
	if !ok {
		m.logger.Debug("unknown sound cue", "cue", name)
		return
	}
	m.add(s)
}

// Close silences all playing cues and releases the speaker.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	m.initialized = false
}

// Nop discards every cue. It is used for SSH sessions and --mute.
type Nop struct{}

// Play does nothing.
func (Nop) Play(string) {}
