package audio

import (
	"errors"
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"

	"github.com/vovakirdan/tui-platformer/internal/config"
)

const testRate = beep.SampleRate(44100)

func drain(t *testing.T, s beep.Streamer) int {
	t.Helper()
	buf := make([][2]float64, 512)
	total := 0
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		for j := 0; j < n; j++ {
			for c := 0; c < 2; c++ {
				if buf[j][c] < -1 || buf[j][c] > 1 {
					t.Fatalf("sample %d channel %d out of range: %f", total+j, c, buf[j][c])
				}
			}
		}
		total += n
		if !ok {
			return total
		}
	}
	t.Fatal("stream did not end")
	return total
}

func TestOscillatorLength(t *testing.T) {
	for _, wave := range []WaveType{WaveSine, WaveSquare, WaveSaw, WaveNoise} {
		osc := NewOscillator(440, 100*time.Millisecond, wave, testRate)
		if got, want := drain(t, osc), testRate.N(100*time.Millisecond); got != want {
			t.Errorf("wave %d streamed %d samples, expected %d", wave, got, want)
		}
		if osc.Err() != nil {
			t.Errorf("wave %d: unexpected error %v", wave, osc.Err())
		}
	}
}

func TestSquareWaveValues(t *testing.T) {
	osc := NewOscillator(220, 50*time.Millisecond, WaveSquare, testRate)
	buf := make([][2]float64, 200)
	n, _ := osc.Stream(buf)
	for i := 0; i < n; i++ {
		if v := buf[i][0]; v != 1 && v != -1 {
			t.Fatalf("square sample %d = %f, expected ±1", i, v)
		}
	}
}

func TestEnvelopeShape(t *testing.T) {
	const total = 100 * time.Millisecond
	osc := NewOscillator(0, total, WaveSquare, testRate) // constant +1
	env := NewEnvelope(osc, total, 10*time.Millisecond, 10*time.Millisecond, testRate)

	buf := make([][2]float64, testRate.N(total))
	n, _ := env.Stream(buf)
	if n != len(buf) {
		t.Fatalf("streamed %d samples, expected %d", n, len(buf))
	}
	if buf[0][0] != 0 {
		t.Errorf("first sample = %f, expected 0 at start of attack", buf[0][0])
	}
	if mid := buf[n/2][0]; mid != 1 {
		t.Errorf("sustain sample = %f, expected 1", mid)
	}
	if last := buf[n-1][0]; last <= 0 || last > 0.01 {
		t.Errorf("last sample = %f, expected near 0 at end of release", last)
	}
}

func TestCues(t *testing.T) {
	for _, name := range []string{CueJump, CueCollect, CueDeath} {
		t.Run(name, func(t *testing.T) {
			s, ok := NewCue(name, testRate, 0.5)
			if !ok {
				t.Fatalf("NewCue(%q) not found", name)
			}
			if drain(t, s) == 0 {
				t.Error("cue produced no samples")
			}
		})
	}
	if _, ok := NewCue("fanfare", testRate, 1); ok {
		t.Error("unknown cue should not be found")
	}
}

func TestZeroVolumeIsSilent(t *testing.T) {
	s, _ := NewCue(CueJump, testRate, 0)
	buf := make([][2]float64, 256)
	n, _ := s.Stream(buf)
	for i := 0; i < n; i++ {
		if buf[i] != [2]float64{} {
			t.Fatalf("sample %d = %v, expected silence", i, buf[i])
		}
	}
}

func newTestManager(enabled bool, initErr error) (*Manager, *int) {
	m := New(config.AudioConfig{Enabled: enabled, Volume: 0.5, SampleRate: 44100}, log.New(io.Discard))
	added := 0
	m.initSpeaker = func(beep.SampleRate, int) error { return initErr }
	m.add = func(beep.Streamer) { added++ }
	return m, &added
}

func waitReady(m *Manager) bool {
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if m.Ready() {
			return true
		}
		time.Sleep(time.Millisecond)
	}
	return false
}

func TestManagerDropsCuesBeforeReady(t *testing.T) {
	m, added := newTestManager(true, nil)

	m.Play(CueJump)
	if *added != 0 {
		t.Fatalf("cue played before Start: %d", *added)
	}

	m.Start()
	if !waitReady(m) {
		t.Fatal("manager never became ready")
	}

	m.Play(CueJump)
	m.Play(CueCollect)
	m.Play("unknown")
	if *added != 2 {
		t.Errorf("added = %d, expected 2", *added)
	}
}

func TestManagerDisabled(t *testing.T) {
	m, added := newTestManager(false, nil)
	m.Start()
	time.Sleep(10 * time.Millisecond)

	if m.Ready() {
		t.Fatal("disabled manager should never become ready")
	}
	m.Play(CueDeath)
	if *added != 0 {
		t.Errorf("disabled manager played %d cues", *added)
	}
}

func TestManagerInitFailure(t *testing.T) {
	m, added := newTestManager(true, errors.New("no device"))
	if err := m.initialize(); err == nil {
		t.Fatal("expected init error")
	}
	if m.Ready() {
		t.Fatal("manager should not be ready after failed init")
	}
	m.Play(CueJump)
	if *added != 0 {
		t.Errorf("played %d cues after failed init", *added)
	}
}

func TestNop(t *testing.T) {
	Nop{}.Play(CueJump)
}
