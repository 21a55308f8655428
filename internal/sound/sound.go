package sound

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate  = beep.SampleRate(44100)
	tapFreq     = 880.0
	tapDuration = 60 * time.Millisecond
)

// Manager owns the speaker mixer for UI feedback sounds. Initialization is
// best-effort: if the host has no audio device the manager stays silent.
type Manager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

func NewManager() *Manager {
	return &Manager{mixer: &beep.Mixer{}}
}

// Initialize opens the speaker and starts the mixer.
func (m *Manager) Initialize() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*50)); err != nil {
		return err
	}
	speaker.Play(m.mixer)
	m.initialized = true
	return nil
}

// PlayTap plays a short decaying blip when a tile becomes active.
func (m *Manager) PlayTap() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	m.mixer.Add(newTapTone(sampleRate, tapFreq, tapDuration))
}

// tapTone is a one-shot sine with an exponential decay envelope.
type tapTone struct {
	rate  beep.SampleRate
	freq  float64
	pos   int
	total int
}

func newTapTone(rate beep.SampleRate, freq float64, d time.Duration) beep.Streamer {
	return &tapTone{rate: rate, freq: freq, total: rate.N(d)}
}

func (t *tapTone) Stream(samples [][2]float64) (n int, ok bool) {
	if t.pos >= t.total {
		return 0, false
	}
	for i := range samples {
		if t.pos >= t.total {
			return i, true
		}
		phase := 2 * math.Pi * t.freq * float64(t.pos) / float64(t.rate)
		env := math.Exp(-6 * float64(t.pos) / float64(t.total))
		v := math.Sin(phase) * env * 0.35
		samples[i][0] = v
		samples[i][1] = v
		t.pos++
	}
	return len(samples), true
}

func (t *tapTone) Err() error { return nil }
