// Package sound provides procedural audio feedback for game events.
// All effects are synthesized on the fly, no audio assets are shipped.
package sound

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
)

// Manager owns the speaker and mixes one-shot effects into it.
type Manager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewManager creates a new sound manager. Call Initialize before playing.
func NewManager() *Manager {
	return &Manager{
		mixer: &beep.Mixer{},
	}
}

// Initialize sets up the audio system. Failure leaves the manager silent,
// every Play call becomes a no-op.
func (m *Manager) Initialize() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}

	// Initialize speaker with sample rate and buffer size
	err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100))
	if err != nil {
		return err
	}

	speaker.Play(m.mixer)
	m.initialized = true
	return nil
}

// Cleanup silences the mixer. The speaker itself has no close call.
func (m *Manager) Cleanup() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}

	m.mixer.Clear()
	m.initialized = false
}

// PlayFlag plays a short blip when a flag is placed or removed.
func (m *Manager) PlayFlag() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}

	streamer := beep.Take(sampleRate.N(time.Millisecond*60), newBlipGenerator(sampleRate, 880))
	m.mixer.Add(streamer)
}

// PlayDetonation plays the explosion rumble when a mine goes off.
func (m *Manager) PlayDetonation() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}

	streamer := beep.Take(sampleRate.N(time.Millisecond*450), newExplosionGenerator(sampleRate))
	m.mixer.Add(streamer)
}

// PlayWin plays a rising two-note chime when the board is cleared.
func (m *Manager) PlayWin() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}

	streamer := beep.Take(sampleRate.N(time.Millisecond*400), newChimeGenerator(sampleRate))
	m.mixer.Add(streamer)
}

// blipGenerator generates a short single-tone blip.
type blipGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

func newBlipGenerator(sr beep.SampleRate, freq float64) *blipGenerator {
	return &blipGenerator{
		sr:   sr,
		freq: freq,
	}
}

func (g *blipGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// Fast attack, exponential fade
		envelope := math.Min(t/0.005, 1.0) * math.Exp(-t*40)
		sample := 0.2 * envelope * math.Sin(2*math.Pi*g.freq*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *blipGenerator) Err() error {
	return nil
}

// explosionGenerator generates a noisy decaying rumble.
type explosionGenerator struct {
	sr   beep.SampleRate
	pos  int
	seed int64
}

func newExplosionGenerator(sr beep.SampleRate) *explosionGenerator {
	return &explosionGenerator{
		sr:   sr,
		seed: time.Now().UnixNano(),
	}
}

func (g *explosionGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// Quick attack, slower decay
		envelope := math.Exp(-t * 7)

		// Noise for the blast body
		g.seed = (g.seed*1103515245 + 12345) & 0x7fffffff
		noise := float64(g.seed)/float64(0x7fffffff)*2 - 1

		// Low rumble underneath
		rumble := 0.35 * math.Sin(2*math.Pi*55*t)

		sample := envelope * (0.3*noise + rumble)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *explosionGenerator) Err() error {
	return nil
}

// chimeGenerator generates two rising notes with a soft envelope.
type chimeGenerator struct {
	sr  beep.SampleRate
	pos int
}

func newChimeGenerator(sr beep.SampleRate) *chimeGenerator {
	return &chimeGenerator{
		sr: sr,
	}
}

func (g *chimeGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	noteLen := g.sr.N(time.Millisecond * 200)
	for i := range samples {
		notePos := g.pos % noteLen
		t := float64(notePos) / float64(g.sr)

		// Second note a fifth above the first
		freq := 660.0
		if g.pos >= noteLen {
			freq = 990.0
		}

		envelope := math.Min(t/0.01, 1.0) * math.Exp(-t*12)
		sample := 0.18 * envelope * math.Sin(2*math.Pi*freq*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *chimeGenerator) Err() error {
	return nil
}
