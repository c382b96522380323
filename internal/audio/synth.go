// Package audio synthesizes the waveform demo's sound. A Synth streams
// the selected wave shape through the speaker, and a ring-buffer tap
// records recently played samples so the renderer and the spectrum
// analyzer draw from what is actually audible.
package audio

import (
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const SampleRate = beep.SampleRate(44100)

// Wave is a synthesizer wave shape.
type Wave int

const (
	Sine Wave = iota
	Saw
	Square
	Triangle
	Noise
)

var waveNames = [...]string{"sine", "saw", "square", "triangle", "noise"}

func (w Wave) String() string { return waveNames[w] }

func (w Wave) Next() Wave { return (w + 1) % 5 }

// Sample evaluates the wave at phase p in [0,1).
func (w Wave) Sample(p float64, rng *rand.Rand) float64 {
	switch w {
	case Saw:
		return 2*p - 1
	case Square:
		if p < 0.5 {
			return 1
		}
		return -1
	case Triangle:
		if p < 0.5 {
			return 4*p - 1
		}
		return 3 - 4*p
	case Noise:
		return rng.Float64()*2 - 1
	default:
		return math.Sin(2 * math.Pi * p)
	}
}

// Synth is a monophonic oscillator implementing beep.Streamer.
// Parameter setters are safe to call from the frame loop while the
// speaker goroutine streams.
type Synth struct {
	mu     sync.Mutex
	wave   Wave
	freq   float64
	volume float64
	phase  float64
	rng    *rand.Rand
}

func NewSynth(freq float64) *Synth {
	return &Synth{
		freq:   freq,
		volume: 0.25,
		rng:    rand.New(rand.NewSource(1)),
	}
}

func (s *Synth) SetWave(w Wave) {
	s.mu.Lock()
	s.wave = w
	s.mu.Unlock()
}

func (s *Synth) SetFreq(hz float64) {
	s.mu.Lock()
	s.freq = hz
	s.mu.Unlock()
}

func (s *Synth) SetVolume(v float64) {
	s.mu.Lock()
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	s.volume = v
	s.mu.Unlock()
}

func (s *Synth) Stream(samples [][2]float64) (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	step := s.freq / float64(SampleRate)
	for i := range samples {
		v := s.wave.Sample(s.phase, s.rng) * s.volume
		samples[i][0] = v
		samples[i][1] = v
		s.phase += step
		if s.phase >= 1 {
			s.phase -= 1
		}
	}
	return len(samples), true
}

func (s *Synth) Err() error { return nil }

// tap records the last N played samples into a ring buffer.
type tap struct {
	src  beep.Streamer
	mu   sync.RWMutex
	ring []float64
	next int
}

func newTap(src beep.Streamer, size int) *tap {
	return &tap{src: src, ring: make([]float64, size)}
}

func (t *tap) Stream(samples [][2]float64) (int, bool) {
	n, ok := t.src.Stream(samples)
	if n > 0 {
		t.mu.Lock()
		for i := 0; i < n; i++ {
			t.ring[t.next] = samples[i][0]
			t.next++
			if t.next >= len(t.ring) {
				t.next = 0
			}
		}
		t.mu.Unlock()
	}
	return n, ok
}

func (t *tap) Err() error { return t.src.Err() }

// snapshot copies the most recent n mono samples, oldest first.
func (t *tap) snapshot(n int) []float64 {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if n > len(t.ring) {
		n = len(t.ring)
	}
	out := make([]float64, n)
	idx := t.next - n
	for i := 0; i < n; i++ {
		out[i] = t.ring[(idx+i+len(t.ring))%len(t.ring)]
	}
	return out
}

// Engine owns the speaker and the single synth voice.
type Engine struct {
	Synth *Synth
	ctrl  *beep.Ctrl
	tap   *tap
	on    bool
}

func NewEngine() *Engine {
	syn := NewSynth(220)
	t := newTap(syn, 8192)
	return &Engine{
		Synth: syn,
		tap:   t,
		ctrl:  &beep.Ctrl{Streamer: t, Paused: true},
	}
}

// Start initializes the speaker and begins streaming, paused.
func (e *Engine) Start() error {
	if err := speaker.Init(SampleRate, SampleRate.N(time.Millisecond*60)); err != nil {
		return err
	}
	speaker.Play(e.ctrl)
	return nil
}

// Toggle flips audible output and reports the new state.
func (e *Engine) Toggle() bool {
	e.on = !e.on
	speaker.Lock()
	e.ctrl.Paused = !e.on
	speaker.Unlock()
	return e.on
}

func (e *Engine) Playing() bool { return e.on }

// Samples returns the last n played mono samples. Before any audio has
// streamed the ring is silent, which renders as a flat line.
func (e *Engine) Samples(n int) []float64 {
	return e.tap.snapshot(n)
}

// Close silences the voice. Safe to call whether or not Start ran.
func (e *Engine) Close() {
	e.on = false
	speaker.Lock()
	e.ctrl.Paused = true
	speaker.Unlock()
}
