package demos

import (
	"fmt"
	"image"
	"math"
	"math/cmplx"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/mjibson/go-dsp/fft"

	"github.com/san-kum/artcade/internal/audio"
	"github.com/san-kum/artcade/internal/engine"
	"github.com/san-kum/artcade/internal/field"
	"github.com/san-kum/artcade/internal/palette"
)

const (
	spectrumBars  = 32
	spectrumChunk = 512
)

// Waveform draws layered oscillator traces with a spectrum analyzer.
// Toggling audio routes the same oscillator through the speaker and the
// trace switches to the samples actually played.
type Waveform struct {
	r        *field.Renderer
	rng      *rand.Rand
	t        float64
	wave     audio.Wave
	freq     float64
	layers   float64
	glow     bool
	mode     palette.Mode
	engine   *audio.Engine
	started  bool
	audioErr error
	spectrum [spectrumBars]float64
	chunk    []float64
}

func NewWaveform() *Waveform {
	r := field.New(engine.Width, engine.Height, 1)
	return &Waveform{
		r:      r,
		freq:   220,
		layers: 3,
		glow:   true,
		mode:   palette.Synthwave,
		engine: audio.NewEngine(),
		chunk:  make([]float64, spectrumChunk),
	}
}

func (w *Waveform) Name() string { return "waveform" }

func (w *Waveform) Reset(seed int64) {
	w.rng = rand.New(rand.NewSource(seed))
	w.t = 0
	w.r.Clear()
}

func (w *Waveform) Params() map[string]float64 {
	return map[string]float64{"freq": w.freq, "layers": w.layers}
}

func (w *Waveform) SetParam(key string, v float64) {
	switch key {
	case "freq":
		w.freq = clamp(v, 40, 2000)
		w.engine.Synth.SetFreq(w.freq)
	case "layers":
		w.layers = clamp(math.Round(v), 1, 6)
	}
}

func (w *Waveform) HandleInput() {
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) {
		w.SetParam("freq", w.freq*1.12)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDown) {
		w.SetParam("freq", w.freq/1.12)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyRight) {
		w.SetParam("layers", w.layers+1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyLeft) {
		w.SetParam("layers", w.layers-1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyW) {
		w.wave = w.wave.Next()
		w.engine.Synth.SetWave(w.wave)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		w.glow = !w.glow
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		w.mode = w.mode.Next()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyA) {
		w.toggleAudio()
	}
}

func (w *Waveform) toggleAudio() {
	if !w.started {
		if err := w.engine.Start(); err != nil {
			w.audioErr = err
			return
		}
		w.started = true
	}
	w.engine.Toggle()
}

// fillChunk produces the samples the trace and the analyzer share:
// played audio when the speaker is live, otherwise pure synthesis.
func (w *Waveform) fillChunk() {
	if w.engine.Playing() {
		copy(w.chunk, w.engine.Samples(spectrumChunk))
		return
	}
	step := w.freq / float64(audio.SampleRate)
	phase := math.Mod(w.t*w.freq, 1)
	for i := range w.chunk {
		w.chunk[i] = w.wave.Sample(phase, w.rng) * 0.8
		phase += step
		if phase >= 1 {
			phase -= 1
		}
	}
}

func (w *Waveform) updateSpectrum() {
	spec := fft.FFTReal(w.chunk)
	binsPerBar := (spectrumChunk / 2) / spectrumBars
	for b := 0; b < spectrumBars; b++ {
		sum := 0.0
		for i := 0; i < binsPerBar; i++ {
			sum += cmplx.Abs(spec[1+b*binsPerBar+i])
		}
		mag := math.Log1p(sum/float64(binsPerBar)) / 4
		// smooth toward new magnitude
		w.spectrum[b] = w.spectrum[b]*0.7 + clamp(mag, 0, 1)*0.3
	}
}

func (w *Waveform) Step(dt float64) {
	w.t += dt
	w.fillChunk()
	w.updateSpectrum()

	w.r.Fade(0.82)
	layers := int(w.layers)
	for l := 0; l < layers; l++ {
		amp := 60.0 / float64(l+1)
		speedMul := 1 + 0.35*float64(l)
		cy := engine.Height/2 - 30
		c := w.mode.Map(0.25+0.75*float64(l)/float64(layers), w.t*0.1)
		prevY := 0
		for x := 0; x < engine.Width; x++ {
			p := math.Mod(float64(x)/140*speedMul+w.t*(0.8+0.3*float64(l)), 1)
			y := cy + int(amp*w.wave.Sample(p, w.rng))
			if x > 0 {
				w.r.DrawLine(x-1, prevY, x, y, 1, c)
				if w.glow {
					w.r.AddPixel(x, y-1, palette.Scale(c, 0.35))
					w.r.AddPixel(x, y+1, palette.Scale(c, 0.35))
				}
			}
			prevY = y
		}
	}

	w.drawSpectrum()
}

func (w *Waveform) drawSpectrum() {
	barW := engine.Width / spectrumBars
	base := engine.Height - 24
	for b := 0; b < spectrumBars; b++ {
		h := int(w.spectrum[b] * 70)
		c := w.mode.Map(w.spectrum[b], 0)
		w.r.FillRect(b*barW+1, base-h, barW-2, h, c)
	}
}

func (w *Waveform) Draw(screen *ebiten.Image) {
	w.r.Draw(screen)
}

func (w *Waveform) StatusLine() string {
	audioState := "off"
	if w.audioErr != nil {
		audioState = "unavailable"
	} else if w.engine.Playing() {
		audioState = "on"
	}
	return fmt.Sprintf("wave %s  %.0fHz  layers %d  audio %s [A]  palette %s",
		w.wave, w.freq, int(w.layers), audioState, w.mode)
}

func (w *Waveform) Snapshot() *image.RGBA { return w.r.Snapshot() }

// Close silences the speaker when the launcher drops the scene.
func (w *Waveform) Close() error {
	w.engine.Close()
	return nil
}

func (w *Waveform) SetPaletteName(name string) { w.mode = palette.ByName(name) }
