package audio

import (
	"math"
	"testing"
)

func TestWaveSamplesStayInRange(t *testing.T) {
	s := NewSynth(440)
	for w := Wave(0); w < 5; w++ {
		s.SetWave(w)
		buf := make([][2]float64, 256)
		n, ok := s.Stream(buf)
		if !ok || n != len(buf) {
			t.Fatalf("%s: stream returned n=%d ok=%v", w, n, ok)
		}
		for i, frame := range buf {
			if math.Abs(frame[0]) > 1 || frame[0] != frame[1] {
				t.Fatalf("%s: frame %d out of range or unbalanced: %v", w, i, frame)
			}
		}
	}
}

func TestSquareWaveEdges(t *testing.T) {
	cases := []struct {
		p    float64
		want float64
	}{
		{0, 1},
		{0.25, 1},
		{0.5, -1},
		{0.99, -1},
	}
	for _, tc := range cases {
		if got := Square.Sample(tc.p, nil); got != tc.want {
			t.Errorf("Square.Sample(%v) = %v, want %v", tc.p, got, tc.want)
		}
	}
}

func TestTriangleWaveIsContinuousAtHalf(t *testing.T) {
	lo := Triangle.Sample(0.4999, nil)
	hi := Triangle.Sample(0.5001, nil)
	if math.Abs(lo-hi) > 0.01 {
		t.Fatalf("triangle jumps at p=0.5: %v vs %v", lo, hi)
	}
}

func TestSynthPhaseWraps(t *testing.T) {
	s := NewSynth(float64(SampleRate)) // one full cycle per sample
	buf := make([][2]float64, 1000)
	s.Stream(buf)
	s.mu.Lock()
	phase := s.phase
	s.mu.Unlock()
	if phase < 0 || phase >= 1 {
		t.Fatalf("phase = %v, want [0,1)", phase)
	}
}

func TestTapSnapshotOldestFirst(t *testing.T) {
	src := &countStreamer{}
	tp := newTap(src, 4)

	buf := make([][2]float64, 6) // overruns the ring, keeps 3..6
	tp.Stream(buf)

	got := tp.snapshot(4)
	want := []float64{3, 4, 5, 6}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("snapshot = %v, want %v", got, want)
		}
	}

	if short := tp.snapshot(2); short[0] != 5 || short[1] != 6 {
		t.Fatalf("snapshot(2) = %v, want [5 6]", short)
	}
}

func TestTapSnapshotClampsToRingSize(t *testing.T) {
	tp := newTap(&countStreamer{}, 4)
	if got := tp.snapshot(10); len(got) != 4 {
		t.Fatalf("snapshot len = %d, want 4", len(got))
	}
}

// countStreamer emits 1, 2, 3, ... on the left channel.
type countStreamer struct{ n float64 }

func (c *countStreamer) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		c.n++
		samples[i][0] = c.n
		samples[i][1] = c.n
	}
	return len(samples), true
}

func (c *countStreamer) Err() error { return nil }
