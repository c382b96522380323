package main

import (
	"math"
	"testing"
)

func TestBenchRejectsNonPositiveFrames(t *testing.T) {
	defer func(f int) { frames = f }(frames)
	for _, n := range []int{0, -5} {
		frames = n
		if err := benchScene(nil, []string{"plasma"}); err == nil {
			t.Fatalf("frames=%d: expected error", n)
		}
	}
}

func TestDownsampleAverages(t *testing.T) {
	data := []float64{1, 1, 3, 3, 5, 5}
	got := downsample(data, 3)
	want := []float64{1, 3, 5}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-9 {
			t.Fatalf("downsample = %v, want %v", got, want)
		}
	}

	short := []float64{1, 2}
	if out := downsample(short, 10); len(out) != 2 {
		t.Fatalf("short input resized to %d", len(out))
	}
}
