// SPDX-License-Identifier: EPL-2.0

package waveform

import (
	"math"
	"math/rand"
	"testing"
)

func TestSignedRMS(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		bucket []float64
		want   float64
	}{
		{
			name:   "empty bucket",
			bucket: nil,
			want:   0,
		},
		{
			name:   "all zero",
			bucket: []float64{0, 0, 0},
			want:   0,
		},
		{
			name:   "positive bucket",
			bucket: []float64{0.0, 0.5},
			want:   math.Sqrt(0.125),
		},
		{
			name:   "negative bucket",
			bucket: []float64{-0.5, -0.5},
			want:   -0.5,
		},
		{
			// Balanced polarity collapses to zero whatever the energy.
			name:   "balanced signs",
			bucket: []float64{0.3, -0.3},
			want:   0,
		},
		{
			name:   "balanced signs high energy",
			bucket: []float64{-0.5, 1.0},
			want:   0,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := SignedRMS(tt.bucket)
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("SignedRMS(%v) = %v, want %v", tt.bucket, got, tt.want)
			}
		})
	}
}

func TestReduce_Identity(t *testing.T) {
	t.Parallel()

	samples := []float64{0.1, -0.2, 0.3, -0.4}

	tests := []struct {
		name   string
		target int
	}{
		{name: "target larger than input", target: 10},
		{name: "target equals input", target: 4},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Reduce(samples, tt.target)

			if len(got) != len(samples) {
				t.Fatalf("Reduce() returned %d points, want %d (identity)", len(got), len(samples))
			}

			for i := range samples {
				if got[i] != samples[i] {
					t.Errorf("got[%d] = %v, want %v unchanged", i, got[i], samples[i])
				}
			}
		})
	}
}

func TestReduce_ConcreteScenario(t *testing.T) {
	t.Parallel()

	// Two buckets of two samples each.
	samples := []float64{0.0, 0.5, -0.5, 1.0}

	got := Reduce(samples, 2)

	if len(got) != 2 {
		t.Fatalf("Reduce() returned %d points, want 2", len(got))
	}

	if math.Abs(got[0]-0.3535) > 1e-3 {
		t.Errorf("got[0] = %v, want ≈0.3535", got[0])
	}

	// Bucket {-0.5, 1.0} has balanced polarity, so the point is exactly 0.
	if got[1] != 0 {
		t.Errorf("got[1] = %v, want exactly 0", got[1])
	}
}

func TestReduce_NonPositiveTarget(t *testing.T) {
	t.Parallel()

	if got := Reduce([]float64{0.1, 0.2}, 0); len(got) != 0 {
		t.Errorf("Reduce(_, 0) returned %d points, want 0", len(got))
	}

	if got := Reduce([]float64{0.1, 0.2}, -3); len(got) != 0 {
		t.Errorf("Reduce(_, -3) returned %d points, want 0", len(got))
	}
}

func TestReduce_EmptyInput(t *testing.T) {
	t.Parallel()

	if got := Reduce(nil, 100); len(got) != 0 {
		t.Errorf("Reduce(nil, 100) returned %d points, want 0", len(got))
	}
}

func TestReduce_OutputLength(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(1))

	tests := []struct {
		length int
		target int
	}{
		{length: 5, target: 2},
		{length: 7, target: 3},
		{length: 100, target: 64},
		{length: 999, target: 500},
		{length: 44100, target: 800},
		{length: 44101, target: 1000},
	}

	for _, tt := range tests {
		samples := make([]float64, tt.length)
		for i := range samples {
			samples[i] = rng.Float64()*2 - 1
		}

		got := Reduce(samples, tt.target)

		if len(got) != tt.target {
			t.Errorf("Reduce(len %d, target %d) returned %d points",
				tt.length, tt.target, len(got))
		}
	}
}

func TestReduce_Bounds(t *testing.T) {
	t.Parallel()

	samples := make([]float64, 10000)
	for i := range samples {
		samples[i] = math.Sin(float64(i) / 7)
	}

	for _, p := range Reduce(samples, 333) {
		if p < -1 || p > 1 {
			t.Fatalf("reduced point %v outside [-1, 1]", p)
		}
	}
}

func TestReduce_Deterministic(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(7))

	samples := make([]float64, 12345)
	for i := range samples {
		samples[i] = rng.Float64()*2 - 1
	}

	first := Reduce(samples, 500)
	second := Reduce(samples, 500)

	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("outputs diverge at %d: %v vs %v", i, first[i], second[i])
		}
	}
}

// BenchmarkReduce reduces one second of 44.1kHz audio to 800 points.
func BenchmarkReduce(b *testing.B) {
	samples := make([]float64, 44100)
	for i := range samples {
		samples[i] = math.Sin(float64(i) / 11)
	}

	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_ = Reduce(samples, 800)
	}
}
