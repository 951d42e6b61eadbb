package waveform

import "math"

// SignedRMS collapses a bucket of samples to one point: the RMS magnitude
// of the bucket carrying the sign of its average polarity. A bucket whose
// positive and negative samples balance out (mean sign zero) collapses to
// exactly 0, whatever its energy.
func SignedRMS(bucket []float64) float64 {
	if len(bucket) == 0 {
		return 0
	}

	var sumSquares, signSum float64

	for _, s := range bucket {
		sumSquares += s * s

		if s > 0 {
			signSum++
		} else if s < 0 {
			signSum--
		}
	}

	rms := math.Sqrt(sumSquares / float64(len(bucket)))

	switch {
	case signSum > 0:
		return rms
	case signSum < 0:
		return -rms
	default:
		return 0
	}
}

// Reduce compresses samples down to targetLength display points. When the
// input already fits (len(samples) <= targetLength) the samples are
// returned unchanged; otherwise exactly targetLength points come back,
// each the SignedRMS of one contiguous bucket.
//
// Reduce drives the same accumulator as StreamReducer over the slice, so
// batch and streaming reduction of the same sequence are identical bit
// for bit.
func Reduce(samples []float64, targetLength int) []float64 {
	if targetLength <= 0 {
		return nil
	}

	if len(samples) <= targetLength {
		out := make([]float64, len(samples))
		copy(out, samples)

		return out
	}

	out := make([]float64, 0, targetLength)
	red := NewStreamReducer(targetLength, len(samples))

	for _, s := range samples {
		if point, ok := red.Push(s); ok {
			out = append(out, point)
		}
	}

	if point, ok := red.Flush(); ok {
		out = append(out, point)
	}

	return out
}
