// SPDX-License-Identifier: EPL-2.0

package waveform

import (
	"fmt"
	"io"

	"github.com/wavescope/wavescope/audio"
)

// StreamReducer reduces a sample stream to display points incrementally,
// holding only the bucket currently being filled. totalLength is the
// number of samples the stream is expected to carry; bucket boundaries
// are computed from it, so feeding a different number of samples shifts
// the boundaries away from what a batch reduction over the true data
// would use. Callers obtain the total cheaply from the WAV header's
// data-chunk length rather than by decoding twice.
//
// A StreamReducer is single-use and not safe for concurrent use; it never
// reorders or skips samples.
type StreamReducer struct {
	ratio       float64
	passthrough bool

	bucket      []float64
	bucketIndex int
	sampleIndex int
}

// NewStreamReducer returns a reducer that maps totalLength incoming
// samples onto targetLength points. targetLength must be at least 1.
// When the stream already fits (totalLength <= targetLength) every sample
// passes through as its own point.
func NewStreamReducer(targetLength, totalLength int) *StreamReducer {
	if totalLength <= targetLength {
		return &StreamReducer{passthrough: true}
	}

	return &StreamReducer{
		ratio:  float64(totalLength) / float64(targetLength),
		bucket: make([]float64, 0, (totalLength+targetLength-1)/targetLength),
	}
}

// Push feeds the next sample. When the sample starts a new bucket, the
// finished bucket's point is returned with ok=true; at most one point is
// emitted per call.
func (r *StreamReducer) Push(s float64) (point float64, ok bool) {
	if r.passthrough {
		return s, true
	}

	targetBucket := int(float64(r.sampleIndex) / r.ratio)
	r.sampleIndex++

	if targetBucket == r.bucketIndex {
		r.bucket = append(r.bucket, s)

		return 0, false
	}

	point = SignedRMS(r.bucket)
	r.bucket = append(r.bucket[:0], s)
	r.bucketIndex = targetBucket

	return point, true
}

// Flush emits the point for the partially filled final bucket, if any.
// Call it once, after the input stream ends.
func (r *StreamReducer) Flush() (point float64, ok bool) {
	if r.passthrough || len(r.bucket) == 0 {
		return 0, false
	}

	point = SignedRMS(r.bucket)
	r.bucket = r.bucket[:0]

	return point, true
}

// ReduceSource pulls src to exhaustion and reduces it to targetLength
// points on the fly. The full sample sequence is never held in memory;
// the only blocking operation is reading from src.
func ReduceSource(src audio.Source, targetLength, totalLength int) ([]float64, error) {
	if targetLength <= 0 {
		return nil, nil
	}

	out := make([]float64, 0, min(targetLength, max(totalLength, 0)))
	red := NewStreamReducer(targetLength, totalLength)
	buf := make([]float64, 4096)

	for {
		n, err := src.ReadSamples(buf)
		for _, s := range buf[:n] {
			if point, ok := red.Push(s); ok {
				out = append(out, point)
			}
		}

		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
	}

	if point, ok := red.Flush(); ok {
		out = append(out, point)
	}

	return out, nil
}
