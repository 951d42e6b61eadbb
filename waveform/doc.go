// SPDX-License-Identifier: EPL-2.0

// Package waveform reduces long sample sequences to a fixed number of
// display points.
//
// A rendered waveform has a fixed pixel width, typically 500-1000 points,
// while a recording easily holds millions of samples. The reduction
// assigns contiguous samples to buckets and collapses each bucket to a
// single point that keeps the bucket's perceived loudness (RMS) and its
// gross polarity (the sign of the average sample sign).
//
// # Batch Reduction
//
//	points := waveform.Reduce(samples, 800)
//
// When the input is already short enough it is returned unchanged.
//
// # Streaming Reduction
//
// StreamReducer produces the same points incrementally, holding only one
// bucket in memory. It needs to know the total sample count up front to
// place bucket boundaries; take it from the WAV header:
//
//	red := waveform.NewStreamReducer(800, hdr.SampleCount())
//	for each sample s {
//	    if point, ok := red.Push(s); ok {
//	        emit(point)
//	    }
//	}
//	if point, ok := red.Flush(); ok {
//	    emit(point)
//	}
//
// ReduceSource wires a reducer to an audio.Source directly.
//
// Batch and streaming reduction share one accumulator, so reducing the
// same sequence both ways yields bit-identical points.
package waveform
