// SPDX-License-Identifier: EPL-2.0

// Package wavescope decodes WAV recordings and reduces them to
// fixed-width waveform data for display.
//
// The package turns a RIFF/WAVE byte buffer into a small sequence of
// normalized points that a renderer can map directly onto a canvas. It is
// the processing core behind a recording viewer; rendering, storage and
// playback live elsewhere and only consume its output.
//
// # Supported Input
//
// Linear PCM WAV only:
//   - 8, 16, 24 and 32-bit integer samples
//   - Mono and stereo (stereo is downmixed by averaging)
//   - Any sample rate
//
// # Quick Start
//
// The simplest way to get display data is Waveform:
//
//	data, _ := os.ReadFile("take.wav")
//
//	// 800 points for an 800px wide canvas
//	points, err := wavescope.Waveform(data, 800)
//
//	// points is []float64 in [-1, 1], one value per display column
//
// # Processing Pipeline
//
// For more control, compose the pipeline from the subpackages:
//
//	hdr, _ := wav.ParseHeader(data)
//
//	// Lazy mono sample stream
//	src, _ := wav.NewMonoSource(data, hdr)
//
//	// Reduce while streaming; the total comes from the header
//	points, _ := waveform.ReduceSource(src, 800, hdr.SampleCount())
//
// Each reduced point is the RMS of one bucket of samples, signed by the
// bucket's average polarity, so quiet and loud passages keep their
// relative weight and the waveform keeps its rough shape around zero.
//
// # Format Decoders
//
// Decoders are looked up by format key:
//
//	src, err := wavescope.DecodeFormat("wav", file)
//
// Additional decoders can be added with RegisterFormat without the core
// knowing about them.
//
// See the subpackage documentation for details:
//   - audio: Source interface, mono downmixing
//   - formats/wav: header parsing, sample decoding, WAV writing
//   - waveform: batch and streaming reduction
package wavescope
