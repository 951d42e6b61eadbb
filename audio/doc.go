// SPDX-License-Identifier: EPL-2.0

// Package audio provides low-level audio processing primitives.
//
// This package contains the core building blocks shared by the decoding
// and waveform-reduction pipelines:
//   - Source interface for pull-based sample streams
//   - MonoMixer for channel downmixing
//   - ReadAll for draining a stream into memory
//   - Format registry for decoder registration
//
// # Source Interface
//
// The Source interface is the foundation of audio processing:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float64) (int, error)
//	    Close() error
//	}
//
// All decoders and processors implement this interface, allowing them to
// be chained together in processing pipelines.
//
// # Channel Mixing
//
// The MonoMixer converts multi-channel audio to mono by averaging:
//
//	mono := audio.NewMonoMixer(source)
//	buf := make([]float64, 4096)
//	n, err := mono.ReadSamples(buf)
//
// Waveform rendering works on a single channel, so stereo recordings are
// folded down before reduction.
//
// # Format Registry
//
// The registry allows dynamic decoder registration:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	decoder, _ := registry.Get("wav")
//
// This is the seam where an application shell plugs in additional
// decoders without the core knowing about them.
//
// # Sample Format
//
// Audio samples are represented as float64 in the range [-1.0, 1.0]:
//   - 0.0 represents silence
//   - 1.0 represents maximum positive amplitude
//   - -1.0 represents maximum negative amplitude
//
// This normalized format makes it possible to process audio without
// worrying about source bit depths.
//
// # Error Handling
//
// Streaming functions return io.EOF when no more data is available.
// Other errors indicate problems with the source or processing:
//
//	for {
//	    n, err := source.ReadSamples(buf)
//	    if err == io.EOF {
//	        break // Normal end of stream
//	    }
//	    if err != nil {
//	        return err // Processing error
//	    }
//	    // Process n samples from buf
//	}
package audio
