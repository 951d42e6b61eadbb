// SPDX-License-Identifier: EPL-2.0

// Package wav provides RIFF/WAVE parsing and PCM sample decoding.
//
// The package turns a WAV byte buffer into a validated Header plus a lazy
// stream of normalized samples, and can write 16-bit PCM WAV files.
//
// # Supported Formats
//
// Linear PCM only:
//   - 8, 16, 24 and 32-bit integer samples
//   - Mono and stereo
//   - Any sample rate
//
// # Parsing a Header
//
//	hdr, err := wav.ParseHeader(data)
//	if err != nil {
//	    // Handle error
//	}
//	fmt.Println(hdr.SampleRate, hdr.Duration())
//
// ParseHeader scans the chunk list for the fmt and data chunks and records
// where the sample region lives inside the buffer. The header alone is
// enough to know the recording's duration and total sample count; the
// sample data is not touched.
//
// # Decoding Samples
//
//	src, err := wav.NewMonoSource(data, hdr)
//	buf := make([]float64, 4096)
//	n, err := src.ReadSamples(buf)
//
// Sources are lazy: samples are decoded as they are read, and a fresh
// source over the same buffer always yields the same sequence. Use
// DecodeSamples to materialize everything at once.
//
// Samples are normalized to [-1.0, 1.0] by dividing by the positive-side
// maximum of the bit depth. Stereo recordings are downmixed to mono by
// averaging each frame.
//
// # Writing WAV Files
//
//	samples := []int16{100, -100, 200, -200}
//	err := wav.WriteWAV16(file, 8000, 1, samples)
//
// # Error Handling
//
// The package reports two error kinds:
//   - ErrMalformedHeader: the buffer is not a readable RIFF/WAVE container
//   - ErrUnsupportedFormat: bit depth or channel count has no decode path
//
// Both are sentinel errors wrapped with detail; match them with errors.Is:
//
//	if errors.Is(err, wav.ErrMalformedHeader) {
//	    fmt.Println("not a WAV file:", err)
//	}
//
// Truncated trailing bytes at the end of the data region are not an
// error; they are silently dropped.
package wav
