package wavescope

import (
	"fmt"
	"io"

	"github.com/wavescope/wavescope/audio"
	"github.com/wavescope/wavescope/formats/wav"
	"github.com/wavescope/wavescope/waveform"
)

// Waveform is a high-level convenience function that turns a WAV byte
// buffer into targetLength display points.
//
// The function runs the whole pipeline in streaming form:
//  1. Parses the RIFF/WAVE header
//  2. Lazily decodes normalized samples, downmixing stereo to mono
//  3. Reduces the stream to sign-preserving RMS points
//
// The total sample count that anchors the reduction buckets comes from
// the header's data-chunk length, so the sample data is decoded exactly
// once and never held in memory as a whole.
//
// Example:
//
//	points, err := wavescope.Waveform(data, 800)
//	if err != nil {
//	    // not a decodable WAV file
//	}
//	// points are in [-1, 1], ready for a fixed-width renderer
func Waveform(data []byte, targetLength int) ([]float64, error) {
	hdr, err := wav.ParseHeader(data)
	if err != nil {
		return nil, err
	}

	src, err := wav.NewMonoSource(data, hdr)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	return waveform.ReduceSource(src, targetLength, hdr.SampleCount())
}

// Samples decodes data to its complete mono sample sequence and returns
// it together with the parsed header. Use it when the raw samples are
// needed, e.g. to place annotations at sample positions; for display
// use Waveform, which avoids materializing the sequence.
func Samples(data []byte) ([]float64, wav.Header, error) {
	hdr, err := wav.ParseHeader(data)
	if err != nil {
		return nil, hdr, err
	}

	samples, err := wav.DecodeSamples(data, hdr)
	if err != nil {
		return nil, hdr, err
	}

	return samples, hdr, nil
}

// formats holds the decoders available to DecodeFormat. WAV is built in.
var formats = audio.NewRegistry()

func init() {
	formats.Register("wav", wav.Decoder{})
}

// RegisterFormat makes a decoder available to DecodeFormat under the
// given format key.
func RegisterFormat(format string, d audio.Decoder) {
	formats.Register(format, d)
}

// DecodeFormat decodes r using the decoder registered for format.
func DecodeFormat(format string, r io.Reader) (audio.Source, error) {
	dec, ok := formats.Get(format)
	if !ok {
		return nil, fmt.Errorf("no decoder registered for format %q", format)
	}

	return dec.Decode(r)
}
