package wav

import (
	"encoding/binary"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/wavescope/wavescope/audio"
)

// sampleDecodeFunc converts one little-endian PCM sample to a normalized
// float64.
type sampleDecodeFunc func(b []byte) float64

// sampleDecoder selects the decode function for a bit depth once, so the
// per-sample loop carries no format branching.
//
// 8-bit samples are stored unsigned, the deeper depths two's-complement.
// Every depth divides by its positive-side maximum, so the negative
// extreme lands slightly below -1.
func sampleDecoder(bitsPerSample int) (sampleDecodeFunc, error) {
	switch bitsPerSample {
	case 8:
		div := float64(goaudio.IntMaxSignedValue(8))
		return func(b []byte) float64 {
			return (float64(b[0]) - 128) / div
		}, nil
	case 16:
		div := float64(goaudio.IntMaxSignedValue(16))
		return func(b []byte) float64 {
			return float64(int16(binary.LittleEndian.Uint16(b))) / div
		}, nil
	case 24:
		div := float64(goaudio.IntMaxSignedValue(24))
		return func(b []byte) float64 {
			return float64(goaudio.Int24LETo32(b)) / div
		}, nil
	case 32:
		div := float64(goaudio.IntMaxSignedValue(32))
		return func(b []byte) float64 {
			return float64(int32(binary.LittleEndian.Uint32(b))) / div
		}, nil
	default:
		return nil, fmt.Errorf("%w: %d bits per sample", ErrUnsupportedFormat, bitsPerSample)
	}
}

// Source streams interleaved normalized samples straight off a WAV byte
// buffer. The buffer must not be mutated while the source is being read;
// the source does not copy it.
type Source struct {
	data   []byte
	hdr    Header
	decode sampleDecodeFunc

	bytesPerSample int
	total          int // whole samples in the data region
	pos            int
}

// NewSource returns a lazy source over the data region described by hdr.
// Each call returns an independent cursor, so the same buffer can be
// decoded any number of times with identical results.
//
// It fails with ErrUnsupportedFormat before any sample is produced when
// the bit depth is not 8, 16, 24 or 32 or the channel count is not 1 or 2.
func NewSource(data []byte, hdr Header) (*Source, error) {
	decode, err := sampleDecoder(hdr.BitsPerSample)
	if err != nil {
		return nil, err
	}

	if hdr.NumChannels != 1 && hdr.NumChannels != 2 {
		return nil, fmt.Errorf("%w: %d channels", ErrUnsupportedFormat, hdr.NumChannels)
	}

	bps := hdr.BitsPerSample / 8

	return &Source{
		data:           data,
		hdr:            hdr,
		decode:         decode,
		bytesPerSample: bps,
		// Trailing bytes that do not form a whole sample are dropped.
		total: hdr.DataLen / bps,
	}, nil
}

func (s *Source) SampleRate() int { return s.hdr.SampleRate }
func (s *Source) Channels() int   { return s.hdr.NumChannels }
func (s *Source) Close() error    { return nil }

// ReadSamples fills dst with the next interleaved samples. len(dst) must
// be a multiple of the channel count so frames are never split across
// reads.
func (s *Source) ReadSamples(dst []float64) (int, error) {
	if len(dst)%s.hdr.NumChannels != 0 {
		return 0, audio.ErrInvalidDstSize
	}

	if s.pos >= s.total {
		return 0, io.EOF
	}

	n := len(dst)
	if remaining := s.total - s.pos; n > remaining {
		n = remaining
	}

	base := s.hdr.DataOffset + s.pos*s.bytesPerSample
	for i := 0; i < n; i++ {
		off := base + i*s.bytesPerSample
		dst[i] = s.decode(s.data[off : off+s.bytesPerSample])
	}

	s.pos += n
	if s.pos >= s.total {
		return n, io.EOF
	}

	return n, nil
}

// NewMonoSource returns a source of mono samples for the buffer: stereo
// frames are averaged pairwise and an unpaired trailing sample is
// dropped; mono data passes through untouched.
func NewMonoSource(data []byte, hdr Header) (audio.Source, error) {
	src, err := NewSource(data, hdr)
	if err != nil {
		return nil, err
	}

	if hdr.NumChannels == 1 {
		return src, nil
	}

	return audio.NewMonoMixer(src), nil
}

// DecodeSamples materializes the whole mono sample sequence for data.
// It is the batch form of NewMonoSource: the same lazy decode path,
// consumed to the end, so the two can never diverge.
func DecodeSamples(data []byte, hdr Header) ([]float64, error) {
	src, err := NewMonoSource(data, hdr)
	if err != nil {
		return nil, err
	}

	return audio.ReadAll(src)
}

// Decoder adapts the buffer-based parser to the audio.Decoder interface
// for registry use.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading wav data: %w", err)
	}

	hdr, err := ParseHeader(data)
	if err != nil {
		return nil, err
	}

	return NewMonoSource(data, hdr)
}
