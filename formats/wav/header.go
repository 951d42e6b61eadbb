// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"time"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/riff"
)

// Header describes the PCM layout of a RIFF/WAVE byte buffer.
// It is immutable once parsed.
type Header struct {
	NumChannels   int
	SampleRate    int
	BitsPerSample int

	// DataOffset is the byte offset of the first sample within the
	// source buffer.
	DataOffset int
	// DataLen is the byte length of the sample region. It never extends
	// past the end of the buffer the header was parsed from, regardless
	// of what the data chunk declares.
	DataLen int
}

// minHeaderLen is the size of a canonical WAV header: RIFF descriptor,
// 16-byte fmt chunk and the data chunk header.
const minHeaderLen = 44

// ParseHeader validates the RIFF/WAVE framing of data and scans its chunks
// for the fmt and data chunks. It fails with ErrMalformedHeader when the
// container structure is unreadable; the wrapped message names the tag or
// chunk that offended so callers can report it.
//
// Bit depth and channel count are recorded as declared. Values without a
// decode path are rejected later, by NewSource, so a header can still be
// inspected for diagnostics.
func ParseHeader(data []byte) (Header, error) {
	var hdr Header

	if len(data) < minHeaderLen {
		return hdr, fmt.Errorf("%w: %d bytes, need at least %d",
			ErrMalformedHeader, len(data), minHeaderLen)
	}

	var tag [4]byte

	copy(tag[:], data[0:4])
	if tag != riff.RiffID {
		return hdr, fmt.Errorf("%w: expected RIFF tag, found %q", ErrMalformedHeader, tag[:])
	}

	copy(tag[:], data[8:12])
	if tag != riff.WavFormatID {
		return hdr, fmt.Errorf("%w: expected WAVE tag, found %q", ErrMalformedHeader, tag[:])
	}

	var foundFmt, foundData bool

	offset := 12
	for offset+8 <= len(data) && !foundData {
		copy(tag[:], data[offset:offset+4])
		size := int(binary.LittleEndian.Uint32(data[offset+4 : offset+8]))
		body := offset + 8

		switch tag {
		case riff.FmtID:
			if body+16 > len(data) {
				return hdr, fmt.Errorf("%w: fmt chunk truncated", ErrMalformedHeader)
			}

			hdr.NumChannels = int(binary.LittleEndian.Uint16(data[body+2 : body+4]))
			hdr.SampleRate = int(binary.LittleEndian.Uint32(data[body+4 : body+8]))
			hdr.BitsPerSample = int(binary.LittleEndian.Uint16(data[body+14 : body+16]))
			foundFmt = true
		case riff.DataFormatID:
			hdr.DataOffset = body
			hdr.DataLen = len(data) - body
			if size < hdr.DataLen {
				hdr.DataLen = size
			}
			foundData = true
		}

		// RIFF chunks are word aligned; an odd-sized chunk carries one
		// padding byte that its declared size does not include.
		offset = body + size
		if size%2 == 1 {
			offset++
		}
	}

	if !foundFmt {
		return hdr, fmt.Errorf("%w: no fmt chunk found", ErrMalformedHeader)
	}

	if !foundData {
		return hdr, fmt.Errorf("%w: no data chunk found", ErrMalformedHeader)
	}

	return hdr, nil
}

// BytesPerSample returns the storage size of one sample of one channel.
func (h Header) BytesPerSample() int {
	return h.BitsPerSample / 8
}

// SampleCount returns the number of mono frames the data region decodes
// to: whole samples only, divided across channels. This is the
// authoritative total for streaming reduction, derived from the header
// alone without touching the sample data.
func (h Header) SampleCount() int {
	bps := h.BytesPerSample()
	if bps == 0 || h.NumChannels == 0 {
		return 0
	}

	return h.DataLen / bps / h.NumChannels
}

// Duration returns the play time of the data region.
func (h Header) Duration() time.Duration {
	if h.SampleRate == 0 {
		return 0
	}

	return time.Duration(h.SampleCount()) * time.Second / time.Duration(h.SampleRate)
}

// Format returns the stream description in go-audio form.
func (h Header) Format() *goaudio.Format {
	return &goaudio.Format{
		NumChannels: h.NumChannels,
		SampleRate:  h.SampleRate,
	}
}
