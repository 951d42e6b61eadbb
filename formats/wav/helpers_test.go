package wav

import (
	"bytes"
	"encoding/binary"
)

// testChunk is an arbitrary chunk inserted between fmt and data when
// building test buffers.
type testChunk struct {
	id   string
	body []byte
}

// buildWAVRaw assembles a PCM WAV buffer around an already encoded data
// region.
func buildWAVRaw(sampleRate, channels, bitsPerSample int, data []byte, extra ...testChunk) []byte {
	buf := new(bytes.Buffer)

	numChannels := uint16(channels)
	bits := uint16(bitsPerSample)
	byteRate := uint32(sampleRate) * uint32(numChannels) * uint32(bits) / 8
	blockAlign := numChannels * bits / 8
	dataSize := uint32(len(data))

	extraSize := 0
	for _, c := range extra {
		extraSize += 8 + len(c.body)
		if len(c.body)%2 == 1 {
			extraSize++
		}
	}

	riffSize := 36 + dataSize + uint32(extraSize)

	// RIFF descriptor
	buf.WriteString("RIFF")
	binary.Write(buf, binary.LittleEndian, riffSize)
	buf.WriteString("WAVE")

	// fmt chunk
	buf.WriteString("fmt ")
	binary.Write(buf, binary.LittleEndian, uint32(16)) // chunk size
	binary.Write(buf, binary.LittleEndian, uint16(1))  // PCM format
	binary.Write(buf, binary.LittleEndian, numChannels)
	binary.Write(buf, binary.LittleEndian, uint32(sampleRate))
	binary.Write(buf, binary.LittleEndian, byteRate)
	binary.Write(buf, binary.LittleEndian, blockAlign)
	binary.Write(buf, binary.LittleEndian, bits)

	// optional chunks between fmt and data, word aligned
	for _, c := range extra {
		buf.WriteString(c.id)
		binary.Write(buf, binary.LittleEndian, uint32(len(c.body)))
		buf.Write(c.body)
		if len(c.body)%2 == 1 {
			buf.WriteByte(0)
		}
	}

	// data chunk
	buf.WriteString("data")
	binary.Write(buf, binary.LittleEndian, dataSize)
	buf.Write(data)

	return buf.Bytes()
}

// buildWAV assembles a PCM WAV buffer holding the given interleaved
// sample values encoded at bitsPerSample. 8-bit values are the stored
// unsigned bytes (0..255); the other depths are signed.
func buildWAV(sampleRate, channels, bitsPerSample int, samples []int, extra ...testChunk) []byte {
	bps := bitsPerSample / 8
	data := make([]byte, len(samples)*bps)

	for i, v := range samples {
		off := i * bps
		switch bitsPerSample {
		case 8:
			data[off] = byte(v)
		case 16:
			binary.LittleEndian.PutUint16(data[off:], uint16(int16(v)))
		case 24:
			u := uint32(v) & 0xFFFFFF
			data[off] = byte(u)
			data[off+1] = byte(u >> 8)
			data[off+2] = byte(u >> 16)
		case 32:
			binary.LittleEndian.PutUint32(data[off:], uint32(int32(v)))
		}
	}

	return buildWAVRaw(sampleRate, channels, bitsPerSample, data, extra...)
}
