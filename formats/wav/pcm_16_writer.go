// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/wavescope/wavescope/utils"
)

// WriteWAV16 writes a 16-bit PCM WAV at sampleRate. samples holds
// interleaved int16 frames for numChannels channels. An incomplete
// trailing frame is written as-is; decoders drop it.
func WriteWAV16(w io.Writer, sampleRate, numChannels int, samples []int16) error {
	channels := uint16(numChannels)
	bitsPerSample := uint16(16)
	byteRate := uint32(sampleRate) * uint32(channels) * uint32(bitsPerSample/8)
	blockAlign := channels * bitsPerSample / 8
	dataSize := uint32(len(samples) * 2)
	riffSize := 36 + dataSize

	header := make([]byte, minHeaderLen)

	// RIFF descriptor
	copy(header[0:4], "RIFF")
	binary.LittleEndian.PutUint32(header[4:8], riffSize)
	copy(header[8:12], "WAVE")

	// fmt chunk
	copy(header[12:16], "fmt ")
	binary.LittleEndian.PutUint32(header[16:20], 16) // PCM fmt chunk size
	binary.LittleEndian.PutUint16(header[20:22], 1)  // PCM format
	binary.LittleEndian.PutUint16(header[22:24], channels)
	binary.LittleEndian.PutUint32(header[24:28], uint32(sampleRate))
	binary.LittleEndian.PutUint32(header[28:32], byteRate)
	binary.LittleEndian.PutUint16(header[32:34], blockAlign)
	binary.LittleEndian.PutUint16(header[34:36], bitsPerSample)

	// data chunk header
	copy(header[36:40], "data")
	binary.LittleEndian.PutUint32(header[40:44], dataSize)

	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("%w", err)
	}

	if len(samples) == 0 {
		return nil
	}

	// Write the sample data in bounded chunks so large recordings don't
	// need a full-size scratch buffer.
	const chunkSize = 8192

	buf := make([]byte, min(len(samples), chunkSize)*2)

	for i := 0; i < len(samples); i += chunkSize {
		end := min(i+chunkSize, len(samples))
		chunk := samples[i:end]

		buf = buf[:len(chunk)*2]
		for j, s := range chunk {
			binary.LittleEndian.PutUint16(buf[j*2:j*2+2], uint16(s))
		}

		if _, err := w.Write(buf); err != nil {
			return fmt.Errorf("%w", err)
		}
	}

	return nil
}

// WriteWAV16Float is WriteWAV16 for normalized float64 samples in
// [-1.0, 1.0]. Values outside the range are clamped.
func WriteWAV16Float(w io.Writer, sampleRate, numChannels int, samples []float64) error {
	ints := make([]int16, len(samples))
	for i, s := range samples {
		ints[i] = utils.Float64ToInt16(s)
	}

	return WriteWAV16(w, sampleRate, numChannels, ints)
}
