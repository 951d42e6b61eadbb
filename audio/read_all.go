// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
)

// ReadAll drains src and returns every remaining sample. The samples are
// interleaved the way the source produces them; wrap the source in a
// MonoMixer first if a single channel is wanted.
func ReadAll(src Source) ([]float64, error) {
	var samples []float64
	buf := make([]float64, 4096)

	for {
		n, err := src.ReadSamples(buf)
		if n > 0 {
			samples = append(samples, buf[:n]...)
		}

		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
	}

	return samples, nil
}
