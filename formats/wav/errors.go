package wav

import "errors"

var (
	// ErrMalformedHeader reports a buffer that is not a readable RIFF/WAVE
	// container: too small, wrong tags, or no fmt/data chunk found.
	ErrMalformedHeader = errors.New("malformed WAV header")
	// ErrUnsupportedFormat reports a valid container whose bit depth or
	// channel count has no decode path.
	ErrUnsupportedFormat = errors.New("unsupported WAV format")
)
