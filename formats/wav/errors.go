package wav

import "errors"

var (
	ErrNotWavFile  = errors.New("not a WAV file")
	ErrNotPCM      = errors.New("only PCM format (code 1) is supported")
	ErrBadChannels = errors.New("only mono and stereo WAV is supported")
	ErrBadBitDepth = errors.New("only 8-bit and 16-bit WAV is supported")
)
