// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"

	"github.com/ik5/soundstage/audio"
)

// mp3Reader is an interface for gomp3.Decoder to allow testing
type mp3Reader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

type Decoder struct{}

// Decode reads a complete MP3 clip into memory. go-mp3 always produces
// interleaved stereo 16-bit little-endian PCM at the file's sample rate.
func (Decoder) Decode(r io.Reader) (*audio.PCM, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return decodeAll(dec)
}

func decodeAll(dec mp3Reader) (*audio.PCM, error) {
	data, err := io.ReadAll(dec)
	if err != nil {
		return nil, fmt.Errorf("reading mp3 samples: %w", err)
	}

	// Frames are int16 stereo pairs; drop a trailing partial frame if the
	// stream was cut short.
	data = data[:len(data)/4*4]

	return &audio.PCM{
		Channels:      2,
		SampleRate:    dec.SampleRate(),
		BitsPerSample: 16,
		Data:          data,
	}, nil
}
