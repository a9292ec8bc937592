package vorbis

import (
	"fmt"
	"io"

	"github.com/jfreymuth/oggvorbis"

	"github.com/ik5/soundstage/audio"
	"github.com/ik5/soundstage/utils"
)

// oggReader is an interface for oggvorbis.Reader to allow testing
type oggReader interface {
	SampleRate() int
	Channels() int
	Read([]float32) (int, error)
}

type Decoder struct{}

// Decode reads a complete Ogg Vorbis clip into memory and converts it to
// 16-bit PCM at the stream's channel count and sample rate.
func (Decoder) Decode(r io.Reader) (*audio.PCM, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return decodeAll(dec)
}

func decodeAll(dec oggReader) (*audio.PCM, error) {
	channels := dec.Channels()
	var samples []float32

	buf := make([]float32, 4096*channels)
	for {
		// Read returns whole frames; n is a sample count
		n, err := dec.Read(buf)
		samples = append(samples, buf[:n]...)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading vorbis samples: %w", err)
		}
		if n == 0 {
			break
		}
	}

	data := make([]byte, len(samples)*2)
	for i, s := range samples {
		v := uint16(utils.Float32ToInt16(s))
		data[2*i] = byte(v)
		data[2*i+1] = byte(v >> 8)
	}

	return &audio.PCM{
		Channels:      channels,
		SampleRate:    dec.SampleRate(),
		BitsPerSample: 16,
		Data:          data,
	}, nil
}
