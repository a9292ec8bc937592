package wav

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	gowav "github.com/go-audio/wav"

	"github.com/ik5/soundstage/audio"
)

type Decoder struct{}

// Decode reads a complete RIFF/WAVE clip into memory.
//
// Only PCM payloads (fmt chunk format code 1) are accepted, mono or
// stereo, at 8 or 16 bits per sample. A fact chunk before the data chunk
// is tolerated. Stereo 8-bit clips are promoted to 16-bit. Any structural
// mismatch is a decode failure for this clip only.
func (Decoder) Decode(r io.Reader) (*audio.PCM, error) {
	// go-audio needs an io.ReadSeeker to walk the chunk list; clips are
	// fully buffered anyway.
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading wav data: %w", err)
	}

	dec := gowav.NewDecoder(bytes.NewReader(data))
	if !dec.IsValidFile() {
		return nil, ErrNotWavFile
	}

	if dec.WavAudioFormat != 1 {
		return nil, ErrNotPCM
	}

	channels := int(dec.NumChans)
	bits := int(dec.BitDepth)

	if channels != 1 && channels != 2 {
		return nil, ErrBadChannels
	}
	if bits != 8 && bits != 16 {
		return nil, ErrBadBitDepth
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("reading wav samples: %w", err)
	}

	if channels == 2 && bits == 8 {
		// Promote stereo 8-bit to 16-bit
		out := make([]byte, len(buf.Data)*2)
		for i, v := range buf.Data {
			binary.LittleEndian.PutUint16(out[2*i:2*i+2], uint16(int16(v-128)<<8))
		}
		return &audio.PCM{
			Channels:      channels,
			SampleRate:    int(dec.SampleRate),
			BitsPerSample: 16,
			Data:          out,
		}, nil
	}

	var out []byte
	switch bits {
	case 8:
		// 8-bit WAV samples are unsigned
		out = make([]byte, len(buf.Data))
		for i, v := range buf.Data {
			out[i] = byte(v)
		}
	case 16:
		out = make([]byte, len(buf.Data)*2)
		for i, v := range buf.Data {
			binary.LittleEndian.PutUint16(out[2*i:2*i+2], uint16(int16(v)))
		}
	}

	return &audio.PCM{
		Channels:      channels,
		SampleRate:    int(dec.SampleRate),
		BitsPerSample: bits,
		Data:          out,
	}, nil
}
