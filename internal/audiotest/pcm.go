// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"encoding/binary"
	"math"

	"github.com/ik5/soundstage/audio"
)

// NewPCM builds a 16-bit clip whose samples come from a waveform
// function of (frame, channel).
func NewPCM(sampleRate, channels, frames int, waveform func(frame, channel int) float32) *audio.PCM {
	data := make([]byte, frames*channels*2)
	for frame := 0; frame < frames; frame++ {
		for ch := 0; ch < channels; ch++ {
			s := waveform(frame, ch)
			if s > 1 {
				s = 1
			} else if s < -1 {
				s = -1
			}
			v := uint16(int16(s * 32767))
			binary.LittleEndian.PutUint16(data[2*(frame*channels+ch):], v)
		}
	}

	return &audio.PCM{
		Channels:      channels,
		SampleRate:    sampleRate,
		BitsPerSample: 16,
		Data:          data,
	}
}

// NewSilentPCM builds an all-zero clip.
func NewSilentPCM(sampleRate, channels, frames int) *audio.PCM {
	return NewPCM(sampleRate, channels, frames, func(int, int) float32 { return 0 })
}

// NewSinePCM builds a sine-wave clip at the given frequency.
func NewSinePCM(sampleRate, channels, frames int, frequency float64) *audio.PCM {
	return NewPCM(sampleRate, channels, frames, func(frame, _ int) float32 {
		t := float64(frame) / float64(sampleRate)
		return float32(math.Sin(2 * math.Pi * frequency * t))
	})
}

// NewConstantPCM builds a clip holding one value everywhere.
func NewConstantPCM(sampleRate, channels, frames int, value float32) *audio.PCM {
	return NewPCM(sampleRate, channels, frames, func(int, int) float32 { return value })
}
