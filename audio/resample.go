// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"github.com/ik5/soundstage/utils"
)

// Resample converts interleaved normalized samples from srcRate to dstRate
// using Catmull-Rom cubic interpolation, preserving the channel count.
// A simple one-pole low-pass filter is applied first when downsampling to
// reduce aliasing.
//
// Clips are fully buffered, so this works on the whole buffer at once; it
// runs on the setup path (buffer upload), never per frame.
func Resample(samples []float32, channels, srcRate, dstRate int) ([]float32, error) {
	if channels < 1 {
		return nil, ErrBadChannelCount
	}
	if srcRate <= 0 || dstRate <= 0 {
		return nil, ErrBadSampleRate
	}
	if len(samples)%channels != 0 {
		return nil, ErrRaggedBuffer
	}
	if srcRate == dstRate {
		out := make([]float32, len(samples))
		copy(out, samples)
		return out, nil
	}

	src := samples
	if dstRate < srcRate {
		src = lowpass(samples, channels)
	}

	frames := len(src) / channels
	if frames == 0 {
		return []float32{}, nil
	}

	ratio := float64(srcRate) / float64(dstRate)
	outFrames := int(float64(frames) * float64(dstRate) / float64(srcRate))
	out := make([]float32, outFrames*channels)

	frame := func(i, c int) float32 {
		if i < 0 {
			i = 0
		} else if i >= frames {
			i = frames - 1
		}
		return src[i*channels+c]
	}

	for i := 0; i < outFrames; i++ {
		pos := float64(i) * ratio
		i1 := int(pos)
		x := float32(pos - float64(i1))
		for c := 0; c < channels; c++ {
			out[i*channels+c] = utils.CubicInterpolate(
				frame(i1-1, c),
				frame(i1, c),
				frame(i1+1, c),
				frame(i1+2, c),
				x,
			)
		}
	}

	return out, nil
}

// lowpass runs a per-channel one-pole filter (alpha 0.5, cutoff around the
// destination Nyquist) over a copy of the buffer.
func lowpass(samples []float32, channels int) []float32 {
	const alpha = float32(0.5)

	out := make([]float32, len(samples))
	state := make([]float32, channels)
	frames := len(samples) / channels

	for f := 0; f < frames; f++ {
		for c := 0; c < channels; c++ {
			i := f*channels + c
			state[c] = alpha*samples[i] + (1-alpha)*state[c]
			out[i] = state[c]
		}
	}
	return out
}
