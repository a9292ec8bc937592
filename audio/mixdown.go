// SPDX-License-Identifier: EPL-2.0

package audio

// DownmixMono averages interleaved channels into a single mono buffer.
// Mono input is copied through unchanged. Spatialized playback requires a
// mono signal, so multi-channel clips pass through here before upload.
func DownmixMono(samples []float32, channels int) ([]float32, error) {
	if channels < 1 {
		return nil, ErrBadChannelCount
	}
	if len(samples)%channels != 0 {
		return nil, ErrRaggedBuffer
	}
	if channels == 1 {
		out := make([]float32, len(samples))
		copy(out, samples)
		return out, nil
	}

	frames := len(samples) / channels
	out := make([]float32, frames)

	switch channels {
	case 2: // stereo, by far the common case
		for f := 0; f < frames; f++ {
			out[f] = (samples[2*f] + samples[2*f+1]) * 0.5
		}
	default:
		inv := float32(1) / float32(channels)
		for f := 0; f < frames; f++ {
			sum := float32(0)
			for c := 0; c < channels; c++ {
				sum += samples[f*channels+c]
			}
			out[f] = sum * inv
		}
	}

	return out, nil
}
