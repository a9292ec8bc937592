// SPDX-License-Identifier: EPL-2.0

// Package wav provides WAV clip decoding and encoding.
//
// This package decodes canonical RIFF/WAVE clips for the sound engine.
// It uses the github.com/go-audio library for robust chunk handling.
//
// # Supported Formats
//
// The decoder accepts:
//   - PCM payloads only (fmt chunk format code 1)
//   - Mono and stereo
//   - 8-bit and 16-bit sample depth
//   - Any sample rate
//   - An optional fact chunk before the data chunk
//
// Stereo 8-bit clips are promoted to 16-bit on decode; every other layout
// is preserved byte-for-byte.
//
// # Decoding
//
//	decoder := wav.Decoder{}
//	file, _ := os.Open("horn.wav")
//	pcm, err := decoder.Decode(file)
//	if err != nil {
//	    // hard decode failure for this clip only
//	}
//	// pcm.Channels, pcm.SampleRate, pcm.BitsPerSample, pcm.Data
//
// The decoder returns an *audio.PCM: the clip is fully buffered, never
// streamed.
//
// # Error Handling
//
// Structural mismatches map to sentinel errors:
//   - ErrNotWavFile: missing RIFF/WAVE magic or unreadable chunks
//   - ErrNotPCM: fmt chunk format code is not 1
//   - ErrBadChannels: more than two channels
//   - ErrBadBitDepth: depth other than 8 or 16 bits
//
// A failed decode never touches the clip cache.
//
// # Writing WAV Files
//
// Use WriteWAV16 to create mono 16-bit WAV files (handy for fixtures and
// tools):
//
//	samples := []int16{100, -100, 200, -200}
//	file, _ := os.Create("output.wav")
//	err := wav.WriteWAV16(file, 8000, samples)
package wav
