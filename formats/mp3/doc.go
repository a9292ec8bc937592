// SPDX-License-Identifier: EPL-2.0

// Package mp3 provides MP3 clip decoding.
//
// This package uses github.com/hajimehoshi/go-mp3 to decode MP3 files
// into fully buffered PCM clips for the sound engine.
//
// # Decoding
//
//	decoder := mp3.Decoder{}
//	file, _ := os.Open("music.mp3")
//	pcm, err := decoder.Decode(file)
//
// # Output Format
//
// go-mp3 always emits interleaved stereo 16-bit little-endian PCM, so the
// resulting clip is:
//   - Channels: 2
//   - BitsPerSample: 16
//   - SampleRate: taken from the MP3 stream (typically 44.1 or 48 kHz)
//
// Stereo clips play unspatialized; the backend downmixes to mono when a
// clip is attached to a positional emitter.
//
// # Limitations
//
//   - Decoding only; MP3 encoding is not supported
//   - The whole clip is decoded up front (clips are fixed-size and fully
//     buffered; there is no streaming path)
package mp3
