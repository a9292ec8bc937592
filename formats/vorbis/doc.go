// SPDX-License-Identifier: EPL-2.0

// Package vorbis provides Ogg Vorbis clip decoding.
//
// This package uses github.com/jfreymuth/oggvorbis to decode Ogg Vorbis
// files into fully buffered 16-bit PCM clips for the sound engine.
//
// # Decoding
//
//	decoder := vorbis.Decoder{}
//	file, _ := os.Open("ambience.ogg")
//	pcm, err := decoder.Decode(file)
//
// # Output Format
//
// The decoder converts the stream's float samples to 16-bit PCM:
//   - Channels: taken from the stream (mono or stereo typically)
//   - BitsPerSample: 16
//   - SampleRate: taken from the stream
//
// # Limitations
//
//   - Decoding only; Vorbis encoding is not supported
//   - The whole clip is decoded up front (clips are fixed-size and fully
//     buffered; there is no streaming path)
package vorbis
