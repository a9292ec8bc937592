// SPDX-License-Identifier: EPL-2.0

// Package audio provides the clip-level audio primitives the engine is
// built on.
//
// # PCM Clips
//
// The PCM type is a fully decoded, fully buffered audio clip:
//
//	type PCM struct {
//	    Channels      int
//	    SampleRate    int
//	    BitsPerSample int
//	    Data          []byte
//	}
//
// Data is raw little-endian PCM, interleaved by channel: unsigned bytes at
// 8-bit depth, signed 16-bit words at 16-bit depth. The engine only plays
// fixed-size, fully buffered clips; there is no streaming path, so every
// decoder produces a complete PCM in one call.
//
// # Decoders
//
// Each container format implements the Decoder interface:
//
//	type Decoder interface {
//	    Decode(r io.Reader) (*PCM, error)
//	}
//
// Decoders live in the formats subpackages (formats/wav, formats/mp3,
// formats/vorbis, formats/aiff) and are looked up through a Registry keyed
// by file extension:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	dec, ok := registry.ForFile("engine_idle.wav")
//
// # Sample Conversion
//
// Floats() converts a clip's payload to normalized float32 samples in
// [-1, 1] for software mixing. Resample converts a buffer between sample
// rates using cubic interpolation (with a simple anti-alias low-pass when
// downsampling), and DownmixMono folds multi-channel buffers to mono for
// spatialized playback. All three run on the clip-upload path, never in
// the per-frame mixing hot path.
package audio
