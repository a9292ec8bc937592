// SPDX-License-Identifier: EPL-2.0

// Package backend defines the hardware playback surface the engine
// drives: a fixed set of playback channels, clip buffer upload, listener
// pose, and an optional environment effect capability.
//
// # Implementations
//
// Two implementations ship with the module:
//   - backend/softmix: a software mixer on top of a real output device
//     (github.com/gen2brain/malgo)
//   - Null: a silent no-op used when device setup fails and the engine
//     degrades to disabled mode
//
// # Effects Capability
//
// Environment effects (reverb, per-channel low-pass obstruction
// filtering) are optional. Backend.Effects never returns nil; devices
// without the capability return NoopEffects, so callers drive the same
// call paths unconditionally and unsupported devices simply stay dry.
//
// # Threading
//
// Backend calls model synchronous driver calls. They are not reentrant
// and must all happen from one goroutine; the engine serializes them
// behind its own lock.
package backend
