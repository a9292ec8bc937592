// SPDX-License-Identifier: EPL-2.0

// Package soundstage schedules an unbounded set of logical sound
// emitters onto a small fixed pool of hardware playback channels.
//
// Game worlds want far more simultaneous sounds than any device offers.
// The Manager continuously re-decides which emitters deserve a channel
// as the listener and the emitters move: audible emitters compete for
// channels, the faintest bound emitter is evicted when a strictly
// louder one arrives, and emitters that lose the contest simply go
// unheard until the next update in their favor. Running out of channels
// is backpressure, never an error.
//
// # Quick Start
//
//	dev, err := softmix.New(softmix.Config{
//		Channels:          16,
//		SampleRate:        44100,
//		ReferenceDistance: soundstage.DefaultReferenceDistance,
//		MaxDistance:       soundstage.DefaultMaxDistance,
//		RolloffFactor:     soundstage.DefaultRolloffFactor,
//	})
//	if err != nil {
//		dev = nil // run disabled, all calls become no-ops
//	}
//
//	mgr := soundstage.New(soundstage.Config{
//		Backend: dev,
//		Library: os.DirFS("sounds"),
//	})
//	defer mgr.Close()
//
//	horn, err := mgr.CreateEmitter("horn.wav", "truck")
//	if err != nil {
//		// decode failure or full emitter table
//	}
//	horn.SetPosition(geom.Vec3{X: 12, Z: -3})
//	horn.Play()
//
//	// each frame
//	mgr.SetListener(pos, forward, up, velocity)
//
// # Scheduling Model
//
// Every property change reschedules just that emitter; a listener move
// reschedules all of them. The policy is greedy and online:
//   - audibility 0 (out of range) always releases the channel
//   - a bound emitter only forwards the changed property to hardware
//   - an unbound audible emitter takes the lowest free channel, or
//     evicts the globally faintest bound emitter when strictly louder
//   - ties keep the incumbent, so the pool cannot thrash
//
// Audibility is inverse-distance-clamped attenuation scaled by the
// emitter's gain, zero beyond the maximum distance.
//
// # Clips
//
// Clips are fully buffered: decoded once, uploaded to the device once,
// and shared by every emitter using the same (name, group) identity.
// Decoders for WAV, MP3, Ogg Vorbis, and AIFF are installed by
// default; see the formats subpackages.
//
// # Environment Effects
//
// With EnableEffects, a named reverb preset is attached to the
// listener-global effect slot; effect resources are created lazily per
// preset and persist for the manager's lifetime. With a raycast oracle
// configured, nearby geometry pans and delays early reflections, and
// blocked emitters get a low-pass obstruction filter on their channel.
// All of this is best-effort: any driver failure degrades to a dry
// mix, never to a fault.
//
// # Threading
//
// The Manager is deliberately single-threaded: every call is a fast
// synchronous computation or driver call, and nothing blocks except
// clip loading on first use. Multi-threaded hosts funnel calls through
// their own lock or queue.
package soundstage
