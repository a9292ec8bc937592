// SPDX-License-Identifier: EPL-2.0

// Package softmix is a software-mixing backend on top of a real output
// device via github.com/gen2brain/malgo (miniaudio).
//
// Clips are converted to mono float32 at the device rate when uploaded,
// so the render loop only interpolates and sums. Each voice gets
// inverse-distance-clamped attenuation, equal-power panning from the
// listener pose, and a doppler pitch shift from relative velocity.
//
// The Effects surface supports per-channel low-pass filtering for
// obstruction. Environment reverb is not implemented; CreateEffect
// fails and callers degrade to a dry mix.
//
// Use New to open the default output device, or NewMixer alone for a
// device-less mixer (tests, offline rendering).
package softmix
