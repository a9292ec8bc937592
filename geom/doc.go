// SPDX-License-Identifier: EPL-2.0

// Package geom provides the small amount of 3-D vector math the sound
// engine needs: listener and emitter poses, distances for attenuation, and
// the ray directions used by the environment reflection probe.
//
// Vectors use float32 components to match the audio backend's native
// precision. All operations are value-based and allocation-free.
package geom
