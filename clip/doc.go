// SPDX-License-Identifier: EPL-2.0

// Package clip caches decoded audio assets for the playback engine.
//
// A Cache resolves a (name, group) pair to a Clip: the raw PCM payload
// plus the device buffer it was uploaded to. Loading is lazy and
// deduplicated, so many emitters sharing one sound file share one
// decode and one device buffer.
//
// The cache never evicts. Game audio libraries are small and clips are
// referenced by live emitters for unpredictable spans, so entries stay
// until the whole engine shuts down. A configurable limit rejects loads
// past a hard count with ErrTooManyClips instead of growing without
// bound.
//
// Decode and upload failures are reported to the caller and leave the
// cache untouched.
package clip
