// SPDX-License-Identifier: EPL-2.0

package soundstage

import (
	"github.com/ik5/soundstage/backend"
	"github.com/ik5/soundstage/clip"
	"github.com/ik5/soundstage/geom"
)

// Handle identifies a live emitter. Handles stay valid until the
// emitter is released; a handle held past release goes stale and is
// rejected rather than resolving to a recycled slot. The zero Handle is
// never valid.
type Handle struct {
	index uint32
	gen   uint32
}

// emitterState is the playback intent of one logical emitter plus its
// current hardware binding.
type emitterState struct {
	clip *clip.Clip

	gain       float32
	pitch      float32
	loop       bool
	shouldPlay bool
	position   geom.Vec3
	velocity   geom.Vec3

	audibility float32

	channel backend.Channel
	bound   bool
}

type emitterSlot struct {
	gen   uint32
	live  bool
	state emitterState
}

// registry is a generation-checked arena of emitter records. Slots are
// recycled through a free list; each reuse bumps the generation so
// stale handles never alias a new emitter.
type registry struct {
	slots []emitterSlot
	free  []uint32
	limit int
	count int
}

func newRegistry(limit int) *registry {
	return &registry{limit: limit}
}

func (r *registry) alloc() (Handle, *emitterState, error) {
	if r.limit > 0 && r.count >= r.limit {
		return Handle{}, nil, ErrTooManyEmitters
	}

	var index uint32
	if n := len(r.free); n > 0 {
		index = r.free[n-1]
		r.free = r.free[:n-1]
	} else {
		r.slots = append(r.slots, emitterSlot{})
		index = uint32(len(r.slots) - 1)
	}

	slot := &r.slots[index]
	slot.gen++
	slot.live = true
	// new emitters are silent until the host sets a gain, so creation
	// alone never competes for a channel
	slot.state = emitterState{pitch: 1}
	r.count++

	return Handle{index: index, gen: slot.gen}, &slot.state, nil
}

// get resolves a handle, returning nil for stale or zero handles.
func (r *registry) get(h Handle) *emitterState {
	if h.gen == 0 || int(h.index) >= len(r.slots) {
		return nil
	}

	slot := &r.slots[h.index]
	if !slot.live || slot.gen != h.gen {
		return nil
	}
	return &slot.state
}

func (r *registry) release(h Handle) bool {
	if r.get(h) == nil {
		return false
	}

	slot := &r.slots[h.index]
	slot.live = false
	slot.state = emitterState{}
	r.free = append(r.free, h.index)
	r.count--
	return true
}

// forEach visits live emitters in slot order, which is also the
// deterministic tie-break order for scheduling.
func (r *registry) forEach(fn func(h Handle, st *emitterState)) {
	for i := range r.slots {
		slot := &r.slots[i]
		if slot.live {
			fn(Handle{index: uint32(i), gen: slot.gen}, &slot.state)
		}
	}
}
