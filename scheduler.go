// SPDX-License-Identifier: EPL-2.0

package soundstage

import (
	"math"

	"github.com/ik5/soundstage/backend"
)

// changeReason names the property whose change triggered a scheduling
// pass, so a bound emitter only forwards that one value to hardware.
type changeReason int

const (
	reasonNone changeReason = iota
	reasonPlay
	reasonStop
	reasonGain
	reasonPitch
	reasonLoop
	reasonPosition
	reasonVelocity
)

// audibility scores how perceptible an emitter is to the listener:
// inverse-distance-clamped attenuation scaled by emitter gain, zero
// beyond the maximum distance. Monotonically non-increasing in
// distance.
func (m *Manager) audibility(st *emitterState) float32 {
	d := st.position.DistanceTo(m.listener.Position)
	if d > m.cfg.MaxDistance {
		return 0
	}

	ref := m.cfg.ReferenceDistance
	if d < ref {
		return st.gain
	}
	return st.gain * ref / (ref + m.cfg.RolloffFactor*(d-ref))
}

// recompute runs the per-emitter scheduling pass after a property
// change.
//
// An inaudible emitter never keeps a channel. An audible bound emitter
// just forwards the changed property. An audible unbound emitter takes
// the lowest free channel, or evicts the faintest bound emitter if it
// is strictly louder than it; otherwise it stays silent and will be
// reconsidered on its next qualifying update. Capacity exhaustion is
// backpressure, not an error.
func (m *Manager) recompute(h Handle, st *emitterState, reason changeReason) {
	st.audibility = m.audibility(st)

	if st.audibility == 0 {
		if st.bound {
			m.retire(st)
		}
		return
	}

	if st.bound {
		m.forward(st, reason)
		return
	}

	m.acquire(h, st)
}

// acquire runs the channel hunt for an audible, unbound emitter.
func (m *Manager) acquire(h Handle, st *emitterState) {
	if ch, ok := m.pool.lowestFree(); ok {
		m.pool.bind(ch, h, st)
		return
	}

	// the pool is full: find the faintest bound emitter, lowest
	// channel index winning ties
	faintest := backend.Channel(0)
	fv := float32(math.MaxFloat32)
	for i := range m.pool.owners {
		owner := m.reg.get(m.pool.owners[i])
		if owner != nil && owner.audibility < fv {
			fv = owner.audibility
			faintest = backend.Channel(i)
		}
	}

	// strictly louder only; equal audibility keeps the incumbent
	if fv < st.audibility {
		m.retireChannel(faintest)
		m.pool.bind(faintest, h, st)
	}
}

// forward pushes one changed property of a bound emitter to its
// channel.
func (m *Manager) forward(st *emitterState, reason changeReason) {
	ch := st.channel
	switch reason {
	case reasonPlay:
		m.absorb(m.dev.Play(ch))
	case reasonStop:
		m.absorb(m.dev.Stop(ch))
	case reasonGain:
		m.absorb(m.dev.SetGain(ch, st.gain))
	case reasonPitch:
		m.absorb(m.dev.SetPitch(ch, st.pitch))
	case reasonLoop:
		m.absorb(m.dev.SetLoop(ch, st.loop))
	case reasonPosition:
		m.absorb(m.dev.SetPosition(ch, st.position))
	case reasonVelocity:
		m.absorb(m.dev.SetVelocity(ch, st.velocity))
	}
}

// retire evicts a bound emitter from its channel.
func (m *Manager) retire(st *emitterState) {
	m.pool.unbind(st.channel)
	st.bound = false
}

// retireChannel evicts whatever emitter owns the channel.
func (m *Manager) retireChannel(ch backend.Channel) {
	if owner := m.reg.get(m.pool.owner(ch)); owner != nil {
		owner.bound = false
	}
	m.pool.unbind(ch)
}

// rescheduleAll is the listener-move global pass: recompute every
// emitter's audibility, retire the now-inaudible, then let each
// audible unbound emitter hunt for a channel in handle order. Greedy
// and online, not globally optimal; an incumbent is never evicted by a
// strictly fainter candidate, so the pass cannot thrash.
func (m *Manager) rescheduleAll() {
	m.reg.forEach(func(_ Handle, st *emitterState) {
		st.audibility = m.audibility(st)
		if st.audibility == 0 && st.bound {
			m.retire(st)
		}
	})

	m.reg.forEach(func(h Handle, st *emitterState) {
		if st.audibility > 0 && !st.bound {
			m.acquire(h, st)
		}
	})
}
