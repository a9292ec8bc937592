// SPDX-License-Identifier: EPL-2.0

package soundstage

import "github.com/ik5/soundstage/geom"

// Emitter is one logical, independently controllable sound instance.
// Whether it currently occupies a hardware channel is the scheduler's
// business; the host only expresses intent through these setters.
//
// Every method is a safe no-op after Release, on a closed manager, and
// in disabled mode.
type Emitter struct {
	m *Manager
	h Handle
}

// resolve returns the emitter's state, or nil when the call must
// degrade to a no-op.
func (e *Emitter) resolve() *emitterState {
	if e.m == nil || e.m.closed {
		return nil
	}
	return e.m.reg.get(e.h)
}

// Play requests playback. Starting an already-playing emitter restarts
// nothing; the request is idempotent.
func (e *Emitter) Play() {
	st := e.resolve()
	if st == nil {
		return
	}

	st.shouldPlay = true
	e.m.recompute(e.h, st, reasonPlay)
}

// Stop halts playback. The emitter keeps any bound channel until the
// scheduler takes it away.
func (e *Emitter) Stop() {
	st := e.resolve()
	if st == nil {
		return
	}

	st.shouldPlay = false
	e.m.recompute(e.h, st, reasonStop)
}

// SetGain sets the emitter gain. Changes on a bound channel are audible
// within this call.
func (e *Emitter) SetGain(gain float32) {
	st := e.resolve()
	if st == nil {
		return
	}

	if gain < 0 {
		gain = 0
	}
	st.gain = gain
	e.m.recompute(e.h, st, reasonGain)
}

// SetPitch sets the playback rate multiplier. Non-positive values are
// ignored.
func (e *Emitter) SetPitch(pitch float32) {
	st := e.resolve()
	if st == nil || pitch <= 0 {
		return
	}

	st.pitch = pitch
	e.m.recompute(e.h, st, reasonPitch)
}

// SetLoop sets whether the clip repeats.
func (e *Emitter) SetLoop(loop bool) {
	st := e.resolve()
	if st == nil {
		return
	}

	st.loop = loop
	e.m.recompute(e.h, st, reasonLoop)
}

// SetPosition moves the emitter in world space.
func (e *Emitter) SetPosition(pos geom.Vec3) {
	st := e.resolve()
	if st == nil {
		return
	}

	st.position = pos
	e.m.recompute(e.h, st, reasonPosition)
}

// SetVelocity sets the emitter's velocity for doppler.
func (e *Emitter) SetVelocity(vel geom.Vec3) {
	st := e.resolve()
	if st == nil {
		return
	}

	st.velocity = vel
	e.m.recompute(e.h, st, reasonVelocity)
}

// Audibility returns the scheduler's current audibility score for the
// emitter; 0 means inaudible. Read-only.
func (e *Emitter) Audibility() float32 {
	st := e.resolve()
	if st == nil {
		return 0
	}
	return st.audibility
}

// Playing reports whether the emitter holds a hardware channel and is
// actually producing sound. Read-only.
func (e *Emitter) Playing() bool {
	st := e.resolve()
	if st == nil {
		return false
	}
	return st.bound && st.shouldPlay
}

// Bound reports whether the emitter holds a hardware channel.
func (e *Emitter) Bound() bool {
	st := e.resolve()
	if st == nil {
		return false
	}
	return st.bound
}

// Release frees the emitter's slot, evicting it from any bound channel
// first. The handle goes stale; later calls through it are no-ops. The
// clip stays cached for other emitters.
func (e *Emitter) Release() {
	st := e.resolve()
	if st == nil {
		return
	}

	if st.bound {
		e.m.pool.unbind(st.channel)
		st.bound = false
	}
	e.m.reg.release(e.h)
}
