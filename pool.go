// SPDX-License-Identifier: EPL-2.0

package soundstage

import (
	"log/slog"

	"github.com/ik5/soundstage/backend"
)

// channelPool tracks which emitter owns each hardware playback unit.
// owners[i] is the zero Handle when channel i is free.
//
// Driver call failures during bind and unbind are logged and absorbed:
// a glitched channel is better than a failed frame.
type channelPool struct {
	dev    backend.Backend
	owners []Handle
	log    *slog.Logger
}

func newChannelPool(dev backend.Backend, capacity int, log *slog.Logger) *channelPool {
	return &channelPool{
		dev:    dev,
		owners: make([]Handle, capacity),
		log:    log,
	}
}

func (p *channelPool) capacity() int { return len(p.owners) }

func (p *channelPool) isFree(ch backend.Channel) bool {
	return p.owners[ch] == Handle{}
}

func (p *channelPool) owner(ch backend.Channel) Handle { return p.owners[ch] }

// lowestFree returns the lowest-index free channel.
func (p *channelPool) lowestFree() (backend.Channel, bool) {
	for i := range p.owners {
		if (p.owners[i] == Handle{}) {
			return backend.Channel(i), true
		}
	}
	return 0, false
}

// bind gives channel ch to emitter h and pushes the emitter's full
// state to the hardware unit, starting playback if requested. Binding
// an owned channel is a programming error.
func (p *channelPool) bind(ch backend.Channel, h Handle, st *emitterState) {
	if !p.isFree(ch) {
		panic("soundstage: bind on an owned channel")
	}

	p.owners[ch] = h
	st.channel = ch
	st.bound = true

	dev := p.dev
	p.absorb(dev.SetBuffer(ch, st.clip.Buffer))
	p.absorb(dev.SetGain(ch, st.gain))
	p.absorb(dev.SetLoop(ch, st.loop))
	p.absorb(dev.SetPitch(ch, st.pitch))
	p.absorb(dev.SetPosition(ch, st.position))
	p.absorb(dev.SetVelocity(ch, st.velocity))

	if st.shouldPlay {
		p.absorb(dev.Play(ch))
	}
}

// unbind stops channel ch and frees it. The owning emitter's binding
// state is cleared by the caller.
func (p *channelPool) unbind(ch backend.Channel) {
	p.absorb(p.dev.Stop(ch))
	p.absorb(p.dev.Effects().SetChannelLowpass(ch, nil))
	p.owners[ch] = Handle{}
}

func (p *channelPool) absorb(err error) {
	if err != nil {
		p.log.Debug("channel driver call failed", "error", err)
	}
}
