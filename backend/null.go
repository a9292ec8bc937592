// SPDX-License-Identifier: EPL-2.0

package backend

import (
	"github.com/ik5/soundstage/audio"
	"github.com/ik5/soundstage/geom"
)

// Null is a Backend with no device behind it. Every call succeeds and
// does nothing, so an engine that failed hardware setup can keep the
// same call paths while staying silent.
type Null struct {
	channels   int
	nextBuffer Buffer
}

// NewNull returns a silent backend exposing the given channel count.
func NewNull(channels int) *Null {
	return &Null{channels: channels}
}

func (n *Null) Channels() int { return n.channels }

func (n *Null) CreateBuffer(*audio.PCM) (Buffer, error) {
	n.nextBuffer++
	return n.nextBuffer, nil
}

func (n *Null) SetBuffer(Channel, Buffer) error     { return nil }
func (n *Null) Play(Channel) error                  { return nil }
func (n *Null) Stop(Channel) error                  { return nil }
func (n *Null) SetGain(Channel, float32) error      { return nil }
func (n *Null) SetPitch(Channel, float32) error     { return nil }
func (n *Null) SetLoop(Channel, bool) error         { return nil }
func (n *Null) SetPosition(Channel, geom.Vec3) error { return nil }
func (n *Null) SetVelocity(Channel, geom.Vec3) error { return nil }

func (n *Null) SetListener(Listener) error     { return nil }
func (n *Null) SetListenerGain(float32) error  { return nil }
func (n *Null) SetSpeedOfSound(float32) error  { return nil }
func (n *Null) SetDopplerFactor(float32) error { return nil }

func (n *Null) Effects() Effects { return NoopEffects{} }
func (n *Null) Close() error     { return nil }
