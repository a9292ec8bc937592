// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"fmt"

	"github.com/ik5/soundstage/audio"
	"github.com/ik5/soundstage/backend"
	"github.com/ik5/soundstage/geom"
)

// ChannelState mirrors what a real device would hold for one playback
// unit.
type ChannelState struct {
	Buffer   backend.Buffer
	Playing  bool
	Gain     float32
	Pitch    float32
	Loop     bool
	Position geom.Vec3
	Velocity geom.Vec3
}

// MockBackend is a recording backend.Backend. It keeps per-channel
// state and an ordered log of every driver call so tests can assert
// both the final hardware state and the exact call sequence.
type MockBackend struct {
	ChannelStates []ChannelState
	Log           []string

	Listener      backend.Listener
	ListenerGain  float32
	SpeedOfSound  float32
	DopplerFactor float32

	Buffers map[backend.Buffer]*audio.PCM

	// FailCreateBuffer makes CreateBuffer fail when set.
	FailCreateBuffer error

	FX *MockEffects

	nextBuffer backend.Buffer
	closed     bool
}

// NewMockBackend builds a mock with the given channel count and a
// recording effects surface.
func NewMockBackend(channels int) *MockBackend {
	m := &MockBackend{
		ChannelStates: make([]ChannelState, channels),
		ListenerGain:  1,
		Buffers:       make(map[backend.Buffer]*audio.PCM),
	}
	m.FX = &MockEffects{backend: m, Lowpass: make(map[backend.Channel]*backend.LowpassFilter)}
	return m
}

func (m *MockBackend) record(format string, args ...any) {
	m.Log = append(m.Log, fmt.Sprintf(format, args...))
}

func (m *MockBackend) Channels() int { return len(m.ChannelStates) }

// Closed reports whether Close was called.
func (m *MockBackend) Closed() bool { return m.closed }

func (m *MockBackend) CreateBuffer(pcm *audio.PCM) (backend.Buffer, error) {
	if m.FailCreateBuffer != nil {
		return 0, m.FailCreateBuffer
	}

	m.nextBuffer++
	m.Buffers[m.nextBuffer] = pcm
	m.record("CreateBuffer(%d)", m.nextBuffer)
	return m.nextBuffer, nil
}

func (m *MockBackend) SetBuffer(ch backend.Channel, buf backend.Buffer) error {
	m.ChannelStates[ch].Buffer = buf
	m.record("SetBuffer(%d, %d)", ch, buf)
	return nil
}

func (m *MockBackend) Play(ch backend.Channel) error {
	m.ChannelStates[ch].Playing = true
	m.record("Play(%d)", ch)
	return nil
}

func (m *MockBackend) Stop(ch backend.Channel) error {
	m.ChannelStates[ch].Playing = false
	m.record("Stop(%d)", ch)
	return nil
}

func (m *MockBackend) SetGain(ch backend.Channel, gain float32) error {
	m.ChannelStates[ch].Gain = gain
	m.record("SetGain(%d, %g)", ch, gain)
	return nil
}

func (m *MockBackend) SetPitch(ch backend.Channel, pitch float32) error {
	m.ChannelStates[ch].Pitch = pitch
	m.record("SetPitch(%d, %g)", ch, pitch)
	return nil
}

func (m *MockBackend) SetLoop(ch backend.Channel, loop bool) error {
	m.ChannelStates[ch].Loop = loop
	m.record("SetLoop(%d, %t)", ch, loop)
	return nil
}

func (m *MockBackend) SetPosition(ch backend.Channel, pos geom.Vec3) error {
	m.ChannelStates[ch].Position = pos
	m.record("SetPosition(%d)", ch)
	return nil
}

func (m *MockBackend) SetVelocity(ch backend.Channel, vel geom.Vec3) error {
	m.ChannelStates[ch].Velocity = vel
	m.record("SetVelocity(%d)", ch)
	return nil
}

func (m *MockBackend) SetListener(l backend.Listener) error {
	m.Listener = l
	m.record("SetListener")
	return nil
}

func (m *MockBackend) SetListenerGain(gain float32) error {
	m.ListenerGain = gain
	m.record("SetListenerGain(%g)", gain)
	return nil
}

func (m *MockBackend) SetSpeedOfSound(v float32) error {
	m.SpeedOfSound = v
	m.record("SetSpeedOfSound(%g)", v)
	return nil
}

func (m *MockBackend) SetDopplerFactor(f float32) error {
	m.DopplerFactor = f
	m.record("SetDopplerFactor(%g)", f)
	return nil
}

func (m *MockBackend) Effects() backend.Effects { return m.FX }

func (m *MockBackend) Close() error {
	m.closed = true
	m.record("Close")
	return nil
}

// MockEffects is a recording backend.Effects.
type MockEffects struct {
	backend *MockBackend

	Created  map[backend.Effect]backend.ReverbProperties
	Attached backend.Effect
	Lowpass  map[backend.Channel]*backend.LowpassFilter

	// FailCreateEffect makes CreateEffect fail when set.
	FailCreateEffect error

	nextEffect backend.Effect
}

func (fx *MockEffects) CreateEffect(p backend.ReverbProperties) (backend.Effect, error) {
	if fx.FailCreateEffect != nil {
		return 0, fx.FailCreateEffect
	}

	if fx.Created == nil {
		fx.Created = make(map[backend.Effect]backend.ReverbProperties)
	}
	fx.nextEffect++
	fx.Created[fx.nextEffect] = p
	fx.backend.record("CreateEffect(%d)", fx.nextEffect)
	return fx.nextEffect, nil
}

func (fx *MockEffects) DeleteEffect(e backend.Effect) error {
	delete(fx.Created, e)
	fx.backend.record("DeleteEffect(%d)", e)
	return nil
}

func (fx *MockEffects) AttachListenerEffect(e backend.Effect) error {
	fx.Attached = e
	fx.backend.record("AttachListenerEffect(%d)", e)
	return nil
}

func (fx *MockEffects) UpdateEffect(e backend.Effect, p backend.ReverbProperties) error {
	if fx.Created != nil {
		fx.Created[e] = p
	}
	fx.backend.record("UpdateEffect(%d)", e)
	return nil
}

func (fx *MockEffects) SetChannelLowpass(ch backend.Channel, f *backend.LowpassFilter) error {
	if f == nil {
		delete(fx.Lowpass, ch)
		fx.backend.record("ClearLowpass(%d)", ch)
		return nil
	}

	fx.Lowpass[ch] = f
	fx.backend.record("SetLowpass(%d)", ch)
	return nil
}
