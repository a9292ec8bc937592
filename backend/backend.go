// SPDX-License-Identifier: EPL-2.0

package backend

import (
	"github.com/ik5/soundstage/audio"
	"github.com/ik5/soundstage/geom"
)

// Buffer identifies a clip uploaded to the device. The zero value is
// never a valid buffer.
type Buffer uint32

// Channel indexes a hardware playback unit in [0, capacity).
type Channel int

// Effect identifies a created environment effect resource. The zero
// value is never a valid effect.
type Effect uint32

// Listener is the full listener pose pushed to the device each frame.
type Listener struct {
	Position geom.Vec3
	Velocity geom.Vec3
	Forward  geom.Vec3
	Up       geom.Vec3
}

// ReverbProperties is a fixed-size environment reverb parameter set,
// resolved from a named preset before it reaches the backend.
type ReverbProperties struct {
	Density             float32
	Diffusion           float32
	Gain                float32
	GainHF              float32
	GainLF              float32
	DecayTime           float32
	DecayHFRatio        float32
	DecayLFRatio        float32
	ReflectionsGain     float32
	ReflectionsDelay    float32
	ReflectionsPan      geom.Vec3
	LateReverbGain      float32
	LateReverbDelay     float32
	LateReverbPan       geom.Vec3
	EchoTime            float32
	EchoDepth           float32
	ModulationTime      float32
	ModulationDepth     float32
	AirAbsorptionGainHF float32
	HFReference         float32
	LFReference         float32
	RoomRolloffFactor   float32
	DecayHFLimit        bool
}

// LowpassFilter attenuates a channel's direct signal path. Gain scales
// the whole band, GainHF only the high end.
type LowpassFilter struct {
	Gain   float32
	GainHF float32
}

// Backend is the hardware playback surface the engine drives. All
// calls are synchronous driver calls: blocking, non-reentrant, and
// single-threaded.
//
// Per-channel setters on an unbound or out-of-range channel are
// programming errors; implementations may panic.
type Backend interface {
	// Channels reports how many playback units the device offers.
	Channels() int

	CreateBuffer(pcm *audio.PCM) (Buffer, error)

	SetBuffer(ch Channel, buf Buffer) error
	Play(ch Channel) error
	Stop(ch Channel) error
	SetGain(ch Channel, gain float32) error
	SetPitch(ch Channel, pitch float32) error
	SetLoop(ch Channel, loop bool) error
	SetPosition(ch Channel, pos geom.Vec3) error
	SetVelocity(ch Channel, vel geom.Vec3) error

	SetListener(l Listener) error
	SetListenerGain(gain float32) error
	SetSpeedOfSound(v float32) error
	SetDopplerFactor(f float32) error

	// Effects returns the environment effect surface. Never nil;
	// devices without effect support return a no-op implementation.
	Effects() Effects

	Close() error
}

// Effects is the optional environment effect capability of a Backend.
// Callers never probe for support; unsupported devices get NoopEffects
// and every call degrades to "no effect".
type Effects interface {
	CreateEffect(p ReverbProperties) (Effect, error)
	DeleteEffect(e Effect) error

	// AttachListenerEffect routes the listener-global effect slot
	// through e. Attaching Effect(0) clears the slot.
	AttachListenerEffect(e Effect) error

	// UpdateEffect rewrites the parameters of a live effect, used for
	// early-reflection tuning between frames.
	UpdateEffect(e Effect, p ReverbProperties) error

	// SetChannelLowpass attaches a low-pass filter to a channel's
	// direct send; a nil filter detaches it.
	SetChannelLowpass(ch Channel, f *LowpassFilter) error
}

// NoopEffects is the Effects implementation for devices without
// environment effect support.
type NoopEffects struct{}

func (NoopEffects) CreateEffect(ReverbProperties) (Effect, error) { return 0, ErrEffectsUnsupported }
func (NoopEffects) DeleteEffect(Effect) error                     { return nil }
func (NoopEffects) AttachListenerEffect(Effect) error             { return nil }
func (NoopEffects) UpdateEffect(Effect, ReverbProperties) error   { return nil }
func (NoopEffects) SetChannelLowpass(Channel, *LowpassFilter) error {
	return nil
}
