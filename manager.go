// SPDX-License-Identifier: EPL-2.0

package soundstage

import (
	"log/slog"

	"github.com/ik5/soundstage/audio"
	"github.com/ik5/soundstage/backend"
	"github.com/ik5/soundstage/clip"
	"github.com/ik5/soundstage/formats/aiff"
	"github.com/ik5/soundstage/formats/mp3"
	"github.com/ik5/soundstage/formats/vorbis"
	"github.com/ik5/soundstage/formats/wav"
	"github.com/ik5/soundstage/geom"
)

// Manager multiplexes logical emitters onto the fixed hardware channel
// pool and owns the clip cache, the listener state, and the environment
// effect slot.
//
// Manager is not safe for concurrent use. All scheduling and driver
// calls run synchronously on the caller's goroutine; a multi-threaded
// host must funnel calls through its own lock or queue.
type Manager struct {
	cfg Config
	log *slog.Logger

	dev   backend.Backend
	clips *clip.Cache
	reg   *registry
	pool  *channelPool

	listener      backend.Listener
	masterVolume  float32
	paused        bool
	speedOfSound  float32
	dopplerFactor float32

	presets      map[string]backend.ReverbProperties
	effects      map[string]backend.Effect
	activePreset string

	disabled bool
	closed   bool
}

func defaultCodecs() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register("oga", vorbis.Decoder{})
	reg.Register("aif", aiff.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	return reg
}

// New builds a Manager over the configured backend. A nil backend, or
// one exposing no channels, yields a disabled manager on which every
// call is a safe no-op; the host keeps its audio call sites unchanged
// and simply hears nothing.
func New(cfg Config) *Manager {
	cfg.fillDefaults()

	m := &Manager{
		cfg:           cfg,
		log:           cfg.Logger,
		masterVolume:  cfg.MasterVolume,
		speedOfSound:  cfg.SpeedOfSound,
		dopplerFactor: cfg.DopplerFactor,
		presets:       make(map[string]backend.ReverbProperties),
		effects:       make(map[string]backend.Effect),
		reg:           newRegistry(cfg.MaxEmitters),
	}
	m.listener.Forward = geom.Vec3{Z: -1}
	m.listener.Up = geom.Vec3{Y: 1}

	channels := 0
	if cfg.Backend != nil {
		channels = cfg.Backend.Channels()
		if cfg.Channels > 0 && cfg.Channels < channels {
			channels = cfg.Channels
		}
		if channels > MaxHardwareChannels {
			channels = MaxHardwareChannels
		}
	}

	if channels <= 0 {
		if cfg.Backend != nil {
			m.log.Warn("audio device offers no playback channels, sound disabled")
		}
		m.disabled = true
		m.dev = backend.NewNull(0)
	} else {
		m.dev = cfg.Backend
	}

	m.pool = newChannelPool(m.dev, channels, m.log)

	codecs := cfg.Codecs
	if codecs == nil {
		codecs = defaultCodecs()
	}
	m.clips = clip.NewCache(cfg.Library, codecs, m.dev, cfg.MaxClips)

	m.absorb(m.dev.SetListenerGain(m.masterVolume))
	m.absorb(m.dev.SetSpeedOfSound(m.speedOfSound))
	m.absorb(m.dev.SetDopplerFactor(m.dopplerFactor))

	for name, props := range builtinPresets {
		m.presets[name] = props
	}

	return m
}

// Disabled reports whether the manager runs without a device.
func (m *Manager) Disabled() bool { return m.disabled }

// HardwareChannels reports the playback channel pool size.
func (m *Manager) HardwareChannels() int { return m.pool.capacity() }

// CreateEmitter loads the named clip (decoding it on first use) and
// registers a new silent emitter for it. Play starts it.
func (m *Manager) CreateEmitter(name, group string) (*Emitter, error) {
	if m.disabled || m.closed {
		return &Emitter{m: m}, nil
	}

	cl, err := m.clips.Load(name, group)
	if err != nil {
		return nil, err
	}

	h, st, err := m.reg.alloc()
	if err != nil {
		return nil, err
	}
	st.clip = cl

	m.recompute(h, st, reasonNone)
	return &Emitter{m: m, h: h}, nil
}

// SetListener replaces the listener pose wholesale and reschedules
// every emitter against it.
func (m *Manager) SetListener(position, forward, up, velocity geom.Vec3) {
	if m.closed {
		return
	}

	m.listener = backend.Listener{
		Position: position,
		Velocity: velocity,
		Forward:  forward,
		Up:       up,
	}
	m.absorb(m.dev.SetListener(m.listener))

	m.rescheduleAll()

	if m.cfg.EnableEffects {
		m.applyEnvironment()
	}
	if m.cfg.EnableObstruction && m.cfg.Probe != nil {
		m.updateObstruction()
	}
}

// SetMasterVolume sets the global output gain in [0, 1]. While paused
// the new volume takes effect on resume.
func (m *Manager) SetMasterVolume(v float32) {
	if m.closed {
		return
	}

	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	m.masterVolume = v

	if !m.paused {
		m.absorb(m.dev.SetListenerGain(v))
	}
}

// MasterVolume returns the global output gain.
func (m *Manager) MasterVolume() float32 { return m.masterVolume }

// PauseAll mutes all output by dropping the listener gain; channel
// bindings and playback positions stay put.
func (m *Manager) PauseAll() {
	if m.closed {
		return
	}

	m.paused = true
	m.absorb(m.dev.SetListenerGain(0))
}

// ResumeAll restores the master volume after PauseAll.
func (m *Manager) ResumeAll() {
	if m.closed {
		return
	}

	m.paused = false
	m.absorb(m.dev.SetListenerGain(m.masterVolume))
}

// SetSpeedOfSound sets the speed used for doppler and reflection delay,
// in world units per second. Non-positive values are ignored.
func (m *Manager) SetSpeedOfSound(v float32) {
	if m.closed || v <= 0 {
		return
	}

	m.speedOfSound = v
	m.absorb(m.dev.SetSpeedOfSound(v))
}

// SpeedOfSound returns the current speed of sound.
func (m *Manager) SpeedOfSound() float32 { return m.speedOfSound }

// SetDopplerFactor scales the doppler effect; 0 disables it. Negative
// values are ignored.
func (m *Manager) SetDopplerFactor(f float32) {
	if m.closed || f < 0 {
		return
	}

	m.dopplerFactor = f
	m.absorb(m.dev.SetDopplerFactor(f))
}

// DopplerFactor returns the current doppler factor.
func (m *Manager) DopplerFactor() float32 { return m.dopplerFactor }

// Close stops every channel and tears down the clip cache. The backend
// itself belongs to the caller and is not closed here.
func (m *Manager) Close() {
	if m.closed {
		return
	}

	for i := range m.pool.owners {
		ch := backend.Channel(i)
		if !m.pool.isFree(ch) {
			m.retireChannel(ch)
		}
	}

	for _, e := range m.effects {
		if e != 0 {
			m.absorb(m.dev.Effects().DeleteEffect(e))
		}
	}
	m.absorb(m.dev.Effects().AttachListenerEffect(0))

	m.clips.Close()
	m.closed = true
}

func (m *Manager) absorb(err error) {
	if err != nil {
		m.log.Debug("driver call failed", "error", err)
	}
}
