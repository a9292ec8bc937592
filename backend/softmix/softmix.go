// SPDX-License-Identifier: EPL-2.0

package softmix

import (
	"math"
	"sync"

	"github.com/ik5/soundstage/audio"
	"github.com/ik5/soundstage/backend"
	"github.com/ik5/soundstage/geom"
	"github.com/ik5/soundstage/utils"
)

// Config sets up the software mixer.
type Config struct {
	// Channels is the number of simultaneous voices.
	Channels int

	// SampleRate is the output device rate. Clips are resampled to it
	// at upload.
	SampleRate int

	// Distance model parameters, inverse-distance-clamped.
	ReferenceDistance float32
	MaxDistance       float32
	RolloffFactor     float32
}

type voice struct {
	buffer  backend.Buffer
	playing bool
	loop    bool

	gain     float32
	pitch    float32
	position geom.Vec3
	velocity geom.Vec3

	cursor float64

	lowpass  *backend.LowpassFilter
	lpStateL float32
	lpStateR float32
}

// Mixer is the device-independent half of the softmix backend: voice
// state plus the render loop. It implements backend.Backend except that
// nothing pulls Render without an output device on top.
//
// The engine thread mutates voices through the Backend setters while
// the device callback runs Render; one mutex covers both.
type Mixer struct {
	cfg Config

	voices  []voice
	buffers map[backend.Buffer][]float32

	listener      backend.Listener
	listenerGain  float32
	speedOfSound  float32
	dopplerFactor float32

	fx *mixerEffects

	nextBuffer backend.Buffer

	mtx *sync.Mutex
}

// NewMixer builds a silent mixer with no buffers uploaded.
func NewMixer(cfg Config) *Mixer {
	if cfg.ReferenceDistance <= 0 {
		cfg.ReferenceDistance = 1
	}
	if cfg.MaxDistance <= 0 {
		cfg.MaxDistance = math.MaxFloat32
	}

	m := &Mixer{
		cfg:           cfg,
		voices:        make([]voice, cfg.Channels),
		buffers:       make(map[backend.Buffer][]float32),
		listenerGain:  1,
		speedOfSound:  343.3,
		dopplerFactor: 1,
		mtx:           &sync.Mutex{},
	}
	m.fx = &mixerEffects{mixer: m}
	m.listener.Forward = geom.Vec3{Z: -1}
	m.listener.Up = geom.Vec3{Y: 1}
	return m
}

func (m *Mixer) Channels() int { return len(m.voices) }

// CreateBuffer uploads a clip as mono float32 at the output rate.
// Spatialized voices are mono; stereo clips are downmixed.
func (m *Mixer) CreateBuffer(pcm *audio.PCM) (backend.Buffer, error) {
	samples := pcm.Floats()
	if samples == nil || pcm.Channels < 1 || pcm.SampleRate <= 0 {
		return 0, backend.ErrBadClip
	}

	mono, err := audio.DownmixMono(samples, pcm.Channels)
	if err != nil {
		return 0, err
	}

	mono, err = audio.Resample(mono, 1, pcm.SampleRate, m.cfg.SampleRate)
	if err != nil {
		return 0, err
	}

	m.mtx.Lock()
	defer m.mtx.Unlock()

	m.nextBuffer++
	m.buffers[m.nextBuffer] = mono
	return m.nextBuffer, nil
}

func (m *Mixer) SetBuffer(ch backend.Channel, buf backend.Buffer) error {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	v := &m.voices[ch]
	v.buffer = buf
	v.cursor = 0
	return nil
}

func (m *Mixer) Play(ch backend.Channel) error {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	v := &m.voices[ch]
	v.playing = true
	v.cursor = 0
	return nil
}

func (m *Mixer) Stop(ch backend.Channel) error {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	m.voices[ch].playing = false
	return nil
}

func (m *Mixer) SetGain(ch backend.Channel, gain float32) error {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	m.voices[ch].gain = gain
	return nil
}

func (m *Mixer) SetPitch(ch backend.Channel, pitch float32) error {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	m.voices[ch].pitch = pitch
	return nil
}

func (m *Mixer) SetLoop(ch backend.Channel, loop bool) error {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	m.voices[ch].loop = loop
	return nil
}

func (m *Mixer) SetPosition(ch backend.Channel, pos geom.Vec3) error {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	m.voices[ch].position = pos
	return nil
}

func (m *Mixer) SetVelocity(ch backend.Channel, vel geom.Vec3) error {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	m.voices[ch].velocity = vel
	return nil
}

func (m *Mixer) SetListener(l backend.Listener) error {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	if l.Forward.IsZero() {
		l.Forward = geom.Vec3{Z: -1}
	}
	if l.Up.IsZero() {
		l.Up = geom.Vec3{Y: 1}
	}
	m.listener = l
	return nil
}

func (m *Mixer) SetListenerGain(gain float32) error {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	m.listenerGain = gain
	return nil
}

func (m *Mixer) SetSpeedOfSound(v float32) error {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	if v > 0 {
		m.speedOfSound = v
	}
	return nil
}

func (m *Mixer) SetDopplerFactor(f float32) error {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	if f >= 0 {
		m.dopplerFactor = f
	}
	return nil
}

func (m *Mixer) Effects() backend.Effects { return m.fx }

func (m *Mixer) Close() error {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	m.voices = make([]voice, len(m.voices))
	m.buffers = make(map[backend.Buffer][]float32)
	return nil
}

// Render mixes all playing voices into dst, an interleaved stereo
// float32 buffer. dst is overwritten, not accumulated into.
func (m *Mixer) Render(dst []float32) {
	for i := range dst {
		dst[i] = 0
	}

	m.mtx.Lock()
	defer m.mtx.Unlock()

	frames := len(dst) / 2
	for i := range m.voices {
		m.renderVoice(&m.voices[i], dst, frames)
	}

	if m.listenerGain != 1 {
		for i := range dst {
			dst[i] *= m.listenerGain
		}
	}
}

func (m *Mixer) renderVoice(v *voice, dst []float32, frames int) {
	if !v.playing {
		return
	}

	data := m.buffers[v.buffer]
	if len(data) == 0 {
		v.playing = false
		return
	}

	gain := v.gain * m.attenuation(v.position)
	panL, panR := m.pan(v.position)
	step := float64(v.pitch) * m.dopplerShift(v)
	if step <= 0 {
		return
	}

	for frame := 0; frame < frames; frame++ {
		if v.cursor >= float64(len(data)) {
			if !v.loop {
				v.playing = false
				return
			}
			v.cursor = math.Mod(v.cursor, float64(len(data)))
		}

		s := sampleCubic(data, v.cursor) * gain
		l, r := s*panL, s*panR

		if v.lowpass != nil {
			f := v.lowpass
			v.lpStateL += 0.2 * (l - v.lpStateL)
			v.lpStateR += 0.2 * (r - v.lpStateR)
			l = f.Gain * (v.lpStateL + f.GainHF*(l-v.lpStateL))
			r = f.Gain * (v.lpStateR + f.GainHF*(r-v.lpStateR))
		}

		dst[2*frame] += l
		dst[2*frame+1] += r

		v.cursor += step
	}
}

// attenuation applies the inverse-distance-clamped model.
func (m *Mixer) attenuation(pos geom.Vec3) float32 {
	d := pos.DistanceTo(m.listener.Position)
	if d < m.cfg.ReferenceDistance {
		d = m.cfg.ReferenceDistance
	}
	if d > m.cfg.MaxDistance {
		d = m.cfg.MaxDistance
	}

	ref := m.cfg.ReferenceDistance
	return ref / (ref + m.cfg.RolloffFactor*(d-ref))
}

// pan derives equal-power stereo weights from the source direction in
// listener space.
func (m *Mixer) pan(pos geom.Vec3) (float32, float32) {
	dir := pos.Sub(m.listener.Position)
	if dir.IsZero() {
		half := float32(math.Sqrt2 / 2)
		return half, half
	}
	dir = dir.Normalized()

	right := m.listener.Forward.Cross(m.listener.Up).Normalized()
	x := dir.Dot(right)

	angle := float64(x+1) * math.Pi / 4
	return float32(math.Cos(angle)), float32(math.Sin(angle))
}

// dopplerShift returns the pitch multiplier for a moving source and
// listener.
func (m *Mixer) dopplerShift(v *voice) float64 {
	if m.dopplerFactor == 0 {
		return 1
	}

	// velocities project onto the source-to-listener direction
	dir := m.listener.Position.Sub(v.position)
	if dir.IsZero() {
		return 1
	}
	dir = dir.Normalized()

	ss := m.speedOfSound
	vls := m.listener.Velocity.Dot(dir)
	vss := v.velocity.Dot(dir)

	limit := ss / m.dopplerFactor
	if vls > limit {
		vls = limit
	}
	if vss > limit {
		vss = limit
	}

	shift := float64(ss-m.dopplerFactor*vls) / float64(ss-m.dopplerFactor*vss)
	if shift <= 0 || math.IsNaN(shift) || math.IsInf(shift, 0) {
		return 1
	}
	return shift
}

func sampleCubic(data []float32, cursor float64) float32 {
	idx := int(cursor)
	frac := float32(cursor - float64(idx))

	at := func(i int) float32 {
		if i < 0 {
			i = 0
		}
		if i >= len(data) {
			i = len(data) - 1
		}
		return data[i]
	}

	return utils.CubicInterpolate(at(idx-1), at(idx), at(idx+1), at(idx+2), frac)
}

// mixerEffects supports per-channel low-pass obstruction filtering.
// Reverb effect creation is not implemented; callers degrade to no
// effect through the error return.
type mixerEffects struct {
	mixer *Mixer
}

func (fx *mixerEffects) CreateEffect(backend.ReverbProperties) (backend.Effect, error) {
	return 0, backend.ErrEffectsUnsupported
}

func (fx *mixerEffects) DeleteEffect(backend.Effect) error { return nil }

func (fx *mixerEffects) AttachListenerEffect(backend.Effect) error { return nil }

func (fx *mixerEffects) UpdateEffect(backend.Effect, backend.ReverbProperties) error { return nil }

func (fx *mixerEffects) SetChannelLowpass(ch backend.Channel, f *backend.LowpassFilter) error {
	fx.mixer.mtx.Lock()
	defer fx.mixer.mtx.Unlock()

	v := &fx.mixer.voices[ch]
	v.lowpass = f
	if f == nil {
		v.lpStateL, v.lpStateR = 0, 0
	}
	return nil
}
