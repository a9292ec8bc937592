// SPDX-License-Identifier: EPL-2.0

package soundstage

import (
	"math"

	"github.com/ik5/soundstage/backend"
	"github.com/ik5/soundstage/geom"
)

// Reflection probing around the listener. Surfaces further out than
// the probe distance do not influence early reflections.
const (
	reflectionProbeDistance = 2.0
	reflectionsBoostGain    = 3.15
)

// Obstruction low-pass applied to a channel whose direct path to the
// listener is blocked.
var obstructionLowpass = backend.LowpassFilter{Gain: 0.33, GainHF: 0.25}

// RegisterPreset adds a named environment reverb preset. Returns false
// when the name is already taken.
func (m *Manager) RegisterPreset(name string, props backend.ReverbProperties) bool {
	if m.closed || name == "" {
		return false
	}
	if _, exists := m.presets[name]; exists {
		return false
	}

	m.presets[name] = props
	return true
}

// UnregisterPreset removes a named preset. Returns false for unknown
// names. Removing the active preset detaches it from the listener.
func (m *Manager) UnregisterPreset(name string) bool {
	if m.closed {
		return false
	}
	if _, exists := m.presets[name]; !exists {
		return false
	}

	delete(m.presets, name)
	if m.activePreset == name {
		m.activePreset = ""
		if m.cfg.EnableEffects {
			m.applyEnvironment()
		}
	}
	return true
}

// SetListenerEnvironment records the reverb preset for the listener's
// surroundings. Unknown names resolve to no effect. The effect slot is
// refreshed on the next listener update, or immediately when effects
// are enabled.
func (m *Manager) SetListenerEnvironment(name string) {
	if m.closed {
		return
	}

	if _, known := m.presets[name]; !known {
		if name != "" {
			m.log.Debug("unknown environment preset", "preset", name)
		}
		name = ""
	}
	m.activePreset = name

	if m.cfg.EnableEffects {
		m.applyEnvironment()
	}
}

// ListenerEnvironment returns the active preset name, empty when no
// effect is applied.
func (m *Manager) ListenerEnvironment() string { return m.activePreset }

// applyEnvironment updates the listener-global effect slot: lazily
// creates the effect for a never-seen preset, optionally retunes its
// early reflections from nearby geometry, then attaches it. Creation
// failures degrade to no effect and are not retried; the preset keeps
// its zero entry.
func (m *Manager) applyEnvironment() {
	fx := m.dev.Effects()

	if m.activePreset == "" {
		m.absorb(fx.AttachListenerEffect(0))
		return
	}

	props := m.presets[m.activePreset]

	effect, seen := m.effects[m.activePreset]
	if !seen {
		created, err := fx.CreateEffect(props)
		if err != nil {
			m.log.Warn("environment effect creation failed",
				"preset", m.activePreset, "error", err)
			created = 0
		}
		m.effects[m.activePreset] = created
		effect = created
	}

	if effect == 0 {
		m.absorb(fx.AttachListenerEffect(0))
		return
	}

	if m.cfg.EnableReflections && m.cfg.Probe != nil {
		m.absorb(fx.UpdateEffect(effect, m.tuneReflections(props)))
	}

	m.absorb(fx.AttachListenerEffect(effect))
}

// tuneReflections probes for surfaces around the listener and rewrites
// the preset's early-reflection panning, delay, and gain to match.
// Rays go out in a horizontal ring plus a vertical pair; with no hits
// inside the probe distance, the preset defaults stand.
func (m *Manager) tuneReflections(props backend.ReverbProperties) backend.ReverbProperties {
	forward := m.listener.Forward.Normalized()
	up := m.listener.Up.Normalized()

	var (
		panSum  geom.Vec3
		hits    int
		closest = float32(math.MaxFloat32)
	)

	probe := func(dir geom.Vec3) {
		hit, dist := m.cfg.Probe(m.listener.Position, dir.Scale(2*reflectionProbeDistance))
		if !hit || dist > reflectionProbeDistance {
			return
		}

		hits++
		panSum = panSum.Add(dir.Scale(1 - dist/reflectionProbeDistance))
		if dist < closest {
			closest = dist
		}
	}

	for angle := 0; angle < 360; angle += 90 {
		rad := float32(angle) * math.Pi / 180
		probe(forward.RotatedAround(up, rad).Normalized())
	}
	for angle := 0; angle < 360; angle += 180 {
		rad := float32(angle) * math.Pi / 180
		probe(up.RotatedAround(forward, rad).Normalized())
	}

	if hits == 0 {
		return props
	}

	// surfaces further away give less focused reflections
	magnitude := 1 - panSum.Length()/reflectionProbeDistance

	// express panning in listener space; reverb panning vectors are
	// left-handed, so z flips
	right := forward.Cross(up).Normalized()
	dir := panSum.Normalized()
	pan := geom.Vec3{
		X: dir.Dot(right),
		Y: dir.Dot(up),
		Z: dir.Dot(forward),
	}
	props.ReflectionsPan = pan.Normalized().Scale(magnitude)
	props.ReflectionsDelay = closest / m.speedOfSound
	props.ReflectionsGain = reflectionsBoostGain

	return props
}

// updateObstruction casts one ray from the listener to every bound
// emitter; blocked channels get the fixed low-pass on their direct
// send, clear ones lose it. Runs each listener update when enabled.
func (m *Manager) updateObstruction() {
	fx := m.dev.Effects()

	for i := range m.pool.owners {
		ch := backend.Channel(i)
		owner := m.reg.get(m.pool.owner(ch))
		if owner == nil {
			continue
		}

		ray := owner.position.Sub(m.listener.Position)
		hit, _ := m.cfg.Probe(m.listener.Position, ray)
		if hit {
			f := obstructionLowpass
			m.absorb(fx.SetChannelLowpass(ch, &f))
		} else {
			m.absorb(fx.SetChannelLowpass(ch, nil))
		}
	}
}
