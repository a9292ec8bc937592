// SPDX-License-Identifier: EPL-2.0

package soundstage

import (
	"io/fs"
	"log/slog"

	"github.com/ik5/soundstage/audio"
	"github.com/ik5/soundstage/backend"
	"github.com/ik5/soundstage/geom"
)

// MaxHardwareChannels is the hard upper bound on the playback channel
// pool, regardless of what the device offers.
const MaxHardwareChannels = 32

// Default distance model parameters. Distances are in world units
// (1 unit = 1 meter).
const (
	DefaultMaxDistance       = 500.0
	DefaultReferenceDistance = 7.5
	DefaultRolloffFactor     = 1.0
	DefaultSpeedOfSound      = 343.3
	DefaultDopplerFactor     = 1.0
)

// RayProbe is the external raycast oracle used for obstruction and
// reflection probing. dir carries the probe length in its magnitude.
// distance is meaningful only when hit is true.
type RayProbe func(origin, dir geom.Vec3) (hit bool, distance float32)

// Config configures a Manager.
type Config struct {
	// Backend is the playback device. When nil the manager starts
	// disabled: every call is a safe no-op.
	Backend backend.Backend

	// Library is the clip source tree. Required unless disabled.
	Library fs.FS

	// Codecs maps file extensions to decoders. nil installs the
	// built-in set (wav, mp3, ogg, aiff).
	Codecs *audio.Registry

	// Channels is the requested pool size. It is clamped to what the
	// backend offers and to MaxHardwareChannels. Zero means "as many
	// as the backend offers".
	Channels int

	// MaxClips bounds the clip cache; zero or negative is unbounded.
	MaxClips int

	// MaxEmitters bounds the live emitter count; zero or negative is
	// unbounded.
	MaxEmitters int

	MasterVolume float32

	// Distance model parameters; zero values take the defaults above.
	// Doppler can be turned off after startup with SetDopplerFactor(0).
	ReferenceDistance float32
	MaxDistance       float32
	RolloffFactor     float32
	SpeedOfSound      float32
	DopplerFactor     float32

	// EnableEffects turns on the environment reverb path.
	EnableEffects bool

	// EnableObstruction low-pass filters channels whose direct path to
	// the listener is blocked. Needs Probe.
	EnableObstruction bool

	// EnableReflections tunes early reflections from nearby geometry.
	// Needs Probe and EnableEffects.
	EnableReflections bool

	// Probe is the raycast oracle; nil disables obstruction and
	// reflection probing.
	Probe RayProbe

	// Logger receives degradation notices. nil means slog.Default.
	Logger *slog.Logger
}

func (cfg *Config) fillDefaults() {
	if cfg.MasterVolume <= 0 {
		cfg.MasterVolume = 1
	}
	if cfg.ReferenceDistance <= 0 {
		cfg.ReferenceDistance = DefaultReferenceDistance
	}
	if cfg.MaxDistance <= 0 {
		cfg.MaxDistance = DefaultMaxDistance
	}
	if cfg.RolloffFactor <= 0 {
		cfg.RolloffFactor = DefaultRolloffFactor
	}
	if cfg.SpeedOfSound <= 0 {
		cfg.SpeedOfSound = DefaultSpeedOfSound
	}
	if cfg.DopplerFactor <= 0 {
		cfg.DopplerFactor = DefaultDopplerFactor
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
}
