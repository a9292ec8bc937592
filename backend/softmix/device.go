// SPDX-License-Identifier: EPL-2.0

//go:build cgo

package softmix

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/gen2brain/malgo"
)

// Device wraps a Mixer in a real output device. The miniaudio callback
// pulls the mix, so playback runs without any goroutine of ours.
type Device struct {
	*Mixer

	ctx *malgo.AllocatedContext
	dev *malgo.Device

	scratch []float32
}

// New opens the default output device at the configured rate and starts
// pulling the mix.
func New(cfg Config) (*Device, error) {
	if cfg.SampleRate <= 0 {
		cfg.SampleRate = 44100
	}

	ctx, err := malgo.InitContext(nil, malgo.ContextConfig{}, func(string) {})
	if err != nil {
		return nil, fmt.Errorf("initializing audio context: %w", err)
	}

	d := &Device{
		Mixer: NewMixer(cfg),
		ctx:   ctx,
	}

	deviceConfig := malgo.DefaultDeviceConfig(malgo.Playback)
	deviceConfig.Playback.Format = malgo.FormatF32
	deviceConfig.Playback.Channels = 2
	deviceConfig.SampleRate = uint32(cfg.SampleRate)
	deviceConfig.PerformanceProfile = malgo.LowLatency

	dev, err := malgo.InitDevice(ctx.Context, deviceConfig, malgo.DeviceCallbacks{
		Data: func(output, _ []byte, frameCount uint32) {
			d.fill(output, int(frameCount))
		},
	})
	if err != nil {
		ctx.Uninit()
		ctx.Free()
		return nil, fmt.Errorf("initializing output device: %w", err)
	}

	if err := dev.Start(); err != nil {
		dev.Uninit()
		ctx.Uninit()
		ctx.Free()
		return nil, fmt.Errorf("starting output device: %w", err)
	}

	d.dev = dev
	return d, nil
}

func (d *Device) fill(output []byte, frames int) {
	n := frames * 2
	if cap(d.scratch) < n {
		d.scratch = make([]float32, n)
	}
	d.scratch = d.scratch[:n]

	d.Render(d.scratch)

	for i, s := range d.scratch {
		binary.LittleEndian.PutUint32(output[4*i:], math.Float32bits(s))
	}
}

func (d *Device) Close() error {
	if d.dev != nil {
		d.dev.Uninit()
		d.dev = nil
	}
	if d.ctx != nil {
		d.ctx.Uninit()
		d.ctx.Free()
		d.ctx = nil
	}
	return d.Mixer.Close()
}
