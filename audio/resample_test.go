// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"math"
	"testing"
)

func TestResample_SameRateCopies(t *testing.T) {
	t.Parallel()

	in := []float32{0.1, 0.2, 0.3, 0.4}
	out, err := Resample(in, 1, 8000, 8000)
	if err != nil {
		t.Fatalf("Resample() error = %v", err)
	}
	if len(out) != len(in) {
		t.Fatalf("len = %d, want %d", len(out), len(in))
	}
	for i := range in {
		if out[i] != in[i] {
			t.Errorf("out[%d] = %v, want %v", i, out[i], in[i])
		}
	}
	// Must be a copy, not an alias
	out[0] = 9
	if in[0] == 9 {
		t.Error("Resample aliased its input at equal rates")
	}
}

func TestResample_UpsampleLength(t *testing.T) {
	t.Parallel()

	in := make([]float32, 1000)
	out, err := Resample(in, 1, 8000, 16000)
	if err != nil {
		t.Fatalf("Resample() error = %v", err)
	}
	if len(out) != 2000 {
		t.Errorf("upsampled len = %d, want 2000", len(out))
	}
}

func TestResample_DownsampleLength(t *testing.T) {
	t.Parallel()

	in := make([]float32, 44100*2) // 1 second stereo
	out, err := Resample(in, 2, 44100, 8000)
	if err != nil {
		t.Fatalf("Resample() error = %v", err)
	}
	if len(out) != 8000*2 {
		t.Errorf("downsampled len = %d, want %d", len(out), 8000*2)
	}
}

func TestResample_ConstantSignalPreserved(t *testing.T) {
	t.Parallel()

	in := make([]float32, 500)
	for i := range in {
		in[i] = 0.25
	}

	out, err := Resample(in, 1, 8000, 16000)
	if err != nil {
		t.Fatalf("Resample() error = %v", err)
	}
	for i, v := range out {
		if math.Abs(float64(v-0.25)) > 1e-5 {
			t.Fatalf("out[%d] = %v, want 0.25", i, v)
		}
	}
}

func TestResample_PreservesChannelIdentity(t *testing.T) {
	t.Parallel()

	// Left channel constant 0.5, right channel constant -0.5
	frames := 200
	in := make([]float32, frames*2)
	for f := 0; f < frames; f++ {
		in[2*f] = 0.5
		in[2*f+1] = -0.5
	}

	out, err := Resample(in, 2, 8000, 12000)
	if err != nil {
		t.Fatalf("Resample() error = %v", err)
	}
	for f := 0; f < len(out)/2; f++ {
		if math.Abs(float64(out[2*f]-0.5)) > 1e-5 {
			t.Fatalf("left[%d] = %v, want 0.5", f, out[2*f])
		}
		if math.Abs(float64(out[2*f+1]+0.5)) > 1e-5 {
			t.Fatalf("right[%d] = %v, want -0.5", f, out[2*f+1])
		}
	}
}

func TestResample_Empty(t *testing.T) {
	t.Parallel()

	out, err := Resample([]float32{}, 1, 44100, 8000)
	if err != nil {
		t.Fatalf("Resample() error = %v", err)
	}
	if len(out) != 0 {
		t.Errorf("len = %d, want 0", len(out))
	}
}

func TestResample_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		samples  []float32
		channels int
		src, dst int
		want     error
	}{
		{"zero channels", []float32{0}, 0, 8000, 8000, ErrBadChannelCount},
		{"ragged buffer", []float32{0, 0, 0}, 2, 8000, 8000, ErrRaggedBuffer},
		{"zero src rate", []float32{0}, 1, 0, 8000, ErrBadSampleRate},
		{"negative dst rate", []float32{0}, 1, 8000, -1, ErrBadSampleRate},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Resample(tt.samples, tt.channels, tt.src, tt.dst)
			if !errors.Is(err, tt.want) {
				t.Errorf("Resample() error = %v, want %v", err, tt.want)
			}
		})
	}
}
