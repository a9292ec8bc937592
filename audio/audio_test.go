// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"math"
	"testing"
)

type fakeDecoder struct{ id int }

func (fakeDecoder) Decode(io.Reader) (*PCM, error) { return nil, nil }

func TestRegistry_RegisterAndGet(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	r.Register("wav", fakeDecoder{1})
	r.Register("OGG", fakeDecoder{2})

	if _, ok := r.Get("wav"); !ok {
		t.Error("Get(wav) not found")
	}
	// Lookup is case-insensitive
	if _, ok := r.Get("WAV"); !ok {
		t.Error("Get(WAV) not found")
	}
	if _, ok := r.Get("ogg"); !ok {
		t.Error("Get(ogg) not found after Register(OGG)")
	}
	if _, ok := r.Get("mp3"); ok {
		t.Error("Get(mp3) found, want missing")
	}
}

func TestRegistry_ForFile(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	r.Register("wav", fakeDecoder{})

	tests := []struct {
		name string
		file string
		ok   bool
	}{
		{"plain", "horn.wav", true},
		{"nested path", "sounds/trucks/horn.wav", true},
		{"upper case ext", "HORN.WAV", true},
		{"unknown ext", "horn.mp3", false},
		{"no ext", "horn", false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if _, ok := r.ForFile(tt.file); ok != tt.ok {
				t.Errorf("ForFile(%q) ok = %v, want %v", tt.file, ok, tt.ok)
			}
		})
	}
}

func TestPCM_Frames(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		pcm  PCM
		want int
	}{
		{"mono 16-bit", PCM{Channels: 1, BitsPerSample: 16, Data: make([]byte, 20)}, 10},
		{"stereo 16-bit", PCM{Channels: 2, BitsPerSample: 16, Data: make([]byte, 20)}, 5},
		{"mono 8-bit", PCM{Channels: 1, BitsPerSample: 8, Data: make([]byte, 20)}, 20},
		{"empty", PCM{Channels: 1, BitsPerSample: 16}, 0},
		{"degenerate depth", PCM{Channels: 1, BitsPerSample: 0, Data: make([]byte, 20)}, 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.pcm.Frames(); got != tt.want {
				t.Errorf("Frames() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestPCM_Floats16(t *testing.T) {
	t.Parallel()

	// int16 values 0, 16384, -16384 in little-endian
	pcm := PCM{
		Channels:      1,
		SampleRate:    8000,
		BitsPerSample: 16,
		Data:          []byte{0x00, 0x00, 0x00, 0x40, 0x00, 0xC0},
	}

	got := pcm.Floats()
	want := []float32{0, 0.5, -0.5}

	if len(got) != len(want) {
		t.Fatalf("Floats() len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if math.Abs(float64(got[i]-want[i])) > 1e-6 {
			t.Errorf("Floats()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestPCM_Floats8(t *testing.T) {
	t.Parallel()

	pcm := PCM{
		Channels:      1,
		SampleRate:    8000,
		BitsPerSample: 8,
		Data:          []byte{128, 255, 0},
	}

	got := pcm.Floats()
	if len(got) != 3 {
		t.Fatalf("Floats() len = %d, want 3", len(got))
	}
	if got[0] != 0 {
		t.Errorf("silence sample = %v, want 0", got[0])
	}
	if got[1] <= 0.9 {
		t.Errorf("max sample = %v, want near 1", got[1])
	}
	if got[2] != -1 {
		t.Errorf("min sample = %v, want -1", got[2])
	}
}

func TestPCM_FloatsUnsupportedDepth(t *testing.T) {
	t.Parallel()

	pcm := PCM{Channels: 1, BitsPerSample: 24, Data: make([]byte, 6)}
	if got := pcm.Floats(); got != nil {
		t.Errorf("Floats() = %v, want nil for unsupported depth", got)
	}
}
