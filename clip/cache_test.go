// SPDX-License-Identifier: EPL-2.0

package clip

import (
	"errors"
	"io"
	"testing"
	"testing/fstest"

	"github.com/ik5/soundstage/audio"
	"github.com/ik5/soundstage/internal/audiotest"
)

var errCorrupt = errors.New("corrupt payload")

// fakeDecoder decodes any input into a fixed one-frame clip, failing
// when the payload says "bad".
type fakeDecoder struct {
	calls int
}

func (d *fakeDecoder) Decode(r io.Reader) (*audio.PCM, error) {
	d.calls++

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if string(data) == "bad" {
		return nil, errCorrupt
	}

	return audiotest.NewSilentPCM(44100, 1, 1), nil
}

func newTestCache(t *testing.T, limit int) (*Cache, *fakeDecoder, *audiotest.MockBackend) {
	t.Helper()

	fsys := fstest.MapFS{
		"horn.snd":        {Data: []byte("ok")},
		"engine/idle.snd": {Data: []byte("ok")},
		"broken.snd":      {Data: []byte("bad")},
		"notes.txt":       {Data: []byte("ok")},
	}

	dec := &fakeDecoder{}
	reg := audio.NewRegistry()
	reg.Register("snd", dec)

	dev := audiotest.NewMockBackend(4)
	return NewCache(fsys, reg, dev, limit), dec, dev
}

func TestCache_LoadAndDedup(t *testing.T) {
	t.Parallel()

	cache, dec, dev := newTestCache(t, 0)

	first, err := cache.Load("horn.snd", "")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if first.Buffer == 0 {
		t.Error("Buffer = 0, want device buffer id")
	}
	if first.PCM == nil {
		t.Error("PCM = nil")
	}

	again, err := cache.Load("horn.snd", "")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if again != first {
		t.Error("second Load() returned a different clip")
	}
	if dec.calls != 1 {
		t.Errorf("decoder calls = %d, want 1", dec.calls)
	}
	if len(dev.Buffers) != 1 {
		t.Errorf("device buffers = %d, want 1", len(dev.Buffers))
	}
}

func TestCache_GroupsSeparateIdentity(t *testing.T) {
	t.Parallel()

	cache, dec, _ := newTestCache(t, 0)

	a, err := cache.Load("horn.snd", "truck")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	b, err := cache.Load("horn.snd", "car")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if a == b {
		t.Error("clips in different groups must not share identity")
	}
	if a.Key != "truck/horn.snd" {
		t.Errorf("Key = %q, want %q", a.Key, "truck/horn.snd")
	}
	if dec.calls != 2 {
		t.Errorf("decoder calls = %d, want 2", dec.calls)
	}
}

func TestCache_Limit(t *testing.T) {
	t.Parallel()

	cache, _, _ := newTestCache(t, 1)

	if _, err := cache.Load("horn.snd", ""); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	_, err := cache.Load("engine/idle.snd", "")
	if !errors.Is(err, ErrTooManyClips) {
		t.Fatalf("Load() error = %v, want ErrTooManyClips", err)
	}

	// cached entry still resolves once the table is full
	if _, err := cache.Load("horn.snd", ""); err != nil {
		t.Errorf("Load() of cached clip error = %v", err)
	}
}

func TestCache_DecodeFailureLeavesCacheUntouched(t *testing.T) {
	t.Parallel()

	cache, _, dev := newTestCache(t, 0)

	_, err := cache.Load("broken.snd", "")
	if !errors.Is(err, errCorrupt) {
		t.Fatalf("Load() error = %v, want errCorrupt", err)
	}
	if cache.Len() != 0 {
		t.Errorf("Len() = %d after failed load, want 0", cache.Len())
	}
	if len(dev.Buffers) != 0 {
		t.Errorf("device buffers = %d after failed load, want 0", len(dev.Buffers))
	}
}

func TestCache_UploadFailureLeavesCacheUntouched(t *testing.T) {
	t.Parallel()

	cache, _, dev := newTestCache(t, 0)
	dev.FailCreateBuffer = errors.New("device full")

	if _, err := cache.Load("horn.snd", ""); err == nil {
		t.Fatal("Load() error = nil, want upload failure")
	}
	if cache.Len() != 0 {
		t.Errorf("Len() = %d after failed upload, want 0", cache.Len())
	}
}

func TestCache_UnknownExtension(t *testing.T) {
	t.Parallel()

	cache, _, _ := newTestCache(t, 0)

	_, err := cache.Load("notes.txt", "")
	if !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("Load() error = %v, want ErrUnknownFormat", err)
	}
}

func TestCache_MissingFile(t *testing.T) {
	t.Parallel()

	cache, _, _ := newTestCache(t, 0)

	if _, err := cache.Load("missing.snd", ""); err == nil {
		t.Fatal("Load() error = nil, want open failure")
	}
}

func TestCache_Close(t *testing.T) {
	t.Parallel()

	cache, _, _ := newTestCache(t, 0)

	if _, err := cache.Load("horn.snd", ""); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	cache.Close()
	if cache.Len() != 0 {
		t.Errorf("Len() = %d after Close, want 0", cache.Len())
	}
}

func TestKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		group string
		want  string
	}{
		{"horn.wav", "", "horn.wav"},
		{"horn.wav", "truck", "truck/horn.wav"},
		{"engine/idle.wav", "truck", "truck/engine/idle.wav"},
	}

	for _, tt := range tests {
		tt := tt
		if got := Key(tt.name, tt.group); got != tt.want {
			t.Errorf("Key(%q, %q) = %q, want %q", tt.name, tt.group, got, tt.want)
		}
	}
}
