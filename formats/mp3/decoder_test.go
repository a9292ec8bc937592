// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"bytes"
	"encoding/binary"
	"io"
	"testing"
)

// mockMP3Reader simulates the gomp3.Decoder for testing
type mockMP3Reader struct {
	sampleRate int
	samples    []int16 // interleaved stereo PCM
	offset     int
	failRead   bool
}

func (m *mockMP3Reader) SampleRate() int { return m.sampleRate }

func (m *mockMP3Reader) Read(buf []byte) (int, error) {
	if m.failRead {
		return 0, io.ErrUnexpectedEOF
	}
	if m.offset >= len(m.samples) {
		return 0, io.EOF
	}

	n := 0
	for n+2 <= len(buf) && m.offset < len(m.samples) {
		binary.LittleEndian.PutUint16(buf[n:n+2], uint16(m.samples[m.offset]))
		n += 2
		m.offset++
	}
	return n, nil
}

func TestDecodeAll_CollectsWholeClip(t *testing.T) {
	t.Parallel()

	samples := []int16{100, -100, 200, -200, 300, -300, 400, -400}
	mock := &mockMP3Reader{sampleRate: 44100, samples: samples}

	pcm, err := decodeAll(mock)
	if err != nil {
		t.Fatalf("decodeAll() error = %v", err)
	}

	if pcm.Channels != 2 {
		t.Errorf("Channels = %d, want 2", pcm.Channels)
	}
	if pcm.SampleRate != 44100 {
		t.Errorf("SampleRate = %d, want 44100", pcm.SampleRate)
	}
	if pcm.BitsPerSample != 16 {
		t.Errorf("BitsPerSample = %d, want 16", pcm.BitsPerSample)
	}

	want := make([]byte, len(samples)*2)
	for i, s := range samples {
		binary.LittleEndian.PutUint16(want[2*i:2*i+2], uint16(s))
	}
	if !bytes.Equal(pcm.Data, want) {
		t.Errorf("Data = %v, want %v", pcm.Data, want)
	}
	if pcm.Frames() != 2 {
		t.Errorf("Frames() = %d, want 2", pcm.Frames())
	}
}

func TestDecodeAll_TruncatedFrameDropped(t *testing.T) {
	t.Parallel()

	// Three int16 values = one complete stereo frame plus half a frame
	mock := &mockMP3Reader{sampleRate: 48000, samples: []int16{1, 2, 3}}

	pcm, err := decodeAll(mock)
	if err != nil {
		t.Fatalf("decodeAll() error = %v", err)
	}
	if len(pcm.Data) != 4 {
		t.Errorf("Data len = %d, want 4 (partial frame dropped)", len(pcm.Data))
	}
}

func TestDecodeAll_ReadFailure(t *testing.T) {
	t.Parallel()

	mock := &mockMP3Reader{sampleRate: 44100, failRead: true}
	if _, err := decodeAll(mock); err == nil {
		t.Error("decodeAll() error = nil, want error")
	}
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	inputs := [][]byte{
		[]byte("This is not MP3 data"),
		{},
	}

	for _, in := range inputs {
		if _, err := (Decoder{}).Decode(bytes.NewReader(in)); err == nil {
			t.Errorf("Decode(%q) error = nil, want error", in)
		}
	}
}
