// SPDX-License-Identifier: EPL-2.0

package backend

import (
	"testing"

	"github.com/ik5/soundstage/audio"
)

func TestNull_ImplementsBackend(t *testing.T) {
	t.Parallel()

	var _ Backend = NewNull(8)
}

func TestNull_BufferIDsAreDistinct(t *testing.T) {
	t.Parallel()

	n := NewNull(4)

	pcm := &audio.PCM{Channels: 1, SampleRate: 44100, BitsPerSample: 16}
	a, err := n.CreateBuffer(pcm)
	if err != nil {
		t.Fatalf("CreateBuffer() error = %v", err)
	}
	b, err := n.CreateBuffer(pcm)
	if err != nil {
		t.Fatalf("CreateBuffer() error = %v", err)
	}

	if a == 0 || b == 0 {
		t.Error("buffer ids must be non-zero")
	}
	if a == b {
		t.Errorf("buffer ids not distinct: %d", a)
	}
}

func TestNull_ChannelOpsAreSafe(t *testing.T) {
	t.Parallel()

	n := NewNull(2)
	if n.Channels() != 2 {
		t.Fatalf("Channels() = %d, want 2", n.Channels())
	}

	if err := n.Play(0); err != nil {
		t.Errorf("Play() error = %v", err)
	}
	if err := n.SetGain(1, 0.5); err != nil {
		t.Errorf("SetGain() error = %v", err)
	}
	if err := n.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}

func TestNoopEffects_Degrades(t *testing.T) {
	t.Parallel()

	fx := NewNull(1).Effects()
	if fx == nil {
		t.Fatal("Effects() = nil")
	}

	if _, err := fx.CreateEffect(ReverbProperties{}); err == nil {
		t.Error("CreateEffect() error = nil, want ErrEffectsUnsupported")
	}
	if err := fx.AttachListenerEffect(0); err != nil {
		t.Errorf("AttachListenerEffect() error = %v", err)
	}
	if err := fx.SetChannelLowpass(0, nil); err != nil {
		t.Errorf("SetChannelLowpass() error = %v", err)
	}
}
