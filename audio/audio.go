// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"encoding/binary"
	"io"
	"path"
	"strings"
	"sync"

	"github.com/ik5/soundstage/utils"
)

// PCM is a fully decoded, fully buffered audio clip.
//
// Data holds raw little-endian PCM interleaved by channel: unsigned bytes
// for 8-bit depth, signed 16-bit words for 16-bit depth. Clips are
// immutable after decoding; the engine never streams.
type PCM struct {
	Channels      int
	SampleRate    int
	BitsPerSample int
	Data          []byte
}

// Frames returns the number of sample frames in the clip.
func (p *PCM) Frames() int {
	bytesPerFrame := p.Channels * p.BitsPerSample / 8
	if bytesPerFrame == 0 {
		return 0
	}
	return len(p.Data) / bytesPerFrame
}

// Floats converts the raw PCM payload to normalized interleaved float32
// samples in [-1, 1]. A new slice is allocated on every call.
func (p *PCM) Floats() []float32 {
	switch p.BitsPerSample {
	case 8:
		out := make([]float32, len(p.Data))
		for i, b := range p.Data {
			out[i] = utils.Uint8ToFloat32(b)
		}
		return out
	case 16:
		n := len(p.Data) / 2
		out := make([]float32, n)
		for i := 0; i < n; i++ {
			v := int16(binary.LittleEndian.Uint16(p.Data[2*i : 2*i+2]))
			out[i] = utils.Int16ToFloat32(v)
		}
		return out
	default:
		return nil
	}
}

// Decoder constructs a PCM clip from an input reader.
type Decoder interface {
	Decode(r io.Reader) (*PCM, error)
}

// Registry maps file extensions (without the dot, lower-case: "wav",
// "mp3", "ogg", "aiff") to decoders.
type Registry struct {
	codecs map[string]Decoder

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		codecs: make(map[string]Decoder),
		mtx:    &sync.Mutex{},
	}
}

func (r *Registry) Register(ext string, d Decoder) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.codecs[strings.ToLower(ext)] = d
}

func (r *Registry) Get(ext string) (Decoder, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	d, ok := r.codecs[strings.ToLower(ext)]
	return d, ok
}

// ForFile returns the decoder registered for the file's extension.
func (r *Registry) ForFile(name string) (Decoder, bool) {
	ext := strings.TrimPrefix(path.Ext(name), ".")
	if ext == "" {
		return nil, false
	}
	return r.Get(ext)
}
