package aiff

import (
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"

	"github.com/ik5/soundstage/audio"
)

// aiffReader is an interface for aiff.Decoder to allow testing
type aiffReader interface {
	Format() *goaudio.Format
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

type Decoder struct{}

// Decode reads a complete AIFF clip into memory as 16-bit PCM at the
// file's channel count and sample rate.
func (Decoder) Decode(r io.Reader) (*audio.PCM, error) {
	// go-audio requires io.ReadSeeker
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading aiff data: %w", err)
		}
		rs = &readSeeker{data: data}
	}

	dec := aiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}

	dec.ReadInfo()

	if dec.BitDepth != 16 {
		return nil, ErrOnlyPCM16bitSupported
	}

	format := dec.Format()
	if format == nil {
		return nil, ErrUnsupportedAiffLayout
	}

	return decodeAll(dec, format)
}

func decodeAll(dec aiffReader, format *goaudio.Format) (*audio.PCM, error) {
	var samples []int

	buf := &goaudio.IntBuffer{
		Data:   make([]int, 4096*format.NumChannels),
		Format: format,
	}
	for {
		n, err := dec.PCMBuffer(buf)
		samples = append(samples, buf.Data[:n]...)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading aiff samples: %w", err)
		}
		if n == 0 {
			break
		}
	}

	data := make([]byte, len(samples)*2)
	for i, s := range samples {
		v := uint16(int16(s))
		data[2*i] = byte(v)
		data[2*i+1] = byte(v >> 8)
	}

	return &audio.PCM{
		Channels:      format.NumChannels,
		SampleRate:    format.SampleRate,
		BitsPerSample: 16,
		Data:          data,
	}, nil
}

// readSeeker implements io.ReadSeeker for in-memory data
type readSeeker struct {
	data   []byte
	offset int64
}

func (rs *readSeeker) Read(p []byte) (n int, err error) {
	if rs.offset >= int64(len(rs.data)) {
		return 0, io.EOF
	}
	n = copy(p, rs.data[rs.offset:])
	rs.offset += int64(n)
	return n, nil
}

func (rs *readSeeker) Seek(offset int64, whence int) (int64, error) {
	var newOffset int64
	switch whence {
	case io.SeekStart:
		newOffset = offset
	case io.SeekCurrent:
		newOffset = rs.offset + offset
	case io.SeekEnd:
		newOffset = int64(len(rs.data)) + offset
	default:
		return 0, fmt.Errorf("invalid whence: %d", whence)
	}

	if newOffset < 0 {
		return 0, fmt.Errorf("negative position")
	}

	rs.offset = newOffset
	return newOffset, nil
}
