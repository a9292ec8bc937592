// SPDX-License-Identifier: EPL-2.0

package clip

import (
	"fmt"
	"io/fs"
	"sync"

	"github.com/ik5/soundstage/audio"
	"github.com/ik5/soundstage/backend"
)

// Clip is a decoded audio asset uploaded to the device. Clips are
// immutable once loaded and live until the cache is closed.
type Clip struct {
	// Key is the cache identity the clip was loaded under.
	Key string

	PCM    *audio.PCM
	Buffer backend.Buffer
}

// Cache loads clips from a file library, decodes them through the codec
// registry, uploads them to the backend, and deduplicates by key. The
// cache only grows; clips are released in one shot at Close.
type Cache struct {
	fsys  fs.FS
	reg   *audio.Registry
	dev   backend.Backend
	limit int

	clips map[string]*Clip

	mtx *sync.Mutex
}

// NewCache builds an empty cache over the given library. limit bounds
// the number of distinct clips; zero or negative means unbounded.
func NewCache(fsys fs.FS, reg *audio.Registry, dev backend.Backend, limit int) *Cache {
	return &Cache{
		fsys:  fsys,
		reg:   reg,
		dev:   dev,
		limit: limit,
		clips: make(map[string]*Clip),
		mtx:   &sync.Mutex{},
	}
}

// Key derives the cache identity for a clip file within an optional
// resource group. Clips with the same name in different groups are
// distinct assets.
func Key(name, group string) string {
	if group == "" {
		return name
	}
	return group + "/" + name
}

// Load returns the clip for (name, group), decoding and uploading it on
// first use. Failures leave the cache unmodified, so a later call with
// a fixed file can still succeed.
func (c *Cache) Load(name, group string) (*Clip, error) {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	key := Key(name, group)
	if cl, ok := c.clips[key]; ok {
		return cl, nil
	}

	if c.limit > 0 && len(c.clips) >= c.limit {
		return nil, ErrTooManyClips
	}

	dec, ok := c.reg.ForFile(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}

	f, err := c.fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("opening clip %q: %w", name, err)
	}
	defer f.Close()

	pcm, err := dec.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding clip %q: %w", name, err)
	}

	buf, err := c.dev.CreateBuffer(pcm)
	if err != nil {
		return nil, fmt.Errorf("uploading clip %q: %w", name, err)
	}

	cl := &Clip{Key: key, PCM: pcm, Buffer: buf}
	c.clips[key] = cl
	return cl, nil
}

// Len reports the number of cached clips.
func (c *Cache) Len() int {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	return len(c.clips)
}

// Close drops every cached clip. Device buffers are torn down with the
// backend itself, so Close only clears the table.
func (c *Cache) Close() {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	c.clips = make(map[string]*Clip)
}
