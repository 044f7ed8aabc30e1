// SPDX-License-Identifier: EPL-2.0

package waveform

import (
	"math"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/ik5/audcut/audio"
)

// Profile reduces the first channel of buf to width amplitudes, one per
// pixel column. Each column is the mean absolute value of its
// floor(frames/width) samples. When there are fewer samples than columns,
// column x shows sample x and the columns past the end are zero.
func Profile(buf *audio.SampleBuffer, width int) []float32 {
	if buf == nil || width <= 0 || buf.Channels() == 0 {
		return nil
	}

	ch := buf.Data[0]
	amps := make([]float32, width)
	spp := len(ch) / width

	if spp == 0 {
		for x := range min(width, len(ch)) {
			amps[x] = float32(math.Abs(float64(ch[x])))
		}
		return amps
	}

	for x := range amps {
		var sum float64
		for _, v := range ch[x*spp : (x+1)*spp] {
			sum += math.Abs(float64(v))
		}
		amps[x] = float32(sum / float64(spp))
	}

	return amps
}

type cacheKey struct {
	buf   *audio.SampleBuffer
	width int
}

// Cache memoizes profiles by buffer and width, so redraws that only move
// the selection or the playhead skip the pass over the samples. A resize
// asks for a new width and so computes a fresh profile.
type Cache struct {
	profiles *lru.Cache[cacheKey, []float32]
}

func NewCache(size int) (*Cache, error) {
	c, err := lru.New[cacheKey, []float32](size)
	if err != nil {
		return nil, err
	}
	return &Cache{profiles: c}, nil
}

// Profile returns the cached profile, computing it on a miss. The returned
// slice is shared and must not be modified.
func (c *Cache) Profile(buf *audio.SampleBuffer, width int) []float32 {
	if buf == nil || width <= 0 {
		return nil
	}

	key := cacheKey{buf: buf, width: width}
	if amps, ok := c.profiles.Get(key); ok {
		return amps
	}

	amps := Profile(buf, width)
	c.profiles.Add(key, amps)
	return amps
}

// Purge drops every profile, releasing the buffers they reference.
func (c *Cache) Purge() {
	c.profiles.Purge()
}

func (c *Cache) Len() int {
	return c.profiles.Len()
}
