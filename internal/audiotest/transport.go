// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"sync"

	"github.com/ik5/audcut/audio"
)

// Transport is a scripted playback transport. The position only moves when a
// test calls Advance or SetPosition.
type Transport struct {
	mtx sync.Mutex

	buf      *audio.SampleBuffer
	pos      float64
	playing  bool
	released bool
	seeks    []float64
	plays    int
	pauses   int

	// PlayErr is returned from Play when set.
	PlayErr error
}

func NewTransport() *Transport {
	return &Transport{}
}

func (t *Transport) Load(buf *audio.SampleBuffer) error {
	t.mtx.Lock()
	defer t.mtx.Unlock()

	t.buf = buf
	t.pos = 0
	t.playing = false
	t.released = false

	return nil
}

func (t *Transport) Play() error {
	t.mtx.Lock()
	defer t.mtx.Unlock()

	if t.PlayErr != nil {
		return t.PlayErr
	}
	t.playing = true
	t.plays++

	return nil
}

func (t *Transport) Pause() {
	t.mtx.Lock()
	defer t.mtx.Unlock()

	t.playing = false
	t.pauses++
}

func (t *Transport) Seek(seconds float64) error {
	t.mtx.Lock()
	defer t.mtx.Unlock()

	t.pos = seconds
	t.seeks = append(t.seeks, seconds)

	return nil
}

func (t *Transport) Position() float64 {
	t.mtx.Lock()
	defer t.mtx.Unlock()

	return t.pos
}

func (t *Transport) Release() error {
	t.mtx.Lock()
	defer t.mtx.Unlock()

	t.buf = nil
	t.playing = false
	t.released = true

	return nil
}

// Advance moves the position forward by seconds while playing.
func (t *Transport) Advance(seconds float64) float64 {
	t.mtx.Lock()
	defer t.mtx.Unlock()

	if t.playing {
		t.pos += seconds
	}
	return t.pos
}

// SetPosition moves the position regardless of state, like an element
// reporting a new currentTime.
func (t *Transport) SetPosition(seconds float64) {
	t.mtx.Lock()
	defer t.mtx.Unlock()

	t.pos = seconds
}

func (t *Transport) Playing() bool {
	t.mtx.Lock()
	defer t.mtx.Unlock()

	return t.playing
}

func (t *Transport) Released() bool {
	t.mtx.Lock()
	defer t.mtx.Unlock()

	return t.released
}

func (t *Transport) Loaded() *audio.SampleBuffer {
	t.mtx.Lock()
	defer t.mtx.Unlock()

	return t.buf
}

// Seeks returns a copy of every Seek argument so far.
func (t *Transport) Seeks() []float64 {
	t.mtx.Lock()
	defer t.mtx.Unlock()

	return append([]float64(nil), t.seeks...)
}

// Counts reports how many times Play and Pause were called.
func (t *Transport) Counts() (plays, pauses int) {
	t.mtx.Lock()
	defer t.mtx.Unlock()

	return t.plays, t.pauses
}
