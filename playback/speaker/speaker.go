// SPDX-License-Identifier: EPL-2.0

package speaker

import (
	"fmt"
	"math"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/ik5/audcut/audio"
	"github.com/ik5/audcut/playback"
	"github.com/pion/logging"
)

// resampleQuality is the beep.Resample quality used when the clip rate
// differs from the device rate.
const resampleQuality = 4

// Transport plays clips on the default output device through beep/speaker.
// beep keeps one device per process, so use one Transport at a time.
type Transport struct {
	mtx sync.Mutex

	rate beep.SampleRate
	log  logging.LeveledLogger

	streamer *playback.BufferStreamer
	ctrl     *beep.Ctrl

	// queued is set while ctrl is in the speaker mixer. gen tells apart
	// the callbacks of earlier queues.
	queued atomic.Bool
	gen    atomic.Uint64
}

var _ playback.Transport = (*Transport)(nil)

// New opens the output device at rate Hz with a 100ms buffer.
func New(rate int, log logging.LeveledLogger) (*Transport, error) {
	if rate <= 0 {
		return nil, fmt.Errorf("%w: device rate %d", audio.ErrResource, rate)
	}
	if log == nil {
		log = logging.NewDefaultLoggerFactory().NewLogger("speaker")
	}

	sr := beep.SampleRate(rate)
	if err := speaker.Init(sr, sr.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("%w: opening output device: %w", audio.ErrResource, err)
	}
	log.Infof("output device open at %d Hz", rate)

	return &Transport{rate: sr, log: log}, nil
}

func (t *Transport) Load(buf *audio.SampleBuffer) error {
	if buf == nil || buf.SampleRate <= 0 {
		return fmt.Errorf("%w: %w", audio.ErrResource, audio.ErrInvalidLayout)
	}

	t.mtx.Lock()
	defer t.mtx.Unlock()

	t.clearLocked()
	t.streamer = playback.NewBufferStreamer(buf)

	return nil
}

func (t *Transport) Play() error {
	t.mtx.Lock()
	defer t.mtx.Unlock()

	if t.streamer == nil {
		return fmt.Errorf("%w: nothing loaded", audio.ErrResource)
	}

	if t.queued.Load() {
		speaker.Lock()
		t.ctrl.Paused = false
		speaker.Unlock()
		return nil
	}

	// The previous chain finished or was never queued. beep drops finished
	// streamers from its mixer, so build and queue a new one.
	var s beep.Streamer = t.streamer
	if src := t.streamer.Format().SampleRate; src != t.rate {
		s = beep.Resample(resampleQuality, src, t.rate, t.streamer)
	}

	gen := t.gen.Add(1)
	t.ctrl = &beep.Ctrl{Streamer: s}
	t.queued.Store(true)
	speaker.Play(beep.Seq(t.ctrl, beep.Callback(func() {
		if t.gen.Load() == gen {
			t.queued.Store(false)
		}
	})))

	return nil
}

func (t *Transport) Pause() {
	t.mtx.Lock()
	defer t.mtx.Unlock()

	if t.ctrl == nil {
		return
	}

	speaker.Lock()
	t.ctrl.Paused = true
	speaker.Unlock()
}

func (t *Transport) Seek(seconds float64) error {
	t.mtx.Lock()
	defer t.mtx.Unlock()

	if t.streamer == nil {
		return fmt.Errorf("%w: nothing loaded", audio.ErrResource)
	}

	frame := frameAt(seconds, t.streamer)

	speaker.Lock()
	err := t.streamer.Seek(frame)
	speaker.Unlock()

	return err
}

func (t *Transport) Position() float64 {
	t.mtx.Lock()
	defer t.mtx.Unlock()

	if t.streamer == nil {
		return 0
	}

	speaker.Lock()
	pos := t.streamer.Position()
	speaker.Unlock()

	return float64(pos) / float64(t.streamer.Format().SampleRate)
}

func (t *Transport) Release() error {
	t.mtx.Lock()
	defer t.mtx.Unlock()

	t.clearLocked()
	return nil
}

// Close releases the clip and shuts the output device.
func (t *Transport) Close() error {
	t.mtx.Lock()
	defer t.mtx.Unlock()

	t.clearLocked()
	speaker.Close()
	t.log.Info("output device closed")

	return nil
}

func (t *Transport) clearLocked() {
	if t.ctrl != nil {
		speaker.Clear()
	}
	t.gen.Add(1)
	t.queued.Store(false)
	t.ctrl = nil
	t.streamer = nil
}

// frameAt converts seconds to a frame of s, clamped to the stream.
func frameAt(seconds float64, s *playback.BufferStreamer) int {
	if math.IsNaN(seconds) || seconds < 0 {
		return 0
	}
	frame := int(math.Floor(seconds * float64(s.Format().SampleRate)))
	return min(frame, s.Len())
}
