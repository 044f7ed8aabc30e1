// SPDX-License-Identifier: EPL-2.0

package playback

import (
	"fmt"
	"sync"
	"time"

	"github.com/ik5/audcut/audio"
	"github.com/ik5/audcut/selection"
	"github.com/pion/logging"
)

// DefaultPollInterval is how often the monitor reads the transport position.
const DefaultPollInterval = 100 * time.Millisecond

// State is whether the controller is playing.
type State int

const (
	Stopped State = iota
	Playing
)

func (s State) String() string {
	if s == Playing {
		return "playing"
	}
	return "stopped"
}

// Controller keeps playback inside the selection held by a selection.Machine.
// Playing starts at the selection start when the transport is outside it,
// and reaching the selection end pauses and rewinds to the start.
//
// The controller locks itself before the machine, never the reverse.
type Controller struct {
	mtx sync.Mutex

	transport Transport
	sel       *selection.Machine
	log       logging.LeveledLogger
	interval  time.Duration

	state State
	stop  chan struct{}
	done  chan struct{}
}

// NewController builds a controller. A nil transport is allowed; every
// playback call then fails with audio.ErrResource. A zero interval disables
// the position monitor, leaving OnTimeUpdate to the caller.
func NewController(t Transport, sel *selection.Machine, interval time.Duration, log logging.LeveledLogger) *Controller {
	if log == nil {
		log = logging.NewDefaultLoggerFactory().NewLogger("playback")
	}

	return &Controller{
		transport: t,
		sel:       sel,
		log:       log,
		interval:  max(interval, 0),
	}
}

func (c *Controller) State() State {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	return c.state
}

// Load hands buf to the transport and stops any playback.
func (c *Controller) Load(buf *audio.SampleBuffer) error {
	c.mtx.Lock()
	if c.transport == nil {
		c.mtx.Unlock()
		return fmt.Errorf("%w: no playback transport", audio.ErrResource)
	}

	done := c.pauseLocked()
	err := c.transport.Load(buf)
	c.mtx.Unlock()

	wait(done)
	if err != nil {
		return fmt.Errorf("%w: loading transport: %w", audio.ErrResource, err)
	}
	return nil
}

// Toggle pauses when playing and plays when stopped.
func (c *Controller) Toggle() error {
	c.mtx.Lock()
	if c.transport == nil {
		c.mtx.Unlock()
		return fmt.Errorf("%w: no playback transport", audio.ErrResource)
	}

	if c.state == Playing {
		done := c.pauseLocked()
		c.mtx.Unlock()
		wait(done)
		return nil
	}

	defer c.mtx.Unlock()
	return c.playLocked()
}

// Pause stops playback and the monitor. It is a no-op when stopped.
func (c *Controller) Pause() {
	c.mtx.Lock()
	done := c.pauseLocked()
	c.mtx.Unlock()

	wait(done)
}

// Seek moves the transport without changing the play state.
func (c *Controller) Seek(seconds float64) error {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	if c.transport == nil {
		return fmt.Errorf("%w: no playback transport", audio.ErrResource)
	}
	if err := c.transport.Seek(seconds); err != nil {
		return fmt.Errorf("%w: seeking to %.3fs: %w", audio.ErrResource, seconds, err)
	}
	return nil
}

// OnTimeUpdate reports a transport position. While playing it moves the
// playhead, jumps to the selection start when the playhead is before it, and
// once the playhead reaches the selection end it pauses and rewinds to the
// start. An active drag owns the playhead, so the update is ignored and
// these checks skipped until the drag ends.
func (c *Controller) OnTimeUpdate(seconds float64) {
	c.mtx.Lock()
	c.onTimeUpdateLocked(seconds)
	c.mtx.Unlock()
}

// Release stops the monitor, pauses and releases the clip held by the
// transport.
func (c *Controller) Release() error {
	c.mtx.Lock()
	if c.transport == nil {
		c.mtx.Unlock()
		return nil
	}

	done := c.pauseLocked()
	err := c.transport.Release()
	c.mtx.Unlock()

	wait(done)
	if err != nil {
		return fmt.Errorf("%w: releasing transport: %w", audio.ErrResource, err)
	}
	return nil
}

func (c *Controller) playLocked() error {
	s := c.sel.State()
	if s.Degenerate() {
		return fmt.Errorf("%w: nothing to play", audio.ErrInvalidRange)
	}

	pos := c.transport.Position()
	if pos < s.Start || pos >= s.End {
		if err := c.transport.Seek(s.Start); err != nil {
			return fmt.Errorf("%w: seeking to selection start: %w", audio.ErrResource, err)
		}
		c.sel.SetCurrent(s.Start)
		pos = s.Start
	}

	if err := c.transport.Play(); err != nil {
		return fmt.Errorf("%w: starting playback: %w", audio.ErrResource, err)
	}

	c.state = Playing
	c.log.Debugf("playing [%.3f, %.3f] from %.3f", s.Start, s.End, pos)

	if c.interval > 0 {
		c.stop = make(chan struct{})
		c.done = make(chan struct{})
		go c.monitor(c.stop, c.done)
	}

	return nil
}

// pauseLocked pauses and signals the monitor to stop. The returned channel
// closes when the monitor has exited; wait on it only after unlocking.
func (c *Controller) pauseLocked() chan struct{} {
	done := c.stopMonitorLocked()
	if c.state == Playing {
		c.transport.Pause()
		c.state = Stopped
		c.log.Debug("paused")
	}
	return done
}

func (c *Controller) stopMonitorLocked() chan struct{} {
	if c.stop == nil {
		return nil
	}

	close(c.stop)
	done := c.done
	c.stop, c.done = nil, nil
	return done
}

func (c *Controller) onTimeUpdateLocked(seconds float64) {
	if c.state != Playing {
		return
	}

	s, ok := c.sel.SetCurrent(seconds)
	switch {
	case !ok:
		return
	case s.Current < s.Start:
		// The start edge moved past the playhead.
		c.log.Debugf("playhead %.3f before selection start, jumping to %.3f", s.Current, s.Start)
		if err := c.transport.Seek(s.Start); err != nil {
			c.log.Warnf("seeking to %.3f: %v", s.Start, err)
		}
		c.sel.SetCurrent(s.Start)
	case s.Current >= s.End:
		c.log.Debugf("reached selection end at %.3f, rewinding to %.3f", s.Current, s.Start)

		// Called from the monitor itself, so it is not waited for.
		_ = c.pauseLocked()
		if err := c.transport.Seek(s.Start); err != nil {
			c.log.Warnf("rewinding to %.3f: %v", s.Start, err)
		}
		c.sel.SetCurrent(s.Start)
	}
}

func (c *Controller) monitor(stop, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
		}

		c.mtx.Lock()
		select {
		case <-stop:
			c.mtx.Unlock()
			return
		default:
		}
		c.onTimeUpdateLocked(c.transport.Position())
		c.mtx.Unlock()
	}
}

func wait(done chan struct{}) {
	if done != nil {
		<-done
	}
}
