// SPDX-License-Identifier: EPL-2.0

package playback

import (
	"fmt"

	"github.com/gopxl/beep/v2"
	"github.com/ik5/audcut/audio"
)

// BufferStreamer plays a SampleBuffer as a beep.StreamSeeker. Mono is sent
// to both speakers; with more than two channels the first two are used.
// It is not safe for concurrent use; guard it with speaker.Lock when it is
// playing.
type BufferStreamer struct {
	buf *audio.SampleBuffer
	pos int
}

func NewBufferStreamer(buf *audio.SampleBuffer) *BufferStreamer {
	return &BufferStreamer{buf: buf}
}

// Format describes the stream for beep.
func (s *BufferStreamer) Format() beep.Format {
	return beep.Format{
		SampleRate:  beep.SampleRate(s.buf.SampleRate),
		NumChannels: 2,
		Precision:   2,
	}
}

func (s *BufferStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	frames := s.Len()
	if s.pos >= frames {
		return 0, false
	}

	left := s.buf.Data[0]
	right := left
	if s.buf.Channels() > 1 {
		right = s.buf.Data[1]
	}

	n = min(len(samples), frames-s.pos)
	for i := range n {
		samples[i][0] = float64(left[s.pos+i])
		samples[i][1] = float64(right[s.pos+i])
	}
	s.pos += n

	return n, true
}

func (s *BufferStreamer) Err() error { return nil }

func (s *BufferStreamer) Len() int {
	if s.buf == nil || s.buf.Channels() == 0 {
		return 0
	}
	return s.buf.Frames()
}

func (s *BufferStreamer) Position() int { return s.pos }

func (s *BufferStreamer) Seek(p int) error {
	if p < 0 || p > s.Len() {
		return fmt.Errorf("%w: seek to frame %d of %d", audio.ErrInvalidRange, p, s.Len())
	}
	s.pos = p
	return nil
}
