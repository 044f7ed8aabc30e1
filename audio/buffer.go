// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"context"
	"fmt"
	"io"
)

// SampleBuffer is a fully decoded clip: one float32 slice per channel, all of
// equal length, values in [-1,1].
//
// A SampleBuffer is treated as immutable once built, so it can be shared by
// readers on different goroutines.
type SampleBuffer struct {
	SampleRate int
	Data       [][]float32
}

// NewSampleBuffer allocates a silent buffer of the given shape.
func NewSampleBuffer(sampleRate, channels, frames int) *SampleBuffer {
	data := make([][]float32, channels)
	for c := range data {
		data[c] = make([]float32, frames)
	}

	return &SampleBuffer{SampleRate: sampleRate, Data: data}
}

func (b *SampleBuffer) Channels() int { return len(b.Data) }

// Frames is the per-channel sample count.
func (b *SampleBuffer) Frames() int {
	if len(b.Data) == 0 {
		return 0
	}
	return len(b.Data[0])
}

// Duration in seconds.
func (b *SampleBuffer) Duration() float64 {
	if b.SampleRate <= 0 {
		return 0
	}
	return float64(b.Frames()) / float64(b.SampleRate)
}

// Source streams the buffer as interleaved samples. Each call returns an
// independent reader positioned at the first frame.
func (b *SampleBuffer) Source() Source {
	return &bufferSource{buf: b}
}

type bufferSource struct {
	buf *SampleBuffer
	pos int
}

func (s *bufferSource) SampleRate() int { return s.buf.SampleRate }
func (s *bufferSource) Channels() int   { return s.buf.Channels() }
func (s *bufferSource) BufSize() int    { return 4096 }
func (s *bufferSource) Close() error    { return nil }

func (s *bufferSource) ReadSamples(dst []float32) (int, error) {
	channels := s.buf.Channels()
	if channels == 0 {
		return 0, io.EOF
	}
	if len(dst)%channels != 0 {
		return 0, ErrInvalidDstSize
	}

	frames := min(len(dst)/channels, s.buf.Frames()-s.pos)
	if frames <= 0 {
		return 0, io.EOF
	}

	for f := range frames {
		base := f * channels
		for c, ch := range s.buf.Data {
			dst[base+c] = ch[s.pos+f]
		}
	}
	s.pos += frames

	if s.pos >= s.buf.Frames() {
		return frames * channels, io.EOF
	}
	return frames * channels, nil
}

// maxEmptyReads bounds how many (0, nil) reads ReadAll tolerates in a row.
const maxEmptyReads = 64

// ReadAll drains src into a SampleBuffer. Nothing is returned on failure, so
// callers never observe a partially decoded clip. The source is not closed.
func ReadAll(ctx context.Context, src Source) (*SampleBuffer, error) {
	channels := src.Channels()
	rate := src.SampleRate()
	if channels <= 0 || rate <= 0 {
		return nil, ErrInvalidLayout
	}

	size := max(src.BufSize(), 1024)
	size -= size % channels
	tmp := make([]float32, size)

	out := &SampleBuffer{SampleRate: rate, Data: make([][]float32, channels)}
	empty := 0

	for {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("%w", err)
		}

		n, err := src.ReadSamples(tmp)
		// a trailing partial frame is dropped
		frames := n / channels
		for f := range frames {
			base := f * channels
			for c := range channels {
				out.Data[c] = append(out.Data[c], tmp[base+c])
			}
		}

		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}

		if n == 0 {
			empty++
			if empty > maxEmptyReads {
				return nil, io.ErrNoProgress
			}
			continue
		}
		empty = 0
	}

	return out, nil
}
