// SPDX-License-Identifier: EPL-2.0

package render

import (
	"context"
	"fmt"
	"math"

	"github.com/ik5/audcut/audio"
	"golang.org/x/sync/errgroup"
)

// blockFrames is how many frames a worker processes between context checks.
const blockFrames = 1 << 15

// Trim copies [start, end) seconds of buf into a new buffer and applies fade.
// Channels are processed concurrently. buf is only read.
//
// The range fails with audio.ErrInvalidRange when it is empty, starts before
// zero or ends past the last frame. Fades longer than the selection are
// shortened to it.
func Trim(ctx context.Context, buf *audio.SampleBuffer, start, end float64, fade Fade) (*audio.SampleBuffer, error) {
	if buf == nil || buf.SampleRate <= 0 || buf.Channels() == 0 {
		return nil, fmt.Errorf("%w: %w", audio.ErrInvalidRange, audio.ErrEmptyBuffer)
	}
	if err := fade.Validate(); err != nil {
		return nil, err
	}
	if math.IsNaN(start) || math.IsNaN(end) || start < 0 {
		return nil, fmt.Errorf("%w: [%g, %g]", audio.ErrInvalidRange, start, end)
	}

	frames := buf.Frames()
	first := SampleIndex(start, buf.SampleRate)
	last := SampleIndex(end, buf.SampleRate)
	length := last - first
	if length <= 0 || last > frames {
		return nil, fmt.Errorf("%w: frames [%d, %d) of %d", audio.ErrInvalidRange, first, last, frames)
	}

	env := fade.envelope(buf.SampleRate, length)
	out := audio.NewSampleBuffer(buf.SampleRate, buf.Channels(), length)

	g, ctx := errgroup.WithContext(ctx)
	for c := range buf.Data {
		src, dst := buf.Data[c], out.Data[c]
		g.Go(func() error {
			return trimChannel(ctx, dst, src, first, env)
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

func trimChannel(ctx context.Context, dst, src []float32, first int, env envelope) error {
	length := len(dst)

	for lo := 0; lo < length; lo += blockFrames {
		if err := ctx.Err(); err != nil {
			return err
		}

		hi := min(lo+blockFrames, length)
		for i := lo; i < hi; i++ {
			j := first + i
			if j < 0 || j >= len(src) {
				dst[i] = 0
				continue
			}
			dst[i] = src[j]
		}
	}

	for i := 0; i < env.in && i < length; i++ {
		dst[i] = float32(float64(dst[i]) * env.gain(i, length))
	}
	for i := max(length-env.out+1, env.in); i < length; i++ {
		dst[i] = float32(float64(dst[i]) * env.gain(i, length))
	}

	return nil
}
