// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"

	"github.com/ik5/audcut/utils"
)

// Resampler streams from src to target sample rate using cubic interpolation.
// Works on interleaved samples; preserves channel count.
// A one-pole low-pass filter runs ahead of the interpolator when downsampling.
//
// Output frame i is taken at source position i*srcRate/dstRate, computed in
// integers so that a clip of N frames yields exactly ceil(N*dstRate/srcRate)
// frames. The first output frame equals the first input frame.
type Resampler struct {
	src      Source
	srcRate  int64
	dstRate  int
	channels int

	// window around the read head: t-1, t0, t+1, t+2
	window [4][]float32
	real   [4]bool // false for edge copies past the end of the source
	primed bool

	// out is the next output frame, head the source frame in window[1]
	out  int64
	head int64

	srcBuf []float32
	eof    bool

	lowPass bool
	alpha   float32
	state   []float32
}

func NewResampler(src Source, dstRate int) *Resampler {
	channels := src.Channels()
	ratio := float64(src.SampleRate()) / float64(dstRate)

	r := &Resampler{
		src:      src,
		srcRate:  int64(src.SampleRate()),
		dstRate:  dstRate,
		channels: channels,
		srcBuf:   make([]float32, channels),
		lowPass:  ratio > 1.0,
		alpha:    0.5,
		state:    make([]float32, channels),
	}

	for i := range r.window {
		r.window[i] = make([]float32, channels)
	}

	return r
}

func (r *Resampler) SampleRate() int { return r.dstRate }
func (r *Resampler) Channels() int   { return r.channels }
func (r *Resampler) BufSize() int    { return r.src.BufSize() }

func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// pull reads one source frame into dst. ok is false once the source is drained.
func (r *Resampler) pull(dst []float32) (ok bool, err error) {
	if r.eof {
		return false, nil
	}

	n, err := r.src.ReadSamples(r.srcBuf)
	if err == io.EOF {
		r.eof = true
	} else if err != nil {
		return false, fmt.Errorf("%w", err)
	}

	if n < r.channels {
		r.eof = true
		return false, nil
	}

	copy(dst, r.srcBuf)
	if r.lowPass {
		for c := range dst {
			dst[c] = r.alpha*dst[c] + (1-r.alpha)*r.state[c]
			r.state[c] = dst[c]
		}
	}

	return true, nil
}

func (r *Resampler) prime() error {
	if r.lowPass {
		// seed the filter with the first frame to avoid a fade-in transient
		n, err := r.src.ReadSamples(r.srcBuf)
		if err == io.EOF {
			r.eof = true
		} else if err != nil {
			return fmt.Errorf("%w", err)
		}
		if n < r.channels {
			r.eof = true
			return io.EOF
		}
		copy(r.state, r.srcBuf)
		copy(r.window[1], r.srcBuf)
		r.real[1] = true
	} else {
		ok, err := r.pull(r.window[1])
		if err != nil {
			return err
		}
		if !ok {
			return io.EOF
		}
		r.real[1] = true
	}

	copy(r.window[0], r.window[1])
	r.real[0] = true

	for i := 2; i < 4; i++ {
		ok, err := r.pull(r.window[i])
		if err != nil {
			return err
		}
		if !ok {
			copy(r.window[i], r.window[i-1])
		}
		r.real[i] = ok
	}

	r.primed = true
	return nil
}

// advance shifts the window one source frame forward.
func (r *Resampler) advance() error {
	first := r.window[0]
	copy(r.window[:], r.window[1:])
	r.window[3] = first
	copy(r.real[:], r.real[1:])

	ok, err := r.pull(r.window[3])
	if err != nil {
		return err
	}
	if !ok {
		copy(r.window[3], r.window[2])
	}
	r.real[3] = ok

	return nil
}

// ReadSamples produces dst samples at the target rate.
// dst length should be a multiple of r.channels.
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if r.channels <= 0 || len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}
	if r.dstRate <= 0 || r.srcRate <= 0 {
		return 0, ErrInvalidLayout
	}

	if !r.primed {
		if err := r.prime(); err != nil {
			return 0, err
		}
	}

	written := 0
	want := len(dst) / r.channels

	dstRate := int64(r.dstRate)

	for written < want {
		at := r.out * r.srcRate
		for r.head < at/dstRate {
			if err := r.advance(); err != nil {
				return written * r.channels, err
			}
			r.head++
		}

		if !r.real[1] {
			return written * r.channels, io.EOF
		}

		x := float32(float64(at%dstRate) / float64(dstRate))
		out := dst[written*r.channels : (written+1)*r.channels]
		utils.CubicInterpolateFrame(out, r.window[0], r.window[1], r.window[2], r.window[3], x)

		written++
		r.out++
	}

	return written * r.channels, nil
}
