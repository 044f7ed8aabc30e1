// SPDX-License-Identifier: EPL-2.0

// Package audiotest holds fixtures shared by the package tests: synthetic
// sources and buffers, and a scripted playback transport.
package audiotest

import (
	"errors"
	"io"
	"math"

	"github.com/ik5/audcut/audio"
)

// MockSource generates audio on demand. It implements audio.Source.
type MockSource struct {
	sampleRate int
	channels   int
	frames     int // frames to generate
	generated  int
	waveform   func(frame, channel int) float32

	// FailAfter makes ReadSamples return ErrMockRead once that many frames
	// have been produced. Zero disables it.
	FailAfter int
	Closed    bool
}

// ErrMockRead is the failure injected by MockSource.FailAfter.
var ErrMockRead = errors.New("audiotest: injected read failure")

func NewMockSource(sampleRate, channels, frames int, waveform func(frame, channel int) float32) *MockSource {
	return &MockSource{
		sampleRate: sampleRate,
		channels:   channels,
		frames:     frames,
		waveform:   waveform,
	}
}

// NewSineSource generates the same sine on every channel.
func NewSineSource(sampleRate, channels, frames int, frequency float64) *MockSource {
	return NewMockSource(sampleRate, channels, frames, func(frame, _ int) float32 {
		return Sine(sampleRate, frequency, frame)
	})
}

// NewConstantSource generates value on every sample.
func NewConstantSource(sampleRate, channels, frames int, value float32) *MockSource {
	return NewMockSource(sampleRate, channels, frames, func(int, int) float32 {
		return value
	})
}

func (m *MockSource) SampleRate() int { return m.sampleRate }
func (m *MockSource) Channels() int   { return m.channels }
func (m *MockSource) BufSize() int    { return 4096 }

func (m *MockSource) Close() error {
	m.Closed = true
	return nil
}

func (m *MockSource) ReadSamples(dst []float32) (int, error) {
	if m.FailAfter > 0 && m.generated >= m.FailAfter {
		return 0, ErrMockRead
	}
	if m.generated >= m.frames {
		return 0, io.EOF
	}

	n := min(len(dst)/m.channels, m.frames-m.generated)
	if m.FailAfter > 0 {
		n = min(n, m.FailAfter-m.generated)
	}

	for f := range n {
		for c := range m.channels {
			dst[f*m.channels+c] = m.waveform(m.generated+f, c)
		}
	}
	m.generated += n

	if m.generated >= m.frames {
		return n * m.channels, io.EOF
	}
	return n * m.channels, nil
}

// Sine returns sample frame of a unit sine at frequency Hz.
func Sine(sampleRate int, frequency float64, frame int) float32 {
	t := float64(frame) / float64(sampleRate)
	return float32(math.Sin(2 * math.Pi * frequency * t))
}

// Buffer builds a SampleBuffer of seconds length where every sample is
// produced by fn.
func Buffer(sampleRate, channels int, seconds float64, fn func(frame, channel int) float32) *audio.SampleBuffer {
	frames := int(math.Round(seconds * float64(sampleRate)))
	buf := audio.NewSampleBuffer(sampleRate, channels, frames)
	for c, ch := range buf.Data {
		for i := range ch {
			ch[i] = fn(i, c)
		}
	}

	return buf
}

// ToneBuffer is a 440 Hz sine at half amplitude.
func ToneBuffer(sampleRate, channels int, seconds float64) *audio.SampleBuffer {
	return Buffer(sampleRate, channels, seconds, func(frame, _ int) float32 {
		return 0.5 * Sine(sampleRate, 440, frame)
	})
}

// ConstantBuffer holds value on every sample.
func ConstantBuffer(sampleRate, channels int, seconds float64, value float32) *audio.SampleBuffer {
	return Buffer(sampleRate, channels, seconds, func(int, int) float32 {
		return value
	})
}

// RampBuffer rises linearly from 0 towards 1 on every channel. Each sample
// is distinct, which makes off-by-one slicing errors visible.
func RampBuffer(sampleRate, channels int, seconds float64) *audio.SampleBuffer {
	frames := int(math.Round(seconds * float64(sampleRate)))
	return Buffer(sampleRate, channels, seconds, func(frame, _ int) float32 {
		return float32(frame) / float32(frames)
	})
}
