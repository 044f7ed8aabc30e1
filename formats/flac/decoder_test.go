// SPDX-License-Identifier: EPL-2.0

package flac

import (
	"bytes"
	"errors"
	"io"
	"math"
	"testing"

	"github.com/mewkiz/flac/frame"
)

// mockStream hands out prepared frames, then io.EOF.
type mockStream struct {
	frames []*frame.Frame
	err    error
	closed bool
}

func (m *mockStream) ParseNext() (*frame.Frame, error) {
	if m.err != nil {
		return nil, m.err
	}
	if len(m.frames) == 0 {
		return nil, io.EOF
	}
	f := m.frames[0]
	m.frames = m.frames[1:]
	return f, nil
}

func (m *mockStream) Close() error {
	m.closed = true
	return nil
}

// stereoFrame builds a two-channel frame from per-channel samples.
func stereoFrame(left, right []int32) *frame.Frame {
	return &frame.Frame{
		Subframes: []*frame.Subframe{
			{Samples: left, NSamples: len(left)},
			{Samples: right, NSamples: len(right)},
		},
	}
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	_, err := Decoder{}.Decode(bytes.NewReader([]byte("This is not a FLAC file")))
	if !errors.Is(err, ErrNotFlacFile) {
		t.Errorf("Decode() error = %v, want ErrNotFlacFile", err)
	}
}

func TestDecoder_EmptyInput(t *testing.T) {
	t.Parallel()

	if _, err := (Decoder{}).Decode(bytes.NewReader(nil)); err == nil {
		t.Error("Decode() error = nil, want error for empty input")
	}
}

func TestSource_InterleavesSubframes(t *testing.T) {
	t.Parallel()

	src := &source{
		stream: &mockStream{frames: []*frame.Frame{
			stereoFrame([]int32{32767, 0}, []int32{-32767, 16384}),
			stereoFrame([]int32{1}, []int32{2}),
		}},
		sampleRate: 44100,
		channels:   2,
		bitDepth:   16,
	}

	dst := make([]float32, 16)
	n, err := src.ReadSamples(dst)
	if err != nil {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != 6 {
		t.Fatalf("ReadSamples() n = %d, want 6", n)
	}

	want := []float32{1, -1, 0, 16384.0 / 32767.0, 1.0 / 32767.0, 2.0 / 32767.0}
	for i := range want {
		if math.Abs(float64(dst[i]-want[i])) > 1e-6 {
			t.Errorf("dst[%d] = %f, want %f", i, dst[i], want[i])
		}
	}

	if n, err := src.ReadSamples(dst); n != 0 || err != io.EOF {
		t.Errorf("ReadSamples() after end = (%d, %v), want (0, io.EOF)", n, err)
	}
}

func TestSource_SmallReadsSpanFrames(t *testing.T) {
	t.Parallel()

	left := []int32{1, 2, 3, 4, 5}
	right := []int32{6, 7, 8, 9, 10}
	src := &source{
		stream:     &mockStream{frames: []*frame.Frame{stereoFrame(left, right), stereoFrame(left, right)}},
		sampleRate: 8000,
		channels:   2,
		bitDepth:   8,
	}

	total := 0
	dst := make([]float32, 3) // rounded down to one stereo frame
	for {
		n, err := src.ReadSamples(dst)
		if n%2 != 0 {
			t.Fatalf("ReadSamples() n = %d, want whole frames", n)
		}
		total += n
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("ReadSamples() error = %v", err)
		}
	}

	if total != 20 {
		t.Errorf("total samples = %d, want 20", total)
	}
}

func TestSource_SubframeMismatch(t *testing.T) {
	t.Parallel()

	src := &source{
		stream: &mockStream{frames: []*frame.Frame{{
			Subframes: []*frame.Subframe{{Samples: []int32{1}, NSamples: 1}},
		}}},
		sampleRate: 44100,
		channels:   2,
		bitDepth:   16,
	}

	_, err := src.ReadSamples(make([]float32, 4))
	if !errors.Is(err, ErrUnsupportedFlacLayout) {
		t.Errorf("ReadSamples() error = %v, want ErrUnsupportedFlacLayout", err)
	}
}

func TestSource_ParseError(t *testing.T) {
	t.Parallel()

	src := &source{
		stream:     &mockStream{err: io.ErrUnexpectedEOF},
		sampleRate: 44100,
		channels:   1,
		bitDepth:   16,
	}

	_, err := src.ReadSamples(make([]float32, 4))
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("ReadSamples() error = %v, want io.ErrUnexpectedEOF", err)
	}
}

func TestSource_Close(t *testing.T) {
	t.Parallel()

	stream := &mockStream{}
	src := &source{stream: stream, sampleRate: 44100, channels: 1, bitDepth: 16}

	if err := src.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if !stream.closed {
		t.Error("Close() did not close the stream")
	}
}

func BenchmarkSource_ReadSamples(b *testing.B) {
	left := make([]int32, 4096)
	right := make([]int32, 4096)
	for i := range left {
		left[i] = int32(i)
		right[i] = -int32(i)
	}
	dst := make([]float32, 4096)

	b.ReportAllocs()
	for b.Loop() {
		src := &source{
			stream:     &mockStream{frames: []*frame.Frame{stereoFrame(left, right)}},
			sampleRate: 44100,
			channels:   2,
			bitDepth:   16,
		}
		for {
			if _, err := src.ReadSamples(dst); err != nil {
				break
			}
		}
	}
}
