// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/ik5/audcut/audio"
)

// mockOggVorbisReader simulates the oggvorbis.Reader: Read returns a value
// count, capped at perRead frames.
type mockOggVorbisReader struct {
	sampleRate int
	channels   int
	samples    []float32
	offset     int
	perRead    int
	err        error
}

func (m *mockOggVorbisReader) SampleRate() int { return m.sampleRate }
func (m *mockOggVorbisReader) Channels() int   { return m.channels }

func (m *mockOggVorbisReader) Read(buf []float32) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	if m.offset >= len(m.samples) {
		return 0, io.EOF
	}

	n := len(buf)
	if m.perRead > 0 {
		n = min(n, m.perRead*m.channels)
	}
	n = copy(buf[:n], m.samples[m.offset:])
	m.offset += n

	return n, nil
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	if _, err := (Decoder{}).Decode(bytes.NewReader([]byte("This is not Ogg Vorbis data"))); err == nil {
		t.Error("Decode() error = nil, want error for invalid data")
	}
}

func TestDecoder_EmptyInput(t *testing.T) {
	t.Parallel()

	if _, err := (Decoder{}).Decode(bytes.NewReader(nil)); err == nil {
		t.Error("Decode() error = nil, want error for empty input")
	}
}

func TestSource_ReadAllChannels(t *testing.T) {
	t.Parallel()

	for _, channels := range []int{1, 2, 6} {
		frames := 1000
		samples := make([]float32, frames*channels)
		for i := range samples {
			samples[i] = float32(i%channels) * 0.1
		}

		src := &source{
			dec:        &mockOggVorbisReader{sampleRate: 44100, channels: channels, samples: samples, perRead: 37},
			sampleRate: 44100,
			channels:   channels,
		}

		buf, err := audio.ReadAll(t.Context(), src)
		if err != nil {
			t.Fatalf("%d ch: ReadAll() error = %v", channels, err)
		}
		if buf.Frames() != frames || buf.Channels() != channels {
			t.Fatalf("%d ch: got %d frames %d ch, want %d frames", channels, buf.Frames(), buf.Channels(), frames)
		}
		for c := range channels {
			if buf.Data[c][frames-1] != float32(c)*0.1 {
				t.Errorf("%d ch: last sample of ch %d = %v", channels, c, buf.Data[c][frames-1])
			}
		}
	}
}

func TestSource_ReadSamples_TrimsToWholeFrames(t *testing.T) {
	t.Parallel()

	mock := &mockOggVorbisReader{sampleRate: 8000, channels: 2, samples: make([]float32, 20)}
	src := &source{dec: mock, sampleRate: 8000, channels: 2}

	n, err := src.ReadSamples(make([]float32, 5))
	if err != nil {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != 4 {
		t.Errorf("ReadSamples() n = %d, want 4", n)
	}

	if n, err := src.ReadSamples(make([]float32, 1)); n != 0 || err != nil {
		t.Errorf("ReadSamples(1) = %d, %v, want 0, nil", n, err)
	}
}

func TestSource_ReadSamples_Error(t *testing.T) {
	t.Parallel()

	boom := errors.New("corrupt page")
	src := &source{dec: &mockOggVorbisReader{channels: 1, err: boom}, sampleRate: 8000, channels: 1}
	if _, err := src.ReadSamples(make([]float32, 4)); !errors.Is(err, boom) {
		t.Errorf("ReadSamples() error = %v, want corrupt page", err)
	}
}
