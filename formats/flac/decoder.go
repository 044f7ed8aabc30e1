// SPDX-License-Identifier: EPL-2.0

package flac

import (
	"fmt"
	"io"

	"github.com/ik5/audcut/audio"
	"github.com/ik5/audcut/utils"
	"github.com/mewkiz/flac"
	"github.com/mewkiz/flac/frame"
)

// frameParser is the part of flac.Stream used by source, split out for tests.
type frameParser interface {
	ParseNext() (*frame.Frame, error)
	Close() error
}

type source struct {
	stream     frameParser
	sampleRate int
	channels   int
	bitDepth   int

	// pending holds interleaved samples of the current frame not yet read.
	pending []int32
	offset  int
	done    bool
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) BufSize() int    { return 4096 }
func (s *source) Close() error    { return s.stream.Close() }

func (s *source) ReadSamples(dst []float32) (int, error) {
	whole := len(dst) - len(dst)%s.channels
	if whole == 0 {
		return 0, nil
	}

	n := 0
	for n < whole {
		if s.offset >= len(s.pending) {
			if s.done {
				break
			}
			if err := s.next(); err != nil {
				return n, err
			}
			continue
		}

		c := min(whole-n, len(s.pending)-s.offset)
		for i, v := range s.pending[s.offset : s.offset+c] {
			dst[n+i] = utils.IntToFloat32(int(v), s.bitDepth)
		}
		n += c
		s.offset += c
	}

	if n == 0 && s.done {
		return 0, io.EOF
	}

	return n, nil
}

// next parses one frame into pending. The end of the stream sets done.
func (s *source) next() error {
	f, err := s.stream.ParseNext()
	if err == io.EOF {
		s.done = true
		return nil
	}
	if err != nil {
		return fmt.Errorf("parsing flac frame: %w", err)
	}

	if len(f.Subframes) != s.channels {
		return fmt.Errorf("%w: frame has %d subframes, want %d",
			ErrUnsupportedFlacLayout, len(f.Subframes), s.channels)
	}

	frames := f.Subframes[0].NSamples
	s.pending = s.pending[:0]
	for i := range frames {
		for _, sub := range f.Subframes {
			s.pending = append(s.pending, sub.Samples[i])
		}
	}
	s.offset = 0

	return nil
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	stream, err := flac.New(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotFlacFile, err)
	}

	info := stream.Info
	if info == nil || info.NChannels == 0 || info.SampleRate == 0 {
		stream.Close()
		return nil, ErrUnsupportedFlacLayout
	}

	return &source{
		stream:     stream,
		sampleRate: int(info.SampleRate),
		channels:   int(info.NChannels),
		bitDepth:   int(info.BitsPerSample),
	}, nil
}
