// SPDX-License-Identifier: EPL-2.0

package aac

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/ik5/audcut/audio"
	"github.com/ik5/audcut/utils"
	faad2 "github.com/llehouerou/go-faad2"
)

// ErrNotAdtsStream is returned when the input does not start with a
// decodable ADTS frame.
var ErrNotAdtsStream = errors.New("not an ADTS AAC stream")

// adtsReader is the part of faad2.ADTSReader used by source, split out for tests.
type adtsReader interface {
	Read(ctx context.Context, pcm []int16) (int, error)
	Close(ctx context.Context) error
}

type source struct {
	ctx        context.Context
	dec        adtsReader
	sampleRate int
	channels   int
	pcm        []int16
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return s.dec.Close(s.ctx) }

func (s *source) BufSize() int {
	if s.pcm != nil {
		return cap(s.pcm)
	}
	return 4096
}

func (s *source) ReadSamples(dst []float32) (int, error) {
	whole := len(dst) - len(dst)%s.channels
	if whole == 0 {
		return 0, nil
	}

	if cap(s.pcm) < whole {
		s.pcm = make([]int16, whole)
	}
	s.pcm = s.pcm[:whole]

	n, err := s.dec.Read(s.ctx, s.pcm)
	for i, v := range s.pcm[:n] {
		dst[i] = utils.Int16ToFloat32(v)
	}

	if err != nil && !errors.Is(err, io.EOF) {
		return n, fmt.Errorf("decoding aac frame: %w", err)
	}
	if n == 0 {
		return 0, io.EOF
	}

	return n, nil
}

// Decoder decodes raw AAC in ADTS framing. MP4/M4A containers are not read.
type Decoder struct{}

var _ audio.ContextDecoder = Decoder{}

func (d Decoder) Decode(r io.Reader) (audio.Source, error) {
	return d.DecodeContext(context.Background(), r)
}

// DecodeContext opens the stream with FAAD2 running under ctx. Reads and
// Close of the returned Source use the same ctx.
func (Decoder) DecodeContext(ctx context.Context, r io.Reader) (audio.Source, error) {
	dec, err := faad2.OpenADTS(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotAdtsStream, err)
	}

	if dec.Channels() == 0 || dec.SampleRate() == 0 {
		_ = dec.Close(ctx)
		return nil, fmt.Errorf("%w: no channel configuration", ErrNotAdtsStream)
	}

	return &source{
		ctx:        ctx,
		dec:        dec,
		sampleRate: int(dec.SampleRate()),
		channels:   int(dec.Channels()),
	}, nil
}
