// SPDX-License-Identifier: EPL-2.0

package audcut

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/ik5/audcut/audio"
	"github.com/ik5/audcut/formats/mp3"
	"github.com/ik5/audcut/formats/wav"
	"github.com/ik5/audcut/render"
	"github.com/pion/logging"
)

// job is everything an export needs, copied out of the session so that
// editing can go on while it runs.
type job struct {
	buf        *audio.SampleBuffer
	start, end float64
	fade       render.Fade
	output     OutputConfig
	name       string
	productTag string
	tags       mp3.Tags
	mp3Encoder mp3.EncoderFactory
	id         string
	log        logging.LeveledLogger
}

// Export renders the selection with the current fades and output settings.
func (s *Session) Export(ctx context.Context) (*Output, error) {
	j, err := s.job()
	if err != nil {
		return nil, err
	}
	return j.run(ctx)
}

// ExportAsync is Export on its own goroutine. The selection and settings
// are taken when it is called.
func (s *Session) ExportAsync(ctx context.Context) *Task {
	t := newTask()

	j, err := s.job()
	if err != nil {
		t.finish(nil, err)
		return t
	}

	go func() {
		t.finish(j.run(ctx))
	}()

	return t
}

func (s *Session) job() (job, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	switch {
	case s.closed:
		return job{}, ErrClosed
	case s.buf == nil:
		return job{}, ErrNoAudio
	}

	sel := s.sel.State()

	return job{
		buf:        s.buf,
		start:      sel.Start,
		end:        sel.End,
		fade:       s.fade,
		output:     s.output,
		name:       s.name,
		productTag: s.productTag,
		tags:       s.tags,
		mp3Encoder: s.mp3Encoder,
		id:         s.ID(),
		log:        s.log,
	}, nil
}

func (j job) run(ctx context.Context) (*Output, error) {
	cut, err := render.Trim(ctx, j.buf, j.start, j.end, j.fade)
	if err != nil {
		return nil, j.fail(err)
	}

	cut, err = conform(ctx, cut, j.output)
	if err != nil {
		if !isCancel(err) {
			err = fmt.Errorf("%w: %w", audio.ErrEncode, err)
		}
		return nil, j.fail(err)
	}

	var data bytes.Buffer
	switch j.output.Format {
	case FormatWAV:
		err = wav.Encode(&data, cut)
	case FormatMP3:
		err = mp3.Encode(&data, cut, mp3.Options{
			BitrateKbps: j.output.BitrateKbps,
			Factory:     j.mp3Encoder,
			Tags:        &j.tags,
		})
	default:
		err = fmt.Errorf("%w: %w: format %q", audio.ErrEncode, ErrInvalidOutput, j.output.Format)
	}
	if err != nil {
		return nil, j.fail(err)
	}

	out := &Output{
		Name: OutputName(j.name, j.productTag, j.output.Format),
		MIME: j.output.Format.MIME(),
		Data: data.Bytes(),
	}

	j.log.Infof("[%s] exported %q: [%.3f, %.3f], %d Hz, %d ch, %d bytes",
		j.id, out.Name, j.start, j.end, cut.SampleRate, cut.Channels(), len(out.Data))

	return out, nil
}

func (j job) fail(err error) error {
	if isCancel(err) {
		j.log.Debugf("[%s] export of %q cancelled", j.id, j.name)
	} else {
		j.log.Errorf("[%s] export of %q: %v", j.id, j.name, err)
	}
	return fmt.Errorf("exporting %q: %w", j.name, err)
}

func isCancel(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
