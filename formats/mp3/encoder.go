// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"bytes"
	"fmt"
	"io"

	"github.com/ik5/audcut/audio"
	"github.com/ik5/audcut/utils"
)

// FrameSize is the number of samples per channel in one MPEG-1 Layer III
// frame, and the block size fed to a FrameEncoder.
const FrameSize = 1152

// FrameEncoder is an MP3 codec fed one block of 16-bit samples per channel
// at a time. right is nil for mono input. The returned bytes may be empty
// while the codec buffers.
type FrameEncoder interface {
	EncodeFrame(left, right []int16) ([]byte, error)
	// Flush drains whatever the codec still holds.
	Flush() ([]byte, error)
	Close() error
}

// EncoderConfig describes the stream handed to an EncoderFactory.
type EncoderConfig struct {
	SampleRate  int
	Channels    int
	BitrateKbps int
}

// EncoderFactory builds a FrameEncoder for one export.
type EncoderFactory func(cfg EncoderConfig) (FrameEncoder, error)

// Options controls Encode.
type Options struct {
	BitrateKbps int
	Factory     EncoderFactory
	// Tags, when non-nil, is written as an ID3v2 tag in front of the audio.
	Tags *Tags
}

// Encode compresses buf into an MP3 stream written to w. The buffer is
// converted to 16-bit, cut into FrameSize blocks with the two channels kept
// separate, and the codec is flushed after the last block.
func Encode(w io.Writer, buf *audio.SampleBuffer, opts Options) error {
	if buf == nil || buf.Frames() == 0 {
		return fmt.Errorf("%w: %w", audio.ErrEncode, ErrEmptyBuffer)
	}
	if buf.Channels() > 2 {
		return fmt.Errorf("%w: %w", audio.ErrEncode, ErrTooManyChannels)
	}
	if opts.Factory == nil {
		return fmt.Errorf("%w: %w", audio.ErrEncode, ErrNoEncoder)
	}

	enc, err := opts.Factory(EncoderConfig{
		SampleRate:  buf.SampleRate,
		Channels:    buf.Channels(),
		BitrateKbps: opts.BitrateKbps,
	})
	if err != nil {
		return fmt.Errorf("%w: %w", audio.ErrEncode, err)
	}
	defer enc.Close()

	var out bytes.Buffer
	if opts.Tags != nil {
		if err := opts.Tags.Encode(&out); err != nil {
			return fmt.Errorf("%w: %w", audio.ErrEncode, err)
		}
	}

	left := toInt16(buf.Data[0])
	var right []int16
	if buf.Channels() == 2 {
		right = toInt16(buf.Data[1])
	}

	for start := 0; start < len(left); start += FrameSize {
		end := min(start+FrameSize, len(left))

		var r []int16
		if right != nil {
			r = right[start:end]
		}

		chunk, err := enc.EncodeFrame(left[start:end], r)
		if err != nil {
			return fmt.Errorf("%w: frame at %d: %w", audio.ErrEncode, start, err)
		}
		out.Write(chunk)
	}

	tail, err := enc.Flush()
	if err != nil {
		return fmt.Errorf("%w: flush: %w", audio.ErrEncode, err)
	}
	out.Write(tail)

	if _, err := out.WriteTo(w); err != nil {
		return fmt.Errorf("%w: %w", audio.ErrEncode, err)
	}

	return nil
}

func toInt16(ch []float32) []int16 {
	out := make([]int16, len(ch))
	for i, v := range ch {
		out[i] = utils.Float32ToInt16(v)
	}
	return out
}
