// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"errors"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/ik5/audcut/audio"
	"github.com/ik5/audcut/utils"
)

const (
	// HeaderSize is the length of the canonical RIFF/WAVE header.
	HeaderSize = 44

	bitDepth    = 16
	chunkFrames = 4096
)

// Encode writes buf as a 16-bit PCM WAV file: the 44-byte canonical header
// followed by interleaved little-endian samples. Each sample is clamped to
// [-1,1] and scaled by 32767 with rounding.
func Encode(w io.Writer, buf *audio.SampleBuffer) error {
	data, err := EncodeBytes(buf)
	if err != nil {
		return err
	}

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("%w: %w", audio.ErrEncode, err)
	}

	return nil
}

// EncodeBytes is Encode into a fresh byte slice.
func EncodeBytes(buf *audio.SampleBuffer) ([]byte, error) {
	if buf == nil || buf.Frames() == 0 {
		return nil, fmt.Errorf("%w: %w", audio.ErrEncode, ErrEmptyBuffer)
	}
	if buf.SampleRate <= 0 {
		return nil, fmt.Errorf("%w: %w", audio.ErrEncode, audio.ErrInvalidLayout)
	}

	channels := buf.Channels()
	frames := buf.Frames()

	ws := &writeSeeker{buf: make([]byte, 0, HeaderSize+frames*channels*2)}
	enc := wav.NewEncoder(ws, buf.SampleRate, bitDepth, channels, formatPCM)

	intBuf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: channels, SampleRate: buf.SampleRate},
		SourceBitDepth: bitDepth,
		Data:           make([]int, chunkFrames*channels),
	}

	for start := 0; start < frames; start += chunkFrames {
		end := min(start+chunkFrames, frames)
		intBuf.Data = intBuf.Data[:(end-start)*channels]
		for f := start; f < end; f++ {
			base := (f - start) * channels
			for c, ch := range buf.Data {
				intBuf.Data[base+c] = int(utils.Float32ToInt16(ch[f]))
			}
		}

		if err := enc.Write(intBuf); err != nil {
			return nil, fmt.Errorf("%w: %w", audio.ErrEncode, err)
		}
	}

	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("%w: %w", audio.ErrEncode, err)
	}

	return ws.Bytes(), nil
}

// writeSeeker is an in-memory io.WriteSeeker; the encoder seeks back to
// patch the RIFF and data sizes on Close.
type writeSeeker struct {
	buf []byte
	pos int
}

func (ws *writeSeeker) Bytes() []byte { return ws.buf }

func (ws *writeSeeker) Write(p []byte) (int, error) {
	end := ws.pos + len(p)
	if end > len(ws.buf) {
		ws.buf = append(ws.buf, make([]byte, end-len(ws.buf))...)
	}
	copy(ws.buf[ws.pos:], p)
	ws.pos = end

	return len(p), nil
}

func (ws *writeSeeker) Seek(offset int64, whence int) (int64, error) {
	var pos int64
	switch whence {
	case io.SeekStart:
		pos = offset
	case io.SeekCurrent:
		pos = int64(ws.pos) + offset
	case io.SeekEnd:
		pos = int64(len(ws.buf)) + offset
	default:
		return 0, fmt.Errorf("invalid whence: %d", whence)
	}

	if pos < 0 {
		return 0, errors.New("negative position")
	}

	ws.pos = int(pos)
	return pos, nil
}
