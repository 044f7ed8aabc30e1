// SPDX-License-Identifier: EPL-2.0

//go:build lame && cgo

package lame

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/ik5/audcut/formats/mp3"
	"github.com/viert/lame"
)

// quality 2 is LAME's "near-best", the value lame -h uses.
const quality = 2

var errClosed = errors.New("lame encoder closed")

// Encoder feeds interleaved stereo PCM to a LAME writer and collects the
// compressed bytes. Mono input is duplicated onto both channels.
type Encoder struct {
	out bytes.Buffer
	wr  *lame.LameWriter
	pcm []byte
}

// New is an mp3.EncoderFactory.
func New(cfg mp3.EncoderConfig) (mp3.FrameEncoder, error) {
	if cfg.SampleRate <= 0 || cfg.BitrateKbps <= 0 {
		return nil, fmt.Errorf("lame: invalid config %+v", cfg)
	}

	e := &Encoder{pcm: make([]byte, mp3.FrameSize*4)}
	e.wr = lame.NewWriter(&e.out)
	e.wr.Encoder.SetInSamplerate(cfg.SampleRate)
	e.wr.Encoder.SetNumChannels(2)
	e.wr.Encoder.SetBitrate(cfg.BitrateKbps)
	e.wr.Encoder.SetQuality(quality)
	if rc := e.wr.Encoder.InitParams(); rc < 0 {
		return nil, fmt.Errorf("lame: init params failed with %d", rc)
	}

	return e, nil
}

func (e *Encoder) EncodeFrame(left, right []int16) ([]byte, error) {
	if e.wr == nil {
		return nil, errClosed
	}
	if right == nil {
		right = left
	}

	need := len(left) * 4
	if cap(e.pcm) < need {
		e.pcm = make([]byte, need)
	}
	e.pcm = e.pcm[:need]
	for i := range left {
		binary.LittleEndian.PutUint16(e.pcm[4*i:], uint16(left[i]))
		binary.LittleEndian.PutUint16(e.pcm[4*i+2:], uint16(right[i]))
	}

	if _, err := e.wr.Write(e.pcm); err != nil {
		return nil, fmt.Errorf("lame: %w", err)
	}

	return e.drain(), nil
}

func (e *Encoder) Flush() ([]byte, error) {
	if e.wr == nil {
		return nil, errClosed
	}

	err := e.release()
	if err != nil {
		return nil, fmt.Errorf("lame: %w", err)
	}

	return e.drain(), nil
}

// Close releases the codec when Flush was never reached.
func (e *Encoder) Close() error {
	if e.wr == nil {
		return nil
	}

	return e.release()
}

// release flushes the writer and frees the LAME handle.
func (e *Encoder) release() error {
	err := e.wr.Close()
	e.wr.Encoder.Close()
	e.wr = nil

	return err
}

func (e *Encoder) drain() []byte {
	b := bytes.Clone(e.out.Bytes())
	e.out.Reset()
	return b
}
