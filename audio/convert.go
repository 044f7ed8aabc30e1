// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"context"
	"fmt"
)

// Resample converts buf to targetRate using the streaming Resampler. The
// input is returned unchanged when the rates already match.
func Resample(ctx context.Context, buf *SampleBuffer, targetRate int) (*SampleBuffer, error) {
	if targetRate <= 0 {
		return nil, ErrInvalidLayout
	}
	if buf.SampleRate == targetRate {
		return buf, nil
	}
	if buf.Frames() == 0 {
		return NewSampleBuffer(targetRate, buf.Channels(), 0), nil
	}

	out, err := ReadAll(ctx, NewResampler(buf.Source(), targetRate))
	if err != nil {
		return nil, fmt.Errorf("resampling to %d Hz: %w", targetRate, err)
	}

	return out, nil
}

// Downmix averages all channels of buf into a single channel. Mono input is
// returned unchanged.
func Downmix(ctx context.Context, buf *SampleBuffer) (*SampleBuffer, error) {
	if buf.Channels() <= 1 {
		return buf, nil
	}

	out, err := ReadAll(ctx, NewMonoMixer(buf.Source()))
	if err != nil {
		return nil, fmt.Errorf("downmixing: %w", err)
	}

	return out, nil
}
