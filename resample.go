// SPDX-License-Identifier: EPL-2.0

package audcut

import (
	"context"
	"fmt"

	"github.com/ik5/audcut/audio"
)

// conform brings a rendered clip to the export layout: resampled to the
// output rate with cubic interpolation, then averaged to one channel when
// Mono is set. Either step is skipped when the clip already matches.
func conform(ctx context.Context, buf *audio.SampleBuffer, out OutputConfig) (*audio.SampleBuffer, error) {
	res, err := audio.Resample(ctx, buf, out.SampleRateHz)
	if err != nil {
		return nil, fmt.Errorf("resampling %d Hz to %d Hz: %w", buf.SampleRate, out.SampleRateHz, err)
	}

	if !out.Mono {
		return res, nil
	}

	mono, err := audio.Downmix(ctx, res)
	if err != nil {
		return nil, fmt.Errorf("downmixing %d channels: %w", res.Channels(), err)
	}

	return mono, nil
}
