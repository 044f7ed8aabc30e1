// SPDX-License-Identifier: EPL-2.0

package render

import (
	"fmt"
	"math"
)

const (
	MinFadeSeconds = 0.1
	MaxFadeSeconds = 2.0

	// DefaultFadeSeconds is the fade length used when none is configured.
	DefaultFadeSeconds = 0.5
)

// Fade describes the linear envelopes applied to the ends of a selection.
// Durations are only checked for the fades that are enabled.
type Fade struct {
	FadeIn          bool
	FadeOut         bool
	FadeInDuration  float64
	FadeOutDuration float64
}

func (f Fade) Validate() error {
	if f.FadeIn && !validFade(f.FadeInDuration) {
		return fmt.Errorf("%w: fade-in %gs", ErrInvalidFade, f.FadeInDuration)
	}
	if f.FadeOut && !validFade(f.FadeOutDuration) {
		return fmt.Errorf("%w: fade-out %gs", ErrInvalidFade, f.FadeOutDuration)
	}
	return nil
}

func validFade(d float64) bool {
	return d >= MinFadeSeconds && d <= MaxFadeSeconds
}

// envelope is a Fade resolved to sample counts for one selection.
type envelope struct {
	in  int
	out int
}

func (f Fade) envelope(rate, length int) envelope {
	var e envelope
	if f.FadeIn {
		e.in = min(SampleIndex(f.FadeInDuration, rate), length)
	}
	if f.FadeOut {
		e.out = min(SampleIndex(f.FadeOutDuration, rate), length)
	}
	return e
}

// gain is the envelope factor for output frame i of length frames. It rises
// as i/in over the first in frames and falls as (length-i)/out over the last
// out frames. Where both overlap the factors multiply, so the result stays
// in [0,1].
func (e envelope) gain(i, length int) float64 {
	g := 1.0
	if e.in > 0 && i < e.in {
		g *= float64(i) / float64(e.in)
	}
	if e.out > 0 && i > length-e.out {
		g *= float64(length-i) / float64(e.out)
	}
	return g
}

// SampleIndex converts seconds to a frame index at rate, rounding down. A
// tolerance of 1e-6 frames absorbs float error, so the duration of an n-frame
// buffer maps back to n.
func SampleIndex(seconds float64, rate int) int {
	return int(math.Floor(seconds*float64(rate) + 1e-6))
}
