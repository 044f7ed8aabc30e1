// SPDX-License-Identifier: EPL-2.0

// Package render cuts a time range out of a decoded clip and shapes its ends
// with linear fades.
//
//	out, err := render.Trim(ctx, buf, 2.0, 5.0, render.Fade{
//	    FadeIn:         true,
//	    FadeInDuration: 0.5,
//	})
//
// Seconds map to frames with SampleIndex, which rounds down. The fade-in
// gain for output frame i is i/n over the first n frames, so frame 0 is
// silent and frame n is untouched. The fade-out mirrors it over the last
// frames. A fade longer than the selection is shortened to the selection.
package render
