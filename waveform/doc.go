// SPDX-License-Identifier: EPL-2.0

// Package waveform draws a clip's amplitude envelope with the trim selection,
// its handles and the playhead laid over it.
//
// Drawing is split in two pure steps. Plan turns the inputs into a list of
// fills, and Draw composites the fills onto an image:
//
//	ops := waveform.Plan(buf, waveform.View{Width: 800, Height: 100}, sel, waveform.DefaultStyle())
//	img := waveform.RenderOps(view, ops)
//
// The same inputs always give the same plan and the same pixels, so callers
// redraw on every change instead of patching a previous frame. Geometry comes
// from the View given on each call and nothing about it is kept between
// calls.
//
// Profile is the costly step on long clips. A Cache keeps recent profiles
// keyed by buffer and width.
package waveform
