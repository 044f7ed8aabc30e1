// SPDX-License-Identifier: EPL-2.0

package waveform

import "image/color"

const (
	// FillFraction is the share of the height a full-scale bar covers.
	FillFraction = 0.8

	HandleWidth   = 12
	EdgeWidth     = 2
	PlayheadWidth = 2
)

// Style is the palette of a rendered waveform.
type Style struct {
	Background     color.Color
	Bar            color.Color
	Selection      color.Color
	Edge           color.Color
	Handle         color.Color
	HandleActive   color.Color
	Playhead       color.Color
	PlayheadBorder color.Color
}

// DefaultStyle is a light grey canvas with emerald bars and a red playhead.
func DefaultStyle() Style {
	return Style{
		Background:     color.RGBA{R: 0xf3, G: 0xf4, B: 0xf6, A: 0xff},
		Bar:            color.RGBA{R: 0x10, G: 0xb9, B: 0x81, A: 0xff},
		Selection:      color.NRGBA{R: 0x10, G: 0xb9, B: 0x81, A: 0x33},
		Edge:           color.NRGBA{R: 0x10, G: 0xb9, B: 0x81, A: 0xcc},
		Handle:         color.RGBA{R: 0x10, G: 0xb9, B: 0x81, A: 0xff},
		HandleActive:   color.RGBA{R: 0x05, G: 0x96, B: 0x69, A: 0xff},
		Playhead:       color.RGBA{R: 0xdc, G: 0x26, B: 0x26, A: 0xff},
		PlayheadBorder: color.White,
	}
}
