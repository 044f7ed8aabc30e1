// SPDX-License-Identifier: EPL-2.0

package waveform

import (
	"image"
	"image/color"
	"math"

	"github.com/ik5/audcut/audio"
	"github.com/ik5/audcut/selection"
)

// View is the pixel size of the canvas.
type View struct {
	Width  int
	Height int
}

// Layer tells which part of the picture an Op paints.
type Layer int

const (
	LayerBackground Layer = iota
	LayerBar
	LayerSelection
	LayerEdge
	LayerHandle
	LayerPlayhead
)

type Shape int

const (
	Rect Shape = iota
	Triangle
)

// Op is one fill. Rect shapes use Bounds, triangles use Points.
type Op struct {
	Layer  Layer
	Shape  Shape
	Bounds image.Rectangle
	Points [3]image.Point
	Color  color.Color
}

// Plan lists the fills that draw buf under the selection sel. A nil buffer
// yields only the background.
func Plan(buf *audio.SampleBuffer, view View, sel selection.State, style Style) []Op {
	if buf == nil {
		return PlanProfile(nil, view, sel, style)
	}
	return PlanProfile(Profile(buf, view.Width), view, sel, style)
}

// PlanProfile is Plan for an amplitude profile that was already computed,
// for example by a Cache. A nil profile yields only the background.
func PlanProfile(amps []float32, view View, sel selection.State, style Style) []Op {
	if view.Width <= 0 || view.Height <= 0 {
		return nil
	}

	w, h := view.Width, view.Height
	ops := []Op{{
		Layer:  LayerBackground,
		Bounds: image.Rect(0, 0, w, h),
		Color:  style.Background,
	}}

	if amps == nil {
		return ops
	}

	for x, amp := range amps[:min(len(amps), w)] {
		barH := float64(clampUnit(amp)) * float64(h) * FillFraction
		y0 := int(math.Round((float64(h) - barH) / 2))
		y1 := int(math.Round((float64(h) + barH) / 2))
		if y1 <= y0 {
			continue
		}
		ops = append(ops, Op{
			Layer:  LayerBar,
			Bounds: image.Rect(x, y0, x+1, y1),
			Color:  style.Bar,
		})
	}

	if sel.Duration <= 0 {
		return ops
	}

	toX := func(t float64) int {
		return int(math.Round(t / sel.Duration * float64(w)))
	}
	sx, ex, cx := toX(sel.Start), toX(sel.End), toX(sel.Current)

	startColor, endColor := style.Handle, style.Handle
	switch sel.Drag {
	case selection.DraggingStart:
		startColor = style.HandleActive
	case selection.DraggingEnd:
		endColor = style.HandleActive
	}

	ops = append(ops,
		Op{Layer: LayerSelection, Bounds: image.Rect(sx, 0, ex, h), Color: style.Selection},
		Op{Layer: LayerEdge, Bounds: image.Rect(sx, 0, sx+EdgeWidth, h), Color: style.Edge},
		Op{Layer: LayerEdge, Bounds: image.Rect(ex-EdgeWidth, 0, ex, h), Color: style.Edge},
		Op{
			Layer:  LayerHandle,
			Shape:  Triangle,
			Points: [3]image.Point{{sx, 0}, {sx + HandleWidth, h / 2}, {sx, h}},
			Color:  startColor,
		},
		Op{
			Layer:  LayerHandle,
			Shape:  Triangle,
			Points: [3]image.Point{{ex, 0}, {ex - HandleWidth, h / 2}, {ex, h}},
			Color:  endColor,
		},
		Op{Layer: LayerPlayhead, Bounds: image.Rect(cx-2, 0, cx-1, h), Color: style.PlayheadBorder},
		Op{Layer: LayerPlayhead, Bounds: image.Rect(cx+1, 0, cx+2, h), Color: style.PlayheadBorder},
		Op{Layer: LayerPlayhead, Bounds: image.Rect(cx-1, 0, cx-1+PlayheadWidth, h), Color: style.Playhead},
	)

	return ops
}

func clampUnit(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
