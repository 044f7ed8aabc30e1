// SPDX-License-Identifier: EPL-2.0

package waveform

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"

	"github.com/ik5/audcut/audio"
	"github.com/ik5/audcut/selection"
)

// Draw paints ops onto dst in order, compositing each over what is there.
func Draw(dst draw.Image, ops []Op) {
	for _, op := range ops {
		src := image.NewUniform(op.Color)

		switch op.Shape {
		case Rect:
			r := op.Bounds.Intersect(dst.Bounds())
			if r.Empty() {
				continue
			}
			draw.Draw(dst, r, src, image.Point{}, draw.Over)
		case Triangle:
			mask, r := triangleMask(op.Points, dst.Bounds())
			if mask == nil {
				continue
			}
			draw.DrawMask(dst, r, src, image.Point{}, mask, r.Min, draw.Over)
		}
	}
}

// Render draws buf and the selection onto a new canvas of the view's size.
func Render(buf *audio.SampleBuffer, view View, sel selection.State, style Style) *image.RGBA {
	return RenderOps(view, Plan(buf, view, sel, style))
}

// RenderOps draws a prepared plan onto a new canvas.
func RenderOps(view View, ops []Op) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, max(view.Width, 0), max(view.Height, 0)))
	Draw(img, ops)
	return img
}

// EncodePNG writes img as a PNG.
func EncodePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encoding waveform png: %w", err)
	}
	return nil
}

// triangleMask covers the pixels whose centers fall inside the triangle p,
// edges included, clipped to clip.
func triangleMask(p [3]image.Point, clip image.Rectangle) (*image.Alpha, image.Rectangle) {
	r := image.Rect(
		min(p[0].X, p[1].X, p[2].X), min(p[0].Y, p[1].Y, p[2].Y),
		max(p[0].X, p[1].X, p[2].X)+1, max(p[0].Y, p[1].Y, p[2].Y)+1,
	).Intersect(clip)
	if r.Empty() {
		return nil, r
	}

	mask := image.NewAlpha(r)
	area := edge(p[0], p[1], p[2])
	if area == 0 {
		return nil, r
	}

	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			// Doubled coordinates keep the pixel center on the integer grid.
			c := image.Pt(2*x+1, 2*y+1)
			w0 := edge(double(p[1]), double(p[2]), c)
			w1 := edge(double(p[2]), double(p[0]), c)
			w2 := edge(double(p[0]), double(p[1]), c)

			if area > 0 && w0 >= 0 && w1 >= 0 && w2 >= 0 ||
				area < 0 && w0 <= 0 && w1 <= 0 && w2 <= 0 {
				mask.Pix[mask.PixOffset(x, y)] = 0xff
			}
		}
	}

	return mask, r
}

func double(p image.Point) image.Point {
	return image.Pt(2*p.X, 2*p.Y)
}

// edge is twice the signed area of the triangle a, b, c.
func edge(a, b, c image.Point) int {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}
