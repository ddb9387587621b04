package main

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg"
	xdraw "golang.org/x/image/draw"
)

var errEmptyBackground = errors.New("background image has no pixels")

// PlotGenerator draws the vote wedges over a background and encodes the result.
type PlotGenerator struct {
	layout Layout
}

func NewPlotGenerator(layout Layout) *PlotGenerator {
	return &PlotGenerator{layout: layout}
}

// Generate composes the plot and returns it PNG encoded.
func (g *PlotGenerator) Generate(bg image.Image, angles [5]ComputedAngle) ([]byte, error) {
	dc, err := g.render(bg, angles)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Compose returns the plot without encoding it.
func (g *PlotGenerator) Compose(bg image.Image, angles [5]ComputedAngle) (image.Image, error) {
	dc, err := g.render(bg, angles)
	if err != nil {
		return nil, err
	}
	return dc.Image(), nil
}

// OutputSize is the size of the exported image for a background of w x h:
// the background fitted with equal aspect into the canvas axes, cropped tight.
func (g *PlotGenerator) OutputSize(w, h int) (int, int) {
	axW, axH := g.layout.Canvas.AxesSize()
	s := math.Min(axW/float64(w), axH/float64(h))
	return max(1, int(math.Round(float64(w)*s))), max(1, int(math.Round(float64(h)*s)))
}

func (g *PlotGenerator) render(bg image.Image, angles [5]ComputedAngle) (*gg.Context, error) {
	b := bg.Bounds()
	if b.Empty() {
		return nil, errEmptyBackground
	}
	ow, oh := g.OutputSize(b.Dx(), b.Dy())

	dst := image.NewRGBA(image.Rect(0, 0, ow, oh))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), bg, b, xdraw.Src, nil)

	dc := gg.NewContextForRGBA(dst)
	// Wedge geometry is in background pixels; pixel centers sit at i+0.5.
	dc.Scale(float64(ow)/float64(b.Dx()), float64(oh)/float64(b.Dy()))
	dc.Translate(0.5, 0.5)
	dc.SetLineWidth(g.layout.Canvas.EdgeWidthPx())

	for i, w := range g.layout.Wedges {
		drawWedge(dc, w, angles[i], float64(b.Dx()), float64(b.Dy()))
	}
	return dc, nil
}

func drawWedge(dc *gg.Context, w WedgeSpec, a ComputedAngle, width, height float64) {
	if !finite(a.Theta1) || !finite(a.Theta2) {
		return
	}

	cx := width / w.CenterXRatio
	cy := height / w.CenterYRatio
	outer := math.Min(width, height) / w.RadiusRatio
	inner := math.Max(outer-w.Width, 0)

	start, end, full := arcSpan(a.Theta1, a.Theta2)
	t1, t2 := gg.Radians(start), gg.Radians(end)

	dc.NewSubPath()
	dc.DrawArc(cx, cy, outer, t1, t2)
	if full {
		dc.ClosePath()
		if inner > 0 {
			dc.NewSubPath()
			dc.DrawArc(cx, cy, inner, t2, t1)
			dc.ClosePath()
		}
	} else {
		dc.DrawArc(cx, cy, inner, t2, t1)
		dc.ClosePath()
	}

	dc.SetColor(withAlpha(w.Color, w.Alpha))
	dc.FillPreserve()
	dc.Stroke()
}

func withAlpha(c color.NRGBA, alpha float64) color.NRGBA {
	c.A = uint8(math.Round(math.Max(0, math.Min(1, alpha)) * 255))
	return c
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
