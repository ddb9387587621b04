package main

import "image/color"

type Category string

const (
	HouseDem  Category = "house_dem"
	HouseRep  Category = "house_rep"
	SenateRep Category = "senate_rep"
	SenateInd Category = "senate_ind"
	SenateDem Category = "senate_dem"
)

// Ordering says which end of a wedge stays pinned at FixedTheta.
type Ordering int

const (
	// FixedStart draws (θf, θf+sweep).
	FixedStart Ordering = iota
	// FixedEnd draws (θf+sweep, θf).
	FixedEnd
)

// WedgeSpec describes one annular wedge. Angles are in degrees, positions are
// divisors of the background dimensions and Width is in background pixels.
type WedgeSpec struct {
	Category     Category
	FixedTheta   float64
	MaxSweep     float64
	Ordering     Ordering
	CenterXRatio float64
	CenterYRatio float64
	RadiusRatio  float64
	Width        float64
	Color        color.NRGBA
	Alpha        float64
}

// Canvas is the figure the background is fitted into before export.
// Margins are fractions of the figure, matching a default single subplot.
type Canvas struct {
	WidthIn     float64
	HeightIn    float64
	DPI         float64
	Left        float64
	Right       float64
	Bottom      float64
	Top         float64
	EdgeWidthPt float64
}

// AxesSize returns the pixel size of the area the background may occupy.
func (c Canvas) AxesSize() (float64, float64) {
	return (c.Right - c.Left) * c.WidthIn * c.DPI, (c.Top - c.Bottom) * c.HeightIn * c.DPI
}

// EdgeWidthPx converts the outline width to output pixels.
func (c Canvas) EdgeWidthPx() float64 {
	return c.EdgeWidthPt * c.DPI / 72
}

// Layout is built once at start-up and only read afterwards.
type Layout struct {
	Wedges [5]WedgeSpec
	Canvas Canvas
}

var (
	blue = color.NRGBA{R: 0, G: 0, B: 255, A: 255}
	red  = color.NRGBA{R: 255, G: 0, B: 0, A: 255}
	gray = color.NRGBA{R: 128, G: 128, B: 128, A: 255}
)

const wedgeAlpha = 0.6

// NewVoteLayout returns the vote record geometry in draw order.
func NewVoteLayout() Layout {
	return Layout{
		Wedges: [5]WedgeSpec{
			{Category: HouseDem, FixedTheta: 182, MaxSweep: 83, Ordering: FixedStart,
				CenterXRatio: 2, CenterYRatio: 2, RadiusRatio: 2.5, Width: 246, Color: blue, Alpha: wedgeAlpha},
			{Category: HouseRep, FixedTheta: 353, MaxSweep: -85, Ordering: FixedEnd,
				CenterXRatio: 1.98, CenterYRatio: 1.92, RadiusRatio: 2.4, Width: 240, Color: red, Alpha: wedgeAlpha},
			{Category: SenateRep, FixedTheta: 0, MaxSweep: 88, Ordering: FixedStart,
				CenterXRatio: 2, CenterYRatio: 2.05, RadiusRatio: 2.4, Width: 242, Color: red, Alpha: wedgeAlpha},
			{Category: SenateInd, FixedTheta: 94, MaxSweep: 8, Ordering: FixedStart,
				CenterXRatio: 1.95, CenterYRatio: 2.02, RadiusRatio: 2.4, Width: 260, Color: gray, Alpha: wedgeAlpha},
			{Category: SenateDem, FixedTheta: 179, MaxSweep: -78, Ordering: FixedEnd,
				CenterXRatio: 2.02, CenterYRatio: 2.05, RadiusRatio: 2.5, Width: 245, Color: blue, Alpha: wedgeAlpha},
		},
		Canvas: Canvas{
			WidthIn:     6.4,
			HeightIn:    4.8,
			DPI:         400,
			Left:        0.125,
			Right:       0.9,
			Bottom:      0.11,
			Top:         0.88,
			EdgeWidthPt: 1,
		},
	}
}
