// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Bars draws one series of a grouped bar chart: a hatched bar for
// each category. Unlike plotter.BarChart, bar width and offset are in
// data units, so groups keep their shape regardless of image size.
type Bars struct {
	// Values holds the bar heights. Bar i is centered on X = i+Offset.
	Values []float64

	// Offset shifts every bar along X, in data units.
	Offset float64

	// Width is the width of each bar, in data units.
	Width float64

	// Color fills the bars.
	Color color.Color

	// Patterns holds the hatch pattern of each bar.
	Patterns []Pattern

	// LineStyle outlines the bars.
	LineStyle draw.LineStyle

	// HatchStyle draws the hatch patterns.
	HatchStyle draw.LineStyle
}

func (b *Bars) corners(c draw.Canvas, plt *plot.Plot, i int) vg.Rectangle {
	trX, trY := plt.Transforms(&c)
	x := float64(i) + b.Offset
	x0, x1 := trX(x-b.Width/2), trX(x+b.Width/2)
	y0, y1 := trY(0), trY(b.Values[i])
	return vg.Rectangle{
		Min: vg.Point{X: x0, Y: min(y0, y1)},
		Max: vg.Point{X: x1, Y: max(y0, y1)},
	}
}

func outline(r vg.Rectangle) []vg.Point {
	return []vg.Point{
		{X: r.Min.X, Y: r.Min.Y},
		{X: r.Min.X, Y: r.Max.Y},
		{X: r.Max.X, Y: r.Max.Y},
		{X: r.Max.X, Y: r.Min.Y},
	}
}

// Plot implements the plot.Plotter interface.
func (b *Bars) Plot(c draw.Canvas, plt *plot.Plot) {
	for i := range b.Values {
		r := b.corners(c, plt, i)
		pts := outline(r)
		c.FillPolygon(b.Color, c.ClipPolygonXY(pts))
		if i < len(b.Patterns) {
			hatch(c, r, b.Patterns[i], b.HatchStyle)
		}
		pts = append(pts, pts[0])
		c.StrokeLines(b.LineStyle, c.ClipLinesXY(pts)...)
	}
}

// DataRange implements the plot.DataRanger interface. The value range
// always includes zero so bars grow from the axis.
func (b *Bars) DataRange() (xmin, xmax, ymin, ymax float64) {
	xmin = b.Offset - b.Width/2
	xmax = float64(len(b.Values)-1) + b.Offset + b.Width/2
	for _, v := range b.Values {
		ymin = math.Min(ymin, v)
		ymax = math.Max(ymax, v)
	}
	return xmin, xmax, ymin, ymax
}

// Thumbnail implements the plot.Thumbnailer interface.
func (b *Bars) Thumbnail(c *draw.Canvas) {
	pts := outline(c.Rectangle)
	c.FillPolygon(b.Color, c.ClipPolygonY(pts))
	pts = append(pts, pts[0])
	c.StrokeLines(b.LineStyle, c.ClipLinesY(pts)...)
}
