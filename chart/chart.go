// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package chart renders grouped bar charts comparing the filesystems
// under test.
//
// A chart has one group of bars per filesystem, in
// fsbench.Filesystems order, and one bar per series within each
// group. Every bar carries a hatch pattern chosen by its position
// (see PatternFor) so charts stay legible when printed without
// color.
package chart

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/fsbench/fsplot/fsbench"
)

// BarWidth is the width of a single bar, and the distance between
// bar centers within a group, in units of the category spacing.
const BarWidth = 0.2

// DPI is the resolution of rendered images.
const DPI = 100

// MaxSeries is the number of series a chart can hold.
const MaxSeries = 3

// Fill colors, by series position.
var seriesColors = [MaxSeries]color.Color{
	color.RGBA{0x87, 0xce, 0xeb, 0xff}, // sky blue
	color.RGBA{0xff, 0x00, 0x00, 0xff},
	color.RGBA{0x00, 0x80, 0x00, 0xff},
}

// A Series is one bar per filesystem.
type Series struct {
	// Label names the series in the legend. It is unused for
	// single-series charts.
	Label string

	// Values holds one value per filesystem, in
	// fsbench.Filesystems order.
	Values []float64
}

// An InputLengthError reports a series whose length does not match
// the number of filesystems.
type InputLengthError struct {
	Series int // Position of the series
	Label  string
	Got    int
	Want   int
}

func (e *InputLengthError) Error() string {
	name := fmt.Sprintf("series %d", e.Series)
	if e.Label != "" {
		name += fmt.Sprintf(" (%s)", e.Label)
	}
	return fmt.Sprintf("%s has %d values, want one per filesystem (%d)", name, e.Got, e.Want)
}

// A ValueError reports a value that cannot be drawn as a bar.
type ValueError struct {
	Series int
	Index  int
	Value  float64
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("series %d: value for %s is %v", e.Series, fsbench.Filesystems[e.Index], e.Value)
}

// A Chart is a rendered but not yet encoded bar chart.
type Chart struct {
	Title  string
	YLabel string

	// Bars holds the plotter of each series, in series order.
	Bars []*Bars

	// Legend holds the legend labels, if the chart has a legend.
	Legend []string

	// Width and Height give the size of the encoded image.
	Width, Height vg.Length

	plot *plot.Plot
}

// Single returns a chart with one bar per filesystem.
func Single(values []float64, title, ylabel string) (*Chart, error) {
	return New(title, ylabel, Series{Values: values})
}

// Double returns a chart with two bars per filesystem, left and right
// of the filesystem's tick.
func Double(first, second Series, title, ylabel string) (*Chart, error) {
	return New(title, ylabel, first, second)
}

// Triple returns a chart with three bars per filesystem, left of,
// on and right of the filesystem's tick.
func Triple(first, second, third Series, title, ylabel string) (*Chart, error) {
	return New(title, ylabel, first, second, third)
}

// New returns a chart of between one and MaxSeries series. Charts
// with more than one series have a legend.
func New(title, ylabel string, series ...Series) (*Chart, error) {
	if len(series) == 0 || len(series) > MaxSeries {
		return nil, fmt.Errorf("chart %q: got %d series, want 1 to %d", title, len(series), MaxSeries)
	}
	for i, s := range series {
		if len(s.Values) != fsbench.NumFilesystems {
			return nil, &InputLengthError{Series: i, Label: s.Label, Got: len(s.Values), Want: fsbench.NumFilesystems}
		}
		for j, v := range s.Values {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, &ValueError{Series: i, Index: j, Value: v}
			}
		}
	}

	c := &Chart{Title: title, YLabel: ylabel, Width: 6.4 * vg.Inch, Height: 4.8 * vg.Inch}
	if len(series) == MaxSeries {
		c.Width, c.Height = 9*vg.Inch, 5*vg.Inch
	}

	p := plot.New()
	p.Title.Text = title
	p.Y.Label.Text = ylabel
	p.Y.Tick.Marker = unitTicks{}
	p.X.Tick.Marker = plot.ConstantTicks(categoryTicks())
	p.Legend.Top = true

	center := float64(len(series)-1) / 2
	for i, s := range series {
		b := &Bars{
			Values:     append([]float64(nil), s.Values...),
			Offset:     (float64(i) - center) * BarWidth,
			Width:      BarWidth,
			Color:      seriesColors[i],
			Patterns:   make([]Pattern, len(s.Values)),
			LineStyle:  plotter.DefaultLineStyle,
			HatchStyle: draw.LineStyle{Color: color.Black, Width: vg.Points(0.5)},
		}
		b.LineStyle.Width = vg.Points(0.5)
		for j := range b.Patterns {
			b.Patterns[j] = PatternFor(j)
		}
		c.Bars = append(c.Bars, b)
		p.Add(b)
		if len(series) > 1 {
			p.Legend.Add(s.Label, b)
			c.Legend = append(c.Legend, s.Label)
		}
	}
	c.plot = p
	return c, nil
}

func categoryTicks() []plot.Tick {
	ticks := make([]plot.Tick, fsbench.NumFilesystems)
	for i, f := range fsbench.Filesystems {
		ticks[i] = plot.Tick{Value: float64(i), Label: f.String()}
	}
	return ticks
}

// Plot returns the underlying plot, for callers that need to adjust
// it before encoding.
func (c *Chart) Plot() *plot.Plot {
	return c.plot
}

// WritePNG encodes c as a PNG image to w.
func (c *Chart) WritePNG(w io.Writer) error {
	img := vgimg.NewWith(
		vgimg.UseWH(c.Width, c.Height),
		vgimg.UseDPI(DPI),
		vgimg.UseBackgroundColor(color.White),
	)
	c.plot.Draw(draw.New(img))
	_, err := vgimg.PngCanvas{Canvas: img}.WriteTo(w)
	return err
}

// Save encodes c as a PNG image to the named file.
func (c *Chart) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := c.WritePNG(f); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	return f.Close()
}
