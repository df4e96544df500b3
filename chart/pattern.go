// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"fmt"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// A Pattern is a hatch drawn over a bar's fill so that bars remain
// distinguishable without color.
type Pattern int

const (
	Dots Pattern = iota
	Plain
	Cross
	Horizontal
	BackDiagonal
)

// palette is the cycle PatternFor draws from.
var palette = [...]Pattern{Dots, Plain, Cross, Horizontal, BackDiagonal}

// PatternFor returns the hatch pattern of the bar at the given
// position within its series.
func PatternFor(position int) Pattern {
	n := len(palette)
	return palette[(position%n+n)%n]
}

// String returns the conventional one-character spelling of p.
func (p Pattern) String() string {
	switch p {
	case Dots:
		return "."
	case Plain:
		return ""
	case Cross:
		return "x"
	case Horizontal:
		return "-"
	case BackDiagonal:
		return `\`
	}
	return fmt.Sprintf("Pattern(%d)", int(p))
}

const hatchSpacing = vg.Length(6)

// hatch draws pattern p over rectangle r of c.
func hatch(c draw.Canvas, r vg.Rectangle, p Pattern, sty draw.LineStyle) {
	// Restrict drawing to the part of the bar inside the plot area.
	r = vg.Rectangle{
		Min: vg.Point{X: max(r.Min.X, c.Min.X), Y: max(r.Min.Y, c.Min.Y)},
		Max: vg.Point{X: min(r.Max.X, c.Max.X), Y: min(r.Max.Y, c.Max.Y)},
	}
	if r.Min.X >= r.Max.X || r.Min.Y >= r.Max.Y {
		return
	}
	bar := draw.Canvas{Canvas: c.Canvas, Rectangle: r}

	var lines [][]vg.Point
	switch p {
	case Plain:
		return
	case Dots:
		dot := draw.GlyphStyle{Color: sty.Color, Radius: sty.Width, Shape: draw.CircleGlyph{}}
		for y := r.Min.Y + hatchSpacing/2; y < r.Max.Y; y += hatchSpacing {
			for x := r.Min.X + hatchSpacing/2; x < r.Max.X; x += hatchSpacing {
				bar.DrawGlyphNoClip(dot, vg.Point{X: x, Y: y})
			}
		}
		return
	case Horizontal:
		for y := r.Min.Y + hatchSpacing/2; y < r.Max.Y; y += hatchSpacing {
			lines = append(lines, []vg.Point{{X: r.Min.X, Y: y}, {X: r.Max.X, Y: y}})
		}
	case BackDiagonal:
		lines = backDiagonals(r)
	case Cross:
		lines = append(backDiagonals(r), forwardDiagonals(r)...)
	}
	bar.StrokeLines(sty, bar.ClipLinesXY(lines...)...)
}

// backDiagonals returns lines x+y=k across r. The lines extend past
// r and must be clipped.
func backDiagonals(r vg.Rectangle) [][]vg.Point {
	var lines [][]vg.Point
	for k := r.Min.X + r.Min.Y + hatchSpacing; k < r.Max.X+r.Max.Y; k += hatchSpacing {
		lines = append(lines, []vg.Point{{X: k - r.Max.Y, Y: r.Max.Y}, {X: k - r.Min.Y, Y: r.Min.Y}})
	}
	return lines
}

// forwardDiagonals returns lines x-y=k across r.
func forwardDiagonals(r vg.Rectangle) [][]vg.Point {
	var lines [][]vg.Point
	for k := r.Min.X - r.Max.Y + hatchSpacing; k < r.Max.X-r.Min.Y; k += hatchSpacing {
		lines = append(lines, []vg.Point{{X: k + r.Min.Y, Y: r.Min.Y}, {X: k + r.Max.Y, Y: r.Max.Y}})
	}
	return lines
}
