// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"math"

	"golang.org/x/perf/benchunit"
	"gonum.org/v1/plot"
)

// unitTicks places ticks like plot.DefaultTicks but labels large
// values with SI prefixes ("40.00k") so axes stay narrow.
type unitTicks struct{}

// Ticks implements plot.Ticker.
func (unitTicks) Ticks(min, max float64) []plot.Tick {
	ticks := plot.DefaultTicks{}.Ticks(min, max)

	var major []float64
	for _, t := range ticks {
		if t.Label != "" {
			major = append(major, t.Value)
		}
	}
	if len(major) == 0 || math.Max(math.Abs(min), math.Abs(max)) < 1000 {
		return ticks
	}

	s := benchunit.CommonScale(major, benchunit.Decimal)
	for i := range ticks {
		if ticks[i].Label != "" {
			ticks[i].Label = s.Format(ticks[i].Value)
		}
	}
	return ticks
}
