// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"io"

	"golang.org/x/perf/benchunit"

	"github.com/fsbench/fsplot/fsbench"
	"github.com/fsbench/fsplot/internal/texttab"
	"github.com/fsbench/fsplot/metric"
)

// Metrics lists every metric in table order.
var Metrics = []metric.Metric{metric.Throughput, metric.ReadsPerFile, metric.WritesPerFile, metric.IOWaitPerFile}

// WriteTable writes every metric of every benchmark kind in ds as an
// aligned text table, one row per kind and metric and one column per
// filesystem. The final column is the geometric mean across
// filesystems, or "~" where it is undefined.
func WriteTable(w io.Writer, ds fsbench.Dataset) error {
	var tab texttab.Table
	tab.Row().Cell("").Cell("")
	for _, label := range fsbench.Labels() {
		tab.Cell(label, texttab.Right)
	}
	tab.Cell("geomean", texttab.Right)

	for _, k := range fsbench.Kinds {
		for _, m := range Metrics {
			s, err := metric.Derive(ds, k, m)
			if err != nil {
				return err
			}
			scale := benchunit.CommonScale(s.Values, benchunit.Decimal)
			tab.Row().Cell(k.String() + " " + m.String()).Cell(s.Unit())
			for _, v := range s.Values {
				tab.Cell(scale.Format(v), texttab.Right)
			}
			if gm, ok := metric.GeoMean(s); ok {
				tab.Cell(scale.Format(gm), texttab.Right)
			} else {
				tab.Cell("~", texttab.Right)
			}
		}
	}
	return tab.Format(w)
}
