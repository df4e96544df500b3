// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package report produces the fixed set of filesystem comparison
// charts and the auxiliary summaries that accompany them.
//
// Producing a report is all-or-nothing: Build derives and renders
// every chart in memory, and Write encodes every chart before it
// creates the output directory. A dataset that cannot be charted
// therefore never leaves a partial set of images behind.
package report

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsbench/fsplot/chart"
	"github.com/fsbench/fsplot/fsbench"
	"github.com/fsbench/fsplot/metric"
)

// An Output is a rendered chart and where it belongs.
type Output struct {
	Family Family
	Spec   Spec
	Chart  *chart.Chart
}

// Render derives the series of s from ds and renders them.
func (s Spec) Render(ds fsbench.Dataset) (*chart.Chart, error) {
	series := make([]chart.Series, len(s.Series))
	for i, ss := range s.Series {
		d, err := metric.Derive(ds, ss.Kind, ss.Metric)
		if err != nil {
			return nil, err
		}
		series[i] = chart.Series{Label: ss.Label, Values: d.Values}
	}
	return chart.New(s.Title, s.Unit(), series...)
}

// Build renders every chart of every family. It fails on the first
// chart that cannot be derived or rendered, naming its family and
// file.
func Build(ds fsbench.Dataset) ([]*Output, error) {
	var outs []*Output
	for _, f := range Families {
		for _, s := range f.Charts() {
			c, err := s.Render(ds)
			if err != nil {
				return nil, fmt.Errorf("%s: %s: %w", f, s.File, err)
			}
			outs = append(outs, &Output{Family: f, Spec: s, Chart: c})
		}
	}
	return outs, nil
}

// Write encodes outs as PNG images into dir, creating dir if
// necessary. Nothing is written unless every chart encodes.
func Write(dir string, outs []*Output) error {
	images := make([][]byte, len(outs))
	for i, o := range outs {
		var buf bytes.Buffer
		if err := o.Chart.WritePNG(&buf); err != nil {
			return fmt.Errorf("%s: %s: %w", o.Family, o.Spec.File, err)
		}
		images[i] = buf.Bytes()
	}

	if err := os.MkdirAll(dir, 0777); err != nil {
		return err
	}
	for i, o := range outs {
		if err := os.WriteFile(filepath.Join(dir, o.Spec.File), images[i], 0666); err != nil {
			return err
		}
	}
	return nil
}
