// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package metric derives per-file and per-second figures from raw
// benchmark counters.
//
// Every derivation produces a Series with one value per filesystem,
// in fsbench.Filesystems order. Derivations never produce infinities
// or NaNs: a zero divisor is reported as a *DerivationError.
package metric

import (
	"fmt"
	"math"

	"github.com/aclements/go-moremath/stats"

	"github.com/fsbench/fsplot/fsbench"
)

// A Metric is a scalar derived from a single benchmark record.
type Metric int

const (
	// Throughput is files processed per second of run time.
	Throughput Metric = iota
	// ReadsPerFile is KiB read from the device per file.
	ReadsPerFile
	// WritesPerFile is KiB written to the device per file.
	WritesPerFile
	// IOWaitPerFile is I/O wait per file.
	IOWaitPerFile
)

var metricInfo = []struct {
	name, unit string
}{
	Throughput:    {"throughput", "Files/Second"},
	ReadsPerFile:  {"reads", "KiB/File"},
	WritesPerFile: {"writes", "KiB/File"},
	IOWaitPerFile: {"iowait", "ns/file"},
}

func (m Metric) String() string {
	if m < 0 || int(m) >= len(metricInfo) {
		return fmt.Sprintf("Metric(%d)", int(m))
	}
	return metricInfo[m].name
}

// Unit returns the unit m is expressed in, as shown on chart axes.
func (m Metric) Unit() string {
	if m < 0 || int(m) >= len(metricInfo) {
		return ""
	}
	return metricInfo[m].unit
}

// errZero is returned by Of for records that would divide by zero.
type errZero string

func (e errZero) Error() string { return string(e) }

// Of computes m for a single record. It fails if the divisor of m is
// zero in rec.
func (m Metric) Of(rec fsbench.Record) (float64, error) {
	if m == Throughput {
		secs := rec.Duration.Seconds()
		if secs == 0 {
			return 0, errZero("zero duration")
		}
		return float64(rec.NumFiles) / secs, nil
	}

	if rec.NumFiles == 0 {
		return 0, errZero("zero num_files")
	}
	n := float64(rec.NumFiles)
	switch m {
	case ReadsPerFile:
		return float64(rec.Reads) / n / 1024, nil
	case WritesPerFile:
		return float64(rec.Writes) / n / 1024, nil
	case IOWaitPerFile:
		return float64(rec.IOWait) / n, nil
	}
	return 0, fmt.Errorf("unknown metric %v", m)
}

// A DerivationError reports that a metric could not be computed for
// one filesystem.
type DerivationError struct {
	Filesystem fsbench.Filesystem
	Kind       fsbench.Kind
	Metric     Metric
	Msg        string
}

func (e *DerivationError) Error() string {
	return fmt.Sprintf("%s %s of %s: %s", e.Kind, e.Metric, e.Filesystem, e.Msg)
}

// A Series is a derived value for each filesystem.
type Series struct {
	Kind   fsbench.Kind
	Metric Metric

	// Values holds one value per filesystem, indexed by position
	// in fsbench.Filesystems.
	Values []float64
}

// Unit returns the unit of s's values.
func (s Series) Unit() string {
	return s.Metric.Unit()
}

// Derive computes metric m of benchmark kind k for every filesystem
// in ds.
func Derive(ds fsbench.Dataset, k fsbench.Kind, m Metric) (Series, error) {
	s := Series{Kind: k, Metric: m, Values: make([]float64, fsbench.NumFilesystems)}
	for i, f := range fsbench.Filesystems {
		rs := ds[f]
		if rs == nil {
			return Series{}, &DerivationError{f, k, m, "no results"}
		}
		v, err := m.Of(rs.Record(k))
		if err != nil {
			return Series{}, &DerivationError{f, k, m, err.Error()}
		}
		s.Values[i] = v
	}
	return s, nil
}

// GeoMean returns the geometric mean of s's values. It reports false
// if any value is not positive, since the geometric mean is then
// undefined.
func GeoMean(s Series) (float64, bool) {
	if len(s.Values) == 0 {
		return 0, false
	}
	for _, v := range s.Values {
		if !(v > 0) {
			return 0, false
		}
	}
	gm := stats.GeoMean(s.Values)
	if math.IsNaN(gm) || math.IsInf(gm, 0) {
		return 0, false
	}
	return gm, true
}
