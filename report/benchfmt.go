// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"io"
	"strings"

	"golang.org/x/perf/benchfmt"

	"github.com/fsbench/fsplot/fsbench"
	"github.com/fsbench/fsplot/metric"
)

// Units of the per-file costs written by WriteBenchfmt.
const (
	unitSec    = "sec/op"
	unitRead   = "read-B/op"
	unitWrite  = "write-B/op"
	unitIOWait = "iowait/op"
)

// WriteBenchfmt writes the per-file cost of every run in ds in the Go
// benchmark format. Each run is one result whose iteration count is
// its number of files; the filesystem is recorded in the "filesystem"
// file configuration key. Every measurement is a single exact value,
// so the output can be compared across runs with
//
//	benchstat -col filesystem
func WriteBenchfmt(w io.Writer, ds fsbench.Dataset) error {
	bw := benchfmt.NewWriter(w)
	for _, unit := range []string{unitSec, unitRead, unitWrite, unitIOWait} {
		err := bw.Write(&benchfmt.UnitMetadata{
			UnitMetadataKey: benchfmt.UnitMetadataKey{Unit: unit, Key: "assume"},
			OrigUnit:        unit,
			Value:           "exact",
		})
		if err != nil {
			return err
		}
	}

	for _, f := range fsbench.Filesystems {
		rs := ds[f]
		if rs == nil {
			return &metric.DerivationError{Filesystem: f, Msg: "no results"}
		}
		for _, k := range fsbench.Kinds {
			res, err := costs(f, k, rs.Record(k))
			if err != nil {
				return err
			}
			if err := bw.Write(res); err != nil {
				return err
			}
		}
	}
	return nil
}

// costs converts rec into a benchmark result of per-file costs.
func costs(f fsbench.Filesystem, k fsbench.Kind, rec fsbench.Record) (*benchfmt.Result, error) {
	for _, m := range []metric.Metric{metric.ReadsPerFile, metric.Throughput} {
		if _, err := m.Of(rec); err != nil {
			return nil, &metric.DerivationError{Filesystem: f, Kind: k, Metric: m, Msg: err.Error()}
		}
	}

	n := float64(rec.NumFiles)
	return &benchfmt.Result{
		Config: []benchfmt.Config{{Key: "filesystem", Value: []byte(f.String()), File: true}},
		Name:   benchfmt.Name(benchName(k)),
		Iters:  int(rec.NumFiles),
		Values: []benchfmt.Value{
			{Value: rec.Duration.Seconds() / n, Unit: unitSec},
			{Value: float64(rec.Reads) / n, Unit: unitRead},
			{Value: float64(rec.Writes) / n, Unit: unitWrite},
			{Value: float64(rec.IOWait) / n, Unit: unitIOWait},
		},
	}, nil
}

// benchName turns a harness name like "createfiles_batchsync" into a
// benchmark name like "Createfiles/sync=batch".
func benchName(k fsbench.Kind) string {
	name, mode, ok := strings.Cut(k.String(), "_")
	name = strings.ToUpper(name[:1]) + name[1:]
	if ok {
		name += "/sync=" + strings.TrimSuffix(mode, "sync")
	}
	return name
}
