// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"fmt"

	"github.com/fsbench/fsplot/fsbench"
	"github.com/fsbench/fsplot/metric"
)

// A Family is a group of charts about one benchmark operation.
type Family int

const (
	Create Family = iota
	Rename
	Delete
	ListDir
	Poster
)

// Families lists every chart family in the order charts are produced.
var Families = []Family{Create, Rename, Delete, ListDir, Poster}

func (f Family) String() string {
	switch f {
	case Create:
		return "createfiles"
	case Rename:
		return "renamefiles"
	case Delete:
		return "deletefiles"
	case ListDir:
		return "listdir"
	case Poster:
		return "poster"
	}
	return fmt.Sprintf("Family(%d)", int(f))
}

// A SeriesSpec names the derivation behind one series of a chart.
type SeriesSpec struct {
	Kind   fsbench.Kind
	Metric metric.Metric
	Label  string // Legend label
}

// A Spec describes one chart. All series of a chart share a unit,
// which labels the y axis.
type Spec struct {
	File   string // Output file name
	Title  string
	Series []SeriesSpec
}

// Unit returns the y axis label of s.
func (s Spec) Unit() string {
	return s.Series[0].Metric.Unit()
}

func single(file, title string, k fsbench.Kind, m metric.Metric) Spec {
	return Spec{File: file, Title: title, Series: []SeriesSpec{{Kind: k, Metric: m}}}
}

// syncPair compares batched and per-file fsync creation.
func syncPair(file, title string, m metric.Metric) Spec {
	return Spec{File: file, Title: title, Series: []SeriesSpec{
		{fsbench.CreateBatchSync, m, "Batch fsync"},
		{fsbench.CreateEachSync, m, "Frequent fsync"},
	}}
}

// ioPair compares reads and writes of a single kind.
func ioPair(file, title string, k fsbench.Kind) Spec {
	return Spec{File: file, Title: title, Series: []SeriesSpec{
		{k, metric.ReadsPerFile, "Reads"},
		{k, metric.WritesPerFile, "Writes"},
	}}
}

var catalog = map[Family][]Spec{
	Create: {
		single("createfiles-duration.png", "Create Files throughput: No fsync", fsbench.CreateNoSync, metric.Throughput),
		single("createfiles-iowait.png", "Create Files IOwait: No fsync", fsbench.CreateNoSync, metric.IOWaitPerFile),
		syncPair("createfiles-duration-sync.png", "Create files throughput", metric.Throughput),
		syncPair("createfiles-iowait-sync.png", "Create files IOwait", metric.IOWaitPerFile),
		{File: "createfiles-reads.png", Title: "Createfiles Reads", Series: []SeriesSpec{
			{fsbench.CreateNoSync, metric.ReadsPerFile, "No fsync"},
			{fsbench.CreateBatchSync, metric.ReadsPerFile, "Batch fsync"},
			{fsbench.CreateEachSync, metric.ReadsPerFile, "Frequent fsync"},
		}},
		single("createfiles-writes.png", "Create Files Writes: No fsync", fsbench.CreateNoSync, metric.WritesPerFile),
		syncPair("createfiles-writes-sync.png", "Createfiles Writes", metric.WritesPerFile),
	},
	Rename: {
		single("renamefiles-throughput.png", "Rename Files Throughput", fsbench.Rename, metric.Throughput),
		ioPair("renamefiles-io.png", "Rename IO", fsbench.Rename),
	},
	Delete: {
		single("deletefiles-throughput.png", "Delete Files Throughput", fsbench.Delete, metric.Throughput),
		ioPair("deletefiles-io.png", "Delete IO", fsbench.Delete),
	},
	ListDir: {
		single("listdirfiles-throughput.png", "Listdir Files Throughput", fsbench.ListDir, metric.Throughput),
		ioPair("listdirfiles-io.png", "Listdir IO", fsbench.ListDir),
	},
	// The poster shows the most durable creation mode only.
	Poster: {
		single("poster-createfiles-duration.png", "Create Files: Throughput", fsbench.CreateEachSync, metric.Throughput),
		single("poster-createfiles-reads.png", "Create Files: Reads", fsbench.CreateEachSync, metric.ReadsPerFile),
		single("poster-createfiles-writes.png", "Create Files: Writes", fsbench.CreateEachSync, metric.WritesPerFile),
	},
}

// Charts returns the charts of family f, in production order.
func (f Family) Charts() []Spec {
	return catalog[f]
}
