// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fsbench provides the data model and loader for filesystem
// benchmark summaries.
//
// A summary is a JSON document written by the benchmark harness for
// a single filesystem. It holds one record per benchmark kind, in the
// order the harness runs them. The set of filesystems under test and
// their order are fixed: every consumer iterates over Filesystems so
// that values for the same filesystem line up across charts and
// tables.
package fsbench

import "fmt"

// A Filesystem identifies one of the filesystems under test.
type Filesystem int

const (
	Ext2 Filesystem = iota
	Ext4
	Ext4NoJournal
	Btrfs
	F2FS
	XFS
)

// NumFilesystems is the number of filesystems under test.
const NumFilesystems = int(XFS) + 1

// Filesystems lists every filesystem in presentation order.
var Filesystems = [NumFilesystems]Filesystem{Ext2, Ext4, Ext4NoJournal, Btrfs, F2FS, XFS}

var filesystemLabels = [NumFilesystems]string{
	Ext2:          "ext2",
	Ext4:          "ext4",
	Ext4NoJournal: "ext4-no-journal",
	Btrfs:         "btrfs",
	F2FS:          "f2fs",
	XFS:           "xfs",
}

// String returns the label of f, which is also the name of the
// directory holding its summary.
func (f Filesystem) String() string {
	if f < 0 || int(f) >= NumFilesystems {
		return fmt.Sprintf("Filesystem(%d)", int(f))
	}
	return filesystemLabels[f]
}

// Labels returns the labels of Filesystems, in order.
func Labels() []string {
	labels := make([]string, NumFilesystems)
	for i, f := range Filesystems {
		labels[i] = f.String()
	}
	return labels
}

// ParseFilesystem returns the Filesystem with the given label.
func ParseFilesystem(label string) (Filesystem, bool) {
	for _, f := range Filesystems {
		if filesystemLabels[f] == label {
			return f, true
		}
	}
	return 0, false
}

// A Kind identifies a benchmark run. Its value is the position of the
// run's record within a summary.
type Kind int

const (
	CreateNoSync Kind = iota
	CreateBatchSync
	CreateEachSync
	Rename
	Delete
	ListDir
)

// NumKinds is the number of records in every summary.
const NumKinds = int(ListDir) + 1

// Kinds lists every benchmark kind in summary order.
var Kinds = [NumKinds]Kind{CreateNoSync, CreateBatchSync, CreateEachSync, Rename, Delete, ListDir}

// The harness records each run under these names.
var kindNames = [NumKinds]string{
	CreateNoSync:    "createfiles",
	CreateBatchSync: "createfiles_batchsync",
	CreateEachSync:  "createfiles_eachsync",
	Rename:          "renamefiles",
	Delete:          "deletefiles",
	ListDir:         "listdir",
}

// String returns the harness name of k.
func (k Kind) String() string {
	if k < 0 || int(k) >= NumKinds {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// A Duration is the elapsed time of a run, split the way the harness
// serializes it.
type Duration struct {
	Secs  int64 `json:"secs"`
	Nanos int64 `json:"nanos"`
}

// Seconds returns d as a floating-point number of seconds.
func (d Duration) Seconds() float64 {
	return float64(d.Secs) + float64(d.Nanos)/1e9
}

// A Record holds the raw counters of a single benchmark run.
type Record struct {
	// Name is the harness name of the run. It is empty if the
	// summary did not record one.
	Name string

	Duration Duration
	Reads    int64 // Bytes read from the device
	Writes   int64 // Bytes written to the device
	IOWait   int64
	NumFiles int64 // Number of files the run operated on
}

// A ResultSet holds every record of one filesystem's summary,
// indexed by Kind.
type ResultSet [NumKinds]Record

// Record returns the record for benchmark kind k.
func (rs *ResultSet) Record(k Kind) Record {
	return rs[k]
}

// A Dataset maps each filesystem to its results. Datasets are not
// modified after loading.
type Dataset map[Filesystem]*ResultSet
