// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fsbench

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"
)

// SummaryFile is the name of the summary document within each
// filesystem's directory.
const SummaryFile = "summary.json"

// SummaryPath returns the slash-separated path of f's summary,
// relative to the root of the result tree.
func SummaryPath(f Filesystem) string {
	return path.Join(f.String(), SummaryFile)
}

// A MissingFileError reports that a filesystem's summary does not
// exist.
type MissingFileError struct {
	Filesystem Filesystem
	Path       string
	Err        error
}

func (e *MissingFileError) Error() string {
	return fmt.Sprintf("%s: no summary for %s", e.Path, e.Filesystem)
}

func (e *MissingFileError) Unwrap() error {
	return e.Err
}

// A MalformedDataError reports that a summary is not a sequence of
// NumKinds well-formed records.
type MalformedDataError struct {
	Filesystem Filesystem
	Path       string
	Msg        string
	Err        error // Underlying decode error, if any
}

func (e *MalformedDataError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: malformed summary for %s: %s: %v", e.Path, e.Filesystem, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: malformed summary for %s: %s", e.Path, e.Filesystem, e.Msg)
}

func (e *MalformedDataError) Unwrap() error {
	return e.Err
}

// rawRecord mirrors Record with pointer fields so that absent fields
// can be told apart from zero ones.
type rawRecord struct {
	Name     *string      `json:"name"`
	Duration *rawDuration `json:"duration"`
	Reads    *int64       `json:"reads"`
	Writes   *int64       `json:"writes"`
	IOWait   *int64       `json:"iowait"`
	NumFiles *int64       `json:"num_files"`
}

type rawDuration struct {
	Secs  *int64 `json:"secs"`
	Nanos *int64 `json:"nanos"`
}

// Load reads the summary of filesystem f from fsys.
//
// If the summary does not exist, Load returns a *MissingFileError.
// If it cannot be decoded into exactly NumKinds complete records, Load
// returns a *MalformedDataError.
func Load(fsys fs.FS, f Filesystem) (*ResultSet, error) {
	p := SummaryPath(f)
	file, err := fsys.Open(p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &MissingFileError{Filesystem: f, Path: p, Err: err}
		}
		return nil, err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", p, err)
	}
	rs, merr := decode(data)
	if merr != nil {
		merr.Filesystem, merr.Path = f, p
		return nil, merr
	}
	return rs, nil
}

// LoadDataset loads the summary of every filesystem in Filesystems
// order. It stops at the first summary that fails to load.
func LoadDataset(fsys fs.FS) (Dataset, error) {
	ds := make(Dataset, NumFilesystems)
	for _, f := range Filesystems {
		rs, err := Load(fsys, f)
		if err != nil {
			return nil, err
		}
		ds[f] = rs
	}
	return ds, nil
}

// decode parses a summary document. The returned error has neither
// Filesystem nor Path set.
func decode(data []byte) (*ResultSet, *MalformedDataError) {
	var raw []rawRecord
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &MalformedDataError{Msg: "cannot decode records", Err: err}
	}
	if len(raw) != NumKinds {
		return nil, &MalformedDataError{Msg: fmt.Sprintf("got %d records, want %d", len(raw), NumKinds)}
	}

	rs := new(ResultSet)
	for i, r := range raw {
		k := Kinds[i]
		rec, msg := r.record(k)
		if msg != "" {
			return nil, &MalformedDataError{Msg: fmt.Sprintf("record %d (%s): %s", i, k, msg)}
		}
		rs[k] = rec
	}
	return rs, nil
}

// record validates r as the record of kind k. On failure it returns a
// description of the problem.
func (r *rawRecord) record(k Kind) (Record, string) {
	var rec Record
	if r.Name != nil {
		if *r.Name != k.String() {
			return rec, fmt.Sprintf("name is %q, want %q", *r.Name, k.String())
		}
		rec.Name = *r.Name
	}

	if r.Duration == nil {
		return rec, "missing field duration"
	}
	if r.Duration.Secs == nil {
		return rec, "missing field duration.secs"
	}
	if r.Duration.Nanos == nil {
		return rec, "missing field duration.nanos"
	}
	rec.Duration = Duration{Secs: *r.Duration.Secs, Nanos: *r.Duration.Nanos}
	if rec.Duration.Secs < 0 {
		return rec, "negative duration.secs"
	}
	if rec.Duration.Nanos < 0 || rec.Duration.Nanos >= 1e9 {
		return rec, fmt.Sprintf("duration.nanos %d out of range", rec.Duration.Nanos)
	}

	counters := []struct {
		name string
		src  *int64
		dst  *int64
	}{
		{"reads", r.Reads, &rec.Reads},
		{"writes", r.Writes, &rec.Writes},
		{"iowait", r.IOWait, &rec.IOWait},
		{"num_files", r.NumFiles, &rec.NumFiles},
	}
	for _, c := range counters {
		if c.src == nil {
			return rec, "missing field " + c.name
		}
		if *c.src < 0 {
			return rec, "negative " + c.name
		}
		*c.dst = *c.src
	}
	return rec, ""
}
