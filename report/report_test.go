// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"bytes"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/perf/benchfmt"

	"github.com/fsbench/fsplot/fsbench"
	"github.com/fsbench/fsplot/metric"
)

// dataset returns a dataset in which filesystem i took i+1 seconds
// for every run. The listdir runs record no I/O wait.
func dataset() fsbench.Dataset {
	ds := make(fsbench.Dataset)
	for i, f := range fsbench.Filesystems {
		rs := new(fsbench.ResultSet)
		for _, k := range fsbench.Kinds {
			rs[k] = fsbench.Record{
				Name:     k.String(),
				Duration: fsbench.Duration{Secs: int64(i + 1)},
				Reads:    4096 * int64(i+1),
				Writes:   8192,
				IOWait:   100,
				NumFiles: 1000,
			}
		}
		rs[fsbench.ListDir].IOWait = 0
		ds[f] = rs
	}
	return ds
}

var wantFiles = []string{
	"createfiles-duration.png",
	"createfiles-iowait.png",
	"createfiles-duration-sync.png",
	"createfiles-iowait-sync.png",
	"createfiles-reads.png",
	"createfiles-writes.png",
	"createfiles-writes-sync.png",
	"renamefiles-throughput.png",
	"renamefiles-io.png",
	"deletefiles-throughput.png",
	"deletefiles-io.png",
	"listdirfiles-throughput.png",
	"listdirfiles-io.png",
	"poster-createfiles-duration.png",
	"poster-createfiles-reads.png",
	"poster-createfiles-writes.png",
}

func TestCatalog(t *testing.T) {
	var files []string
	for _, f := range Families {
		for _, s := range f.Charts() {
			files = append(files, s.File)
			if n := len(s.Series); n < 1 || n > 3 {
				t.Errorf("%s: %d series", s.File, n)
			}
			for _, ss := range s.Series {
				if ss.Metric.Unit() != s.Unit() {
					t.Errorf("%s: series %s %s in %s, chart in %s", s.File, ss.Kind, ss.Metric, ss.Metric.Unit(), s.Unit())
				}
				if len(s.Series) > 1 && ss.Label == "" {
					t.Errorf("%s: unlabeled series in multi-series chart", s.File)
				}
			}
		}
	}
	if diff := cmp.Diff(wantFiles, files); diff != "" {
		t.Errorf("chart files mismatch (-want +got):\n%s", diff)
	}
}

func TestBuild(t *testing.T) {
	outs, err := Build(dataset())
	if err != nil {
		t.Fatal(err)
	}
	if len(outs) != len(wantFiles) {
		t.Fatalf("got %d outputs, want %d", len(outs), len(wantFiles))
	}
	for i, o := range outs {
		if o.Spec.File != wantFiles[i] {
			t.Errorf("output %d is %s, want %s", i, o.Spec.File, wantFiles[i])
		}
		if got, want := len(o.Chart.Bars), len(o.Spec.Series); got != want {
			t.Errorf("%s: %d bar series, want %d", o.Spec.File, got, want)
		}
		if o.Chart.Title != o.Spec.Title {
			t.Errorf("%s: title %q, want %q", o.Spec.File, o.Chart.Title, o.Spec.Title)
		}
	}
}

func TestBuildValues(t *testing.T) {
	ds := dataset()
	outs, err := Build(ds)
	if err != nil {
		t.Fatal(err)
	}
	// renamefiles-io.png: reads and writes of the rename runs.
	var io *Output
	for _, o := range outs {
		if o.Spec.File == "renamefiles-io.png" {
			io = o
		}
	}
	if io == nil {
		t.Fatal("no renamefiles-io.png")
	}
	wantReads := []float64{0.004, 0.008, 0.012, 0.016, 0.02, 0.024}
	opt := cmp.Comparer(func(x, y float64) bool {
		d := x - y
		return d < 1e-12 && d > -1e-12
	})
	if diff := cmp.Diff(wantReads, io.Chart.Bars[0].Values, opt); diff != "" {
		t.Errorf("reads mismatch (-want +got):\n%s", diff)
	}
	wantWrites := []float64{0.008, 0.008, 0.008, 0.008, 0.008, 0.008}
	if diff := cmp.Diff(wantWrites, io.Chart.Bars[1].Values, opt); diff != "" {
		t.Errorf("writes mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"Reads", "Writes"}, io.Chart.Legend); diff != "" {
		t.Errorf("legend mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildZeroDuration(t *testing.T) {
	ds := dataset()
	ds[fsbench.Btrfs][fsbench.Rename].Duration = fsbench.Duration{}

	_, err := Build(ds)
	var derr *metric.DerivationError
	if !errors.As(err, &derr) {
		t.Fatalf("got %v, want *metric.DerivationError", err)
	}
	if derr.Filesystem != fsbench.Btrfs || derr.Kind != fsbench.Rename {
		t.Errorf("error names %s %s, want btrfs renamefiles", derr.Filesystem, derr.Kind)
	}
	if !strings.HasPrefix(err.Error(), "renamefiles: renamefiles-throughput.png: ") {
		t.Errorf("error %q does not name the chart", err)
	}
}

func TestWrite(t *testing.T) {
	outs, err := Build(dataset())
	if err != nil {
		t.Fatal(err)
	}
	dir := filepath.Join(t.TempDir(), "plots")
	if err := Write(dir, outs); err != nil {
		t.Fatal(err)
	}
	for _, name := range wantFiles {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			t.Error(err)
			continue
		}
		if _, err := png.DecodeConfig(bytes.NewReader(data)); err != nil {
			t.Errorf("%s: %v", name, err)
		}
	}
	ents, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(ents) != len(wantFiles) {
		t.Errorf("%d files in output directory, want %d", len(ents), len(wantFiles))
	}
}

func TestNoPartialOutput(t *testing.T) {
	ds := dataset()
	ds[fsbench.XFS][fsbench.CreateEachSync].NumFiles = 0

	dir := filepath.Join(t.TempDir(), "plots")
	outs, err := Build(ds)
	if err == nil {
		err = Write(dir, outs)
	}
	if err == nil {
		t.Fatal("zero num_files did not fail")
	}
	if _, err := os.Stat(dir); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("output directory exists after failure: %v", err)
	}
}

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteTable(&buf, dataset()); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if want := 1 + fsbench.NumKinds*len(Metrics); len(lines) != want {
		t.Fatalf("got %d lines, want %d:\n%s", len(lines), want, buf.String())
	}
	header := strings.Fields(lines[0])
	if diff := cmp.Diff(append(fsbench.Labels(), "geomean"), header); diff != "" {
		t.Errorf("header mismatch (-want +got):\n%s", diff)
	}
	for _, line := range lines[1:] {
		if strings.HasPrefix(line, "listdir iowait ") {
			if !strings.HasSuffix(line, "~") {
				t.Errorf("all-zero row has a geomean: %q", line)
			}
			continue
		}
		if strings.HasSuffix(line, "~") {
			t.Errorf("row has no geomean: %q", line)
		}
	}
	if !strings.Contains(buf.String(), "createfiles_batchsync throughput  Files/Second") {
		t.Errorf("missing throughput row:\n%s", buf.String())
	}
}

func TestWriteBenchfmt(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteBenchfmt(&buf, dataset()); err != nil {
		t.Fatal(err)
	}

	type key struct{ fs, name string }
	got := make(map[key]*benchfmt.Result)
	r := benchfmt.NewReader(&buf, "fsbench")
	for r.Scan() {
		switch rec := r.Result().(type) {
		case *benchfmt.SyntaxError:
			t.Fatal(rec)
		case *benchfmt.Result:
			got[key{rec.GetConfig("filesystem"), rec.Name.String()}] = rec.Clone()
		}
	}
	if err := r.Err(); err != nil {
		t.Fatal(err)
	}
	if len(got) != fsbench.NumFilesystems*fsbench.NumKinds {
		t.Fatalf("got %d results, want %d", len(got), fsbench.NumFilesystems*fsbench.NumKinds)
	}
	if a := r.Units()[benchfmt.UnitMetadataKey{Unit: unitSec, Key: "assume"}]; a == nil || a.Value != "exact" {
		t.Errorf("sec/op not marked exact: %v", a)
	}

	res := got[key{"btrfs", "Createfiles/sync=batch"}]
	if res == nil {
		t.Fatal("no btrfs Createfiles/sync=batch result")
	}
	if res.Iters != 1000 {
		t.Errorf("iters = %d, want 1000", res.Iters)
	}
	for unit, want := range map[string]float64{
		unitSec:    0.004,
		unitRead:   16.384,
		unitWrite:  8.192,
		unitIOWait: 0.1,
	} {
		v, ok := res.Value(unit)
		if !ok || v-want > 1e-12 || want-v > 1e-12 {
			t.Errorf("%s = %v, %v; want %v", unit, v, ok, want)
		}
	}
}

func TestBenchName(t *testing.T) {
	want := []string{
		"Createfiles",
		"Createfiles/sync=batch",
		"Createfiles/sync=each",
		"Renamefiles",
		"Deletefiles",
		"Listdir",
	}
	for i, k := range fsbench.Kinds {
		if got := benchName(k); got != want[i] {
			t.Errorf("benchName(%s) = %q, want %q", k, got, want[i])
		}
	}
}

func TestWriteIndex(t *testing.T) {
	outs, err := Build(dataset())
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := WriteIndex(&buf, outs); err != nil {
		t.Fatal(err)
	}
	page := buf.String()
	for _, f := range Families {
		if n := strings.Count(page, "<h2>"+f.String()+"</h2>"); n != 1 {
			t.Errorf("family %s has %d headings", f, n)
		}
	}
	for _, name := range wantFiles {
		if !strings.Contains(page, `src="`+name+`"`) {
			t.Errorf("index does not show %s", name)
		}
	}
}
