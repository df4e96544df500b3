// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package texttab

import (
	"strings"
	"testing"

	"github.com/fsbench/fsplot/internal/diff"
)

func TestFormat(t *testing.T) {
	var tab Table
	tab.Row().Cell("").Cell("ext2", Right).Cell("btrfs", Right)
	tab.Row().Cell("throughput").Cell("40.00k", Right).Cell("1.5k", Right)
	tab.Row().Cell("reads").Cell("4.000", Right)

	var got strings.Builder
	if err := tab.Format(&got); err != nil {
		t.Fatal(err)
	}
	want := `              ext2  btrfs
throughput  40.00k   1.5k
reads        4.000
`
	if d := diff.Diff(want, got.String()); d != "" {
		t.Errorf("table mismatch:\n%s", d)
	}
}

func TestCellStartsRow(t *testing.T) {
	var tab Table
	tab.Cell("a").Cell("b")
	var got strings.Builder
	if err := tab.Format(&got); err != nil {
		t.Fatal(err)
	}
	if got.String() != "a  b\n" {
		t.Errorf("got %q", got.String())
	}
}
