// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Fsplot draws bar charts comparing filesystem benchmark results.
//
// Usage:
//
//	fsplot [flags]
//
// Fsplot reads one benchmark summary per filesystem from
// <data>/<label>/summary.json, where the labels are, in order,
//
//	ext2 ext4 ext4-no-journal btrfs f2fs xfs
//
// Every summary holds six records, one for each of the benchmark runs
// createfiles, createfiles_batchsync, createfiles_eachsync,
// renamefiles, deletefiles and listdir. From these, fsplot derives
// throughput (files per second), device reads and writes (KiB per
// file) and I/O wait (per file), and draws them as sixteen PNG charts
// in the output directory, one bar per filesystem.
//
// Either every chart is written or none is: if any summary is missing
// or malformed, or any figure cannot be derived, fsplot reports the
// problem and exits without creating the output directory.
//
// The flags are:
//
//	-data dir
//		Read summaries from dir (default ".").
//	-o dir
//		Write charts into dir (default "plots").
//	-table
//		Also print every derived figure as a text table, with a
//		geometric mean across filesystems.
//	-benchfmt file
//		Also write the per-file cost of every run to file in the Go
//		benchmark format, for use with benchstat.
//	-html
//		Also write index.html, showing every chart, into the output
//		directory.
//	-v
//		Log each file as it is written.
//
// Fsplot exits 0 on success, 2 on a usage error, and 1 otherwise.
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/fsbench/fsplot/fsbench"
	"github.com/fsbench/fsplot/report"
)

var exit = os.Exit // replaced during testing

// A usageError is a problem with the command line.
type usageError struct {
	msg string
}

func (e *usageError) Error() string {
	return e.msg
}

func main() {
	log.SetPrefix("fsplot: ")
	log.SetFlags(0)

	if err := fsplot(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			exit(2)
			return
		}
		var uerr *usageError
		if errors.As(err, &uerr) {
			log.Print(err)
			fmt.Fprintf(os.Stderr, "usage: fsplot [flags]\n")
			exit(2)
			return
		}
		log.Print(err)
		exit(1)
	}
}

func fsplot(w, wErr io.Writer, args []string) error {
	flags := flag.NewFlagSet("fsplot", flag.ContinueOnError)
	flags.SetOutput(wErr)
	flags.Usage = func() {
		fmt.Fprintf(flags.Output(), "usage: fsplot [flags]\n")
		fmt.Fprintf(flags.Output(), "flags:\n")
		flags.PrintDefaults()
	}
	flagData := flags.String("data", ".", "read `dir`/<filesystem>/summary.json")
	flagOut := flags.String("o", "plots", "write charts into `dir`")
	flagTable := flags.Bool("table", false, "print a table of every derived figure")
	flagBenchfmt := flags.String("benchfmt", "", "write per-file costs to `file` in Go benchmark format")
	flagHTML := flags.Bool("html", false, "write an HTML index of the charts into the output directory")
	flagVerbose := flags.Bool("v", false, "log each file as it is written")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if flags.NArg() > 0 {
		return &usageError{fmt.Sprintf("unexpected argument %q", flags.Arg(0))}
	}

	logger := log.New(wErr, "fsplot: ", 0)
	vlogf := func(format string, args ...any) {
		if *flagVerbose {
			logger.Printf(format, args...)
		}
	}

	ds, err := fsbench.LoadDataset(os.DirFS(*flagData))
	if err != nil {
		return err
	}
	vlogf("loaded %d summaries from %s", len(ds), *flagData)

	outs, err := report.Build(ds)
	if err != nil {
		return err
	}

	// Render the auxiliary outputs before touching the output
	// directory so that a failure leaves nothing behind.
	var index bytes.Buffer
	if *flagHTML {
		if err := report.WriteIndex(&index, outs); err != nil {
			return err
		}
	}
	var bench bytes.Buffer
	if *flagBenchfmt != "" {
		if err := report.WriteBenchfmt(&bench, ds); err != nil {
			return err
		}
	}
	var table bytes.Buffer
	if *flagTable {
		if err := report.WriteTable(&table, ds); err != nil {
			return err
		}
	}

	if err := report.Write(*flagOut, outs); err != nil {
		return err
	}
	for _, o := range outs {
		vlogf("wrote %s", filepath.Join(*flagOut, o.Spec.File))
	}
	if *flagHTML {
		path := filepath.Join(*flagOut, report.IndexFile)
		if err := os.WriteFile(path, index.Bytes(), 0666); err != nil {
			return err
		}
		vlogf("wrote %s", path)
	}
	if *flagBenchfmt != "" {
		if err := os.WriteFile(*flagBenchfmt, bench.Bytes(), 0666); err != nil {
			return err
		}
		vlogf("wrote %s", *flagBenchfmt)
	}
	if *flagTable {
		if _, err := w.Write(table.Bytes()); err != nil {
			return err
		}
	}
	return nil
}
