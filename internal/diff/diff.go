// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package diff reports differences between expected and actual test
// output.
package diff

import (
	"fmt"
	"os"
	"os/exec"
)

// Diff returns a unified diff from want to got, or "" if they are
// equal. Without a diff command it falls back to quoting both.
func Diff(want, got string) string {
	if want == got {
		return ""
	}
	if _, err := exec.LookPath("diff"); err != nil {
		return fmt.Sprintf("want: %q\ngot:  %q", want, got)
	}

	wantFile, err := writeTemp("want", want)
	if err != nil {
		return err.Error()
	}
	defer os.Remove(wantFile)
	gotFile, err := writeTemp("got", got)
	if err != nil {
		return err.Error()
	}
	defer os.Remove(gotFile)

	data, err := exec.Command("diff", "-u", wantFile, gotFile).CombinedOutput()
	if len(data) > 0 {
		// diff exits non-zero when the inputs differ.
		return string(data)
	}
	if err != nil {
		return err.Error()
	}
	return fmt.Sprintf("want: %q\ngot:  %q", want, got)
}

func writeTemp(prefix, data string) (string, error) {
	f, err := os.CreateTemp("", "fsplot-"+prefix)
	if err != nil {
		return "", err
	}
	_, err = f.WriteString(data)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(f.Name())
		return "", err
	}
	return f.Name(), nil
}
