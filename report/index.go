// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"io"

	"github.com/google/safehtml/template"
)

// IndexFile is the name WriteIndex output is conventionally saved as,
// alongside the charts.
const IndexFile = "index.html"

var indexTemplate = template.Must(template.New("index").Parse(`<!doctype html>
<html>
<head>
<meta charset="utf-8">
<title>Filesystem Benchmark Comparison</title>
</head>
<body>
{{range .}}<h2>{{.Name}}</h2>
{{range .Charts}}<figure><img src="{{.File}}" alt="{{.Title}}"><figcaption>{{.Title}}</figcaption></figure>
{{end}}{{end}}</body>
</html>
`))

type indexFamily struct {
	Name   string
	Charts []Spec
}

// WriteIndex writes an HTML page showing outs, grouped by family. The
// page refers to each chart by its file name, so it belongs in the
// directory passed to Write.
func WriteIndex(w io.Writer, outs []*Output) error {
	var fams []*indexFamily
	for _, o := range outs {
		if len(fams) == 0 || fams[len(fams)-1].Name != o.Family.String() {
			fams = append(fams, &indexFamily{Name: o.Family.String()})
		}
		last := fams[len(fams)-1]
		last.Charts = append(last.Charts, o.Spec)
	}
	return indexTemplate.Execute(w, fams)
}
