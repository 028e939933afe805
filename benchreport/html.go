// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchreport

import (
	"io"

	"github.com/google/safehtml/template"
)

var htmlTmpl = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
table { border-collapse: collapse; }
th, td { padding: 0.25em 0.75em; border-bottom: 1px solid #ddd; }
td.num { text-align: right; font-variant-numeric: tabular-nums; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
<p>{{.Tagline}}</p>
{{range .Sections}}
<h2>{{.Info.Name}}</h2>
<p>{{.Info.Description}}</p>
{{- if .Err}}
<p><em>No results: {{.Err}}</em></p>
{{- else}}
<table>
<tr><th>Parser</th><th>Mean</th><th>Median</th><th>Stddev</th><th>Min</th><th>Max</th><th>MB/s</th><th>Relative</th><th>Runs</th></tr>
{{- range .Rows}}
<tr><td>{{.Name}}</td>
{{- if .Present}}<td class="num">{{.Mean}}</td>{{else}}<td>failed</td>{{end -}}
<td class="num">{{.Median}}</td><td class="num">{{.Stddev}}</td><td class="num">{{.Min}}</td><td class="num">{{.Max}}</td><td class="num">{{.Throughput}}</td><td class="num">{{.Relative}}</td><td class="num">{{.Runs}}</td></tr>
{{- end}}
</table>
{{- end}}
{{end}}
</body>
</html>
`))

type htmlView struct {
	Title, Tagline string
	Sections       []*Section
}

// WriteHTML writes the benchmark tables of r as a standalone HTML page.
func WriteHTML(w io.Writer, r *Report) error {
	return htmlTmpl.Execute(w, htmlView{Title: Title, Tagline: Tagline, Sections: r.Sections})
}
