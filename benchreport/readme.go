// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchreport

import (
	_ "embed"
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/arshad-yaseen/parserbench/benchmath"
	"github.com/arshad-yaseen/parserbench/benchunit"
	"github.com/arshad-yaseen/parserbench/internal/mdtab"
	"github.com/arshad-yaseen/parserbench/registry"
)

// Title and Tagline head the README.
const (
	Title   = "ECMAScript Native Parser Benchmark"
	Tagline = "Benchmark ECMAScript parsers implemented in native languages."
)

//go:embed readme.tmpl
var readmeText string

var readmeTmpl = template.Must(template.New("README.md").Parse(readmeText))

type readmeView struct {
	Title, Tagline string
	Parsers        []registry.ParserInfo
	Sections       []sectionView
	Summary        string
}

type sectionView struct {
	Name, Description string
	Err               string
	Size              string
	Chart             string
	Table             string
}

// WriteREADME writes r as a markdown README to w.
func WriteREADME(w io.Writer, r *Report) error {
	v := readmeView{Title: Title, Tagline: Tagline}
	for _, p := range r.Registry.Parsers.All() {
		v.Parsers = append(v.Parsers, r.Registry.Parsers.Info(p))
	}
	for _, s := range r.Sections {
		sv := sectionView{Name: s.Info.Name, Description: s.Info.Description}
		if s.Err != nil {
			sv.Err = oneLine(s.Err.Error())
		} else {
			sv.Size = benchunit.Megabytes.FormatOK(float64(s.Size), s.Size >= 0)
			sv.Chart = s.Chart
			sv.Table = markdown(benchTable(s.Rows))
		}
		v.Sections = append(v.Sections, sv)
	}
	v.Summary = markdown(summaryTable(r))
	return readmeTmpl.Execute(w, v)
}

func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func markdown(t *mdtab.Table) string {
	var b strings.Builder
	// Writes to a strings.Builder cannot fail.
	t.Format(&b)
	return b.String()
}

func benchTable(rows []Row) *mdtab.Table {
	t := new(mdtab.Table)
	t.Row().Cells("Parser", "Mean", "Min", "Max", "MB/s")
	for col := 1; col <= 4; col++ {
		t.SetAlign(col, mdtab.Right)
	}
	for _, row := range rows {
		mean := row.Mean
		if !row.Present {
			mean = Failed
		}
		t.Row().Cells(row.Name, mean, row.Min, row.Max, row.Throughput)
	}
	return t
}

func summaryTable(r *Report) *mdtab.Table {
	used := 0
	for _, s := range r.Sections {
		if s.Err == nil {
			used++
		}
	}
	t := new(mdtab.Table)
	t.Row().Cells("Parser", "Relative time", "Inputs")
	t.SetAlign(1, mdtab.Right).SetAlign(2, mdtab.Right)
	for _, s := range r.Summary {
		t.Row().Cells(
			r.Registry.Parsers.Info(s.Parser).Name,
			relative(s.GeoMean),
			fmt.Sprintf("%d/%d", s.Inputs, used),
		)
	}
	return t
}

func relative(r benchmath.Ratio) string {
	return benchunit.Ratio.FormatOK(r.Value, r.OK)
}
