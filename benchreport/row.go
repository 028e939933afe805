// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchreport

import (
	"image/color"

	"github.com/arshad-yaseen/parserbench/benchmath"
	"github.com/arshad-yaseen/parserbench/benchrank"
	"github.com/arshad-yaseen/parserbench/benchunit"
	"github.com/arshad-yaseen/parserbench/registry"
)

// A Row is the display form of one ranked entry.
type Row struct {
	Parser  registry.Parser
	Name    string
	Present bool

	// Formatted times ("12.30 ms"), or benchunit.NA if !Present.
	Mean, Median, Stddev, Min, Max string

	// Throughput is formatted as "123.45 MB/s" or benchunit.NA.
	Throughput string

	// Relative is the mean relative to the fastest parser ("1.25x"),
	// or benchunit.NA.
	Relative string

	// Runs is the number of timed runs, or 0 if unknown.
	Runs int

	// Chart series values. MeanMs and MBPerSec are 0 when
	// undefined; HasMBPerSec distinguishes a zero rate.
	MeanMs      float64
	MBPerSec    float64
	HasMBPerSec bool

	// Color is the chart color of the row.
	Color color.Color
}

// Failed is the status shown in place of a failed parser's mean time.
const Failed = "failed"

// Palette colors present rows by rank. Failed rows use FailedColor.
var Palette = []color.Color{
	color.NRGBA{0x1f, 0x77, 0xb4, 0xff},
	color.NRGBA{0xff, 0x7f, 0x0e, 0xff},
	color.NRGBA{0x2c, 0xa0, 0x2c, 0xff},
	color.NRGBA{0x94, 0x67, 0xbd, 0xff},
	color.NRGBA{0xd6, 0x27, 0x28, 0xff},
	color.NRGBA{0x8c, 0x56, 0x4b, 0xff},
}

// FailedColor is the chart color of failed rows.
var FailedColor color.Color = color.NRGBA{0x99, 0x99, 0x99, 0xff}

// Rows converts ranked entries into display rows, preserving order.
func Rows(parsers *registry.Parsers, entries []benchrank.Entry) []Row {
	rel := benchmath.Relative(entries)
	rows := make([]Row, len(entries))
	rank := 0
	for i := range entries {
		e := &entries[i]
		row := Row{
			Parser:     e.Parser,
			Name:       parsers.Info(e.Parser).Name,
			Present:    e.Present(),
			Mean:       benchunit.NA,
			Median:     benchunit.NA,
			Stddev:     benchunit.NA,
			Min:        benchunit.NA,
			Max:        benchunit.NA,
			Throughput: benchunit.NA,
			Relative:   benchunit.Ratio.FormatOK(rel[i].Value, rel[i].OK),
			Color:      FailedColor,
		}
		if res := e.Result; res != nil {
			row.Mean = benchunit.Millis.Format(res.Mean)
			row.Median = benchunit.Millis.Format(res.Median)
			row.Stddev = benchunit.Millis.Format(res.Stddev)
			row.Min = benchunit.Millis.Format(res.Min)
			row.Max = benchunit.Millis.Format(res.Max)
			row.Runs = res.Runs()
			row.MeanMs = benchunit.Millis.Scale(res.Mean)
			row.Throughput = benchunit.MBPerSec.FormatOK(e.Metrics.Throughput, e.Metrics.HasThroughput)
			if e.Metrics.HasThroughput {
				row.MBPerSec = benchunit.MBPerSec.Scale(e.Metrics.Throughput)
				row.HasMBPerSec = true
			}
			row.Color = Palette[rank%len(Palette)]
			rank++
		}
		rows[i] = row
	}
	return rows
}
