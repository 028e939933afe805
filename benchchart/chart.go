// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchchart draws horizontal bar charts of ranked benchmark
// rows, one bar per parser with the fastest parser on top.
package benchchart

import (
	"errors"
	"fmt"
	"image/color"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgsvg"

	"github.com/arshad-yaseen/parserbench/benchreport"
)

// A Metric selects the value each bar shows.
type Metric int

const (
	Time       Metric = iota // mean time in milliseconds
	Throughput               // MB/s
)

// ParseMetric parses "time" or "throughput".
func ParseMetric(s string) (Metric, error) {
	switch s {
	case "time":
		return Time, nil
	case "throughput":
		return Throughput, nil
	}
	return 0, fmt.Errorf("unknown chart metric %q", s)
}

func (m Metric) label() string {
	if m == Throughput {
		return "Throughput (MB/s, higher is better)"
	}
	return "Mean time (ms, lower is better)"
}

// A Format is an image encoding.
type Format int

const (
	PNG Format = iota
	SVG
)

// ParseFormat parses "png" or "svg".
func ParseFormat(s string) (Format, error) {
	switch s {
	case "png":
		return PNG, nil
	case "svg":
		return SVG, nil
	}
	return 0, fmt.Errorf("unknown chart format %q", s)
}

// Ext returns the file name extension of f, without the dot.
func (f Format) Ext() string {
	if f == SVG {
		return "svg"
	}
	return "png"
}

// Options control chart rendering. The zero value draws mean times as
// a PNG of the default size.
type Options struct {
	Metric Metric
	Format Format

	// Width and Height default to 16cm by 1.5cm per row plus 3cm.
	Width, Height vg.Length

	// DPI is the PNG resolution. It defaults to 144.
	DPI int
}

const (
	barWidth = 18 // points
	dpi      = 144
)

// ErrNoRows is returned for a chart with nothing to draw.
var ErrNoRows = errors.New("benchchart: no rows")

// value returns the bar length of row under m, or false if the row
// has no bar.
func value(row *benchreport.Row, m Metric) (float64, string, bool) {
	if !row.Present {
		return 0, benchreport.Failed, false
	}
	if m == Throughput {
		return row.MBPerSec, row.Throughput, row.HasMBPerSec
	}
	return row.MeanMs, row.Mean, true
}

// Plot builds the chart of rows, which must be in rank order.
func Plot(title string, rows []benchreport.Row, m Metric) (*plot.Plot, error) {
	if len(rows) == 0 {
		return nil, ErrNoRows
	}
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = m.label()
	p.X.Min = 0

	grid := plotter.NewGrid()
	grid.Horizontal.Color = nil
	p.Add(grid)

	// Rank 0 sits at the top of the Y axis.
	n := len(rows)
	names := make([]string, n)
	var labels plotter.XYLabels
	for i := range rows {
		row := &rows[i]
		y := float64(n - 1 - i)
		names[n-1-i] = row.Name

		v, text, ok := value(row, m)
		labels.XYs = append(labels.XYs, plotter.XY{X: v, Y: y})
		labels.Labels = append(labels.Labels, text)
		if !ok {
			continue
		}
		bar, err := plotter.NewBarChart(plotter.Values{v}, vg.Points(barWidth))
		if err != nil {
			return nil, err
		}
		bar.Horizontal = true
		bar.XMin = y
		bar.Color = row.Color
		bar.LineStyle.Width = 0
		p.Add(bar)
	}
	p.NominalY(names...)

	lp, err := plotter.NewLabels(labels)
	if err != nil {
		return nil, err
	}
	lp.Offset = vg.Point{X: vg.Points(4), Y: -vg.Points(4)}
	for i := range lp.TextStyle {
		lp.TextStyle[i].Color = color.Black
	}
	p.Add(lp)
	return p, nil
}

// Write draws the chart of rows to w.
func Write(w io.Writer, title string, rows []benchreport.Row, opts Options) error {
	p, err := Plot(title, rows, opts.Metric)
	if err != nil {
		return err
	}
	width, height := opts.Width, opts.Height
	if width == 0 {
		width = 16 * vg.Centimeter
	}
	if height == 0 {
		height = vg.Length(len(rows))*1.5*vg.Centimeter + 3*vg.Centimeter
	}

	var can vg.CanvasWriterTo
	switch opts.Format {
	case SVG:
		can = vgsvg.New(width, height)
	default:
		res := opts.DPI
		if res <= 0 {
			res = dpi
		}
		can = vgimg.PngCanvas{Canvas: vgimg.NewWith(vgimg.UseWH(width, height),
			vgimg.UseDPI(res), vgimg.UseBackgroundColor(color.White))}
	}
	p.Draw(draw.New(can))
	_, err = can.WriteTo(w)
	return err
}
