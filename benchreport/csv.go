// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchreport

import (
	"encoding/csv"
	"io"
	"strconv"
)

var csvHeader = []string{
	"input", "parser", "present",
	"mean_s", "stddev_s", "median_s", "min_s", "max_s",
	"runs", "throughput_bytes_per_s",
}

// WriteCSV writes one record per (input, parser) pair of the
// successful sections of r, in report order. Times are raw seconds.
// Fields of failed parsers and undefined throughputs are empty.
func WriteCSV(w io.Writer, r *Report) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, s := range r.Sections {
		if s.Err != nil {
			continue
		}
		for _, e := range s.Entries {
			rec := make([]string, len(csvHeader))
			rec[0] = s.Info.Key
			rec[1] = r.Registry.Parsers.Info(e.Parser).Key
			rec[2] = strconv.FormatBool(e.Present())
			if res := e.Result; res != nil {
				for i, v := range []float64{res.Mean, res.Stddev, res.Median, res.Min, res.Max} {
					rec[3+i] = formatFloat(v)
				}
				rec[8] = strconv.Itoa(res.Runs())
				if e.Metrics.HasThroughput {
					rec[9] = formatFloat(e.Metrics.Throughput)
				}
			}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
