// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchmath computes comparisons between ranked benchmark
// entries: each parser's time relative to the fastest parser on an
// input, and the geometric mean of those ratios across inputs.
package benchmath

import (
	"math"
	"sort"

	"github.com/aclements/go-moremath/stats"

	"github.com/arshad-yaseen/parserbench/benchrank"
	"github.com/arshad-yaseen/parserbench/registry"
)

// A Ratio is a dimensionless value that may be undefined.
type Ratio struct {
	Value float64
	OK    bool
}

// Relative returns, for each entry, its mean time divided by the
// smallest mean time among the present entries. The ratio is
// undefined for absent entries and for every entry if the fastest
// mean is not positive.
func Relative(entries []benchrank.Entry) []Ratio {
	fastest := math.Inf(1)
	for i := range entries {
		if e := &entries[i]; e.Present() && e.Result.Mean < fastest {
			fastest = e.Result.Mean
		}
	}
	out := make([]Ratio, len(entries))
	if !(fastest > 0) || math.IsInf(fastest, 1) {
		return out
	}
	for i := range entries {
		if e := &entries[i]; e.Present() {
			out[i] = Ratio{e.Result.Mean / fastest, true}
		}
	}
	return out
}

// A Summary aggregates one parser's relative times across inputs.
type Summary struct {
	Parser registry.Parser

	// GeoMean is the geometric mean of the parser's relative times.
	// It is defined only if the parser has a defined ratio on every
	// summarized input.
	GeoMean Ratio

	// Inputs is the number of inputs on which the parser had a
	// defined ratio.
	Inputs int
}

// Summarize computes a Summary per parser from the ranked entries of
// each input. A nil element of inputs denotes an input that could not
// be read; it is skipped. The result covers every parser exactly once
// and is ordered like benchrank.Entry.Less: defined summaries first by
// ascending geometric mean, then the rest, ties broken by declaration
// order.
func Summarize(parsers *registry.Parsers, inputs [][]benchrank.Entry) []Summary {
	ratios := make([][]float64, parsers.Len())
	used := 0
	for _, entries := range inputs {
		if entries == nil {
			continue
		}
		used++
		for i, r := range Relative(entries) {
			if r.OK {
				p := entries[i].Parser
				ratios[p] = append(ratios[p], r.Value)
			}
		}
	}

	out := make([]Summary, parsers.Len())
	for _, p := range parsers.All() {
		s := Summary{Parser: p, Inputs: len(ratios[p])}
		if used > 0 && len(ratios[p]) == used {
			s.GeoMean = Ratio{stats.GeoMean(ratios[p]), true}
		}
		out[p] = s
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.GeoMean.OK != b.GeoMean.OK {
			return a.GeoMean.OK
		}
		if a.GeoMean.OK && a.GeoMean.Value != b.GeoMean.Value {
			return a.GeoMean.Value < b.GeoMean.Value
		}
		return a.Parser < b.Parser
	})
	return out
}
