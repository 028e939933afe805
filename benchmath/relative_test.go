// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchmath

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/arshad-yaseen/parserbench/benchrank"
	"github.com/arshad-yaseen/parserbench/hyperfine"
	"github.com/arshad-yaseen/parserbench/registry"
)

var abc = registry.MustParsers(
	registry.ParserInfo{Key: "A"},
	registry.ParserInfo{Key: "B"},
	registry.ParserInfo{Key: "C"},
)

func ranked(means map[string]float64) []benchrank.Entry {
	var results []hyperfine.Result
	for _, key := range []string{"A", "B", "C"} {
		if m, ok := means[key]; ok {
			results = append(results, hyperfine.Result{Command: "./bin/" + key, Mean: m})
		}
	}
	pl := &benchrank.Pipeline{Parsers: abc}
	return pl.Run("test", results, 1)
}

func TestRelative(t *testing.T) {
	entries := ranked(map[string]float64{"A": 0.004, "C": 0.001})
	got := Relative(entries)
	want := []Ratio{{1, true}, {4, true}, {0, false}}
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		t.Errorf("Relative (-want +got):\n%s", diff)
	}

	// A zero fastest time makes every ratio undefined.
	for _, r := range Relative(ranked(map[string]float64{"A": 0, "B": 1})) {
		if r.OK {
			t.Errorf("got defined ratio %v with zero fastest time", r.Value)
		}
	}
	if got := Relative(nil); len(got) != 0 {
		t.Errorf("Relative(nil) = %v", got)
	}
}

func TestSummarize(t *testing.T) {
	inputs := [][]benchrank.Entry{
		ranked(map[string]float64{"A": 2, "B": 1, "C": 4}),
		nil, // unreadable input
		ranked(map[string]float64{"A": 8, "B": 1}),
	}
	got := Summarize(abc, inputs)
	want := []Summary{
		{Parser: 1, GeoMean: Ratio{1, true}, Inputs: 2},
		{Parser: 0, GeoMean: Ratio{4, true}, Inputs: 2},
		{Parser: 2, Inputs: 1},
	}
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		t.Errorf("Summarize (-want +got):\n%s", diff)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	got := Summarize(abc, [][]benchrank.Entry{nil})
	want := []Summary{{Parser: 0}, {Parser: 1}, {Parser: 2}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Summarize (-want +got):\n%s", diff)
	}
	for _, s := range got {
		if math.IsNaN(s.GeoMean.Value) {
			t.Errorf("%d: NaN geomean", s.Parser)
		}
	}
}
