// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchreport assembles ranked benchmark results into report
// sections and renders them as a markdown README, CSV, or HTML.
//
// A Builder loads the result document of every registered input,
// ranks it with a benchrank.Pipeline, and converts the ranked entries
// into display Rows. Each input is loaded independently: a missing or
// malformed result file fails only its own Section. An input whose
// size is unknown is still ranked, without throughput.
package benchreport

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/arshad-yaseen/parserbench/benchmath"
	"github.com/arshad-yaseen/parserbench/benchrank"
	"github.com/arshad-yaseen/parserbench/hyperfine"
	"github.com/arshad-yaseen/parserbench/registry"
)

// A Source supplies the raw result document of an input.
type Source interface {
	Load(ctx context.Context, in registry.InputInfo) (*hyperfine.Document, error)
}

// SourceFunc adapts a function to a Source.
type SourceFunc func(ctx context.Context, in registry.InputInfo) (*hyperfine.Document, error)

func (f SourceFunc) Load(ctx context.Context, in registry.InputInfo) (*hyperfine.Document, error) {
	return f(ctx, in)
}

// Dir is a Source that reads <Dir>/<key>.json, the layout written by
// hyperfine --export-json in the benchmark scripts.
type Dir string

func (d Dir) Load(ctx context.Context, in registry.InputInfo) (*hyperfine.Document, error) {
	return hyperfine.ReadFile(filepath.Join(string(d), in.Key+".json"))
}

// StatSize returns a size function that stats input paths relative to
// root.
func StatSize(root string) func(registry.InputInfo) (int64, error) {
	return func(in registry.InputInfo) (int64, error) {
		fi, err := os.Stat(filepath.Join(root, in.Path))
		if err != nil {
			return 0, err
		}
		if !fi.Mode().IsRegular() {
			return 0, fmt.Errorf("%s: not a regular file", in.Path)
		}
		return fi.Size(), nil
	}
}

// A Section is the report of one input.
type Section struct {
	Input registry.Input
	Info  registry.InputInfo

	// Size is the input file size in bytes, or -1 if it could not
	// be determined.
	Size int64

	// Entries and Rows are the ranked results. Both are nil if Err
	// is set.
	Entries []benchrank.Entry
	Rows    []Row

	// Skipped lists malformed result entries that were dropped.
	Skipped []*hyperfine.EntryError

	// Err is the reason the section could not be built.
	Err error

	// Chart is the path of the section's chart image relative to
	// the README, or "" for none. Callers that render charts set it.
	Chart string

	warnings []warning
}

type warning struct {
	format string
	args   []interface{}
}

// A Report is the assembled result of every input.
type Report struct {
	Registry *registry.Registry
	Sections []*Section

	// Summary compares parsers across all successful sections.
	Summary []benchmath.Summary
}

// Failed returns the sections that could not be built.
func (r *Report) Failed() []*Section {
	var out []*Section
	for _, s := range r.Sections {
		if s.Err != nil {
			out = append(out, s)
		}
	}
	return out
}

// A Builder assembles a Report.
type Builder struct {
	Registry *registry.Registry

	// Source loads result documents. It must be safe for concurrent
	// use if Concurrency is not 1.
	Source Source

	// Size returns the size in bytes of an input. If nil, input
	// paths are stat'ed relative to the current directory.
	Size func(registry.InputInfo) (int64, error)

	// Extractor attributes commands to parsers. If nil, the
	// ./bin/<key> convention is used.
	Extractor benchrank.Extractor

	// Warn, if non-nil, receives non-fatal anomalies. Warnings are
	// delivered after every section is built, in input order, so
	// Warn need not be safe for concurrent use.
	Warn func(format string, args ...interface{})

	// Concurrency limits how many inputs are loaded at once. Zero
	// means GOMAXPROCS.
	Concurrency int
}

// Build loads and ranks every input. Per-input failures are recorded
// in the Sections; Build itself returns an error only if ctx is
// canceled.
func (b *Builder) Build(ctx context.Context) (*Report, error) {
	size := b.Size
	if size == nil {
		size = StatSize(".")
	}
	limit := b.Concurrency
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}

	inputs := b.Registry.Inputs.All()
	sections := make([]*Section, len(inputs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, in := range inputs {
		s := &Section{Input: in, Info: b.Registry.Inputs.Info(in)}
		sections[i] = s
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			b.build(gctx, s, size)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	r := &Report{Registry: b.Registry, Sections: sections}
	ranked := make([][]benchrank.Entry, len(sections))
	for i, s := range sections {
		ranked[i] = s.Entries
		if b.Warn != nil {
			for _, w := range s.warnings {
				b.Warn(w.format, w.args...)
			}
		}
		s.warnings = nil
	}
	r.Summary = benchmath.Summarize(b.Registry.Parsers, ranked)
	return r, nil
}

func (b *Builder) build(ctx context.Context, s *Section, size func(registry.InputInfo) (int64, error)) {
	warn := func(format string, args ...interface{}) {
		s.warnings = append(s.warnings, warning{format, args})
	}

	doc, err := b.Source.Load(ctx, s.Info)
	if err != nil {
		s.Err = err
		return
	}
	s.Skipped = doc.Skipped
	for _, e := range doc.Skipped {
		warn("%s\n", e)
	}

	// Without a size the results still rank; only throughput is lost.
	n, err := size(s.Info)
	if err != nil {
		warn("%s: size unknown, omitting throughput: %v\n", s.Info.Key, err)
		n = -1
	}
	s.Size = n

	pl := &benchrank.Pipeline{
		Parsers:   b.Registry.Parsers,
		Extractor: b.Extractor,
		Warn:      warn,
	}
	s.Entries = pl.Run(s.Info.Key, doc.Results, s.Size)
	s.Rows = Rows(b.Registry.Parsers, s.Entries)
}
