// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchrank

import (
	"sort"

	"github.com/arshad-yaseen/parserbench/hyperfine"
	"github.com/arshad-yaseen/parserbench/registry"
)

// An Entry is one ranked row: a parser and its result, if it has one.
type Entry struct {
	Parser registry.Parser

	// Result is nil if the parser produced no result, which means
	// it failed on this input.
	Result *hyperfine.Result

	// Metrics is the zero value if Result is nil.
	Metrics Metrics
}

// Present reports whether e has a result.
func (e *Entry) Present() bool {
	return e.Result != nil
}

// Less reports whether e ranks before o: present entries before
// absent ones, lower mean time first, and otherwise the parser
// declared first. It is a strict total order over entries of distinct
// parsers.
func (e *Entry) Less(o *Entry) bool {
	if e.Present() != o.Present() {
		return e.Present()
	}
	if e.Present() && e.Result.Mean != o.Result.Mean {
		return e.Result.Mean < o.Result.Mean
	}
	return e.Parser < o.Parser
}

// Rank returns one entry for every parser in parsers, sorted by
// Entry.Less. size is the input size in bytes used to derive
// throughput.
func Rank(parsers *registry.Parsers, m *Matches, size int64) []Entry {
	entries := make([]Entry, 0, parsers.Len())
	for _, p := range parsers.All() {
		e := Entry{Parser: p}
		if res, ok := m.Results[p]; ok {
			e.Result = res
			e.Metrics = Derive(res, size)
		}
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Less(&entries[j])
	})
	return entries
}
