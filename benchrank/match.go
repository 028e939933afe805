// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchrank

import (
	"github.com/arshad-yaseen/parserbench/hyperfine"
	"github.com/arshad-yaseen/parserbench/registry"
)

// Matches is the join of a result set against a parser set.
type Matches struct {
	// Results holds at most one result per parser. Parsers without
	// a result are absent from the map.
	Results map[registry.Parser]*hyperfine.Result

	// Unresolved lists, in input order, the commands that did not
	// map to a registered parser.
	Unresolved []string

	// Replaced lists, in input order, the parsers whose result was
	// overwritten by a later result for the same parser.
	Replaced []registry.Parser
}

// Match resolves each result to a parser using ex and keeps the last
// result seen for each parser. Results whose command resolves to
// registry.Unknown, or to a parser outside parsers, are recorded in
// Unresolved and otherwise ignored.
//
// The returned Results point into results.
func Match(parsers *registry.Parsers, ex Extractor, results []hyperfine.Result) *Matches {
	m := &Matches{Results: make(map[registry.Parser]*hyperfine.Result)}
	for i := range results {
		res := &results[i]
		p := ex.Extract(res.Command)
		if !parsers.Valid(p) {
			m.Unresolved = append(m.Unresolved, res.Command)
			continue
		}
		if _, ok := m.Results[p]; ok {
			m.Replaced = append(m.Replaced, p)
		}
		m.Results[p] = res
	}
	return m
}

// Missing returns, in declaration order, the parsers with no result.
func (m *Matches) Missing(parsers *registry.Parsers) []registry.Parser {
	var missing []registry.Parser
	for _, p := range parsers.All() {
		if _, ok := m.Results[p]; !ok {
			missing = append(missing, p)
		}
	}
	return missing
}
