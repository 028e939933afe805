// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchrank

import (
	"github.com/arshad-yaseen/parserbench/hyperfine"
	"github.com/arshad-yaseen/parserbench/registry"
)

// A Pipeline ranks result sets against a fixed parser set. A Pipeline
// is safe for concurrent use if its Extractor and Warn are.
type Pipeline struct {
	Parsers *registry.Parsers

	// Extractor attributes commands to parsers. If nil, the
	// ./bin/<key> convention of BinExtractor is used.
	Extractor Extractor

	// Warn, if non-nil, is called for each anomaly that does not
	// stop ranking: unresolved commands, replaced duplicates, and
	// parsers without a result.
	Warn func(format string, args ...interface{})
}

// Run ranks results for an input of size bytes. label names the input
// in warnings.
func (pl *Pipeline) Run(label string, results []hyperfine.Result, size int64) []Entry {
	ex := pl.Extractor
	if ex == nil {
		ex = BinExtractor(pl.Parsers)
	}
	m := Match(pl.Parsers, ex, results)
	if pl.Warn != nil {
		for _, cmd := range m.Unresolved {
			pl.Warn("%s: ignoring result for unknown command %q\n", label, cmd)
		}
		for _, p := range m.Replaced {
			pl.Warn("%s: duplicate result for %s, keeping the last one\n", label, pl.Parsers.Info(p).Key)
		}
		for _, p := range m.Missing(pl.Parsers) {
			pl.Warn("%s: no result for %s\n", label, pl.Parsers.Info(p).Key)
		}
	}
	return Rank(pl.Parsers, m, size)
}
