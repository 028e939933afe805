// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package benchrank turns the raw results of one benchmark input into a
ranked list of parser entries.

The pipeline has four stages:

 1. An Extractor maps each result's command line to a registered
    parser, or to registry.Unknown.
 2. Match joins results to parsers. Unknown commands are dropped. If
    two results resolve to the same parser, the later one wins.
 3. Derive computes the throughput of a result from the input size.
 4. Rank orders every registered parser exactly once: parsers with a
    result first, by ascending mean time, then parsers without a
    result. Ties are broken by declaration order.

Pipeline.Run applies all four stages to one input.

Every stage is a pure function of its arguments. Separate inputs may
be ranked concurrently.
*/
package benchrank
