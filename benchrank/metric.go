// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchrank

import (
	"math"

	"github.com/arshad-yaseen/parserbench/hyperfine"
)

// Metrics are the values derived from one result.
type Metrics struct {
	// Throughput is the input size divided by the mean time, in
	// bytes per second. It is meaningful only if HasThroughput.
	Throughput    float64
	HasThroughput bool
}

// Throughput returns size/seconds. It reports false instead of
// returning an infinite, NaN, or negative rate, which happens when
// seconds is not positive or size is negative.
func Throughput(size int64, seconds float64) (float64, bool) {
	if !(seconds > 0) || size < 0 {
		return 0, false
	}
	v := float64(size) / seconds
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, false
	}
	return v, true
}

// Derive computes the metrics of res for an input of size bytes.
// Standard deviation, median, and the extremes are not derived; use
// them from res directly.
func Derive(res *hyperfine.Result, size int64) Metrics {
	v, ok := Throughput(size, res.Mean)
	return Metrics{Throughput: v, HasThroughput: ok}
}
