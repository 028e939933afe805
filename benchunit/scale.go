// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchunit formats benchmark measurements for display.
//
// Values are stored in base units (seconds, bytes, bytes per second)
// and scaled only when formatted.
package benchunit

import (
	"math"
	"strconv"
)

// Conversion factors between base and display units.
const (
	MillisecondsPerSecond = 1000
	BytesPerMB            = 1024 * 1024
)

// NA is displayed in place of an undefined value.
const NA = "n/a"

// A Scaler converts a value in base units to a display string with a
// fixed number of digits after the decimal point.
type Scaler struct {
	Prec   int     // Digits after the decimal point
	Factor float64 // Display units per base unit (e.g., 1000 ms per second)
	Unit   string  // Suffix appended to the number, including any space
}

// Common scalers.
var (
	// Millis formats seconds as "12.34 ms".
	Millis = Scaler{2, MillisecondsPerSecond, " ms"}

	// Megabytes formats bytes as "1.50 MB".
	Megabytes = Scaler{2, 1.0 / BytesPerMB, " MB"}

	// MBPerSec formats bytes per second as "123.45 MB/s".
	MBPerSec = Scaler{2, 1.0 / BytesPerMB, " MB/s"}

	// Ratio formats a dimensionless ratio as "1.25x".
	Ratio = Scaler{2, 1, "x"}
)

// Scale returns val converted to display units.
func (s Scaler) Scale(val float64) float64 {
	return val * s.Factor
}

// Format formats val. Values that are NaN or infinite format as NA.
func (s Scaler) Format(val float64) string {
	v := s.Scale(val)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return NA
	}
	buf := make([]byte, 0, 20)
	buf = strconv.AppendFloat(buf, v, 'f', s.Prec, 64)
	buf = append(buf, s.Unit...)
	return string(buf)
}

// FormatOK formats val if ok is true and returns NA otherwise.
func (s Scaler) FormatOK(val float64, ok bool) string {
	if !ok {
		return NA
	}
	return s.Format(val)
}
