// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchunit

import (
	"math"
	"testing"
)

func TestFormat(t *testing.T) {
	for _, test := range []struct {
		s    Scaler
		val  float64
		want string
	}{
		{Millis, 0.0123, "12.30 ms"},
		{Millis, 0.001, "1.00 ms"},
		{Millis, 1.23456, "1234.56 ms"},
		{Millis, 0, "0.00 ms"},
		{Megabytes, 1 << 20, "1.00 MB"},
		{Megabytes, 3 << 19, "1.50 MB"},
		{Megabytes, 10_000_000, "9.54 MB"},
		{MBPerSec, 100 << 20, "100.00 MB/s"},
		{Ratio, 1.25, "1.25x"},
		{Millis, math.NaN(), NA},
		{MBPerSec, math.Inf(1), NA},
	} {
		if got := test.s.Format(test.val); got != test.want {
			t.Errorf("%+v.Format(%v) = %q, want %q", test.s, test.val, got, test.want)
		}
	}
}

func TestFormatOK(t *testing.T) {
	if got := MBPerSec.FormatOK(1<<20, true); got != "1.00 MB/s" {
		t.Errorf("got %q", got)
	}
	if got := MBPerSec.FormatOK(1<<20, false); got != NA {
		t.Errorf("got %q, want %q", got, NA)
	}
}

func TestScale(t *testing.T) {
	if got := Millis.Scale(0.5); got != 500 {
		t.Errorf("Millis.Scale(0.5) = %v", got)
	}
	if got := MBPerSec.Scale(5 << 20); got != 5 {
		t.Errorf("MBPerSec.Scale = %v", got)
	}
}
