// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdtab

import (
	"strings"
	"testing"
)

func TestAlign(t *testing.T) {
	check := func(s string, a Align, w int, want string) {
		t.Helper()
		got := a.pad(s, w)
		if got != want {
			t.Errorf("want %q, got %q", want, got)
		}
	}

	check("abc", Left, 6, "abc   ")
	check("abc", Center, 6, " abc  ")
	check("abc", Right, 6, "   abc")
	check("☃", Right, 4, "   ☃")
	check("toolong", Right, 3, "toolong")
}

func TestTable(t *testing.T) {
	var tab Table
	check := func(want string) {
		t.Helper()
		var gotBuf strings.Builder
		if err := tab.Format(&gotBuf); err != nil {
			t.Fatal(err)
		}
		got := gotBuf.String()
		if want != got {
			t.Errorf("want:\n%sgot:\n%s", want, got)
		}
		// Reset tab.
		tab = Table{}
	}

	// Empty table.
	check("")

	// Basic test, with minimum delimiter width.
	tab.Row().Cell("a").Cell("b")
	tab.Row().Cell("c").Cell("d")
	check("| a   | b   |\n| --- | --- |\n| c   | d   |\n")

	// Padding to the widest cell.
	tab.Row().Cells("Parser", "Mean")
	tab.Row().Cells("Oxc", "12.30 ms")
	check("| Parser | Mean     |\n| ------ | -------- |\n| Oxc    | 12.30 ms |\n")

	// Alignment.
	tab.Row().Cells("a", "b", "c")
	tab.Row().Cells("xxxx", "xxxx", "xxxx")
	tab.SetAlign(1, Center).SetAlign(2, Right)
	check("| a    |  b   |    c |\n| ---- | :--: | ---: |\n| xxxx | xxxx | xxxx |\n")

	// Short rows and escaping.
	tab.Row().Cells("h1", "h2")
	tab.Row().Cell("a|b")
	tab.Row().Cell("x\ny")
	check("| h1   | h2  |\n| ---- | --- |\n| a\\|b |     |\n| x y  |     |\n")

	// Header only.
	tab.Row().Cells("only")
	check("| only |\n| ---- |\n")
}
