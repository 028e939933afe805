// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mdtab lays out GitHub-flavored markdown tables with padded,
// aligned columns.
//
// Many of Table's methods return the Table so callers can easily
// chain them to build up many cells at once.
package mdtab

import (
	"io"
	"strings"
	"unicode/utf8"
)

// Align is the alignment of a column.
type Align int

const (
	Left Align = iota
	Center
	Right
)

func (a Align) pad(s string, w int) string {
	n := w - utf8.RuneCountInString(s)
	if n <= 0 {
		return s
	}
	switch a {
	default:
		return s + strings.Repeat(" ", n)
	case Center:
		l := n / 2
		return strings.Repeat(" ", l) + s + strings.Repeat(" ", n-l)
	case Right:
		return strings.Repeat(" ", n) + s
	}
}

// rule returns the delimiter row cell for a column of width w.
func (a Align) rule(w int) string {
	switch a {
	default:
		return strings.Repeat("-", w)
	case Center:
		return ":" + strings.Repeat("-", w-2) + ":"
	case Right:
		return strings.Repeat("-", w-1) + ":"
	}
}

// Table is a markdown table. The first row is the header.
type Table struct {
	rows  [][]string
	align []Align
	cols  int
}

// Row starts a new row in table t. The first row is the header row.
func (t *Table) Row() *Table {
	t.rows = append(t.rows, nil)
	return t
}

// Cell adds a cell to the current row. Pipe characters in value are
// escaped and newlines are replaced with spaces.
func (t *Table) Cell(value string) *Table {
	if len(t.rows) == 0 {
		t.Row()
	}
	value = strings.ReplaceAll(value, "|", `\|`)
	value = strings.ReplaceAll(value, "\n", " ")
	r := &t.rows[len(t.rows)-1]
	*r = append(*r, value)
	if len(*r) > t.cols {
		t.cols = len(*r)
	}
	return t
}

// Cells adds a cell for each value to the current row.
func (t *Table) Cells(values ...string) *Table {
	for _, v := range values {
		t.Cell(v)
	}
	return t
}

// SetAlign sets the alignment of column col. Columns are numbered
// starting at 0 and default to Left.
func (t *Table) SetAlign(col int, a Align) *Table {
	for len(t.align) < col+1 {
		t.align = append(t.align, Left)
	}
	t.align[col] = a
	return t
}

func (t *Table) colAlign(col int) Align {
	if col < len(t.align) {
		return t.align[col]
	}
	return Left
}

// Format lays out table t and writes it to w. Short rows are padded
// with empty cells. An empty table writes nothing.
func (t *Table) Format(w io.Writer) error {
	if len(t.rows) == 0 {
		return nil
	}

	// Delimiter cells need at least three characters.
	ws := make([]int, t.cols)
	for col := range ws {
		ws[col] = 3
	}
	for _, row := range t.rows {
		for col, s := range row {
			if n := utf8.RuneCountInString(s); n > ws[col] {
				ws[col] = n
			}
		}
	}

	line := func(cell func(col int) string) error {
		var b strings.Builder
		b.WriteString("|")
		for col := range ws {
			b.WriteString(" ")
			b.WriteString(cell(col))
			b.WriteString(" |")
		}
		b.WriteString("\n")
		_, err := io.WriteString(w, b.String())
		return err
	}
	row := func(r []string) error {
		return line(func(col int) string {
			var s string
			if col < len(r) {
				s = r[col]
			}
			return t.colAlign(col).pad(s, ws[col])
		})
	}

	if err := row(t.rows[0]); err != nil {
		return err
	}
	if err := line(func(col int) string { return t.colAlign(col).rule(ws[col]) }); err != nil {
		return err
	}
	for _, r := range t.rows[1:] {
		if err := row(r); err != nil {
			return err
		}
	}
	return nil
}
