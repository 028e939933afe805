// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package hyperfine reads the JSON result documents written by
// "hyperfine --export-json".
//
// A document has the shape
//
//	{"results": [{"command": "./bin/oxc files/three.js", "mean": 0.0123,
//	  "stddev": 0.0004, "median": 0.0121, "min": 0.0117, "max": 0.0139,
//	  "times": [...]}, ...]}
//
// All timing fields are in seconds. The reader is tolerant of
// individual bad entries: an entry with a missing, mistyped, or
// negative statistic is dropped and recorded as an *EntryError, while
// the rest of the document is still returned. Only a document that is
// not a JSON object with a "results" array is an error.
package hyperfine

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// A Result is one measured command.
type Result struct {
	Command string

	// Mean, Stddev, Median, Min, and Max summarize the measured
	// wall-clock times, in seconds. They are never negative.
	Mean, Stddev, Median, Min, Max float64

	// Times holds the individual samples, in seconds, if the
	// document included them.
	Times []float64
}

// Runs returns the number of timed runs behind r, or 0 if unknown.
func (r *Result) Runs() int {
	return len(r.Times)
}

// A Document is the decoded content of one result file.
type Document struct {
	FileName string
	Results  []Result

	// Skipped lists the entries that were dropped, in document order.
	Skipped []*EntryError
}

// A SyntaxError reports a document that could not be decoded at all.
type SyntaxError struct {
	FileName string
	Msg      string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s: %s", e.FileName, e.Msg)
}

// An EntryError describes a results entry that was dropped.
type EntryError struct {
	FileName string
	Index    int // index of the entry in the results array
	Msg      string
}

func (e *EntryError) Error() string {
	return fmt.Sprintf("%s: results[%d]: %s", e.FileName, e.Index, e.Msg)
}

// wireResult mirrors one results entry. Pointer fields distinguish a
// missing statistic from a zero one.
type wireResult struct {
	Command *string         `json:"command"`
	Mean    *float64        `json:"mean"`
	Stddev  *float64        `json:"stddev"`
	Median  *float64        `json:"median"`
	Min     *float64        `json:"min"`
	Max     *float64        `json:"max"`
	Times   json.RawMessage `json:"times"`
}

type wireDocument struct {
	Results *[]json.RawMessage `json:"results"`
}

// Read decodes a result document from r. fileName is used in errors;
// it is purely diagnostic.
func Read(r io.Reader, fileName string) (*Document, error) {
	if fileName == "" {
		fileName = "<unknown>"
	}
	var wd wireDocument
	dec := json.NewDecoder(r)
	if err := dec.Decode(&wd); err != nil {
		return nil, &SyntaxError{fileName, err.Error()}
	}
	var extra json.RawMessage
	if err := dec.Decode(&extra); err != io.EOF {
		return nil, &SyntaxError{fileName, "unexpected data after the document"}
	}
	if wd.Results == nil {
		return nil, &SyntaxError{fileName, `missing "results" array`}
	}

	doc := &Document{FileName: fileName}
	for i, raw := range *wd.Results {
		res, msg := decodeResult(raw)
		if msg != "" {
			doc.Skipped = append(doc.Skipped, &EntryError{fileName, i, msg})
			continue
		}
		doc.Results = append(doc.Results, res)
	}
	return doc, nil
}

// ReadFile opens, decodes, and closes the named result file.
func ReadFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f, path)
}

// decodeResult converts one raw entry. On failure it returns a
// non-empty reason.
func decodeResult(raw json.RawMessage) (Result, string) {
	var w wireResult
	if err := json.Unmarshal(raw, &w); err != nil {
		return Result{}, err.Error()
	}
	if w.Command == nil {
		return Result{}, `missing "command"`
	}
	res := Result{Command: *w.Command}
	// The samples are optional; a malformed list is ignored.
	var times []float64
	if len(w.Times) > 0 && json.Unmarshal(w.Times, &times) == nil {
		res.Times = times
	}
	for _, f := range []struct {
		name string
		src  *float64
		dst  *float64
	}{
		{"mean", w.Mean, &res.Mean},
		{"stddev", w.Stddev, &res.Stddev},
		{"median", w.Median, &res.Median},
		{"min", w.Min, &res.Min},
		{"max", w.Max, &res.Max},
	} {
		if f.src == nil {
			return Result{}, fmt.Sprintf("missing %q", f.name)
		}
		if *f.src < 0 {
			return Result{}, fmt.Sprintf("negative %s %v", f.name, *f.src)
		}
		*f.dst = *f.src
	}
	return res, ""
}
