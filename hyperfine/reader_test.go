// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hyperfine

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRead(t *testing.T) {
	const data = `{
  "results": [
    {
      "command": "./bin/oxc files/three.js",
      "mean": 0.0123, "stddev": 0.0004, "median": 0.0121,
      "user": 0.01, "system": 0.002,
      "min": 0.0117, "max": 0.0139,
      "times": [0.0117, 0.0139, 0.0121],
      "exit_codes": [0, 0, 0]
    },
    {"command": "./bin/swc files/three.js", "mean": 0.02, "stddev": 0, "median": 0.02, "min": 0.02, "max": 0.02}
  ]
}`
	doc, err := Read(strings.NewReader(data), "three.json")
	if err != nil {
		t.Fatal(err)
	}
	want := []Result{
		{"./bin/oxc files/three.js", 0.0123, 0.0004, 0.0121, 0.0117, 0.0139, []float64{0.0117, 0.0139, 0.0121}},
		{"./bin/swc files/three.js", 0.02, 0, 0.02, 0.02, 0.02, nil},
	}
	if diff := cmp.Diff(want, doc.Results); diff != "" {
		t.Errorf("results (-want +got):\n%s", diff)
	}
	if len(doc.Skipped) != 0 {
		t.Errorf("unexpected skipped entries: %v", doc.Skipped)
	}
	if got := doc.Results[0].Runs(); got != 3 {
		t.Errorf("Runs() = %d, want 3", got)
	}
}

func TestReadDropsBadEntries(t *testing.T) {
	const data = `{"results": [
		{"command": "./bin/a", "mean": 1, "stddev": 0, "median": 1, "min": 1, "max": 1},
		{"mean": 1, "stddev": 0, "median": 1, "min": 1, "max": 1},
		{"command": "./bin/b", "mean": "fast", "stddev": 0, "median": 1, "min": 1, "max": 1},
		{"command": "./bin/c", "stddev": 0, "median": 1, "min": 1, "max": 1},
		{"command": "./bin/d", "mean": -1, "stddev": 0, "median": 1, "min": 1, "max": 1},
		"garbage",
		null,
		{"command": "./bin/e", "mean": 0, "stddev": 0, "median": 0, "min": 0, "max": 0}
	]}`
	doc, err := Read(strings.NewReader(data), "x.json")
	if err != nil {
		t.Fatal(err)
	}
	var cmds []string
	for _, r := range doc.Results {
		cmds = append(cmds, r.Command)
	}
	if diff := cmp.Diff([]string{"./bin/a", "./bin/e"}, cmds); diff != "" {
		t.Errorf("kept commands (-want +got):\n%s", diff)
	}
	var idx []int
	for _, e := range doc.Skipped {
		idx = append(idx, e.Index)
		if e.FileName != "x.json" {
			t.Errorf("skipped entry file = %q", e.FileName)
		}
	}
	if diff := cmp.Diff([]int{1, 2, 3, 4, 5, 6}, idx); diff != "" {
		t.Errorf("skipped indexes (-want +got):\n%s", diff)
	}
	if got := doc.Skipped[3].Error(); got != "x.json: results[4]: negative mean -1" {
		t.Errorf("EntryError = %q", got)
	}
}

func TestReadSyntaxError(t *testing.T) {
	for _, data := range []string{
		``,
		`{"results": [`,
		`[]`,
		`{}`,
		`{"results": null}`,
		`{"results": {"command": "./bin/a"}}`,
		`{"results": []} trailing garbage`,
		`{"results": []}{"results": []}`,
	} {
		_, err := Read(strings.NewReader(data), "bad.json")
		var se *SyntaxError
		if !errors.As(err, &se) {
			t.Errorf("Read(%q): got %v, want *SyntaxError", data, err)
			continue
		}
		if se.FileName != "bad.json" {
			t.Errorf("Read(%q): FileName = %q", data, se.FileName)
		}
	}
}

func TestReadEmpty(t *testing.T) {
	doc, err := Read(strings.NewReader("{\"results\": []}\n\n"), "")
	if err != nil {
		t.Fatal(err)
	}
	if len(doc.Results) != 0 || doc.FileName != "<unknown>" {
		t.Errorf("got %+v", doc)
	}
}

func TestFiles(t *testing.T) {
	dir := t.TempDir()
	write := func(name, data string) string {
		t.Helper()
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(data), 0666); err != nil {
			t.Fatal(err)
		}
		return path
	}
	good := write("three.json", `{"results": []}`)
	bad := write("antd.json", `not json`)
	missing := filepath.Join(dir, "typescript.json")

	f := &Files{Paths: []string{good, bad, missing, "ts=" + good}, AllowLabels: true}
	type got struct {
		label string
		ok    bool
	}
	var gots []got
	for f.Scan() {
		if (f.Document() == nil) == (f.Err() == nil) {
			t.Fatalf("%s: exactly one of Document and Err must be set", f.Path())
		}
		gots = append(gots, got{f.Label(), f.Err() == nil})
	}
	want := []got{{"three", true}, {"antd", false}, {"typescript", false}, {"ts", true}}
	if diff := cmp.Diff(want, gots, cmp.AllowUnexported(got{})); diff != "" {
		t.Errorf("files (-want +got):\n%s", diff)
	}
	if f.Scan() {
		t.Error("Scan returned true after the last file")
	}
}

func TestReadIgnoresBadTimes(t *testing.T) {
	const data = `{"results": [
		{"command": "./bin/a", "mean": 1, "stddev": 0, "median": 1, "min": 1, "max": 1, "times": "x"},
		{"command": "./bin/b", "mean": 2, "stddev": 0, "median": 2, "min": 2, "max": 2, "times": [2, "y"]},
		{"command": "./bin/c", "mean": 3, "stddev": 0, "median": 3, "min": 3, "max": 3, "times": null}
	]}`
	doc, err := Read(strings.NewReader(data), "x.json")
	if err != nil {
		t.Fatal(err)
	}
	if len(doc.Skipped) != 0 {
		t.Errorf("skipped %v, want none", doc.Skipped)
	}
	var got []string
	for _, r := range doc.Results {
		got = append(got, fmt.Sprintf("%s:%v:%d", r.Command, r.Mean, r.Runs()))
	}
	want := []string{"./bin/a:1:0", "./bin/b:2:0", "./bin/c:3:0"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("results (-want +got):\n%s", diff)
	}
}
