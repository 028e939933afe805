// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hyperfine

import (
	"path/filepath"
	"strings"
)

// A Files reads result documents from a sequence of files.
//
// Each file is given a label. By default the label is the file's base
// name without its ".json" extension, so "result/three.json" is
// labeled "three". If AllowLabels is true, entries in Paths may be of
// the form label=path.
//
// Unlike a single Read, a failure in one file does not stop the
// sequence: Scan still advances to the next file and Err reports the
// failure of the current one.
type Files struct {
	// Paths is the list of file names to read in.
	Paths []string

	// AllowLabels indicates that entries in Paths may carry a
	// custom label.
	AllowLabels bool

	// inputs is the sequence of remaining inputs, or nil if this
	// Files has not started yet.
	inputs []fileInput

	cur fileInput
	doc *Document
	err error
}

type fileInput struct {
	path, label string
}

func (f *Files) init() {
	f.inputs = []fileInput{}
	for _, path := range f.Paths {
		label := strings.TrimSuffix(filepath.Base(path), ".json")
		if i := strings.Index(path, "="); f.AllowLabels && i >= 0 {
			label, path = path[:i], path[i+1:]
		}
		f.inputs = append(f.inputs, fileInput{path, label})
	}
}

// Scan reads the next file and reports whether there was one. After
// Scan returns true, exactly one of Document and Err is non-nil.
func (f *Files) Scan() bool {
	if f.inputs == nil {
		f.init()
	}
	if len(f.inputs) == 0 {
		f.doc, f.err = nil, nil
		return false
	}
	f.cur, f.inputs = f.inputs[0], f.inputs[1:]
	f.doc, f.err = ReadFile(f.cur.path)
	return true
}

// Label returns the label of the file just read by Scan.
func (f *Files) Label() string { return f.cur.label }

// Path returns the path of the file just read by Scan.
func (f *Files) Path() string { return f.cur.path }

// Document returns the document just read by Scan, or nil if reading
// it failed.
func (f *Files) Document() *Document { return f.doc }

// Err returns the error that prevented the current file from being
// read, if any.
func (f *Files) Err() error { return f.err }
