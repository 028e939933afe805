// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/arshad-yaseen/parserbench/hyperfine"
	"github.com/arshad-yaseen/parserbench/storage/db"
)

const threeJSON = `{"results": [
	{"command": "./bin/oxc files/three.js", "mean": 0.006, "stddev": 0.0002, "median": 0.006, "min": 0.0058, "max": 0.0064, "times": [0.0058, 0.0064]},
	{"command": "./bin/yuku files/three.js", "mean": 0.005, "stddev": 0.0002, "median": 0.005, "min": 0.0047, "max": 0.0055},
	{"command": "./bin/jam files/three.js"}
]}`

func setup(t *testing.T) (root, dsn string) {
	t.Helper()
	root = t.TempDir()
	if err := os.Mkdir(filepath.Join(root, "result"), 0o777); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, "result", "three.json"), []byte(threeJSON), 0o666); err != nil {
		t.Fatal(err)
	}
	return root, filepath.Join(t.TempDir(), "archive.db")
}

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	err := benchsave(&out, &errOut, args)
	return out.String(), errOut.String(), err
}

func open(t *testing.T, dsn string) *db.DB {
	t.Helper()
	d, err := db.OpenSQL("sqlite3", dsn)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { d.Close() })
	return d
}

func TestSaveDefault(t *testing.T) {
	root, dsn := setup(t)
	stdout, stderr, err := run(t, "-dsn", dsn, "-dir", root, "-v")
	if err != nil {
		t.Fatalf("benchsave: %v\n%s", err, stderr)
	}
	id := strings.TrimSpace(stdout)
	for _, want := range []string{
		"benchsave: skipping typescript: ",
		"benchsave: skipping antd: ",
		"three.json: results[2]: missing \"mean\"\n",
		"benchsave: 1 file archived in ",
	} {
		if !strings.Contains(stderr, want) {
			t.Errorf("stderr missing %q:\n%s", want, stderr)
		}
	}

	d := open(t, dsn)
	latest, err := d.LatestUpload(context.Background())
	if err != nil || latest != id {
		t.Fatalf("LatestUpload = %q, %v; want %q", latest, err, id)
	}
	got, err := d.Results(context.Background(), id, "three")
	if err != nil {
		t.Fatal(err)
	}
	doc, err := hyperfine.ReadFile(filepath.Join(root, "result", "three.json"))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(doc.Results, got); diff != "" {
		t.Errorf("archived results (-file +archive):\n%s", diff)
	}
}

func TestSaveLabeled(t *testing.T) {
	root, dsn := setup(t)
	stdout, _, err := run(t, "-dsn", dsn, "antd="+filepath.Join(root, "result", "three.json"))
	if err != nil {
		t.Fatal(err)
	}
	got, err := open(t, dsn).Results(context.Background(), strings.TrimSpace(stdout), "antd")
	if err != nil || len(got) != 2 {
		t.Errorf("Results(antd) = %d results, %v; want 2", len(got), err)
	}
}

func TestSaveAtomic(t *testing.T) {
	root, dsn := setup(t)
	_, _, err := run(t, "-dsn", dsn, filepath.Join(root, "result", "three.json"), filepath.Join(root, "result", "missing.json"))
	if err == nil {
		t.Fatal("want error for missing file")
	}
	if n, err := open(t, dsn).CountUploads(); err != nil || n != 0 {
		t.Errorf("CountUploads = %d, %v; want 0", n, err)
	}
}

func TestSaveUsage(t *testing.T) {
	_, stderr, err := run(t)
	if err == nil || err.Error() != "missing -dsn" {
		t.Errorf("got %v, want missing -dsn", err)
	} else if exitStatus(err) != 2 || !strings.Contains(stderr, "usage: benchsave") {
		t.Errorf("missing -dsn: exit status %d, stderr:\n%s", exitStatus(err), stderr)
	}
	_, dsn := setup(t)
	if _, _, err := run(t, "-dsn", dsn, "-dir", t.TempDir()); err == nil {
		t.Error("want error for empty results directory")
	}
}
