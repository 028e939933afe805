// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Benchsave archives hyperfine results in a SQL database.
//
// Usage:
//
//	benchsave [-v] [-driver name] -dsn source [file...]
//
// Each file should contain the JSON exported by hyperfine
// --export-json for one benchmark input. A file may be given as
// input=path to archive it under a different input name; by default
// the input name is the base name of the file without ".json". With
// no files, benchsave archives result/<input>.json for every input
// that has one.
//
// All files are archived in a single upload, whose ID is printed on
// standard output. If any file cannot be read, nothing is archived.
// Pass the ID to benchreadme -upload to render the archived results.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	_ "github.com/go-sql-driver/mysql"

	"github.com/arshad-yaseen/parserbench/hyperfine"
	"github.com/arshad-yaseen/parserbench/registry"
	"github.com/arshad-yaseen/parserbench/storage/db"
	_ "github.com/arshad-yaseen/parserbench/storage/db/sqlite3"
)

var exit = os.Exit // replaced during testing

func main() {
	log.SetPrefix("benchsave: ")
	log.SetFlags(0)
	if err := benchsave(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		if err != flag.ErrHelp {
			log.Print(err)
		}
		exit(exitStatus(err))
	}
}

// A usageError reports an invalid command line.
type usageError string

func (e usageError) Error() string { return string(e) }

// exitStatus is 2 for command-line mistakes and 1 for other failures.
func exitStatus(err error) int {
	var ue usageError
	if err == flag.ErrHelp || errors.As(err, &ue) {
		return 2
	}
	return 1
}

func benchsave(stdout, stderr io.Writer, args []string) error {
	fs := flag.NewFlagSet("benchsave", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "usage: benchsave [flags] [file...]\n")
		fs.PrintDefaults()
	}
	driver := fs.String("driver", "sqlite3", "database `driver`: sqlite3 or mysql")
	dsn := fs.String("dsn", "", "archive at data source `name`")
	dir := fs.String("dir", ".", "benchmark repository `root`")
	results := fs.String("results", "result", "with no files, archive results from `dir` under -dir")
	verbose := fs.Bool("v", false, "print verbose log messages")
	if err := fs.Parse(args); err != nil {
		// The flag package has already printed the error and usage.
		return flag.ErrHelp
	}
	if *dsn == "" {
		fs.Usage()
		return usageError("missing -dsn")
	}
	logf := func(format string, args ...interface{}) {
		if *verbose {
			fmt.Fprintf(stderr, "benchsave: "+format, args...)
		}
	}

	files := &hyperfine.Files{Paths: fs.Args(), AllowLabels: true}
	if fs.NArg() == 0 {
		reg := registry.Default()
		for _, in := range reg.Inputs.All() {
			key := reg.Inputs.Info(in).Key
			path := filepath.Join(*dir, *results, key+".json")
			if _, err := os.Stat(path); err != nil {
				logf("skipping %s: %v\n", key, err)
				continue
			}
			files.Paths = append(files.Paths, key+"="+path)
		}
		if len(files.Paths) == 0 {
			return fmt.Errorf("no result files in %s", filepath.Join(*dir, *results))
		}
	}

	d, err := db.OpenSQL(*driver, *dsn)
	if err != nil {
		return err
	}
	defer d.Close()

	start := time.Now()
	u, err := d.NewUpload(context.Background())
	if err != nil {
		return err
	}
	n := 0
	for files.Scan() {
		if err := files.Err(); err != nil {
			u.Abort()
			return err
		}
		doc := files.Document()
		for _, e := range doc.Skipped {
			logf("%v\n", e)
		}
		if err := u.InsertResults(files.Label(), doc.Results); err != nil {
			u.Abort()
			return fmt.Errorf("%s: %w", files.Path(), err)
		}
		n++
	}
	if err := u.Commit(); err != nil {
		return err
	}

	s := ""
	if n != 1 {
		s = "s"
	}
	logf("%d file%s archived in %.2f seconds.\n", n, s, time.Since(start).Seconds())
	fmt.Fprintf(stdout, "%s\n", u.ID)
	return nil
}
