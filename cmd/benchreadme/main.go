// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Benchreadme generates the README of the parser benchmark from
// hyperfine results.
//
// Usage:
//
//	benchreadme [flags]
//
// Benchreadme reads result/<input>.json for every benchmark input,
// ranks the parsers on each input by mean time, and writes README.md
// with one table per input and a summary across inputs. Relative
// paths given to -results, -o, -charts, -csv, and -html are resolved
// against -dir.
//
// With -dsn, results are read from an upload archived by benchsave
// instead. -upload selects the upload; the default is the latest.
//
// Inputs whose results cannot be read are reported in the README and
// on standard error, and benchreadme exits with status 1 after
// writing everything else.
package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	_ "github.com/go-sql-driver/mysql"

	"github.com/arshad-yaseen/parserbench/benchchart"
	"github.com/arshad-yaseen/parserbench/benchreport"
	"github.com/arshad-yaseen/parserbench/hyperfine"
	"github.com/arshad-yaseen/parserbench/registry"
	"github.com/arshad-yaseen/parserbench/storage/db"
	_ "github.com/arshad-yaseen/parserbench/storage/db/sqlite3"
)

var exit = os.Exit // replaced during testing

func main() {
	log.SetPrefix("benchreadme: ")
	log.SetFlags(0)
	if err := benchreadme(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
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

type options struct {
	dir, results, out string
	charts            string
	chart             benchchart.Options
	csv, html         string
	verbose           bool
	jobs              int
	driver, dsn       string
	upload            string

	logf func(format string, args ...interface{})
}

func parseFlags(stderr io.Writer, args []string) (*options, error) {
	var o options
	fs := flag.NewFlagSet("benchreadme", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "usage: benchreadme [flags]\n")
		fs.PrintDefaults()
	}
	fs.StringVar(&o.dir, "dir", ".", "benchmark repository `root`")
	fs.StringVar(&o.results, "results", "result", "read hyperfine results from `dir`")
	fs.StringVar(&o.out, "o", "README.md", "write the README to `file` (- for standard output)")
	fs.StringVar(&o.charts, "charts", "", "write one chart per input to `dir` and link them from the README")
	format := fs.String("chart-format", "png", "chart image `format`: png or svg")
	metric := fs.String("chart-metric", "time", "chart `metric`: time or throughput")
	fs.StringVar(&o.csv, "csv", "", "also write the results as CSV to `file`")
	fs.StringVar(&o.html, "html", "", "also write the results as HTML to `file`")
	fs.BoolVar(&o.verbose, "v", false, "report unmatched commands, duplicate and dropped results, and missing parsers")
	fs.IntVar(&o.jobs, "j", 0, "load up to `n` inputs concurrently (0 means GOMAXPROCS)")
	fs.StringVar(&o.driver, "driver", "sqlite3", "archive database `driver`: sqlite3 or mysql")
	fs.StringVar(&o.dsn, "dsn", "", "read results from the archive at data source `name` instead of -results")
	fs.StringVar(&o.upload, "upload", "", "archived upload `id` to render (default latest; requires -dsn)")
	if err := fs.Parse(args); err != nil {
		// The flag package has already printed the error and usage.
		return nil, flag.ErrHelp
	}
	if fs.NArg() > 0 {
		fs.Usage()
		return nil, flag.ErrHelp
	}
	usage := func(err error) (*options, error) {
		fs.Usage()
		return nil, usageError(err.Error())
	}
	var err error
	if o.chart.Format, err = benchchart.ParseFormat(*format); err != nil {
		return usage(err)
	}
	if o.chart.Metric, err = benchchart.ParseMetric(*metric); err != nil {
		return usage(err)
	}
	if o.upload != "" && o.dsn == "" {
		return usage(errors.New("-upload requires -dsn"))
	}
	return &o, nil
}

func (o *options) path(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(o.dir, name)
}

func benchreadme(stdout, stderr io.Writer, args []string) error {
	o, err := parseFlags(stderr, args)
	if err != nil {
		return err
	}
	ctx := context.Background()
	logf := func(format string, args ...interface{}) {
		fmt.Fprintf(stderr, "benchreadme: "+format, args...)
	}
	o.logf = logf

	b := &benchreport.Builder{
		Registry:    registry.Default(),
		Source:      benchreport.Dir(o.path(o.results)),
		Size:        benchreport.StatSize(o.dir),
		Concurrency: o.jobs,
	}
	if o.verbose {
		b.Warn = logf
	}
	if o.dsn != "" {
		d, err := db.OpenSQL(o.driver, o.dsn)
		if err != nil {
			return err
		}
		defer d.Close()
		id := o.upload
		if id == "" {
			if id, err = d.LatestUpload(ctx); err != nil {
				return fmt.Errorf("latest upload: %w", err)
			}
		}
		if o.verbose {
			logf("rendering upload %s\n", id)
		}
		b.Source = archive(d, id)
	}

	r, err := b.Build(ctx)
	if err != nil {
		return err
	}
	if o.charts != "" {
		if err := writeCharts(o, r); err != nil {
			return err
		}
	}

	var buf bytes.Buffer
	if err := benchreport.WriteREADME(&buf, r); err != nil {
		return err
	}
	if o.out == "-" {
		if _, err := stdout.Write(buf.Bytes()); err != nil {
			return err
		}
	} else if err := writeFile(o, o.out, buf.Bytes()); err != nil {
		return err
	}
	if o.csv != "" {
		buf.Reset()
		if err := benchreport.WriteCSV(&buf, r); err != nil {
			return err
		}
		if err := writeFile(o, o.csv, buf.Bytes()); err != nil {
			return err
		}
	}
	if o.html != "" {
		buf.Reset()
		if err := benchreport.WriteHTML(&buf, r); err != nil {
			return err
		}
		if err := writeFile(o, o.html, buf.Bytes()); err != nil {
			return err
		}
	}

	failed := r.Failed()
	for _, s := range failed {
		logf("%s: %v\n", s.Info.Key, s.Err)
	}
	if len(failed) > 0 {
		return fmt.Errorf("%d of %d inputs failed", len(failed), len(r.Sections))
	}
	return nil
}

// archive returns a Source reading the results of upload id.
func archive(d *db.DB, id string) benchreport.Source {
	return benchreport.SourceFunc(func(ctx context.Context, in registry.InputInfo) (*hyperfine.Document, error) {
		results, err := d.Results(ctx, id, in.Key)
		if err != nil {
			return nil, err
		}
		return &hyperfine.Document{FileName: "upload " + id + "/" + in.Key, Results: results}, nil
	})
}

func writeCharts(o *options, r *benchreport.Report) error {
	dir := o.path(o.charts)
	if err := os.MkdirAll(dir, 0o777); err != nil {
		return err
	}
	for _, s := range r.Sections {
		if s.Err != nil {
			continue
		}
		name := s.Info.Key + "." + o.chart.Format.Ext()
		var buf bytes.Buffer
		if err := benchchart.Write(&buf, s.Info.Name, s.Rows, o.chart); err != nil {
			return fmt.Errorf("%s: chart: %w", s.Info.Key, err)
		}
		if err := os.WriteFile(filepath.Join(dir, name), buf.Bytes(), 0o666); err != nil {
			return err
		}
		s.Chart = o.link(filepath.Join(dir, name))
		if o.verbose {
			o.logf("wrote %s\n", filepath.Join(dir, name))
		}
	}
	return nil
}

// link returns the README's reference to file. With -o -, the README
// is assumed to live in -dir.
func (o *options) link(file string) string {
	readmeDir := o.dir
	if o.out != "-" {
		readmeDir = filepath.Dir(o.path(o.out))
	}
	base, err1 := filepath.Abs(readmeDir)
	target, err2 := filepath.Abs(file)
	if err1 != nil || err2 != nil {
		return filepath.ToSlash(file)
	}
	rel, err := filepath.Rel(base, target)
	if err != nil {
		return filepath.ToSlash(target)
	}
	return filepath.ToSlash(rel)
}

func writeFile(o *options, name string, data []byte) error {
	p := o.path(name)
	if err := os.MkdirAll(filepath.Dir(p), 0o777); err != nil {
		return err
	}
	if err := os.WriteFile(p, data, 0o666); err != nil {
		return err
	}
	if o.verbose {
		o.logf("wrote %s\n", p)
	}
	return nil
}
