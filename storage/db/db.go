// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package db archives raw benchmark result sets in a SQL database so
// that a report can be rendered again from an earlier run.
//
// Each archived run is an upload. An upload holds, per input, the
// hyperfine results exactly as they were read; ranking is always
// recomputed from them.
package db

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"text/template"
	"time"

	"golang.org/x/net/context"

	"github.com/arshad-yaseen/parserbench/hyperfine"
)

// ErrNotFound is returned for an upload or input that is not archived.
var ErrNotFound = errors.New("not found")

// DB is a high-level interface to the archive database. It's safe for
// concurrent use by multiple goroutines.
type DB struct {
	sql *sql.DB // underlying database connection
	// prepared statements
	lastNum      *sql.Stmt
	insertUpload *sql.Stmt
	insertInput  *sql.Stmt
	insertResult *sql.Stmt
}

// OpenSQL creates a DB backed by a SQL database. The parameters are
// the same as the parameters for sql.Open. Only mysql and sqlite3 are
// explicitly supported; other database engines will receive MySQL
// query syntax which may or may not be compatible.
func OpenSQL(driverName, dataSourceName string) (*DB, error) {
	db, err := sql.Open(driverName, dataSourceName)
	if err != nil {
		return nil, err
	}
	if hook := openHooks[driverName]; hook != nil {
		if err := hook(db); err != nil {
			db.Close()
			return nil, err
		}
	}
	d := &DB{sql: db}
	if err := d.createTables(driverName); err != nil {
		db.Close()
		return nil, err
	}
	if err := d.prepareStatements(); err != nil {
		db.Close()
		return nil, err
	}
	return d, nil
}

var openHooks = make(map[string]func(*sql.DB) error)

// RegisterOpenHook registers a hook to be called after opening a connection to driverName.
// This is used by the sqlite3 package to register a ConnectHook.
// It must be called from an init function.
func RegisterOpenHook(driverName string, hook func(*sql.DB) error) {
	openHooks[driverName] = hook
}

// createTmpl is the template used to prepare the CREATE statements
// for the database. It is evaluated with . as a map containing one
// entry whose key is the driver name.
var createTmpl = template.Must(template.New("create").Parse(`
CREATE TABLE IF NOT EXISTS Uploads (
	UploadID VARCHAR(20) PRIMARY KEY,
	Day CHAR(8) NOT NULL,
	Num BIGINT NOT NULL,
	Created BIGINT NOT NULL
);
CREATE TABLE IF NOT EXISTS Inputs (
	UploadID VARCHAR(20),
	Input VARCHAR(255),
	PRIMARY KEY (UploadID, Input),
	FOREIGN KEY (UploadID) REFERENCES Uploads(UploadID) ON UPDATE CASCADE ON DELETE CASCADE
);
CREATE TABLE IF NOT EXISTS Results (
	UploadID VARCHAR(20),
	RecordID BIGINT UNSIGNED,
	Input VARCHAR(255),
	Command VARCHAR(8192),
	Mean DOUBLE,
	Stddev DOUBLE,
	Median DOUBLE,
	Min DOUBLE,
	Max DOUBLE,
	Runs INT,
	Times {{if .sqlite3}}BLOB{{else}}LONGBLOB{{end}},
	PRIMARY KEY (UploadID, RecordID),
{{if not .sqlite3}}
	Index (UploadID, Input),
{{end}}
	FOREIGN KEY (UploadID, Input) REFERENCES Inputs(UploadID, Input) ON UPDATE CASCADE ON DELETE CASCADE
);
{{if .sqlite3}}
CREATE INDEX IF NOT EXISTS ResultsUploadInput ON Results(UploadID, Input);
{{end}}
`))

// createTables creates any missing tables on the connection in
// db.sql. driverName is the same driver name passed to sql.Open and
// is used to select the correct syntax.
func (db *DB) createTables(driverName string) error {
	var buf bytes.Buffer
	if err := createTmpl.Execute(&buf, map[string]bool{driverName: true}); err != nil {
		return err
	}
	for _, q := range strings.Split(buf.String(), ";") {
		if strings.TrimSpace(q) == "" {
			continue
		}
		if _, err := db.sql.Exec(q); err != nil {
			return fmt.Errorf("create table: %v", err)
		}
	}
	return nil
}

// prepareStatements calls db.sql.Prepare on reusable SQL statements.
func (db *DB) prepareStatements() error {
	var err error
	prepare := func(s **sql.Stmt, q string) {
		if err == nil {
			*s, err = db.sql.Prepare(q)
		}
	}
	prepare(&db.lastNum, "SELECT MAX(Num) FROM Uploads WHERE Day = ?")
	prepare(&db.insertUpload, "INSERT INTO Uploads(UploadID, Day, Num, Created) VALUES (?, ?, ?, ?)")
	prepare(&db.insertInput, "INSERT INTO Inputs(UploadID, Input) VALUES (?, ?)")
	prepare(&db.insertResult, "INSERT INTO Results(UploadID, RecordID, Input, Command, Mean, Stddev, Median, Min, Max, Runs, Times) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)")
	return err
}

// now is overridden in tests.
var now = time.Now

// An Upload is a set of result documents that share an upload ID.
// Nothing is visible to readers until Commit.
type Upload struct {
	// ID is the archive-wide identifier of the upload, of the form
	// YYYYMMDD.n for the nth upload of a UTC day.
	ID string

	// recordid is the index of the next result to insert.
	recordid int64
	inputs   map[string]bool
	db       *DB
	tx       *sql.Tx
}

// NewUpload starts a new upload. The caller must call Commit or Abort.
func (db *DB) NewUpload(ctx context.Context) (*Upload, error) {
	tx, err := db.sql.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	t := now().UTC()
	day := t.Format("20060102")

	var last sql.NullInt64
	if err := tx.Stmt(db.lastNum).QueryRowContext(ctx, day).Scan(&last); err != nil {
		tx.Rollback()
		return nil, err
	}
	id := fmt.Sprintf("%s.%d", day, last.Int64+1)
	if _, err := tx.Stmt(db.insertUpload).ExecContext(ctx, id, day, last.Int64+1, t.Unix()); err != nil {
		tx.Rollback()
		return nil, err
	}
	return &Upload{ID: id, inputs: make(map[string]bool), db: db, tx: tx}, nil
}

// InsertResults archives the results of one input. Each input may be
// inserted once per upload. An empty results slice records that the
// input was benchmarked without producing results.
func (u *Upload) InsertResults(input string, results []hyperfine.Result) error {
	if u.inputs[input] {
		return fmt.Errorf("upload %s: input %q already inserted", u.ID, input)
	}
	if _, err := u.tx.Stmt(u.db.insertInput).Exec(u.ID, input); err != nil {
		return err
	}
	u.inputs[input] = true
	stmt := u.tx.Stmt(u.db.insertResult)
	for _, r := range results {
		times, err := json.Marshal(r.Times)
		if err != nil {
			return err
		}
		if _, err := stmt.Exec(u.ID, u.recordid, input, r.Command, r.Mean, r.Stddev, r.Median, r.Min, r.Max, r.Runs(), times); err != nil {
			return err
		}
		u.recordid++
	}
	return nil
}

// Commit makes the upload visible.
func (u *Upload) Commit() error {
	return u.tx.Commit()
}

// Abort discards the upload.
func (u *Upload) Abort() error {
	return u.tx.Rollback()
}

// Results returns the archived results of input in upload uploadID,
// in the order they were inserted. It returns an error wrapping
// ErrNotFound if the upload does not include input.
func (db *DB) Results(ctx context.Context, uploadID, input string) ([]hyperfine.Result, error) {
	var n int
	if err := db.sql.QueryRowContext(ctx, "SELECT COUNT(*) FROM Inputs WHERE UploadID = ? AND Input = ?", uploadID, input).Scan(&n); err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, fmt.Errorf("upload %s: input %s: %w", uploadID, input, ErrNotFound)
	}

	rows, err := db.sql.QueryContext(ctx, "SELECT Command, Mean, Stddev, Median, Min, Max, Times FROM Results WHERE UploadID = ? AND Input = ? ORDER BY RecordID", uploadID, input)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	results := []hyperfine.Result{}
	for rows.Next() {
		var r hyperfine.Result
		var times []byte
		if err := rows.Scan(&r.Command, &r.Mean, &r.Stddev, &r.Median, &r.Min, &r.Max, &times); err != nil {
			return nil, err
		}
		if len(times) > 0 {
			if err := json.Unmarshal(times, &r.Times); err != nil {
				return nil, fmt.Errorf("upload %s: record times: %v", uploadID, err)
			}
		}
		results = append(results, r)
	}
	return results, rows.Err()
}

// LatestUpload returns the ID of the most recent upload. It returns
// ErrNotFound if the archive is empty.
func (db *DB) LatestUpload(ctx context.Context) (string, error) {
	var id string
	err := db.sql.QueryRowContext(ctx, "SELECT UploadID FROM Uploads ORDER BY Day DESC, Num DESC LIMIT 1").Scan(&id)
	if err == sql.ErrNoRows {
		return "", ErrNotFound
	}
	return id, err
}

// CountUploads returns the number of uploads in the database.
func (db *DB) CountUploads() (int, error) {
	var uploads int
	err := db.sql.QueryRow("SELECT COUNT(*) FROM Uploads").Scan(&uploads)
	return uploads, err
}

// Close closes the database connections, releasing any open resources.
func (db *DB) Close() error {
	for _, stmt := range []*sql.Stmt{db.lastNum, db.insertUpload, db.insertInput, db.insertResult} {
		if err := stmt.Close(); err != nil {
			return err
		}
	}
	return db.sql.Close()
}
