package spritec

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// CompileDB is the catalog of past compiles, keyed by the SHA-1 of the
// encoded input sheet so repeated runs over the same assets can be
// audited.
type CompileDB struct {
	db *sql.DB
}

// NewCompileDB opens the catalog at file, creating the schema if
// needed.
func NewCompileDB(file string) (*CompileDB, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("%s?_foreign_keys=on", file))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(10)

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS compile (id INTEGER PRIMARY KEY NOT NULL, sha1 TEXT NOT NULL, input TEXT NOT NULL, output TEXT NOT NULL, mode TEXT NOT NULL, sprites INTEGER NOT NULL, colors INTEGER NOT NULL, warnings INTEGER NOT NULL, created INTEGER NOT NULL)"); err != nil {
		return nil, err
	}

	return &CompileDB{
		db: db,
	}, nil
}

// CompileRecord is one catalog entry.
type CompileRecord struct {
	SHA1     string
	Input    string
	Output   string
	Mode     string
	Sprites  int
	Colors   int
	Warnings int
	Created  time.Time
}

// Record appends one entry to the catalog.
func (db *CompileDB) Record(r CompileRecord) error {
	created := r.Created
	if created.IsZero() {
		created = time.Now()
	}
	_, err := db.db.Exec("INSERT INTO compile (sha1, input, output, mode, sprites, colors, warnings, created) VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
		r.SHA1, r.Input, r.Output, r.Mode, r.Sprites, r.Colors, r.Warnings, created.Unix())
	return err
}

// History returns the most recent entries, newest first. A limit of 0
// or less returns everything.
func (db *CompileDB) History(limit int) ([]CompileRecord, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := db.db.Query("SELECT sha1, input, output, mode, sprites, colors, warnings, created FROM compile ORDER BY id DESC LIMIT ?", limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []CompileRecord
	for rows.Next() {
		var r CompileRecord
		var created int64
		if err := rows.Scan(&r.SHA1, &r.Input, &r.Output, &r.Mode, &r.Sprites, &r.Colors, &r.Warnings, &created); err != nil {
			return nil, err
		}
		r.Created = time.Unix(created, 0)
		records = append(records, r)
	}
	return records, rows.Err()
}

// Close releases the underlying database handle.
func (db *CompileDB) Close() error {
	return db.db.Close()
}
