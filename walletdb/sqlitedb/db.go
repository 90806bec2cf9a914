// Copyright (c) 2023-2025 The webcash developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sqlitedb

import (
	"database/sql"

	// Register the SQLite driver under name "sqlite".
	_ "modernc.org/sqlite"

	"github.com/webcashsuite/wcwallet/walletdb"
	"github.com/webcashsuite/wcwallet/wcerr"
)

// schema creates the terms table on first open.  The acceptance time is
// stored as whole seconds past the webcash epoch, exactly as handed
// across the walletdb boundary.
const schema = `
CREATE TABLE IF NOT EXISTS terms (
	text        TEXT PRIMARY KEY,
	accepted_at INTEGER NOT NULL
) WITHOUT ROWID;
`

// sqliteDB implements walletdb.DB over a SQLite database file.
type sqliteDB struct {
	db *sql.DB
}

// openDB opens (creating if necessary) the wallet database at the given
// DSN and ensures the schema exists.
func openDB(dsn string) (walletdb.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, err
	}
	return &sqliteDB{db: db}, nil
}

func (d *sqliteDB) AnyTermsAccepted() (bool, error) {
	if d.db == nil {
		return false, wcerr.New(wcerr.ErrDbClosed, "sqlite db is closed", nil)
	}
	var one int
	err := d.db.QueryRow(`SELECT 1 FROM terms LIMIT 1`).Scan(&one)
	switch err {
	case nil:
		return true, nil
	case sql.ErrNoRows:
		return false, nil
	default:
		return false, err
	}
}

func (d *sqliteDB) AllAcceptedTerms() ([]walletdb.TermsRecord, error) {
	if d.db == nil {
		return nil, wcerr.New(wcerr.ErrDbClosed, "sqlite db is closed", nil)
	}
	rows, err := d.db.Query(
		`SELECT text, accepted_at FROM terms ORDER BY accepted_at, text`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []walletdb.TermsRecord
	for rows.Next() {
		var rec walletdb.TermsRecord
		var when int64
		if err := rows.Scan(&rec.Text, &when); err != nil {
			return nil, err
		}
		if when < 0 {
			return nil, wcerr.New(wcerr.ErrDbCorrupt,
				"negative acceptance time in terms table", nil)
		}
		rec.When = uint64(when)
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (d *sqliteDB) TermsAcceptTime(text string) (uint64, error) {
	if d.db == nil {
		return 0, wcerr.New(wcerr.ErrDbClosed, "sqlite db is closed", nil)
	}
	var when int64
	err := d.db.QueryRow(
		`SELECT accepted_at FROM terms WHERE text = ?`, text).Scan(&when)
	switch {
	case err == sql.ErrNoRows:
		return 0, nil
	case err != nil:
		return 0, err
	case when < 0:
		return 0, wcerr.New(wcerr.ErrDbCorrupt,
			"negative acceptance time in terms table", nil)
	}
	return uint64(when), nil
}

func (d *sqliteDB) RecordTermsAcceptance(text string, when uint64) error {
	if d.db == nil {
		return wcerr.New(wcerr.ErrDbClosed, "sqlite db is closed", nil)
	}
	_, err := d.db.Exec(
		`INSERT INTO terms (text, accepted_at) VALUES (?, ?)
		 ON CONFLICT(text) DO UPDATE SET accepted_at = excluded.accepted_at`,
		text, int64(when))
	return err
}

func (d *sqliteDB) Close() error {
	if d.db == nil {
		return wcerr.New(wcerr.ErrDbClosed, "sqlite db is closed", nil)
	}
	err := d.db.Close()
	d.db = nil
	return err
}
