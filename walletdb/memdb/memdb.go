// Copyright (c) 2023-2025 The webcash developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package memdb implements an in-memory walletdb driver.  Nothing is
// persisted; it exists for tests and for ephemeral wallets that never
// touch disk.  The driver registers itself as "mem".
package memdb

import (
	"github.com/webcashsuite/wcwallet/walletdb"
	"github.com/webcashsuite/wcwallet/wcerr"
)

const dbType = "mem"

// memDB holds accepted terms rows in insertion order.
type memDB struct {
	terms  map[string]uint64
	order  []string
	closed bool
}

func (d *memDB) AnyTermsAccepted() (bool, error) {
	if d.closed {
		return false, wcerr.New(wcerr.ErrDbClosed, "memdb is closed", nil)
	}
	return len(d.terms) > 0, nil
}

func (d *memDB) AllAcceptedTerms() ([]walletdb.TermsRecord, error) {
	if d.closed {
		return nil, wcerr.New(wcerr.ErrDbClosed, "memdb is closed", nil)
	}
	records := make([]walletdb.TermsRecord, 0, len(d.order))
	for _, text := range d.order {
		records = append(records, walletdb.TermsRecord{
			Text: text,
			When: d.terms[text],
		})
	}
	return records, nil
}

func (d *memDB) TermsAcceptTime(text string) (uint64, error) {
	if d.closed {
		return 0, wcerr.New(wcerr.ErrDbClosed, "memdb is closed", nil)
	}
	return d.terms[text], nil
}

func (d *memDB) RecordTermsAcceptance(text string, when uint64) error {
	if d.closed {
		return wcerr.New(wcerr.ErrDbClosed, "memdb is closed", nil)
	}
	if _, ok := d.terms[text]; !ok {
		d.order = append(d.order, text)
	}
	d.terms[text] = when
	return nil
}

func (d *memDB) Close() error {
	d.closed = true
	return nil
}

// memLog collects appended recovery records in memory.
type memLog struct {
	records [][]byte
	closed  bool
}

func (l *memLog) Append(record []byte) error {
	if l.closed {
		return wcerr.New(wcerr.ErrDbClosed, "memdb log is closed", nil)
	}
	l.records = append(l.records, append([]byte(nil), record...))
	return nil
}

func (l *memLog) Close() error {
	l.closed = true
	return nil
}

func init() {
	driver := walletdb.Driver{
		DbType: dbType,
		OpenLog: func(string) (walletdb.RecoveryLog, error) {
			return &memLog{}, nil
		},
		OpenDB: func(string) (walletdb.DB, error) {
			return &memDB{terms: make(map[string]uint64)}, nil
		},
	}
	if err := walletdb.RegisterDriver(driver); err != nil {
		panic("failed to register database driver '" + dbType + "': " +
			err.Error())
	}
}
