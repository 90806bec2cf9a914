// Copyright (c) 2023-2025 The webcash developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package walletdb

import (
	"math"
	"time"

	"github.com/webcashsuite/wcwallet/wcerr"
)

// EpochUnix is the webcash epoch, 2022-01-01T20:00:00Z, as POSIX
// seconds.  All persisted times are unsigned seconds past this epoch
// and are translated at the storage boundary.
const EpochUnix int64 = 1641067200

// Epoch is the webcash epoch as a time.Time.
var Epoch = time.Unix(EpochUnix, 0).UTC()

// AcceptedTerms is a terms-of-service row translated to the caller's
// time domain.
type AcceptedTerms struct {
	Text string
	When time.Time
}

// Storage owns an open wallet database and recovery log pair.  It is
// the storage facade the wallet context drives: terms-of-service
// bookkeeping in epoch-relative time, plus recovery journaling.
//
// A Storage is not safe for concurrent use; the wallet serializes
// access to it.
type Storage struct {
	log RecoveryLog
	db  DB
}

// Close releases the database and then the recovery log.  Both releases
// are always attempted; the first error wins.  Further operations on
// the handle fail with a db-closed error.
func (s *Storage) Close() error {
	if s == nil || s.db == nil {
		return wcerr.New(wcerr.ErrDbClosed, "storage already closed", nil)
	}
	err := s.db.Close()
	if logErr := s.log.Close(); err == nil {
		err = logErr
	}
	s.db = nil
	s.log = nil
	return err
}

// AppendRecovery journals one record to the recovery log.
func (s *Storage) AppendRecovery(record []byte) error {
	if s == nil || s.db == nil {
		return wcerr.New(wcerr.ErrDbClosed, "storage is closed", nil)
	}
	return s.log.Append(record)
}

// HaveAcceptedTerms reports whether any terms of service have ever been
// accepted.
func (s *Storage) HaveAcceptedTerms() (bool, error) {
	if s == nil || s.db == nil {
		return false, wcerr.New(wcerr.ErrDbClosed, "storage is closed", nil)
	}
	return s.db.AnyTermsAccepted()
}

// AreTermsAccepted reports whether the exact terms text has been
// accepted, and if so when.  The text must match byte for byte; a
// single-byte edit to stored terms is a different document.
func (s *Storage) AreTermsAccepted(text string) (bool, time.Time, error) {
	if s == nil || s.db == nil {
		return false, time.Time{}, wcerr.New(wcerr.ErrDbClosed,
			"storage is closed", nil)
	}
	when, err := s.db.TermsAcceptTime(text)
	if err != nil {
		return false, time.Time{}, err
	}
	if when == 0 {
		return false, time.Time{}, nil
	}
	at, err := epochToTime(when)
	if err != nil {
		return false, time.Time{}, err
	}
	return true, at, nil
}

// AcceptTerms records acceptance of the terms text at now.  A zero now
// means the current system time.  Times before the webcash epoch are
// not representable and are rejected.
func (s *Storage) AcceptTerms(text string, now time.Time) error {
	if s == nil || s.db == nil {
		return wcerr.New(wcerr.ErrDbClosed, "storage is closed", nil)
	}
	if now.IsZero() {
		now = time.Now()
	}
	if now.Before(Epoch) {
		return wcerr.New(wcerr.ErrInvalidArgument,
			"acceptance time precedes the webcash epoch", nil)
	}
	return s.db.RecordTermsAcceptance(text, uint64(now.Unix()-EpochUnix))
}

// EnumerateTerms returns every accepted terms row with acceptance times
// translated to UTC.
func (s *Storage) EnumerateTerms() ([]AcceptedTerms, error) {
	if s == nil || s.db == nil {
		return nil, wcerr.New(wcerr.ErrDbClosed, "storage is closed", nil)
	}
	records, err := s.db.AllAcceptedTerms()
	if err != nil {
		return nil, err
	}
	out := make([]AcceptedTerms, len(records))
	if err := convertTerms(out, records); err != nil {
		return nil, err
	}
	return out, nil
}

// EnumerateTermsInto fills buf with every accepted terms row and
// returns the row count.  When buf is too small (or nil), the count is
// returned with an insufficient-capacity error so the caller can size a
// second call.
func (s *Storage) EnumerateTermsInto(buf []AcceptedTerms) (int, error) {
	if s == nil || s.db == nil {
		return 0, wcerr.New(wcerr.ErrDbClosed, "storage is closed", nil)
	}
	records, err := s.db.AllAcceptedTerms()
	if err != nil {
		return 0, err
	}
	if len(records) > len(buf) {
		return len(records), wcerr.New(wcerr.ErrInsufficientCapacity,
			"terms buffer too small", nil)
	}
	if err := convertTerms(buf[:len(records)], records); err != nil {
		return 0, err
	}
	return len(records), nil
}

// convertTerms rewrites storage-form rows into caller-form rows.  Any
// unrepresentable acceptance time means the database holds garbage.
func convertTerms(out []AcceptedTerms, records []TermsRecord) error {
	for i, rec := range records {
		at, err := epochToTime(rec.When)
		if err != nil {
			return err
		}
		out[i] = AcceptedTerms{Text: rec.Text, When: at}
	}
	return nil
}

// epochToTime translates seconds past the webcash epoch to UTC,
// rejecting values that would overflow POSIX seconds.
func epochToTime(when uint64) (time.Time, error) {
	if when > uint64(math.MaxInt64-EpochUnix) {
		return time.Time{}, wcerr.New(wcerr.ErrDbCorrupt,
			"stored acceptance time out of range", nil)
	}
	return time.Unix(EpochUnix+int64(when), 0).UTC(), nil
}
