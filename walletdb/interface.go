// Copyright (c) 2023-2025 The webcash developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package walletdb

import (
	"github.com/webcashsuite/wcwallet/wcerr"
)

// TermsRecord is one accepted terms-of-service row in storage form: the
// terms text and the acceptance time in whole seconds past the webcash
// epoch.
type TermsRecord struct {
	Text string
	When uint64
}

// DB is the wallet database contract a storage driver provides.  The
// core issues only terms-of-service queries through it; the schema
// behind them is the driver's business.
type DB interface {
	// AnyTermsAccepted reports whether any terms-of-service row exists.
	AnyTermsAccepted() (bool, error)

	// AllAcceptedTerms enumerates every accepted terms row.
	AllAcceptedTerms() ([]TermsRecord, error)

	// TermsAcceptTime returns the acceptance time of the given terms
	// text in seconds past the webcash epoch, or zero if the text has
	// never been accepted.
	TermsAcceptTime(text string) (uint64, error)

	// RecordTermsAcceptance records acceptance of the given terms text
	// at when, in seconds past the webcash epoch.
	RecordTermsAcceptance(text string, when uint64) error

	// Close releases the database.
	Close() error
}

// RecoveryLog is the append-only wallet recovery log.  Every secret the
// wallet learns is journaled here before use so that an interrupted
// operation never strands funds.  The record format is the driver's
// business.
type RecoveryLog interface {
	// Append durably appends one record.
	Append(record []byte) error

	// Close releases the log.
	Close() error
}

// Driver defines the structure a storage backend registers itself with.
// OpenLog and OpenDB are both required; a driver missing either cannot
// be opened.
type Driver struct {
	// DbType is the identifier used to uniquely identify a specific
	// storage driver.  There can be only one driver with the same name.
	DbType string

	// OpenLog opens the append-only recovery log at the given URL.
	OpenLog func(url string) (RecoveryLog, error)

	// OpenDB opens the wallet database at the given URL.
	OpenDB func(url string) (DB, error)
}

// drivers holds all of the registered storage backends.
var drivers = make(map[string]*Driver)

// RegisterDriver adds a storage backend to the available drivers.  An
// invalid-argument error is returned if a driver with the same type is
// already registered.
func RegisterDriver(driver Driver) error {
	if _, exists := drivers[driver.DbType]; exists {
		return wcerr.New(wcerr.ErrInvalidArgument,
			"storage driver type already registered: "+driver.DbType, nil)
	}

	drivers[driver.DbType] = &driver
	return nil
}

// SupportedDrivers returns the storage driver types that have been
// registered and are therefore supported.
func SupportedDrivers() []string {
	supported := make([]string, 0, len(drivers))
	for dbType := range drivers {
		supported = append(supported, dbType)
	}
	return supported
}

// Open opens wallet storage using the named driver: first the recovery
// log, then the database.  If the log opens but the database does not,
// the log is closed again before the error is returned.
func Open(dbType, logURL, dbURL string) (*Storage, error) {
	drv, exists := drivers[dbType]
	if !exists {
		return nil, wcerr.New(wcerr.ErrInvalidArgument,
			"unknown storage driver type: "+dbType, nil)
	}
	return OpenWith(drv, logURL, dbURL)
}

// OpenWith opens wallet storage through an explicit driver, bypassing
// the registry.  See Open for the open ordering and failure contract.
func OpenWith(drv *Driver, logURL, dbURL string) (*Storage, error) {
	if drv == nil || drv.OpenLog == nil || drv.OpenDB == nil {
		return nil, wcerr.New(wcerr.ErrInvalidArgument,
			"storage driver must provide OpenLog and OpenDB", nil)
	}

	log, err := drv.OpenLog(logURL)
	if err != nil || log == nil {
		return nil, wcerr.New(wcerr.ErrLogOpenFailed,
			"unable to open recovery log", err)
	}

	db, err := drv.OpenDB(dbURL)
	if err != nil || db == nil {
		log.Close()
		return nil, wcerr.New(wcerr.ErrDbOpenFailed,
			"unable to open wallet database", err)
	}

	return &Storage{log: log, db: db}, nil
}
