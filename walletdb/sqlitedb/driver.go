// Copyright (c) 2023-2025 The webcash developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package sqlitedb registers a walletdb driver backed by SQLite for the
// wallet database and a synced append-only file for the recovery log.
// The driver registers itself as "sqlite"; the database URL is a SQLite
// DSN and the log URL is a file path.
package sqlitedb

import (
	"github.com/webcashsuite/wcwallet/walletdb"
)

const dbType = "sqlite"

func init() {
	driver := walletdb.Driver{
		DbType:  dbType,
		OpenLog: openLog,
		OpenDB:  openDB,
	}
	if err := walletdb.RegisterDriver(driver); err != nil {
		panic("failed to register database driver '" + dbType + "': " +
			err.Error())
	}
}
