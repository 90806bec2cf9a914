// Copyright (c) 2023-2025 The webcash developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package walletdb provides the storage facade for webcash wallets: a
pluggable pair of wallet database and append-only recovery log behind a
driver registry, plus the terms-of-service bookkeeping the wallet
context relies on.

Drivers register themselves by type, usually from an init function:

	import _ "github.com/webcashsuite/wcwallet/walletdb/sqlitedb"

	storage, err := walletdb.Open("sqlite", logURL, dbURL)

All times persisted through this package are unsigned seconds past the
webcash epoch, 2022-01-01T20:00:00Z, and are translated to and from
time.Time at this boundary.
*/
package walletdb
