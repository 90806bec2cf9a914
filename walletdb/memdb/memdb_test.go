// Copyright (c) 2023-2025 The webcash developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package memdb

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/webcashsuite/wcwallet/walletdb"
	"github.com/webcashsuite/wcwallet/wcerr"
)

func TestDriverRegistered(t *testing.T) {
	t.Parallel()

	require.Contains(t, walletdb.SupportedDrivers(), "mem")
}

func TestMemStorage(t *testing.T) {
	t.Parallel()

	storage, err := walletdb.Open("mem", "", "")
	require.NoError(t, err)

	have, err := storage.HaveAcceptedTerms()
	require.NoError(t, err)
	require.False(t, have)

	at := walletdb.Epoch.Add(time.Hour)
	require.NoError(t, storage.AcceptTerms("tos", at))

	accepted, when, err := storage.AreTermsAccepted("tos")
	require.NoError(t, err)
	require.True(t, accepted)
	require.Equal(t, at, when)

	terms, err := storage.EnumerateTerms()
	require.NoError(t, err)
	require.Equal(t, []walletdb.AcceptedTerms{{Text: "tos", When: at}}, terms)

	require.NoError(t, storage.AppendRecovery([]byte("e1:secret:abc")))
	require.NoError(t, storage.Close())
}

func TestClosedDB(t *testing.T) {
	t.Parallel()

	db := &memDB{terms: make(map[string]uint64)}
	require.NoError(t, db.Close())

	_, err := db.AnyTermsAccepted()
	require.True(t, wcerr.IsCode(err, wcerr.ErrDbClosed))
	_, err = db.AllAcceptedTerms()
	require.True(t, wcerr.IsCode(err, wcerr.ErrDbClosed))
	_, err = db.TermsAcceptTime("x")
	require.True(t, wcerr.IsCode(err, wcerr.ErrDbClosed))
	err = db.RecordTermsAcceptance("x", 1)
	require.True(t, wcerr.IsCode(err, wcerr.ErrDbClosed))

	log := &memLog{}
	require.NoError(t, log.Close())
	err = log.Append([]byte("x"))
	require.True(t, wcerr.IsCode(err, wcerr.ErrDbClosed))
}
