// Copyright (c) 2023-2025 The webcash developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/webcashsuite/wcwallet/wcerr"
)

// stubConnector is a scriptable Connector with optional disconnect
// support.
type stubConnector struct {
	connectErr    error
	terms         string
	termsErr      error
	disconnectErr error

	connects    int
	disconnects int
}

func (c *stubConnector) Connect() error {
	c.connects++
	return c.connectErr
}

func (c *stubConnector) Terms() (string, error) {
	return c.terms, c.termsErr
}

func (c *stubConnector) Disconnect() error {
	c.disconnects++
	return c.disconnectErr
}

// plainConnector lacks the optional Disconnector interface.
type plainConnector struct {
	terms string
}

func (c *plainConnector) Connect() error         { return nil }
func (c *plainConnector) Terms() (string, error) { return c.terms, nil }

func TestNewRequiresConnector(t *testing.T) {
	t.Parallel()

	_, err := New(nil)
	require.True(t, wcerr.IsCode(err, wcerr.ErrInvalidArgument))
}

// TestLifecycle walks the unconnected -> connected -> disconnected
// machine and checks every off-path transition fails.
func TestLifecycle(t *testing.T) {
	t.Parallel()

	conn := &stubConnector{terms: "foo"}
	srv, err := New(conn)
	require.NoError(t, err)
	require.False(t, srv.Connected())

	// Terms and Disconnect require a connection.
	_, err = srv.Terms()
	require.True(t, wcerr.IsCode(err, wcerr.ErrNotConnected))
	err = srv.Disconnect()
	require.True(t, wcerr.IsCode(err, wcerr.ErrNotConnected))

	require.NoError(t, srv.Connect())
	require.True(t, srv.Connected())
	require.Equal(t, 1, conn.connects)

	// A second connect is a state error.
	err = srv.Connect()
	require.True(t, wcerr.IsCode(err, wcerr.ErrInvalidArgument))

	terms, err := srv.Terms()
	require.NoError(t, err)
	require.Equal(t, "foo", terms)

	require.NoError(t, srv.Disconnect())
	require.Equal(t, 1, conn.disconnects)
	require.False(t, srv.Connected())

	// Disconnection is terminal.
	err = srv.Connect()
	require.True(t, wcerr.IsCode(err, wcerr.ErrInvalidArgument))
	_, err = srv.Terms()
	require.True(t, wcerr.IsCode(err, wcerr.ErrNotConnected))
	err = srv.Disconnect()
	require.True(t, wcerr.IsCode(err, wcerr.ErrNotConnected))
}

func TestConnectFailed(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection refused")
	srv, err := New(&stubConnector{connectErr: cause})
	require.NoError(t, err)

	err = srv.Connect()
	require.True(t, wcerr.IsCode(err, wcerr.ErrConnectFailed))
	require.ErrorIs(t, err, cause)
	require.False(t, srv.Connected())
}

func TestTermsErrorVerbatim(t *testing.T) {
	t.Parallel()

	cause := errors.New("terms endpoint gone")
	srv, err := New(&stubConnector{termsErr: cause})
	require.NoError(t, err)
	require.NoError(t, srv.Connect())

	_, err = srv.Terms()
	require.Equal(t, cause, err)
}

func TestOptionalDisconnect(t *testing.T) {
	t.Parallel()

	// Without a Disconnector the teardown still succeeds.
	srv, err := New(&plainConnector{terms: "foo"})
	require.NoError(t, err)
	require.NoError(t, srv.Connect())
	require.NoError(t, srv.Disconnect())

	// Disconnect errors propagate.
	cause := errors.New("half-closed")
	srv, err = New(&stubConnector{disconnectErr: cause})
	require.NoError(t, err)
	require.NoError(t, srv.Connect())
	require.Equal(t, cause, srv.Disconnect())
	require.False(t, srv.Connected())
}
