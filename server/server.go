// Copyright (c) 2023-2025 The webcash developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package server provides the facade over a host-supplied connection to
// a webcash server.  The transport itself (HTTPS, test double, or
// otherwise) is the connector's business; the facade contributes the
// connection lifecycle and the terms-of-service fetch the wallet
// context depends on.
package server

import (
	"github.com/webcashsuite/wcwallet/wcerr"
)

// Connector is the host-provided link to a webcash server.
type Connector interface {
	// Connect establishes the connection.
	Connect() error

	// Terms fetches the server's current terms-of-service text.  Only
	// called while connected.
	Terms() (string, error)
}

// Disconnector is optionally implemented by connectors that need
// explicit teardown.  Connectors without it are simply dropped on
// disconnect.
type Disconnector interface {
	Disconnect() error
}

// connState tracks the facade lifecycle.  Disconnection is terminal; a
// new facade is needed to reconnect.
type connState int

const (
	stateUnconnected connState = iota
	stateConnected
	stateDisconnected
)

// Server is the server facade.  It owns its connector for the lifetime
// of the connection and is not safe for concurrent use.
type Server struct {
	conn  Connector
	state connState
}

// New returns an unconnected facade owning the given connector.
func New(conn Connector) (*Server, error) {
	if conn == nil {
		return nil, wcerr.New(wcerr.ErrInvalidArgument,
			"server connector is required", nil)
	}
	return &Server{conn: conn}, nil
}

// Connected reports whether the facade currently holds a live
// connection.
func (s *Server) Connected() bool {
	return s != nil && s.state == stateConnected
}

// Connect establishes the connection.  It may only be called once, from
// the unconnected state.
func (s *Server) Connect() error {
	if s == nil || s.state != stateUnconnected {
		return wcerr.New(wcerr.ErrInvalidArgument,
			"server facade is not in the unconnected state", nil)
	}
	if err := s.conn.Connect(); err != nil {
		return wcerr.New(wcerr.ErrConnectFailed,
			"unable to connect to webcash server", err)
	}
	s.state = stateConnected
	log.Debugf("Connected to webcash server")
	return nil
}

// Terms fetches the server's current terms-of-service text.  Connector
// errors are returned verbatim.
func (s *Server) Terms() (string, error) {
	if s == nil || s.state != stateConnected {
		return "", wcerr.New(wcerr.ErrNotConnected,
			"server facade is not connected", nil)
	}
	return s.conn.Terms()
}

// Disconnect tears the connection down.  The facade is terminal
// afterwards; the first error from an optional Disconnector is
// returned.
func (s *Server) Disconnect() error {
	if s == nil || s.state != stateConnected {
		return wcerr.New(wcerr.ErrNotConnected,
			"server facade is not connected", nil)
	}
	var err error
	if d, ok := s.conn.(Disconnector); ok {
		err = d.Disconnect()
	}
	s.state = stateDisconnected
	s.conn = nil
	log.Debugf("Disconnected from webcash server")
	return err
}
