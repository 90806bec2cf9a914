// Copyright (c) 2023-2025 The webcash developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ui provides the facade over a host-supplied user interface.
// The toolkit behind it is the host's business; the facade contributes
// the startup/shutdown lifecycle and the terms-of-service prompt the
// wallet context depends on.
package ui

import (
	"github.com/webcashsuite/wcwallet/wcerr"
)

// UI is the host-provided user interface.
type UI interface {
	// Startup prepares the interface for prompts.
	Startup() error

	// ShowTerms displays the terms-of-service text and reports whether
	// the user accepted it.  A rejection is a successful prompt, not an
	// error; an error means the prompt could not be presented at all.
	ShowTerms(text string) (accepted bool, err error)
}

// Shutdowner is optionally implemented by interfaces that need explicit
// teardown.
type Shutdowner interface {
	Shutdown() error
}

// uiState tracks the facade lifecycle.  Shutdown is terminal.
type uiState int

const (
	stateUnstarted uiState = iota
	stateRunning
	stateShutdown
)

// Surface is the user-interface facade.  It owns its UI for the
// lifetime of the session and is not safe for concurrent use.
type Surface struct {
	ui    UI
	state uiState
}

// New returns an unstarted facade owning the given interface.
func New(ui UI) (*Surface, error) {
	if ui == nil {
		return nil, wcerr.New(wcerr.ErrInvalidArgument,
			"user interface is required", nil)
	}
	return &Surface{ui: ui}, nil
}

// Running reports whether the surface has started and not yet shut
// down.
func (s *Surface) Running() bool {
	return s != nil && s.state == stateRunning
}

// Startup starts the interface.  It may only be called once, from the
// unstarted state.
func (s *Surface) Startup() error {
	if s == nil || s.state != stateUnstarted {
		return wcerr.New(wcerr.ErrInvalidArgument,
			"ui facade is not in the unstarted state", nil)
	}
	if err := s.ui.Startup(); err != nil {
		return wcerr.New(wcerr.ErrStartupFailed,
			"unable to start user interface", err)
	}
	s.state = stateRunning
	return nil
}

// ShowTerms presents the terms-of-service text and reports the user's
// decision.  UI errors are returned verbatim.
func (s *Surface) ShowTerms(text string) (bool, error) {
	if s == nil || s.state != stateRunning {
		return false, wcerr.New(wcerr.ErrHeadless,
			"ui facade is not running", nil)
	}
	return s.ui.ShowTerms(text)
}

// Shutdown stops the interface.  The facade is terminal afterwards; the
// first error from an optional Shutdowner is returned.
func (s *Surface) Shutdown() error {
	if s == nil || s.state != stateRunning {
		return wcerr.New(wcerr.ErrHeadless,
			"ui facade is not running", nil)
	}
	var err error
	if d, ok := s.ui.(Shutdowner); ok {
		err = d.Shutdown()
	}
	s.state = stateShutdown
	s.ui = nil
	return err
}
