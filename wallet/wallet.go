// Copyright (c) 2023-2025 The webcash developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package wallet provides the wallet context: one storage facade, one
// server facade, and one user-interface facade composed under a single
// owner, with the terms-of-service acquire-check-prompt-record cycle
// that gates every session.
package wallet

import (
	"time"

	"github.com/webcashsuite/wcwallet/server"
	"github.com/webcashsuite/wcwallet/ui"
	"github.com/webcashsuite/wcwallet/walletdb"
	"github.com/webcashsuite/wcwallet/wcerr"
	"github.com/webcashsuite/wcwallet/wcutil"
)

// Wallet composes the three facades and caches the terms-of-service
// state between calls.  The wallet exclusively owns its facades from
// construction until Close; handing a facade to two wallets is not
// supported.
//
// A wallet is single-threaded: calls on the same wallet must not
// overlap.  Distinct wallets are independent.
type Wallet struct {
	storage *walletdb.Storage
	server  *server.Server
	ui      *ui.Surface

	terms        string
	haveTerms    bool
	accepted     bool
	acceptedWhen time.Time
}

// New returns a wallet owning the given facades.  All three are
// required; on success the wallet is responsible for releasing them.
func New(storage *walletdb.Storage, srv *server.Server, surface *ui.Surface) (*Wallet, error) {
	if storage == nil || srv == nil || surface == nil {
		return nil, wcerr.New(wcerr.ErrInvalidArgument,
			"wallet requires storage, server, and ui facades", nil)
	}
	return &Wallet{storage: storage, server: srv, ui: surface}, nil
}

// Close releases the facades in reverse composition order: ui, then
// server, then storage.  All three releases are attempted; the first
// error is returned.  Facades that never started or connected are
// simply dropped.
func (w *Wallet) Close() error {
	if w == nil || w.storage == nil {
		return wcerr.New(wcerr.ErrInvalidArgument,
			"wallet already closed", nil)
	}

	var firstErr error
	if w.ui.Running() {
		if err := w.ui.Shutdown(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if w.server.Connected() {
		if err := w.server.Disconnect(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if err := w.storage.Close(); err != nil && firstErr == nil {
		firstErr = err
	}

	w.ui = nil
	w.server = nil
	w.storage = nil
	return firstErr
}

// InvalidateTerms drops the cached terms-of-service text so the next
// EnsureTerms fetches fresh terms from the server.
func (w *Wallet) InvalidateTerms() {
	w.terms = ""
	w.haveTerms = false
	w.accepted = false
	w.acceptedWhen = time.Time{}
}

// EnsureTerms runs the terms-of-service protocol and returns the terms
// text, whether they stand accepted, and when.  The when value is
// meaningful only when accepted.
//
// The cycle: fetch the terms from the server if not cached, consult
// storage for a prior acceptance, and failing that prompt the user.  A
// fresh acceptance is persisted best-effort; if persistence fails the
// acceptance still stands for this session and the prompt simply recurs
// next time.  A rejection is not sticky: calling again re-prompts.
func (w *Wallet) EnsureTerms() (string, bool, time.Time, error) {
	if w == nil || w.storage == nil {
		return "", false, time.Time{}, wcerr.New(wcerr.ErrInvalidArgument,
			"wallet is closed", nil)
	}

	// Step 1: acquire the terms text, connecting on first use.  A
	// fresh fetch invalidates any cached acceptance.
	if !w.haveTerms {
		if !w.server.Connected() {
			if err := w.server.Connect(); err != nil {
				return "", false, time.Time{}, err
			}
		}
		text, err := w.server.Terms()
		if err != nil {
			return "", false, time.Time{}, err
		}
		w.terms = text
		w.haveTerms = true
		w.accepted = false
		w.acceptedWhen = time.Time{}
	}

	// Step 2: consult storage for a prior acceptance of this exact
	// text.
	if !w.accepted {
		accepted, when, err := w.storage.AreTermsAccepted(w.terms)
		if err != nil {
			return "", false, time.Time{}, err
		}
		w.accepted = accepted
		w.acceptedWhen = when
	}

	// Step 3: prompt the user, starting the interface on first use.
	if !w.accepted {
		if !w.ui.Running() {
			if err := w.ui.Startup(); err != nil {
				return "", false, time.Time{}, err
			}
		}
		accepted, err := w.ui.ShowTerms(w.terms)
		if err != nil {
			return "", false, time.Time{}, err
		}
		if accepted {
			now := time.Now().UTC().Truncate(time.Second)
			w.accepted = true
			w.acceptedWhen = now
			if err := w.storage.AcceptTerms(w.terms, now); err != nil {
				// Not fatal: the user will be prompted again
				// next session.
				log.Warnf("Unable to persist terms-of-service "+
					"acceptance: %v", err)
			}
		}
	}

	return w.terms, w.accepted, w.acceptedWhen, nil
}

// HaveAcceptedTerms reports whether any terms of service have ever been
// accepted into storage.
func (w *Wallet) HaveAcceptedTerms() (bool, error) {
	if w == nil || w.storage == nil {
		return false, wcerr.New(wcerr.ErrInvalidArgument,
			"wallet is closed", nil)
	}
	return w.storage.HaveAcceptedTerms()
}

// EnumerateTerms returns every accepted terms row from storage.
func (w *Wallet) EnumerateTerms() ([]walletdb.AcceptedTerms, error) {
	if w == nil || w.storage == nil {
		return nil, wcerr.New(wcerr.ErrInvalidArgument,
			"wallet is closed", nil)
	}
	return w.storage.EnumerateTerms()
}

// RecordSecret journals a secret to the recovery log before it is put
// to use, so an interrupted operation can be replayed.  The secret must
// be valid.
func (w *Wallet) RecordSecret(s *wcutil.Secret) error {
	if w == nil || w.storage == nil {
		return wcerr.New(wcerr.ErrInvalidArgument,
			"wallet is closed", nil)
	}
	if err := s.IsValid(); err != nil {
		return err
	}
	code, err := s.ClaimCode()
	if err != nil {
		return err
	}
	return w.storage.AppendRecovery([]byte(code))
}
