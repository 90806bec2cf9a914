// Copyright (c) 2023-2025 The webcash developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wcutil

import (
	"strings"

	"github.com/webcashsuite/wcwallet/wcerr"
)

// Public is the public form of a webcash claim: the amount and the
// SHA-256 hash of the serial.  It is safe to share; only the hash is
// revealed, never the serial itself.
type Public struct {
	Amount Amount
	Hash   Hash
}

// IsValid reports whether the public claim is well formed, which
// requires only a strictly positive amount.
func (p *Public) IsValid() error {
	if p == nil {
		return wcerr.New(wcerr.ErrInvalidArgument, "nil public", nil)
	}
	if p.Amount <= 0 {
		return wcerr.New(wcerr.ErrInvalidArgument,
			"public amount must be positive", nil)
	}
	return nil
}

// ClaimCode returns the public claim's textual wire form,
// "e<amount>:public:<64 lowercase hex>".  The amount must be positive.
func (p *Public) ClaimCode() (string, error) {
	if p == nil || p.Amount <= 0 {
		return "", wcerr.New(wcerr.ErrInvalidArgument,
			"public is not serializable", nil)
	}
	var b strings.Builder
	b.Grow(1 + 21 + len(":public:") + 2*HashSize)
	b.WriteByte('e')
	b.WriteString(p.Amount.String())
	b.WriteString(":public:")
	b.WriteString(p.Hash.String())
	return b.String(), nil
}

// ParsePublic parses a public claim code.  The payload must be exactly
// 64 hex characters; uppercase digits are accepted and flagged
// noncanonical, as are a non-'e' sigil and a noncanonical amount field.
func ParsePublic(code string) (Public, bool, error) {
	amount, payload, noncanonical, err := splitClaimCode(code, "public")
	if err != nil {
		return Public{}, false, err
	}
	hash, hashNoncanonical, err := NewHashFromStr(payload)
	if err != nil {
		return Public{}, false, err
	}
	pub := Public{Amount: amount, Hash: hash}
	return pub, noncanonical || hashNoncanonical, nil
}
