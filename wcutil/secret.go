// Copyright (c) 2023-2025 The webcash developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wcutil

import (
	"bytes"
	"strings"

	"github.com/webcashsuite/wcwallet/internal/zero"
	"github.com/webcashsuite/wcwallet/sha256x"
	"github.com/webcashsuite/wcwallet/wcerr"
)

// serialPrealloc is the serial capacity reserved by NewSecret.  Serials
// are 64 hex characters when derived by this library.
const serialPrealloc = 64

// Secret is a webcash secret: the amount it protects and the serial
// string whose SHA-256 preimage knowledge demonstrates ownership.
//
// The serial is held as raw bytes.  It is not required to be valid
// UTF-8, and no maximum length is enforced, but a valid secret never
// contains a zero byte.  Call Destroy when the secret is no longer
// needed so the serial is scrubbed from memory.
type Secret struct {
	Amount Amount
	Serial []byte
}

// NewSecret returns an empty secret with a preallocated serial buffer.
func NewSecret() *Secret {
	return &Secret{Serial: make([]byte, 0, serialPrealloc)}
}

// SecretFromString returns a secret holding a copy of the serial string.
func SecretFromString(amount Amount, serial string) *Secret {
	return &Secret{Amount: amount, Serial: []byte(serial)}
}

// SecretFromBytes returns a secret taking ownership of the caller's
// serial buffer.  The caller's slice is set to nil; the secret scrubs
// the buffer on Destroy.
func SecretFromBytes(amount Amount, serial *[]byte) (*Secret, error) {
	if serial == nil || *serial == nil {
		return nil, wcerr.New(wcerr.ErrInvalidArgument,
			"nil serial buffer", nil)
	}
	s := &Secret{Amount: amount, Serial: *serial}
	*serial = nil
	return s, nil
}

// SecretFromBytesCopy returns a secret holding a deep copy of the serial
// buffer.
func SecretFromBytesCopy(amount Amount, serial []byte) *Secret {
	return &Secret{Amount: amount, Serial: bytes.Clone(serial)}
}

// IsValid reports whether the secret can protect webcash: a strictly
// positive amount and a nonempty serial containing no zero byte.
func (s *Secret) IsValid() error {
	switch {
	case s == nil:
		return wcerr.New(wcerr.ErrInvalidArgument, "nil secret", nil)
	case s.Serial == nil:
		return wcerr.New(wcerr.ErrInvalidArgument, "secret has no serial", nil)
	case s.Amount <= 0:
		return wcerr.New(wcerr.ErrInvalidArgument,
			"secret amount must be positive", nil)
	case len(s.Serial) == 0:
		return wcerr.New(wcerr.ErrInvalidArgument, "empty serial", nil)
	case bytes.IndexByte(s.Serial, 0) != -1:
		return wcerr.New(wcerr.ErrInvalidArgument,
			"serial contains a zero byte", nil)
	}
	return nil
}

// Destroy scrubs the serial buffer and zeroes the amount.  Destroying a
// secret whose serial has already been released is an error.
func (s *Secret) Destroy() error {
	if s == nil || s.Serial == nil {
		return wcerr.New(wcerr.ErrInvalidArgument,
			"secret already destroyed", nil)
	}
	zero.Bytes(s.Serial[:cap(s.Serial)])
	s.Serial = nil
	s.Amount = 0
	return nil
}

// ClaimCode returns the secret's textual wire form,
// "e<amount>:secret:<serial>".  The amount must be positive and the
// serial nonempty; full validity is checked separately by IsValid.
func (s *Secret) ClaimCode() (string, error) {
	if s == nil || s.Amount <= 0 || len(s.Serial) == 0 {
		return "", wcerr.New(wcerr.ErrInvalidArgument,
			"secret is not serializable", nil)
	}
	var b strings.Builder
	b.Grow(1 + 21 + len(":secret:") + len(s.Serial))
	b.WriteByte('e')
	b.WriteString(s.Amount.String())
	b.WriteString(":secret:")
	b.Write(s.Serial)
	return b.String(), nil
}

// ParseSecret parses a secret claim code.  The leading sigil may be any
// character; anything other than 'e' is flagged noncanonical, as is a
// noncanonical amount field.  The serial is everything after the second
// colon and may be empty: parse success and secret validity are
// deliberately separate questions.
func ParseSecret(code string) (*Secret, bool, error) {
	amount, serial, noncanonical, err := splitClaimCode(code, "secret")
	if err != nil {
		return nil, false, err
	}
	return &Secret{Amount: amount, Serial: []byte(serial)}, noncanonical, nil
}

// splitClaimCode performs the shared claim-code framing: a one-byte
// sigil, an amount field, the kind field, and the payload, separated by
// the first two colons.
func splitClaimCode(code, kind string) (Amount, string, bool, error) {
	if len(code) < 2 {
		return 0, "", false, wcerr.New(wcerr.ErrInvalidArgument,
			"claim code too short", nil)
	}
	noncanonical := code[0] != 'e'
	rest := code[1:]

	sep := strings.IndexByte(rest, ':')
	if sep < 0 {
		return 0, "", false, wcerr.New(wcerr.ErrInvalidArgument,
			"claim code missing kind separator", nil)
	}
	amountField := rest[:sep]
	rest = rest[sep+1:]

	sep = strings.IndexByte(rest, ':')
	if sep < 0 {
		return 0, "", false, wcerr.New(wcerr.ErrInvalidArgument,
			"claim code missing payload separator", nil)
	}
	if rest[:sep] != kind {
		return 0, "", false, wcerr.New(wcerr.ErrInvalidArgument,
			"claim code is not a "+kind, nil)
	}
	payload := rest[sep+1:]

	amount, amountNoncanonical, err := parseAmount(amountField, true)
	if err != nil {
		return 0, "", false, err
	}
	return amount, payload, noncanonical || amountNoncanonical, nil
}

// PublicFromSecret derives the public claim for a secret by hashing its
// serial.  The amount carries over unchanged.
func PublicFromSecret(s *Secret) (Public, error) {
	if s == nil || s.Serial == nil {
		return Public{}, wcerr.New(wcerr.ErrInvalidArgument,
			"nil secret", nil)
	}
	ctx := sha256x.New()
	ctx.Write(s.Serial)
	pub := Public{Amount: s.Amount}
	ctx.Sum((*[sha256x.Size]byte)(&pub.Hash))
	ctx.Zero()
	return pub, nil
}
