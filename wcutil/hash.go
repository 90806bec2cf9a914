// Copyright (c) 2023-2025 The webcash developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wcutil

import (
	"encoding/hex"

	"github.com/webcashsuite/wcwallet/wcerr"
)

// HashSize is the size in bytes of a SHA-256 hash.
const HashSize = 32

// Hash is a SHA-256 output: the server-side commitment to a webcash
// serial.
type Hash [HashSize]byte

// String returns the hash as 64 lowercase hex characters.
func (h Hash) String() string {
	return hex.EncodeToString(h[:])
}

// NewHashFromStr parses a 64-character hex string.  Uppercase hex digits
// are accepted and flagged noncanonical; any other deviation is an
// error.
func NewHashFromStr(s string) (Hash, bool, error) {
	var h Hash
	if len(s) != 2*HashSize {
		return h, false, wcerr.New(wcerr.ErrInvalidArgument,
			"hash must be exactly 64 hex characters", nil)
	}
	noncanonical := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		var nibble byte
		switch {
		case c >= '0' && c <= '9':
			nibble = c - '0'
		case c >= 'a' && c <= 'f':
			nibble = c - 'a' + 10
		case c >= 'A' && c <= 'F':
			nibble = c - 'A' + 10
			noncanonical = true
		default:
			return Hash{}, false, wcerr.New(wcerr.ErrInvalidArgument,
				"invalid hex character in hash", nil)
		}
		if i%2 == 0 {
			h[i/2] = nibble << 4
		} else {
			h[i/2] |= nibble
		}
	}
	return h, noncanonical, nil
}
