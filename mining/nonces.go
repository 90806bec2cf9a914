// Copyright (c) 2023-2025 The webcash developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mining

import "encoding/base64"

// Nonces holds the base64 encodings of the ASCII decimal triples "000"
// through "999".  Each triple is three bytes and so encodes to exactly
// four base64 characters with no padding, letting a mining loop splice
// a pre-encoded nonce into a base64 work preimage without re-encoding
// the whole candidate.  Read-only after package initialization.
var Nonces [4000]byte

// Final is the base64 encoding of the single byte '}', the terminator
// spliced in after the nonce region.
var Final = [4]byte{'f', 'Q', '=', '='}

func init() {
	var triple [3]byte
	for i := 0; i < 1000; i++ {
		triple[0] = byte('0' + i/100)
		triple[1] = byte('0' + i/10%10)
		triple[2] = byte('0' + i%10)
		base64.StdEncoding.Encode(Nonces[4*i:4*i+4], triple[:])
	}
}

// NonceAt returns the four-byte base64 fragment encoding the decimal
// triple for i, which must be in [0, 1000).
func NonceAt(i int) []byte {
	return Nonces[4*i : 4*i+4]
}
