// Copyright (c) 2023-2025 The webcash developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package mining provides the hot inner primitives of the webcash
// mining loop: an eight-way SHA-256 finalizer for candidate work
// completion, and precomputed base64 nonce fragments for pre-encoded
// nonce substitution.  Loop orchestration, target checks, and server
// submission belong to the caller.
package mining

import (
	"encoding/binary"

	"github.com/webcashsuite/wcwallet/sha256x"
)

const (
	// nonceLen is the length of each of the three nonce byte groups
	// substituted into a candidate's trailing region.
	nonceLen = 4

	// tailLen is the total length of the per-candidate trailing region:
	// nonce1, one lane's nonce2 group, and the final group.
	tailLen = 3 * nonceLen
)

// Finalize8Way completes eight SHA-256 hashes that share the absorbed
// prefix held in ctx but differ in their trailing nonce region.  Lane i
// hashes the prefix followed by nonce1[0:4] || nonce2[4i:4i+4] ||
// final[0:4].  The eight 32-byte digests are written to hashes in lane
// order.
//
// The prefix absorbed into ctx must end on a compression-block
// boundary: the twelve tail bytes and message padding then fit exactly
// one block per lane, completed in a single eight-way compression.
func Finalize8Way(hashes *[8][sha256x.Size]byte, ctx *sha256x.Ctx, nonce1, nonce2, final []byte) {
	state, absorbed := ctx.Midstate()
	bitlen := (absorbed + tailLen) * 8

	var blocks [8][sha256x.BlockSize]byte
	for i := range blocks {
		copy(blocks[i][0:], nonce1[:nonceLen])
		copy(blocks[i][nonceLen:], nonce2[i*nonceLen:(i+1)*nonceLen])
		copy(blocks[i][2*nonceLen:], final[:nonceLen])
		blocks[i][tailLen] = 0x80
		binary.BigEndian.PutUint64(blocks[i][sha256x.BlockSize-8:], bitlen)
	}
	sha256x.Compress8(state, &blocks, hashes)
}
