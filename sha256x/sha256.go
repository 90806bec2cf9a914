// Copyright (c) 2023-2025 The webcash developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package sha256x implements SHA-256 with an exportable and resumable
// midstate.  The standard library's crypto/sha256 deliberately hides its
// chaining state, but webcash serial derivation and mining both restart
// hashing from a precomputed midstate, so the compression function is
// implemented here directly.
//
// Only the pieces those consumers need are exposed: a streaming context
// whose state can be captured at block boundaries, the raw compression
// function, and an eight-lane batch wrapper.
package sha256x

import "encoding/binary"

const (
	// Size is the size of a SHA-256 digest in bytes.
	Size = 32

	// BlockSize is the SHA-256 compression block size in bytes.
	BlockSize = 64
)

// State is the 8-word SHA-256 chaining state.
type State [8]uint32

// iv is the SHA-256 initialization vector per FIPS 180-4.
var iv = State{
	0x6a09e667, 0xbb67ae85, 0x3c6ef372, 0xa54ff53a,
	0x510e527f, 0x9b05688c, 0x1f83d9ab, 0x5be0cd19,
}

// IV returns the initial SHA-256 chaining state.
func IV() State {
	return iv
}

// k holds the SHA-256 round constants per FIPS 180-4.
var k = [64]uint32{
	0x428a2f98, 0x71374491, 0xb5c0fbcf, 0xe9b5dba5,
	0x3956c25b, 0x59f111f1, 0x923f82a4, 0xab1c5ed5,
	0xd807aa98, 0x12835b01, 0x243185be, 0x550c7dc3,
	0x72be5d74, 0x80deb1fe, 0x9bdc06a7, 0xc19bf174,
	0xe49b69c1, 0xefbe4786, 0x0fc19dc6, 0x240ca1cc,
	0x2de92c6f, 0x4a7484aa, 0x5cb0a9dc, 0x76f988da,
	0x983e5152, 0xa831c66d, 0xb00327c8, 0xbf597fc7,
	0xc6e00bf3, 0xd5a79147, 0x06ca6351, 0x14292967,
	0x27b70a85, 0x2e1b2138, 0x4d2c6dfc, 0x53380d13,
	0x650a7354, 0x766a0abb, 0x81c2c92e, 0x92722c85,
	0xa2bfe8a1, 0xa81a664b, 0xc24b8b70, 0xc76c51a3,
	0xd192e819, 0xd6990624, 0xf40e3585, 0x106aa070,
	0x19a4c116, 0x1e376c08, 0x2748774c, 0x34b0bcb5,
	0x391c0cb3, 0x4ed8aa4a, 0x5b9cca4f, 0x682e6ff3,
	0x748f82ee, 0x78a5636f, 0x84c87814, 0x8cc70208,
	0x90befffa, 0xa4506ceb, 0xbef9a3f7, 0xc67178f2,
}

func rotr(x uint32, n uint) uint32 {
	return x>>n | x<<(32-n)
}

// Compress runs the SHA-256 compression function over a single 64-byte
// block, updating the chaining state in place.
func Compress(s *State, block *[BlockSize]byte) {
	var w [64]uint32
	for i := 0; i < 16; i++ {
		w[i] = binary.BigEndian.Uint32(block[4*i:])
	}
	for i := 16; i < 64; i++ {
		s0 := rotr(w[i-15], 7) ^ rotr(w[i-15], 18) ^ w[i-15]>>3
		s1 := rotr(w[i-2], 17) ^ rotr(w[i-2], 19) ^ w[i-2]>>10
		w[i] = w[i-16] + s0 + w[i-7] + s1
	}

	a, b, c, d := s[0], s[1], s[2], s[3]
	e, f, g, h := s[4], s[5], s[6], s[7]
	for i := 0; i < 64; i++ {
		t1 := h + (rotr(e, 6) ^ rotr(e, 11) ^ rotr(e, 25)) +
			(e&f ^ ^e&g) + k[i] + w[i]
		t2 := (rotr(a, 2) ^ rotr(a, 13) ^ rotr(a, 22)) +
			(a&b ^ a&c ^ b&c)
		h, g, f, e = g, f, e, d+t1
		d, c, b, a = c, b, a, t1+t2
	}

	s[0] += a
	s[1] += b
	s[2] += c
	s[3] += d
	s[4] += e
	s[5] += f
	s[6] += g
	s[7] += h

	for i := range w {
		w[i] = 0
	}
}

// Digest serializes the chaining state as a big-endian 32-byte digest.
func Digest(s *State, out *[Size]byte) {
	for i, v := range s {
		binary.BigEndian.PutUint32(out[4*i:], v)
	}
}

// Compress8 completes eight SHA-256 hashes that share the chaining state
// s, each over its own final 64-byte block, and writes the finalized
// big-endian digests.  The blocks must already carry message padding.
//
// Lanes are independent, so this is the natural unit for wide SIMD
// dispatch; the portable implementation simply iterates the lanes.
func Compress8(s State, blocks *[8][BlockSize]byte, digests *[8][Size]byte) {
	for i := 0; i < 8; i++ {
		lane := s
		Compress(&lane, &blocks[i])
		Digest(&lane, &digests[i])
	}
}
