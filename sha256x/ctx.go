// Copyright (c) 2023-2025 The webcash developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sha256x

import "encoding/binary"

// Ctx is a streaming SHA-256 context.  Unlike the standard library hash,
// its chaining state can be captured at a block boundary with Midstate
// and resumed later with Resume, which is how the tagged-hash midstate
// and the mining finalizer pick up partially absorbed messages.
//
// The zero value is not usable; obtain contexts from New or Resume.
type Ctx struct {
	s   State
	n   uint64 // total bytes absorbed, including any buffered
	buf [BlockSize]byte
}

// New returns a context initialized with the SHA-256 IV.
func New() *Ctx {
	return &Ctx{s: iv}
}

// Resume returns a context continuing from a captured midstate.  The
// byte count n must be a multiple of BlockSize, matching the point at
// which the midstate was captured.
func Resume(s State, n uint64) *Ctx {
	return &Ctx{s: s, n: n}
}

// Write absorbs p into the hash.  It never fails; the error return
// satisfies io.Writer.
func (c *Ctx) Write(p []byte) (int, error) {
	written := len(p)

	if fill := int(c.n % BlockSize); fill > 0 {
		m := copy(c.buf[fill:], p)
		c.n += uint64(m)
		p = p[m:]
		if c.n%BlockSize == 0 {
			Compress(&c.s, &c.buf)
		}
	}
	for len(p) >= BlockSize {
		Compress(&c.s, (*[BlockSize]byte)(p))
		c.n += BlockSize
		p = p[BlockSize:]
	}
	if len(p) > 0 {
		copy(c.buf[:], p)
		c.n += uint64(len(p))
	}
	return written, nil
}

// Midstate returns the current chaining state and the number of bytes
// absorbed.  The state is only meaningful as a resumption point when the
// byte count is a multiple of BlockSize.
func (c *Ctx) Midstate() (State, uint64) {
	return c.s, c.n
}

// Sum finalizes a copy of the context and writes the digest to out.  The
// context itself remains usable for further writes.
func (c *Ctx) Sum(out *[Size]byte) {
	d := *c
	d.pad()
	Digest(&d.s, out)
	d.Zero()
}

// pad appends the SHA-256 message padding and runs the final one or two
// compressions.
func (c *Ctx) pad() {
	bitlen := c.n * 8
	fill := int(c.n % BlockSize)
	c.buf[fill] = 0x80
	fill++
	if fill > BlockSize-8 {
		for i := fill; i < BlockSize; i++ {
			c.buf[i] = 0
		}
		Compress(&c.s, &c.buf)
		fill = 0
	}
	for i := fill; i < BlockSize-8; i++ {
		c.buf[i] = 0
	}
	binary.BigEndian.PutUint64(c.buf[BlockSize-8:], bitlen)
	Compress(&c.s, &c.buf)
}

// Zero scrubs the context, clearing the chaining state and any buffered
// message bytes.
func (c *Ctx) Zero() {
	c.s = State{}
	c.n = 0
	c.buf = [BlockSize]byte{}
}
