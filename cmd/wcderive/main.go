// Copyright (c) 2023-2025 The webcash developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// wcderive derives webcash serials from a wallet root seed.  It is a
// maintenance tool: given the hex root, a chaincode, and a depth range
// it prints the serials a wallet would reconstruct during recovery.
package main

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"

	"github.com/webcashsuite/wcwallet/hdserial"
	"github.com/webcashsuite/wcwallet/internal/zero"
)

// Flags.
var opts = struct {
	Root      string `long:"root" description:"Wallet root seed as 64 hex characters" required:"true"`
	Chaincode uint64 `long:"chaincode" description:"Derivation chaincode" default:"1"`
	Depth     uint64 `long:"depth" description:"First depth to derive" default:"0"`
	Count     int    `short:"n" long:"count" description:"Number of serials to derive" default:"1"`
}{}

func main() {
	os.Exit(mainInt())
}

func mainInt() int {
	_, err := flags.Parse(&opts)
	if err != nil {
		return 1
	}

	rootBytes, err := hex.DecodeString(opts.Root)
	if err != nil || len(rootBytes) != hdserial.RootSize {
		fmt.Fprintln(os.Stderr, "--root must be exactly 64 hex characters")
		return 1
	}
	var root hdserial.Root
	copy(root[:], rootBytes)
	zero.Bytes(rootBytes)
	defer zero.Bytea32((*[32]byte)(&root))

	if opts.Count < 0 {
		fmt.Fprintln(os.Stderr, "--count must not be negative")
		return 1
	}

	buf := make([]byte, opts.Count*hdserial.SerialLen)
	hdserial.DeriveSerials(buf, &root, opts.Chaincode, opts.Depth, opts.Count)
	defer zero.Bytes(buf)

	for i := 0; i < opts.Count; i++ {
		fmt.Printf("%s\n", buf[i*hdserial.SerialLen:(i+1)*hdserial.SerialLen])
	}
	return 0
}
