// Copyright (c) 2023-2025 The webcash developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wcutil

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/webcashsuite/wcwallet/wcerr"
)

// abcHashHex is sha256("abc"), the reference vector used throughout.
const abcHashHex = "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"

func TestPublicFromSecret(t *testing.T) {
	t.Parallel()

	s := SecretFromString(1, "abc")
	pub, err := PublicFromSecret(s)
	require.NoError(t, err)
	require.Equal(t, Amount(1), pub.Amount)
	require.Equal(t, abcHashHex, pub.Hash.String())
	require.NoError(t, pub.IsValid())

	_, err = PublicFromSecret(nil)
	require.True(t, wcerr.IsCode(err, wcerr.ErrInvalidArgument))
}

func TestPublicIsValid(t *testing.T) {
	t.Parallel()

	var nilPub *Public
	require.Error(t, nilPub.IsValid())

	pub := &Public{}
	require.Error(t, pub.IsValid())
	pub.Amount = 1
	require.NoError(t, pub.IsValid())
	pub.Amount = -1
	require.Error(t, pub.IsValid())
}

func TestPublicClaimCode(t *testing.T) {
	t.Parallel()

	hash, noncanonical, err := NewHashFromStr(abcHashHex)
	require.NoError(t, err)
	require.False(t, noncanonical)

	pub := Public{Amount: 1234567800, Hash: hash}
	code, err := pub.ClaimCode()
	require.NoError(t, err)
	require.Equal(t, "e12.345678:public:"+abcHashHex, code)

	parsed, noncanonical, err := ParsePublic(code)
	require.NoError(t, err)
	require.False(t, noncanonical)
	require.Equal(t, pub, parsed)

	small := Public{Amount: 1, Hash: hash}
	code, err = small.ClaimCode()
	require.NoError(t, err)
	require.Equal(t, "e0.00000001:public:"+abcHashHex, code)

	_, err = (&Public{}).ClaimCode()
	require.True(t, wcerr.IsCode(err, wcerr.ErrInvalidArgument))
}

func TestParsePublic(t *testing.T) {
	t.Parallel()

	// Uppercase hex parses but is noncanonical.
	upper := "e1:public:" + strings.ToUpper(abcHashHex)
	parsed, noncanonical, err := ParsePublic(upper)
	require.NoError(t, err)
	require.True(t, noncanonical)
	require.Equal(t, abcHashHex, parsed.Hash.String())

	// Wrong payload length.
	_, _, err = ParsePublic("e1:public:" + abcHashHex[:63])
	require.True(t, wcerr.IsCode(err, wcerr.ErrInvalidArgument))
	_, _, err = ParsePublic("e1:public:" + abcHashHex + "00")
	require.True(t, wcerr.IsCode(err, wcerr.ErrInvalidArgument))

	// Invalid hex digit.
	bad := "e1:public:" + "zz" + abcHashHex[2:]
	_, _, err = ParsePublic(bad)
	require.True(t, wcerr.IsCode(err, wcerr.ErrInvalidArgument))

	// Secret claim codes are not public claim codes.
	_, _, err = ParsePublic("e1:secret:" + abcHashHex)
	require.True(t, wcerr.IsCode(err, wcerr.ErrInvalidArgument))
}

func TestNewHashFromStr(t *testing.T) {
	t.Parallel()

	hash, noncanonical, err := NewHashFromStr(abcHashHex)
	require.NoError(t, err)
	require.False(t, noncanonical)
	require.Equal(t, abcHashHex, hash.String())

	mixed := strings.ToUpper(abcHashHex[:32]) + abcHashHex[32:]
	hash2, noncanonical, err := NewHashFromStr(mixed)
	require.NoError(t, err)
	require.True(t, noncanonical)
	require.Equal(t, hash, hash2)

	_, _, err = NewHashFromStr("abcd")
	require.True(t, wcerr.IsCode(err, wcerr.ErrInvalidArgument))
}
