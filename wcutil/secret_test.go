// Copyright (c) 2023-2025 The webcash developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wcutil

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"

	"github.com/webcashsuite/wcwallet/wcerr"
)

func TestNewSecret(t *testing.T) {
	t.Parallel()

	s := NewSecret()
	require.NotNil(t, s.Serial)
	require.Empty(t, s.Serial)
	require.GreaterOrEqual(t, cap(s.Serial), 64)
	require.Equal(t, Amount(0), s.Amount)
	require.Error(t, s.IsValid())

	require.NoError(t, s.Destroy())
	require.Nil(t, s.Serial)
	require.Equal(t, Amount(0), s.Amount)
}

func TestSecretFromString(t *testing.T) {
	t.Parallel()

	s := SecretFromString(1, "abc")
	require.Equal(t, Amount(1), s.Amount)
	require.Equal(t, []byte("abc"), s.Serial)
	require.NoError(t, s.IsValid())
	require.NoError(t, s.Destroy())
	require.Nil(t, s.Serial)
	require.Equal(t, Amount(0), s.Amount)
}

func TestSecretFromBytes(t *testing.T) {
	t.Parallel()

	buf := []byte("abc")
	orig := buf
	s, err := SecretFromBytes(1, &buf)
	require.NoError(t, err)
	require.Nil(t, buf, "constructor must take ownership")
	require.Equal(t, Amount(1), s.Amount)

	// Same backing storage, not a copy.
	require.Equal(t, &orig[0], &s.Serial[0])

	_, err = SecretFromBytes(1, nil)
	require.True(t, wcerr.IsCode(err, wcerr.ErrInvalidArgument))

	var nilBuf []byte
	_, err = SecretFromBytes(1, &nilBuf)
	require.True(t, wcerr.IsCode(err, wcerr.ErrInvalidArgument))

	require.NoError(t, s.Destroy())
	// Destroy scrubbed the moved-in buffer.
	require.Equal(t, []byte{0, 0, 0}, orig)
}

func TestSecretFromBytesCopy(t *testing.T) {
	t.Parallel()

	buf := []byte("abc")
	s := SecretFromBytesCopy(1, buf)
	require.Equal(t, []byte("abc"), s.Serial)
	if &buf[0] == &s.Serial[0] {
		t.Fatalf("serial shares storage with input: %s", spew.Sdump(s))
	}

	require.NoError(t, s.Destroy())
	// The caller's buffer is untouched.
	require.Equal(t, []byte("abc"), buf)
}

func TestSecretIsValid(t *testing.T) {
	t.Parallel()

	var nilSecret *Secret
	require.Error(t, nilSecret.IsValid())

	// Zero-valued secret has neither amount nor serial.
	s := &Secret{}
	require.Error(t, s.IsValid())

	// Valid amount, missing serial.
	s.Amount = 1
	require.Error(t, s.IsValid())

	// Valid serial, non-positive amount.
	s = SecretFromString(0, "abc")
	require.Error(t, s.IsValid())
	s.Amount = -1
	require.Error(t, s.IsValid())

	s.Amount = 1
	require.NoError(t, s.IsValid())

	// Empty serial is invalid even with a positive amount.
	require.Error(t, SecretFromString(1, "").IsValid())

	// A zero byte anywhere in the serial invalidates it.
	s.Serial[1] = 0
	require.Error(t, s.IsValid())
}

func TestSecretDestroy(t *testing.T) {
	t.Parallel()

	// Destroying a zero-valued secret fails.
	s := &Secret{}
	err := s.Destroy()
	require.True(t, wcerr.IsCode(err, wcerr.ErrInvalidArgument))

	// Destroy scrubs, then a second destroy fails.
	s = SecretFromString(5, "topsecret")
	require.NoError(t, s.Destroy())
	require.Nil(t, s.Serial)
	require.Equal(t, Amount(0), s.Amount)
	err = s.Destroy()
	require.True(t, wcerr.IsCode(err, wcerr.ErrInvalidArgument))

	// Destroy works on invalid-but-allocated secrets.
	s = SecretFromString(0, "x")
	require.Error(t, s.IsValid())
	require.NoError(t, s.Destroy())
}

func TestSecretClaimCode(t *testing.T) {
	t.Parallel()

	s := SecretFromString(1234567800, "abc")
	code, err := s.ClaimCode()
	require.NoError(t, err)
	require.Equal(t, "e12.345678:secret:abc", code)

	parsed, noncanonical, err := ParseSecret(code)
	require.NoError(t, err)
	require.False(t, noncanonical)
	require.Equal(t, Amount(1234567800), parsed.Amount)
	require.Equal(t, []byte("abc"), parsed.Serial)

	// Serialization preconditions.
	_, err = (&Secret{}).ClaimCode()
	require.True(t, wcerr.IsCode(err, wcerr.ErrInvalidArgument))
	_, err = SecretFromString(0, "abc").ClaimCode()
	require.True(t, wcerr.IsCode(err, wcerr.ErrInvalidArgument))
	_, err = SecretFromString(1, "").ClaimCode()
	require.True(t, wcerr.IsCode(err, wcerr.ErrInvalidArgument))
}

func TestParseSecret(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		in           string
		amt          Amount
		serial       string
		noncanonical bool
		wantErr      bool
	}{
		{name: "canonical", in: "e1.1:secret:abc", amt: 110000000, serial: "abc"},
		{name: "wrong sigil", in: "E1.1:secret:abc", amt: 110000000, serial: "abc", noncanonical: true},
		{name: "noncanonical amount", in: "e1.10:secret:abc", amt: 110000000, serial: "abc", noncanonical: true},
		{name: "quoted amount", in: `e"1.1":secret:abc`, amt: 110000000, serial: "abc", noncanonical: true},
		{name: "empty serial accepted", in: "e1:secret:", amt: 100000000, serial: ""},
		{name: "serial with colons", in: "e1:secret:a:b:c", amt: 100000000, serial: "a:b:c"},
		{name: "missing colons", in: "e1.1", wantErr: true},
		{name: "one colon", in: "e1.1:secret", wantErr: true},
		{name: "wrong kind", in: "e1.1:public:abc", wantErr: true},
		{name: "bad amount", in: "ex:secret:abc", wantErr: true},
		{name: "negative amount parses", in: "e-1:secret:abc", amt: -100000000, serial: "abc"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			parsed, noncanonical, err := ParseSecret(test.in)
			if test.wantErr {
				require.True(t, wcerr.IsCode(err, wcerr.ErrInvalidArgument))
				return
			}
			require.NoError(t, err)
			require.Equal(t, test.amt, parsed.Amount)
			require.Equal(t, []byte(test.serial), parsed.Serial)
			require.Equal(t, test.noncanonical, noncanonical)
		})
	}
}

// TestSecretRoundTrip checks serialize-then-parse identity for valid
// secrets, always with the noncanonical flag clear.
func TestSecretRoundTrip(t *testing.T) {
	t.Parallel()

	for _, s := range []*Secret{
		SecretFromString(1, "abc"),
		SecretFromString(1234567800, "abc"),
		SecretFromString(100000000, "3ca6242b9b4eaca9"),
		SecretFromString(42, "éè unicode serial"),
	} {
		code, err := s.ClaimCode()
		require.NoError(t, err)
		parsed, noncanonical, err := ParseSecret(code)
		require.NoError(t, err)
		require.False(t, noncanonical)
		require.Equal(t, s.Amount, parsed.Amount)
		require.Equal(t, s.Serial, parsed.Serial)
	}
}
