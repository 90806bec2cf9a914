// Copyright (c) 2023-2025 The webcash developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wcutil

import (
	"strconv"

	"github.com/webcashsuite/wcwallet/wcerr"
)

// Amount represents a quantity of webcash as a signed fixed-point value
// scaled by 1e8.  The representable range is that of int64.
type Amount int64

const (
	// AmountScale is the number of base units per webcash.
	AmountScale = 100000000

	// maxFracDigits is the number of significant digits permitted after
	// the decimal point.
	maxFracDigits = 8
)

// FromString parses a decimal webcash value.  The string may contain a
// minus sign prefix and a decimal point with up to eight significant
// fractional digits, but no other characters.
//
// The second return value reports whether the representation was
// noncanonical: a parse of the string String would not have produced.
// Noncanonical forms include leading zeros, a bare trailing decimal
// point, trailing fractional zeros, and negative zero.  Noncanonical
// input is not an error; callers that require canonical encodings check
// the flag themselves.
func FromString(s string) (Amount, bool, error) {
	return parseAmount(s, false)
}

// parseAmount implements amount parsing.  Surrounding double quotes are
// tolerated, and flagged noncanonical, only when permitQuotes is set;
// claim-code and JSON contexts are quote-permissive, the plain string
// form is not.
func parseAmount(s string, permitQuotes bool) (Amount, bool, error) {
	noncanonical := false

	if len(s) > 0 && s[0] == '"' {
		if !permitQuotes || len(s) < 2 || s[len(s)-1] != '"' {
			return 0, false, wcerr.New(wcerr.ErrInvalidArgument,
				"quoted amount not permitted here", nil)
		}
		s = s[1 : len(s)-1]
		noncanonical = true
	}

	if s == "" {
		return 0, false, wcerr.New(wcerr.ErrInvalidArgument,
			"empty amount string", nil)
	}

	negative := false
	if s[0] == '-' {
		negative = true
		s = s[1:]
	}

	// Integral digits.
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == 0 {
		return 0, false, wcerr.New(wcerr.ErrInvalidArgument,
			"amount has no integral digits", nil)
	}
	if s[0] == '0' && i > 1 {
		noncanonical = true
	}
	intPart := s[:i]

	// Optional fractional digits.
	var frac string
	if i < len(s) {
		if s[i] != '.' {
			return 0, false, wcerr.New(wcerr.ErrInvalidArgument,
				"unexpected character in amount", nil)
		}
		frac = s[i+1:]
		for j := 0; j < len(frac); j++ {
			if frac[j] < '0' || frac[j] > '9' {
				return 0, false, wcerr.New(wcerr.ErrInvalidArgument,
					"unexpected character in amount", nil)
			}
		}
		if frac == "" {
			// Trailing decimal point.
			noncanonical = true
		}
	}

	// Only the first eight fractional digits are significant.  Digits
	// beyond them must all be zero.
	sig := frac
	if len(frac) > maxFracDigits {
		sig = frac[:maxFracDigits]
		for j := maxFracDigits; j < len(frac); j++ {
			if frac[j] != '0' {
				return 0, false, wcerr.New(wcerr.ErrInvalidArgument,
					"too many fractional digits", nil)
			}
		}
		noncanonical = true
	}
	if len(sig) > 0 && sig[len(sig)-1] == '0' {
		noncanonical = true
	}

	// The most-negative amount has one more unit of magnitude available
	// than the most-positive.
	limit := uint64(1)<<63 - 1
	if negative {
		limit = uint64(1) << 63
	}
	maxInt := limit / AmountScale

	var units uint64
	for j := 0; j < len(intPart); j++ {
		units = units*10 + uint64(intPart[j]-'0')
		if units > maxInt {
			return 0, false, wcerr.New(wcerr.ErrOverflow,
				"amount out of range", nil)
		}
	}

	var fracUnits uint64
	for j := 0; j < maxFracDigits; j++ {
		fracUnits *= 10
		if j < len(sig) {
			fracUnits += uint64(sig[j] - '0')
		}
	}

	total := units*AmountScale + fracUnits
	if total > limit {
		return 0, false, wcerr.New(wcerr.ErrOverflow,
			"amount out of range", nil)
	}

	if negative && total == 0 {
		noncanonical = true
	}

	amt := Amount(total)
	if negative {
		amt = -amt
	}
	return amt, noncanonical, nil
}

// String returns the canonical decimal representation of the amount.  A
// decimal point and up to eight fractional digits are emitted only when
// the amount has a fractional part, with trailing zeros stripped.
func (a Amount) String() string {
	magnitude := uint64(a)
	negative := a < 0
	if negative {
		magnitude = -magnitude
	}

	units := magnitude / AmountScale
	frac := magnitude % AmountScale

	var buf [32]byte
	b := buf[:0]
	if negative {
		b = append(b, '-')
	}
	b = strconv.AppendUint(b, units, 10)
	if frac != 0 {
		b = append(b, '.')
		digits := strconv.AppendUint([]byte(nil), frac+AmountScale, 10)
		// Skip the leading sentinel digit, then strip trailing zeros.
		digits = digits[1:]
		for digits[len(digits)-1] == '0' {
			digits = digits[:len(digits)-1]
		}
		b = append(b, digits...)
	}
	return string(b)
}

// MarshalJSON implements json.Marshaler.  Webcash servers exchange
// amounts as quoted decimal strings to avoid floating-point truncation.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(`"` + a.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler.  Both quoted and bare JSON
// numbers are accepted; quoting and other recoverable deviations from
// the canonical form are tolerated here, matching the permissive parse
// used for claim codes.
func (a *Amount) UnmarshalJSON(data []byte) error {
	amt, _, err := parseAmount(string(data), true)
	if err != nil {
		return err
	}
	*a = amt
	return nil
}

// Add returns a+b, or an overflow error when the sum is outside the
// representable range.
func (a Amount) Add(b Amount) (Amount, error) {
	sum := a + b
	if (b > 0 && sum < a) || (b < 0 && sum > a) {
		return 0, wcerr.New(wcerr.ErrOverflow, "amount sum out of range", nil)
	}
	return sum, nil
}

// Sub returns a-b, or an overflow error when the difference is outside
// the representable range.
func (a Amount) Sub(b Amount) (Amount, error) {
	diff := a - b
	if (b < 0 && diff < a) || (b > 0 && diff > a) {
		return 0, wcerr.New(wcerr.ErrOverflow, "amount difference out of range", nil)
	}
	return diff, nil
}
