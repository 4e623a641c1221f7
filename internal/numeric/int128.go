package numeric

import (
	"fmt"
	"math/big"
)

// Stored amounts (collateral, settlement legs) live in the signed 128-bit
// range. Intermediates are computed on big.Int so two int64 operands can
// never overflow before the final range check.
var (
	MaxInt128 = maxInt128()
	MinInt128 = minInt128()
)

func maxInt128() *big.Int {
	// 2^127 - 1
	v := new(big.Int).Lsh(big.NewInt(1), 127)
	return v.Sub(v, big.NewInt(1))
}

func minInt128() *big.Int {
	// -2^127
	v := new(big.Int).Lsh(big.NewInt(1), 127)
	return v.Neg(v)
}

// Mul64 multiplies two int64 values with full-width result.
func Mul64(a, b int64) *big.Int {
	return new(big.Int).Mul(big.NewInt(a), big.NewInt(b))
}

// Sub64 subtracts two int64 values with full-width result.
func Sub64(a, b int64) *big.Int {
	return new(big.Int).Sub(big.NewInt(a), big.NewInt(b))
}

// FitsInt128 reports whether v is within the signed 128-bit stored range.
func FitsInt128(v *big.Int) bool {
	return v.Cmp(MinInt128) >= 0 && v.Cmp(MaxInt128) <= 0
}

// ParseInt128 decodes a base-10 string into the stored range. Used when
// restoring snapshots and decoding wire amounts.
func ParseInt128(s string) (*big.Int, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("numeric: malformed integer %q", s)
	}
	if !FitsInt128(v) {
		return nil, fmt.Errorf("numeric: %s outside signed 128-bit range", s)
	}
	return v, nil
}
