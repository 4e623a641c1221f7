package numeric_test

import (
	"MarginSettle/internal/numeric"
	"math"
	"math/big"
	"testing"
)

func TestMul64_FullWidth(t *testing.T) {
	// int64 max squared does not fit int64 but must be exact here.
	got := numeric.Mul64(math.MaxInt64, math.MaxInt64)

	want := new(big.Int).Mul(big.NewInt(math.MaxInt64), big.NewInt(math.MaxInt64))
	if got.Cmp(want) != 0 {
		t.Errorf("got %s, want %s", got, want)
	}
	if !numeric.FitsInt128(got) {
		t.Error("int64 max squared should fit signed 128-bit")
	}
}

func TestSub64_NoWrap(t *testing.T) {
	got := numeric.Sub64(math.MinInt64, math.MaxInt64)

	want := new(big.Int).Sub(big.NewInt(math.MinInt64), big.NewInt(math.MaxInt64))
	if got.Cmp(want) != 0 {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestFitsInt128_Bounds(t *testing.T) {
	if !numeric.FitsInt128(numeric.MaxInt128) {
		t.Error("MaxInt128 should fit")
	}
	if !numeric.FitsInt128(numeric.MinInt128) {
		t.Error("MinInt128 should fit")
	}

	over := new(big.Int).Add(numeric.MaxInt128, big.NewInt(1))
	if numeric.FitsInt128(over) {
		t.Error("MaxInt128+1 should not fit")
	}

	under := new(big.Int).Sub(numeric.MinInt128, big.NewInt(1))
	if numeric.FitsInt128(under) {
		t.Error("MinInt128-1 should not fit")
	}
}

func TestParseInt128(t *testing.T) {
	v, err := numeric.ParseInt128("-170141183460469231731687303715884105728")
	if err != nil {
		t.Fatalf("parse min: %v", err)
	}
	if v.Cmp(numeric.MinInt128) != 0 {
		t.Errorf("got %s, want MinInt128", v)
	}

	if _, err := numeric.ParseInt128("170141183460469231731687303715884105728"); err == nil {
		t.Error("MaxInt128+1 should be rejected")
	}

	if _, err := numeric.ParseInt128("12abc"); err == nil {
		t.Error("malformed string should be rejected")
	}
}
