package settle

import (
	"math"
	"math/big"

	"MarginSettle/internal/numeric"
)

// MaxRateMagnitude bounds |funding rate| on both the input and the stored
// checkpoint, keeping rate_delta * size far inside 128 bits.
const MaxRateMagnitude = math.MaxInt64 / 1_000_000

var zero = big.NewInt(0)

// Settle marks pos to the oracle price and charges funding accrued since the
// last checkpoint, crediting the net against bal's collateral.
//
// The computation is pure and deterministic. Validation runs first, then all
// amounts are computed on full-width integers, and only when the narrowed
// collateral is known to fit do pos and bal mutate. On any error both are
// returned to the caller bit-for-bit unchanged.
//
// A flat position settles to zero amounts but still advances both
// checkpoints and still yields an Event, so replays stay no-ops.
func Settle(pos *Position, bal *Balance, in Input) (*Event, error) {
	if in.OraclePrice <= 0 {
		return nil, ErrInvalidOraclePrice
	}
	if pos.Size != 0 && pos.EntryPrice <= 0 {
		return nil, ErrInvalidPositionState
	}
	if in.FundingRate > MaxRateMagnitude || in.FundingRate < -MaxRateMagnitude {
		return nil, ErrFundingRateOutOfBounds
	}
	if pos.LastFundingRate > MaxRateMagnitude || pos.LastFundingRate < -MaxRateMagnitude {
		return nil, ErrFundingRateOutOfBounds
	}

	var pnl, funding *big.Int
	if pos.Size == 0 {
		pnl = new(big.Int)
		funding = new(big.Int)
	} else {
		// price_delta and rate_delta are differences of validated int64
		// values; the widened multiply makes the products exact.
		priceDelta := numeric.Sub64(in.OraclePrice, pos.EntryPrice)
		pnl = priceDelta.Mul(priceDelta, big.NewInt(pos.Size))

		rateDelta := numeric.Sub64(in.FundingRate, pos.LastFundingRate)
		funding = rateDelta.Mul(rateDelta, big.NewInt(pos.Size))
	}

	net := new(big.Int).Sub(pnl, funding)

	newCollateral := new(big.Int).Add(bal.Collateral, net)
	if !numeric.FitsInt128(newCollateral) {
		return nil, ErrArithmeticOverflow
	}

	ev := &Event{
		AccountID:       pos.AccountID,
		Market:          pos.Market,
		Size:            pos.Size,
		OraclePrice:     in.OraclePrice,
		FundingRate:     in.FundingRate,
		UnrealizedPnL:   pnl,
		FundingPayment:  funding,
		NetSettlement:   net,
		OldEntryPrice:   pos.EntryPrice,
		NewEntryPrice:   in.OraclePrice,
		OldFundingRate:  pos.LastFundingRate,
		NewFundingRate:  in.FundingRate,
		OldCollateral:   new(big.Int).Set(bal.Collateral),
		NewCollateral:   newCollateral,
		PositionVersion: pos.Version + 1,
	}

	// Commit point. Nothing above mutated pos or bal.
	pos.EntryPrice = in.OraclePrice
	pos.LastFundingRate = in.FundingRate
	pos.Version++
	bal.Collateral.Set(newCollateral)

	return ev, nil
}

// IsNoOp reports whether the settlement moved no value. True for flat
// positions and for replays against unchanged inputs.
func (e *Event) IsNoOp() bool {
	return e.NetSettlement.Cmp(zero) == 0 &&
		e.UnrealizedPnL.Cmp(zero) == 0 &&
		e.FundingPayment.Cmp(zero) == 0
}
