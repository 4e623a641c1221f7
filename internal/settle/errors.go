package settle

import "errors"

// Settlement rejections. Each one leaves position and balance untouched;
// the caller may correct the input and resubmit.
var (
	ErrInvalidOraclePrice     = errors.New("settle: oracle price must be positive")
	ErrInvalidPositionState   = errors.New("settle: open position has non-positive entry price")
	ErrFundingRateOutOfBounds = errors.New("settle: funding rate magnitude exceeds bound")
	ErrArithmeticOverflow     = errors.New("settle: settled collateral outside stored range")
)
