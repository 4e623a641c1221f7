package event

import "fmt"

// OraclePriceUpdate refreshes the cached oracle price for a market.
// Idempotency key: "{market}:price:{sequence}".
type OraclePriceUpdate struct {
	Market         string
	Price          int64 // Fixed-point: price scale
	PriceSequence  int64 // Monotonic per market, gaps tolerated
	PriceTimestamp int64 // Epoch microseconds (versioned input)
}

func (o *OraclePriceUpdate) IdempotencyKey() string {
	return fmt.Sprintf("%s:price:%d", o.Market, o.PriceSequence)
}

func (o *OraclePriceUpdate) EventType() EventType {
	return EventTypeOraclePriceUpdate
}

func (o *OraclePriceUpdate) MarketID() *string {
	m := o.Market
	return &m
}

func (o *OraclePriceUpdate) SourceSequence() int64 {
	return o.PriceSequence
}

// FundingRateUpdate refreshes the cached cumulative funding rate for a
// market. Same gap policy as prices.
type FundingRateUpdate struct {
	Market        string
	Rate          int64 // Fixed-point: rate scale, cumulative, signed
	RateSequence  int64 // Monotonic per market, gaps tolerated
	RateTimestamp int64 // Epoch microseconds (versioned input)
}

func (f *FundingRateUpdate) IdempotencyKey() string {
	return fmt.Sprintf("%s:rate:%d", f.Market, f.RateSequence)
}

func (f *FundingRateUpdate) EventType() EventType {
	return EventTypeFundingRateUpdate
}

func (f *FundingRateUpdate) MarketID() *string {
	m := f.Market
	return &m
}

func (f *FundingRateUpdate) SourceSequence() int64 {
	return f.RateSequence
}
