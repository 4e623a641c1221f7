package state

// OracleCache tracks the latest oracle price and cumulative funding rate
// per market. Sequences are monotonic per market; stale updates are
// ignored, gaps are accepted (a missed tick is superseded by the next).
type OracleCache struct {
	prices map[string]*PriceState
	rates  map[string]*RateState
}

type PriceState struct {
	Price     int64
	Sequence  int64
	Timestamp int64
}

type RateState struct {
	Rate      int64
	Sequence  int64
	Timestamp int64
}

func NewOracleCache() *OracleCache {
	return &OracleCache{
		prices: make(map[string]*PriceState),
		rates:  make(map[string]*RateState),
	}
}

// UpdatePrice stores a price update unless it is stale.
func (oc *OracleCache) UpdatePrice(market string, price, sequence, timestamp int64) {
	current := oc.prices[market]
	if current != nil && sequence <= current.Sequence {
		return
	}

	oc.prices[market] = &PriceState{
		Price:     price,
		Sequence:  sequence,
		Timestamp: timestamp,
	}
}

// UpdateRate stores a funding rate update unless it is stale.
func (oc *OracleCache) UpdateRate(market string, rate, sequence, timestamp int64) {
	current := oc.rates[market]
	if current != nil && sequence <= current.Sequence {
		return
	}

	oc.rates[market] = &RateState{
		Rate:      rate,
		Sequence:  sequence,
		Timestamp: timestamp,
	}
}

// GetPrice returns the latest price for a market
func (oc *OracleCache) GetPrice(market string) (int64, bool) {
	st := oc.prices[market]
	if st == nil {
		return 0, false
	}
	return st.Price, true
}

// GetRate returns the latest funding rate for a market
func (oc *OracleCache) GetRate(market string) (int64, bool) {
	st := oc.rates[market]
	if st == nil {
		return 0, false
	}
	return st.Rate, true
}

// RestorePrice directly sets a price state (used for snapshot restore)
func (oc *OracleCache) RestorePrice(market string, st *PriceState) {
	oc.prices[market] = st
}

// RestoreRate directly sets a rate state (used for snapshot restore)
func (oc *OracleCache) RestoreRate(market string, st *RateState) {
	oc.rates[market] = st
}

// AllPrices returns all price states (for snapshot creation)
func (oc *OracleCache) AllPrices() map[string]*PriceState {
	result := make(map[string]*PriceState, len(oc.prices))
	for k, v := range oc.prices {
		result[k] = v
	}
	return result
}

// AllRates returns all rate states (for snapshot creation)
func (oc *OracleCache) AllRates() map[string]*RateState {
	result := make(map[string]*RateState, len(oc.rates))
	for k, v := range oc.rates {
		result[k] = v
	}
	return result
}
