// Package trade holds the trade records served by the query API and the
// filtering rules applied to them.
package trade

import (
	"strings"
	"time"
)

// Trade directions.
const (
	Buy  = "BUY"
	Sell = "SELL"
)

// TradeDetails carries direction, price and quantity.
type TradeDetails struct {
	BuySellIndicator string  `json:"buySellIndicator"`
	Price            float64 `json:"price"`
	Quantity         int     `json:"quantity"`
}

// Trade is a single recorded transaction.
type Trade struct {
	AssetClass     string       `json:"asset_class"`
	Counterparty   string       `json:"counterparty"`
	InstrumentID   string       `json:"instrument_id"`
	InstrumentName string       `json:"instrument_name"`
	TradeDateTime  time.Time    `json:"trade_date_time"`
	TradeDetails   TradeDetails `json:"trade_details"`
	TradeID        string       `json:"trade_id"`
	Trader         string       `json:"trader"`
}

// MatchesSearch reports whether text occurs, ignoring case, in the
// counterparty, instrument id, instrument name or trader.
func (t Trade) MatchesSearch(text string) bool {
	needle := strings.ToLower(text)
	for _, field := range []string{t.Counterparty, t.InstrumentID, t.InstrumentName, t.Trader} {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}
