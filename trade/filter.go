package trade

import "time"

// Query carries the optional list parameters. Empty strings and nil pointers
// are absent.
type Query struct {
	Search     string
	AssetClass string
	TradeType  string
	MinPrice   *float64
	MaxPrice   *float64
	Start      *time.Time
	End        *time.Time
}

// Predicate selects trades.
type Predicate func(Trade) bool

// Rule is one filter dimension. Only the first active rule of a query is applied.
type Rule struct {
	Category string
	Message  string
	active   func(Query) bool
	build    func(Query) Predicate
}

// Predicate returns the rule's predicate bound to q.
func (r Rule) Predicate(q Query) Predicate { return r.build(q) }

func (r Rule) notFound() *NotFoundError {
	return &NotFoundError{Category: r.Category, Message: r.Message}
}

// rules are ordered by priority.
var rules = []Rule{
	{
		Category: "search",
		Message:  "No trades match the search criteria",
		active:   func(q Query) bool { return q.Search != "" },
		build: func(q Query) Predicate {
			return func(t Trade) bool { return t.MatchesSearch(q.Search) }
		},
	},
	{
		Category: "assetClass",
		Message:  "No trades match the assetClass criteria",
		active:   func(q Query) bool { return q.AssetClass != "" },
		build: func(q Query) Predicate {
			return func(t Trade) bool { return t.AssetClass == q.AssetClass }
		},
	},
	{
		Category: "tradeType",
		Message:  "No trades match the tradeType criteria",
		active:   func(q Query) bool { return q.TradeType != "" },
		build: func(q Query) Predicate {
			return func(t Trade) bool { return t.TradeDetails.BuySellIndicator == q.TradeType }
		},
	},
	{
		// minPrice=0 counts as present.
		Category: "range",
		Message:  "No trades match the range criteria",
		active:   func(q Query) bool { return q.MinPrice != nil && q.MaxPrice != nil },
		build: func(q Query) Predicate {
			lo, hi := *q.MinPrice, *q.MaxPrice
			return func(t Trade) bool {
				return t.TradeDetails.Price >= lo && t.TradeDetails.Price <= hi
			}
		},
	},
	{
		Category: "minPrice",
		Message:  "No trades match the minPrice criteria",
		active:   func(q Query) bool { return q.MinPrice != nil },
		build: func(q Query) Predicate {
			lo := *q.MinPrice
			return func(t Trade) bool { return t.TradeDetails.Price >= lo }
		},
	},
	{
		Category: "maxPrice",
		Message:  "No trades match the maxPrice criteria",
		active:   func(q Query) bool { return q.MaxPrice != nil },
		build: func(q Query) Predicate {
			hi := *q.MaxPrice
			return func(t Trade) bool { return t.TradeDetails.Price <= hi }
		},
	},
	{
		Category: "start",
		Message:  "No trades match the start criteria",
		active:   func(q Query) bool { return q.Start != nil },
		build: func(q Query) Predicate {
			start := *q.Start
			return func(t Trade) bool { return !t.TradeDateTime.Before(start) }
		},
	},
	{
		Category: "end",
		Message:  "No trades match the end criteria",
		active:   func(q Query) bool { return q.End != nil },
		build: func(q Query) Predicate {
			end := *q.End
			return func(t Trade) bool { return !t.TradeDateTime.After(end) }
		},
	},
}

// Select returns the highest-priority rule active in q. ok is false when q
// carries no parameters.
func Select(q Query) (rule Rule, ok bool) {
	for _, r := range rules {
		if r.active(q) {
			return r, true
		}
	}
	return Rule{}, false
}

// Filter applies the selected rule of q to trades, preserving order. With no
// active rule it returns a copy of trades.
func Filter(trades []Trade, q Query) ([]Trade, error) {
	out, _, err := apply(trades, q)
	return out, err
}

// apply is Filter that also reports the category of the rule it used, empty
// when q carries no parameters.
func apply(trades []Trade, q Query) ([]Trade, string, error) {
	rule, ok := Select(q)
	if !ok {
		out := make([]Trade, len(trades))
		copy(out, trades)
		return out, "", nil
	}
	match := rule.Predicate(q)
	out := make([]Trade, 0, len(trades))
	for _, t := range trades {
		if match(t) {
			out = append(out, t)
		}
	}
	if len(out) == 0 {
		return nil, rule.Category, rule.notFound()
	}
	return out, rule.Category, nil
}
