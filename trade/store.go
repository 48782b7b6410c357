package trade

// Store is the read-only trade collection. It is built once and never
// mutated, so concurrent readers need no locking.
type Store struct {
	trades []Trade
}

// NewStore copies trades into a new Store.
func NewStore(trades []Trade) *Store {
	return &Store{trades: append([]Trade(nil), trades...)}
}

// SeedStore returns a Store holding the seed dataset.
func SeedStore() *Store {
	return NewStore(Seed())
}

// Len returns the number of trades held.
func (s *Store) Len() int { return len(s.trades) }

// All returns every trade in collection order.
func (s *Store) All() []Trade {
	out := make([]Trade, len(s.trades))
	copy(out, s.trades)
	return out
}

// Get returns the first trade whose id equals id exactly.
func (s *Store) Get(id string) (Trade, error) {
	for _, t := range s.trades {
		if t.TradeID == id {
			return t, nil
		}
	}
	return Trade{}, &NotFoundError{Category: "trade", Message: "Trade not found"}
}

// Find applies the query's filter rule to the collection and returns the
// category of the rule applied ("" when q is empty).
func (s *Store) Find(q Query) ([]Trade, string, error) {
	return apply(s.trades, q)
}
