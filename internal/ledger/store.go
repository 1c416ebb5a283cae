package ledger

import "trade-journal-go/internal/models"

// Store owns the canonical ordered trade collection. Every mutation builds a
// fresh backing slice, so snapshots handed out earlier are never affected by
// later commands. Store itself is not goroutine-safe; the Controller
// serializes access to it.
type Store struct {
	trades []models.Trade
}

// NewStore creates a store seeded with an initial collection (typically
// whatever the persistence adapter loaded at startup). A nil initial
// collection bootstraps an empty store.
func NewStore(initial []models.Trade) *Store {
	s := &Store{}
	s.Replace(initial)
	return s
}

// Snapshot returns a copy of the current collection in insertion order.
func (s *Store) Snapshot() []models.Trade {
	out := make([]models.Trade, len(s.trades))
	copy(out, s.trades)
	return out
}

// Len reports the number of trades currently held.
func (s *Store) Len() int {
	return len(s.trades)
}

// Add appends a trade to the end of the collection.
func (s *Store) Add(t models.Trade) {
	next := make([]models.Trade, 0, len(s.trades)+1)
	next = append(next, s.trades...)
	next = append(next, t)
	s.trades = next
}

// Update replaces the trade with the matching id, keeping its position.
// Returns false without modifying anything when the id is unknown.
func (s *Store) Update(id string, replacement models.Trade) bool {
	idx := s.indexOf(id)
	if idx < 0 {
		return false
	}
	next := make([]models.Trade, len(s.trades))
	copy(next, s.trades)
	next[idx] = replacement
	s.trades = next
	return true
}

// Delete removes the trade with the matching id. Returns false without
// modifying anything when the id is unknown.
func (s *Store) Delete(id string) bool {
	idx := s.indexOf(id)
	if idx < 0 {
		return false
	}
	next := make([]models.Trade, 0, len(s.trades)-1)
	next = append(next, s.trades[:idx]...)
	next = append(next, s.trades[idx+1:]...)
	s.trades = next
	return true
}

// Append adds a batch of trades to the end of the collection in input order.
func (s *Store) Append(batch []models.Trade) {
	next := make([]models.Trade, 0, len(s.trades)+len(batch))
	next = append(next, s.trades...)
	next = append(next, batch...)
	s.trades = next
}

// Replace swaps in a whole new collection, copying the input so the caller
// cannot alias the store's backing array.
func (s *Store) Replace(trades []models.Trade) {
	next := make([]models.Trade, len(trades))
	copy(next, trades)
	s.trades = next
}

// Get returns the trade with the given id, if present.
func (s *Store) Get(id string) (models.Trade, bool) {
	idx := s.indexOf(id)
	if idx < 0 {
		return models.Trade{}, false
	}
	return s.trades[idx], true
}

// HasBrokerTradeID reports whether any trade already carries the given broker
// trade id. Empty ids never match.
func (s *Store) HasBrokerTradeID(brokerID string) bool {
	if brokerID == "" {
		return false
	}
	for _, t := range s.trades {
		if t.BrokerTradeID == brokerID {
			return true
		}
	}
	return false
}

func (s *Store) indexOf(id string) int {
	for i, t := range s.trades {
		if t.ID == id {
			return i
		}
	}
	return -1
}
