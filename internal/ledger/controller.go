package ledger

import (
	"fmt"
	"sync"
	"time"

	"trade-journal-go/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Persistence is the injected load/save capability. Load runs once at
// startup; Save receives the complete current collection after every
// mutating command — never a diff.
type Persistence interface {
	Load() ([]models.Trade, error)
	Save(trades []models.Trade) error
}

// Snapshot is what every command republishes: the canonical collection, the
// filtered projection, and the derived statistics.
type Snapshot struct {
	Trades         []models.Trade `json:"trades"`
	FilteredTrades []models.Trade `json:"filteredTrades"`
	Stats          Stats          `json:"stats"`
}

// Controller is the composition root of the ledger: it wraps the trade store,
// the P&L calculator and the statistics aggregator behind a small command
// API. Commands are serialized behind a mutex, and the store replaces its
// collection wholesale on every mutation, so readers never observe a torn
// intermediate state.
type Controller struct {
	mu      sync.Mutex
	logger  *zap.Logger
	store   *Store
	persist Persistence
	filters Filters
	stats   Stats

	// Injectable for deterministic tests.
	now   func() time.Time
	newID func() string
}

// NewController loads the initial collection through the persistence adapter
// and bootstraps the ledger. An empty or nil collection is fine; a load
// failure is not.
func NewController(logger *zap.Logger, persist Persistence) (*Controller, error) {
	initial, err := persist.Load()
	if err != nil {
		return nil, fmt.Errorf("could not load initial trade collection: %w", err)
	}

	c := &Controller{
		logger:  logger,
		store:   NewStore(initial),
		persist: persist,
		filters: DefaultFilters(),
		now:     time.Now,
		newID:   uuid.NewString,
	}
	c.stats = CalculateStats(c.store.Snapshot())

	logger.Info("Ledger initialized", zap.Int("trades", c.store.Len()))
	return c, nil
}

// AddTrade assigns a fresh id and creation timestamp, computes the realized
// P&L from the trade's status, appends the trade to the end of the
// collection and republishes the snapshot.
func (c *Controller) AddTrade(input models.Trade) Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	input.ID = c.newID()
	input.CreatedAt = c.now()
	input.PnL = realizedPnL(input)

	c.store.Add(input)
	c.afterMutation()

	c.logger.Info("Trade added",
		zap.String("id", input.ID),
		zap.String("instrument", input.Instrument),
		zap.String("status", input.Status))
	return c.snapshotLocked()
}

// UpdateTrade merges the patch into the matching trade and recomputes its P&L
// from the resulting status. An unknown id is a silent no-op: the collection,
// stats and snapshot are unchanged and nothing is saved.
func (c *Controller) UpdateTrade(id string, patch models.TradePatch) Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	current, ok := c.store.Get(id)
	if !ok {
		c.logger.Warn("Update for unknown trade id ignored", zap.String("id", id))
		return c.snapshotLocked()
	}

	merged := patch.Apply(current)
	merged.PnL = realizedPnL(merged)

	c.store.Update(id, merged)
	c.afterMutation()

	c.logger.Info("Trade updated", zap.String("id", id), zap.String("status", merged.Status))
	return c.snapshotLocked()
}

// DeleteTrade removes the matching trade. An unknown id is a silent no-op.
func (c *Controller) DeleteTrade(id string) Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.store.Delete(id) {
		c.logger.Warn("Delete for unknown trade id ignored", zap.String("id", id))
		return c.snapshotLocked()
	}
	c.afterMutation()

	c.logger.Info("Trade deleted", zap.String("id", id))
	return c.snapshotLocked()
}

// ImportTrades appends a batch of trades, silently dropping entries whose
// broker trade id already exists in the store. Trades without a broker trade
// id never participate in dedup and are always treated as new. When the
// whole batch is dropped the collection is left untouched and stats are not
// recomputed.
func (c *Controller) ImportTrades(batch []models.Trade) Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	survivors := make([]models.Trade, 0, len(batch))
	for _, t := range batch {
		if c.store.HasBrokerTradeID(t.BrokerTradeID) {
			c.logger.Debug("Skipping duplicate broker trade",
				zap.String("broker_trade_id", t.BrokerTradeID))
			continue
		}
		if t.ID == "" {
			t.ID = c.newID()
		}
		if t.CreatedAt.IsZero() {
			t.CreatedAt = c.now()
		}
		t.PnL = realizedPnL(t)
		survivors = append(survivors, t)
	}

	if len(survivors) == 0 {
		c.logger.Info("Import batch contained no new trades", zap.Int("batch_size", len(batch)))
		return c.snapshotLocked()
	}

	c.store.Append(survivors)
	c.afterMutation()

	c.logger.Info("Trades imported",
		zap.Int("imported", len(survivors)),
		zap.Int("skipped", len(batch)-len(survivors)))
	return c.snapshotLocked()
}

// SetFilters merges the patch into the filter state. Filters shape only the
// filtered projection: the canonical collection and stats are untouched, and
// nothing is persisted.
func (c *Controller) SetFilters(patch FilterPatch) Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.filters = patch.Apply(c.filters)
	return c.snapshotLocked()
}

// Trades returns a copy of the canonical collection in insertion order.
func (c *Controller) Trades() []models.Trade {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.store.Snapshot()
}

// FilteredTrades returns the current filter projection, recomputed on every
// call.
func (c *Controller) FilteredTrades() []models.Trade {
	c.mu.Lock()
	defer c.mu.Unlock()
	return applyFilters(c.store.Snapshot(), c.filters, c.now())
}

// GetStats returns the current statistics snapshot.
func (c *Controller) GetStats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stats
}

// GetFilters returns the current filter state.
func (c *Controller) GetFilters() Filters {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.filters
}

// afterMutation recomputes the statistics over the full collection and hands
// the complete collection to the persistence adapter. A save failure is
// logged but does not fail the command; the in-memory ledger stays
// authoritative for the session.
func (c *Controller) afterMutation() {
	trades := c.store.Snapshot()
	c.stats = CalculateStats(trades)

	if err := c.persist.Save(trades); err != nil {
		c.logger.Error("Failed to persist trade collection", zap.Error(err))
	}
}

func (c *Controller) snapshotLocked() Snapshot {
	trades := c.store.Snapshot()
	return Snapshot{
		Trades:         trades,
		FilteredTrades: applyFilters(trades, c.filters, c.now()),
		Stats:          c.stats,
	}
}
