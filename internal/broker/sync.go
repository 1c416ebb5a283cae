package broker

import (
	"context"
	"fmt"
	"time"

	"trade-journal-go/internal/config"
	"trade-journal-go/internal/ledger"

	"go.uber.org/zap"
)

// SyncEngine periodically pulls the broker trade history and feeds it into
// the ledger. The ledger's broker-trade-id dedup makes every poll
// idempotent, so the engine can re-fetch overlapping windows without
// duplicating journal entries.
type SyncEngine struct {
	logger     *zap.Logger
	cfg        *config.Config
	client     ClientInterface
	controller *ledger.Controller
	lastSync   time.Time
}

// NewSyncEngine creates a new broker sync engine.
func NewSyncEngine(logger *zap.Logger, cfg *config.Config, client ClientInterface, controller *ledger.Controller) *SyncEngine {
	return &SyncEngine{
		logger:     logger,
		cfg:        cfg,
		client:     client,
		controller: controller,
	}
}

// Run starts the sync engine's polling loop and blocks until the context is
// cancelled. One sync round runs immediately on start.
func (e *SyncEngine) Run(ctx context.Context) {
	interval := time.Duration(e.cfg.Broker.SyncInterval) * time.Second
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	e.logger.Info("Starting broker sync loop", zap.Duration("interval", interval))

	if err := e.SyncOnce(ctx); err != nil {
		e.logger.Error("Broker sync failed", zap.Error(err))
	}

	for {
		select {
		case <-ctx.Done():
			e.logger.Info("Stopping broker sync engine...")
			return
		case <-ticker.C:
			if err := e.SyncOnce(ctx); err != nil {
				e.logger.Error("Broker sync failed", zap.Error(err))
			}
		}
	}
}

// SyncOnce performs a single sync round: fetch the trade history since the
// last successful round, convert it to journal trades and import the batch.
func (e *SyncEngine) SyncOnce(ctx context.Context) error {
	since := e.lastSync
	// First round backfills the last 90 days.
	if since.IsZero() {
		since = time.Now().AddDate(0, 0, -90)
	}

	brokerTrades, err := e.client.GetTradeHistory(ctx, since, e.cfg.Broker.PageSize)
	if err != nil {
		return fmt.Errorf("could not fetch broker trade history: %w", err)
	}

	if len(brokerTrades) == 0 {
		e.logger.Debug("No broker trades in window", zap.Time("since", since))
		e.lastSync = time.Now()
		return nil
	}

	snapshot := e.controller.ImportTrades(ConvertTrades(brokerTrades))
	e.lastSync = time.Now()

	e.logger.Info("Broker sync round complete",
		zap.Int("fetched", len(brokerTrades)),
		zap.Int("journal_size", len(snapshot.Trades)))
	return nil
}
