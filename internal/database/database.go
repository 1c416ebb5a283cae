package database

import (
	"fmt"

	"trade-journal-go/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase creates a new database connection and performs auto-migration
// for the journal schema.
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(&models.Trade{}, &models.Template{}); err != nil {
		return nil, fmt.Errorf("failed to auto-migrate database: %w", err)
	}

	return db, nil
}

// TradeStore is the persistence adapter behind the ledger: it loads the full
// trade collection at startup and rewrites it wholesale after every mutating
// command. It never applies diffs, so the database always mirrors the last
// published in-memory snapshot.
type TradeStore struct {
	db *gorm.DB
}

// NewTradeStore wraps an open database handle.
func NewTradeStore(db *gorm.DB) *TradeStore {
	return &TradeStore{db: db}
}

// Load returns all persisted trades in their original collection order. An
// empty table yields an empty slice, not an error.
func (s *TradeStore) Load() ([]models.Trade, error) {
	var trades []models.Trade
	if err := s.db.Order("position asc").Find(&trades).Error; err != nil {
		return nil, fmt.Errorf("failed to load trades: %w", err)
	}
	return trades, nil
}

// Save replaces the stored collection with the given one inside a single
// transaction. Positions are assigned from slice order so Load reproduces
// the collection exactly.
func (s *TradeStore) Save(trades []models.Trade) error {
	rows := make([]models.Trade, len(trades))
	copy(rows, trades)
	for i := range rows {
		rows[i].Position = i
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.Trade{}).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.Create(&rows).Error
	})
	if err != nil {
		return fmt.Errorf("failed to save trades: %w", err)
	}
	return nil
}
