package database

import (
	"path/filepath"
	"testing"
	"time"

	"trade-journal-go/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *TradeStore {
	t.Helper()
	db, err := NewDatabase(filepath.Join(t.TempDir(), "journal.db"))
	require.NoError(t, err)
	return NewTradeStore(db)
}

func TestLoadEmptyDatabase(t *testing.T) {
	store := newTestStore(t)

	trades, err := store.Load()

	require.NoError(t, err)
	assert.Empty(t, trades)
}

func TestSaveLoadRoundTripPreservesOrder(t *testing.T) {
	store := newTestStore(t)

	created := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	trades := []models.Trade{
		{ID: "c", Instrument: "MSFT", Status: models.StatusOpen, Tags: []string{"swing"}, CreatedAt: created},
		{ID: "a", Instrument: "AAPL", Status: models.StatusClosed, PnL: 95, CreatedAt: created},
		{ID: "b", Instrument: "EURUSD", Status: models.StatusClosed, PnL: -12.5, Tags: []string{"news", "fade"}, CreatedAt: created},
	}

	require.NoError(t, store.Save(trades))

	loaded, err := store.Load()
	require.NoError(t, err)
	require.Len(t, loaded, 3)

	// Collection order is insertion order, not id or date order.
	assert.Equal(t, "c", loaded[0].ID)
	assert.Equal(t, "a", loaded[1].ID)
	assert.Equal(t, "b", loaded[2].ID)
	assert.Equal(t, []string{"news", "fade"}, loaded[2].Tags)
	assert.Equal(t, 95.0, loaded[1].PnL)
}

func TestSaveReplacesWholeCollection(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Save([]models.Trade{{ID: "a"}, {ID: "b"}}))
	require.NoError(t, store.Save([]models.Trade{{ID: "b"}}))

	loaded, err := store.Load()
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "b", loaded[0].ID)
}

func TestSaveEmptyCollectionClearsTable(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Save([]models.Trade{{ID: "a"}}))
	require.NoError(t, store.Save(nil))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestSaveDoesNotMutateCallerSlice(t *testing.T) {
	store := newTestStore(t)

	trades := []models.Trade{{ID: "a", Position: 99}}
	require.NoError(t, store.Save(trades))

	assert.Equal(t, 99, trades[0].Position)
}
