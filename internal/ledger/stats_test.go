package ledger

import (
	"testing"

	"trade-journal-go/internal/models"

	"github.com/stretchr/testify/assert"
)

// closedWithPnL builds a closed trade carrying a fixed pnl, the only fields
// the aggregator looks at.
func closedWithPnL(pnl float64) models.Trade {
	return models.Trade{Status: models.StatusClosed, PnL: pnl}
}

func TestCalculateStatsZeroValue(t *testing.T) {
	testCases := []struct {
		name   string
		trades []models.Trade
	}{
		{name: "Empty collection", trades: nil},
		{
			name: "Only open trades",
			trades: []models.Trade{
				{Status: models.StatusOpen, PnL: 0},
			},
		},
		{
			name: "Only partial trades",
			trades: []models.Trade{
				{Status: models.StatusPartial, PnL: 0},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, Stats{}, CalculateStats(tc.trades))
		})
	}
}

func TestCalculateStatsWinRate(t *testing.T) {
	trades := []models.Trade{
		closedWithPnL(100),
		closedWithPnL(-50),
		closedWithPnL(50),
	}

	stats := CalculateStats(trades)

	assert.Equal(t, 3, stats.TotalTrades)
	assert.Equal(t, 66.67, stats.WinRate) // 2 of 3
	assert.Equal(t, 75.0, stats.AvgWin)
	assert.Equal(t, 50.0, stats.AvgLoss) // absolute value
	assert.Equal(t, 100.0, stats.TotalPnL)
	assert.Equal(t, 3.0, stats.ProfitFactor) // 150 / 50
	assert.Equal(t, 0.0, stats.SharpeRatio)
}

func TestCalculateStatsBreakEvenTrades(t *testing.T) {
	// pnl == 0 counts toward TotalTrades but neither bucket.
	trades := []models.Trade{
		closedWithPnL(100),
		closedWithPnL(0),
		closedWithPnL(-25),
	}

	stats := CalculateStats(trades)

	assert.Equal(t, 3, stats.TotalTrades)
	assert.Equal(t, 33.33, stats.WinRate) // 1 win of 3 closed
	assert.Equal(t, 100.0, stats.AvgWin)
	assert.Equal(t, 25.0, stats.AvgLoss)
}

func TestCalculateStatsNoLosses(t *testing.T) {
	trades := []models.Trade{
		closedWithPnL(10),
		closedWithPnL(20),
	}

	stats := CalculateStats(trades)

	assert.Equal(t, 0.0, stats.AvgLoss)
	assert.Equal(t, 0.0, stats.ProfitFactor) // no loss bucket means 0, not +Inf
	assert.Equal(t, 100.0, stats.WinRate)
}

func TestCalculateStatsMaxDrawdown(t *testing.T) {
	// Running totals 100,70,120,40,60; peaks 100,100,120,120,120;
	// drawdowns 0,30,0,80,60 -> max 80.
	trades := []models.Trade{
		closedWithPnL(100),
		closedWithPnL(-30),
		closedWithPnL(50),
		closedWithPnL(-80),
		closedWithPnL(20),
	}

	stats := CalculateStats(trades)

	assert.Equal(t, 80.0, stats.MaxDrawdown)
}

func TestCalculateStatsMaxDrawdownNeverNegative(t *testing.T) {
	trades := []models.Trade{
		closedWithPnL(10),
		closedWithPnL(20),
		closedWithPnL(30),
	}
	assert.Equal(t, 0.0, CalculateStats(trades).MaxDrawdown)
}

func TestCalculateStatsCollectionOrder(t *testing.T) {
	// Drawdown walks collection order, not entry-date order: the loss coming
	// first makes the drawdown equal to the loss itself.
	trades := []models.Trade{
		closedWithPnL(-80),
		closedWithPnL(100),
	}
	assert.Equal(t, 80.0, CalculateStats(trades).MaxDrawdown)
}

func TestCalculateStatsIgnoresNonClosed(t *testing.T) {
	trades := []models.Trade{
		closedWithPnL(100),
		{Status: models.StatusOpen, PnL: 0},
		{Status: models.StatusPartial, PnL: 0},
		closedWithPnL(-40),
	}

	stats := CalculateStats(trades)

	assert.Equal(t, 2, stats.TotalTrades)
	assert.Equal(t, 60.0, stats.TotalPnL)
	assert.Equal(t, 50.0, stats.WinRate)
}

func TestCalculateStatsIdempotent(t *testing.T) {
	trades := []models.Trade{
		closedWithPnL(12.345),
		closedWithPnL(-6.789),
		closedWithPnL(0.01),
	}

	first := CalculateStats(trades)
	second := CalculateStats(trades)

	assert.Equal(t, first, second)
}

func TestCalculateStatsRounding(t *testing.T) {
	trades := []models.Trade{
		closedWithPnL(10.005),
		closedWithPnL(-3.3333),
	}

	stats := CalculateStats(trades)

	assert.Equal(t, 6.67, stats.TotalPnL)
	assert.Equal(t, 50.0, stats.WinRate)
	assert.Equal(t, 3.33, stats.AvgLoss)
}
