package ledger

import (
	"math"

	"trade-journal-go/internal/models"
)

// Stats is the aggregate performance snapshot derived from the closed subset
// of the trade collection. It is a pure projection: recomputed wholesale on
// every change, never patched incrementally.
type Stats struct {
	TotalTrades  int     `json:"totalTrades"`
	WinRate      float64 `json:"winRate"`
	TotalPnL     float64 `json:"totalPnL"`
	AvgWin       float64 `json:"avgWin"`
	AvgLoss      float64 `json:"avgLoss"`
	ProfitFactor float64 `json:"profitFactor"`
	MaxDrawdown  float64 `json:"maxDrawdown"`

	// SharpeRatio is a placeholder and always 0.
	SharpeRatio float64 `json:"sharpeRatio"`
}

// CalculateStats computes the performance snapshot over the full collection.
// Only trades with status "closed" participate; an empty closed subset yields
// the zero snapshot. Trades with pnl == 0 count toward TotalTrades but sit in
// neither the win nor the loss bucket.
//
// MaxDrawdown walks the closed trades in collection order (not re-sorted by
// date), tracking the running cumulative P&L against its running peak.
func CalculateStats(trades []models.Trade) Stats {
	var closed []models.Trade
	for _, t := range trades {
		if t.Status == models.StatusClosed {
			closed = append(closed, t)
		}
	}
	if len(closed) == 0 {
		return Stats{}
	}

	var (
		winCount    int
		lossCount   int
		grossProfit float64
		grossLoss   float64
		totalPnL    float64
	)
	for _, t := range closed {
		totalPnL += t.PnL
		switch {
		case t.PnL > 0:
			winCount++
			grossProfit += t.PnL
		case t.PnL < 0:
			lossCount++
			grossLoss += -t.PnL
		}
	}

	var avgWin, avgLoss float64
	if winCount > 0 {
		avgWin = grossProfit / float64(winCount)
	}
	if lossCount > 0 {
		avgLoss = grossLoss / float64(lossCount)
	}

	var profitFactor float64
	if avgLoss > 0 {
		profitFactor = (avgWin * float64(winCount)) / (avgLoss * float64(lossCount))
	}

	var running, peak, maxDrawdown float64
	for _, t := range closed {
		running += t.PnL
		if running > peak {
			peak = running
		}
		if dd := peak - running; dd > maxDrawdown {
			maxDrawdown = dd
		}
	}

	return Stats{
		TotalTrades:  len(closed),
		WinRate:      round2(float64(winCount) / float64(len(closed)) * 100),
		TotalPnL:     round2(totalPnL),
		AvgWin:       round2(avgWin),
		AvgLoss:      round2(avgLoss),
		ProfitFactor: round2(profitFactor),
		MaxDrawdown:  round2(maxDrawdown),
		SharpeRatio:  0,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
