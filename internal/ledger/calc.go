package ledger

import "trade-journal-go/internal/models"

// CalculatePnL computes the realized profit or loss for a single trade.
// A zero exit price means the position has not been exited, which yields 0
// rather than an error. The result is not rounded; callers that display or
// aggregate the value decide on rounding. Non-finite inputs propagate
// (NaN in, NaN out) — upstream validation is responsible for rejecting them.
func CalculatePnL(t models.Trade) float64 {
	if t.ExitPrice == 0 {
		return 0
	}
	if t.TradeType == models.TradeTypeShort {
		return (t.EntryPrice-t.ExitPrice)*t.Quantity - t.Fees
	}
	return (t.ExitPrice-t.EntryPrice)*t.Quantity - t.Fees
}

// realizedPnL returns the P&L a trade should carry given its status: closed
// trades get the computed value, everything else is pinned to 0 even when
// exit fields happen to be populated.
func realizedPnL(t models.Trade) float64 {
	if t.Status != models.StatusClosed {
		return 0
	}
	return CalculatePnL(t)
}
