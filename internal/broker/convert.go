package broker

import (
	"time"

	"trade-journal-go/internal/models"
)

// ConvertTrade maps a broker-reported trade onto the journal's canonical
// trade schema. BUY maps to long and SELL to short; a trade with a close
// timestamp and an exit price arrives closed, anything else arrives open
// with a zero P&L. The ledger recomputes P&L on import either way.
func ConvertTrade(bt BrokerTrade) models.Trade {
	tradeType := models.TradeTypeLong
	if bt.Side == "SELL" {
		tradeType = models.TradeTypeShort
	}

	opened := time.UnixMilli(bt.OpenedAt).UTC()
	t := models.Trade{
		InstrumentType: models.InstrumentCrypto,
		Instrument:     bt.Symbol,
		TradeType:      tradeType,
		EntryDate:      opened.Format(models.DateLayout),
		EntryTime:      opened.Format("15:04"),
		EntryPrice:     bt.EntryPrice,
		Quantity:       bt.Quantity,
		Fees:           bt.Commission,
		Status:         models.StatusOpen,
		BrokerTradeID:  bt.TradeID,
	}

	if bt.ClosedAt > 0 && bt.ExitPrice != 0 {
		closedAt := time.UnixMilli(bt.ClosedAt).UTC()
		t.ExitDate = closedAt.Format(models.DateLayout)
		t.ExitTime = closedAt.Format("15:04")
		t.ExitPrice = bt.ExitPrice
		t.Status = models.StatusClosed
	}

	return t
}

// ConvertTrades maps a batch in input order.
func ConvertTrades(bts []BrokerTrade) []models.Trade {
	out := make([]models.Trade, 0, len(bts))
	for _, bt := range bts {
		out = append(out, ConvertTrade(bt))
	}
	return out
}
