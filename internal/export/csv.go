package export

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"
	"time"

	"trade-journal-go/internal/models"
)

// Header is the explicit column order of the CSV projection.
var Header = []string{
	"id",
	"instrument_type",
	"instrument",
	"trade_type",
	"entry_date",
	"entry_time",
	"entry_price",
	"quantity",
	"exit_date",
	"exit_time",
	"exit_price",
	"stop_loss",
	"take_profit",
	"risk_reward",
	"status",
	"pnl",
	"fees",
	"strategy",
	"setup",
	"market_condition",
	"tags",
	"notes",
	"created_at",
}

// WriteCSV writes a row-per-trade projection of the collection, one header
// row first, preserving collection order. Tags are joined with ";" so the
// row stays a flat record.
func WriteCSV(w io.Writer, trades []models.Trade) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(Header); err != nil {
		return err
	}

	for _, t := range trades {
		row := []string{
			t.ID,
			t.InstrumentType,
			t.Instrument,
			t.TradeType,
			t.EntryDate,
			t.EntryTime,
			f(t.EntryPrice),
			f(t.Quantity),
			t.ExitDate,
			t.ExitTime,
			f(t.ExitPrice),
			f(t.StopLoss),
			f(t.TakeProfit),
			t.RiskReward,
			t.Status,
			f(t.PnL),
			f(t.Fees),
			t.Strategy,
			t.Setup,
			t.MarketCondition,
			strings.Join(t.Tags, ";"),
			t.Notes,
			t.CreatedAt.Format(time.RFC3339),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func f(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}
