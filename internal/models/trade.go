package models

import "time"

// Instrument types supported by the journal.
const (
	InstrumentStocks  = "stocks"
	InstrumentOptions = "options"
	InstrumentFutures = "futures"
	InstrumentForex   = "forex"
	InstrumentCrypto  = "crypto"
)

// Trade direction.
const (
	TradeTypeLong  = "long"
	TradeTypeShort = "short"
)

// Trade lifecycle status. Only StatusClosed trades carry a realized P&L and
// participate in the statistics aggregation.
const (
	StatusOpen    = "open"
	StatusClosed  = "closed"
	StatusPartial = "partial"
)

// DateLayout is the wire format for EntryDate and ExitDate.
const DateLayout = "2006-01-02"

// Trade is the canonical journal record. Dates are stored as "2006-01-02"
// strings and times as "15:04" strings, matching the form inputs they come
// from. ExitPrice of 0 means "not yet exited".
type Trade struct {
	ID              string    `gorm:"primaryKey" json:"id"`
	InstrumentType  string    `json:"instrumentType"`
	Instrument      string    `json:"instrument"`
	TradeType       string    `json:"tradeType"`
	EntryDate       string    `json:"entryDate"`
	EntryTime       string    `json:"entryTime"`
	EntryPrice      float64   `json:"entryPrice"`
	Quantity        float64   `json:"quantity"`
	ExitDate        string    `json:"exitDate"`
	ExitTime        string    `json:"exitTime"`
	ExitPrice       float64   `json:"exitPrice"`
	StopLoss        float64   `json:"stopLoss"`
	TakeProfit      float64   `json:"takeProfit"`
	RiskReward      string    `json:"riskReward"`
	Status          string    `json:"status"`
	PnL             float64   `json:"pnl"`
	Fees            float64   `json:"fees"`
	Strategy        string    `json:"strategy"`
	Setup           string    `json:"setup"`
	MarketCondition string    `json:"marketCondition"`
	Tags            []string  `gorm:"serializer:json" json:"tags"`
	Notes           string    `json:"notes"`
	BrokerTradeID   string    `gorm:"index" json:"brokerTradeId,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`

	// Position records the trade's slot in the collection so insertion
	// order survives a save/load round trip. Not part of the API surface.
	Position int `gorm:"index" json:"-"`
}

// TradePatch is a partial trade used by update commands. Nil fields are left
// untouched; set fields override the existing value. This is the one
// normalization point for partial input, so core logic only ever sees a full
// Trade.
type TradePatch struct {
	InstrumentType  *string   `json:"instrumentType,omitempty"`
	Instrument      *string   `json:"instrument,omitempty"`
	TradeType       *string   `json:"tradeType,omitempty"`
	EntryDate       *string   `json:"entryDate,omitempty"`
	EntryTime       *string   `json:"entryTime,omitempty"`
	EntryPrice      *float64  `json:"entryPrice,omitempty"`
	Quantity        *float64  `json:"quantity,omitempty"`
	ExitDate        *string   `json:"exitDate,omitempty"`
	ExitTime        *string   `json:"exitTime,omitempty"`
	ExitPrice       *float64  `json:"exitPrice,omitempty"`
	StopLoss        *float64  `json:"stopLoss,omitempty"`
	TakeProfit      *float64  `json:"takeProfit,omitempty"`
	RiskReward      *string   `json:"riskReward,omitempty"`
	Status          *string   `json:"status,omitempty"`
	Fees            *float64  `json:"fees,omitempty"`
	Strategy        *string   `json:"strategy,omitempty"`
	Setup           *string   `json:"setup,omitempty"`
	MarketCondition *string   `json:"marketCondition,omitempty"`
	Tags            *[]string `json:"tags,omitempty"`
	Notes           *string   `json:"notes,omitempty"`
}

// Apply merges the patch over an existing trade and returns the result.
// Identity fields (ID, CreatedAt, BrokerTradeID) are never patchable, and PnL
// is always recomputed by the ledger after a merge.
func (p TradePatch) Apply(t Trade) Trade {
	if p.InstrumentType != nil {
		t.InstrumentType = *p.InstrumentType
	}
	if p.Instrument != nil {
		t.Instrument = *p.Instrument
	}
	if p.TradeType != nil {
		t.TradeType = *p.TradeType
	}
	if p.EntryDate != nil {
		t.EntryDate = *p.EntryDate
	}
	if p.EntryTime != nil {
		t.EntryTime = *p.EntryTime
	}
	if p.EntryPrice != nil {
		t.EntryPrice = *p.EntryPrice
	}
	if p.Quantity != nil {
		t.Quantity = *p.Quantity
	}
	if p.ExitDate != nil {
		t.ExitDate = *p.ExitDate
	}
	if p.ExitTime != nil {
		t.ExitTime = *p.ExitTime
	}
	if p.ExitPrice != nil {
		t.ExitPrice = *p.ExitPrice
	}
	if p.StopLoss != nil {
		t.StopLoss = *p.StopLoss
	}
	if p.TakeProfit != nil {
		t.TakeProfit = *p.TakeProfit
	}
	if p.RiskReward != nil {
		t.RiskReward = *p.RiskReward
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
	if p.Fees != nil {
		t.Fees = *p.Fees
	}
	if p.Strategy != nil {
		t.Strategy = *p.Strategy
	}
	if p.Setup != nil {
		t.Setup = *p.Setup
	}
	if p.MarketCondition != nil {
		t.MarketCondition = *p.MarketCondition
	}
	if p.Tags != nil {
		tags := make([]string, len(*p.Tags))
		copy(tags, *p.Tags)
		t.Tags = tags
	}
	if p.Notes != nil {
		t.Notes = *p.Notes
	}
	return t
}
