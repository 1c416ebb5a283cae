package models

import "time"

// Template is a named bag of default trade field values. IncludedFields lists
// which defaults actually apply when the template is used; everything else in
// Fields is ignored. Templates are applied before a trade input reaches the
// ledger — the ledger itself has no template awareness.
type Template struct {
	ID             uint           `gorm:"primaryKey" json:"id"`
	Name           string         `gorm:"uniqueIndex" json:"name"`
	Fields         TemplateFields `gorm:"serializer:json" json:"fields"`
	IncludedFields []string       `gorm:"serializer:json" json:"includedFields"`
	CreatedAt      time.Time      `json:"createdAt"`
}

// TemplateFields holds the defaultable subset of trade fields. Execution
// fields (prices, dates, status) are deliberately absent: a template seeds a
// new entry, it does not pre-fill an outcome.
type TemplateFields struct {
	InstrumentType  string   `json:"instrumentType,omitempty"`
	Instrument      string   `json:"instrument,omitempty"`
	TradeType       string   `json:"tradeType,omitempty"`
	Quantity        float64  `json:"quantity,omitempty"`
	StopLoss        float64  `json:"stopLoss,omitempty"`
	TakeProfit      float64  `json:"takeProfit,omitempty"`
	RiskReward      string   `json:"riskReward,omitempty"`
	Fees            float64  `json:"fees,omitempty"`
	Strategy        string   `json:"strategy,omitempty"`
	Setup           string   `json:"setup,omitempty"`
	MarketCondition string   `json:"marketCondition,omitempty"`
	Tags            []string `json:"tags,omitempty"`
	Notes           string   `json:"notes,omitempty"`
}
