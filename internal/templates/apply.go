package templates

import "trade-journal-go/internal/models"

// Field names accepted in Template.IncludedFields. Unknown names are ignored.
const (
	FieldInstrumentType  = "instrumentType"
	FieldInstrument      = "instrument"
	FieldTradeType       = "tradeType"
	FieldQuantity        = "quantity"
	FieldStopLoss        = "stopLoss"
	FieldTakeProfit      = "takeProfit"
	FieldRiskReward      = "riskReward"
	FieldFees            = "fees"
	FieldStrategy        = "strategy"
	FieldSetup           = "setup"
	FieldMarketCondition = "marketCondition"
	FieldTags            = "tags"
	FieldNotes           = "notes"
)

// Apply copies the template's included default values onto a trade input and
// returns the result. Only fields named in IncludedFields are touched; the
// rest of the input passes through untouched. The ledger never sees the
// template — callers apply it first and issue the command with the merged
// input.
func Apply(tpl models.Template, input models.Trade) models.Trade {
	for _, field := range tpl.IncludedFields {
		switch field {
		case FieldInstrumentType:
			input.InstrumentType = tpl.Fields.InstrumentType
		case FieldInstrument:
			input.Instrument = tpl.Fields.Instrument
		case FieldTradeType:
			input.TradeType = tpl.Fields.TradeType
		case FieldQuantity:
			input.Quantity = tpl.Fields.Quantity
		case FieldStopLoss:
			input.StopLoss = tpl.Fields.StopLoss
		case FieldTakeProfit:
			input.TakeProfit = tpl.Fields.TakeProfit
		case FieldRiskReward:
			input.RiskReward = tpl.Fields.RiskReward
		case FieldFees:
			input.Fees = tpl.Fields.Fees
		case FieldStrategy:
			input.Strategy = tpl.Fields.Strategy
		case FieldSetup:
			input.Setup = tpl.Fields.Setup
		case FieldMarketCondition:
			input.MarketCondition = tpl.Fields.MarketCondition
		case FieldTags:
			tags := make([]string, len(tpl.Fields.Tags))
			copy(tags, tpl.Fields.Tags)
			input.Tags = tags
		case FieldNotes:
			input.Notes = tpl.Fields.Notes
		}
	}
	return input
}
