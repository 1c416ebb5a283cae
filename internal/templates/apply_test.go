package templates

import (
	"testing"

	"trade-journal-go/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestApply(t *testing.T) {
	tpl := models.Template{
		Name: "Morning breakout",
		Fields: models.TemplateFields{
			InstrumentType: models.InstrumentStocks,
			Instrument:     "AAPL",
			TradeType:      models.TradeTypeLong,
			Quantity:       100,
			Strategy:       "breakout",
			Setup:          "opening range",
			Tags:           []string{"morning", "momentum"},
			Notes:          "template note, should not apply",
		},
		IncludedFields: []string{
			FieldInstrumentType,
			FieldInstrument,
			FieldTradeType,
			FieldQuantity,
			FieldStrategy,
			FieldSetup,
			FieldTags,
		},
	}

	input := models.Trade{
		EntryDate:  "2024-03-15",
		EntryPrice: 187.5,
		Status:     models.StatusOpen,
		Notes:      "my own note",
	}

	merged := Apply(tpl, input)

	// Included defaults land.
	assert.Equal(t, models.InstrumentStocks, merged.InstrumentType)
	assert.Equal(t, "AAPL", merged.Instrument)
	assert.Equal(t, models.TradeTypeLong, merged.TradeType)
	assert.Equal(t, 100.0, merged.Quantity)
	assert.Equal(t, "breakout", merged.Strategy)
	assert.Equal(t, "opening range", merged.Setup)
	assert.Equal(t, []string{"morning", "momentum"}, merged.Tags)

	// Excluded fields and execution fields pass through untouched.
	assert.Equal(t, "my own note", merged.Notes)
	assert.Equal(t, "2024-03-15", merged.EntryDate)
	assert.Equal(t, 187.5, merged.EntryPrice)
	assert.Equal(t, models.StatusOpen, merged.Status)
}

func TestApplyIgnoresUnknownFieldNames(t *testing.T) {
	tpl := models.Template{
		Fields:         models.TemplateFields{Strategy: "breakout"},
		IncludedFields: []string{"bogus", FieldStrategy},
	}

	merged := Apply(tpl, models.Trade{})

	assert.Equal(t, "breakout", merged.Strategy)
}

func TestApplyCopiesTags(t *testing.T) {
	tpl := models.Template{
		Fields:         models.TemplateFields{Tags: []string{"a"}},
		IncludedFields: []string{FieldTags},
	}

	merged := Apply(tpl, models.Trade{})
	merged.Tags[0] = "mutated"

	assert.Equal(t, []string{"a"}, tpl.Fields.Tags)
}
