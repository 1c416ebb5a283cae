package ledger

import (
	"time"

	"trade-journal-go/internal/models"
)

// Filter values shared by several fields; "all" disables a criterion.
const (
	FilterAll = "all"

	DateRange7d  = "7d"
	DateRange30d = "30d"
	DateRange90d = "90d"

	OutcomeWinning = "winning"
	OutcomeLosing  = "losing"
)

// Filters is the view-only filter state. It never affects the canonical
// collection or the statistics snapshot; it only shapes the filtered
// projection returned alongside them.
type Filters struct {
	DateRange  string `json:"dateRange"`
	Instrument string `json:"instrument"`
	Strategy   string `json:"strategy"`
	Outcome    string `json:"outcome"`
}

// DefaultFilters returns the wide-open filter state.
func DefaultFilters() Filters {
	return Filters{
		DateRange:  FilterAll,
		Instrument: FilterAll,
		Strategy:   FilterAll,
		Outcome:    FilterAll,
	}
}

// FilterPatch is a partial filter update; nil fields keep their current value.
type FilterPatch struct {
	DateRange  *string `json:"dateRange,omitempty"`
	Instrument *string `json:"instrument,omitempty"`
	Strategy   *string `json:"strategy,omitempty"`
	Outcome    *string `json:"outcome,omitempty"`
}

// Apply merges the patch over the current filter state.
func (p FilterPatch) Apply(f Filters) Filters {
	if p.DateRange != nil {
		f.DateRange = *p.DateRange
	}
	if p.Instrument != nil {
		f.Instrument = *p.Instrument
	}
	if p.Strategy != nil {
		f.Strategy = *p.Strategy
	}
	if p.Outcome != nil {
		f.Outcome = *p.Outcome
	}
	return f
}

// applyFilters projects the collection through the filter state. The
// projection is recomputed on every read and never cached. Trades whose
// entry date fails to parse are dropped from date-ranged views, mirroring
// how an unparseable date can never land inside a window.
func applyFilters(trades []models.Trade, f Filters, now time.Time) []models.Trade {
	var cutoff time.Time
	switch f.DateRange {
	case DateRange7d:
		cutoff = now.AddDate(0, 0, -7)
	case DateRange30d:
		cutoff = now.AddDate(0, 0, -30)
	case DateRange90d:
		cutoff = now.AddDate(0, 0, -90)
	}

	out := make([]models.Trade, 0, len(trades))
	for _, t := range trades {
		if !cutoff.IsZero() {
			entry, err := time.Parse(models.DateLayout, t.EntryDate)
			if err != nil || entry.Before(cutoff) {
				continue
			}
		}
		if f.Instrument != FilterAll && f.Instrument != "" && t.Instrument != f.Instrument {
			continue
		}
		if f.Strategy != FilterAll && f.Strategy != "" && t.Strategy != f.Strategy {
			continue
		}
		switch f.Outcome {
		case OutcomeWinning:
			if !(t.PnL > 0) {
				continue
			}
		case OutcomeLosing:
			if !(t.PnL < 0) {
				continue
			}
		}
		out = append(out, t)
	}
	return out
}
