// services/pricing/seasons.go
package pricing

import (
	"time"

	"go.uber.org/zap"

	"rentora/models"
)

// season is a SeasonalRate with its dates parsed. Slice order preserves
// the vendor's list order, which is the last-resort tie break.
type season struct {
	rate  models.SeasonalRate
	start time.Time
	end   time.Time // inclusive
}

// SeasonTable resolves a calendar date to an overriding daily rate.
// Overlapping seasons are allowed; resolution is deterministic:
// peak > standard > off, ties broken by the latest start date, and
// identical type+start resolved by list position (logged, since it
// indicates upstream data quality).
type SeasonTable struct {
	enabled bool
	seasons []season
}

// NewSeasonTable builds a table from a profile's seasonal configuration.
// Malformed entries are skipped with a warning rather than failing the
// whole quote.
func NewSeasonTable(profile models.PricingProfile) *SeasonTable {
	t := &SeasonTable{enabled: profile.SeasonalPricingEnabled}
	for _, r := range profile.SeasonalRates {
		start, err := models.ParseDate(r.StartDate)
		if err != nil {
			zap.L().Warn("skipping seasonal rate with bad start date",
				zap.String("seasonId", r.ID), zap.String("startDate", r.StartDate))
			continue
		}
		end, err := models.ParseDate(r.EndDate)
		if err != nil {
			zap.L().Warn("skipping seasonal rate with bad end date",
				zap.String("seasonId", r.ID), zap.String("endDate", r.EndDate))
			continue
		}
		if end.Before(start) || r.Price < 0 {
			zap.L().Warn("skipping invalid seasonal rate",
				zap.String("seasonId", r.ID), zap.String("name", r.Name))
			continue
		}
		t.seasons = append(t.seasons, season{rate: r, start: start, end: end})
	}
	return t
}

// Enabled reports whether seasonal pricing applies at all for the profile
// the table was built from.
func (t *SeasonTable) Enabled() bool {
	return t != nil && t.enabled
}

func seasonRank(st models.SeasonType) int {
	switch st {
	case models.SeasonPeak:
		return 2
	case models.SeasonStandard:
		return 1
	case models.SeasonOff:
		return 0
	default:
		return -1
	}
}

// PriceFor returns the overriding daily rate for date, or false when no
// season covers it (caller falls back to the base price). A season with
// start == end prices a single day.
func (t *SeasonTable) PriceFor(date time.Time) (float64, bool) {
	if !t.Enabled() {
		return 0, false
	}
	date = time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)

	best := -1
	for i, s := range t.seasons {
		if date.Before(s.start) || date.After(s.end) {
			continue
		}
		if best == -1 {
			best = i
			continue
		}
		b := t.seasons[best]
		switch {
		case seasonRank(s.rate.Type) > seasonRank(b.rate.Type):
			best = i
		case seasonRank(s.rate.Type) < seasonRank(b.rate.Type):
			// keep current winner
		case s.start.After(b.start):
			// same priority: the most recently targeted override wins
			best = i
		case s.start.Equal(b.start):
			// identical type and start date: last-resort resolution by
			// list position, flagged as an upstream data-quality issue
			zap.L().Warn("overlapping seasons with identical type and start date",
				zap.String("kept", t.seasons[i].rate.ID),
				zap.String("shadowed", b.rate.ID),
				zap.String("date", models.FormatDate(date)))
			best = i
		}
	}
	if best == -1 {
		return 0, false
	}
	return t.seasons[best].rate.Price, true
}
