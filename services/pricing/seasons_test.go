package pricing

import (
	"testing"
	"time"

	"rentora/models"
)

func date(s string) time.Time {
	t, err := models.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return t
}

func profileWithSeasons(enabled bool, seasons ...models.SeasonalRate) models.PricingProfile {
	return models.PricingProfile{
		BasePrice:              50,
		SeasonalPricingEnabled: enabled,
		SeasonalRates:          seasons,
	}
}

func TestPriceForNoMatchFallsThrough(t *testing.T) {
	table := NewSeasonTable(profileWithSeasons(true, models.SeasonalRate{
		ID: "s1", Name: "Summer", StartDate: "2024-06-01", EndDate: "2024-08-31",
		Price: 80, Type: models.SeasonPeak,
	}))

	if _, ok := table.PriceFor(date("2024-05-31")); ok {
		t.Fatal("expected no seasonal price the day before the season starts")
	}
	if _, ok := table.PriceFor(date("2024-09-01")); ok {
		t.Fatal("expected no seasonal price the day after the season ends")
	}
	if p, ok := table.PriceFor(date("2024-06-01")); !ok || p != 80 {
		t.Fatalf("expected 80 on the first season day, got %v (ok=%v)", p, ok)
	}
	if p, ok := table.PriceFor(date("2024-08-31")); !ok || p != 80 {
		t.Fatalf("expected 80 on the last season day (inclusive), got %v (ok=%v)", p, ok)
	}
}

func TestPriceForDisabledTable(t *testing.T) {
	table := NewSeasonTable(profileWithSeasons(false, models.SeasonalRate{
		ID: "s1", StartDate: "2024-06-01", EndDate: "2024-08-31", Price: 80, Type: models.SeasonPeak,
	}))
	if _, ok := table.PriceFor(date("2024-07-15")); ok {
		t.Fatal("disabled seasonal pricing must never override the base price")
	}

	var nilTable *SeasonTable
	if _, ok := nilTable.PriceFor(date("2024-07-15")); ok {
		t.Fatal("nil table must report no match")
	}
}

func TestPriceForSingleDaySeason(t *testing.T) {
	table := NewSeasonTable(profileWithSeasons(true, models.SeasonalRate{
		ID: "ny", Name: "New Year", StartDate: "2024-12-31", EndDate: "2024-12-31",
		Price: 150, Type: models.SeasonPeak,
	}))
	if p, ok := table.PriceFor(date("2024-12-31")); !ok || p != 150 {
		t.Fatalf("start==end must price that single day, got %v (ok=%v)", p, ok)
	}
	if _, ok := table.PriceFor(date("2025-01-01")); ok {
		t.Fatal("single-day season must not bleed into the next day")
	}
}

func TestPriceForTypePriority(t *testing.T) {
	// A date covered by both peak and standard resolves to peak,
	// regardless of list order.
	table := NewSeasonTable(profileWithSeasons(true,
		models.SeasonalRate{ID: "std", StartDate: "2024-07-01", EndDate: "2024-07-31", Price: 60, Type: models.SeasonStandard},
		models.SeasonalRate{ID: "peak", StartDate: "2024-07-10", EndDate: "2024-07-20", Price: 95, Type: models.SeasonPeak},
		models.SeasonalRate{ID: "off", StartDate: "2024-07-01", EndDate: "2024-07-31", Price: 40, Type: models.SeasonOff},
	))

	if p, _ := table.PriceFor(date("2024-07-15")); p != 95 {
		t.Fatalf("peak must beat standard and off, got %v", p)
	}
	if p, _ := table.PriceFor(date("2024-07-05")); p != 60 {
		t.Fatalf("standard must beat off outside the peak window, got %v", p)
	}
}

func TestPriceForLatestStartTiebreak(t *testing.T) {
	table := NewSeasonTable(profileWithSeasons(true,
		models.SeasonalRate{ID: "wide", StartDate: "2024-07-01", EndDate: "2024-08-31", Price: 70, Type: models.SeasonPeak},
		models.SeasonalRate{ID: "narrow", StartDate: "2024-07-20", EndDate: "2024-07-25", Price: 110, Type: models.SeasonPeak},
	))
	// Same type: the season with the later start (the more specific
	// override) wins inside the overlap.
	if p, _ := table.PriceFor(date("2024-07-22")); p != 110 {
		t.Fatalf("later-start season must win the tie, got %v", p)
	}
	if p, _ := table.PriceFor(date("2024-07-10")); p != 70 {
		t.Fatalf("outside the narrow window the wide season applies, got %v", p)
	}
}

func TestPriceForIdenticalTypeAndStart(t *testing.T) {
	// Last resort: identical type and start resolve by list position.
	table := NewSeasonTable(profileWithSeasons(true,
		models.SeasonalRate{ID: "first", StartDate: "2024-07-01", EndDate: "2024-07-31", Price: 70, Type: models.SeasonPeak},
		models.SeasonalRate{ID: "second", StartDate: "2024-07-01", EndDate: "2024-07-31", Price: 85, Type: models.SeasonPeak},
	))
	if p, _ := table.PriceFor(date("2024-07-15")); p != 85 {
		t.Fatalf("identical type+start must resolve by position, got %v", p)
	}
}

func TestNewSeasonTableSkipsMalformedEntries(t *testing.T) {
	table := NewSeasonTable(profileWithSeasons(true,
		models.SeasonalRate{ID: "bad-date", StartDate: "07/01/2024", EndDate: "2024-07-31", Price: 70, Type: models.SeasonPeak},
		models.SeasonalRate{ID: "inverted", StartDate: "2024-07-31", EndDate: "2024-07-01", Price: 70, Type: models.SeasonPeak},
		models.SeasonalRate{ID: "ok", StartDate: "2024-07-01", EndDate: "2024-07-31", Price: 75, Type: models.SeasonStandard},
	))
	if p, ok := table.PriceFor(date("2024-07-15")); !ok || p != 75 {
		t.Fatalf("only the well-formed season should survive, got %v (ok=%v)", p, ok)
	}
}
