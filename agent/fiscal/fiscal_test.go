package fiscal

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestWeekNumberAnchorsOnFirstSaturday(t *testing.T) {
	t.Parallel()

	// Jan 31 2025 is a Friday, so week 1 starts Saturday Feb 1.
	if got := WeekNumber(date(2025, time.February, 1)); got != 1 {
		t.Fatalf("expected week 1, got %d", got)
	}
	if got := WeekNumber(date(2025, time.February, 7)); got != 1 {
		t.Fatalf("expected week 1, got %d", got)
	}
	if got := WeekNumber(date(2025, time.February, 8)); got != 2 {
		t.Fatalf("expected week 2, got %d", got)
	}
}

func TestWeekNumberBeforeFirstSaturdayIsWeekZero(t *testing.T) {
	t.Parallel()

	// Jan 31 2027 is a Sunday, so week 1 starts Saturday Feb 6. Days in
	// the gap between the anchor date and that Saturday sit in week 0.
	for _, d := range []time.Time{
		date(2027, time.February, 3),
		date(2027, time.February, 5),
	} {
		if got := WeekNumber(d); got != 0 {
			t.Fatalf("%s: expected week 0, got %d", d, got)
		}
	}
	if got := WeekNumber(date(2027, time.February, 6)); got != 1 {
		t.Fatalf("expected week 1, got %d", got)
	}
}

func TestWeekNumberBeforeJan31UsesPriorYear(t *testing.T) {
	t.Parallel()

	// Mid-January belongs to the fiscal year anchored the previous Jan 31.
	got := WeekNumber(date(2025, time.January, 15))
	if got < 49 || got > 53 {
		t.Fatalf("expected a late week of the prior fiscal year, got %d", got)
	}
}

func TestMondayOfWeekIsMonday(t *testing.T) {
	t.Parallel()

	today := date(2025, time.June, 10)
	for week := 1; week <= 52; week++ {
		m := MondayOfWeek(week, today)
		if m.Weekday() != time.Monday {
			t.Fatalf("week %d: expected Monday, got %s", week, m.Weekday())
		}
	}
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	today := date(2025, time.June, 10)
	for week := 1; week <= 40; week++ {
		monday := MondayOfWeek(week, today)
		if got := WeekNumber(monday); got != week {
			t.Fatalf("week %d round-tripped to %d (monday %s)", week, got, monday)
		}
	}

	// Arbitrary dates: the Monday of a date's week maps back to that week.
	for _, d := range []time.Time{
		date(2025, time.March, 3),
		date(2025, time.August, 20),
		date(2025, time.December, 31),
		date(2024, time.February, 5),
	} {
		week := WeekNumber(d)
		monday := MondayOfWeek(week, d)
		if got := WeekNumber(monday); got != week {
			t.Fatalf("date %s: week %d round-tripped to %d", d, week, got)
		}
	}
}

func TestSaturdayOfWeekPrecedesMondayByTwoDays(t *testing.T) {
	t.Parallel()

	today := date(2025, time.June, 10)
	sat := SaturdayOfWeek(12, today)
	mon := MondayOfWeek(12, today)
	if sat.AddDate(0, 0, 2) != mon {
		t.Fatalf("saturday %s + 2d != monday %s", sat, mon)
	}
	if sat.Weekday() != time.Saturday {
		t.Fatalf("expected Saturday, got %s", sat.Weekday())
	}
}
