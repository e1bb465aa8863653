// Package fiscal implements the retail calendar used by gold-star weeks.
// Week 1 begins on the first Saturday on or after January 31; both the
// week-number and the inverse direction anchor on that Saturday so the two
// conversions round-trip.
package fiscal

import "time"

func midnightUTC(d time.Time) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
}

func firstSaturday(fiscalYearStart time.Time) time.Time {
	daysToSaturday := (int(time.Saturday) - int(fiscalYearStart.Weekday()) + 7) % 7
	return fiscalYearStart.AddDate(0, 0, daysToSaturday)
}

func anchorFor(d time.Time) time.Time {
	start := time.Date(d.Year(), time.January, 31, 0, 0, 0, 0, time.UTC)
	if d.Before(start) {
		start = time.Date(d.Year()-1, time.January, 31, 0, 0, 0, 0, time.UTC)
	}
	return firstSaturday(start)
}

// WeekNumber returns the fiscal week containing d.
func WeekNumber(d time.Time) int {
	d = midnightUTC(d)
	days := int(d.Sub(anchorFor(d)).Hours() / 24)
	// days is negative between Jan 31 and the first Saturday; integer
	// division must still floor there, not truncate toward zero.
	if days < 0 {
		days -= 6
	}
	return days/7 + 1
}

// MondayOfWeek converts a fiscal week number to the Monday of that week
// (the week's Saturday plus two days). today supplies the fiscal year; a
// high week number asked for before January 31 refers to the still-running
// prior fiscal year.
func MondayOfWeek(week int, today time.Time) time.Time {
	today = midnightUTC(today)
	start := time.Date(today.Year(), time.January, 31, 0, 0, 0, 0, time.UTC)
	if today.Before(start) && week > 40 {
		start = time.Date(today.Year()-1, time.January, 31, 0, 0, 0, 0, time.UTC)
	}
	saturday := firstSaturday(start).AddDate(0, 0, (week-1)*7)
	return saturday.AddDate(0, 0, 2)
}

// SaturdayOfWeek is MondayOfWeek minus two days, the week_start_date used
// by the gold-star tables.
func SaturdayOfWeek(week int, today time.Time) time.Time {
	return MondayOfWeek(week, today).AddDate(0, 0, -2)
}
