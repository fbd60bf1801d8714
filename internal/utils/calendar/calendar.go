// Package calendar holds the date arithmetic shared by the budget and
// ledger services. All month math is evaluated in the reference time's
// location, so month boundaries follow the device timezone rather than UTC.
package calendar

import "time"

// MonthBounds returns the first and last instants of t's calendar month.
// The end bound is the final nanosecond of the month, so a closed
// [start, end] range check covers the whole month.
func MonthBounds(t time.Time) (start, end time.Time) {
	start = time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	end = start.AddDate(0, 1, 0).Add(-time.Nanosecond)
	return start, end
}

// SameMonth reports whether a and b fall in the same calendar month,
// evaluated in a's location.
func SameMonth(a, b time.Time) bool {
	b = b.In(a.Location())
	return a.Year() == b.Year() && a.Month() == b.Month()
}

// SameDay reports whether a and b fall on the same calendar day,
// evaluated in a's location.
func SameDay(a, b time.Time) bool {
	b = b.In(a.Location())
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}
