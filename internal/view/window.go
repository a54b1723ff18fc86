package view

import "time"

// Window is a closed interval of calendar dates, or unbounded when the view
// imposes no date restriction.
type Window struct {
	Start     time.Time
	End       time.Time
	Unbounded bool
}

// Contains reports whether the calendar date of d falls inside the window,
// inclusive on both ends. An unbounded window contains every date.
func (w Window) Contains(d time.Time) bool {
	if w.Unbounded {
		return true
	}
	day := DateOnly(d)
	return !day.Before(w.Start) && !day.After(w.End)
}

// DateOnly strips the time-of-day and location from t, leaving a bare
// calendar date. All window math operates on such values.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ResolveWindow converts a view mode and anchor month into a concrete date
// window relative to the injected current date.
//
// Month mode with an empty anchor is unbounded. Month mode with a YYYY-MM
// anchor covers the whole anchored month; the last day is computed as the
// first day of the following month minus one day, which handles December
// rollover and leap-year February. Week mode covers Monday through Sunday
// of the week containing today, where Sunday counts as the seventh day of
// the week rather than the first.
//
// Anchor strings are validated by the caller; a malformed anchor resolves
// to the unbounded window.
func ResolveWindow(mode ViewMode, anchorMonth string, today time.Time) Window {
	if mode == ModeWeek {
		day := DateOnly(today)
		// time.Weekday numbers Sunday as 0; shift so Monday is 0 and
		// Sunday is 6.
		sinceMonday := (int(day.Weekday()) + 6) % 7
		monday := day.AddDate(0, 0, -sinceMonday)
		return Window{Start: monday, End: monday.AddDate(0, 0, 6)}
	}

	if anchorMonth == "" {
		return Window{Unbounded: true}
	}

	start, err := time.Parse("2006-01", anchorMonth)
	if err != nil {
		return Window{Unbounded: true}
	}
	end := start.AddDate(0, 1, 0).AddDate(0, 0, -1)
	return Window{Start: start, End: end}
}
