package dashboard

import "time"

// FiscalWindow returns the April 1 .. March 31 purchase window anchored
// at the reference date's calendar year. The anchor ignores the reference
// month: a January to March reference still opens the window at April of
// that same year.
func FiscalWindow(reference time.Time) (time.Time, time.Time) {
	year := reference.Year()
	start := time.Date(year, time.April, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(year+1, time.March, 31, 0, 0, 0, 0, time.UTC)
	return start, end
}
