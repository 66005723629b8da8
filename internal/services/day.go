package services

import "time"

const dayLayout = "2006-01-02"

// DayOf strips the time-of-day component, leaving a UTC midnight for the
// calendar date. All window comparisons run on these values.
func DayOf(value time.Time) time.Time {
	year, month, day := value.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// DateKey renders a calendar date as ISO YYYY-MM-DD.
func DateKey(value time.Time) string {
	return value.Format(dayLayout)
}

// MonthKey renders the month of a date as YYYY-MM.
func MonthKey(value time.Time) string {
	return value.Format("2006-01")
}

// ParseDay parses an ISO YYYY-MM-DD date.
func ParseDay(value string) (time.Time, error) {
	return time.Parse(dayLayout, value)
}
