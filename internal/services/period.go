package services

import (
	"time"

	"github.com/terraincognita07/aura/internal/models"
)

const (
	PeriodLast7Days   = "last7days"
	PeriodLast30Days  = "last30days"
	PeriodLast3Months = "last3months"
	PeriodLast6Months = "last6months"
	PeriodLast1Year   = "last1year"
	PeriodAll         = "all"
)

// PeriodWindowStart returns the inclusive lower bound of a named period
// relative to now. The second result is false for "all" and for any
// unrecognized key, which are open-ended.
func PeriodWindowStart(periodKey string, now time.Time) (time.Time, bool) {
	today := DayOf(now)
	switch periodKey {
	case PeriodLast7Days:
		return today.AddDate(0, 0, -7), true
	case PeriodLast30Days:
		return today.AddDate(0, 0, -30), true
	case PeriodLast3Months:
		return today.AddDate(0, -3, 0), true
	case PeriodLast6Months:
		return today.AddDate(0, -6, 0), true
	case PeriodLast1Year:
		return today.AddDate(-1, 0, 0), true
	default:
		return time.Time{}, false
	}
}

// FilterByPeriod keeps the attacks whose date falls inside the named period
// ending at now. Comparison runs on the date component only, the window start
// is inclusive. Open-ended periods return the input slice unchanged.
func FilterByPeriod(attacks []models.Attack, periodKey string, now time.Time) []models.Attack {
	windowStart, bounded := PeriodWindowStart(periodKey, now)
	if !bounded {
		return attacks
	}

	filtered := make([]models.Attack, 0, len(attacks))
	for _, attack := range attacks {
		if !DayOf(attack.Date).Before(windowStart) {
			filtered = append(filtered, attack)
		}
	}
	return filtered
}

// PeriodLabel is the human-readable period name used in report headers.
func PeriodLabel(periodKey string) string {
	switch periodKey {
	case PeriodLast7Days:
		return "Last 7 Days"
	case PeriodLast30Days:
		return "Last 30 Days"
	case PeriodLast3Months:
		return "Last 3 Months"
	case PeriodLast6Months:
		return "Last 6 Months"
	case PeriodLast1Year:
		return "Last 1 Year"
	case PeriodAll:
		return "All Time"
	default:
		return "Custom Range"
	}
}
