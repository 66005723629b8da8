package services

import "github.com/terraincognita07/aura/internal/models"

// CalendarMarker is one colored dot on a calendar day.
type CalendarMarker struct {
	Severity int    `json:"severity"`
	Color    string `json:"color"`
}

// BuildCalendarIndex maps each date key to the distinct severities recorded on
// that date, one marker per severity value. Two attacks with the same severity
// on the same day collapse to a single marker. The index always covers the
// full unfiltered history and is rebuilt from scratch on every call.
func BuildCalendarIndex(attacks []models.Attack) map[string][]CalendarMarker {
	index := make(map[string][]CalendarMarker)
	for _, attack := range attacks {
		key := DateKey(attack.Date)
		if hasMarkerForSeverity(index[key], attack.Severity) {
			continue
		}
		index[key] = append(index[key], CalendarMarker{
			Severity: attack.Severity,
			Color:    models.SeverityColor(attack.Severity),
		})
	}
	return index
}

func hasMarkerForSeverity(markers []CalendarMarker, severity int) bool {
	for _, marker := range markers {
		if marker.Severity == severity {
			return true
		}
	}
	return false
}

// AttacksOnDate returns the attacks recorded on one calendar date, preserving
// the input order.
func AttacksOnDate(attacks []models.Attack, dateKey string) []models.Attack {
	matched := make([]models.Attack, 0)
	for _, attack := range attacks {
		if DateKey(attack.Date) == dateKey {
			matched = append(matched, attack)
		}
	}
	return matched
}
