package services

import (
	"fmt"
	"strings"

	"github.com/terraincognita07/aura/internal/models"
)

// TimeBucketLabel renders the stored time-of-onset code for display.
func TimeBucketLabel(bucket string) string {
	switch bucket {
	case models.BucketMorning:
		return "Morning"
	case models.BucketNoon:
		return "Noon"
	case models.BucketEvening:
		return "Evening"
	default:
		return bucket
	}
}

// ExportMonthText dumps every attack of one YYYY-MM month as a fixed
// multi-line text block, for the month TXT share feature.
func ExportMonthText(attacks []models.Attack, month string) string {
	lines := []string{fmt.Sprintf("%s Episode Details:", month), ""}

	index := 0
	for _, attack := range attacks {
		if MonthKey(attack.Date) != month {
			continue
		}
		index++
		lines = append(lines,
			fmt.Sprintf("--- Episode %d ---", index),
			"Date: "+DateKey(attack.Date),
			"Time: "+TimeBucketLabel(attack.TimeBucket),
			fmt.Sprintf("Severity: %d", attack.Severity),
			"Triggers: "+strings.Join(attack.Triggers, ", "),
			"Note: "+textOrDash(attack.Note),
			"Workday: "+yesNo(attack.IsWorkDay),
			"Pain Location: "+textOrDash(attack.PainLocation),
			"",
		)
	}

	return strings.Join(lines, "\n")
}

func textOrDash(value string) string {
	if strings.TrimSpace(value) == "" {
		return "-"
	}
	return value
}

func yesNo(value bool) string {
	if value {
		return "Yes"
	}
	return "No"
}
