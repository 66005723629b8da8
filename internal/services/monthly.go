package services

import (
	"sort"
	"strconv"

	"github.com/terraincognita07/aura/internal/models"
)

// MonthSummary aggregates the attacks of one calendar month.
type MonthSummary struct {
	Count   int
	Days    map[string]struct{}
	Attacks []models.Attack
}

// SummarizeByMonth groups attacks by YYYY-MM month key, recording the episode
// count, the set of distinct dates, and the attacks themselves.
func SummarizeByMonth(attacks []models.Attack) map[string]MonthSummary {
	summary := make(map[string]MonthSummary)
	for _, attack := range attacks {
		key := MonthKey(attack.Date)
		entry, seen := summary[key]
		if !seen {
			entry = MonthSummary{Days: map[string]struct{}{}}
		}
		entry.Count++
		entry.Days[DateKey(attack.Date)] = struct{}{}
		entry.Attacks = append(entry.Attacks, attack)
		summary[key] = entry
	}
	return summary
}

// SortedMonthKeys lists the month keys newest first. Descending lexicographic
// order equals descending chronological order for zero-padded YYYY-MM keys.
func SortedMonthKeys(summary map[string]MonthSummary) []string {
	keys := make([]string, 0, len(summary))
	for key := range summary {
		keys = append(keys, key)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(keys)))
	return keys
}

// SortedMonthDays extracts the day-of-month numbers from a distinct-date set
// in ascending numeric order, so day 2 sorts before day 10.
func SortedMonthDays(days map[string]struct{}) []int {
	numbers := make([]int, 0, len(days))
	for key := range days {
		if len(key) < len("2006-01-02") {
			continue
		}
		day, err := strconv.Atoi(key[len("2006-01-"):])
		if err != nil {
			continue
		}
		numbers = append(numbers, day)
	}
	sort.Ints(numbers)
	return numbers
}
