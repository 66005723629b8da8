package services

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/terraincognita07/aura/internal/models"
)

// EmptyReportText is the entire report body when the selected period holds no
// episodes. The wording is fixed for compatibility with shared reports.
const EmptyReportText = "No episodes were recorded in the selected period."

// TriggerFrequency is one entry of the top-triggers line.
type TriggerFrequency struct {
	Label string
	Count int
}

// orderedCounter counts occurrences per label while remembering first-seen
// order, which breaks ties deterministically.
type orderedCounter struct {
	order  []string
	counts map[string]int
}

func newOrderedCounter() *orderedCounter {
	return &orderedCounter{counts: map[string]int{}}
}

func (counter *orderedCounter) add(label string) {
	if _, seen := counter.counts[label]; !seen {
		counter.order = append(counter.order, label)
	}
	counter.counts[label]++
}

// frequencies returns (label, count) pairs sorted descending by count, ties
// kept in first-seen order.
func (counter *orderedCounter) frequencies() []TriggerFrequency {
	entries := make([]TriggerFrequency, 0, len(counter.order))
	for _, label := range counter.order {
		entries = append(entries, TriggerFrequency{Label: label, Count: counter.counts[label]})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})
	return entries
}

// TopTriggerFrequencies counts how often each trigger occurs across the
// attacks (an attack with N triggers increments N counters) and keeps the
// top limit entries.
func TopTriggerFrequencies(attacks []models.Attack, limit int) []TriggerFrequency {
	counter := newOrderedCounter()
	for _, attack := range attacks {
		for _, trigger := range attack.Triggers {
			counter.add(trigger)
		}
	}
	entries := counter.frequencies()
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}

// MostFrequentLocation picks the single most common pain location, first-seen
// order breaking ties, "Unknown" substituted for records without one.
func MostFrequentLocation(attacks []models.Attack) string {
	counter := newOrderedCounter()
	for _, attack := range attacks {
		location := attack.PainLocation
		if location == "" {
			location = models.LocationUnknown
		}
		counter.add(location)
	}
	entries := counter.frequencies()
	if len(entries) == 0 {
		return models.LocationUnknown
	}
	return entries[0].Label
}

// ComposeReport renders the plain-text report for a period. The section order
// and connective text are fixed; previously shared reports depend on this
// exact shape.
func ComposeReport(attacks []models.Attack, periodKey string, now time.Time) string {
	filtered := FilterByPeriod(attacks, periodKey, now)
	if len(filtered) == 0 {
		return EmptyReportText
	}

	topTriggers := formatTriggerFrequencies(TopTriggerFrequencies(filtered, 3))

	var report strings.Builder
	fmt.Fprintf(&report, "--- Report (%s) ---\n\n", PeriodLabel(periodKey))
	fmt.Fprintf(&report, "Generated: %s\n\n", DateKey(now))
	fmt.Fprintf(&report, "Total Episodes: %d\n", len(filtered))
	fmt.Fprintf(&report, "Average Severity: %.1f\n", AverageSeverity(filtered))
	fmt.Fprintf(&report, "Most Frequent Triggers: %s\n", topTriggers)
	fmt.Fprintf(&report, "Most Frequent Pain Location: %s\n", MostFrequentLocation(filtered))
	report.WriteString("\nMonthly Breakdown:\n")
	report.WriteString(monthlyBreakdown(filtered))
	report.WriteString("\n--- End of Report ---\n")
	return report.String()
}

func formatTriggerFrequencies(entries []TriggerFrequency) string {
	if len(entries) == 0 {
		return "-"
	}
	parts := make([]string, 0, len(entries))
	for _, entry := range entries {
		unit := "times"
		if entry.Count == 1 {
			unit = "time"
		}
		parts = append(parts, fmt.Sprintf("%s (%d %s)", entry.Label, entry.Count, unit))
	}
	return strings.Join(parts, ", ")
}

func monthlyBreakdown(attacks []models.Attack) string {
	summary := SummarizeByMonth(attacks)
	lines := make([]string, 0, len(summary))
	for _, month := range SortedMonthKeys(summary) {
		lines = append(lines, fmt.Sprintf("%s: %d episodes", month, summary[month].Count))
	}
	return strings.Join(lines, "\n")
}

// SuggestedReportFilename names the transient file handed to the share
// collaborator.
func SuggestedReportFilename(now time.Time) string {
	return fmt.Sprintf("aura_report_%d.txt", now.Unix())
}
