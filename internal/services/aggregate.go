package services

import (
	"math"

	"github.com/terraincognita07/aura/internal/models"
)

// LabeledValue is one bar of a chart series.
type LabeledValue struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// WorkdayStats counts episodes on workdays versus holidays.
type WorkdayStats struct {
	Workday int `json:"workday"`
	Holiday int `json:"holiday"`
}

// HasData reports whether there is anything to chart.
func (stats WorkdayStats) HasData() bool {
	return stats.Workday > 0 || stats.Holiday > 0
}

type severityAccumulator struct {
	total int
	count int
}

// severityGroups accumulates severity sums per label, remembering the order
// in which distinct labels were first seen so chart bars keep insertion order.
type severityGroups struct {
	order  []string
	groups map[string]*severityAccumulator
}

func newSeverityGroups() *severityGroups {
	return &severityGroups{groups: map[string]*severityAccumulator{}}
}

func (g *severityGroups) add(label string, severity int) {
	accumulator, seen := g.groups[label]
	if !seen {
		accumulator = &severityAccumulator{}
		g.groups[label] = accumulator
		g.order = append(g.order, label)
	}
	accumulator.total += severity
	accumulator.count++
}

func (g *severityGroups) averages() []LabeledValue {
	values := make([]LabeledValue, 0, len(g.order))
	for _, label := range g.order {
		accumulator := g.groups[label]
		values = append(values, LabeledValue{
			Label: label,
			Value: RoundTenth(float64(accumulator.total) / float64(accumulator.count)),
		})
	}
	return values
}

// TriggerSeverityAverages computes the mean severity per trigger. An attack
// with N triggers contributes to N groups. Groups appear in first-seen order.
func TriggerSeverityAverages(attacks []models.Attack) []LabeledValue {
	groups := newSeverityGroups()
	for _, attack := range attacks {
		for _, trigger := range attack.Triggers {
			groups.add(trigger, attack.Severity)
		}
	}
	return groups.averages()
}

// LocationSeverityAverages computes the mean severity per pain location,
// substituting "Unknown" for records without one. Groups appear in first-seen
// order.
func LocationSeverityAverages(attacks []models.Attack) []LabeledValue {
	groups := newSeverityGroups()
	for _, attack := range attacks {
		location := attack.PainLocation
		if location == "" {
			location = models.LocationUnknown
		}
		groups.add(location, attack.Severity)
	}
	return groups.averages()
}

// WorkdayDistribution counts workday versus holiday episodes. Callers must
// treat a zero distribution as "nothing to chart" rather than an error.
func WorkdayDistribution(attacks []models.Attack) WorkdayStats {
	stats := WorkdayStats{}
	for _, attack := range attacks {
		if attack.IsWorkDay {
			stats.Workday++
		} else {
			stats.Holiday++
		}
	}
	return stats
}

// AverageSeverity is the mean severity over all attacks, rounded to one
// decimal place. Zero for an empty list.
func AverageSeverity(attacks []models.Attack) float64 {
	if len(attacks) == 0 {
		return 0
	}
	total := 0
	for _, attack := range attacks {
		total += attack.Severity
	}
	return RoundTenth(float64(total) / float64(len(attacks)))
}

// RoundTenth rounds to one decimal place, halves away from zero.
func RoundTenth(value float64) float64 {
	return math.Round(value*10) / 10
}
