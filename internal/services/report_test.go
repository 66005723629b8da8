package services

import (
	"strings"
	"testing"

	"github.com/terraincognita07/aura/internal/models"
)

func TestComposeReportEndToEnd(t *testing.T) {
	attacks := []models.Attack{
		{
			Date:         mustParseServiceDay(t, "2024-01-05"),
			TimeBucket:   models.BucketMorning,
			Severity:     3,
			Triggers:     []string{"Stress"},
			IsWorkDay:    true,
			PainLocation: models.LocationRight,
		},
		{
			Date:         mustParseServiceDay(t, "2024-01-20"),
			TimeBucket:   models.BucketEvening,
			Severity:     5,
			Triggers:     []string{"Stress", "Heat"},
			IsWorkDay:    false,
			PainLocation: models.LocationRight,
		},
	}
	now := mustParseServiceDay(t, "2024-03-15")

	want := strings.Join([]string{
		"--- Report (All Time) ---",
		"",
		"Generated: 2024-03-15",
		"",
		"Total Episodes: 2",
		"Average Severity: 4.0",
		"Most Frequent Triggers: Stress (2 times), Heat (1 time)",
		"Most Frequent Pain Location: Right",
		"",
		"Monthly Breakdown:",
		"2024-01: 2 episodes",
		"--- End of Report ---",
		"",
	}, "\n")

	got := ComposeReport(attacks, PeriodAll, now)
	if got != want {
		t.Fatalf("report mismatch:\n--- got ---\n%s\n--- want ---\n%s", got, want)
	}
}

func TestComposeReportEmptyPeriod(t *testing.T) {
	attacks := []models.Attack{attackOn(t, "2020-01-01", 3)}
	now := mustParseServiceDay(t, "2024-03-15")

	got := ComposeReport(attacks, PeriodLast7Days, now)
	if got != EmptyReportText {
		t.Fatalf("expected the fixed empty-period sentence, got %q", got)
	}
}

func TestComposeReportMonthlyBreakdownDescending(t *testing.T) {
	attacks := []models.Attack{
		attackOn(t, "2024-01-05", 3),
		attackOn(t, "2024-03-01", 3),
		attackOn(t, "2024-03-02", 3),
		attackOn(t, "2024-02-10", 3),
	}
	now := mustParseServiceDay(t, "2024-03-15")

	report := ComposeReport(attacks, PeriodAll, now)
	breakdown := strings.Index(report, "Monthly Breakdown:")
	if breakdown < 0 {
		t.Fatal("expected a monthly breakdown section")
	}
	section := report[breakdown:]
	marchIndex := strings.Index(section, "2024-03: 2 episodes")
	februaryIndex := strings.Index(section, "2024-02: 1 episodes")
	januaryIndex := strings.Index(section, "2024-01: 1 episodes")
	if marchIndex < 0 || februaryIndex < 0 || januaryIndex < 0 {
		t.Fatalf("missing breakdown lines in:\n%s", section)
	}
	if !(marchIndex < februaryIndex && februaryIndex < januaryIndex) {
		t.Fatalf("expected months in descending order, got:\n%s", section)
	}
}

func TestTopTriggerFrequenciesOrderAndLimit(t *testing.T) {
	attacks := []models.Attack{
		{Severity: 1, Triggers: []string{"Hunger", "Stress"}},
		{Severity: 1, Triggers: []string{"Heat"}},
		{Severity: 1, Triggers: []string{"Stress"}},
		{Severity: 1, Triggers: []string{"Fatigue"}},
	}

	top := TopTriggerFrequencies(attacks, 3)
	if len(top) != 3 {
		t.Fatalf("expected top 3 triggers, got %d", len(top))
	}
	if top[0].Label != "Stress" || top[0].Count != 2 {
		t.Fatalf("expected Stress (2) first, got %#v", top[0])
	}
	// Hunger, Heat and Fatigue all count 1; first seen wins the tie.
	if top[1].Label != "Hunger" || top[2].Label != "Heat" {
		t.Fatalf("expected first-seen tie-break [Hunger Heat], got %#v", top[1:])
	}
}

func TestMostFrequentLocation(t *testing.T) {
	attacks := []models.Attack{
		{PainLocation: models.LocationLeft},
		{PainLocation: models.LocationRight},
		{PainLocation: models.LocationRight},
	}
	if got := MostFrequentLocation(attacks); got != models.LocationRight {
		t.Fatalf("expected Right, got %s", got)
	}

	tied := []models.Attack{
		{PainLocation: models.LocationEye},
		{PainLocation: models.LocationLeft},
	}
	if got := MostFrequentLocation(tied); got != models.LocationEye {
		t.Fatalf("expected first-seen Eye on tie, got %s", got)
	}

	if got := MostFrequentLocation([]models.Attack{{PainLocation: ""}}); got != models.LocationUnknown {
		t.Fatalf("expected Unknown for missing locations, got %s", got)
	}
}

func TestSuggestedReportFilename(t *testing.T) {
	now := mustParseServiceDay(t, "2024-03-15")
	name := SuggestedReportFilename(now)
	if !strings.HasPrefix(name, "aura_report_") || !strings.HasSuffix(name, ".txt") {
		t.Fatalf("unexpected filename %q", name)
	}
}
