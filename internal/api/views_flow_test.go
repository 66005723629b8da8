package api

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"
)

func TestCalendarIndexDeduplicatesSeverities(t *testing.T) {
	app := newTestApp(t)
	authCookie := registerTestUser(t, app, "calendar@example.com")

	createTestAttack(t, app, authCookie, testAttackPayload("2024-06-01", 2))
	createTestAttack(t, app, authCookie, testAttackPayload("2024-06-01", 2))
	createTestAttack(t, app, authCookie, testAttackPayload("2024-06-01", 5))
	createTestAttack(t, app, authCookie, testAttackPayload("2024-06-02", 3))

	body := doJSON(t, app, jsonRequest(t, http.MethodGet, "/api/calendar", nil, authCookie), http.StatusOK)
	index := map[string][]struct {
		Severity int    `json:"severity"`
		Color    string `json:"color"`
	}{}
	if err := json.Unmarshal(body, &index); err != nil {
		t.Fatalf("decode calendar index: %v", err)
	}

	if len(index["2024-06-01"]) != 2 {
		t.Fatalf("expected 2 markers on 2024-06-01, got %d", len(index["2024-06-01"]))
	}
	if index["2024-06-01"][0].Color != "#D4E157" {
		t.Fatalf("unexpected color for severity 2: %s", index["2024-06-01"][0].Color)
	}
	if index["2024-06-01"][1].Color != "#EF5350" {
		t.Fatalf("unexpected color for severity 5: %s", index["2024-06-01"][1].Color)
	}
	if len(index["2024-06-02"]) != 1 {
		t.Fatalf("expected 1 marker on 2024-06-02, got %d", len(index["2024-06-02"]))
	}
}

func TestCalendarDayReturnsEpisodesOfThatDate(t *testing.T) {
	app := newTestApp(t)
	authCookie := registerTestUser(t, app, "day@example.com")

	createTestAttack(t, app, authCookie, testAttackPayload("2024-06-01", 2))
	createTestAttack(t, app, authCookie, testAttackPayload("2024-06-02", 4))

	body := doJSON(t, app, jsonRequest(t, http.MethodGet, "/api/calendar/2024-06-01", nil, authCookie), http.StatusOK)
	var episodes []attackResponse
	if err := json.Unmarshal(body, &episodes); err != nil {
		t.Fatalf("decode day episodes: %v", err)
	}
	if len(episodes) != 1 || episodes[0].Date != "2024-06-01" {
		t.Fatalf("unexpected day episodes: %+v", episodes)
	}

	doJSON(t, app, jsonRequest(t, http.MethodGet, "/api/calendar/junk", nil, authCookie), http.StatusBadRequest)
}

func TestStatsPayload(t *testing.T) {
	app := newTestApp(t)
	authCookie := registerTestUser(t, app, "stats@example.com")

	payload := testAttackPayload("2024-06-01", 5)
	createTestAttack(t, app, authCookie, payload)

	payload = testAttackPayload("2024-06-02", 3)
	payload["is_work_day"] = false
	createTestAttack(t, app, authCookie, payload)

	body := doJSON(t, app, jsonRequest(t, http.MethodGet, "/api/stats", nil, authCookie), http.StatusOK)
	stats := statsResponse{}
	if err := json.Unmarshal(body, &stats); err != nil {
		t.Fatalf("decode stats: %v", err)
	}

	if stats.EpisodeCount != 2 {
		t.Fatalf("expected 2 episodes, got %d", stats.EpisodeCount)
	}
	if stats.AverageSeverity != 4.0 {
		t.Fatalf("expected average severity 4.0, got %v", stats.AverageSeverity)
	}
	if len(stats.TriggerAverages) != 1 || stats.TriggerAverages[0].Label != "Stress" {
		t.Fatalf("unexpected trigger averages: %+v", stats.TriggerAverages)
	}
	if stats.TriggerAverages[0].Value != 4.0 {
		t.Fatalf("expected Stress average 4.0, got %v", stats.TriggerAverages[0].Value)
	}
	if stats.Workday.Workday != 1 || stats.Workday.Holiday != 1 {
		t.Fatalf("unexpected workday split: %+v", stats.Workday)
	}
	if stats.Period != "all" || stats.PeriodLabel != "All Time" {
		t.Fatalf("unexpected period fields: %q %q", stats.Period, stats.PeriodLabel)
	}
}

func TestMonthListAndExport(t *testing.T) {
	app := newTestApp(t)
	authCookie := registerTestUser(t, app, "months@example.com")

	createTestAttack(t, app, authCookie, testAttackPayload("2024-05-20", 2))
	createTestAttack(t, app, authCookie, testAttackPayload("2024-06-02", 4))
	createTestAttack(t, app, authCookie, testAttackPayload("2024-06-10", 4))
	createTestAttack(t, app, authCookie, testAttackPayload("2024-06-10", 1))

	body := doJSON(t, app, jsonRequest(t, http.MethodGet, "/api/months", nil, authCookie), http.StatusOK)
	var months []monthResponse
	if err := json.Unmarshal(body, &months); err != nil {
		t.Fatalf("decode months: %v", err)
	}

	if len(months) != 2 {
		t.Fatalf("expected 2 months, got %d", len(months))
	}
	if months[0].Month != "2024-06" || months[1].Month != "2024-05" {
		t.Fatalf("expected most recent month first, got %s, %s", months[0].Month, months[1].Month)
	}
	if months[0].Count != 3 {
		t.Fatalf("expected 3 episodes in 2024-06, got %d", months[0].Count)
	}
	if len(months[0].Days) != 2 || months[0].Days[0] != 2 || months[0].Days[1] != 10 {
		t.Fatalf("expected days [2 10], got %v", months[0].Days)
	}

	request := jsonRequest(t, http.MethodGet, "/api/months/2024-06/export", nil, authCookie)
	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}
	defer response.Body.Close()
	if response.StatusCode != http.StatusOK {
		t.Fatalf("export expected 200, got %d", response.StatusCode)
	}
	if disposition := response.Header.Get("Content-Disposition"); !strings.Contains(disposition, "aura_2024-06.txt") {
		t.Fatalf("unexpected content disposition: %s", disposition)
	}

	raw, err := io.ReadAll(response.Body)
	if err != nil {
		t.Fatalf("read export body: %v", err)
	}
	text := string(raw)
	if !strings.HasPrefix(text, "2024-06 Episode Details:") {
		t.Fatalf("unexpected export header: %q", text)
	}
	if !strings.Contains(text, "--- Episode 1 ---") || !strings.Contains(text, "--- Episode 3 ---") {
		t.Fatalf("expected three episode blocks, got: %q", text)
	}

	doJSON(t, app, jsonRequest(t, http.MethodGet, "/api/months/junk/export", nil, authCookie), http.StatusBadRequest)
}

func TestCatalogListsFormOptions(t *testing.T) {
	app := newTestApp(t)

	body := doJSON(t, app, jsonRequest(t, http.MethodGet, "/api/catalog", nil, ""), http.StatusOK)
	catalog := struct {
		TimeBuckets    []string       `json:"time_buckets"`
		Triggers       []string       `json:"triggers"`
		OtherTrigger   string         `json:"other_trigger"`
		PainLocations  []string       `json:"pain_locations"`
		SeverityColors map[int]string `json:"severity_colors"`
	}{}
	if err := json.Unmarshal(body, &catalog); err != nil {
		t.Fatalf("decode catalog: %v", err)
	}

	if len(catalog.TimeBuckets) != 3 || catalog.TimeBuckets[0] != "morning" {
		t.Fatalf("unexpected time buckets: %v", catalog.TimeBuckets)
	}
	if len(catalog.Triggers) != 7 || catalog.OtherTrigger != "Other" {
		t.Fatalf("unexpected triggers: %v + %q", catalog.Triggers, catalog.OtherTrigger)
	}
	if len(catalog.PainLocations) != 5 {
		t.Fatalf("unexpected pain locations: %v", catalog.PainLocations)
	}
	if catalog.SeverityColors[5] != "#EF5350" {
		t.Fatalf("unexpected color for severity 5: %s", catalog.SeverityColors[5])
	}
}
