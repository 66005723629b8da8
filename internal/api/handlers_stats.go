package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/aura/internal/services"
)

type statsResponse struct {
	Period           string                  `json:"period"`
	PeriodLabel      string                  `json:"period_label"`
	EpisodeCount     int                     `json:"episode_count"`
	AverageSeverity  float64                 `json:"average_severity"`
	TriggerAverages  []services.LabeledValue `json:"trigger_averages"`
	LocationAverages []services.LabeledValue `json:"location_averages"`
	Workday          services.WorkdayStats   `json:"workday"`
	TopTriggers      []triggerFrequencyEntry `json:"top_triggers"`
}

type triggerFrequencyEntry struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// Stats recomputes every chart payload from the episode snapshot narrowed to
// the requested period. Nothing is cached between requests.
func (handler *Handler) Stats(c *fiber.Ctx) error {
	user := currentUser(c)
	periodKey := c.Query("period", services.PeriodAll)

	attacks, err := handler.attacks.Snapshot(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "load episodes failed")
	}
	attacks = services.FilterByPeriod(attacks, periodKey, handler.now())

	topTriggers := make([]triggerFrequencyEntry, 0)
	for _, entry := range services.TopTriggerFrequencies(attacks, 3) {
		topTriggers = append(topTriggers, triggerFrequencyEntry{Label: entry.Label, Count: entry.Count})
	}

	return c.JSON(statsResponse{
		Period:           periodKey,
		PeriodLabel:      services.PeriodLabel(periodKey),
		EpisodeCount:     len(attacks),
		AverageSeverity:  services.RoundTenth(services.AverageSeverity(attacks)),
		TriggerAverages:  services.TriggerSeverityAverages(attacks),
		LocationAverages: services.LocationSeverityAverages(attacks),
		Workday:          services.WorkdayDistribution(attacks),
		TopTriggers:      topTriggers,
	})
}
