package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/aura/internal/models"
)

// Catalog returns the static option lists the episode entry form is built
// from, plus the severity color table used by calendar legends.
func (handler *Handler) Catalog(c *fiber.Ctx) error {
	severityColors := make(map[int]string, models.SeverityMax)
	for severity := models.SeverityMin; severity <= models.SeverityMax; severity++ {
		severityColors[severity] = models.SeverityColor(severity)
	}

	return c.JSON(fiber.Map{
		"time_buckets":    models.TimeBuckets(),
		"triggers":        models.BuiltinTriggers(),
		"other_trigger":   models.TriggerOther,
		"pain_locations":  models.PainLocations(),
		"severity_colors": severityColors,
	})
}
