package api

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/aura/internal/metrics"
	"github.com/terraincognita07/aura/internal/services"
)

// Report composes the shareable text report for the requested period. With
// ?download=1 the response carries an attachment disposition so browsers save
// it as a TXT file; otherwise the text is returned inline for copying.
func (handler *Handler) Report(c *fiber.Ctx) error {
	user := currentUser(c)
	periodKey := c.Query("period", services.PeriodAll)
	now := handler.now()

	text, err := handler.reports.BuildReport(user.ID, periodKey, now)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "report failed")
	}

	metrics.ReportsComposed.WithLabelValues(periodKey).Inc()

	c.Set(fiber.HeaderContentType, "text/plain; charset=utf-8")
	if c.Query("download") == "1" {
		c.Set(fiber.HeaderContentDisposition,
			fmt.Sprintf("attachment; filename=%q", services.SuggestedReportFilename(now)))
	}
	return c.SendString(text)
}
