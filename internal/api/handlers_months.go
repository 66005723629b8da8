package api

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/aura/internal/services"
)

type monthResponse struct {
	Month string `json:"month"`
	Count int    `json:"count"`
	Days  []int  `json:"days"`
}

// ListMonths returns one summary entry per calendar month with recorded
// episodes, most recent month first. Day numbers are sorted ascending.
func (handler *Handler) ListMonths(c *fiber.Ctx) error {
	user := currentUser(c)

	attacks, err := handler.attacks.Snapshot(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "load episodes failed")
	}

	summary := services.SummarizeByMonth(attacks)
	months := make([]monthResponse, 0, len(summary))
	for _, key := range services.SortedMonthKeys(summary) {
		entry := summary[key]
		months = append(months, monthResponse{
			Month: key,
			Count: entry.Count,
			Days:  services.SortedMonthDays(entry.Days),
		})
	}
	return c.JSON(months)
}

// ExportMonth streams the plain-text dump of one month's episodes as a
// downloadable TXT file.
func (handler *Handler) ExportMonth(c *fiber.Ctx) error {
	user := currentUser(c)

	month := c.Params("month")
	if _, err := time.Parse("2006-01", month); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid month")
	}

	text, err := handler.reports.BuildMonthExport(user.ID, month)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "export failed")
	}

	c.Set(fiber.HeaderContentType, "text/plain; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", "aura_"+month+".txt"))
	return c.SendString(text)
}
