package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/aura/internal/services"
)

// CalendarIndex returns the date to severity-marker mapping that drives the
// calendar view. Markers hold one entry per distinct severity seen that day.
func (handler *Handler) CalendarIndex(c *fiber.Ctx) error {
	user := currentUser(c)

	attacks, err := handler.attacks.Snapshot(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "load episodes failed")
	}
	return c.JSON(services.BuildCalendarIndex(attacks))
}

// CalendarDay returns every episode recorded on one date.
func (handler *Handler) CalendarDay(c *fiber.Ctx) error {
	user := currentUser(c)

	dateKey := c.Params("date")
	if _, err := services.ParseDay(dateKey); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	attacks, err := handler.attacks.Snapshot(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "load episodes failed")
	}
	return c.JSON(attacksToResponse(services.AttacksOnDate(attacks, dateKey)))
}
