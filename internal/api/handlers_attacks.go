package api

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/aura/internal/metrics"
	"github.com/terraincognita07/aura/internal/models"
	"github.com/terraincognita07/aura/internal/services"
)

type attackResponse struct {
	ID           uint     `json:"id"`
	Date         string   `json:"date"`
	TimeBucket   string   `json:"time_bucket"`
	Severity     int      `json:"severity"`
	Triggers     []string `json:"triggers"`
	Note         string   `json:"note"`
	IsWorkDay    bool     `json:"is_work_day"`
	PainLocation string   `json:"pain_location"`
}

func attackToResponse(attack models.Attack) attackResponse {
	triggers := attack.Triggers
	if triggers == nil {
		triggers = []string{}
	}
	return attackResponse{
		ID:           attack.ID,
		Date:         services.DateKey(attack.Date),
		TimeBucket:   attack.TimeBucket,
		Severity:     attack.Severity,
		Triggers:     triggers,
		Note:         attack.Note,
		IsWorkDay:    attack.IsWorkDay,
		PainLocation: attack.PainLocation,
	}
}

func attacksToResponse(attacks []models.Attack) []attackResponse {
	responses := make([]attackResponse, 0, len(attacks))
	for _, attack := range attacks {
		responses = append(responses, attackToResponse(attack))
	}
	return responses
}

// ListAttacks returns the caller's episodes, newest first, optionally
// narrowed by a ?period= filter.
func (handler *Handler) ListAttacks(c *fiber.Ctx) error {
	user := currentUser(c)

	attacks, err := handler.attacks.Snapshot(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "load episodes failed")
	}

	if periodKey := c.Query("period"); periodKey != "" {
		attacks = services.FilterByPeriod(attacks, periodKey, handler.now())
	}
	return c.JSON(attacksToResponse(attacks))
}

func (handler *Handler) CreateAttack(c *fiber.Ctx) error {
	user := currentUser(c)

	input := services.AttackInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	attack, err := handler.attacks.RecordAttack(user.ID, input)
	if err != nil {
		if errors.Is(err, services.ErrSaveAttackFailed) {
			return apiError(c, fiber.StatusInternalServerError, "save episode failed")
		}
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	metrics.EpisodesRecorded.Inc()
	return c.Status(fiber.StatusCreated).JSON(attackToResponse(attack))
}

func (handler *Handler) DeleteAttack(c *fiber.Ctx) error {
	user := currentUser(c)

	attackID, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid episode id")
	}

	if err := handler.attacks.DeleteAttack(user.ID, uint(attackID)); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "delete episode failed")
	}

	metrics.EpisodesDeleted.Inc()
	return c.JSON(fiber.Map{"ok": true})
}
