package services

import (
	"errors"
	"strings"

	"github.com/terraincognita07/aura/internal/models"
)

const MaxAttackNoteLength = 2000

var (
	ErrMissingTrigger      = errors.New("at least one trigger is required")
	ErrMissingOtherTrigger = errors.New("the Other trigger needs a description")
	ErrMissingTimeBucket   = errors.New("time of onset is required")
	ErrMissingWorkday      = errors.New("workday flag is required")
	ErrMissingLocation     = errors.New("pain location is required")
	ErrInvalidSeverity     = errors.New("severity must be between 1 and 5")
	ErrInvalidDate         = errors.New("invalid date")
)

// AttackInput is the raw payload of the add-episode operation. IsWorkDay is a
// pointer so an omitted flag is distinguishable from false.
type AttackInput struct {
	Date         string   `json:"date" form:"date"`
	TimeBucket   string   `json:"time_bucket" form:"time_bucket"`
	Severity     int      `json:"severity" form:"severity"`
	Triggers     []string `json:"triggers" form:"triggers"`
	OtherTrigger string   `json:"other_trigger" form:"other_trigger"`
	Note         string   `json:"note" form:"note"`
	IsWorkDay    *bool    `json:"is_work_day" form:"is_work_day"`
	PainLocation string   `json:"pain_location" form:"pain_location"`
}

// NormalizeAttackInput validates an input payload and builds the record to
// store. Nothing is committed on error; every error maps to one actionable
// user message.
func NormalizeAttackInput(input AttackInput) (models.Attack, error) {
	if len(input.Triggers) == 0 {
		return models.Attack{}, ErrMissingTrigger
	}
	if !IsValidTimeBucket(input.TimeBucket) {
		return models.Attack{}, ErrMissingTimeBucket
	}
	otherText := strings.TrimSpace(input.OtherTrigger)
	if containsTrigger(input.Triggers, models.TriggerOther) && otherText == "" {
		return models.Attack{}, ErrMissingOtherTrigger
	}
	if input.IsWorkDay == nil {
		return models.Attack{}, ErrMissingWorkday
	}
	if !IsValidPainLocation(input.PainLocation) {
		return models.Attack{}, ErrMissingLocation
	}
	if !models.IsValidSeverity(input.Severity) {
		return models.Attack{}, ErrInvalidSeverity
	}
	date, err := ParseDay(input.Date)
	if err != nil {
		return models.Attack{}, ErrInvalidDate
	}

	return models.Attack{
		Date:         date,
		TimeBucket:   input.TimeBucket,
		Severity:     input.Severity,
		Triggers:     resolveTriggers(input.Triggers, otherText),
		Note:         trimAttackNote(input.Note),
		IsWorkDay:    *input.IsWorkDay,
		PainLocation: input.PainLocation,
	}, nil
}

// resolveTriggers replaces the "Other" marker with the free text the user
// supplied. Selecting "Other" is exclusive in the entry form, so the text
// stands in for the whole selection.
func resolveTriggers(selected []string, otherText string) []string {
	resolved := make([]string, 0, len(selected))
	for _, trigger := range selected {
		if trigger != models.TriggerOther {
			resolved = append(resolved, trigger)
		}
	}
	if containsTrigger(selected, models.TriggerOther) {
		resolved = append(resolved, otherText)
	}
	return resolved
}

func containsTrigger(triggers []string, needle string) bool {
	for _, trigger := range triggers {
		if trigger == needle {
			return true
		}
	}
	return false
}

func IsValidTimeBucket(bucket string) bool {
	switch bucket {
	case models.BucketMorning, models.BucketNoon, models.BucketEvening:
		return true
	default:
		return false
	}
}

func IsValidPainLocation(location string) bool {
	for _, known := range models.PainLocations() {
		if location == known {
			return true
		}
	}
	return false
}

func trimAttackNote(value string) string {
	value = strings.TrimSpace(value)
	if len(value) <= MaxAttackNoteLength {
		return value
	}
	return value[:MaxAttackNoteLength]
}
