package services

import (
	"time"

	"github.com/terraincognita07/aura/internal/models"
)

// ReportAttackReader is the narrow read interface the report builders need.
type ReportAttackReader interface {
	ListByUser(userID uint) ([]models.Attack, error)
}

type ReportService struct {
	attacks ReportAttackReader
}

func NewReportService(attacks ReportAttackReader) *ReportService {
	return &ReportService{attacks: attacks}
}

// BuildReport loads the user's episode snapshot and composes the period
// report text.
func (service *ReportService) BuildReport(userID uint, periodKey string, now time.Time) (string, error) {
	attacks, err := service.attacks.ListByUser(userID)
	if err != nil {
		return "", err
	}
	return ComposeReport(attacks, periodKey, now), nil
}

// BuildMonthExport loads the snapshot and renders the TXT dump of one month.
func (service *ReportService) BuildMonthExport(userID uint, month string) (string, error) {
	attacks, err := service.attacks.ListByUser(userID)
	if err != nil {
		return "", err
	}
	return ExportMonthText(attacks, month), nil
}
