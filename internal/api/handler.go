package api

import (
	"time"

	"github.com/terraincognita07/aura/internal/db"
	"github.com/terraincognita07/aura/internal/services"
	"gorm.io/gorm"
)

const authCookieName = "aura_auth"

const (
	defaultAuthTokenTTL  = 7 * 24 * time.Hour
	rememberAuthTokenTTL = 30 * 24 * time.Hour
)

type Handler struct {
	db           *gorm.DB
	repos        *db.Repositories
	attacks      *services.AttackService
	reports      *services.ReportService
	secretKey    []byte
	location     *time.Location
	cookieSecure bool
}

func NewHandler(database *gorm.DB, secret string, location *time.Location, cookieSecure bool) *Handler {
	repos := db.NewRepositories(database)
	return &Handler{
		db:           database,
		repos:        repos,
		attacks:      services.NewAttackService(repos.Attacks),
		reports:      services.NewReportService(repos.Attacks),
		secretKey:    []byte(secret),
		location:     location,
		cookieSecure: cookieSecure,
	}
}

func (handler *Handler) now() time.Time {
	return time.Now().In(handler.location)
}
