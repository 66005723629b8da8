package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	api := app.Group("/api")
	api.Get("/catalog", handler.Catalog)

	auth := api.Group("/auth")
	auth.Post("/register", handler.Register)
	auth.Post("/login", handler.Login)
	auth.Post("/logout", handler.AuthRequired, handler.Logout)
	auth.Post("/change-password", handler.AuthRequired, handler.ChangePassword)
	auth.Delete("/account", handler.AuthRequired, handler.DeleteAccount)

	attacks := api.Group("/attacks", handler.AuthRequired)
	attacks.Get("", handler.ListAttacks)
	attacks.Post("", handler.CreateAttack)
	attacks.Delete("/:id", handler.DeleteAttack)

	calendar := api.Group("/calendar", handler.AuthRequired)
	calendar.Get("", handler.CalendarIndex)
	calendar.Get("/:date", handler.CalendarDay)

	api.Get("/stats", handler.AuthRequired, handler.Stats)

	months := api.Group("/months", handler.AuthRequired)
	months.Get("", handler.ListMonths)
	months.Get("/:month/export", handler.ExportMonth)

	api.Get("/report", handler.AuthRequired, handler.Report)
}
