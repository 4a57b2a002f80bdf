package routes

import (
	"github.com/gofiber/fiber/v2"

	"hajj-admin/internal/handlers"
	"hajj-admin/internal/repositories"
)

func registerMovementRoutes(api fiber.Router, movements *repositories.MovementRepository, deps Deps) {
	h := handlers.NewMovementHandler(movements, deps.Log, deps.Metrics)
	m := api.Group("/movements")

	m.Get("/", h.List)
	m.Get("/export", h.Export)
	m.Post("/", h.Create)
	m.Post("/batch", h.Batch)
}
