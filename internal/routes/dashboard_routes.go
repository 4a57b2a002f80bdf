package routes

import (
	"github.com/gofiber/fiber/v2"

	"hajj-admin/internal/handlers"
	"hajj-admin/internal/repositories"
)

func registerDashboardRoutes(
	api fiber.Router,
	pilgrims *repositories.PilgrimRepository,
	guides *repositories.GuideRepository,
	hotels *repositories.HotelRepository,
	packages *repositories.HotelPilgrimRepository,
	movements *repositories.MovementRepository,
	deps Deps,
) {
	h := handlers.NewDashboardHandler(pilgrims, guides, hotels, packages, movements, deps.Log)
	api.Get("/dashboard/summary", h.Summary)
}
