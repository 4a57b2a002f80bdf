package routes

import (
	"github.com/gofiber/fiber/v2"

	"hajj-admin/internal/handlers"
	"hajj-admin/internal/repositories"
)

func registerHotelPilgrimRoutes(api fiber.Router, pilgrims *repositories.HotelPilgrimRepository, deps Deps) {
	h := handlers.NewHotelPilgrimHandler(pilgrims, deps.Log, deps.Metrics)
	g := api.Group("/hotel-pilgrims")

	g.Post("/import", h.Import)
	g.Get("/all", h.AllStays)
	g.Get("/statistics", h.Statistics)
	g.Get("/export/:hotelName", h.Export)
	g.Get("/hotel/:hotelName", h.ByHotel)
}
