package routes

import (
	"github.com/gofiber/fiber/v2"

	"hajj-admin/internal/handlers"
	"hajj-admin/internal/repositories"
)

func registerHotelRoutes(api fiber.Router, hotels *repositories.HotelRepository, deps Deps) {
	h := handlers.NewHotelHandler(hotels)
	g := api.Group("/hotels")

	g.Get("/", h.List)
	g.Post("/", h.Create)
}
