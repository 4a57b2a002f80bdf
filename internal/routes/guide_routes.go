package routes

import (
	"github.com/gofiber/fiber/v2"

	"hajj-admin/internal/handlers"
	"hajj-admin/internal/middleware"
	"hajj-admin/internal/repositories"
)

func registerGuideRoutes(api fiber.Router, guides *repositories.GuideRepository, deps Deps) {
	h := handlers.NewGuideHandler(guides, deps.Store, deps.Log, deps.Metrics)
	protected := middleware.Protected([]byte(deps.JWTSecret))
	g := api.Group("/guides")

	g.Get("/", h.List)
	g.Get("/recent", h.Recent)
	g.Get("/passport/:filename", h.ServePassport)
	g.Get("/view-passport/:filename", h.ServePassport)
	g.Post("/", protected, h.Create)
	g.Put("/:id", protected, h.Update)
	g.Delete("/:id/passport", protected, h.DeletePassport)
	g.Delete("/:id", protected, h.Delete)
}
