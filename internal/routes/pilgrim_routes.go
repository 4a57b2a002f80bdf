package routes

import (
	"github.com/gofiber/fiber/v2"

	"hajj-admin/internal/handlers"
	"hajj-admin/internal/repositories"
)

func registerPilgrimRoutes(api fiber.Router, pilgrims *repositories.PilgrimRepository, linked *repositories.LinkedPilgrimRepository, deps Deps) {
	h := handlers.NewPilgrimHandler(pilgrims, deps.Log, deps.Metrics)
	lh := handlers.NewLinkedPilgrimHandler(linked, deps.Log, deps.Metrics)
	p := api.Group("/pilgrims")

	p.Get("/", h.List)
	p.Post("/bulk", h.BulkCreate)
	p.Post("/import", h.Import)
	p.Post("/bulk-link", h.BulkLink)
	p.Get("/:id", h.Get)
	p.Delete("/:id", h.Delete)

	// Guide-to-pilgrim link records live in their own collection.
	lp := api.Group("/linked-pilgrims")
	lp.Get("/linked", lh.List)
	lp.Post("/bulk-link", lh.BulkLink)
	lp.Put("/:id/status", lh.UpdateStatus)
}
