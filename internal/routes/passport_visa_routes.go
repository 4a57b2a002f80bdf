package routes

import (
	"github.com/gofiber/fiber/v2"

	"hajj-admin/internal/handlers"
	"hajj-admin/internal/repositories"
)

func registerPassportVisaRoutes(api fiber.Router, docs *repositories.PassportVisaRepository, deps Deps) {
	h := handlers.NewPassportVisaHandler(docs, deps.Store, deps.Log, deps.Metrics)
	g := api.Group("/passport-visa")

	g.Get("/", h.List)
	g.Post("/import", h.Import)
	g.Get("/export", h.Export)
	g.Post("/upload-document", h.UploadDocument)
	g.Get("/direct-pdf/:passportNumber", h.DirectPDF)
	g.Get("/document/:id/file", h.GetDocumentFile)
	g.Get("/document/:id", h.GetDocument)
	g.Get("/download-zip", h.DownloadZip)
	g.Delete("/all", h.DeleteAll)
	g.Delete("/:id", h.Delete)
}
