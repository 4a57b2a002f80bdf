package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"hajj-admin/internal/importer"
	"hajj-admin/internal/models"
	"hajj-admin/internal/repositories"
	"hajj-admin/pkg/logger"
	"hajj-admin/pkg/metrics"
)

type PilgrimHandler struct {
	pilgrims *repositories.PilgrimRepository
	log      logger.Logger
	metrics  *metrics.Metrics
}

func NewPilgrimHandler(pilgrims *repositories.PilgrimRepository, log logger.Logger, m *metrics.Metrics) *PilgrimHandler {
	return &PilgrimHandler{pilgrims: pilgrims, log: log, metrics: m}
}

// GET /api/pilgrims
func (h *PilgrimHandler) List(c *fiber.Ctx) error {
	pilgrims, err := h.pilgrims.FindAll(c.Context())
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if pilgrims == nil {
		pilgrims = []models.Pilgrim{}
	}
	return c.JSON(pilgrims)
}

// GET /api/pilgrims/:id
func (h *PilgrimHandler) Get(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}
	pilgrim, err := h.pilgrims.FindByID(c.Context(), id)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Pilgrim not found")
	}
	return c.JSON(pilgrim)
}

// POST /api/pilgrims/bulk
func (h *PilgrimHandler) BulkCreate(c *fiber.Ctx) error {
	var pilgrims []models.Pilgrim
	if err := c.BodyParser(&pilgrims); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}
	if len(pilgrims) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "no pilgrims provided")
	}

	inserted, err := h.pilgrims.InsertMany(c.Context(), pilgrims)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	h.metrics.RowsImported.WithLabelValues("pilgrims").Add(float64(len(inserted)))
	return c.Status(fiber.StatusCreated).JSON(inserted)
}

type pilgrimImportRequest struct {
	Pilgrims []models.Pilgrim `json:"pilgrims"`
}

// POST /api/pilgrims/import replaces the whole collection.
func (h *PilgrimHandler) Import(c *fiber.Ctx) error {
	var req pilgrimImportRequest
	if err := c.BodyParser(&req); err != nil || req.Pilgrims == nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid data format")
	}

	count, err := h.pilgrims.ReplaceAll(c.Context(), req.Pilgrims)
	if err != nil {
		h.log.Error("pilgrim import failed", "rows", len(req.Pilgrims), "error", err)
		h.metrics.ErrorsCount.WithLabelValues("pilgrim_import").Inc()
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	h.metrics.RowsImported.WithLabelValues("pilgrims").Add(float64(count))
	return c.JSON(fiber.Map{"success": true, "count": count})
}

type bulkLinkRequest struct {
	Pilgrims []map[string]interface{} `json:"pilgrims"`
}

// POST /api/pilgrims/bulk-link upserts guide assignments by passport
// number, preserving unrelated fields.
func (h *PilgrimHandler) BulkLink(c *fiber.Ctx) error {
	var req bulkLinkRequest
	if err := c.BodyParser(&req); err != nil || len(req.Pilgrims) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid pilgrims data")
	}

	links := importer.PilgrimLinkRows(bodyRows(req.Pilgrims))
	for _, link := range links {
		if err := h.pilgrims.UpsertLink(c.Context(), link); err != nil {
			h.log.Error("bulk link failed", "passport", link.PassportNumber, "error", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to process bulk link request")
		}
	}

	return c.JSON(fiber.Map{"success": true, "count": len(links)})
}

// DELETE /api/pilgrims/:id
func (h *PilgrimHandler) Delete(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}
	if _, err := h.pilgrims.FindByID(c.Context(), id); err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Pilgrim not found")
	}
	if err := h.pilgrims.Delete(c.Context(), id); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(fiber.Map{"message": "Pilgrim deleted successfully"})
}
