package handlers

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"hajj-admin/internal/importer"
	"hajj-admin/internal/models"
	"hajj-admin/internal/repositories"
	"hajj-admin/pkg/logger"
	"hajj-admin/pkg/metrics"
)

type LinkedPilgrimHandler struct {
	linked  *repositories.LinkedPilgrimRepository
	log     logger.Logger
	metrics *metrics.Metrics
}

func NewLinkedPilgrimHandler(linked *repositories.LinkedPilgrimRepository, log logger.Logger, m *metrics.Metrics) *LinkedPilgrimHandler {
	return &LinkedPilgrimHandler{linked: linked, log: log, metrics: m}
}

// GET /api/pilgrims/linked
func (h *LinkedPilgrimHandler) List(c *fiber.Ctx) error {
	pilgrims, err := h.linked.FindAll(c.Context())
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if pilgrims == nil {
		pilgrims = []models.LinkedPilgrim{}
	}
	return c.JSON(pilgrims)
}

// POST /api/pilgrims/bulk-link
func (h *LinkedPilgrimHandler) BulkLink(c *fiber.Ctx) error {
	var body struct {
		Pilgrims []map[string]interface{} `json:"pilgrims"`
	}
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}
	if len(body.Pilgrims) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "pilgrims array is required")
	}

	linked := importer.LinkedPilgrimRows(bodyRows(body.Pilgrims), time.Now())
	if len(linked) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "no valid pilgrim rows")
	}

	if err := h.linked.InsertMany(c.Context(), linked); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fiber.NewError(fiber.StatusBadRequest, "Some pilgrims already exist")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	h.metrics.RowsImported.WithLabelValues("linked_pilgrims").Add(float64(len(linked)))
	h.log.Infof("linked %d pilgrims", len(linked))

	all, err := h.linked.FindAll(c.Context())
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success":  true,
		"message":  fmt.Sprintf("%d pilgrims linked", len(linked)),
		"pilgrims": all,
	})
}

// PUT /api/pilgrims/linked/:id/status
func (h *LinkedPilgrimHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, errInvalidID.Error())
	}

	var body struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}
	if !models.ValidLinkStatus(body.Status) {
		return fiber.NewError(fiber.StatusBadRequest, "invalid status value")
	}

	updated, err := h.linked.UpdateStatus(c.Context(), id, body.Status)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return fiber.NewError(fiber.StatusNotFound, "Pilgrim not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(updated)
}
