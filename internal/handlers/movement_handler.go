package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"hajj-admin/internal/exporter"
	"hajj-admin/internal/importer"
	"hajj-admin/internal/models"
	"hajj-admin/internal/repositories"
	"hajj-admin/pkg/logger"
	"hajj-admin/pkg/metrics"
)

type MovementHandler struct {
	movements *repositories.MovementRepository
	log       logger.Logger
	metrics   *metrics.Metrics
}

func NewMovementHandler(movements *repositories.MovementRepository, log logger.Logger, m *metrics.Metrics) *MovementHandler {
	return &MovementHandler{movements: movements, log: log, metrics: m}
}

// GET /api/movements
func (h *MovementHandler) List(c *fiber.Ctx) error {
	movements, err := h.movements.FindAll(c.Context())
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if movements == nil {
		movements = []models.Movement{}
	}
	return c.JSON(movements)
}

// POST /api/movements
func (h *MovementHandler) Create(c *fiber.Ctx) error {
	var m models.Movement
	if err := c.BodyParser(&m); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}
	created, err := h.movements.Insert(c.Context(), m)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// POST /api/movements/batch groups raw schedule rows into movements
// and stores one record per grouping key.
func (h *MovementHandler) Batch(c *fiber.Ctx) error {
	var raw []map[string]interface{}
	if err := c.BodyParser(&raw); err != nil || len(raw) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}

	movements := importer.GroupMovements(bodyRows(raw))
	if len(movements) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "no recognizable movement rows")
	}

	saved, err := h.movements.InsertMany(c.Context(), movements)
	if err != nil {
		h.log.Error("movement batch failed", "groups", len(movements), "error", err)
		h.metrics.ErrorsCount.WithLabelValues("movement_batch").Inc()
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	h.metrics.RowsImported.WithLabelValues("movements").Add(float64(len(raw)))
	return c.Status(fiber.StatusCreated).JSON(saved)
}

// GET /api/movements/export flattens all movements to one row per
// pilgrim detail.
func (h *MovementHandler) Export(c *fiber.Ctx) error {
	movements, err := h.movements.FindAll(c.Context())
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	file, err := exporter.MovementDetailsWorkbook(movements)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	defer file.Close()

	buf, err := file.WriteToBuffer()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="pilgrim-details-`+time.Now().Format(time.DateOnly)+`.xlsx"`)
	return c.Send(buf.Bytes())
}
