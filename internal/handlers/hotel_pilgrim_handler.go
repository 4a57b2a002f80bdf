package handlers

import (
	"math"
	"net/url"
	"time"

	"github.com/gofiber/fiber/v2"

	"hajj-admin/internal/exporter"
	"hajj-admin/internal/importer"
	"hajj-admin/internal/models"
	"hajj-admin/internal/repositories"
	"hajj-admin/pkg/logger"
	"hajj-admin/pkg/metrics"
)

// Occupancy assumptions used by the statistics screen.
const (
	assumedRoomsPerHotel    = 100
	assumedCapacityPerHotel = 300
)

type HotelPilgrimHandler struct {
	pilgrims *repositories.HotelPilgrimRepository
	log      logger.Logger
	metrics  *metrics.Metrics
}

func NewHotelPilgrimHandler(pilgrims *repositories.HotelPilgrimRepository, log logger.Logger, m *metrics.Metrics) *HotelPilgrimHandler {
	return &HotelPilgrimHandler{pilgrims: pilgrims, log: log, metrics: m}
}

// POST /api/hotel-pilgrims/import replaces the whole collection with
// normalized rows, reporting how many fields fell back to defaults.
func (h *HotelPilgrimHandler) Import(c *fiber.Ctx) error {
	var raw []map[string]interface{}
	if err := c.BodyParser(&raw); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid input: Expected an array")
	}

	start := time.Now()
	pilgrims, warnings := importer.HotelPilgrimRows(bodyRows(raw), time.Now())

	count, err := h.pilgrims.ReplaceAll(c.Context(), pilgrims)
	if err != nil {
		h.log.Error("hotel pilgrim import failed", "rows", len(raw), "error", err)
		h.metrics.ErrorsCount.WithLabelValues("hotel_pilgrim_import").Inc()
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to import data: "+err.Error())
	}

	h.metrics.RowsImported.WithLabelValues("hotel_pilgrims").Add(float64(count))
	h.metrics.ImportDuration.Observe(time.Since(start).Seconds())

	return c.JSON(fiber.Map{
		"success":  true,
		"count":    count,
		"warnings": warnings,
		"message":  "Data imported successfully",
	})
}

// GET /api/hotel-pilgrims/hotel/:hotelName
func (h *HotelPilgrimHandler) ByHotel(c *fiber.Ctx) error {
	hotelName := hotelNameParam(c)
	page := int64(c.QueryInt("page", 1))
	limit := int64(c.QueryInt("limit", 10))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	pilgrims, total, err := h.pilgrims.FindByHotel(c.Context(), hotelName, page, limit)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch pilgrims")
	}
	if pilgrims == nil {
		pilgrims = []models.HotelPilgrim{}
	}

	return c.JSON(fiber.Map{
		"pilgrims":    pilgrims,
		"totalPages":  int64(math.Ceil(float64(total) / float64(limit))),
		"currentPage": page,
		"totalItems":  total,
	})
}

// GET /api/hotel-pilgrims/all
func (h *HotelPilgrimHandler) AllStays(c *fiber.Ctx) error {
	pilgrims, err := h.pilgrims.FindStays(c.Context())
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch pilgrims data")
	}
	if pilgrims == nil {
		pilgrims = []models.HotelPilgrim{}
	}
	return c.JSON(fiber.Map{"success": true, "pilgrims": pilgrims})
}

// GET /api/hotel-pilgrims/statistics
func (h *HotelPilgrimHandler) Statistics(c *fiber.Ctx) error {
	pilgrims, err := h.pilgrims.FindAll(c.Context())
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to calculate statistics")
	}
	return c.JSON(ComputeHotelStatistics(pilgrims))
}

// GET /api/hotel-pilgrims/export/:hotelName
func (h *HotelPilgrimHandler) Export(c *fiber.Ctx) error {
	hotelName := hotelNameParam(c)
	pilgrims, err := h.pilgrims.FindAllByHotel(c.Context(), hotelName)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch pilgrims")
	}

	file, err := exporter.HotelPilgrimWorkbook(hotelName, pilgrims)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	defer file.Close()

	buf, err := file.WriteToBuffer()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+hotelName+`_Pilgrims.xlsx"`)
	return c.Send(buf.Bytes())
}

func hotelNameParam(c *fiber.Ctx) string {
	raw := c.Params("hotelName")
	if decoded, err := url.PathUnescape(raw); err == nil {
		return decoded
	}
	return raw
}
