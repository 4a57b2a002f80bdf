package handlers

import (
	"github.com/gofiber/fiber/v2"

	"hajj-admin/internal/models"
	"hajj-admin/internal/repositories"
)

type HotelHandler struct {
	hotels *repositories.HotelRepository
}

func NewHotelHandler(hotels *repositories.HotelRepository) *HotelHandler {
	return &HotelHandler{hotels: hotels}
}

// GET /api/hotels
func (h *HotelHandler) List(c *fiber.Ctx) error {
	hotels, err := h.hotels.FindAll(c.Context())
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if hotels == nil {
		hotels = []models.Hotel{}
	}
	return c.JSON(hotels)
}

// POST /api/hotels
func (h *HotelHandler) Create(c *fiber.Ctx) error {
	var hotel models.Hotel
	if err := c.BodyParser(&hotel); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}
	if hotel.Name == "" {
		return fiber.NewError(fiber.StatusBadRequest, "name is required")
	}

	created, err := h.hotels.Insert(c.Context(), hotel)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}
