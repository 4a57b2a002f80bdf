package handlers

import (
	"context"
	"sync"

	"github.com/gofiber/fiber/v2"

	"hajj-admin/internal/repositories"
	"hajj-admin/pkg/logger"
)

type DashboardHandler struct {
	pilgrims  *repositories.PilgrimRepository
	guides    *repositories.GuideRepository
	hotels    *repositories.HotelRepository
	packages  *repositories.HotelPilgrimRepository
	movements *repositories.MovementRepository
	log       logger.Logger
}

func NewDashboardHandler(
	pilgrims *repositories.PilgrimRepository,
	guides *repositories.GuideRepository,
	hotels *repositories.HotelRepository,
	packages *repositories.HotelPilgrimRepository,
	movements *repositories.MovementRepository,
	log logger.Logger,
) *DashboardHandler {
	return &DashboardHandler{
		pilgrims:  pilgrims,
		guides:    guides,
		hotels:    hotels,
		packages:  packages,
		movements: movements,
		log:       log,
	}
}

// GET /api/dashboard/summary
//
// The five counts hit independent collections, so they are gathered
// concurrently. A failing count reports zero instead of failing the
// whole summary.
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	ctx := c.Context()

	counts := make([]int64, 5)
	sources := []struct {
		name string
		fn   func(context.Context) (int64, error)
	}{
		{"pilgrims", h.pilgrims.Count},
		{"guides", h.guides.Count},
		{"hotels", h.hotels.Count},
		{"hotel packages", h.packages.Count},
		{"movements", h.movements.Count},
	}

	var wg sync.WaitGroup
	for i, src := range sources {
		wg.Add(1)
		go func(i int, name string, fn func(context.Context) (int64, error)) {
			defer wg.Done()
			n, err := fn(ctx)
			if err != nil {
				h.log.Errorf("counting %s: %v", name, err)
				return
			}
			counts[i] = n
		}(i, src.name, src.fn)
	}
	wg.Wait()

	return c.JSON(fiber.Map{
		"success": true,
		"summary": fiber.Map{
			"totalPilgrims":  counts[0],
			"totalGuides":    counts[1],
			"totalHotels":    counts[2],
			"totalPackages":  counts[3],
			"totalMovements": counts[4],
		},
	})
}
