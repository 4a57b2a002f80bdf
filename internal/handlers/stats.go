package handlers

import (
	"math"

	"github.com/gofiber/fiber/v2"

	"hajj-admin/internal/models"
)

// DocumentStats is the summary block returned with the passport/visa
// listing.
type DocumentStats struct {
	TotalPilgrims      int `json:"totalPilgrims"`
	PassportDocuments  int `json:"passportDocuments"`
	VisaDocuments      int `json:"visaDocuments"`
	MissingDocuments   int `json:"missingDocuments"`
	PassportPercentage int `json:"passportPercentage"`
	VisaPercentage     int `json:"visaPercentage"`
	MissingPercentage  int `json:"missingPercentage"`
}

// ComputeDocumentStats derives the document coverage summary. Each
// distinct passport number is one pilgrim expected to hold one
// Passport row and one Visa row; rows marked Missing do not count as
// held, so missingDocuments is the shortfall from 2x the pilgrim
// count and can never go negative.
func ComputeDocumentStats(docs []models.PassportVisa) DocumentStats {
	passports := map[string]bool{}
	var passportDocs, visaDocs int
	for _, doc := range docs {
		if doc.PassportNumber != "" {
			passports[doc.PassportNumber] = true
		}
		if doc.Status == models.DocStatusMissing {
			continue
		}
		switch doc.DocumentType {
		case models.DocTypePassport:
			passportDocs++
		case models.DocTypeVisa:
			visaDocs++
		}
	}

	total := len(passports)
	missing := maxInt(total-passportDocs, 0) + maxInt(total-visaDocs, 0)
	expected := total * 2

	return DocumentStats{
		TotalPilgrims:      total,
		PassportDocuments:  passportDocs,
		VisaDocuments:      visaDocs,
		MissingDocuments:   missing,
		PassportPercentage: percentage(passportDocs, total),
		VisaPercentage:     percentage(visaDocs, total),
		MissingPercentage:  percentage(missing, expected),
	}
}

// ComputeHotelStatistics derives the occupancy summary from the
// denormalized hotel-pilgrim records.
func ComputeHotelStatistics(pilgrims []models.HotelPilgrim) fiber.Map {
	unique := map[string]bool{}
	var order []string
	totalOccupied := 0

	for _, p := range pilgrims {
		for _, name := range []string{p.Hotel1.Name, p.Hotel2.Name} {
			if name == "" {
				continue
			}
			totalOccupied++
			if !unique[name] {
				unique[name] = true
				order = append(order, name)
			}
		}
	}

	hotelOccupancy := make([]fiber.Map, 0, len(order))
	for _, name := range order {
		occupancy := 0
		for _, p := range pilgrims {
			if p.Hotel1.Name == name {
				occupancy++
			}
			if p.Hotel2.Name == name {
				occupancy++
			}
		}
		hotelOccupancy = append(hotelOccupancy, fiber.Map{
			"name":      name,
			"occupancy": int(math.Round(float64(occupancy) / assumedCapacityPerHotel * 100)),
		})
	}

	totalHotels := len(order)
	totalCapacity := totalHotels * assumedCapacityPerHotel
	occupancyRate := 0
	if totalCapacity > 0 {
		occupancyRate = int(math.Round(float64(totalOccupied) / float64(totalCapacity) * 100))
	}

	return fiber.Map{
		"success": true,
		"stats": fiber.Map{
			"totalHotels":   totalHotels,
			"totalRooms":    totalHotels * assumedRoomsPerHotel,
			"totalCapacity": totalCapacity,
			"occupancyRate": occupancyRate,
		},
		"hotelOccupancy": hotelOccupancy,
	}
}

func percentage(part, whole int) int {
	if whole <= 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(whole) * 100))
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
