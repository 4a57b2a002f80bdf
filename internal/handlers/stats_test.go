package handlers

import (
	"testing"

	"github.com/gofiber/fiber/v2"

	"hajj-admin/internal/models"
)

func doc(passport, docType, status string) models.PassportVisa {
	return models.PassportVisa{
		PassportNumber: passport,
		DocumentType:   docType,
		Status:         status,
	}
}

func TestComputeDocumentStats(t *testing.T) {
	docs := []models.PassportVisa{
		doc("P1", models.DocTypePassport, models.DocStatusComplete),
		doc("P1", models.DocTypeVisa, models.DocStatusPending),
		doc("P2", models.DocTypePassport, models.DocStatusComplete),
		doc("P2", models.DocTypeVisa, models.DocStatusMissing),
		doc("P3", models.DocTypeVisa, models.DocStatusComplete),
	}

	stats := ComputeDocumentStats(docs)

	if stats.TotalPilgrims != 3 {
		t.Errorf("totalPilgrims = %d, want 3", stats.TotalPilgrims)
	}
	if stats.PassportDocuments != 2 {
		t.Errorf("passportDocuments = %d, want 2", stats.PassportDocuments)
	}
	if stats.VisaDocuments != 2 {
		t.Errorf("visaDocuments = %d, want 2 (Missing rows do not count)", stats.VisaDocuments)
	}
	// (3-2) passports short + (3-2) visas short.
	if stats.MissingDocuments != 2 {
		t.Errorf("missingDocuments = %d, want 2", stats.MissingDocuments)
	}
	if stats.PassportPercentage != 67 {
		t.Errorf("passportPercentage = %d, want 67", stats.PassportPercentage)
	}
}

func TestComputeDocumentStatsEmpty(t *testing.T) {
	stats := ComputeDocumentStats(nil)
	if stats.TotalPilgrims != 0 || stats.MissingDocuments != 0 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.PassportPercentage != 0 || stats.VisaPercentage != 0 || stats.MissingPercentage != 0 {
		t.Errorf("percentages must guard division by zero: %+v", stats)
	}
}

func TestComputeDocumentStatsNeverNegative(t *testing.T) {
	// More documents than distinct pilgrims (duplicate type rows).
	docs := []models.PassportVisa{
		doc("P1", models.DocTypePassport, models.DocStatusComplete),
		doc("P1", models.DocTypePassport, models.DocStatusComplete),
		doc("P1", models.DocTypeVisa, models.DocStatusComplete),
	}
	stats := ComputeDocumentStats(docs)
	if stats.MissingDocuments < 0 {
		t.Errorf("missingDocuments went negative: %d", stats.MissingDocuments)
	}
}

func TestComputeHotelStatistics(t *testing.T) {
	stay := func(name string) models.HotelStay { return models.HotelStay{Name: name} }
	pilgrims := []models.HotelPilgrim{
		{Hotel1: stay("Makkah Towers"), Hotel2: stay("Madinah Plaza")},
		{Hotel1: stay("Makkah Towers")},
		{Hotel1: stay("Makkah Towers")},
	}

	result := ComputeHotelStatistics(pilgrims)

	stats, ok := result["stats"].(fiber.Map)
	if !ok {
		t.Fatalf("stats block missing: %v", result)
	}
	if stats["totalHotels"] != 2 {
		t.Errorf("totalHotels = %v, want 2", stats["totalHotels"])
	}
	if stats["totalRooms"] != 2*assumedRoomsPerHotel {
		t.Errorf("totalRooms = %v", stats["totalRooms"])
	}
	if stats["totalCapacity"] != 2*assumedCapacityPerHotel {
		t.Errorf("totalCapacity = %v", stats["totalCapacity"])
	}

	occupancy, ok := result["hotelOccupancy"].([]fiber.Map)
	if !ok {
		t.Fatalf("hotelOccupancy block missing: %v", result)
	}
	if len(occupancy) != 2 {
		t.Fatalf("got %d hotels, want 2", len(occupancy))
	}
	// First-seen order: Makkah Towers before Madinah Plaza.
	if occupancy[0]["name"] != "Makkah Towers" {
		t.Errorf("first hotel = %v", occupancy[0]["name"])
	}
	// 3 of 300 beds is 1%.
	if occupancy[0]["occupancy"] != 1 {
		t.Errorf("occupancy = %v, want 1", occupancy[0]["occupancy"])
	}
}

func TestComputeHotelStatisticsEmpty(t *testing.T) {
	result := ComputeHotelStatistics(nil)
	stats := result["stats"].(fiber.Map)
	if stats["occupancyRate"] != 0 {
		t.Errorf("occupancyRate = %v, want 0 with no hotels", stats["occupancyRate"])
	}
}
