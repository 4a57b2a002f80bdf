package importer

import (
	"time"

	"hajj-admin/internal/models"
	"hajj-admin/internal/spreadsheet"
)

// HotelPilgrimRows maps raw rows to denormalized hotel-pilgrim records.
// Each field degrades independently: a bad age or date never drops the
// row, it just stays unset and bumps the warnings count.
func HotelPilgrimRows(rows []spreadsheet.Row, now time.Time) ([]models.HotelPilgrim, int) {
	pilgrims := make([]models.HotelPilgrim, 0, len(rows))
	warnings := 0

	for _, row := range rows {
		p := models.HotelPilgrim{
			AlRajhiID:       row.Get("Al Rajhi ID"),
			PilgrimCategory: row.Get("Pilgrim Category"),
			TypeOfPilgrim:   row.Get("Type of Pilgrim"),
			Gender:          row.Get("Gender"),
			PassportNumber:  row.Get("Passport Number"),
			FullName:        row.Get("Full Name"),
			Email:           row.Get("Email"),
			MobileNumber:    row.Get("Mobile Number"),
			WheelChair:      row.Get("Wheel Chair"),
			GuideName:       row.Get("Guide Name"),
			PackageName:     row.Get("Package Name"),
			CreatedAt:       now,
			UpdatedAt:       now,
		}

		if raw := row.Get("Age"); raw != "" {
			if age, ok := spreadsheet.CoerceInt(raw); ok {
				p.Age = &age
			} else {
				warnings++
			}
		}

		p.Hotel1 = hotelStay(row, "Hotel 1", "Room Type 1", &warnings)
		p.Hotel2 = hotelStay(row, "Hotel 2", "Room Type 2", &warnings)

		pilgrims = append(pilgrims, p)
	}
	return pilgrims, warnings
}

func hotelStay(row spreadsheet.Row, prefix, roomTypeHeader string, warnings *int) models.HotelStay {
	stay := models.HotelStay{
		Name:     row.Get(prefix),
		Rating:   row.Get(prefix + " Rating"),
		Services: row.Get(prefix + " Services"),
		RoomType: row.Get(roomTypeHeader),
	}
	stay.CheckIn = stayDate(row.Get(prefix+" Check In"), warnings)
	stay.CheckOut = stayDate(row.Get(prefix+" Check Out"), warnings)
	return stay
}

func stayDate(raw string, warnings *int) *time.Time {
	if raw == "" {
		return nil
	}
	t, ok := spreadsheet.CoerceDate(raw)
	if !ok {
		*warnings++
		return nil
	}
	return &t
}
