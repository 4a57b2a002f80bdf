package exporter

import (
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"hajj-admin/internal/models"
	"hajj-admin/internal/spreadsheet"
)

// MatchingStay picks whichever embedded stay belongs to hotelName,
// preferring the first. The match is a case-insensitive substring,
// the same semantics the hotel listing queries with, so an export
// never drops a pilgrim the listing shows.
func MatchingStay(p models.HotelPilgrim, hotelName string) (models.HotelStay, bool) {
	needle := strings.ToLower(strings.TrimSpace(hotelName))
	if needle == "" {
		return models.HotelStay{}, false
	}
	if strings.Contains(strings.ToLower(p.Hotel1.Name), needle) {
		return p.Hotel1, true
	}
	if strings.Contains(strings.ToLower(p.Hotel2.Name), needle) {
		return p.Hotel2, true
	}
	return models.HotelStay{}, false
}

// HotelPilgrimWorkbook is the relationship-scoped export: only the
// fields of the stay matching the queried hotel, one row per pilgrim
// assigned there.
func HotelPilgrimWorkbook(hotelName string, pilgrims []models.HotelPilgrim) (*excelize.File, error) {
	columns := []spreadsheet.Column{
		{Header: "Full Name", Width: 22},
		{Header: "Passport Number", Width: 15},
		{Header: "Guide Name", Width: 18},
		{Header: "Package Name", Width: 18},
		{Header: "Hotel", Width: 18},
		{Header: "Room Type", Width: 14},
		{Header: "Check In", Width: 12},
		{Header: "Check Out", Width: 12},
	}

	rows := make([][]interface{}, 0, len(pilgrims))
	for _, p := range pilgrims {
		stay, ok := MatchingStay(p, hotelName)
		if !ok {
			continue
		}
		rows = append(rows, []interface{}{
			p.FullName,
			p.PassportNumber,
			p.GuideName,
			p.PackageName,
			stay.Name,
			stay.RoomType,
			stayDate(stay.CheckIn),
			stayDate(stay.CheckOut),
		})
	}

	return spreadsheet.WriteWorkbook(hotelName+" Pilgrims", columns, rows)
}

func stayDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("1/2/2006")
}
