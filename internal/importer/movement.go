package importer

import (
	"fmt"
	"time"

	"hajj-admin/internal/models"
	"hajj-admin/internal/spreadsheet"
)

// GroupMovements folds raw movement rows into one movement per grouping
// key, accumulating pilgrim details and the pilgrim count. Arrivals and
// departures group by flight number, date and time; hotel transfers by
// from, to, date and time. Rows with an unknown type are skipped.
// Groups come back in first-seen order.
func GroupMovements(rows []spreadsheet.Row) []models.Movement {
	grouped := map[string]*models.Movement{}
	var order []string

	for _, row := range rows {
		typ := row.Get("Type")
		switch typ {
		case models.MovementArrival, models.MovementDeparture, models.MovementTransfer:
		default:
			continue
		}

		date := formatMovementDate(row.Get("Date"))
		tm := row.Get("Time")

		var key string
		if typ == models.MovementTransfer {
			key = fmt.Sprintf("%s-%s-%s-%s-%s", typ, row.Get("From"), row.Get("To"), date, tm)
		} else {
			key = fmt.Sprintf("%s-%s-%s-%s", typ, row.Get("Flight Number"), date, tm)
		}

		m, seen := grouped[key]
		if !seen {
			m = &models.Movement{
				MovementID:     movementID(typ, row.Get("Al Rajhi ID")),
				Type:           typ,
				From:           row.Get("From"),
				To:             row.Get("To"),
				Date:           date,
				Time:           tm,
				Transportation: row.Get("Transportation"),
				Status:         "upcoming",
			}
			if typ != models.MovementTransfer {
				m.FlightNumber = row.Get("Flight Number")
			}
			grouped[key] = m
			order = append(order, key)
		}

		m.PilgrimCount++
		m.PilgrimDetails = append(m.PilgrimDetails, models.PilgrimDetail{
			ID:             row.Get("Al Rajhi ID"),
			Name:           row.Get("Full Name"),
			Gender:         row.Get("Gender"),
			PassportNumber: row.Get("Passport Number"),
			PackageName:    row.Get("Package Name"),
		})
	}

	movements := make([]models.Movement, 0, len(order))
	for _, key := range order {
		movements = append(movements, *grouped[key])
	}
	return movements
}

func movementID(typ, alRajhiID string) string {
	switch typ {
	case models.MovementArrival:
		return "import-arrival-" + alRajhiID
	case models.MovementDeparture:
		return "import-departure-" + alRajhiID
	default:
		return "import-transfer-" + alRajhiID
	}
}

func formatMovementDate(raw string) string {
	if raw == "" {
		return ""
	}
	t, ok := spreadsheet.CoerceDate(raw)
	if !ok {
		return raw
	}
	return t.Format(time.DateOnly)
}
