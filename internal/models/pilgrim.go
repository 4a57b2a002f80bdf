package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	DefaultCountry   = "USA"
	DefaultOrganizer = "Noor Al-Fajr"
)

// Pilgrim document stored in "pilgrims". Passport number is the natural key.
type Pilgrim struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name           string             `bson:"name" json:"name"`
	PassportNumber string             `bson:"passportNumber" json:"passportNumber"`
	Country        string             `bson:"country" json:"country"`
	Guide          string             `bson:"guide,omitempty" json:"guide,omitempty"`
	GuideName      string             `bson:"guideName,omitempty" json:"guideName,omitempty"`
	Organizer      string             `bson:"organizer" json:"organizer"`
	Status         string             `bson:"status" json:"status"`
	CreatedAt      time.Time          `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt      time.Time          `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// ApplyDefaults fills the fields the import pipelines leave blank.
func (p *Pilgrim) ApplyDefaults() {
	if p.Country == "" {
		p.Country = DefaultCountry
	}
	if p.Organizer == "" {
		p.Organizer = DefaultOrganizer
	}
	if p.Status == "" {
		p.Status = "Active"
	}
}
