package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Hotel document stored in "hotels"
type Hotel struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name       string             `bson:"name" json:"name"`
	Type       string             `bson:"type" json:"type"`
	Location   string             `bson:"location,omitempty" json:"location,omitempty"`
	TotalRooms int                `bson:"totalRooms,omitempty" json:"totalRooms,omitempty"`
	Capacity   int                `bson:"capacity,omitempty" json:"capacity,omitempty"`
	Status     string             `bson:"status" json:"status"`
}

// ApplyDefaults fills the optional reference-entity fields.
func (h *Hotel) ApplyDefaults() {
	if h.Type == "" {
		h.Type = "Single Building"
	}
	if h.Status == "" {
		h.Status = "Available"
	}
}
