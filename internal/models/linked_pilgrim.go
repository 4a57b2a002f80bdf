package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	LinkApproved = "Approved"
	LinkPending  = "Pending"
	LinkRejected = "Rejected"
)

// ValidLinkStatus reports whether s is one of the approval states.
func ValidLinkStatus(s string) bool {
	return s == LinkApproved || s == LinkPending || s == LinkRejected
}

// LinkedPilgrim document stored in "linkedpilgrims". Passport is unique.
type LinkedPilgrim struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name        string             `bson:"name" json:"name"`
	Passport    string             `bson:"passport" json:"passport"`
	Guide       string             `bson:"guide" json:"guide"`
	Status      string             `bson:"status" json:"status"`
	Nationality string             `bson:"nationality" json:"nationality"`
	CreatedAt   time.Time          `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt   time.Time          `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}
