package models

import "go.mongodb.org/mongo-driver/bson/primitive"

const (
	MovementArrival   = "Arrival"
	MovementDeparture = "Departure"
	MovementTransfer  = "Transfer of Hotels"
)

// PilgrimDetail is one pilgrim travelling on a movement.
type PilgrimDetail struct {
	ID             string `bson:"id" json:"id"`
	Name           string `bson:"name" json:"name"`
	Gender         string `bson:"gender" json:"gender"`
	PassportNumber string `bson:"passportNumber" json:"passportNumber"`
	PackageName    string `bson:"packageName" json:"packageName"`
}

// Movement is one transport event. Batch imports fold raw rows sharing a
// grouping key (flight for arrivals and departures, from/to/date/time for
// transfers) into a single movement.
type Movement struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	MovementID     string             `bson:"id" json:"id"`
	Type           string             `bson:"type" json:"type"`
	From           string             `bson:"from" json:"from"`
	To             string             `bson:"to" json:"to"`
	Date           string             `bson:"date" json:"date"`
	Time           string             `bson:"time" json:"time"`
	FlightNumber   string             `bson:"flightNumber" json:"flightNumber"`
	Transportation string             `bson:"transportation" json:"transportation"`
	Status         string             `bson:"status" json:"status"`
	PilgrimCount   int                `bson:"pilgrimCount" json:"pilgrimCount"`
	PilgrimDetails []PilgrimDetail    `bson:"pilgrimDetails" json:"pilgrimDetails"`
}
