package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// HotelStay is one of the two embedded hotel assignments on a HotelPilgrim.
type HotelStay struct {
	Name     string     `bson:"name" json:"name"`
	Rating   string     `bson:"rating" json:"rating"`
	Services string     `bson:"services" json:"services"`
	RoomType string     `bson:"roomType" json:"roomType"`
	CheckIn  *time.Time `bson:"checkIn,omitempty" json:"checkIn,omitempty"`
	CheckOut *time.Time `bson:"checkOut,omitempty" json:"checkOut,omitempty"`
}

// HotelPilgrim is the denormalized pilgrim record used by the hotel
// assignment screens. The whole collection is replaced on each import.
type HotelPilgrim struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	AlRajhiID       string             `bson:"alRajhiId" json:"alRajhiId"`
	PilgrimCategory string             `bson:"pilgrimCategory" json:"pilgrimCategory"`
	TypeOfPilgrim   string             `bson:"typeOfPilgrim" json:"typeOfPilgrim"`
	Gender          string             `bson:"gender" json:"gender"`
	PassportNumber  string             `bson:"passportNumber" json:"passportNumber"`
	FullName        string             `bson:"fullName" json:"fullName"`
	Age             *int               `bson:"age,omitempty" json:"age,omitempty"`
	Email           string             `bson:"email" json:"email"`
	MobileNumber    string             `bson:"mobileNumber" json:"mobileNumber"`
	WheelChair      string             `bson:"wheelChair" json:"wheelChair"`
	GuideName       string             `bson:"guideName" json:"guideName"`
	PackageName     string             `bson:"packageName" json:"packageName"`
	Hotel1          HotelStay          `bson:"hotel1" json:"hotel1"`
	Hotel2          HotelStay          `bson:"hotel2" json:"hotel2"`
	CreatedAt       time.Time          `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt       time.Time          `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}
