package models

import (
	"encoding/json"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	ProfileComplete   = "complete"
	ProfileIncomplete = "incomplete"
)

// Guide document stored in "guides". Guides are owned by the user that
// created them; only the creator may update or delete.
type Guide struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name         string             `bson:"name" json:"name"`
	Email        string             `bson:"email" json:"email"`
	PasswordHash string             `bson:"password_hash" json:"-"`
	PassportID   string             `bson:"passportId" json:"passportId"`
	NusukEmail   string             `bson:"nusukEmail" json:"nusukEmail"`
	Phone        string             `bson:"phone" json:"phone"`
	Mobile       string             `bson:"mobile" json:"mobile"`
	PassportFile string             `bson:"passportFile" json:"passportFile"`
	CreatedBy    primitive.ObjectID `bson:"createdBy,omitempty" json:"createdBy,omitempty"`
	CreatedAt    time.Time          `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
}

// ProfileStatus is derived from passport-file presence, never stored.
func (g Guide) ProfileStatus() string {
	if g.PassportFile != "" {
		return ProfileComplete
	}
	return ProfileIncomplete
}

func (g Guide) MarshalJSON() ([]byte, error) {
	type alias Guide
	return json.Marshal(struct {
		alias
		ProfileStatus string `json:"profileStatus"`
	}{alias(g), g.ProfileStatus()})
}
