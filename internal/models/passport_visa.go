package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	DocTypePassport = "Passport"
	DocTypeVisa     = "Visa"

	DocStatusComplete = "Complete"
	DocStatusMissing  = "Missing"
	DocStatusPending  = "Pending"
)

// FileDetails is the metadata of the uploaded file bound to a document
// record. Path is the canonical location derived once at upload time;
// all later reads and deletes use it verbatim.
type FileDetails struct {
	Filename     string    `bson:"filename" json:"filename"`
	OriginalName string    `bson:"originalname" json:"originalname"`
	Mimetype     string    `bson:"mimetype" json:"mimetype"`
	Size         int64     `bson:"size" json:"size"`
	Path         string    `bson:"path" json:"path"`
	UploadDate   time.Time `bson:"uploadDate" json:"uploadDate"`
}

// PassportVisa document stored in "passportvisas". One row per
// (pilgrim, document type) pair; every pilgrim is expected to have
// exactly one Passport row and one Visa row.
type PassportVisa struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name           string             `bson:"name" json:"name"`
	PassportNumber string             `bson:"passportNumber" json:"passportNumber"`
	Country        string             `bson:"country" json:"country"`
	Guide          string             `bson:"guide" json:"guide"`
	Organizer      string             `bson:"organizer" json:"organizer"`
	DocumentType   string             `bson:"documentType" json:"documentType"`
	UploadDate     time.Time          `bson:"uploadDate" json:"uploadDate"`
	UploadedBy     string             `bson:"uploadedBy" json:"uploadedBy"`
	Status         string             `bson:"status" json:"status"`
	DocumentName   string             `bson:"documentName" json:"documentName"`
	FileDetails    *FileDetails       `bson:"fileDetails,omitempty" json:"fileDetails,omitempty"`
	CreatedAt      time.Time          `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt      time.Time          `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}
