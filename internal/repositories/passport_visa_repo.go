package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"hajj-admin/internal/models"
)

type PassportVisaRepository struct {
	col *mongo.Collection
}

func NewPassportVisaRepository(db *mongo.Database) *PassportVisaRepository {
	col := db.Collection("passportvisas")
	col.Indexes().CreateOne(context.Background(), mongo.IndexModel{
		Keys: bson.D{{Key: "passportNumber", Value: 1}, {Key: "documentType", Value: 1}},
	})
	return &PassportVisaRepository{col: col}
}

// FindAllSorted returns every document, newest upload first.
func (r *PassportVisaRepository) FindAllSorted(ctx context.Context) ([]models.PassportVisa, error) {
	opts := options.Find().SetSort(bson.M{"uploadDate": -1})
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	var docs []models.PassportVisa
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

func (r *PassportVisaRepository) FindByID(ctx context.Context, id primitive.ObjectID) (models.PassportVisa, error) {
	var doc models.PassportVisa
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	return doc, err
}

// FindByPassportNumber returns the pilgrim's document record, picking
// the row that carries the uploaded file. A pilgrim has one row per
// document type under the same passport number, so a plain FindOne can
// land on the sibling row and miss the attached file.
func (r *PassportVisaRepository) FindByPassportNumber(ctx context.Context, passportNumber string) (models.PassportVisa, error) {
	cur, err := r.col.Find(ctx, bson.M{"passportNumber": passportNumber})
	if err != nil {
		return models.PassportVisa{}, err
	}
	var docs []models.PassportVisa
	if err := cur.All(ctx, &docs); err != nil {
		return models.PassportVisa{}, err
	}
	if len(docs) == 0 {
		return models.PassportVisa{}, mongo.ErrNoDocuments
	}
	return preferDocumentWithFile(docs), nil
}

// preferDocumentWithFile picks the row with file metadata, falling
// back to the first row so callers can still tell "record exists, no
// file" apart from "no record at all".
func preferDocumentWithFile(docs []models.PassportVisa) models.PassportVisa {
	for _, doc := range docs {
		if doc.FileDetails != nil {
			return doc
		}
	}
	return docs[0]
}

func (r *PassportVisaRepository) InsertMany(ctx context.Context, docs []models.PassportVisa) (int, error) {
	many := make([]interface{}, len(docs))
	for i, d := range docs {
		many[i] = d
	}
	res, err := r.col.InsertMany(ctx, many)
	if err != nil {
		return 0, err
	}
	return len(res.InsertedIDs), nil
}

// AttachFile records an upload: status flips to Complete and the
// canonical file metadata is stored on the document.
func (r *PassportVisaRepository) AttachFile(ctx context.Context, id primitive.ObjectID, details models.FileDetails) error {
	_, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{
		"status":      models.DocStatusComplete,
		"uploadDate":  details.UploadDate,
		"fileDetails": details,
		"updatedAt":   time.Now(),
	}})
	return err
}

// DetachFile clears the file metadata and drops the status back to
// Pending so it never claims a file that is gone.
func (r *PassportVisaRepository) DetachFile(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set":   bson.M{"status": models.DocStatusPending, "updatedAt": time.Now()},
		"$unset": bson.M{"fileDetails": ""},
	})
	return err
}

func (r *PassportVisaRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func (r *PassportVisaRepository) DeleteAll(ctx context.Context) (int64, error) {
	res, err := r.col.DeleteMany(ctx, bson.M{})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (r *PassportVisaRepository) Count(ctx context.Context) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{})
}
