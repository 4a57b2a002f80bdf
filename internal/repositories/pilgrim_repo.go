package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"hajj-admin/internal/importer"
	"hajj-admin/internal/models"
)

type PilgrimRepository struct {
	db  *mongo.Database
	col *mongo.Collection
}

func NewPilgrimRepository(db *mongo.Database) *PilgrimRepository {
	return &PilgrimRepository{db: db, col: db.Collection("pilgrims")}
}

func (r *PilgrimRepository) FindAll(ctx context.Context) ([]models.Pilgrim, error) {
	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var pilgrims []models.Pilgrim
	if err := cur.All(ctx, &pilgrims); err != nil {
		return nil, err
	}
	return pilgrims, nil
}

func (r *PilgrimRepository) FindByID(ctx context.Context, id primitive.ObjectID) (models.Pilgrim, error) {
	var p models.Pilgrim
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	return p, err
}

func (r *PilgrimRepository) InsertMany(ctx context.Context, pilgrims []models.Pilgrim) ([]models.Pilgrim, error) {
	res, err := r.col.InsertMany(ctx, pilgrimDocs(pilgrims))
	if err != nil {
		return nil, err
	}
	for i, id := range res.InsertedIDs {
		if oid, ok := id.(primitive.ObjectID); ok {
			pilgrims[i].ID = oid
		}
	}
	return pilgrims, nil
}

// ReplaceAll swaps the whole collection for the given pilgrims via the
// staging rename, so concurrent readers never see it empty.
func (r *PilgrimRepository) ReplaceAll(ctx context.Context, pilgrims []models.Pilgrim) (int, error) {
	return stagedReplace(ctx, r.db, "pilgrims", pilgrimDocs(pilgrims))
}

// pilgrimDocs applies the defaults in place before building the insert
// batch, so what callers hand back to the client is exactly what was
// persisted.
func pilgrimDocs(pilgrims []models.Pilgrim) []interface{} {
	docs := make([]interface{}, len(pilgrims))
	for i := range pilgrims {
		pilgrims[i].ApplyDefaults()
		docs[i] = pilgrims[i]
	}
	return docs
}

// UpsertLink assigns a guide by passport number, creating the pilgrim
// when absent and leaving unrelated fields alone otherwise.
func (r *PilgrimRepository) UpsertLink(ctx context.Context, link importer.PilgrimLink) error {
	opts := options.Update().SetUpsert(true)
	_, err := r.col.UpdateOne(ctx,
		bson.M{"passportNumber": link.PassportNumber},
		bson.M{
			"$set": bson.M{
				"name":      link.Name,
				"guideName": link.GuideName,
				"updatedAt": time.Now(),
			},
			"$setOnInsert": bson.M{
				"country":   models.DefaultCountry,
				"organizer": models.DefaultOrganizer,
				"status":    "Active",
				"createdAt": time.Now(),
			},
		},
		opts,
	)
	return err
}

func (r *PilgrimRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func (r *PilgrimRepository) Count(ctx context.Context) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{})
}
