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

type LinkedPilgrimRepository struct {
	col *mongo.Collection
}

func NewLinkedPilgrimRepository(db *mongo.Database) *LinkedPilgrimRepository {
	col := db.Collection("linkedpilgrims")
	col.Indexes().CreateOne(context.Background(), mongo.IndexModel{
		Keys:    bson.M{"passport": 1},
		Options: options.Index().SetUnique(true),
	})
	return &LinkedPilgrimRepository{col: col}
}

func (r *LinkedPilgrimRepository) FindAll(ctx context.Context) ([]models.LinkedPilgrim, error) {
	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var pilgrims []models.LinkedPilgrim
	if err := cur.All(ctx, &pilgrims); err != nil {
		return nil, err
	}
	return pilgrims, nil
}

// InsertMany is unordered so one duplicate passport does not block the
// rest of the batch.
func (r *LinkedPilgrimRepository) InsertMany(ctx context.Context, pilgrims []models.LinkedPilgrim) error {
	docs := make([]interface{}, len(pilgrims))
	for i, p := range pilgrims {
		docs[i] = p
	}
	_, err := r.col.InsertMany(ctx, docs, options.InsertMany().SetOrdered(false))
	return err
}

func (r *LinkedPilgrimRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) (models.LinkedPilgrim, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var p models.LinkedPilgrim
	err := r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now()}},
		opts,
	).Decode(&p)
	return p, err
}
