package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"hajj-admin/internal/models"
)

type MovementRepository struct {
	col *mongo.Collection
}

func NewMovementRepository(db *mongo.Database) *MovementRepository {
	return &MovementRepository{col: db.Collection("movements")}
}

func (r *MovementRepository) FindAll(ctx context.Context) ([]models.Movement, error) {
	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var movements []models.Movement
	if err := cur.All(ctx, &movements); err != nil {
		return nil, err
	}
	return movements, nil
}

func (r *MovementRepository) Insert(ctx context.Context, m models.Movement) (models.Movement, error) {
	res, err := r.col.InsertOne(ctx, m)
	if err != nil {
		return m, err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		m.ID = oid
	}
	return m, nil
}

func (r *MovementRepository) InsertMany(ctx context.Context, movements []models.Movement) ([]models.Movement, error) {
	docs := make([]interface{}, len(movements))
	for i, m := range movements {
		docs[i] = m
	}
	res, err := r.col.InsertMany(ctx, docs)
	if err != nil {
		return nil, err
	}
	for i, id := range res.InsertedIDs {
		if oid, ok := id.(primitive.ObjectID); ok {
			movements[i].ID = oid
		}
	}
	return movements, nil
}

func (r *MovementRepository) Count(ctx context.Context) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{})
}
