package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"hajj-admin/internal/models"
)

type HotelRepository struct {
	col *mongo.Collection
}

func NewHotelRepository(db *mongo.Database) *HotelRepository {
	return &HotelRepository{col: db.Collection("hotels")}
}

func (r *HotelRepository) FindAll(ctx context.Context) ([]models.Hotel, error) {
	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var hotels []models.Hotel
	if err := cur.All(ctx, &hotels); err != nil {
		return nil, err
	}
	return hotels, nil
}

func (r *HotelRepository) Insert(ctx context.Context, h models.Hotel) (models.Hotel, error) {
	h.ApplyDefaults()
	res, err := r.col.InsertOne(ctx, h)
	if err != nil {
		return h, err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		h.ID = oid
	}
	return h, nil
}

func (r *HotelRepository) Count(ctx context.Context) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{})
}
