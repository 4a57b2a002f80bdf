package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"hajj-admin/internal/models"
)

type HotelPilgrimRepository struct {
	db  *mongo.Database
	col *mongo.Collection
}

func NewHotelPilgrimRepository(db *mongo.Database) *HotelPilgrimRepository {
	return &HotelPilgrimRepository{db: db, col: db.Collection("hotelpilgrims")}
}

// ReplaceAll swaps the whole collection on import (staging rename).
func (r *HotelPilgrimRepository) ReplaceAll(ctx context.Context, pilgrims []models.HotelPilgrim) (int, error) {
	docs := make([]interface{}, len(pilgrims))
	for i, p := range pilgrims {
		docs[i] = p
	}
	return stagedReplace(ctx, r.db, "hotelpilgrims", docs)
}

func hotelFilter(hotelName string) bson.M {
	re := primitive.Regex{Pattern: hotelName, Options: "i"}
	return bson.M{"$or": bson.A{
		bson.M{"hotel1.name": re},
		bson.M{"hotel2.name": re},
	}}
}

// FindByHotel matches either embedded stay, case-insensitive,
// paginated.
func (r *HotelPilgrimRepository) FindByHotel(ctx context.Context, hotelName string, page, limit int64) ([]models.HotelPilgrim, int64, error) {
	filter := hotelFilter(hotelName)

	opts := options.Find().SetSkip((page - 1) * limit).SetLimit(limit)
	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	var pilgrims []models.HotelPilgrim
	if err := cur.All(ctx, &pilgrims); err != nil {
		return nil, 0, err
	}

	total, err := r.col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	return pilgrims, total, nil
}

// FindAllByHotel returns every matching pilgrim, for exports.
func (r *HotelPilgrimRepository) FindAllByHotel(ctx context.Context, hotelName string) ([]models.HotelPilgrim, error) {
	cur, err := r.col.Find(ctx, hotelFilter(hotelName))
	if err != nil {
		return nil, err
	}
	var pilgrims []models.HotelPilgrim
	if err := cur.All(ctx, &pilgrims); err != nil {
		return nil, err
	}
	return pilgrims, nil
}

func (r *HotelPilgrimRepository) FindAll(ctx context.Context) ([]models.HotelPilgrim, error) {
	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var pilgrims []models.HotelPilgrim
	if err := cur.All(ctx, &pilgrims); err != nil {
		return nil, err
	}
	return pilgrims, nil
}

// FindStays projects just the two embedded stays of every record.
func (r *HotelPilgrimRepository) FindStays(ctx context.Context) ([]models.HotelPilgrim, error) {
	opts := options.Find().SetProjection(bson.M{"hotel1": 1, "hotel2": 1})
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	var pilgrims []models.HotelPilgrim
	if err := cur.All(ctx, &pilgrims); err != nil {
		return nil, err
	}
	return pilgrims, nil
}

func (r *HotelPilgrimRepository) Count(ctx context.Context) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{})
}
