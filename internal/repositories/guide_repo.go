package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"hajj-admin/internal/models"
)

type GuideRepository struct {
	col *mongo.Collection
}

func NewGuideRepository(db *mongo.Database) *GuideRepository {
	col := db.Collection("guides")
	col.Indexes().CreateOne(context.Background(), mongo.IndexModel{
		Keys:    bson.M{"email": 1},
		Options: options.Index().SetUnique(true),
	})
	return &GuideRepository{col: col}
}

func (r *GuideRepository) Insert(ctx context.Context, g models.Guide) (primitive.ObjectID, error) {
	res, err := r.col.InsertOne(ctx, g)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, _ := res.InsertedID.(primitive.ObjectID)
	return id, nil
}

func (r *GuideRepository) FindAll(ctx context.Context) ([]models.Guide, error) {
	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var guides []models.Guide
	if err := cur.All(ctx, &guides); err != nil {
		return nil, err
	}
	return guides, nil
}

func (r *GuideRepository) FindRecent(ctx context.Context, limit int64) ([]models.Guide, error) {
	opts := options.Find().
		SetSort(bson.M{"createdAt": -1}).
		SetLimit(limit).
		SetProjection(bson.M{"name": 1, "email": 1, "createdAt": 1})
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	var guides []models.Guide
	if err := cur.All(ctx, &guides); err != nil {
		return nil, err
	}
	return guides, nil
}

func (r *GuideRepository) FindByID(ctx context.Context, id primitive.ObjectID) (models.Guide, error) {
	var g models.Guide
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&g)
	return g, err
}

func (r *GuideRepository) FindByEmail(ctx context.Context, email string) (models.Guide, error) {
	var g models.Guide
	err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&g)
	return g, err
}

func (r *GuideRepository) Update(ctx context.Context, id primitive.ObjectID, g models.Guide) error {
	_, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{
		"name":         g.Name,
		"passportId":   g.PassportID,
		"nusukEmail":   g.NusukEmail,
		"phone":        g.Phone,
		"mobile":       g.Mobile,
		"passportFile": g.PassportFile,
	}})
	return err
}

func (r *GuideRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func (r *GuideRepository) Count(ctx context.Context) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{})
}
