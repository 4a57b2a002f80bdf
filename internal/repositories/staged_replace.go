package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// stagedReplace swaps the full contents of a collection without a
// window where readers see it empty: documents are written to a
// staging collection which is then renamed over the target with
// dropTarget. A failure before the rename leaves the live collection
// untouched.
func stagedReplace(ctx context.Context, db *mongo.Database, name string, docs []interface{}) (int, error) {
	stagingName := name + "_staging"
	staging := db.Collection(stagingName)
	_ = staging.Drop(ctx)

	inserted := 0
	if len(docs) > 0 {
		res, err := staging.InsertMany(ctx, docs)
		if err != nil {
			_ = staging.Drop(ctx)
			return 0, err
		}
		inserted = len(res.InsertedIDs)
	} else {
		if err := db.CreateCollection(ctx, stagingName); err != nil {
			return 0, err
		}
	}

	cmd := bson.D{
		{Key: "renameCollection", Value: db.Name() + "." + stagingName},
		{Key: "to", Value: db.Name() + "." + name},
		{Key: "dropTarget", Value: true},
	}
	if err := db.Client().Database("admin").RunCommand(ctx, cmd).Err(); err != nil {
		_ = staging.Drop(ctx)
		return 0, err
	}
	return inserted, nil
}
