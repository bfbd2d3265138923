package repository

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoSequenceRepo struct {
	DB *mongo.Database
}

func NewMongoSequenceRepo(db *mongo.Database) *MongoSequenceRepo {
	return &MongoSequenceRepo{DB: db}
}

// Next increments the named counter with a single atomic $inc upsert, so
// there is no read-then-write window between concurrent callers. The first
// call for a name returns 1.
func (r *MongoSequenceRepo) Next(name string) (int64, error) {
	ctx := context.Background()

	var counter struct {
		Value int64 `bson:"value"`
	}
	err := r.DB.Collection("counters").FindOneAndUpdate(ctx,
		bson.M{"_id": name},
		bson.M{"$inc": bson.M{"value": int64(1)}},
		options.FindOneAndUpdate().
			SetUpsert(true).
			SetReturnDocument(options.After),
	).Decode(&counter)
	if err != nil {
		return 0, errors.Wrap(err, "next sequence value")
	}
	return counter.Value, nil
}
