package repository

import (
	"context"
	"time"

	"distrisur/models"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoDriverRepo struct {
	DB *mongo.Database
}

func NewMongoDriverRepo(db *mongo.Database) *MongoDriverRepo {
	return &MongoDriverRepo{DB: db}
}

func (r *MongoDriverRepo) FindByID(id primitive.ObjectID) (*models.Driver, error) {
	ctx := context.Background()
	driver := &models.Driver{}

	err := r.DB.Collection("drivers").FindOne(ctx, bson.M{"_id": id}).Decode(driver)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, errors.Wrap(err, "find driver")
	}
	return driver, nil
}

func (r *MongoDriverRepo) FindAll(activeOnly bool) ([]*models.Driver, error) {
	ctx := context.Background()

	filter := bson.M{}
	if activeOnly {
		filter["is_active"] = true
	}

	cur, err := r.DB.Collection("drivers").
		Find(ctx, filter, options.Find().SetSort(bson.M{"created_at": -1}))
	if err != nil {
		return nil, errors.Wrap(err, "find drivers")
	}
	defer cur.Close(ctx)

	var out []*models.Driver
	for cur.Next(ctx) {
		var d models.Driver
		if err := cur.Decode(&d); err != nil {
			return nil, errors.Wrap(err, "decode driver")
		}
		out = append(out, &d)
	}
	return out, cur.Err()
}

func (r *MongoDriverRepo) Create(driver *models.Driver) error {
	ctx := context.Background()
	if driver.ID.IsZero() {
		driver.ID = primitive.NewObjectID()
	}
	if driver.CreatedAt.IsZero() {
		driver.CreatedAt = time.Now().UTC()
	}

	_, err := r.DB.Collection("drivers").InsertOne(ctx, driver)
	return errors.Wrap(err, "insert driver")
}

func (r *MongoDriverRepo) Save(driver *models.Driver) error {
	ctx := context.Background()
	now := time.Now().UTC()
	driver.UpdatedAt = &now

	_, err := r.DB.Collection("drivers").
		ReplaceOne(ctx, bson.M{"_id": driver.ID}, driver)
	return errors.Wrap(err, "save driver")
}

func (r *MongoDriverRepo) DeleteByID(id primitive.ObjectID) error {
	ctx := context.Background()
	_, err := r.DB.Collection("drivers").DeleteOne(ctx, bson.M{"_id": id})
	return errors.Wrap(err, "delete driver")
}
