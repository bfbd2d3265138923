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

type MongoProductRepo struct {
	DB *mongo.Database
}

func NewMongoProductRepo(db *mongo.Database) *MongoProductRepo {
	return &MongoProductRepo{DB: db}
}

func (r *MongoProductRepo) FindByID(id primitive.ObjectID) (*models.Product, error) {
	ctx := context.Background()
	product := &models.Product{}

	err := r.DB.Collection("products").FindOne(ctx, bson.M{"_id": id}).Decode(product)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, errors.Wrap(err, "find product")
	}
	return product, nil
}

func (r *MongoProductRepo) Find(filter ProductFilter) ([]*models.Product, error) {
	ctx := context.Background()

	bsonFilter := bson.M{}
	if filter.ActiveOnly {
		bsonFilter["is_active"] = true
	}
	if filter.Category != "" {
		bsonFilter["category"] = bson.M{"$regex": filter.Category, "$options": "i"}
	}

	cur, err := r.DB.Collection("products").
		Find(ctx, bsonFilter, options.Find().SetSort(bson.M{"created_at": -1}))
	if err != nil {
		return nil, errors.Wrap(err, "find products")
	}
	defer cur.Close(ctx)

	var out []*models.Product
	for cur.Next(ctx) {
		var p models.Product
		if err := cur.Decode(&p); err != nil {
			return nil, errors.Wrap(err, "decode product")
		}
		out = append(out, &p)
	}
	return out, cur.Err()
}

func (r *MongoProductRepo) FindByIDs(ids []primitive.ObjectID) ([]*models.Product, error) {
	ctx := context.Background()

	cur, err := r.DB.Collection("products").
		Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, errors.Wrap(err, "find products by ids")
	}
	defer cur.Close(ctx)

	var out []*models.Product
	for cur.Next(ctx) {
		var p models.Product
		if err := cur.Decode(&p); err != nil {
			return nil, errors.Wrap(err, "decode product")
		}
		out = append(out, &p)
	}
	return out, cur.Err()
}

func (r *MongoProductRepo) Create(product *models.Product) error {
	ctx := context.Background()
	if product.ID.IsZero() {
		product.ID = primitive.NewObjectID()
	}
	if product.CreatedAt.IsZero() {
		product.CreatedAt = time.Now().UTC()
	}

	_, err := r.DB.Collection("products").InsertOne(ctx, product)
	return errors.Wrap(err, "insert product")
}

func (r *MongoProductRepo) Save(product *models.Product) error {
	ctx := context.Background()
	now := time.Now().UTC()
	product.UpdatedAt = &now

	_, err := r.DB.Collection("products").
		ReplaceOne(ctx, bson.M{"_id": product.ID}, product)
	return errors.Wrap(err, "save product")
}

func (r *MongoProductRepo) DeleteByID(id primitive.ObjectID) error {
	ctx := context.Background()
	_, err := r.DB.Collection("products").DeleteOne(ctx, bson.M{"_id": id})
	return errors.Wrap(err, "delete product")
}
