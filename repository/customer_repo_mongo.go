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

type MongoCustomerRepo struct {
	DB *mongo.Database
}

func NewMongoCustomerRepo(db *mongo.Database) *MongoCustomerRepo {
	return &MongoCustomerRepo{DB: db}
}

func (r *MongoCustomerRepo) FindByID(id primitive.ObjectID) (*models.Customer, error) {
	ctx := context.Background()
	customer := &models.Customer{}

	err := r.DB.Collection("customers").FindOne(ctx, bson.M{"_id": id}).Decode(customer)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, errors.Wrap(err, "find customer")
	}
	return customer, nil
}

func (r *MongoCustomerRepo) FindAll() ([]*models.Customer, error) {
	ctx := context.Background()

	cur, err := r.DB.Collection("customers").
		Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"created_at": -1}))
	if err != nil {
		return nil, errors.Wrap(err, "find customers")
	}
	defer cur.Close(ctx)

	var out []*models.Customer
	for cur.Next(ctx) {
		var c models.Customer
		if err := cur.Decode(&c); err != nil {
			return nil, errors.Wrap(err, "decode customer")
		}
		out = append(out, &c)
	}
	return out, cur.Err()
}

func (r *MongoCustomerRepo) Create(customer *models.Customer) error {
	ctx := context.Background()
	if customer.ID.IsZero() {
		customer.ID = primitive.NewObjectID()
	}
	if customer.CreatedAt.IsZero() {
		customer.CreatedAt = time.Now().UTC()
	}

	_, err := r.DB.Collection("customers").InsertOne(ctx, customer)
	return errors.Wrap(err, "insert customer")
}

func (r *MongoCustomerRepo) Save(customer *models.Customer) error {
	ctx := context.Background()
	now := time.Now().UTC()
	customer.UpdatedAt = &now

	_, err := r.DB.Collection("customers").
		ReplaceOne(ctx, bson.M{"_id": customer.ID}, customer)
	return errors.Wrap(err, "save customer")
}

func (r *MongoCustomerRepo) DeleteByID(id primitive.ObjectID) error {
	ctx := context.Background()
	_, err := r.DB.Collection("customers").DeleteOne(ctx, bson.M{"_id": id})
	return errors.Wrap(err, "delete customer")
}
