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

type MongoShipmentRepo struct {
	DB *mongo.Database
}

func NewMongoShipmentRepo(db *mongo.Database) *MongoShipmentRepo {
	return &MongoShipmentRepo{DB: db}
}

func (r *MongoShipmentRepo) FindByID(id primitive.ObjectID) (*models.Shipment, error) {
	ctx := context.Background()
	shipment := &models.Shipment{}

	err := r.DB.Collection("shipments").FindOne(ctx, bson.M{"_id": id}).Decode(shipment)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, errors.Wrap(err, "find shipment")
	}
	return r.populateDriver(ctx, shipment), nil
}

func (r *MongoShipmentRepo) Find(filter ShipmentFilter) ([]*models.Shipment, error) {
	ctx := context.Background()

	bsonFilter := bson.M{}
	if filter.Status != "" {
		bsonFilter["status"] = filter.Status
	}
	if filter.Driver != nil {
		bsonFilter["driver"] = *filter.Driver
	}

	cur, err := r.DB.Collection("shipments").
		Find(ctx, bsonFilter, options.Find().SetSort(bson.M{"created_at": -1}))
	if err != nil {
		return nil, errors.Wrap(err, "find shipments")
	}
	defer cur.Close(ctx)

	var out []*models.Shipment
	for cur.Next(ctx) {
		var s models.Shipment
		if err := cur.Decode(&s); err != nil {
			return nil, errors.Wrap(err, "decode shipment")
		}
		out = append(out, r.populateDriver(ctx, &s))
	}
	return out, cur.Err()
}

// populateDriver loads the referenced driver for responses.
func (r *MongoShipmentRepo) populateDriver(ctx context.Context, s *models.Shipment) *models.Shipment {
	if s.Driver.IsZero() {
		return s
	}
	var d models.Driver
	if err := r.DB.Collection("drivers").
		FindOne(ctx, bson.M{"_id": s.Driver}).Decode(&d); err == nil {
		s.DriverInfo = &d
	}
	return s
}

func (r *MongoShipmentRepo) Create(shipment *models.Shipment) error {
	ctx := context.Background()
	if shipment.ID.IsZero() {
		shipment.ID = primitive.NewObjectID()
	}
	if shipment.CreatedAt.IsZero() {
		shipment.CreatedAt = time.Now().UTC()
	}

	_, err := r.DB.Collection("shipments").InsertOne(ctx, shipment)
	return errors.Wrap(err, "insert shipment")
}

func (r *MongoShipmentRepo) Save(shipment *models.Shipment) error {
	ctx := context.Background()
	now := time.Now().UTC()
	shipment.UpdatedAt = &now

	_, err := r.DB.Collection("shipments").
		ReplaceOne(ctx, bson.M{"_id": shipment.ID}, shipment)
	return errors.Wrap(err, "save shipment")
}

func (r *MongoShipmentRepo) DeleteByID(id primitive.ObjectID) error {
	ctx := context.Background()
	_, err := r.DB.Collection("shipments").DeleteOne(ctx, bson.M{"_id": id})
	return errors.Wrap(err, "delete shipment")
}
