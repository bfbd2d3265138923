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

type MongoInvoiceRepo struct {
	DB *mongo.Database
}

func NewMongoInvoiceRepo(db *mongo.Database) *MongoInvoiceRepo {
	return &MongoInvoiceRepo{DB: db}
}

func (r *MongoInvoiceRepo) FindByID(id primitive.ObjectID) (*models.Invoice, error) {
	ctx := context.Background()
	invoice := &models.Invoice{}

	err := r.DB.Collection("invoices").FindOne(ctx, bson.M{"_id": id}).Decode(invoice)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, errors.Wrap(err, "find invoice")
	}
	return invoice, nil
}

func (r *MongoInvoiceRepo) Find(filter InvoiceFilter) ([]*models.Invoice, error) {
	ctx := context.Background()

	bsonFilter := bson.M{}
	if filter.Status != "" {
		bsonFilter["status"] = filter.Status
	}
	if filter.CustomerID != nil {
		bsonFilter["customerId"] = *filter.CustomerID
	}
	if filter.ShipmentID != nil {
		bsonFilter["shipmentId"] = *filter.ShipmentID
	}
	if filter.ExcludeID != nil {
		bsonFilter["_id"] = bson.M{"$ne": *filter.ExcludeID}
	}
	if len(filter.ProductIDs) > 0 {
		bsonFilter["products.productId"] = bson.M{"$in": filter.ProductIDs}
	}

	cur, err := r.DB.Collection("invoices").
		Find(ctx, bsonFilter, options.Find().SetSort(bson.M{"created_at": -1}))
	if err != nil {
		return nil, errors.Wrap(err, "find invoices")
	}
	defer cur.Close(ctx)

	var out []*models.Invoice
	for cur.Next(ctx) {
		var inv models.Invoice
		if err := cur.Decode(&inv); err != nil {
			return nil, errors.Wrap(err, "decode invoice")
		}
		out = append(out, &inv)
	}
	return out, cur.Err()
}

func (r *MongoInvoiceRepo) Create(invoice *models.Invoice) error {
	ctx := context.Background()
	if invoice.ID.IsZero() {
		invoice.ID = primitive.NewObjectID()
	}
	if invoice.CreatedAt.IsZero() {
		invoice.CreatedAt = time.Now().UTC()
	}

	_, err := r.DB.Collection("invoices").InsertOne(ctx, invoice)
	return errors.Wrap(err, "insert invoice")
}

func (r *MongoInvoiceRepo) Save(invoice *models.Invoice) error {
	ctx := context.Background()
	now := time.Now().UTC()
	invoice.UpdatedAt = &now

	_, err := r.DB.Collection("invoices").
		ReplaceOne(ctx, bson.M{"_id": invoice.ID}, invoice)
	return errors.Wrap(err, "save invoice")
}

func (r *MongoInvoiceRepo) DeleteByID(id primitive.ObjectID) error {
	ctx := context.Background()
	_, err := r.DB.Collection("invoices").DeleteOne(ctx, bson.M{"_id": id})
	return errors.Wrap(err, "delete invoice")
}
