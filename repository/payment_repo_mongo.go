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

type MongoPaymentRepo struct {
	DB *mongo.Database
}

func NewMongoPaymentRepo(db *mongo.Database) *MongoPaymentRepo {
	return &MongoPaymentRepo{DB: db}
}

func (r *MongoPaymentRepo) FindByID(id primitive.ObjectID) (*models.Payment, error) {
	ctx := context.Background()
	payment := &models.Payment{}

	err := r.DB.Collection("payments").FindOne(ctx, bson.M{"_id": id}).Decode(payment)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, errors.Wrap(err, "find payment")
	}
	return r.populateInvoice(ctx, payment), nil
}

func (r *MongoPaymentRepo) Find(filter PaymentFilter) ([]*models.Payment, error) {
	ctx := context.Background()

	bsonFilter := bson.M{}
	if filter.Approved != nil {
		bsonFilter["approved"] = *filter.Approved
	}
	if filter.Type != "" {
		bsonFilter["type"] = filter.Type
	}
	if filter.InvoiceID != nil {
		bsonFilter["invoiceId"] = *filter.InvoiceID
	}

	cur, err := r.DB.Collection("payments").
		Find(ctx, bsonFilter, options.Find().SetSort(bson.M{"date": -1}))
	if err != nil {
		return nil, errors.Wrap(err, "find payments")
	}
	defer cur.Close(ctx)

	var out []*models.Payment
	for cur.Next(ctx) {
		var p models.Payment
		if err := cur.Decode(&p); err != nil {
			return nil, errors.Wrap(err, "decode payment")
		}
		out = append(out, r.populateInvoice(ctx, &p))
	}
	return out, cur.Err()
}

// populateInvoice loads the referenced invoice for responses.
func (r *MongoPaymentRepo) populateInvoice(ctx context.Context, p *models.Payment) *models.Payment {
	if p.InvoiceID.IsZero() {
		return p
	}
	var inv models.Invoice
	if err := r.DB.Collection("invoices").
		FindOne(ctx, bson.M{"_id": p.InvoiceID}).Decode(&inv); err == nil {
		p.InvoiceInfo = &inv
	}
	return p
}

func (r *MongoPaymentRepo) Create(payment *models.Payment) error {
	ctx := context.Background()
	if payment.ID.IsZero() {
		payment.ID = primitive.NewObjectID()
	}
	if payment.CreatedAt.IsZero() {
		payment.CreatedAt = time.Now().UTC()
	}

	_, err := r.DB.Collection("payments").InsertOne(ctx, payment)
	return errors.Wrap(err, "insert payment")
}

func (r *MongoPaymentRepo) Save(payment *models.Payment) error {
	ctx := context.Background()
	now := time.Now().UTC()
	payment.UpdatedAt = &now

	_, err := r.DB.Collection("payments").
		ReplaceOne(ctx, bson.M{"_id": payment.ID}, payment)
	return errors.Wrap(err, "save payment")
}

func (r *MongoPaymentRepo) DeleteByID(id primitive.ObjectID) error {
	ctx := context.Background()
	_, err := r.DB.Collection("payments").DeleteOne(ctx, bson.M{"_id": id})
	return errors.Wrap(err, "delete payment")
}
