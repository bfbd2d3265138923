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

type MongoTransferAccountRepo struct {
	DB *mongo.Database
}

func NewMongoTransferAccountRepo(db *mongo.Database) *MongoTransferAccountRepo {
	return &MongoTransferAccountRepo{DB: db}
}

func (r *MongoTransferAccountRepo) FindByID(id primitive.ObjectID) (*models.TransferAccount, error) {
	ctx := context.Background()
	account := &models.TransferAccount{}

	err := r.DB.Collection("transfer_accounts").FindOne(ctx, bson.M{"_id": id}).Decode(account)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, errors.Wrap(err, "find transfer account")
	}
	return account, nil
}

func (r *MongoTransferAccountRepo) FindAll() ([]*models.TransferAccount, error) {
	ctx := context.Background()

	cur, err := r.DB.Collection("transfer_accounts").
		Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"created_at": -1}))
	if err != nil {
		return nil, errors.Wrap(err, "find transfer accounts")
	}
	defer cur.Close(ctx)

	var out []*models.TransferAccount
	for cur.Next(ctx) {
		var a models.TransferAccount
		if err := cur.Decode(&a); err != nil {
			return nil, errors.Wrap(err, "decode transfer account")
		}
		out = append(out, &a)
	}
	return out, cur.Err()
}

func (r *MongoTransferAccountRepo) Create(account *models.TransferAccount) error {
	ctx := context.Background()
	if account.ID.IsZero() {
		account.ID = primitive.NewObjectID()
	}
	if account.CreatedAt.IsZero() {
		account.CreatedAt = time.Now().UTC()
	}

	_, err := r.DB.Collection("transfer_accounts").InsertOne(ctx, account)
	return errors.Wrap(err, "insert transfer account")
}

func (r *MongoTransferAccountRepo) Save(account *models.TransferAccount) error {
	ctx := context.Background()
	now := time.Now().UTC()
	account.UpdatedAt = &now

	_, err := r.DB.Collection("transfer_accounts").
		ReplaceOne(ctx, bson.M{"_id": account.ID}, account)
	return errors.Wrap(err, "save transfer account")
}

func (r *MongoTransferAccountRepo) DeleteByID(id primitive.ObjectID) error {
	ctx := context.Background()
	_, err := r.DB.Collection("transfer_accounts").DeleteOne(ctx, bson.M{"_id": id})
	return errors.Wrap(err, "delete transfer account")
}
