package repository

import (
	"context"
	"time"

	"distrisur/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type MongoCompanyInfoRepo struct {
	DB *mongo.Database
}

func NewMongoCompanyInfoRepo(db *mongo.Database) *MongoCompanyInfoRepo {
	return &MongoCompanyInfoRepo{DB: db}
}

func (r *MongoCompanyInfoRepo) SaveCompanyInfo(info *models.CompanyInfo) error {
	ctx := context.Background()
	if info.ID.IsZero() {
		info.ID = primitive.NewObjectID()
	}
	if info.CreatedAt.IsZero() {
		info.CreatedAt = time.Now().UTC()
	}

	_, err := r.DB.Collection("company_info").InsertOne(ctx, info)
	return err
}

func (r *MongoCompanyInfoRepo) GetCompanyInfo() (*models.CompanyInfo, error) {
	ctx := context.Background()

	var info models.CompanyInfo
	err := r.DB.Collection("company_info").FindOne(ctx, bson.M{}).Decode(&info)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &info, nil
}
