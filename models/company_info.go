package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PhoneEntry struct {
	Number string `json:"number" bson:"number"`
	Label  string `json:"label" bson:"label"`
}

// CompanyInfo is the one-off company record printed on invoice PDFs.
type CompanyInfo struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name"`
	Address   string             `json:"address" bson:"address"`
	City      string             `json:"city" bson:"city"`
	Phones    []PhoneEntry       `json:"phones" bson:"phones"`
	Footnote  string             `json:"footnote" bson:"footnote"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
}
