package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment is an amount received against a bill. Creating or deleting a
// payment triggers reconciliation of the referenced bill.
type Payment struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	BillID    string             `bson:"billId" json:"billId"`
	Amount    float64            `bson:"amount" json:"amount"`
	Date      string             `bson:"date" json:"date"`
	Remarks   string             `bson:"remarks" json:"remarks"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}
