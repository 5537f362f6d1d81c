package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AdvanceType classifies what a pre-trip advance was handed out for.
type AdvanceType string

const (
	AdvanceBooking AdvanceType = "booking"
	AdvanceFuel    AdvanceType = "fuel"
)

// Advance is a pre-paid amount logged against a trip. It is a
// standalone log entry and is not folded into bill balances.
type Advance struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	TripID      string             `bson:"tripId" json:"tripId"`
	Amount      float64            `bson:"amount" json:"amount"`
	AdvanceType AdvanceType        `bson:"advanceType" json:"advanceType"`
	EnteredBy   string             `bson:"enteredBy" json:"enteredBy"`
	Date        string             `bson:"date" json:"date"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// IsValidAdvanceType checks if an advance type is valid
func IsValidAdvanceType(t AdvanceType) bool {
	return t == AdvanceBooking || t == AdvanceFuel
}
