package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Car represents a fleet vehicle.
type Car struct {
	ID                  primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	VehicleNumber       string             `bson:"vehicleNumber" json:"vehicleNumber"`
	VehicleType         string             `bson:"vehicleType" json:"vehicleType"` // "sedan", "suv", "innova", "tempo", "bus", "mini_bus"
	CurrentKm           float64            `bson:"currentKm" json:"currentKm"`
	NextServiceKm       float64            `bson:"nextServiceKm" json:"nextServiceKm"`
	FcExpiryDate        string             `bson:"fcExpiryDate" json:"fcExpiryDate"`
	InsuranceExpiryDate string             `bson:"insuranceExpiryDate" json:"insuranceExpiryDate"`
	PucExpiryDate       string             `bson:"pucExpiryDate" json:"pucExpiryDate"`
	CreatedAt           time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt           time.Time          `bson:"updatedAt" json:"updatedAt"`
}
