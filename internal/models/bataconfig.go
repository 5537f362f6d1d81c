package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BataConfig holds the per-day driver allowance for one vehicle type.
type BataConfig struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	VehicleType string             `bson:"vehicleType" json:"vehicleType"`
	BataPerDay  float64            `bson:"bataPerDay" json:"bataPerDay"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// DefaultBataConfigs are seeded on first boot when the collection is empty.
var DefaultBataConfigs = []BataConfig{
	{VehicleType: "sedan", BataPerDay: 500},
	{VehicleType: "suv", BataPerDay: 600},
	{VehicleType: "innova", BataPerDay: 700},
	{VehicleType: "tempo", BataPerDay: 800},
	{VehicleType: "bus", BataPerDay: 1000},
	{VehicleType: "mini_bus", BataPerDay: 900},
}
