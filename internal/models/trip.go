package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TripStatus represents the lifecycle state of a trip.
type TripStatus string

const (
	TripCreated   TripStatus = "created"
	TripOngoing   TripStatus = "ongoing"
	TripCompleted TripStatus = "completed"
)

// Trip represents a single rental assignment from pickup to drop-off.
// Odometer readings and dates are recorded on the start and end
// transitions; TotalKm is derived once both readings exist.
type Trip struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	PickupDate     string             `bson:"pickupDate" json:"pickupDate"`
	PickupTime     string             `bson:"pickupTime" json:"pickupTime"`
	PickupLocation string             `bson:"pickupLocation" json:"pickupLocation"`
	NumberOfDays   int                `bson:"numberOfDays" json:"numberOfDays"`
	PlacesToVisit  string             `bson:"placesToVisit" json:"placesToVisit"`
	CustomerName   string             `bson:"customerName" json:"customerName"`
	CarID          string             `bson:"carId" json:"carId"`
	DriverID       string             `bson:"driverId" json:"driverId"`
	VehicleType    string             `bson:"vehicleType" json:"vehicleType"`
	Status         TripStatus         `bson:"status" json:"status"`
	StartKm        float64            `bson:"startKm" json:"startKm"`
	StartDate      string             `bson:"startDate" json:"startDate"` // YYYY-MM-DD
	StartTime      string             `bson:"startTime" json:"startTime"`
	EndKm          float64            `bson:"endKm" json:"endKm"`
	EndDate        string             `bson:"endDate" json:"endDate"` // YYYY-MM-DD
	EndTime        string             `bson:"endTime" json:"endTime"`
	TotalKm        float64            `bson:"totalKm" json:"totalKm"`
	TollAmount     float64            `bson:"tollAmount" json:"tollAmount"`
	Permit         float64            `bson:"permit" json:"permit"`
	Parking        float64            `bson:"parking" json:"parking"`
	OtherCharges   float64            `bson:"otherCharges" json:"otherCharges"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// StartTripRequest carries the fields recorded on the start transition.
type StartTripRequest struct {
	StartKm   float64 `json:"startKm"`
	StartDate string  `json:"startDate"`
	StartTime string  `json:"startTime"`
}

// EndTripRequest carries the fields recorded on the end transition.
type EndTripRequest struct {
	EndKm      float64 `json:"endKm"`
	EndDate    string  `json:"endDate"`
	EndTime    string  `json:"endTime"`
	TollAmount float64 `json:"tollAmount"`
	Permit     float64 `json:"permit"`
}
