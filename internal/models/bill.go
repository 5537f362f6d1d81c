package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BillStatus represents the payment state of a bill.
type BillStatus string

const (
	BillUnpaid  BillStatus = "unpaid"
	BillPartial BillStatus = "partial"
	BillPaid    BillStatus = "paid"
)

// Bill is the invoice generated once per completed trip. BalanceAmount
// and Status are caches of a value derived from the bill's payment set
// and must only be written through reconciliation.
type Bill struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	TripID        string             `bson:"tripId" json:"tripId"`
	CarID         string             `bson:"carId" json:"carId"`
	DriverID      string             `bson:"driverId" json:"driverId"`
	CustomerName  string             `bson:"customerName" json:"customerName"`
	StartDate     string             `bson:"startDate" json:"startDate"`
	EndDate       string             `bson:"endDate" json:"endDate"`
	StartKm       float64            `bson:"startKm" json:"startKm"`
	EndKm         float64            `bson:"endKm" json:"endKm"`
	TotalKm       float64            `bson:"totalKm" json:"totalKm"`
	TotalDays     int                `bson:"totalDays" json:"totalDays"`
	BataPerDay    float64            `bson:"bataPerDay" json:"bataPerDay"`
	DriverBata    float64            `bson:"driverBata" json:"driverBata"`
	TollAmount    float64            `bson:"tollAmount" json:"tollAmount"`
	Permit        float64            `bson:"permit" json:"permit"`
	TotalBill     float64            `bson:"totalBill" json:"totalBill"`
	AdvanceAmount float64            `bson:"advanceAmount" json:"advanceAmount"`
	BalanceAmount float64            `bson:"balanceAmount" json:"balanceAmount"`
	Status        BillStatus         `bson:"status" json:"status"`
	GeneratedBy   string             `bson:"generatedBy" json:"generatedBy"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`
}
