package db

import (
	"context"
	"time"

	"github.com/arunvel/fleet-office/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// BillCollection defines the interface for bill database operations
type BillCollection interface {
	InsertBill(ctx context.Context, bill models.Bill) error
	FindBills(ctx context.Context, filter bson.M) ([]models.Bill, error)
	FindBillByID(ctx context.Context, id string) (*models.Bill, error)
	FindBillByTripID(ctx context.Context, tripID string) (*models.Bill, error)
	UpdateBill(ctx context.Context, id string, bill models.Bill) error
	UpdateBillBalance(ctx context.Context, id string, balance float64, status models.BillStatus) error
	DeleteBill(ctx context.Context, id string) error
}

// MongoBillCollection implements BillCollection for MongoDB
type MongoBillCollection struct {
	Collection *mongo.Collection
}

// InsertBill inserts a bill record into the collection. The unique
// index on tripId enforces one bill per trip.
func (c *MongoBillCollection) InsertBill(ctx context.Context, bill models.Bill) error {
	bill.CreatedAt = time.Now()
	bill.UpdatedAt = time.Now()
	_, err := c.Collection.InsertOne(ctx, bill)
	return mapWriteErr(err)
}

// FindBills queries bill records from the collection, newest first.
func (c *MongoBillCollection) FindBills(ctx context.Context, filter bson.M) ([]models.Bill, error) {
	cursor, err := c.Collection.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, err
	}
	bills := []models.Bill{}
	if err := cursor.All(ctx, &bills); err != nil {
		return nil, err
	}
	return bills, nil
}

// FindBillByID finds a bill by its ID.
func (c *MongoBillCollection) FindBillByID(ctx context.Context, id string) (*models.Bill, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	var bill models.Bill
	err = c.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&bill)
	if err != nil {
		return nil, mapReadErr(err)
	}
	return &bill, nil
}

// FindBillByTripID finds the bill generated for a trip.
func (c *MongoBillCollection) FindBillByTripID(ctx context.Context, tripID string) (*models.Bill, error) {
	var bill models.Bill
	err := c.Collection.FindOne(ctx, bson.M{"tripId": tripID}).Decode(&bill)
	if err != nil {
		return nil, mapReadErr(err)
	}
	return &bill, nil
}

// UpdateBill updates a bill by its ID.
func (c *MongoBillCollection) UpdateBill(ctx context.Context, id string, bill models.Bill) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}
	bill.UpdatedAt = time.Now()
	result, err := c.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, bson.M{"$set": bill})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdateBillBalance writes only the reconciled balance and status.
func (c *MongoBillCollection) UpdateBillBalance(ctx context.Context, id string, balance float64, status models.BillStatus) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}
	result, err := c.Collection.UpdateOne(
		ctx,
		bson.M{"_id": objectID},
		bson.M{"$set": bson.M{"balanceAmount": balance, "status": status, "updatedAt": time.Now()}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteBill deletes a bill by its ID.
func (c *MongoBillCollection) DeleteBill(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}
	_, err = c.Collection.DeleteOne(ctx, bson.M{"_id": objectID})
	return err
}
