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

// PaymentCollection defines the interface for payment database operations
type PaymentCollection interface {
	InsertPayment(ctx context.Context, payment models.Payment) error
	FindPayments(ctx context.Context, filter bson.M) ([]models.Payment, error)
	FindPaymentByID(ctx context.Context, id string) (*models.Payment, error)
	FindPaymentsByBillID(ctx context.Context, billID string) ([]models.Payment, error)
	DeletePayment(ctx context.Context, id string) error
}

// MongoPaymentCollection implements PaymentCollection for MongoDB
type MongoPaymentCollection struct {
	Collection *mongo.Collection
}

// InsertPayment inserts a payment record into the collection.
func (c *MongoPaymentCollection) InsertPayment(ctx context.Context, payment models.Payment) error {
	payment.CreatedAt = time.Now()
	payment.UpdatedAt = time.Now()
	_, err := c.Collection.InsertOne(ctx, payment)
	return mapWriteErr(err)
}

// FindPayments queries payment records from the collection, most
// recent payment date first.
func (c *MongoPaymentCollection) FindPayments(ctx context.Context, filter bson.M) ([]models.Payment, error) {
	cursor, err := c.Collection.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "date", Value: -1}}))
	if err != nil {
		return nil, err
	}
	payments := []models.Payment{}
	if err := cursor.All(ctx, &payments); err != nil {
		return nil, err
	}
	return payments, nil
}

// FindPaymentByID finds a payment by its ID.
func (c *MongoPaymentCollection) FindPaymentByID(ctx context.Context, id string) (*models.Payment, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	var payment models.Payment
	err = c.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&payment)
	if err != nil {
		return nil, mapReadErr(err)
	}
	return &payment, nil
}

// FindPaymentsByBillID returns every payment referencing a bill. This
// is the authoritative set reconciliation sums over.
func (c *MongoPaymentCollection) FindPaymentsByBillID(ctx context.Context, billID string) ([]models.Payment, error) {
	return c.FindPayments(ctx, bson.M{"billId": billID})
}

// DeletePayment deletes a payment by its ID.
func (c *MongoPaymentCollection) DeletePayment(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}
	result, err := c.Collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
