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

// AdvanceCollection defines the interface for advance database operations
type AdvanceCollection interface {
	InsertAdvance(ctx context.Context, advance models.Advance) error
	FindAdvances(ctx context.Context, filter bson.M) ([]models.Advance, error)
	DeleteAdvance(ctx context.Context, id string) error
}

// MongoAdvanceCollection implements AdvanceCollection for MongoDB
type MongoAdvanceCollection struct {
	Collection *mongo.Collection
}

// InsertAdvance inserts an advance record into the collection.
func (c *MongoAdvanceCollection) InsertAdvance(ctx context.Context, advance models.Advance) error {
	advance.CreatedAt = time.Now()
	advance.UpdatedAt = time.Now()
	_, err := c.Collection.InsertOne(ctx, advance)
	return mapWriteErr(err)
}

// FindAdvances queries advance records from the collection, most
// recent date first.
func (c *MongoAdvanceCollection) FindAdvances(ctx context.Context, filter bson.M) ([]models.Advance, error) {
	cursor, err := c.Collection.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "date", Value: -1}}))
	if err != nil {
		return nil, err
	}
	advances := []models.Advance{}
	if err := cursor.All(ctx, &advances); err != nil {
		return nil, err
	}
	return advances, nil
}

// DeleteAdvance deletes an advance by its ID.
func (c *MongoAdvanceCollection) DeleteAdvance(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}
	_, err = c.Collection.DeleteOne(ctx, bson.M{"_id": objectID})
	return err
}
