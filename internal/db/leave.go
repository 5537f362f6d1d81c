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

// LeaveCollection defines the interface for leave database operations
type LeaveCollection interface {
	InsertLeave(ctx context.Context, leave models.Leave) error
	FindLeaves(ctx context.Context, filter bson.M) ([]models.Leave, error)
	FindLeaveByID(ctx context.Context, id string) (*models.Leave, error)
	UpdateLeave(ctx context.Context, id string, leave models.Leave) error
	UpdateLeaveStatus(ctx context.Context, id string, status models.LeaveStatus) error
	DeleteLeave(ctx context.Context, id string) error
}

// MongoLeaveCollection implements LeaveCollection for MongoDB
type MongoLeaveCollection struct {
	Collection *mongo.Collection
}

// InsertLeave inserts a leave request into the collection.
func (c *MongoLeaveCollection) InsertLeave(ctx context.Context, leave models.Leave) error {
	leave.CreatedAt = time.Now()
	leave.UpdatedAt = time.Now()
	_, err := c.Collection.InsertOne(ctx, leave)
	return mapWriteErr(err)
}

// FindLeaves queries leave requests from the collection, most recent
// date first.
func (c *MongoLeaveCollection) FindLeaves(ctx context.Context, filter bson.M) ([]models.Leave, error) {
	cursor, err := c.Collection.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "date", Value: -1}}))
	if err != nil {
		return nil, err
	}
	leaves := []models.Leave{}
	if err := cursor.All(ctx, &leaves); err != nil {
		return nil, err
	}
	return leaves, nil
}

// FindLeaveByID finds a leave request by its ID.
func (c *MongoLeaveCollection) FindLeaveByID(ctx context.Context, id string) (*models.Leave, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	var leave models.Leave
	err = c.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&leave)
	if err != nil {
		return nil, mapReadErr(err)
	}
	return &leave, nil
}

// UpdateLeave updates a leave request by its ID.
func (c *MongoLeaveCollection) UpdateLeave(ctx context.Context, id string, leave models.Leave) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}
	leave.UpdatedAt = time.Now()
	result, err := c.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, bson.M{"$set": leave})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdateLeaveStatus sets only the approval status of a leave request.
func (c *MongoLeaveCollection) UpdateLeaveStatus(ctx context.Context, id string, status models.LeaveStatus) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}
	result, err := c.Collection.UpdateOne(
		ctx,
		bson.M{"_id": objectID},
		bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now()}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteLeave deletes a leave request by its ID.
func (c *MongoLeaveCollection) DeleteLeave(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}
	_, err = c.Collection.DeleteOne(ctx, bson.M{"_id": objectID})
	return err
}
