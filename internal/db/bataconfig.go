package db

import (
	"context"
	"time"

	"github.com/arunvel/fleet-office/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// BataConfigCollection defines the interface for bata configuration lookups
type BataConfigCollection interface {
	FindBataConfigs(ctx context.Context) ([]models.BataConfig, error)
	FindBataByVehicleType(ctx context.Context, vehicleType string) (*models.BataConfig, error)
	UpsertBataConfig(ctx context.Context, vehicleType string, bataPerDay float64) (*models.BataConfig, error)
	CountBataConfigs(ctx context.Context) (int64, error)
	InsertBataConfigs(ctx context.Context, configs []models.BataConfig) error
}

// MongoBataConfigCollection implements BataConfigCollection for MongoDB
type MongoBataConfigCollection struct {
	Collection *mongo.Collection
}

// FindBataConfigs returns every configured vehicle-type allowance.
func (c *MongoBataConfigCollection) FindBataConfigs(ctx context.Context) ([]models.BataConfig, error) {
	cursor, err := c.Collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	configs := []models.BataConfig{}
	if err := cursor.All(ctx, &configs); err != nil {
		return nil, err
	}
	return configs, nil
}

// FindBataByVehicleType looks up the allowance for one vehicle type.
func (c *MongoBataConfigCollection) FindBataByVehicleType(ctx context.Context, vehicleType string) (*models.BataConfig, error) {
	var config models.BataConfig
	err := c.Collection.FindOne(ctx, bson.M{"vehicleType": vehicleType}).Decode(&config)
	if err != nil {
		return nil, mapReadErr(err)
	}
	return &config, nil
}

// UpsertBataConfig creates or overwrites the allowance for a vehicle
// type and returns the resulting document.
func (c *MongoBataConfigCollection) UpsertBataConfig(ctx context.Context, vehicleType string, bataPerDay float64) (*models.BataConfig, error) {
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)
	update := bson.M{
		"$set":         bson.M{"bataPerDay": bataPerDay, "updatedAt": time.Now()},
		"$setOnInsert": bson.M{"vehicleType": vehicleType, "createdAt": time.Now()},
	}

	var config models.BataConfig
	err := c.Collection.FindOneAndUpdate(ctx, bson.M{"vehicleType": vehicleType}, update, opts).Decode(&config)
	if err != nil {
		return nil, err
	}
	return &config, nil
}

// CountBataConfigs returns the number of configured vehicle types.
func (c *MongoBataConfigCollection) CountBataConfigs(ctx context.Context) (int64, error) {
	return c.Collection.CountDocuments(ctx, bson.M{})
}

// InsertBataConfigs seeds a batch of configurations.
func (c *MongoBataConfigCollection) InsertBataConfigs(ctx context.Context, configs []models.BataConfig) error {
	docs := make([]interface{}, 0, len(configs))
	now := time.Now()
	for _, cfg := range configs {
		cfg.CreatedAt = now
		cfg.UpdatedAt = now
		docs = append(docs, cfg)
	}
	_, err := c.Collection.InsertMany(ctx, docs)
	return mapWriteErr(err)
}
