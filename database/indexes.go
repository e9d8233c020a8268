package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateIndexes sets up the indexes backing the read paths of kpi_master and
// kpi_updates. Called once at startup; CreateMany is idempotent.
func CreateIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	masterIndexes := []mongo.IndexModel{
		// Submission service lookup by kpi_id
		{
			Keys:    bson.D{{Key: "kpi_id", Value: 1}},
			Options: options.Index().SetName("idx_kpi_id").SetUnique(true),
		},
		// Catalog reads by unit
		{
			Keys:    bson.D{{Key: "unit_slug", Value: 1}},
			Options: options.Index().SetName("idx_unit_slug"),
		},
	}

	if _, err := db.Collection("kpi_master").Indexes().CreateMany(ctx, masterIndexes); err != nil {
		return fmt.Errorf("failed to create kpi_master indexes: %v", err)
	}

	updateIndexes := []mongo.IndexModel{
		// Per-unit update listing and stats
		{
			Keys:    bson.D{{Key: "unit_slug", Value: 1}},
			Options: options.Index().SetName("idx_unit_slug"),
		},
		// Non-unique: multiple submissions per (kpi_id, period) are retained
		{
			Keys: bson.D{
				{Key: "kpi_id", Value: 1},
				{Key: "period", Value: 1},
			},
			Options: options.Index().SetName("idx_kpi_id_period"),
		},
		{
			Keys:    bson.D{{Key: "status", Value: 1}},
			Options: options.Index().SetName("idx_status"),
		},
	}

	if _, err := db.Collection("kpi_updates").Indexes().CreateMany(ctx, updateIndexes); err != nil {
		return fmt.Errorf("failed to create kpi_updates indexes: %v", err)
	}

	return nil
}
