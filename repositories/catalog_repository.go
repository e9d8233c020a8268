package repository

import (
	"context"
	"errors"

	"kpireport/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// CatalogRepository reads the kpi_master collection. Definitions are
// provisioned out-of-band; Insert exists for seeding and tests only.
type CatalogRepository interface {
	GetAll(ctx context.Context) ([]models.KPIDefinition, error)
	GetByUnit(ctx context.Context, unitSlug string) ([]models.KPIDefinition, error)
	GetByID(ctx context.Context, kpiID int64) (*models.KPIDefinition, error)
	Insert(ctx context.Context, def *models.KPIDefinition) error
}

type catalogRepository struct {
	collection *mongo.Collection
}

func NewCatalogRepository(db *mongo.Database) CatalogRepository {
	return &catalogRepository{
		collection: db.Collection("kpi_master"),
	}
}

func (r *catalogRepository) GetAll(ctx context.Context) ([]models.KPIDefinition, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	defs := []models.KPIDefinition{}
	if err = cursor.All(ctx, &defs); err != nil {
		return nil, err
	}

	return defs, nil
}

func (r *catalogRepository) GetByUnit(ctx context.Context, unitSlug string) ([]models.KPIDefinition, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"unit_slug": unitSlug})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	// An unknown slug is not an error, just an empty list.
	defs := []models.KPIDefinition{}
	if err = cursor.All(ctx, &defs); err != nil {
		return nil, err
	}

	return defs, nil
}

func (r *catalogRepository) GetByID(ctx context.Context, kpiID int64) (*models.KPIDefinition, error) {
	var def models.KPIDefinition
	err := r.collection.FindOne(ctx, bson.M{"kpi_id": kpiID}).Decode(&def)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &def, nil
}

func (r *catalogRepository) Insert(ctx context.Context, def *models.KPIDefinition) error {
	_, err := r.collection.InsertOne(ctx, def)
	return err
}
