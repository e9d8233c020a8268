package repository

import (
	"context"
	"errors"

	"kpireport/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// UpdateRepository owns the kpi_updates collection. Submissions only ever get
// inserted or patched in place; there is no delete path.
type UpdateRepository interface {
	Create(ctx context.Context, update *models.KPIUpdate) error
	GetByID(ctx context.Context, id int64) (*models.KPIUpdate, error)
	GetByUnit(ctx context.Context, unitSlug string) ([]models.KPIUpdate, error)
	SetReview(ctx context.Context, id int64, status, reviewer, reviewedAt string) error
}

type updateRepository struct {
	collection *mongo.Collection
	counters   *mongo.Collection
}

func NewUpdateRepository(db *mongo.Database) UpdateRepository {
	return &updateRepository{
		collection: db.Collection("kpi_updates"),
		counters:   db.Collection("counters"),
	}
}

// nextID hands out monotonically increasing integer ids from the counters
// collection. The upsert creates the sequence document on first use.
func (r *updateRepository) nextID(ctx context.Context) (int64, error) {
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var counter struct {
		Seq int64 `bson:"seq"`
	}
	err := r.counters.FindOneAndUpdate(
		ctx,
		bson.M{"_id": "kpi_updates"},
		bson.M{"$inc": bson.M{"seq": 1}},
		opts,
	).Decode(&counter)
	if err != nil {
		return 0, err
	}

	return counter.Seq, nil
}

func (r *updateRepository) Create(ctx context.Context, update *models.KPIUpdate) error {
	id, err := r.nextID(ctx)
	if err != nil {
		return err
	}
	update.ID = id

	_, err = r.collection.InsertOne(ctx, update)
	return err
}

func (r *updateRepository) GetByID(ctx context.Context, id int64) (*models.KPIUpdate, error) {
	var update models.KPIUpdate
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&update)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &update, nil
}

func (r *updateRepository) GetByUnit(ctx context.Context, unitSlug string) ([]models.KPIUpdate, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"unit_slug": unitSlug})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	updates := []models.KPIUpdate{}
	if err = cursor.All(ctx, &updates); err != nil {
		return nil, err
	}

	return updates, nil
}

func (r *updateRepository) SetReview(ctx context.Context, id int64, status, reviewer, reviewedAt string) error {
	update := bson.M{
		"$set": bson.M{
			"status":      status,
			"reviewer":    reviewer,
			"reviewed_at": reviewedAt,
		},
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}

	return nil
}
