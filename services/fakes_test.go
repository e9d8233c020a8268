package services

import (
	"context"

	"kpireport/models"
	repository "kpireport/repositories"
)

// In-memory repositories backing the service tests.

type fakeCatalogRepo struct {
	defs []models.KPIDefinition
}

func (f *fakeCatalogRepo) GetAll(ctx context.Context) ([]models.KPIDefinition, error) {
	return f.defs, nil
}

func (f *fakeCatalogRepo) GetByUnit(ctx context.Context, unitSlug string) ([]models.KPIDefinition, error) {
	matched := []models.KPIDefinition{}
	for _, d := range f.defs {
		if d.UnitSlug == unitSlug {
			matched = append(matched, d)
		}
	}
	return matched, nil
}

func (f *fakeCatalogRepo) GetByID(ctx context.Context, kpiID int64) (*models.KPIDefinition, error) {
	for i := range f.defs {
		if f.defs[i].KPIID == kpiID {
			return &f.defs[i], nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeCatalogRepo) Insert(ctx context.Context, def *models.KPIDefinition) error {
	f.defs = append(f.defs, *def)
	return nil
}

type fakeUpdateRepo struct {
	updates []models.KPIUpdate
	nextID  int64
}

func (f *fakeUpdateRepo) Create(ctx context.Context, update *models.KPIUpdate) error {
	f.nextID++
	update.ID = f.nextID
	f.updates = append(f.updates, *update)
	return nil
}

func (f *fakeUpdateRepo) GetByID(ctx context.Context, id int64) (*models.KPIUpdate, error) {
	for i := range f.updates {
		if f.updates[i].ID == id {
			u := f.updates[i]
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUpdateRepo) GetByUnit(ctx context.Context, unitSlug string) ([]models.KPIUpdate, error) {
	matched := []models.KPIUpdate{}
	for _, u := range f.updates {
		if u.UnitSlug == unitSlug {
			matched = append(matched, u)
		}
	}
	return matched, nil
}

func (f *fakeUpdateRepo) SetReview(ctx context.Context, id int64, status, reviewer, reviewedAt string) error {
	for i := range f.updates {
		if f.updates[i].ID == id {
			f.updates[i].Status = status
			f.updates[i].Reviewer = &reviewer
			f.updates[i].ReviewedAt = &reviewedAt
			return nil
		}
	}
	return repository.ErrNotFound
}
