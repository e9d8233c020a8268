package services

import (
	"context"

	"kpireport/models"
	repository "kpireport/repositories"
)

// CatalogService is the read path over the KPI catalog.
type CatalogService interface {
	ListAll(ctx context.Context) ([]models.KPIDefinition, error)
	ListByUnit(ctx context.Context, unitSlug string) ([]models.KPIDefinition, error)
}

type catalogService struct {
	repo repository.CatalogRepository
}

func NewCatalogService(repo repository.CatalogRepository) CatalogService {
	return &catalogService{
		repo: repo,
	}
}

func (s *catalogService) ListAll(ctx context.Context) ([]models.KPIDefinition, error) {
	return s.repo.GetAll(ctx)
}

func (s *catalogService) ListByUnit(ctx context.Context, unitSlug string) ([]models.KPIDefinition, error) {
	return s.repo.GetByUnit(ctx, unitSlug)
}
