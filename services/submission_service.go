package services

import (
	"context"
	"errors"

	"kpireport/logger"
	"kpireport/models"
	repository "kpireport/repositories"
)

// SubmissionService validates and records value submissions against the
// catalog. Resubmission for the same (kpi_id, period) is allowed and appends
// a new row; full history is kept on purpose.
type SubmissionService interface {
	Submit(ctx context.Context, req *models.SubmitUpdateRequest) (*models.KPIUpdate, error)
	ListByUnit(ctx context.Context, unitSlug string) ([]models.KPIUpdate, error)
}

type submissionService struct {
	catalog repository.CatalogRepository
	updates repository.UpdateRepository
	log     *logger.Logger
}

func NewSubmissionService(catalog repository.CatalogRepository, updates repository.UpdateRepository, log *logger.Logger) SubmissionService {
	return &submissionService{
		catalog: catalog,
		updates: updates,
		log:     log,
	}
}

func (s *submissionService) Submit(ctx context.Context, req *models.SubmitUpdateRequest) (*models.KPIUpdate, error) {
	def, err := s.catalog.GetByID(ctx, req.KPIID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrKPINotFound
	}
	if err != nil {
		return nil, err
	}

	// Cross-entity consistency check: the submission must target a KPI
	// owned by the unit it claims to report for.
	if def.UnitSlug != req.UnitSlug {
		s.log.Warn("rejected cross-unit submission",
			"kpi_id", req.KPIID,
			"kpi_unit", def.UnitSlug,
			"request_unit", req.UnitSlug,
		)
		return nil, ErrUnitMismatch
	}

	update := &models.KPIUpdate{
		KPIID:        req.KPIID,
		UnitSlug:     req.UnitSlug,
		Period:       req.Period,
		Value:        models.NormalizeValue(req.Value),
		EvidenceLink: req.EvidenceLink,
		Note:         req.Note,
		Status:       models.StatusSubmitted,
	}

	if err := s.updates.Create(ctx, update); err != nil {
		return nil, err
	}

	s.log.Info("KPI update submitted",
		"id", update.ID,
		"kpi_id", update.KPIID,
		"unit_slug", update.UnitSlug,
		"period", update.Period,
	)

	return update, nil
}

func (s *submissionService) ListByUnit(ctx context.Context, unitSlug string) ([]models.KPIUpdate, error) {
	return s.updates.GetByUnit(ctx, unitSlug)
}
