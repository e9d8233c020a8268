package services

import (
	"context"
	"errors"
	"time"

	"kpireport/logger"
	"kpireport/models"
	repository "kpireport/repositories"
)

// ReviewService decides submitted KPI updates. By default an update may be
// reviewed once; a second decision fails with ErrAlreadyReviewed unless the
// service was built with allowRereview, which restores last-writer-wins.
type ReviewService interface {
	Review(ctx context.Context, updateID int64, status, reviewer string) (*models.KPIUpdate, error)
}

type reviewService struct {
	updates       repository.UpdateRepository
	allowRereview bool
	now           func() time.Time
	log           *logger.Logger
}

func NewReviewService(updates repository.UpdateRepository, allowRereview bool, log *logger.Logger) ReviewService {
	return &reviewService{
		updates:       updates,
		allowRereview: allowRereview,
		now:           time.Now,
		log:           log,
	}
}

func (s *reviewService) Review(ctx context.Context, updateID int64, status, reviewer string) (*models.KPIUpdate, error) {
	if status != models.StatusApproved && status != models.StatusRejected {
		return nil, ErrInvalidStatus
	}

	update, err := s.updates.GetByID(ctx, updateID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrUpdateNotFound
	}
	if err != nil {
		return nil, err
	}

	if update.Reviewed() && !s.allowRereview {
		return nil, ErrAlreadyReviewed
	}

	reviewedAt := s.now().UTC().Format(time.RFC3339)
	if err := s.updates.SetReview(ctx, updateID, status, reviewer, reviewedAt); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUpdateNotFound
		}
		return nil, err
	}

	update.Status = status
	update.Reviewer = &reviewer
	update.ReviewedAt = &reviewedAt

	s.log.Info("KPI update reviewed",
		"id", updateID,
		"status", status,
		"reviewer", reviewer,
	)

	return update, nil
}
