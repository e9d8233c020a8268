package services

import (
	"context"

	"kpireport/models"
	repository "kpireport/repositories"

	"github.com/montanaflynn/stats"
	"github.com/shopspring/decimal"
)

// StatsService summarizes a unit's submissions: counts per status plus
// mean/median/min/max of the reported values.
type StatsService interface {
	UnitStats(ctx context.Context, unitSlug string) (*models.UnitStats, error)
}

type statsService struct {
	updates repository.UpdateRepository
}

func NewStatsService(updates repository.UpdateRepository) StatsService {
	return &statsService{
		updates: updates,
	}
}

func (s *statsService) UnitStats(ctx context.Context, unitSlug string) (*models.UnitStats, error) {
	updates, err := s.updates.GetByUnit(ctx, unitSlug)
	if err != nil {
		return nil, err
	}

	result := &models.UnitStats{
		UnitSlug: unitSlug,
		Total:    len(updates),
		ByStatus: map[string]int{
			models.StatusSubmitted: 0,
			models.StatusApproved:  0,
			models.StatusRejected:  0,
		},
	}

	values := make(stats.Float64Data, 0, len(updates))
	for _, u := range updates {
		result.ByStatus[u.Status]++

		d, err := decimal.NewFromString(u.Value)
		if err != nil {
			// Values are normalized on write; anything unparseable is
			// skipped rather than failing the whole summary.
			continue
		}
		values = append(values, d.InexactFloat64())
	}

	if len(values) == 0 {
		return result, nil
	}

	mean, err := stats.Mean(values)
	if err != nil {
		return nil, err
	}
	median, err := stats.Median(values)
	if err != nil {
		return nil, err
	}
	min, err := stats.Min(values)
	if err != nil {
		return nil, err
	}
	max, err := stats.Max(values)
	if err != nil {
		return nil, err
	}

	result.MeanValue = &mean
	result.Median = &median
	result.MinValue = &min
	result.MaxValue = &max

	return result, nil
}
