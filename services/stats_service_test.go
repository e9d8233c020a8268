package services

import (
	"context"
	"testing"

	"kpireport/models"
)

func TestUnitStats_EmptyUnit(t *testing.T) {
	svc := NewStatsService(&fakeUpdateRepo{})

	summary, err := svc.UnitStats(context.Background(), "ict")
	if err != nil {
		t.Fatalf("UnitStats failed: %v", err)
	}

	if summary.Total != 0 {
		t.Errorf("expected total 0, got %d", summary.Total)
	}
	if summary.MeanValue != nil || summary.Median != nil || summary.MinValue != nil || summary.MaxValue != nil {
		t.Error("expected nil aggregates for an empty unit")
	}
}

func TestUnitStats_Aggregates(t *testing.T) {
	reviewer := "manager"
	updates := &fakeUpdateRepo{
		updates: []models.KPIUpdate{
			{ID: 1, UnitSlug: "ict", Value: "60", Status: models.StatusSubmitted},
			{ID: 2, UnitSlug: "ict", Value: "80", Status: models.StatusApproved, Reviewer: &reviewer},
			{ID: 3, UnitSlug: "ict", Value: "100", Status: models.StatusRejected, Reviewer: &reviewer},
			{ID: 4, UnitSlug: "hr", Value: "999", Status: models.StatusSubmitted},
		},
		nextID: 4,
	}
	svc := NewStatsService(updates)

	summary, err := svc.UnitStats(context.Background(), "ict")
	if err != nil {
		t.Fatalf("UnitStats failed: %v", err)
	}

	if summary.Total != 3 {
		t.Errorf("expected total 3, got %d", summary.Total)
	}
	if summary.ByStatus[models.StatusSubmitted] != 1 ||
		summary.ByStatus[models.StatusApproved] != 1 ||
		summary.ByStatus[models.StatusRejected] != 1 {
		t.Errorf("unexpected status counts: %v", summary.ByStatus)
	}

	if summary.MeanValue == nil || *summary.MeanValue != 80 {
		t.Errorf("expected mean 80, got %v", summary.MeanValue)
	}
	if summary.Median == nil || *summary.Median != 80 {
		t.Errorf("expected median 80, got %v", summary.Median)
	}
	if summary.MinValue == nil || *summary.MinValue != 60 {
		t.Errorf("expected min 60, got %v", summary.MinValue)
	}
	if summary.MaxValue == nil || *summary.MaxValue != 100 {
		t.Errorf("expected max 100, got %v", summary.MaxValue)
	}
}
