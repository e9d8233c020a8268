package models

import (
	"github.com/shopspring/decimal"
)

// Submission statuses. A KPI update is created as "submitted" and moves to
// "approved" or "rejected" exactly once through the review endpoint.
const (
	StatusSubmitted = "submitted"
	StatusApproved  = "approved"
	StatusRejected  = "rejected"
)

// KPIDefinition is one catalog entry of the kpi_master collection. Rows are
// provisioned out-of-band; this service only reads them.
type KPIDefinition struct {
	KPIID           int64   `json:"kpi_id" bson:"kpi_id" validate:"required"`
	UnitSlug        string  `json:"unit_slug" bson:"unit_slug" validate:"required"`
	Name            string  `json:"name" bson:"name" validate:"required"`
	Indicator       string  `json:"indicator" bson:"indicator"`
	PriorityProgram string  `json:"priority_program" bson:"priority_program"`
	Weight          float64 `json:"weight" bson:"weight"`
	Target          string  `json:"target" bson:"target"`
	UnitOfMeasure   string  `json:"unit_of_measure" bson:"unit_of_measure"`
	IsActive        bool    `json:"is_active" bson:"is_active"`
}

// KPIUpdate is one reported value against a KPIDefinition for a period.
// The integer id comes from a counter sequence, not an ObjectID.
type KPIUpdate struct {
	ID           int64   `json:"id" bson:"_id"`
	KPIID        int64   `json:"kpi_id" bson:"kpi_id"`
	UnitSlug     string  `json:"unit_slug" bson:"unit_slug"`
	Period       string  `json:"period" bson:"period"`
	Value        string  `json:"value" bson:"value"`
	EvidenceLink string  `json:"evidence_link,omitempty" bson:"evidence_link,omitempty"`
	Note         string  `json:"note,omitempty" bson:"note,omitempty"`
	Status       string  `json:"status" bson:"status"`
	Reviewer     *string `json:"reviewer" bson:"reviewer,omitempty"`
	ReviewedAt   *string `json:"reviewed_at" bson:"reviewed_at,omitempty"`
}

// Reviewed reports whether the update has already been decided.
func (u *KPIUpdate) Reviewed() bool {
	return u.Status == StatusApproved || u.Status == StatusRejected
}

// NormalizeValue renders a submitted value in the canonical persisted form:
// a decimal string with at most four fraction digits.
func NormalizeValue(d decimal.Decimal) string {
	return d.Round(4).String()
}
