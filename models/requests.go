package models

import "github.com/shopspring/decimal"

// SubmitUpdateRequest is the body of POST /kpi/update. Value accepts both a
// JSON number and a quoted decimal string.
type SubmitUpdateRequest struct {
	KPIID        int64           `json:"kpi_id" validate:"required"`
	UnitSlug     string          `json:"unit_slug" validate:"required"`
	Period       string          `json:"period" validate:"required,period"`
	Value        decimal.Decimal `json:"value"`
	EvidenceLink string          `json:"evidence_link"`
	Note         string          `json:"note"`
}

// ReviewRequest is the body of POST /kpi/review/{update_id}. Status is
// checked against the allowed decisions by the review service, not here, so
// the caller gets a 400 with a message naming the allowed values.
type ReviewRequest struct {
	Status   string `json:"status" validate:"required"`
	Reviewer string `json:"reviewer" validate:"required"`
}

// SubmitUpdateResponse carries the fields a caller needs to track the record.
type SubmitUpdateResponse struct {
	ID     int64  `json:"id"`
	Status string `json:"status"`
}
