package models

// UnitStats summarizes the submissions of one organizational unit. The
// aggregate fields are nil when the unit has no submissions.
type UnitStats struct {
	UnitSlug  string         `json:"unit_slug"`
	Total     int            `json:"total"`
	ByStatus  map[string]int `json:"by_status"`
	MeanValue *float64       `json:"mean_value"`
	Median    *float64       `json:"median_value"`
	MinValue  *float64       `json:"min_value"`
	MaxValue  *float64       `json:"max_value"`
}
