package models

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestNormalizeValue(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"integer", "75", "75"},
		{"one place", "75.1", "75.1"},
		{"rounds half up", "0.00005", "0.0001"},
		{"truncates extra precision", "12.345678", "12.3457"},
		{"negative", "-3.14159", "-3.1416"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := decimal.NewFromString(tt.in)
			if err != nil {
				t.Fatalf("bad input %q: %v", tt.in, err)
			}
			if got := NormalizeValue(d); got != tt.want {
				t.Errorf("NormalizeValue(%s) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestReviewed(t *testing.T) {
	u := &KPIUpdate{Status: StatusSubmitted}
	if u.Reviewed() {
		t.Error("submitted update should not count as reviewed")
	}

	u.Status = StatusApproved
	if !u.Reviewed() {
		t.Error("approved update should count as reviewed")
	}

	u.Status = StatusRejected
	if !u.Reviewed() {
		t.Error("rejected update should count as reviewed")
	}
}
