package service

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestComputeFee(t *testing.T) {
	tests := []struct {
		name   string
		amount string
		want   string
	}{
		{"zero amount has no fee", "0", "0"},
		{"small amount hits floor", "10", "2"},
		{"floor boundary", "133.33", "2"},           // 1.5% = 1.99995
		{"just above floor", "133.34", "2.0001"},    // 1.5% barely clears the floor
		{"linear region", "500", "7.5"},             // 1.5% of 500
		{"ceiling boundary", "1000", "15"},          // 1.5% = exactly 15
		{"large amount hits ceiling", "5000", "15"}, // clamped
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			amount := decimal.RequireFromString(tc.amount)
			want := decimal.RequireFromString(tc.want)

			got := ComputeFee(amount)
			if !got.Equal(want) {
				t.Errorf("ComputeFee(%s) = %s, want %s", tc.amount, got, tc.want)
			}
		})
	}
}
