package service

import "github.com/shopspring/decimal"

// Fee policy: 1.5% of the send amount, clamped to [2, 15].
var (
	feeRate = decimal.RequireFromString("0.015")
	minFee  = decimal.NewFromInt(2)
	maxFee  = decimal.NewFromInt(15)
)

// ComputeFee returns the transfer fee for a send amount. A zero amount
// yields a zero fee; the minimum applies only to actual transfers.
func ComputeFee(amount decimal.Decimal) decimal.Decimal {
	if !amount.IsPositive() {
		return decimal.Zero
	}
	fee := amount.Mul(feeRate)
	if fee.LessThan(minFee) {
		return minFee
	}
	if fee.GreaterThan(maxFee) {
		return maxFee
	}
	return fee
}
