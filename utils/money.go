package utils

import "github.com/shopspring/decimal"

// Round2 rounds a currency amount to 2 decimal places.
func Round2(amount float64) float64 {
	return decimal.NewFromFloat(amount).Round(2).InexactFloat64()
}

// ToMinorUnits converts a currency amount to integer minor units (cents) for
// the payment gateway. The conversion rounds; it never truncates.
func ToMinorUnits(amount float64) int64 {
	return decimal.NewFromFloat(amount).Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}
