package utils

import "github.com/shopspring/decimal"

// StayTotal returns the amount charged for a stay: nights x nightly rate.
// Stays shorter than one night are charged as one night.
func StayTotal(nights int, pricePerNight decimal.Decimal) decimal.Decimal {
	if nights < 1 {
		nights = 1
	}
	return pricePerNight.Mul(decimal.NewFromInt(int64(nights))).Round(2)
}
