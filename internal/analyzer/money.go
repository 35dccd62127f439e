package analyzer

import (
	"math"

	"github.com/shopspring/decimal"
)

// round2 rounds v to two decimal places, halves away from zero.
func round2(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}
