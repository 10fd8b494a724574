package giftcost

import "math"

// AgreementTolerance bounds the relative difference allowed between the
// totals of two strategies. Totals whose magnitude is below 1 are compared
// with the same bound as an absolute difference.
const AgreementTolerance = 1e-9

// Agree reports whether two totals are equal up to AgreementTolerance.
func Agree(a, b float64) bool {
	if a == b {
		return true
	}
	scale := math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
	return math.Abs(a-b) <= AgreementTolerance*scale
}
