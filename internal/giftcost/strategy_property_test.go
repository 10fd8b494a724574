package giftcost

import (
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// genCosts generates collections mixing realistic prices around the
// threshold, negative costs, and values at both ends of the int64 range so
// that integer reductions overflow.
func genCosts() gopter.Gen {
	return gen.SliceOf(gen.OneGenOf(
		gen.Int64Range(0, 200),
		gen.Int64Range(-200, 24),
		gen.Int64Range(math.MinInt64, math.MinInt64+1_000),
		gen.Int64Range(math.MaxInt64-1_000, math.MaxInt64),
		gen.Int64(),
	))
}

// TestStrategiesAgree_PropertyBased checks that the loop and bulk totals
// never differ by more than floating-point rounding.
func TestStrategiesAgree_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("loop and bulk totals agree", prop.ForAll(
		func(values []int64) bool {
			costs := Costs(values)
			loop := Iterative{}.Sum(costs)
			bulk := Bulk{}.Sum(costs)
			if !Agree(loop, bulk) {
				t.Logf("loop=%v bulk=%v for %v", loop, bulk, costs)
				return false
			}
			return true
		},
		genCosts(),
	))

	properties.TestingRun(t)
}

// TestStrategiesBelowThreshold_PropertyBased checks that a collection made
// only of qualifying costs totals sum*TaxMultiplier.
func TestStrategiesBelowThreshold_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	for _, s := range allStrategies() {
		s := s
		properties.Property(s.Name()+" totals sum*tax when every cost qualifies", prop.ForAll(
			func(values []int64) bool {
				var sum int64
				for _, v := range values {
					sum += v
				}
				return Agree(s.Sum(Costs(values)), float64(sum)*TaxMultiplier)
			},
			gen.SliceOf(gen.Int64Range(0, Threshold-1)),
		))
	}

	properties.TestingRun(t)
}

// TestStrategiesAboveThreshold_PropertyBased checks that nothing at or
// above the threshold ever contributes.
func TestStrategiesAboveThreshold_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	properties := gopter.NewProperties(parameters)

	for _, s := range allStrategies() {
		s := s
		properties.Property(s.Name()+" totals zero when no cost qualifies", prop.ForAll(
			func(values []int64) bool {
				return s.Sum(Costs(values)) == 0
			},
			gen.SliceOf(gen.Int64Range(Threshold, 10_000)),
		))
	}

	properties.TestingRun(t)
}
