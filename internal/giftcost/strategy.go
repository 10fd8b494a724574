//go:generate mockgen -source=strategy.go -destination=mocks/mock_strategy.go -package=mocks

package giftcost

import (
	"fmt"
	"slices"
)

// Strategy computes the tax-inclusive total of the costs below Threshold.
// Implementations are pure: they never modify costs and return the same
// value for the same input.
type Strategy interface {
	// Name is the short registry key (e.g. "loop").
	Name() string
	// Description is a human-readable label for reports.
	Description() string
	// Sum returns the total of the qualifying costs after tax.
	Sum(costs Costs) float64
}

// Iterative visits every cost in order and adds the taxed price of each
// one below the threshold to a running total.
type Iterative struct{}

func (Iterative) Name() string        { return "loop" }
func (Iterative) Description() string { return "Element-by-element loop" }

// Sum applies the tax to each qualifying cost as it is visited.
func (Iterative) Sum(costs Costs) float64 {
	total := 0.0
	for _, cost := range costs {
		if cost < Threshold {
			total += float64(cost) * TaxMultiplier
		}
	}
	return total
}

// Bulk filters the whole collection, reduces the survivors to an exact
// integer sum and applies the tax once to that sum. When the exact sum does
// not fit in an int64 the survivors are reduced in float64 instead.
type Bulk struct{}

func (Bulk) Name() string        { return "bulk" }
func (Bulk) Description() string { return "Bulk filter-and-reduce" }

// Sum returns sum(costs[costs < Threshold]) * TaxMultiplier.
func (Bulk) Sum(costs Costs) float64 {
	kept := Filter(costs, belowThreshold)
	if sum, ok := SumInts(kept); ok {
		return float64(sum) * TaxMultiplier
	}
	return sumFloat(kept) * TaxMultiplier
}

func belowThreshold(v int64) bool { return v < Threshold }

// Filter returns a new slice holding the elements of s for which keep
// reports true, in their original order. s is not modified.
func Filter[S ~[]E, E any](s S, keep func(E) bool) S {
	out := make(S, 0, len(s))
	for _, v := range s {
		if keep(v) {
			out = append(out, v)
		}
	}
	return out
}

// SumInts reduces s to its sum using four independent accumulators so the
// additions do not form a single dependency chain. ok is false when any
// addition overflowed, in which case sum is meaningless.
func SumInts[S ~[]E, E ~int | ~int32 | ~int64](s S) (sum E, ok bool) {
	var a0, a1, a2, a3 E
	var o0, o1, o2, o3 bool
	ok = true
	i := 0
	for ; i+4 <= len(s); i += 4 {
		a0, o0 = addChecked(a0, s[i])
		a1, o1 = addChecked(a1, s[i+1])
		a2, o2 = addChecked(a2, s[i+2])
		a3, o3 = addChecked(a3, s[i+3])
		ok = ok && o0 && o1 && o2 && o3
	}
	for ; i < len(s); i++ {
		a0, o0 = addChecked(a0, s[i])
		ok = ok && o0
	}
	a0, o0 = addChecked(a0, a1)
	a2, o2 = addChecked(a2, a3)
	sum, o1 = addChecked(a0, a2)
	return sum, ok && o0 && o1 && o2
}

// addChecked returns a+b and whether the addition stayed in range.
func addChecked[E ~int | ~int32 | ~int64](a, b E) (E, bool) {
	s := a + b
	return s, (s > a) == (b > 0)
}

func sumFloat(s Costs) float64 {
	total := 0.0
	for _, v := range s {
		total += float64(v)
	}
	return total
}

// Registry holds the available strategies in run order.
type Registry struct {
	order      []string
	strategies map[string]Strategy
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{strategies: make(map[string]Strategy)}
}

// NewDefaultRegistry returns a Registry with the loop strategy followed by
// the bulk strategy.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(Iterative{})
	r.Register(Bulk{})
	return r
}

// Register adds s under s.Name(). Registering the same name again replaces
// the strategy but keeps its original position.
func (r *Registry) Register(s Strategy) {
	name := s.Name()
	if _, ok := r.strategies[name]; !ok {
		r.order = append(r.order, name)
	}
	r.strategies[name] = s
}

// List returns the registered names in run order.
func (r *Registry) List() []string {
	return slices.Clone(r.order)
}

// Get returns the strategy registered under name.
func (r *Registry) Get(name string) (Strategy, error) {
	s, ok := r.strategies[name]
	if !ok {
		return nil, fmt.Errorf("unknown strategy %q (available: %v)", name, r.order)
	}
	return s, nil
}

// GetAll returns every registered strategy in run order.
func (r *Registry) GetAll() []Strategy {
	all := make([]Strategy, 0, len(r.order))
	for _, name := range r.order {
		all = append(all, r.strategies[name])
	}
	return all
}
