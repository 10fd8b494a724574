package orchestration

import "github.com/agbru/giftcalc/internal/giftcost"

// StrategyRegistry is the subset of giftcost.Registry used for selection.
type StrategyRegistry interface {
	Get(name string) (giftcost.Strategy, error)
	GetAll() []giftcost.Strategy
}

// GetStrategiesToRun determines which strategies should be executed.
// "all" selects every registered strategy in run order; any other name
// selects that single strategy, or none when it is unknown.
//
// Parameters:
//   - name: The configured strategy selection.
//   - registry: The registry to retrieve implementations from.
//
// Returns:
//   - []giftcost.Strategy: The strategies to execute.
func GetStrategiesToRun(name string, registry StrategyRegistry) []giftcost.Strategy {
	if name == "all" {
		return registry.GetAll()
	}
	if s, err := registry.Get(name); err == nil {
		return []giftcost.Strategy{s}
	}
	return nil
}
