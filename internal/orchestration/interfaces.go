//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

package orchestration

import (
	"io"
	"time"
)

// StrategyResult encapsulates the outcome of running one summation strategy.
// It is the shared domain type between orchestration and presentation layers.
type StrategyResult struct {
	// Name is the registry key of the strategy (e.g. "loop").
	Name string
	// Description is the human-readable label of the strategy.
	Description string
	// Total is the tax-inclusive total the strategy computed.
	Total float64
	// Duration is the wall-clock time of the fastest run.
	Duration time.Duration
	// Runs is how many times the strategy was executed.
	Runs int
}

// ResultReporter defines how results reach the user. It decouples the
// orchestration layer from output formatting.
//
// ExecuteStrategies calls ReportDuration once per strategy, immediately after
// that strategy has finished, and ReportTotals once after every strategy has
// finished.
type ResultReporter interface {
	// ReportDuration presents the timing of a single strategy.
	ReportDuration(result StrategyResult, out io.Writer)
	// ReportTotals presents the totals of all strategies, in run order.
	ReportTotals(results []StrategyResult, out io.Writer)
}

// NullReporter is a no-op implementation of ResultReporter, used when the
// results are rendered in one piece afterwards (e.g. JSON output).
type NullReporter struct{}

// ReportDuration does nothing.
func (NullReporter) ReportDuration(StrategyResult, io.Writer) {}

// ReportTotals does nothing.
func (NullReporter) ReportTotals([]StrategyResult, io.Writer) {}
