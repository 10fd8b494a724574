package orchestration

import (
	"context"
	"io"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	apperrors "github.com/agbru/giftcalc/internal/errors"
	"github.com/agbru/giftcalc/internal/giftcost"
)

const tracerName = "github.com/agbru/giftcalc/internal/orchestration"

// since is replaced in tests to make durations deterministic.
var since = time.Since

// ExecuteStrategies runs each strategy over costs, one after another, and
// returns their results in the same order.
//
// Each strategy is executed runs times (at least once); the reported
// duration is the fastest run and the timing brackets only the Sum call.
// The reporter receives each duration as soon as its strategy completes
// and all totals at the end.
//
// Parameters:
//   - ctx: Carries the trace span of the caller.
//   - strategies: The strategies to execute, in run order.
//   - costs: The shared, read-only cost collection.
//   - runs: How many times each strategy is executed.
//   - reporter: Receives results as they become available.
//   - out: The io.Writer handed to the reporter.
//
// Returns:
//   - []StrategyResult: One result per strategy.
func ExecuteStrategies(ctx context.Context, strategies []giftcost.Strategy, costs giftcost.Costs, runs int, reporter ResultReporter, out io.Writer) []StrategyResult {
	if runs < 1 {
		runs = 1
	}
	tracer := otel.Tracer(tracerName)
	results := make([]StrategyResult, 0, len(strategies))

	for _, s := range strategies {
		_, span := tracer.Start(ctx, "giftcalc.strategy", trace.WithAttributes(
			attribute.String("giftcalc.strategy", s.Name()),
			attribute.Int("giftcalc.costs", len(costs)),
			attribute.Int("giftcalc.runs", runs),
		))

		res := StrategyResult{Name: s.Name(), Description: s.Description(), Runs: runs}
		for i := 0; i < runs; i++ {
			start := time.Now()
			total := s.Sum(costs)
			elapsed := since(start)
			if i == 0 || elapsed < res.Duration {
				res.Duration = elapsed
			}
			res.Total = total
		}

		span.SetAttributes(
			attribute.Float64("giftcalc.total", res.Total),
			attribute.Int64("giftcalc.duration_ns", res.Duration.Nanoseconds()),
		)
		span.End()

		reporter.ReportDuration(res, out)
		results = append(results, res)
	}

	reporter.ReportTotals(results, out)
	return results
}

// AnalyzeResults checks that every total agrees with the first one within
// giftcost.AgreementTolerance.
//
// Returns:
//   - error: nil when all totals agree, otherwise an apperrors.MismatchError
//     naming the first disagreeing strategy.
func AnalyzeResults(results []StrategyResult) error {
	if len(results) < 2 {
		return nil
	}
	ref := results[0]
	for _, res := range results[1:] {
		if !giftcost.Agree(ref.Total, res.Total) {
			return apperrors.MismatchError{
				Reference:      ref.Name,
				Other:          res.Name,
				ReferenceTotal: ref.Total,
				OtherTotal:     res.Total,
			}
		}
	}
	return nil
}

// Fastest returns the result with the shortest duration, or false when
// results is empty. Ties keep the earlier result.
func Fastest(results []StrategyResult) (StrategyResult, bool) {
	if len(results) == 0 {
		return StrategyResult{}, false
	}
	best := results[0]
	for _, res := range results[1:] {
		if res.Duration < best.Duration {
			best = res
		}
	}
	return best, true
}

// Slowest returns the result with the longest duration, or false when
// results is empty. Ties keep the earlier result.
func Slowest(results []StrategyResult) (StrategyResult, bool) {
	if len(results) == 0 {
		return StrategyResult{}, false
	}
	worst := results[0]
	for _, res := range results[1:] {
		if res.Duration > worst.Duration {
			worst = res
		}
	}
	return worst, true
}
