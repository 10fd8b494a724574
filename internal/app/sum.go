package app

import (
	"context"
	"io"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/agbru/giftcalc/internal/cli"
	apperrors "github.com/agbru/giftcalc/internal/errors"
	"github.com/agbru/giftcalc/internal/giftcost"
	"github.com/agbru/giftcalc/internal/logging"
	"github.com/agbru/giftcalc/internal/metrics"
	"github.com/agbru/giftcalc/internal/orchestration"
	"github.com/agbru/giftcalc/internal/sysmon"
)

const tracerName = "github.com/agbru/giftcalc/internal/app"

// runSum loads the costs, runs the selected strategies and reports.
func (a *Application) runSum(ctx context.Context, out io.Writer) int {
	colors := cli.CLIColorProvider{}

	costs, err := a.loadCosts(ctx)
	if err != nil {
		a.Logger.Error("load failed", err, logging.String("input", a.Config.InputFile))
		return apperrors.HandleError(err, a.ErrWriter, colors)
	}
	included := costs.CountBelowThreshold()
	a.Logger.Debug("costs loaded",
		logging.String("input", a.Config.InputFile),
		logging.Int("count", len(costs)),
		logging.Int("included", included))

	strategies := orchestration.GetStrategiesToRun(a.Config.Strategy, a.Registry)

	var reporter orchestration.ResultReporter = cli.TextReporter{}
	if a.Config.JSON {
		reporter = orchestration.NullReporter{}
	}

	collector := metrics.NewMemoryCollector()
	before := collector.Snapshot()
	results := orchestration.ExecuteStrategies(ctx, strategies, costs, a.Config.Runs, reporter, out)
	alloc := collector.Snapshot().Since(before)

	for _, res := range results {
		a.Logger.Debug("strategy finished",
			logging.String("strategy", res.Name),
			logging.Duration("elapsed", res.Duration),
			logging.Float64("total", res.Total))
	}

	mismatch := orchestration.AnalyzeResults(results)

	if a.Config.MetricsFile != "" {
		if err := writeMetrics(a.Config.MetricsFile, len(costs), included, results); err != nil {
			a.Logger.Error("metrics export failed", err)
			return apperrors.HandleError(err, a.ErrWriter, colors)
		}
		a.Logger.Info("metrics written", logging.String("path", a.Config.MetricsFile))
	}

	summary := cli.RunSummary{
		Input:    a.Config.InputFile,
		Count:    len(costs),
		Included: included,
		Results:  results,
		Mismatch: mismatch,
		Alloc:    alloc,
	}
	switch {
	case a.Config.JSON:
		if err := cli.WriteJSON(out, cli.NewReport(summary)); err != nil {
			return apperrors.HandleError(err, a.ErrWriter, colors)
		}
	case a.Config.Details:
		summary.Host = sysmon.Sample()
		cli.DisplayDetails(out, summary)
	}

	if mismatch != nil {
		return apperrors.HandleError(mismatch, a.ErrWriter, colors)
	}
	return apperrors.ExitSuccess
}

// loadCosts reads the configured input file inside a trace span, with an
// optional spinner on the error writer.
func (a *Application) loadCosts(ctx context.Context) (giftcost.Costs, error) {
	_, span := otel.Tracer(tracerName).Start(ctx, "giftcalc.load")
	defer span.End()
	span.SetAttributes(attribute.String("giftcalc.input", a.Config.InputFile))

	if a.Config.Progress {
		stop := cli.StartLoadSpinner(a.ErrWriter, a.Config.InputFile)
		defer stop()
	}

	costs, err := giftcost.Load(a.Config.InputFile)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "load failed")
		return nil, err
	}
	span.SetAttributes(attribute.Int("giftcalc.costs", len(costs)))
	return costs, nil
}

func writeMetrics(path string, count, included int, results []orchestration.StrategyResult) error {
	rec := metrics.NewRecorder()
	rec.ObserveLoad(count, included)
	for _, res := range results {
		rec.ObserveStrategy(res.Name, res.Duration, res.Total)
	}
	return rec.WriteTextfile(path)
}
