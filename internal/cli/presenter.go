// Package cli renders giftcalc results for the terminal and as JSON.
package cli

import (
	"fmt"
	"io"
	"strconv"

	apperrors "github.com/agbru/giftcalc/internal/errors"
	"github.com/agbru/giftcalc/internal/format"
	"github.com/agbru/giftcalc/internal/orchestration"
	"github.com/agbru/giftcalc/internal/ui"
)

// TextReporter implements orchestration.ResultReporter with the plain
// line-per-value output: one duration line per strategy as it finishes,
// then one total per line.
type TextReporter struct{}

// Verify interface compliance.
var _ orchestration.ResultReporter = TextReporter{}

// ReportDuration prints "Duration for sum with <name>: <seconds> seconds".
func (TextReporter) ReportDuration(res orchestration.StrategyResult, out io.Writer) {
	fmt.Fprintf(out, "Duration for sum with %s: %s seconds\n", res.Name, format.FormatSeconds(res.Duration))
}

// ReportTotals prints each total on its own line, in run order.
func (TextReporter) ReportTotals(results []orchestration.StrategyResult, out io.Writer) {
	for _, res := range results {
		fmt.Fprintln(out, FormatTotal(res.Total))
	}
}

// FormatTotal renders a total with the shortest decimal representation that
// round-trips, so rounding differences between strategies stay visible.
func FormatTotal(total float64) string {
	return strconv.FormatFloat(total, 'f', -1, 64)
}

// CLIColorProvider implements apperrors.ColorProvider using the current theme.
type CLIColorProvider struct{}

var _ apperrors.ColorProvider = CLIColorProvider{}

func (CLIColorProvider) Red() string   { return ui.ColorRed() }
func (CLIColorProvider) Reset() string { return ui.ColorReset() }
