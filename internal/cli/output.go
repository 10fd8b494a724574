// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on their behavior:
//
//   - Display* functions write formatted output to an [io.Writer].
//     They handle presentation logic and colorization.
//     Examples: [DisplayDetails].
//
//   - Format* functions return a formatted string without performing I/O.
//     Examples: [FormatTotal].
//
//   - Write* functions serialize a report to an [io.Writer].
//     Examples: [WriteJSON].

package cli

import (
	"fmt"
	"io"

	"github.com/bytedance/sonic"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/agbru/giftcalc/internal/format"
	"github.com/agbru/giftcalc/internal/giftcost"
	"github.com/agbru/giftcalc/internal/metrics"
	"github.com/agbru/giftcalc/internal/orchestration"
	"github.com/agbru/giftcalc/internal/sysmon"
	"github.com/agbru/giftcalc/internal/ui"
)

// RunSummary gathers everything known about a finished run.
type RunSummary struct {
	// Input is the path the costs were read from.
	Input string
	// Count is the number of costs loaded.
	Count int
	// Included is the number of costs below the threshold.
	Included int
	// Results holds one entry per executed strategy, in run order.
	Results []orchestration.StrategyResult
	// Mismatch is the agreement check outcome; nil when totals agree.
	Mismatch error
	// Alloc is what the strategies allocated.
	Alloc metrics.AllocDelta
	// Host is the machine load sampled after the run.
	Host sysmon.Stats
}

// DisplayDetails prints the comparison table followed by the run statistics.
func DisplayDetails(out io.Writer, s RunSummary) {
	fmt.Fprintf(out, "\n%s--- Comparison Summary ---%s\n", ui.ColorBold(), ui.ColorReset())

	rows := make([][]string, 0, len(s.Results))
	for _, res := range s.Results {
		status := "agrees"
		if s.Mismatch != nil {
			status = "MISMATCH"
		}
		rows = append(rows, []string{
			res.Description,
			format.FormatExecutionDuration(res.Duration),
			FormatTotal(res.Total),
			status,
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(ui.BorderStyle()).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return ui.HeaderStyle()
			}
			return ui.CellStyle()
		}).
		Headers("Strategy", "Duration", "Total", "Status").
		Rows(rows...)
	fmt.Fprintln(out, t.Render())

	fmt.Fprintf(out, "Input: %s%s%s (%d costs, %d under %d)\n",
		ui.ColorCyan(), s.Input, ui.ColorReset(), s.Count, s.Included, giftcost.Threshold)

	fastest, okFast := orchestration.Fastest(s.Results)
	slowest, okSlow := orchestration.Slowest(s.Results)
	if okFast && okSlow && fastest.Name != slowest.Name {
		fmt.Fprintf(out, "Speedup: %s%s%s is %s%s%s faster than %s\n",
			ui.ColorBlue(), fastest.Name, ui.ColorReset(),
			ui.ColorYellow(), format.FormatSpeedup(slowest.Duration, fastest.Duration), ui.ColorReset(),
			slowest.Name)
	}

	if s.Mismatch != nil {
		fmt.Fprintf(out, "%sGlobal Status:%s %sCRITICAL ERROR!%s %v\n",
			ui.ColorUnderline(), ui.ColorReset(), ui.ColorRed(), ui.ColorReset(), s.Mismatch)
	} else {
		fmt.Fprintf(out, "%sGlobal Status:%s %sSuccess.%s All totals agree within %g.\n",
			ui.ColorUnderline(), ui.ColorReset(), ui.ColorGreen(), ui.ColorReset(), giftcost.AgreementTolerance)
	}

	fmt.Fprintf(out, "Memory: %s allocated in %d objects, %d GC cycles\n",
		format.FormatBytes(s.Alloc.Bytes), s.Alloc.Objects, s.Alloc.GCs)
	fmt.Fprintf(out, "Host load: %s\n", s.Host)
}

// Report is the machine-readable form of a run.
type Report struct {
	Input         string         `json:"input"`
	Count         int            `json:"count"`
	Included      int            `json:"included"`
	Threshold     int            `json:"threshold"`
	TaxMultiplier float64        `json:"tax_multiplier"`
	Results       []ReportResult `json:"results"`
	Agree         bool           `json:"agree"`
}

// ReportResult is the machine-readable form of one strategy result.
type ReportResult struct {
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	Total           float64 `json:"total"`
	DurationNs      int64   `json:"duration_ns"`
	DurationSeconds float64 `json:"duration_seconds"`
	Runs            int     `json:"runs"`
}

// NewReport converts a RunSummary into a Report.
func NewReport(s RunSummary) Report {
	r := Report{
		Input:         s.Input,
		Count:         s.Count,
		Included:      s.Included,
		Threshold:     giftcost.Threshold,
		TaxMultiplier: giftcost.TaxMultiplier,
		Results:       make([]ReportResult, 0, len(s.Results)),
		Agree:         s.Mismatch == nil,
	}
	for _, res := range s.Results {
		r.Results = append(r.Results, ReportResult{
			Name:            res.Name,
			Description:     res.Description,
			Total:           res.Total,
			DurationNs:      res.Duration.Nanoseconds(),
			DurationSeconds: res.Duration.Seconds(),
			Runs:            res.Runs,
		})
	}
	return r
}

// WriteJSON writes the report as indented JSON followed by a newline.
func WriteJSON(out io.Writer, r Report) error {
	data, err := sonic.ConfigStd.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	data = append(data, '\n')
	if _, err := out.Write(data); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}
