package optimizer

import (
	"fmt"
	"io"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/rxtech-lab/argo-backtest/internal/utils"
	"github.com/rxtech-lab/argo-backtest/pkg/errors"
	"gopkg.in/yaml.v3"
)

// ReportRow is one ranked outcome.
type ReportRow struct {
	Rank    int     `yaml:"rank"`
	Params  string  `yaml:"params"`
	Balance float64 `yaml:"balance"`
	// Performance is the change from the initial balance, in percent.
	Performance float64 `yaml:"performance"`
	Error       string  `yaml:"error,omitempty"`
	// ErrorCategory is the code group of Error, e.g. strategy or trading.
	ErrorCategory errors.Category `yaml:"error_category,omitempty"`
}

// Report summarizes an optimizer run for humans and for files.
type Report struct {
	RunID          string      `yaml:"run_id"`
	Combinations   int         `yaml:"combinations"`
	Successes      int         `yaml:"successes"`
	Failures       int         `yaml:"failures"`
	Workers        int         `yaml:"workers"`
	Duration       string      `yaml:"duration"`
	InitialBalance float64     `yaml:"initial_balance"`
	Best           []ReportRow `yaml:"best"`
	Errors         []ReportRow `yaml:"errors"`
}

// NewReport ranks the best and error outcomes of result. format renders one parameter combination;
// nil falls back to fmt.Sprint.
func NewReport[P any](result *Result[P], initialBalance float64, format func(P) string) Report {
	if format == nil {
		format = func(p P) string {
			return fmt.Sprint(p)
		}
	}

	successes := len(result.Successes())

	return Report{
		RunID:          result.RunID,
		Combinations:   len(result.Outcomes),
		Successes:      successes,
		Failures:       len(result.Outcomes) - successes,
		Workers:        result.Workers,
		Duration:       result.Duration.String(),
		InitialBalance: initialBalance,
		Best:           reportRows(result.Best, initialBalance, format),
		Errors:         reportRows(result.Errors, initialBalance, format),
	}
}

func reportRows[P any](outcomes []Outcome[P], initialBalance float64, format func(P) string) []ReportRow {
	rows := make([]ReportRow, 0, len(outcomes))

	for i, outcome := range outcomes {
		row := ReportRow{
			Rank:        i + 1,
			Params:      format(outcome.Params),
			Balance:     outcome.Balance,
			Performance: utils.Change(initialBalance, outcome.Balance),
		}

		if outcome.Err != nil {
			row.Error = outcome.Err.Error()
			row.ErrorCategory = errors.GetCode(outcome.Err).Category()
		}

		rows = append(rows, row)
	}

	return rows
}

// WriteReport writes the report as yaml to path.
func (r Report) WriteReport(path string) error {
	data, err := yaml.Marshal(r)
	if err != nil {
		return errors.Wrap(errors.ErrCodeDataWriteFailed, "failed to marshal optimizer report", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrapf(errors.ErrCodeDataWriteFailed, err, "failed to write optimizer report to %s", path)
	}

	return nil
}

// RenderTable prints the best and error lists as tables.
func (r Report) RenderTable(w io.Writer) {
	fmt.Fprintf(w, "=== TOP %d ===\n", len(r.Best))
	renderRows(w, r.Best, false)

	if len(r.Errors) == 0 {
		return
	}

	fmt.Fprintf(w, "\n=== ERROR CASES (TOP %d) ===\n", len(r.Errors))
	renderRows(w, r.Errors, true)
}

func renderRows(w io.Writer, rows []ReportRow, withError bool) {
	table := tablewriter.NewWriter(w)

	header := []string{"Rank", "Parameters", "Balance", "Performance"}
	if withError {
		header = append(header, "Category", "Error")
	}

	table.SetHeader(header)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	for _, row := range rows {
		line := []string{
			fmt.Sprintf("%d", row.Rank),
			row.Params,
			fmt.Sprintf("$%.2f", row.Balance),
			fmt.Sprintf("%+.2f%%", row.Performance),
		}

		if withError {
			line = append(line, string(row.ErrorCategory), row.Error)
		}

		table.Append(line)
	}

	table.Render()
}
