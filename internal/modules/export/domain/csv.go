package domain

import (
	"fmt"
	"strings"
	"time"

	reportdto "hourly/internal/modules/report/dto"
	"hourly/internal/platform/day"
	"hourly/internal/platform/slug"
)

const MIMEType = "text/csv"

// taskHeader is the per-task column order shared by both report flavors.
var taskHeader = []string{
	"Task", "Client", "Date", "Start Date", "End Date", "Actual Hours",
	"Estimation Date", "Estimation Hours", "Billable", "Status", "Notes",
}

// WeeklyDocument lays out a weekly report as CSV rows: title, scope,
// summary block, then one row per task in repository order.
func WeeklyDocument(report reportdto.ReportOutput) [][]string {
	rows := [][]string{
		{"Weekly Report"},
		{"Week Start", day.Of(report.WeekStart).String(), "Week End", day.Of(report.WeekEnd).String()},
	}
	return appendBody(rows, report)
}

// MonthlyDocument lays out a monthly report the same way, scoped by month
// name instead of week bounds.
func MonthlyDocument(report reportdto.ReportOutput) [][]string {
	rows := [][]string{
		{"Monthly Report"},
		{"Month", report.MonthName},
	}
	return appendBody(rows, report)
}

func appendBody(rows [][]string, report reportdto.ReportOutput) [][]string {
	totals := report.Totals
	rows = append(rows,
		nil,
		[]string{"Summary"},
		[]string{"Total Tasks", fmt.Sprintf("%d", totals.TotalTasks)},
		[]string{"Completed", fmt.Sprintf("%d", totals.Completed)},
		[]string{"Actual Hours", fmt.Sprintf("%.2f", totals.TotalHours)},
		[]string{"Estimation Hours", fmt.Sprintf("%.2f", totals.TotalEstimationHours)},
		[]string{"Billable Hours", fmt.Sprintf("%.2f", totals.BillableHours)},
		[]string{"Non-Billable Hours", fmt.Sprintf("%.2f", totals.NonBillableHours)},
		nil,
		taskHeader,
	)
	for _, e := range report.Entries {
		billable := "No"
		if e.Billable {
			billable = "Yes"
		}
		status := "Open"
		if e.Completed {
			status = "Completed"
		}
		rows = append(rows, []string{
			e.Title,
			e.Client,
			e.Date.String(),
			e.StartDate.String(),
			e.EndDate.String(),
			fmt.Sprintf("%.2f", e.Hours),
			e.EstimationDate.String(),
			fmt.Sprintf("%.2f", e.EstimationHours),
			billable,
			status,
			e.Notes,
		})
	}
	return rows
}

// Render joins cells with commas and rows with newlines, quoting only the
// cells that need it.
func Render(rows [][]string) string {
	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		cells := make([]string, 0, len(row))
		for _, cell := range row {
			cells = append(cells, EscapeCell(cell))
		}
		lines = append(lines, strings.Join(cells, ","))
	}
	return strings.Join(lines, "\n")
}

// EscapeCell wraps a cell in double quotes, doubling embedded quotes, when
// it contains a comma, quote, or newline. Everything else passes verbatim.
func EscapeCell(value string) string {
	if !strings.ContainsAny(value, ",\"\n") {
		return value
	}
	return `"` + strings.ReplaceAll(value, `"`, `""`) + `"`
}

func WeeklyFileName(weekStart time.Time) string {
	return fmt.Sprintf("weekly-report-%s.csv", day.Of(weekStart).String())
}

func MonthlyFileName(month time.Month) string {
	return fmt.Sprintf("monthly-report-%s.csv", slug.Make(month.String()))
}
