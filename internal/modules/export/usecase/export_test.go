package usecase_test

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	exportout "hourly/internal/modules/export/adapter/out"
	"hourly/internal/modules/export/usecase"
	reportdto "hourly/internal/modules/report/dto"
	"hourly/internal/platform/day"
	apperrors "hourly/internal/platform/errors"
)

// fakeReports serves canned reports so export tests control the scope
// contents directly.
type fakeReports struct {
	weekly  reportdto.ReportOutput
	monthly reportdto.ReportOutput
}

func (f *fakeReports) Weekly(context.Context, time.Time) (reportdto.ReportOutput, error) {
	return f.weekly, nil
}

func (f *fakeReports) Monthly(context.Context, time.Month) (reportdto.ReportOutput, error) {
	return f.monthly, nil
}

func populatedWeek() reportdto.ReportOutput {
	d := day.New(2026, time.April, 6)
	return reportdto.ReportOutput{
		WeekStart: time.Date(2026, 4, 5, 0, 0, 0, 0, time.Local),
		WeekEnd:   time.Date(2026, 4, 11, 23, 59, 59, 0, time.Local),
		Entries: []reportdto.EntryOutput{{
			Title: "Ship release", Client: "Acme", Date: d, StartDate: d, EndDate: d,
			Hours: 3, EstimationDate: d, EstimationHours: 3, Billable: true,
		}},
		Totals: reportdto.AggregateOutput{TotalTasks: 1, TotalHours: 3, TotalEstimationHours: 3, BillableHours: 3},
	}
}

func TestExportWeeklyWritesCSVIntoDirectory(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	uc := usecase.NewInteractor(&fakeReports{weekly: populatedWeek()}, exportout.NewFileDelivery(dir))

	out, err := uc.ExportWeekly(context.Background(), time.Date(2026, 4, 8, 12, 0, 0, 0, time.Local))
	if err != nil {
		t.Fatalf("export weekly: %v", err)
	}
	if out.Name != "weekly-report-2026-04-05.csv" {
		t.Fatalf("unexpected export name %q", out.Name)
	}
	if out.TaskCount != 1 {
		t.Fatalf("expected 1 exported task, got %d", out.TaskCount)
	}
	payload, err := os.ReadFile(out.Path)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	content := string(payload)
	if !strings.HasPrefix(content, "Weekly Report") || !strings.Contains(content, "Ship release") {
		t.Fatalf("unexpected export contents:\n%s", content)
	}

	// Exporting the same scope again overwrites the same file with the
	// same bytes.
	again, err := uc.ExportWeekly(context.Background(), time.Date(2026, 4, 8, 12, 0, 0, 0, time.Local))
	if err != nil {
		t.Fatalf("repeat export: %v", err)
	}
	if again.Path != out.Path {
		t.Fatalf("repeat export must target the same file, got %q vs %q", again.Path, out.Path)
	}
	repeat, err := os.ReadFile(again.Path)
	if err != nil {
		t.Fatalf("read repeat export: %v", err)
	}
	if string(repeat) != content {
		t.Fatalf("repeat export must be byte-identical")
	}
}

func TestExportMonthlyUsesMonthSlugName(t *testing.T) {
	t.Parallel()
	monthly := populatedWeek()
	monthly.WeekStart, monthly.WeekEnd = time.Time{}, time.Time{}
	monthly.Month = time.April
	monthly.MonthName = "April"
	uc := usecase.NewInteractor(&fakeReports{monthly: monthly}, exportout.NewFileDelivery(t.TempDir()))

	out, err := uc.ExportMonthly(context.Background(), time.April)
	if err != nil {
		t.Fatalf("export monthly: %v", err)
	}
	if out.Name != "monthly-report-april.csv" {
		t.Fatalf("unexpected export name %q", out.Name)
	}
	if _, err := os.Stat(out.Path); err != nil {
		t.Fatalf("export file must exist: %v", err)
	}
}

func TestExportEmptyScopeFails(t *testing.T) {
	t.Parallel()
	uc := usecase.NewInteractor(&fakeReports{monthly: reportdto.ReportOutput{MonthName: "December"}}, exportout.NewFileDelivery(t.TempDir()))

	if _, err := uc.ExportWeekly(context.Background(), time.Now()); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("empty week must not export, got %v", err)
	}
	if _, err := uc.ExportMonthly(context.Background(), time.December); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("empty month must not export, got %v", err)
	}
}
