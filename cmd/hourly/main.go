package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"hourly/internal/bootstrap"
	taskdto "hourly/internal/modules/task/dto"
	"hourly/internal/platform/config"
	"hourly/internal/platform/day"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var dataDir string

	root := &cobra.Command{
		Use:           "hourly",
		Short:         "Personal task and time tracker",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&dataDir, "data", "", "data directory (default ~/.hourly)")

	root.AddCommand(newTaskCmd(&dataDir))
	root.AddCommand(newTimerCmd(&dataDir))
	root.AddCommand(newReportCmd(&dataDir))
	root.AddCommand(newExportCmd(&dataDir))
	root.AddCommand(newReindexCmd(&dataDir))
	root.AddCommand(newTUICmd(&dataDir))
	return root
}

func loadApp(dataDir string) (*bootstrap.App, error) {
	cfg, err := config.New(dataDir)
	if err != nil {
		return nil, err
	}
	return bootstrap.New(cfg)
}

// parseMonth converts the human 1-12 flag value to a calendar month.
func parseMonth(value int) (time.Month, error) {
	if value < 1 || value > 12 {
		return 0, fmt.Errorf("month must be between 1 and 12, got %d", value)
	}
	return time.Month(value), nil
}

func newTaskCmd(dataDir *string) *cobra.Command {
	task := &cobra.Command{Use: "task", Short: "Record and manage tasks"}

	var title, client, notes string
	var dateStr, startStr, endStr, estDateStr string
	var hours, estHours float64
	var billable bool
	add := &cobra.Command{
		Use:   "add --title <text> --hours <n>",
		Short: "Record a task",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(title) == "" {
				return fmt.Errorf("--title is required")
			}
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			input := taskdto.AddInput{
				Title:    title,
				Client:   client,
				Hours:    hours,
				Notes:    notes,
				Billable: billable,
			}
			if input.Date, err = parseDayFlag(dateStr, day.Of(time.Now())); err != nil {
				return err
			}
			if input.StartDate, err = parseDayFlag(startStr, day.Day{}); err != nil {
				return err
			}
			if input.EndDate, err = parseDayFlag(endStr, day.Day{}); err != nil {
				return err
			}
			if input.EstimationDate, err = parseDayFlag(estDateStr, day.Day{}); err != nil {
				return err
			}
			if cmd.Flags().Changed("est-hours") {
				input.EstimationHours = &estHours
			}
			out, err := app.TaskCLI.Add(context.Background(), input)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "added %q (%s) %.2fh on %s\n", out.Title, out.ID, out.Hours, out.Date)
			return nil
		},
	}
	add.Flags().StringVar(&title, "title", "", "task title")
	add.Flags().StringVar(&client, "client", "", "client name (default from config)")
	add.Flags().StringVar(&dateStr, "date", "", "task date YYYY-MM-DD (default today)")
	add.Flags().StringVar(&startStr, "start", "", "start date (default task date)")
	add.Flags().StringVar(&endStr, "end", "", "end date (default task date)")
	add.Flags().Float64Var(&hours, "hours", 0, "actual hours worked")
	add.Flags().StringVar(&estDateStr, "est-date", "", "estimation date (default task date)")
	add.Flags().Float64Var(&estHours, "est-hours", 0, "estimated hours (default actual hours)")
	add.Flags().StringVar(&notes, "notes", "", "free-form notes")
	add.Flags().BoolVar(&billable, "billable", false, "mark the task billable")
	task.AddCommand(add)

	var listMonth int
	list := &cobra.Command{
		Use:   "list",
		Short: "List tasks, most recent first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			var tasks []taskdto.TaskOutput
			if cmd.Flags().Changed("month") {
				month, err := parseMonth(listMonth)
				if err != nil {
					return err
				}
				tasks, err = app.TaskCLI.ListMonth(context.Background(), month)
				if err != nil {
					return err
				}
			} else {
				tasks, err = app.TaskCLI.List(context.Background())
				if err != nil {
					return err
				}
			}
			if len(tasks) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no tasks")
				return nil
			}
			for _, t := range tasks {
				status := "open"
				if t.Completed {
					status = "done"
				}
				billing := " "
				if t.Billable {
					billing = "$"
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%s\t%.2fh (est %.2fh)\t%s%s\n",
					t.ID, t.Date, t.Title, t.Client, t.Hours, t.EstimationHours, billing, status)
			}
			return nil
		},
	}
	list.Flags().IntVar(&listMonth, "month", 0, "only tasks in this month of any year (1-12)")
	task.AddCommand(list)

	task.AddCommand(&cobra.Command{
		Use:   "done <id>",
		Short: "Toggle a task's completed flag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			out, err := app.TaskCLI.ToggleCompleted(context.Background(), args[0])
			if err != nil {
				return err
			}
			state := "open"
			if out.Completed {
				state = "completed"
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%q is now %s\n", out.Title, state)
			return nil
		},
	})

	task.AddCommand(&cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			out, err := app.TaskCLI.Remove(context.Background(), args[0])
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "removed %q\n", out.Title)
			return nil
		},
	})

	var clearMonth int
	var clearForce bool
	clear := &cobra.Command{
		Use:   "clear",
		Short: "Bulk delete tasks",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !clearForce {
				return fmt.Errorf("clear is destructive; re-run with --force")
			}
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			var month *time.Month
			if cmd.Flags().Changed("month") {
				m, err := parseMonth(clearMonth)
				if err != nil {
					return err
				}
				month = &m
			}
			out, err := app.TaskCLI.Clear(context.Background(), month)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "removed %d task(s)\n", out.Removed)
			return nil
		},
	}
	clear.Flags().IntVar(&clearMonth, "month", 0, "only clear tasks in this month of any year (1-12)")
	clear.Flags().BoolVar(&clearForce, "force", false, "skip confirmation")
	task.AddCommand(clear)

	return task
}

func newTimerCmd(dataDir *string) *cobra.Command {
	timer := &cobra.Command{Use: "timer", Short: "Track work with a start/stop timer"}

	var name, client string
	var billable bool
	start := &cobra.Command{
		Use:   "start --name <text> --client <text>",
		Short: "Start the timer",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			out, err := app.TimerCLI.Start(context.Background(), name, client, billable)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "timer started for %q (%s) at %s\n",
				out.TaskName, out.Client, out.StartedAt.Format("15:04:05"))
			return nil
		},
	}
	start.Flags().StringVar(&name, "name", "", "task name")
	start.Flags().StringVar(&client, "client", "", "client name")
	start.Flags().BoolVar(&billable, "billable", false, "mark the resulting task billable")
	timer.AddCommand(start)

	timer.AddCommand(&cobra.Command{
		Use:   "stop",
		Short: "Stop the timer and record a task",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			out, err := app.TimerCLI.Stop(context.Background())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "recorded %q: %.2fh (%s)\n", out.Title, out.Hours, out.Elapsed.Round(time.Second))
			return nil
		},
	})

	var resetForce bool
	reset := &cobra.Command{
		Use:   "reset",
		Short: "Discard the running timer without recording",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !resetForce {
				return fmt.Errorf("reset discards tracked time; re-run with --force")
			}
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			out, err := app.TimerCLI.Reset(context.Background())
			if err != nil {
				return err
			}
			if !out.Discarded {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no timer running")
				return nil
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "discarded timer for %q\n", out.TaskName)
			return nil
		},
	}
	reset.Flags().BoolVar(&resetForce, "force", false, "skip confirmation")
	timer.AddCommand(reset)

	timer.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Show the running timer",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			out, err := app.TimerCLI.Status(context.Background())
			if err != nil {
				return err
			}
			billing := "non-billable"
			if out.Billable {
				billing = "billable"
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%q (%s, %s) running for %s since %s\n",
				out.TaskName, out.Client, billing, out.Elapsed.Round(time.Second), out.StartedAt.Format("2006-01-02 15:04:05"))
			return nil
		},
	})

	return timer
}

func newReportCmd(dataDir *string) *cobra.Command {
	report := &cobra.Command{Use: "report", Short: "Aggregate tasks into reports"}

	report.AddCommand(&cobra.Command{
		Use:   "week",
		Short: "Summarize the current week (Sunday-Saturday)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			out, err := app.ReportCLI.Weekly(context.Background(), time.Now())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Week %s - %s\n", day.Of(out.WeekStart), day.Of(out.WeekEnd))
			printTotals(cmd, out.Totals.TotalTasks, out.Totals.Completed, out.Totals.TotalHours, out.Totals.TotalEstimationHours, out.Totals.BillableHours, out.Totals.NonBillableHours)
			return nil
		},
	})

	report.AddCommand(&cobra.Command{
		Use:   "month <1-12>",
		Short: "Summarize a month of the year, across years",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var monthNum int
			if _, err := fmt.Sscanf(args[0], "%d", &monthNum); err != nil {
				return fmt.Errorf("month must be a number 1-12")
			}
			month, err := parseMonth(monthNum)
			if err != nil {
				return err
			}
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			out, err := app.ReportCLI.Monthly(context.Background(), month)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Month %s (all years)\n", out.MonthName)
			printTotals(cmd, out.Totals.TotalTasks, out.Totals.Completed, out.Totals.TotalHours, out.Totals.TotalEstimationHours, out.Totals.BillableHours, out.Totals.NonBillableHours)
			return nil
		},
	})

	return report
}

func printTotals(cmd *cobra.Command, total, completed int, hours, estHours, billable, nonBillable float64) {
	w := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(w, "  total tasks:        %d\n", total)
	_, _ = fmt.Fprintf(w, "  completed:          %d\n", completed)
	_, _ = fmt.Fprintf(w, "  actual hours:       %.2f\n", hours)
	_, _ = fmt.Fprintf(w, "  estimation hours:   %.2f\n", estHours)
	_, _ = fmt.Fprintf(w, "  billable hours:     %.2f\n", billable)
	_, _ = fmt.Fprintf(w, "  non-billable hours: %.2f\n", nonBillable)
}

func newExportCmd(dataDir *string) *cobra.Command {
	export := &cobra.Command{Use: "export", Short: "Export reports as CSV"}
	var outDir string
	export.PersistentFlags().StringVar(&outDir, "out", "", "output directory (default from config)")

	loadWithOutDir := func() (*bootstrap.App, error) {
		cfg, err := config.New(*dataDir)
		if err != nil {
			return nil, err
		}
		if outDir != "" {
			cfg.ExportDir = outDir
		}
		return bootstrap.New(cfg)
	}

	export.AddCommand(&cobra.Command{
		Use:   "week",
		Short: "Export the current week as CSV",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadWithOutDir()
			if err != nil {
				return err
			}
			out, err := app.ExportCLI.ExportWeekly(context.Background(), time.Now())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d task(s))\n", out.Path, out.TaskCount)
			return nil
		},
	})

	export.AddCommand(&cobra.Command{
		Use:   "month <1-12>",
		Short: "Export a month of the year as CSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var monthNum int
			if _, err := fmt.Sscanf(args[0], "%d", &monthNum); err != nil {
				return fmt.Errorf("month must be a number 1-12")
			}
			month, err := parseMonth(monthNum)
			if err != nil {
				return err
			}
			app, err := loadWithOutDir()
			if err != nil {
				return err
			}
			out, err := app.ExportCLI.ExportMonthly(context.Background(), month)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d task(s))\n", out.Path, out.TaskCount)
			return nil
		},
	})

	return export
}

func newReindexCmd(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "reindex",
		Short: "Rebuild the SQLite index from the canonical task store",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			if err := app.TaskCLI.Reindex(context.Background()); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "reindex completed")
			return nil
		},
	}
}

func newTUICmd(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the hourly terminal UI",
		RunE: func(_ *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			return bootstrap.RunTUI(app)
		},
	}
}

func parseDayFlag(value string, fallback day.Day) (day.Day, error) {
	if strings.TrimSpace(value) == "" {
		return fallback, nil
	}
	return day.Parse(value)
}
