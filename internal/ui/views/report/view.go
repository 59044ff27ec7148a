package report

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	reportdto "hourly/internal/modules/report/dto"
	"hourly/internal/platform/day"
	"hourly/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type ReportPort interface {
	Weekly(ctx context.Context, ref time.Time) (reportdto.ReportOutput, error)
	Monthly(ctx context.Context, month time.Month) (reportdto.ReportOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type ReportLoadedMsg struct {
	Report reportdto.ReportOutput
	Err    error
}

// ─── model ───────────────────────────────────────────────────────────────────

type scope int

const (
	scopeWeek scope = iota
	scopeMonth
)

type Model struct {
	port          ReportPort
	scope         scope
	month         time.Month
	report        reportdto.ReportOutput
	err           error
	width, height int
}

func New(port ReportPort) Model {
	return Model{port: port, scope: scopeWeek, month: time.Now().Month()}
}

func (m Model) Init() tea.Cmd {
	return m.loadCmd()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case ReportLoadedMsg:
		m.report = msg.Report
		m.err = msg.Err

	case tea.KeyMsg:
		switch msg.String() {
		case "w":
			m.scope = scopeWeek
			return m, m.loadCmd()
		case "m":
			m.scope = scopeMonth
			return m, m.loadCmd()
		case "left":
			if m.scope == scopeMonth {
				m.month = prevMonth(m.month)
				return m, m.loadCmd()
			}
		case "right":
			if m.scope == scopeMonth {
				m.month = nextMonth(m.month)
				return m, m.loadCmd()
			}
		}
	}
	return m, nil
}

func (m Model) View() string {
	var sb strings.Builder

	if m.scope == scopeWeek {
		sb.WriteString(theme.Title.Render("Weekly Report") + "\n")
		sb.WriteString(theme.Muted.Render(fmt.Sprintf("%s - %s",
			day.Of(m.report.WeekStart).String(), day.Of(m.report.WeekEnd).String())) + "\n\n")
	} else {
		sb.WriteString(theme.Title.Render("Monthly Report") + "\n")
		sb.WriteString(theme.Muted.Render(fmt.Sprintf("← %s →  (all years)", m.month)) + "\n\n")
	}

	if m.err != nil {
		sb.WriteString(theme.Danger.Render(m.err.Error()) + "\n")
	} else if len(m.report.Entries) == 0 {
		sb.WriteString(theme.Muted.Render("No tasks in this period.") + "\n")
	} else {
		t := m.report.Totals
		cards := []string{
			card("Total Tasks", fmt.Sprintf("%d", t.TotalTasks)),
			card("Completed", fmt.Sprintf("%d", t.Completed)),
			card("Actual Hours", fmt.Sprintf("%.2f", t.TotalHours)),
			card("Estimation Hours", fmt.Sprintf("%.2f", t.TotalEstimationHours)),
			card("Billable Hours", fmt.Sprintf("%.2f", t.BillableHours)),
			card("Non-Billable Hours", fmt.Sprintf("%.2f", t.NonBillableHours)),
		}
		sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cards[:3]...) + "\n")
		sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cards[3:]...) + "\n")
	}

	sb.WriteString("\n" + theme.Muted.Render("w: week  m: month  ←/→: change month"))
	return lipgloss.Place(m.width, m.height, lipgloss.Left, lipgloss.Top, sb.String())
}

// Reload refreshes the current scope after the task collection changed.
func (m Model) Reload() tea.Cmd {
	return m.loadCmd()
}

func card(label, value string) string {
	return theme.Pane.Render(theme.Running.Render(value) + "\n" + theme.Muted.Render(label))
}

func prevMonth(m time.Month) time.Month {
	if m == time.January {
		return time.December
	}
	return m - 1
}

func nextMonth(m time.Month) time.Month {
	if m == time.December {
		return time.January
	}
	return m + 1
}

// ─── commands ────────────────────────────────────────────────────────────────

func (m Model) loadCmd() tea.Cmd {
	scope := m.scope
	month := m.month
	return func() tea.Msg {
		var (
			report reportdto.ReportOutput
			err    error
		)
		if scope == scopeWeek {
			report, err = m.port.Weekly(context.Background(), time.Now())
		} else {
			report, err = m.port.Monthly(context.Background(), month)
		}
		return ReportLoadedMsg{Report: report, Err: err}
	}
}
