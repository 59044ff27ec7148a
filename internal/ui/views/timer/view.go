package timer

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	timerdomain "hourly/internal/modules/timer/domain"
	timerdto "hourly/internal/modules/timer/dto"
	apperrors "hourly/internal/platform/errors"
	"hourly/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type TimerPort interface {
	Start(ctx context.Context, taskName, client string, billable bool) (timerdto.StartOutput, error)
	Stop(ctx context.Context) (timerdto.StopOutput, error)
	Reset(ctx context.Context) (timerdto.ResetOutput, error)
	Status(ctx context.Context) (timerdto.StatusOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type StatusLoadedMsg struct {
	Status timerdto.StatusOutput
	Err    error
}

type timerStartedMsg struct {
	Out timerdto.StartOutput
	Err error
}

type timerStoppedMsg struct {
	Out timerdto.StopOutput
	Err error
}

type timerResetMsg struct {
	Out timerdto.ResetOutput
	Err error
}

// TaskRecordedMsg tells the app a stopped timer committed a new task.
type TaskRecordedMsg struct{}

// TickMsg drives the live elapsed display; the app emits one per second
// while this view is running.
type TickMsg time.Time

// ─── model ───────────────────────────────────────────────────────────────────

type focusField int

const (
	focusName focusField = iota
	focusClient
)

type Model struct {
	port TimerPort

	name     textinput.Model
	client   textinput.Model
	focus    focusField
	billable bool

	running       bool
	status        timerdto.StatusOutput
	confirmReset  bool
	notice        string
	width, height int
}

func New(port TimerPort, defaultClient string) Model {
	name := textinput.New()
	name.Placeholder = "task name"
	name.Focus()

	client := textinput.New()
	client.Placeholder = defaultClient
	client.SetValue(defaultClient)

	return Model{port: port, name: name, client: client, focus: focusName}
}

func (m Model) Init() tea.Cmd {
	return m.loadStatusCmd()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case StatusLoadedMsg:
		if msg.Err != nil {
			m.running = false
			if !errors.Is(msg.Err, apperrors.ErrNoActiveTimer) {
				m.notice = msg.Err.Error()
			}
			return m, nil
		}
		m.running = true
		m.status = msg.Status
		return m, nil

	case timerStartedMsg:
		if msg.Err != nil {
			m.notice = msg.Err.Error()
			return m, nil
		}
		m.notice = ""
		return m, m.loadStatusCmd()

	case timerStoppedMsg:
		if msg.Err != nil {
			m.notice = msg.Err.Error()
			return m, nil
		}
		m.running = false
		m.notice = fmt.Sprintf("recorded %q: %.2fh", msg.Out.Title, msg.Out.Hours)
		return m, func() tea.Msg { return TaskRecordedMsg{} }

	case timerResetMsg:
		m.confirmReset = false
		if msg.Err != nil {
			m.notice = msg.Err.Error()
			return m, nil
		}
		if msg.Out.Discarded {
			m.running = false
			m.notice = fmt.Sprintf("discarded timer for %q", msg.Out.TaskName)
		}
		return m, nil

	case TickMsg:
		// Read-only recomputation; stored state never moves on a tick.
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.confirmReset {
		switch msg.String() {
		case "y":
			return m, m.resetCmd()
		case "n", "esc":
			m.confirmReset = false
			m.notice = ""
		}
		return m, nil
	}

	if m.running {
		switch msg.String() {
		case "s":
			return m, m.stopCmd()
		case "r":
			m.confirmReset = true
		}
		return m, nil
	}

	switch msg.String() {
	case "tab":
		m.focus = (m.focus + 1) % 2
		if m.focus == focusName {
			m.name.Focus()
			m.client.Blur()
		} else {
			m.client.Focus()
			m.name.Blur()
		}
		return m, nil
	case "ctrl+b":
		m.billable = !m.billable
		return m, nil
	case "enter":
		return m, m.startCmd(m.name.Value(), m.client.Value(), m.billable)
	}

	var cmd tea.Cmd
	if m.focus == focusName {
		m.name, cmd = m.name.Update(msg)
	} else {
		m.client, cmd = m.client.Update(msg)
	}
	return m, cmd
}

func (m Model) View() string {
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Timer") + "\n\n")

	if m.running {
		elapsed := timerdomain.Elapsed(m.status.StartedAt, time.Now())
		sb.WriteString(theme.Running.Render(formatElapsed(elapsed)) + "\n\n")
		sb.WriteString(theme.Muted.Render("task:   ") + m.status.TaskName + "\n")
		sb.WriteString(theme.Muted.Render("client: ") + m.status.Client + "\n")
		billing := "non-billable"
		if m.status.Billable {
			billing = theme.Billable.Render("billable")
		}
		sb.WriteString(theme.Muted.Render("bill:   ") + billing + "\n")
		sb.WriteString(theme.Muted.Render("since:  ") + m.status.StartedAt.Format("2006-01-02 15:04:05") + "\n\n")
		if m.confirmReset {
			sb.WriteString(theme.Danger.Render("Discard running timer without recording? (y/n)") + "\n")
		} else {
			sb.WriteString(theme.Muted.Render("s: stop and record  r: discard") + "\n")
		}
	} else {
		sb.WriteString(theme.Muted.Render("name:   ") + m.name.View() + "\n")
		sb.WriteString(theme.Muted.Render("client: ") + m.client.View() + "\n")
		billing := "no"
		if m.billable {
			billing = theme.Billable.Render("yes")
		}
		sb.WriteString(theme.Muted.Render("bill:   ") + billing + "\n\n")
		sb.WriteString(theme.Muted.Render("enter: start  tab: switch field  ctrl+b: toggle billable") + "\n")
	}

	if m.notice != "" {
		sb.WriteString("\n" + theme.Muted.Render(m.notice) + "\n")
	}

	return lipgloss.Place(m.width, m.height, lipgloss.Left, lipgloss.Top,
		theme.Pane.Render(sb.String()))
}

// Running reports whether the live display needs the per-second tick.
func (m Model) Running() bool { return m.running }

func formatElapsed(d time.Duration) string {
	d = d.Round(time.Second)
	h := d / time.Hour
	m := (d % time.Hour) / time.Minute
	s := (d % time.Minute) / time.Second
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

// ─── commands ────────────────────────────────────────────────────────────────

func (m Model) loadStatusCmd() tea.Cmd {
	return func() tea.Msg {
		status, err := m.port.Status(context.Background())
		return StatusLoadedMsg{Status: status, Err: err}
	}
}

func (m Model) startCmd(taskName, client string, billable bool) tea.Cmd {
	return func() tea.Msg {
		out, err := m.port.Start(context.Background(), taskName, client, billable)
		return timerStartedMsg{Out: out, Err: err}
	}
}

func (m Model) stopCmd() tea.Cmd {
	return func() tea.Msg {
		out, err := m.port.Stop(context.Background())
		return timerStoppedMsg{Out: out, Err: err}
	}
}

func (m Model) resetCmd() tea.Cmd {
	return func() tea.Msg {
		out, err := m.port.Reset(context.Background())
		return timerResetMsg{Out: out, Err: err}
	}
}
