package app

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"hourly/internal/ui/theme"
	reportview "hourly/internal/ui/views/report"
	tasksview "hourly/internal/ui/views/tasks"
	timerview "hourly/internal/ui/views/timer"
)

// ─── tab index ───────────────────────────────────────────────────────────────

type tabID int

const (
	tabTasks tabID = iota
	tabTimer
	tabReport
	tabCount
)

var tabLabels = [tabCount]string{"Tasks", "Timer", "Report"}

// ─── key bindings ────────────────────────────────────────────────────────────

type keyMap struct {
	Tab  key.Binding
	Help key.Binding
	Quit key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Tab:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		Help: key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit: key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Tab, k.Help, k.Quit}}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model. It owns tab routing and the
// once-per-second tick that keeps the elapsed-time display moving; all
// business logic sits behind the view ports.
type Model struct {
	tasksView  tasksview.Model
	timerView  timerview.Model
	reportView reportview.Model

	activeTab tabID
	keys      keyMap
	help      help.Model
	showHelp  bool
	width     int
	height    int
}

func NewModel(tasks tasksview.TaskPort, timer timerview.TimerPort, reports reportview.ReportPort, defaultClient string) Model {
	return Model{
		tasksView:  tasksview.New(tasks),
		timerView:  timerview.New(timer, defaultClient),
		reportView: reportview.New(reports),
		activeTab:  tabTasks,
		keys:       defaultKeys(),
		help:       help.New(),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.tasksView.Init(),
		m.timerView.Init(),
		m.reportView.Init(),
		tickCmd(),
	)
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerview.TickMsg(t)
	})
}

// ─── update ──────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		inner := tea.WindowSizeMsg{Width: msg.Width - 4, Height: msg.Height - 6}
		m.tasksView, _ = m.tasksView.Update(inner)
		m.timerView, _ = m.timerView.Update(inner)
		m.reportView, _ = m.reportView.Update(inner)
		return m, nil

	case timerview.TickMsg:
		// The tick is display-only; reschedule and repaint.
		var cmd tea.Cmd
		m.timerView, cmd = m.timerView.Update(msg)
		return m, tea.Batch(cmd, tickCmd())

	case timerview.TaskRecordedMsg:
		cmds = append(cmds, m.tasksView.Reload(), m.reportView.Reload())

	case tasksview.TasksChangedMsg:
		cmds = append(cmds, m.reportView.Reload())

	case tea.KeyMsg:
		if !m.tasksView.Filtering() {
			switch {
			case key.Matches(msg, m.keys.Quit):
				return m, tea.Quit
			case key.Matches(msg, m.keys.Tab):
				m.activeTab = (m.activeTab + 1) % tabCount
				return m, nil
			case key.Matches(msg, m.keys.Help):
				m.showHelp = !m.showHelp
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	switch m.activeTab {
	case tabTasks:
		m.tasksView, cmd = m.tasksView.Update(msg)
	case tabTimer:
		m.timerView, cmd = m.timerView.Update(msg)
	case tabReport:
		m.reportView, cmd = m.reportView.Update(msg)
	}
	cmds = append(cmds, cmd)

	// Background messages that belong to inactive views still need routing.
	switch msg.(type) {
	case tasksview.TasksLoadedMsg:
		if m.activeTab != tabTasks {
			m.tasksView, cmd = m.tasksView.Update(msg)
			cmds = append(cmds, cmd)
		}
	case timerview.StatusLoadedMsg:
		if m.activeTab != tabTimer {
			m.timerView, cmd = m.timerView.Update(msg)
			cmds = append(cmds, cmd)
		}
	case reportview.ReportLoadedMsg:
		if m.activeTab != tabReport {
			m.reportView, cmd = m.reportView.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	return m, tea.Batch(cmds...)
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	var body string
	switch m.activeTab {
	case tabTasks:
		body = m.tasksView.View()
	case tabTimer:
		body = m.timerView.View()
	case tabReport:
		body = m.reportView.View()
	}

	var footer string
	if m.showHelp {
		footer = m.help.FullHelpView(m.keys.FullHelp())
	} else {
		footer = m.help.ShortHelpView(m.keys.ShortHelp())
	}

	return theme.App.Render(lipgloss.JoinVertical(lipgloss.Left,
		m.renderTabs(),
		body,
		footer,
	))
}

func (m Model) renderTabs() string {
	rendered := make([]string, 0, int(tabCount))
	for i, label := range tabLabels {
		if tabID(i) == m.activeTab {
			rendered = append(rendered, theme.Title.Render("["+label+"]"))
		} else {
			rendered = append(rendered, theme.Muted.Render(" "+label+" "))
		}
	}
	return strings.Join(rendered, " ") + "\n"
}
