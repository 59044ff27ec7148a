package tasks

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	taskdto "hourly/internal/modules/task/dto"
	"hourly/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type TaskPort interface {
	List(ctx context.Context) ([]taskdto.TaskOutput, error)
	ToggleCompleted(ctx context.Context, id string) (taskdto.TaskOutput, error)
	Remove(ctx context.Context, id string) (taskdto.TaskOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type TasksLoadedMsg struct {
	Tasks []taskdto.TaskOutput
	Err   error
}

type taskMutatedMsg struct {
	Err error
}

// TasksChangedMsg tells the rest of the app that the collection moved and
// dependent views (reports) should refresh.
type TasksChangedMsg struct{}

// ─── list item ───────────────────────────────────────────────────────────────

type taskItem struct {
	task taskdto.TaskOutput
}

func (i taskItem) Title() string {
	if i.task.Completed {
		return theme.Done.Render("✓ ") + i.task.Title
	}
	return "· " + i.task.Title
}

func (i taskItem) Description() string {
	billing := "non-billable"
	if i.task.Billable {
		billing = "billable"
	}
	return fmt.Sprintf("%s  %s  %.2fh (est %.2fh)  %s",
		i.task.Client, i.task.Date.String(), i.task.Hours, i.task.EstimationHours, billing)
}

func (i taskItem) FilterValue() string { return i.task.Title + " " + i.task.Client }

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port    TaskPort
	list    list.Model
	spinner spinner.Model
	loading bool
	status  string
	width   int
	height  int
}

func New(port TaskPort) Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(theme.Lavender).BorderForeground(theme.Lavender)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(theme.Sapphire).BorderForeground(theme.Lavender)

	l := list.New(nil, delegate, 0, 0)
	l.Title = "Tasks"
	l.Styles.Title = theme.Title
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)

	return Model{port: port, list: l, spinner: sp, loading: true}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadTasksCmd(), m.spinner.Tick)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(msg.Width, msg.Height-1)

	case TasksLoadedMsg:
		m.loading = false
		if msg.Err != nil {
			m.status = msg.Err.Error()
			return m, nil
		}
		items := make([]list.Item, len(msg.Tasks))
		for i, t := range msg.Tasks {
			items[i] = taskItem{task: t}
		}
		cmds = append(cmds, m.list.SetItems(items))

	case taskMutatedMsg:
		if msg.Err != nil {
			m.status = msg.Err.Error()
			return m, nil
		}
		m.status = ""
		cmds = append(cmds, m.loadTasksCmd(), func() tea.Msg { return TasksChangedMsg{} })

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case tea.KeyMsg:
		if m.list.FilterState() != list.Filtering {
			switch msg.String() {
			case "x":
				if item, ok := m.list.SelectedItem().(taskItem); ok {
					return m, m.toggleCmd(item.task.ID)
				}
			case "d":
				if item, ok := m.list.SelectedItem().(taskItem); ok {
					return m, m.removeCmd(item.task.ID)
				}
			}
		}
	}

	if !m.loading {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	if m.loading {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" Loading tasks…")
	}
	footer := theme.Muted.Render("x: toggle done  d: delete  /: filter")
	if m.status != "" {
		footer = theme.Danger.Render(m.status)
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.list.View(), footer)
}

// Reload refreshes the collection, e.g. after the timer committed a task.
func (m Model) Reload() tea.Cmd {
	return m.loadTasksCmd()
}

// Filtering reports whether the list search filter has keyboard focus.
func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

// ─── commands ────────────────────────────────────────────────────────────────

func (m Model) loadTasksCmd() tea.Cmd {
	return func() tea.Msg {
		tasks, err := m.port.List(context.Background())
		return TasksLoadedMsg{Tasks: tasks, Err: err}
	}
}

func (m Model) toggleCmd(id string) tea.Cmd {
	return func() tea.Msg {
		_, err := m.port.ToggleCompleted(context.Background(), id)
		return taskMutatedMsg{Err: err}
	}
}

func (m Model) removeCmd(id string) tea.Cmd {
	return func() tea.Msg {
		_, err := m.port.Remove(context.Background(), id)
		return taskMutatedMsg{Err: err}
	}
}
