// Package tracker implements the live dashboard for the current group.
package tracker

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/trackctl/track/internal/app"
	"github.com/trackctl/track/internal/domain"
	"github.com/trackctl/track/internal/usecase"
)

// tickMsg drives the per-interval refresh of live durations.
type tickMsg time.Time

// loadedMsg carries a freshly resolved group.
type loadedMsg struct {
	group domain.Group
	now   time.Time
}

// errMsg carries a failed command's error.
type errMsg struct{ err error }

// Model is the tracker dashboard model.
type Model struct {
	container *app.Container
	group     domain.Group
	now       time.Time
	err       error

	keys   KeyMap
	styles Styles
	help   help.Model

	cursor  int
	width   int
	refresh time.Duration
	loaded  bool
}

// New creates a new dashboard model.
func New(c *app.Container) *Model {
	refresh := time.Second
	if c.Config != nil && c.Config.TUI.RefreshSeconds > 0 {
		refresh = time.Duration(c.Config.TUI.RefreshSeconds) * time.Second
	}
	return &Model{
		container: c,
		keys:      DefaultKeyMap(),
		styles:    DefaultStyles(),
		help:      help.New(),
		refresh:   refresh,
	}
}

// Init loads the group and starts the refresh ticker.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.load(), m.tick())
}

// Update handles messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tickMsg:
		return m, tea.Batch(m.load(), m.tick())

	case loadedMsg:
		m.group = msg.group
		m.now = msg.now
		m.err = nil
		m.loaded = true
		if m.cursor >= len(m.group.Tasks) {
			m.cursor = len(m.group.Tasks) - 1
		}
		if m.cursor < 0 {
			m.cursor = 0
		}
		return m, nil

	case errMsg:
		m.err = msg.err
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.group.Tasks)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Refresh):
		return m, m.load()
	case key.Matches(msg, m.keys.Start):
		if task := m.selectedTask(); task != nil {
			id := task.ID
			return m, m.run(func(ctx context.Context) error {
				_, err := m.container.StartTaskUseCase().Execute(ctx, usecase.StartTaskInput{TaskID: id})
				return err
			})
		}
	case key.Matches(msg, m.keys.Stop):
		return m, m.run(func(ctx context.Context) error {
			_, err := m.container.StopCurrentUseCase().Execute(ctx)
			return err
		})
	case key.Matches(msg, m.keys.Complete):
		if task := m.selectedTask(); task != nil {
			id := task.ID
			return m, m.run(func(ctx context.Context) error {
				_, err := m.container.CompleteTaskUseCase().Execute(ctx, usecase.CompleteTaskInput{TaskID: &id})
				return err
			})
		}
	}
	return m, nil
}

// View renders the dashboard.
func (m *Model) View() string {
	var b strings.Builder

	title := m.group.Name
	if title == "" {
		title = "track"
	}
	b.WriteString(m.styles.Title.Render(title))
	b.WriteString("\n\n")

	if !m.loaded {
		b.WriteString(m.styles.Dim.Render("Loading..."))
		b.WriteString("\n")
	} else if len(m.group.Tasks) == 0 {
		b.WriteString(m.styles.Dim.Render("No tasks. Add one with 'track new'."))
		b.WriteString("\n")
	}

	for i, t := range m.group.Tasks {
		line := fmt.Sprintf("%3d  %-30s %-9s %s",
			t.ID, truncate(t.Name, 30), t.StatusDisplay(), t.TrackedDisplay(m.now))
		switch {
		case t.Running():
			line = m.styles.Running.Render(line)
		case t.Completed:
			line = m.styles.Complete.Render(line)
		}
		if i == m.cursor {
			line = m.styles.Selected.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(m.styles.Err.Render(m.err.Error()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m *Model) selectedTask() *domain.Task {
	if m.cursor < 0 || m.cursor >= len(m.group.Tasks) {
		return nil
	}
	return m.group.Tasks[m.cursor]
}

// load resolves the current group in a command.
func (m *Model) load() tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.ListTasksUseCase().Execute(context.Background())
		if err != nil {
			return errMsg{err}
		}
		return loadedMsg{group: out.Group, now: out.Now}
	}
}

// run executes a mutating use case and reloads on success.
func (m *Model) run(fn func(context.Context) error) tea.Cmd {
	return func() tea.Msg {
		if err := fn(context.Background()); err != nil {
			return errMsg{err}
		}
		out, err := m.container.ListTasksUseCase().Execute(context.Background())
		if err != nil {
			return errMsg{err}
		}
		return loadedMsg{group: out.Group, now: out.Now}
	}
}

func (m *Model) tick() tea.Cmd {
	return tea.Tick(m.refresh, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "…"
}
