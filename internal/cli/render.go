package cli

import (
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/trackctl/track/internal/domain"
)

// Highlight for the running task and the current group, matching the
// bold bright-red the tool has always used.
var highlight = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))

var taskHeaders = []string{"ID", "Task", "Started", "Time Tracked"}

// renderTask renders one task as a single-row table, used to echo the
// entity a mutating command touched.
func renderTask(t domain.Task, now time.Time) string {
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers(taskHeaders...).
		Row(taskRow(t, now)...).
		String()
}

// renderGroup renders the tasks of a group.
func renderGroup(g domain.Group, now time.Time) string {
	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(taskHeaders...)
	for _, t := range g.Tasks {
		tbl.Row(taskRow(*t, now)...)
	}
	return tbl.String()
}

// renderGroups renders the group index, highlighting the resolved
// current group.
func renderGroups(groups []domain.Group, currentID int) string {
	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "Group")
	for _, g := range groups {
		id := strconv.Itoa(g.ID)
		name := g.Name
		if g.ID == currentID {
			id = highlight.Render(id)
			name = highlight.Render(name)
		}
		tbl.Row(id, name)
	}
	return tbl.String()
}

func taskRow(t domain.Task, now time.Time) []string {
	row := []string{
		strconv.Itoa(t.ID),
		t.Name,
		t.StartedDisplay(),
		t.TrackedDisplay(now),
	}
	if t.Running() {
		for i, cell := range row {
			row[i] = highlight.Render(cell)
		}
	}
	return row
}
