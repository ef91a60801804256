package domain

import "time"

// Group owns an ordered collection of tasks, typically one group per
// calendar day. Task IDs are scoped to the group: each group runs its
// own allocator starting at 1. At most one task per group is running at
// a time, tracked by CurrentTask.
type Group struct {
	ID          int     `json:"id"`
	NextTaskID  int     `json:"next_task_id"`
	CurrentTask *int    `json:"current_task"`
	Name        string  `json:"name"`
	Tasks       []*Task `json:"tasks"`
}

// NewGroup creates an empty group with the task allocator primed.
func NewGroup(id int, name string) *Group {
	return &Group{
		ID:         id,
		NextTaskID: 1,
		Name:       name,
	}
}

// AddTask allocates the next task ID, appends the task, and returns a
// detached copy.
func (g *Group) AddTask(name string) Task {
	task := NewTask(g.NextTaskID, name)
	g.NextTaskID++
	g.Tasks = append(g.Tasks, task)
	return task.Snapshot()
}

// RemoveTask removes the task with the given ID and returns a copy of
// it. If the removed task was the group's current task, the selection
// is cleared.
func (g *Group) RemoveTask(id int) (Task, error) {
	idx := g.taskIndex(id)
	if idx < 0 {
		return Task{}, ErrTaskNotFound
	}
	removed := g.Tasks[idx].Snapshot()
	g.Tasks = append(g.Tasks[:idx], g.Tasks[idx+1:]...)
	if g.CurrentTask != nil && *g.CurrentTask == id {
		g.CurrentTask = nil
	}
	return removed, nil
}

// StartTask starts the task with the given ID and makes it the group's
// current task. If another task is running it is stopped first, so at
// most one task per group has an open interval.
func (g *Group) StartTask(id int, now time.Time) (Task, error) {
	task := g.task(id)
	if task == nil {
		return Task{}, ErrTaskNotFound
	}

	if g.CurrentTask != nil && *g.CurrentTask != id {
		if current := g.task(*g.CurrentTask); current != nil {
			current.Stop(now)
		}
	}

	task.Start(now)
	g.CurrentTask = &task.ID
	return task.Snapshot(), nil
}

// StopCurrent stops the group's current task and clears the selection.
func (g *Group) StopCurrent(now time.Time) (Task, error) {
	if g.CurrentTask == nil {
		return Task{}, ErrNoCurrentTask
	}
	task := g.task(*g.CurrentTask)
	if task == nil {
		return Task{}, ErrTaskNotFound
	}

	task.Stop(now)
	g.CurrentTask = nil
	return task.Snapshot(), nil
}

// CompleteTask marks a task complete, folding any running interval
// first. The target is the explicit ID when non-nil, otherwise the
// group's current task.
func (g *Group) CompleteTask(id *int, now time.Time) (Task, error) {
	target := id
	if target == nil {
		target = g.CurrentTask
	}
	if target == nil {
		return Task{}, ErrNothingToComplete
	}

	task := g.task(*target)
	if task == nil {
		return Task{}, ErrTaskNotFound
	}

	task.Complete(now)
	if g.CurrentTask != nil && *g.CurrentTask == task.ID {
		g.CurrentTask = nil
	}
	return task.Snapshot(), nil
}

// task returns the stored task with the given ID, or nil. Linear scan;
// groups hold dozens of tasks at most.
func (g *Group) task(id int) *Task {
	for _, t := range g.Tasks {
		if t.ID == id {
			return t
		}
	}
	return nil
}

func (g *Group) taskIndex(id int) int {
	for i, t := range g.Tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// Snapshot returns a detached copy of the group and all its tasks.
func (g *Group) Snapshot() Group {
	cp := *g
	if g.CurrentTask != nil {
		v := *g.CurrentTask
		cp.CurrentTask = &v
	}
	cp.Tasks = make([]*Task, len(g.Tasks))
	for i, t := range g.Tasks {
		c := t.Snapshot()
		cp.Tasks[i] = &c
	}
	return cp
}
