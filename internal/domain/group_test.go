package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroup_AddTask_AllocatesSequentialIDs(t *testing.T) {
	g := NewGroup(1, "06-01-2024")

	first := g.AddTask("first")
	second := g.AddTask("second")

	assert.Equal(t, 1, first.ID)
	assert.Equal(t, 2, second.ID)
	assert.Equal(t, 3, g.NextTaskID)
	assert.Len(t, g.Tasks, 2)
}

func TestGroup_AddTask_ReturnsDetachedCopy(t *testing.T) {
	g := NewGroup(1, "06-01-2024")

	task := g.AddTask("stored")
	task.Name = "mutated"

	assert.Equal(t, "stored", g.Tasks[0].Name)
}

func TestGroup_RemoveTask(t *testing.T) {
	g := NewGroup(1, "06-01-2024")
	g.AddTask("keep")
	g.AddTask("drop")

	removed, err := g.RemoveTask(2)
	require.NoError(t, err)
	assert.Equal(t, "drop", removed.Name)
	require.Len(t, g.Tasks, 1)
	assert.Equal(t, "keep", g.Tasks[0].Name)

	_, err = g.RemoveTask(99)
	assert.ErrorIs(t, err, ErrTaskNotFound)
}

func TestGroup_RemoveTask_ClearsCurrentSelection(t *testing.T) {
	g := NewGroup(1, "06-01-2024")
	g.AddTask("running")
	_, err := g.StartTask(1, time.Now())
	require.NoError(t, err)
	require.NotNil(t, g.CurrentTask)

	_, err = g.RemoveTask(1)
	require.NoError(t, err)
	assert.Nil(t, g.CurrentTask)
}

func TestGroup_StartTask_StopsRunningTaskFirst(t *testing.T) {
	g := NewGroup(1, "06-01-2024")
	g.AddTask("a")
	g.AddTask("b")
	start := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)

	_, err := g.StartTask(1, start)
	require.NoError(t, err)

	started, err := g.StartTask(2, start.Add(30*time.Second))
	require.NoError(t, err)
	assert.True(t, started.Running())

	// A was stopped and its elapsed time folded in before B started.
	a := g.Tasks[0]
	assert.Nil(t, a.StartedAt)
	require.NotNil(t, a.Tracked)
	assert.Equal(t, int64(30), *a.Tracked)

	require.NotNil(t, g.CurrentTask)
	assert.Equal(t, 2, *g.CurrentTask)

	running := 0
	for _, task := range g.Tasks {
		if task.Running() {
			running++
		}
	}
	assert.Equal(t, 1, running, "at most one running task per group")
}

func TestGroup_StartTask_NotFound(t *testing.T) {
	g := NewGroup(1, "06-01-2024")
	_, err := g.StartTask(7, time.Now())
	assert.ErrorIs(t, err, ErrTaskNotFound)
	assert.Nil(t, g.CurrentTask)
}

func TestGroup_StopCurrent(t *testing.T) {
	g := NewGroup(1, "06-01-2024")
	g.AddTask("work")
	start := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)

	_, err := g.StopCurrent(start)
	assert.ErrorIs(t, err, ErrNoCurrentTask)

	_, err = g.StartTask(1, start)
	require.NoError(t, err)

	stopped, err := g.StopCurrent(start.Add(time.Minute))
	require.NoError(t, err)
	assert.Nil(t, g.CurrentTask)
	require.NotNil(t, stopped.Tracked)
	assert.Equal(t, int64(60), *stopped.Tracked)
}

func TestGroup_CompleteTask_ExplicitAndCurrent(t *testing.T) {
	g := NewGroup(1, "06-01-2024")
	g.AddTask("a")
	g.AddTask("b")
	start := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)

	// No id, nothing running.
	_, err := g.CompleteTask(nil, start)
	assert.ErrorIs(t, err, ErrNothingToComplete)

	// Explicit id on a nonexistent task.
	missing := 42
	_, err = g.CompleteTask(&missing, start)
	assert.ErrorIs(t, err, ErrTaskNotFound)

	// Current task, folding the running interval.
	_, err = g.StartTask(1, start)
	require.NoError(t, err)
	done, err := g.CompleteTask(nil, start.Add(90*time.Second))
	require.NoError(t, err)
	assert.True(t, done.Completed)
	require.NotNil(t, done.Tracked)
	assert.Equal(t, int64(90), *done.Tracked)
	assert.Nil(t, g.CurrentTask)

	// Explicit id on a stopped task.
	id := 2
	done, err = g.CompleteTask(&id, start)
	require.NoError(t, err)
	assert.True(t, done.Completed)
	assert.Nil(t, done.Tracked)
}
