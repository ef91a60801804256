package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trackctl/track/internal/domain"
)

func TestAddTask_CreatesDefaultGroupAndPersists(t *testing.T) {
	store := newMockStore()
	clock := newMockClock()
	uc := NewAddTask(store, clock)

	out, err := uc.Execute(context.Background(), AddTaskInput{Name: "write report"})
	require.NoError(t, err)

	assert.Equal(t, 1, out.Task.ID)
	assert.Equal(t, "write report", out.Task.Name)
	assert.Equal(t, clock.today, out.GroupName)
	// One save creating the default group, one committing the task.
	assert.Equal(t, 2, store.saves)

	g, err := store.manager.ResolvedGroup(clock.today)
	require.NoError(t, err)
	require.Len(t, g.Tasks, 1)
	assert.Equal(t, "write report", g.Tasks[0].Name)
}

func TestAddTask_EmptyName(t *testing.T) {
	store := newMockStore()
	uc := NewAddTask(store, newMockClock())

	_, err := uc.Execute(context.Background(), AddTaskInput{Name: ""})
	assert.ErrorIs(t, err, domain.ErrEmptyTaskName)
	assert.Zero(t, store.saves)
}

func TestAddTask_LoadFailure(t *testing.T) {
	store := newMockStore()
	store.loadErr = errors.New("disk gone")
	uc := NewAddTask(store, newMockClock())

	_, err := uc.Execute(context.Background(), AddTaskInput{Name: "x"})
	assert.ErrorContains(t, err, "load snapshot")
}

func TestRemoveTask_RemovesAndPersists(t *testing.T) {
	store := newMockStore()
	clock := newMockClock()

	_, err := NewAddTask(store, clock).Execute(context.Background(), AddTaskInput{Name: "drop me"})
	require.NoError(t, err)

	out, err := NewRemoveTask(store, clock).Execute(context.Background(), RemoveTaskInput{TaskID: 1})
	require.NoError(t, err)
	assert.Equal(t, "drop me", out.Task.Name)

	g, err := store.manager.ResolvedGroup(clock.today)
	require.NoError(t, err)
	assert.Empty(t, g.Tasks)
}

func TestRemoveTask_NotFound(t *testing.T) {
	store := newMockStore()
	clock := newMockClock()
	saves := store.saves

	_, err := NewRemoveTask(store, clock).Execute(context.Background(), RemoveTaskInput{TaskID: 9})
	assert.ErrorIs(t, err, domain.ErrTaskNotFound)
	// Only the default-group save happened, no commit.
	assert.Equal(t, saves+1, store.saves)
}
