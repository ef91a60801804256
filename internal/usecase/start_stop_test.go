package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trackctl/track/internal/domain"
)

func TestStartThenStop_TracksOneMinute(t *testing.T) {
	store := newMockStore()
	clock := newMockClock()
	ctx := context.Background()

	_, err := NewAddTask(store, clock).Execute(ctx, AddTaskInput{Name: "focus"})
	require.NoError(t, err)

	started, err := NewStartTask(store, clock).Execute(ctx, StartTaskInput{TaskID: 1})
	require.NoError(t, err)
	require.NotNil(t, started.Task.StartedAt)
	assert.Equal(t, clock.now.Unix(), *started.Task.StartedAt)

	clock.now = clock.now.Add(60 * time.Second)
	stopped, err := NewStopCurrent(store, clock).Execute(ctx)
	require.NoError(t, err)
	assert.Nil(t, stopped.Task.StartedAt)
	require.NotNil(t, stopped.Task.Tracked)
	assert.Equal(t, int64(60), *stopped.Task.Tracked)
}

func TestStartTask_SwitchStopsPreviousTask(t *testing.T) {
	store := newMockStore()
	clock := newMockClock()
	ctx := context.Background()

	_, err := NewAddTask(store, clock).Execute(ctx, AddTaskInput{Name: "a"})
	require.NoError(t, err)
	_, err = NewAddTask(store, clock).Execute(ctx, AddTaskInput{Name: "b"})
	require.NoError(t, err)

	_, err = NewStartTask(store, clock).Execute(ctx, StartTaskInput{TaskID: 1})
	require.NoError(t, err)

	clock.now = clock.now.Add(30 * time.Second)
	_, err = NewStartTask(store, clock).Execute(ctx, StartTaskInput{TaskID: 2})
	require.NoError(t, err)

	g, err := store.manager.ResolvedGroup(clock.today)
	require.NoError(t, err)
	a, b := g.Tasks[0], g.Tasks[1]
	assert.False(t, a.Running())
	require.NotNil(t, a.Tracked)
	assert.Equal(t, int64(30), *a.Tracked)
	assert.True(t, b.Running())
}

func TestStartTask_NotFound(t *testing.T) {
	store := newMockStore()
	uc := NewStartTask(store, newMockClock())

	_, err := uc.Execute(context.Background(), StartTaskInput{TaskID: 3})
	assert.ErrorIs(t, err, domain.ErrTaskNotFound)
}

func TestStopCurrent_NothingRunning(t *testing.T) {
	store := newMockStore()
	uc := NewStopCurrent(store, newMockClock())

	_, err := uc.Execute(context.Background())
	assert.ErrorIs(t, err, domain.ErrNoCurrentTask)
}

func TestStartTask_SaveFailureSurfaces(t *testing.T) {
	store := newMockStore()
	clock := newMockClock()
	ctx := context.Background()

	_, err := NewAddTask(store, clock).Execute(ctx, AddTaskInput{Name: "x"})
	require.NoError(t, err)

	store.saveErr = errors.New("read-only fs")
	_, err = NewStartTask(store, clock).Execute(ctx, StartTaskInput{TaskID: 1})
	assert.ErrorContains(t, err, "save snapshot")
}
