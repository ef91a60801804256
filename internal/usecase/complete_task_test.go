package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trackctl/track/internal/domain"
)

func TestCompleteTask_CurrentTask(t *testing.T) {
	store := newMockStore()
	clock := newMockClock()
	ctx := context.Background()

	_, err := NewAddTask(store, clock).Execute(ctx, AddTaskInput{Name: "wrap up"})
	require.NoError(t, err)
	_, err = NewStartTask(store, clock).Execute(ctx, StartTaskInput{TaskID: 1})
	require.NoError(t, err)

	clock.now = clock.now.Add(90 * time.Second)
	out, err := NewCompleteTask(store, clock).Execute(ctx, CompleteTaskInput{})
	require.NoError(t, err)

	assert.True(t, out.Task.Completed)
	assert.Nil(t, out.Task.StartedAt)
	require.NotNil(t, out.Task.Tracked)
	assert.Equal(t, int64(90), *out.Task.Tracked)

	g, err := store.manager.ResolvedGroup(clock.today)
	require.NoError(t, err)
	assert.Nil(t, g.CurrentTask)
}

func TestCompleteTask_ExplicitID(t *testing.T) {
	store := newMockStore()
	clock := newMockClock()
	ctx := context.Background()

	_, err := NewAddTask(store, clock).Execute(ctx, AddTaskInput{Name: "stopped"})
	require.NoError(t, err)

	id := 1
	out, err := NewCompleteTask(store, clock).Execute(ctx, CompleteTaskInput{TaskID: &id})
	require.NoError(t, err)
	assert.True(t, out.Task.Completed)
	assert.Nil(t, out.Task.Tracked)
}

func TestCompleteTask_NothingToComplete(t *testing.T) {
	store := newMockStore()
	uc := NewCompleteTask(store, newMockClock())

	_, err := uc.Execute(context.Background(), CompleteTaskInput{})
	assert.ErrorIs(t, err, domain.ErrNothingToComplete)
}

func TestCompleteTask_ExplicitNotFound(t *testing.T) {
	store := newMockStore()
	uc := NewCompleteTask(store, newMockClock())

	id := 77
	_, err := uc.Execute(context.Background(), CompleteTaskInput{TaskID: &id})
	assert.ErrorIs(t, err, domain.ErrTaskNotFound)
}
