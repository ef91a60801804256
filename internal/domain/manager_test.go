package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const today = "06-01-2024"

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	m := NewManager()
	require.True(t, m.EnsureDefaultGroup(today))
	return m
}

func TestManager_EnsureDefaultGroup_Idempotent(t *testing.T) {
	m := NewManager()

	assert.True(t, m.EnsureDefaultGroup(today))
	assert.False(t, m.EnsureDefaultGroup(today))
	assert.Len(t, m.Groups, 1)
	assert.Equal(t, 1, m.Groups[0].ID)
	assert.Equal(t, 2, m.NextGroupID)
}

func TestManager_ResolvedGroup_DefaultsToToday(t *testing.T) {
	m := newTestManager(t)

	g, err := m.ResolvedGroup(today)
	require.NoError(t, err)
	assert.Equal(t, today, g.Name)

	// With an explicit selection the label no longer matters.
	other, err := m.AddGroup("someday")
	require.NoError(t, err)
	_, err = m.UseGroup(other.ID)
	require.NoError(t, err)

	g, err = m.ResolvedGroup(today)
	require.NoError(t, err)
	assert.Equal(t, "someday", g.Name)

	m.ResetGroup()
	g, err = m.ResolvedGroup(today)
	require.NoError(t, err)
	assert.Equal(t, today, g.Name)
}

func TestManager_ResolvedGroup_MissingDefault(t *testing.T) {
	m := NewManager()
	_, err := m.ResolvedGroup(today)
	assert.ErrorIs(t, err, ErrGroupResolution)
}

func TestManager_AddGroup_RejectsDuplicateName(t *testing.T) {
	m := newTestManager(t)

	_, err := m.AddGroup("X")
	require.NoError(t, err)

	_, err = m.AddGroup("X")
	assert.ErrorIs(t, err, ErrDuplicateGroupName)
	assert.Len(t, m.Groups, 2, "group count unchanged after the failed call")
}

func TestManager_UseGroup_NotFound(t *testing.T) {
	m := newTestManager(t)
	_, err := m.UseGroup(99)
	assert.ErrorIs(t, err, ErrGroupNotFound)
	assert.Nil(t, m.CurrentGroup)
}

func TestManager_TaskDelegation(t *testing.T) {
	m := newTestManager(t)
	now := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)

	task, err := m.AddTask("write notes", today)
	require.NoError(t, err)
	assert.Equal(t, 1, task.ID)
	assert.Nil(t, task.Tracked)
	assert.Nil(t, task.StartedAt)

	started, err := m.StartTask(1, now, today)
	require.NoError(t, err)
	require.NotNil(t, started.StartedAt)
	assert.Equal(t, now.Unix(), *started.StartedAt)

	stopped, err := m.StopCurrent(now.Add(60*time.Second), today)
	require.NoError(t, err)
	assert.Nil(t, stopped.StartedAt)
	require.NotNil(t, stopped.Tracked)
	assert.Equal(t, int64(60), *stopped.Tracked)
}

func TestManager_ExtractGroups_ProtectsCurrentGroup(t *testing.T) {
	m := newTestManager(t) // group 1 = today
	_, err := m.AddGroup("two")
	require.NoError(t, err)
	_, err = m.AddGroup("three")
	require.NoError(t, err)
	_, err = m.UseGroup(2)
	require.NoError(t, err)

	// Extracting {1,2} would take the current group with it.
	_, err = m.ExtractGroups(false, []int{1, 2}, today)
	assert.ErrorIs(t, err, ErrCannotArchiveCurrent)
	assert.Len(t, m.Groups, 3, "failed extraction removes nothing")

	// Extracting {1} is fine.
	extracted, err := m.ExtractGroups(false, []int{1}, today)
	require.NoError(t, err)
	require.Len(t, extracted, 1)
	assert.Equal(t, 1, extracted[0].ID)
	require.Len(t, m.Groups, 2)
	assert.Equal(t, 2, m.Groups[0].ID)
	assert.Equal(t, 3, m.Groups[1].ID)
}

func TestManager_ExtractGroups_RetainInvertsSelection(t *testing.T) {
	m := newTestManager(t) // group 1 = today, resolved current
	_, err := m.AddGroup("two")
	require.NoError(t, err)
	_, err = m.AddGroup("three")
	require.NoError(t, err)

	extracted, err := m.ExtractGroups(true, []int{1}, today)
	require.NoError(t, err)
	require.Len(t, extracted, 2)
	assert.Equal(t, "two", extracted[0].Name)
	assert.Equal(t, "three", extracted[1].Name)
	require.Len(t, m.Groups, 1)
	assert.Equal(t, today, m.Groups[0].Name)

	// Keep-list that excludes the current group fails.
	_, err = m.ExtractGroups(true, []int{}, today)
	assert.ErrorIs(t, err, ErrCannotArchiveCurrent)
}

func TestManager_MinimizeIDs_DenseAndOrderPreserving(t *testing.T) {
	m := NewManager()
	m.Groups = []*Group{
		NewGroup(5, "a"),
		NewGroup(9, "b"),
		NewGroup(12, "c"),
	}
	m.NextGroupID = 13
	current := 9
	m.CurrentGroup = &current

	m.MinimizeIDs()

	assert.Equal(t, []int{1, 2, 3}, []int{m.Groups[0].ID, m.Groups[1].ID, m.Groups[2].ID})
	assert.Equal(t, []string{"a", "b", "c"}, []string{m.Groups[0].Name, m.Groups[1].Name, m.Groups[2].Name})
	require.NotNil(t, m.CurrentGroup)
	assert.Equal(t, 2, *m.CurrentGroup, "selection follows its group")
	assert.Equal(t, 4, m.NextGroupID)
}

func TestManager_MinimizeIDs_AlreadyDense(t *testing.T) {
	m := newTestManager(t)
	_, err := m.AddGroup("two")
	require.NoError(t, err)

	m.MinimizeIDs()

	assert.Equal(t, 1, m.Groups[0].ID)
	assert.Equal(t, 2, m.Groups[1].ID)
	assert.Equal(t, 3, m.NextGroupID)
}

func TestManager_SnapshotRoundTrip(t *testing.T) {
	m := newTestManager(t)
	now := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)

	_, err := m.AddTask("alpha", today)
	require.NoError(t, err)
	_, err = m.AddTask("beta", today)
	require.NoError(t, err)
	_, err = m.StartTask(1, now, today)
	require.NoError(t, err)
	_, err = m.StopCurrent(now.Add(45*time.Second), today)
	require.NoError(t, err)
	_, err = m.StartTask(2, now.Add(time.Minute), today)
	require.NoError(t, err)
	_, err = m.AddGroup("backlog")
	require.NoError(t, err)

	data, err := json.Marshal(m)
	require.NoError(t, err)

	var restored Manager
	require.NoError(t, json.Unmarshal(data, &restored))

	assert.Equal(t, m.NextGroupID, restored.NextGroupID)
	require.Len(t, restored.Groups, 2)

	orig, err := m.ResolvedGroup(today)
	require.NoError(t, err)
	got, err := restored.ResolvedGroup(today)
	require.NoError(t, err)
	assert.Equal(t, orig, got)

	// Behavioral check: same running task, same durations.
	later := now.Add(2 * time.Minute)
	origStop, err := m.StopCurrent(later, today)
	require.NoError(t, err)
	restStop, err := restored.StopCurrent(later, today)
	require.NoError(t, err)
	assert.Equal(t, origStop, restStop)
}
