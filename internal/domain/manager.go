package domain

import "time"

// Manager is the top-level owner of all groups. It is the unit of
// persistence: a command loads one Manager from the snapshot store,
// applies exactly one operation, and saves it back. The JSON field
// names are the persisted snapshot format and must not change.
//
// CurrentGroup is an explicit selection; nil means "whatever group
// carries today's label". Operations that need that resolution take the
// label as an argument so the model itself never reads the clock.
type Manager struct {
	NextGroupID  int      `json:"next_group_id"`
	CurrentGroup *int     `json:"current_group"`
	Groups       []*Group `json:"groups"`
}

// NewManager creates an empty manager with the group allocator primed.
func NewManager() *Manager {
	return &Manager{NextGroupID: 1}
}

// EnsureDefaultGroup creates the group named today if it does not
// exist. It returns true when a group was created, which callers use to
// decide whether the snapshot needs an immediate save.
func (m *Manager) EnsureDefaultGroup(today string) bool {
	if m.groupByName(today) != nil {
		return false
	}
	group := NewGroup(m.NextGroupID, today)
	m.NextGroupID++
	m.Groups = append(m.Groups, group)
	return true
}

// ResolvedGroup returns a detached copy of the group the manager is
// currently operating on.
func (m *Manager) ResolvedGroup(today string) (Group, error) {
	group, err := m.resolveGroup(today)
	if err != nil {
		return Group{}, err
	}
	return group.Snapshot(), nil
}

// AddGroup creates a group with the given name. Names must be unique
// among active groups; default-group resolution depends on an exact
// name match.
func (m *Manager) AddGroup(name string) (Group, error) {
	if m.groupByName(name) != nil {
		return Group{}, ErrDuplicateGroupName
	}
	group := NewGroup(m.NextGroupID, name)
	m.NextGroupID++
	m.Groups = append(m.Groups, group)
	return group.Snapshot(), nil
}

// UseGroup pins the manager to the group with the given ID.
func (m *Manager) UseGroup(id int) (Group, error) {
	group := m.groupByID(id)
	if group == nil {
		return Group{}, ErrGroupNotFound
	}
	m.CurrentGroup = &group.ID
	return group.Snapshot(), nil
}

// ResetGroup clears the explicit selection, reverting to the default
// (today's) group.
func (m *Manager) ResetGroup() {
	m.CurrentGroup = nil
}

// AddTask adds a task to the resolved group.
func (m *Manager) AddTask(name, today string) (Task, error) {
	group, err := m.resolveGroup(today)
	if err != nil {
		return Task{}, err
	}
	return group.AddTask(name), nil
}

// RemoveTask removes a task from the resolved group.
func (m *Manager) RemoveTask(id int, today string) (Task, error) {
	group, err := m.resolveGroup(today)
	if err != nil {
		return Task{}, err
	}
	return group.RemoveTask(id)
}

// StartTask starts a task in the resolved group, stopping whichever
// task was running there.
func (m *Manager) StartTask(id int, now time.Time, today string) (Task, error) {
	group, err := m.resolveGroup(today)
	if err != nil {
		return Task{}, err
	}
	return group.StartTask(id, now)
}

// StopCurrent stops the resolved group's running task.
func (m *Manager) StopCurrent(now time.Time, today string) (Task, error) {
	group, err := m.resolveGroup(today)
	if err != nil {
		return Task{}, err
	}
	return group.StopCurrent(now)
}

// CompleteTask completes a task in the resolved group; see
// Group.CompleteTask for target resolution.
func (m *Manager) CompleteTask(id *int, now time.Time, today string) (Task, error) {
	group, err := m.resolveGroup(today)
	if err != nil {
		return Task{}, err
	}
	return group.CompleteTask(id, now)
}

// ExtractGroups removes a batch of groups from the manager and returns
// them, detached, for archival elsewhere. With retain=false the IDs
// name the groups to extract; with retain=true they name the groups to
// keep and everything else is extracted. The resolved current group may
// never be extracted: the whole operation fails up front and no group
// is removed.
func (m *Manager) ExtractGroups(retain bool, ids []int, today string) ([]Group, error) {
	current, err := m.resolveGroup(today)
	if err != nil {
		return nil, err
	}

	selected := make(map[int]bool, len(ids))
	for _, id := range ids {
		selected[id] = true
	}

	if selected[current.ID] != retain {
		return nil, ErrCannotArchiveCurrent
	}

	var extracted []Group
	kept := m.Groups[:0]
	for _, g := range m.Groups {
		if selected[g.ID] != retain {
			extracted = append(extracted, g.Snapshot())
		} else {
			kept = append(kept, g)
		}
	}
	m.Groups = kept
	return extracted, nil
}

// MinimizeIDs renumbers group IDs to be densely packed from 1,
// preserving the relative order of the survivors. Archival leaves gaps;
// this closes them. The current-group selection follows its group
// across the renumbering, and the allocator restarts one past the last
// assigned ID.
func (m *Manager) MinimizeIDs() {
	ordered := make([]*Group, len(m.Groups))
	copy(ordered, m.Groups)
	for i := 1; i < len(ordered); i++ {
		for j := i; j > 0 && ordered[j-1].ID > ordered[j].ID; j-- {
			ordered[j-1], ordered[j] = ordered[j], ordered[j-1]
		}
	}

	next := 1
	for _, g := range ordered {
		id := g.ID
		if next < id {
			id = next
		}
		if m.CurrentGroup != nil && *m.CurrentGroup == g.ID {
			m.CurrentGroup = &id
		}
		g.ID = id
		next = id + 1
	}
	m.NextGroupID = next
}

// GroupSnapshots returns detached copies of all groups in insertion
// order, for display.
func (m *Manager) GroupSnapshots() []Group {
	groups := make([]Group, len(m.Groups))
	for i, g := range m.Groups {
		groups[i] = g.Snapshot()
	}
	return groups
}

func (m *Manager) groupByID(id int) *Group {
	for _, g := range m.Groups {
		if g.ID == id {
			return g
		}
	}
	return nil
}

func (m *Manager) groupByName(name string) *Group {
	for _, g := range m.Groups {
		if g.Name == name {
			return g
		}
	}
	return nil
}

// resolveGroup returns the stored group the manager operates on: the
// explicit selection when set, otherwise the group named today. It
// assumes the default group already exists and does not create it.
func (m *Manager) resolveGroup(today string) (*Group, error) {
	if m.CurrentGroup != nil {
		if group := m.groupByID(*m.CurrentGroup); group != nil {
			return group, nil
		}
		return nil, ErrGroupResolution
	}
	if group := m.groupByName(today); group != nil {
		return group, nil
	}
	return nil, ErrGroupResolution
}
