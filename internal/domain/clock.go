package domain

import "time"

// GroupDateFormat is the layout of default group names (MM-DD-YYYY).
// It is part of the persisted data: changing it orphans the default
// group in existing snapshots.
const GroupDateFormat = "01-02-2006"

// RealClock implements Clock using the system clock in local time.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time {
	return time.Now()
}

// TodayLabel returns today's date in the group name format.
func (RealClock) TodayLabel() string {
	return time.Now().Local().Format(GroupDateFormat)
}

// TomorrowLabel returns tomorrow's date in the group name format.
func (RealClock) TomorrowLabel() string {
	return time.Now().Local().AddDate(0, 0, 1).Format(GroupDateFormat)
}
