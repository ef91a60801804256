package domain

import "errors"

// Domain errors.
var (
	ErrTaskNotFound         = errors.New("task not found in group")
	ErrGroupNotFound        = errors.New("group not found")
	ErrGroupResolution      = errors.New("could not resolve current group")
	ErrDuplicateGroupName   = errors.New("a group with that name already exists")
	ErrNoCurrentTask        = errors.New("no task is currently running")
	ErrNothingToComplete    = errors.New("no task specified and no task is running")
	ErrCannotArchiveCurrent = errors.New("cannot archive the current group")
	ErrEmptyTaskName        = errors.New("task name cannot be empty")
	ErrEmptyGroupName       = errors.New("group name cannot be empty")
	ErrCorruptSnapshot      = errors.New("snapshot file is corrupt")
)
