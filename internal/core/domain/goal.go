package domain

import "time"

type Goal struct {
	ID        string
	Text      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// GoalWithTasks is a goal together with its ordered task list.
type GoalWithTasks struct {
	Goal
	Tasks []Task
}
