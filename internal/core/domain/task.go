package domain

import "time"

type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in-progress"
	TaskStatusCompleted  TaskStatus = "completed"
	TaskStatusBlocked    TaskStatus = "blocked"
)

type TaskPriority string

const (
	TaskPriorityHigh   TaskPriority = "high"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityLow    TaskPriority = "low"
)

// Task is one actionable unit within a plan. IDs are opaque and globally
// unique; the human-readable "task-{n}" numbering only exists as a display
// hint derived from OrderIndex.
type Task struct {
	ID                string
	GoalID            string
	Title             string
	Description       string
	EstimatedDuration string
	Priority          TaskPriority
	Status            TaskStatus
	Deadline          *string
	OrderIndex        int
	Dependencies      []string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// ValidTaskStatus reports whether s is one of the four task states.
func ValidTaskStatus(s TaskStatus) bool {
	switch s {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted, TaskStatusBlocked:
		return true
	}
	return false
}
