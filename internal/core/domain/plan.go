package domain

import "time"

// PlanDraft is the generator's normalized output before dependency
// resolution: task IDs are display references ("task-1", "task-2", ...)
// and dependency entries may reference tasks that do not exist.
type PlanDraft struct {
	Analysis           string
	TotalEstimatedTime string
	Tasks              []Task
}

// PlanResult is a fully resolved, persisted plan as returned by the
// service layer.
type PlanResult struct {
	GoalID             string
	GoalText           string
	Analysis           string
	TotalEstimatedTime string
	Tasks              []Task
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
