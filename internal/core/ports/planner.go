package ports

import (
	"context"

	"github.com/RIVAL231/unthinkable-smart-task-planner/internal/core/domain"
)

// PlanGenerator produces a normalized task breakdown for a goal via an
// external model call. Both methods block for the duration of the call;
// cancellation and deadlines come from ctx.
type PlanGenerator interface {
	Generate(ctx context.Context, goalText string) (domain.PlanDraft, error)
	Refine(ctx context.Context, goalText string, current []domain.Task, feedback string) (domain.PlanDraft, error)
}

// PlanStore is the durable home for goals, tasks and dependency edges.
type PlanStore interface {
	CreateGoal(ctx context.Context, text string) (domain.Goal, error)
	GetGoal(ctx context.Context, goalID string) (domain.Goal, error)
	ListGoals(ctx context.Context) ([]domain.Goal, error)
	ReplaceTasks(ctx context.Context, goalID string, tasks []domain.Task) error
	GetTasks(ctx context.Context, goalID string) ([]domain.Task, error)
	UpdateTaskStatus(ctx context.Context, taskID string, status domain.TaskStatus) (bool, error)
	DeleteGoal(ctx context.Context, goalID string) (int, error)
	Ping(ctx context.Context) error
}

type PlannerService interface {
	GeneratePlan(ctx context.Context, goalText string) (domain.PlanResult, error)
	RefinePlan(ctx context.Context, goalID, feedback string) (domain.PlanResult, error)
	ListGoals(ctx context.Context) ([]domain.Goal, error)
	GetGoalWithTasks(ctx context.Context, goalID string) (domain.GoalWithTasks, error)
	UpdateTaskStatus(ctx context.Context, taskID string, status domain.TaskStatus) error
	DeleteGoal(ctx context.Context, goalID string) error
}
