package service

import (
	"context"

	"github.com/RIVAL231/unthinkable-smart-task-planner/internal/core/domain"
	"github.com/RIVAL231/unthinkable-smart-task-planner/internal/core/ports"
)

// PlannerService orchestrates the generator and the store. Nothing is
// persisted until a fully normalized and resolved task list exists, so a
// failed generation leaves the store untouched.
type PlannerService struct {
	store     ports.PlanStore
	generator ports.PlanGenerator
}

var _ ports.PlannerService = (*PlannerService)(nil)

func NewPlannerService(store ports.PlanStore, generator ports.PlanGenerator) *PlannerService {
	return &PlannerService{store: store, generator: generator}
}

func (s *PlannerService) GeneratePlan(ctx context.Context, goalText string) (domain.PlanResult, error) {
	draft, err := s.generator.Generate(ctx, goalText)
	if err != nil {
		return domain.PlanResult{}, err
	}

	tasks, err := domain.ResolveDependencies(draft.Tasks)
	if err != nil {
		return domain.PlanResult{}, err
	}

	goal, err := s.store.CreateGoal(ctx, goalText)
	if err != nil {
		return domain.PlanResult{}, err
	}

	for i := range tasks {
		tasks[i].GoalID = goal.ID
	}
	if err := s.store.ReplaceTasks(ctx, goal.ID, tasks); err != nil {
		return domain.PlanResult{}, err
	}

	return domain.PlanResult{
		GoalID:             goal.ID,
		GoalText:           goal.Text,
		Analysis:           draft.Analysis,
		TotalEstimatedTime: draft.TotalEstimatedTime,
		Tasks:              tasks,
		CreatedAt:          goal.CreatedAt,
		UpdatedAt:          goal.UpdatedAt,
	}, nil
}

func (s *PlannerService) RefinePlan(ctx context.Context, goalID, feedback string) (domain.PlanResult, error) {
	// Existence check first: an unknown goal must not trigger a model call
	// or any store mutation.
	goal, err := s.store.GetGoal(ctx, goalID)
	if err != nil {
		return domain.PlanResult{}, err
	}

	current, err := s.store.GetTasks(ctx, goalID)
	if err != nil {
		return domain.PlanResult{}, err
	}

	draft, err := s.generator.Refine(ctx, goal.Text, current, feedback)
	if err != nil {
		return domain.PlanResult{}, err
	}

	tasks, err := domain.ResolveDependencies(draft.Tasks)
	if err != nil {
		return domain.PlanResult{}, err
	}

	for i := range tasks {
		tasks[i].GoalID = goal.ID
	}
	if err := s.store.ReplaceTasks(ctx, goal.ID, tasks); err != nil {
		return domain.PlanResult{}, err
	}

	updated, err := s.store.GetGoal(ctx, goalID)
	if err != nil {
		return domain.PlanResult{}, err
	}

	return domain.PlanResult{
		GoalID:             updated.ID,
		GoalText:           updated.Text,
		Analysis:           draft.Analysis,
		TotalEstimatedTime: draft.TotalEstimatedTime,
		Tasks:              tasks,
		CreatedAt:          updated.CreatedAt,
		UpdatedAt:          updated.UpdatedAt,
	}, nil
}

func (s *PlannerService) ListGoals(ctx context.Context) ([]domain.Goal, error) {
	return s.store.ListGoals(ctx)
}

func (s *PlannerService) GetGoalWithTasks(ctx context.Context, goalID string) (domain.GoalWithTasks, error) {
	goal, err := s.store.GetGoal(ctx, goalID)
	if err != nil {
		return domain.GoalWithTasks{}, err
	}

	tasks, err := s.store.GetTasks(ctx, goalID)
	if err != nil {
		return domain.GoalWithTasks{}, err
	}

	return domain.GoalWithTasks{Goal: goal, Tasks: tasks}, nil
}

func (s *PlannerService) UpdateTaskStatus(ctx context.Context, taskID string, status domain.TaskStatus) error {
	changed, err := s.store.UpdateTaskStatus(ctx, taskID, status)
	if err != nil {
		return err
	}
	if !changed {
		return domain.ErrTaskNotFound
	}
	return nil
}

func (s *PlannerService) DeleteGoal(ctx context.Context, goalID string) error {
	removed, err := s.store.DeleteGoal(ctx, goalID)
	if err != nil {
		return err
	}
	if removed == 0 {
		return domain.ErrGoalNotFound
	}
	return nil
}
