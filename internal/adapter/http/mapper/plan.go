package mapper

import (
	"time"

	"github.com/RIVAL231/unthinkable-smart-task-planner/internal/adapter/http/dto"
	"github.com/RIVAL231/unthinkable-smart-task-planner/internal/core/domain"
)

func ToTaskItems(tasks []domain.Task) []dto.TaskItem {
	items := make([]dto.TaskItem, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, ToTaskItem(task))
	}
	return items
}

func ToTaskItem(task domain.Task) dto.TaskItem {
	item := dto.TaskItem{
		ID:                task.ID,
		GoalID:            task.GoalID,
		Title:             task.Title,
		Description:       task.Description,
		EstimatedDuration: task.EstimatedDuration,
		Priority:          string(task.Priority),
		Status:            string(task.Status),
		OrderIndex:        task.OrderIndex,
		Dependencies:      task.Dependencies,
	}

	if item.Dependencies == nil {
		item.Dependencies = []string{}
	}

	if task.Deadline != nil {
		value := *task.Deadline
		item.Deadline = &value
	}

	return item
}

func ToGoalItems(goals []domain.Goal) []dto.GoalItem {
	items := make([]dto.GoalItem, 0, len(goals))
	for _, goal := range goals {
		items = append(items, ToGoalItem(goal))
	}
	return items
}

func ToGoalItem(goal domain.Goal) dto.GoalItem {
	return dto.GoalItem{
		ID:        goal.ID,
		GoalText:  goal.Text,
		CreatedAt: goal.CreatedAt.Format(time.RFC3339),
		UpdatedAt: goal.UpdatedAt.Format(time.RFC3339),
	}
}

func ToGoalDetail(goal domain.GoalWithTasks) dto.GoalDetail {
	return dto.GoalDetail{
		GoalItem: ToGoalItem(goal.Goal),
		Tasks:    ToTaskItems(goal.Tasks),
	}
}

func ToGeneratedPlan(result domain.PlanResult) dto.PlanData {
	data := toPlanData(result)
	data.CreatedAt = result.CreatedAt.Format(time.RFC3339)
	return data
}

func ToRefinedPlan(result domain.PlanResult) dto.PlanData {
	data := toPlanData(result)
	data.UpdatedAt = result.UpdatedAt.Format(time.RFC3339)
	return data
}

func toPlanData(result domain.PlanResult) dto.PlanData {
	return dto.PlanData{
		GoalID:             result.GoalID,
		GoalText:           result.GoalText,
		Analysis:           result.Analysis,
		TotalEstimatedTime: result.TotalEstimatedTime,
		Tasks:              ToTaskItems(result.Tasks),
	}
}
