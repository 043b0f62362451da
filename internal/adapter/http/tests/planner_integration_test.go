//go:build integration
// +build integration

package tests

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/RIVAL231/unthinkable-smart-task-planner/internal/adapter/http/dto"
	"github.com/RIVAL231/unthinkable-smart-task-planner/internal/core/domain"
	"github.com/RIVAL231/unthinkable-smart-task-planner/pkg/apierrors"
)

type PlannerIntegrationSuite struct {
	IntegrationSuiteBase
}

func TestPlannerIntegrationSuite(t *testing.T) {
	suite.Run(t, new(PlannerIntegrationSuite))
}

func (s *PlannerIntegrationSuite) do(method, path string, body any) *httptest.ResponseRecorder {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		s.Require().NoError(err)
	}

	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.Router.ServeHTTP(rec, req)
	return rec
}

func launchDraft() domain.PlanDraft {
	return domain.PlanDraft{
		Analysis:           "Three phases: build, test, launch",
		TotalEstimatedTime: "3 months",
		Tasks: []domain.Task{
			{
				ID:                "task-1",
				Title:             "Define MVP scope",
				EstimatedDuration: "1 week",
				Priority:          domain.TaskPriorityHigh,
				Status:            domain.TaskStatusPending,
				Dependencies:      []string{},
			},
			{
				ID:                "task-2",
				Title:             "Build the app",
				EstimatedDuration: "8 weeks",
				Priority:          domain.TaskPriorityMedium,
				Status:            domain.TaskStatusPending,
				Dependencies:      []string{"task-1"},
			},
		},
	}
}

func (s *PlannerIntegrationSuite) generatePlan() dto.PlanData {
	s.Generator.next = launchDraft()

	rec := s.do(http.MethodPost, "/planner/generate", map[string]string{
		"goalText": "Launch a mobile app in 3 months",
	})
	s.Require().Equal(http.StatusOK, rec.Code)

	var got struct {
		Success bool         `json:"success"`
		Data    dto.PlanData `json:"data"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &got))
	s.Require().True(got.Success)
	return got.Data
}

func (s *PlannerIntegrationSuite) TestGenerateThenFetch() {
	plan := s.generatePlan()

	s.NotEmpty(plan.GoalID)
	s.Len(plan.Tasks, 2)
	s.Equal("pending", plan.Tasks[0].Status)
	s.Equal([]string{plan.Tasks[0].ID}, plan.Tasks[1].Dependencies)
	s.NotEqual("task-1", plan.Tasks[0].ID)

	rec := s.do(http.MethodGet, "/planner/goals", nil)
	s.Require().Equal(http.StatusOK, rec.Code)

	var goals struct {
		Success bool           `json:"success"`
		Data    []dto.GoalItem `json:"data"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &goals))
	s.Require().Len(goals.Data, 1)
	s.Equal(plan.GoalID, goals.Data[0].ID)

	rec = s.do(http.MethodGet, "/planner/goal/"+plan.GoalID, nil)
	s.Require().Equal(http.StatusOK, rec.Code)

	var detail struct {
		Success bool           `json:"success"`
		Data    dto.GoalDetail `json:"data"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &detail))
	s.Equal("Launch a mobile app in 3 months", detail.Data.GoalText)
	s.Len(detail.Data.Tasks, 2)
	s.Equal(0, detail.Data.Tasks[0].OrderIndex)
	s.Equal(1, detail.Data.Tasks[1].OrderIndex)
}

func (s *PlannerIntegrationSuite) TestStatusUpdateFlow() {
	plan := s.generatePlan()
	taskID := plan.Tasks[0].ID

	rec := s.do(http.MethodPatch, "/planner/task/status", map[string]string{
		"taskId": taskID,
		"status": "in-progress",
	})
	s.Require().Equal(http.StatusOK, rec.Code)

	tasks, err := s.Store.GetTasks(context.Background(), plan.GoalID)
	s.Require().NoError(err)
	s.Equal(domain.TaskStatusInProgress, tasks[0].Status)
	s.Equal(domain.TaskStatusPending, tasks[1].Status)
}

func (s *PlannerIntegrationSuite) TestRefineReplacesTasks() {
	plan := s.generatePlan()

	refined := launchDraft()
	refined.Analysis = "Added a beta test phase"
	refined.Tasks = append(refined.Tasks, domain.Task{
		ID:                "task-3",
		Title:             "Run a beta test",
		EstimatedDuration: "2 weeks",
		Priority:          domain.TaskPriorityHigh,
		Status:            domain.TaskStatusPending,
		Dependencies:      []string{"task-2"},
	})
	s.Generator.next = refined

	rec := s.do(http.MethodPost, "/planner/refine", map[string]string{
		"goalId":   plan.GoalID,
		"feedback": "please add a beta test phase",
	})
	s.Require().Equal(http.StatusOK, rec.Code)

	var got struct {
		Success bool         `json:"success"`
		Data    dto.PlanData `json:"data"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &got))
	s.Equal("Added a beta test phase", got.Data.Analysis)
	s.Len(got.Data.Tasks, 3)
	s.NotEmpty(got.Data.UpdatedAt)

	// The previous generation's tasks are fully replaced.
	tasks, err := s.Store.GetTasks(context.Background(), plan.GoalID)
	s.Require().NoError(err)
	s.Len(tasks, 3)
	for _, task := range tasks {
		s.NotEqual(plan.Tasks[0].ID, task.ID)
	}
}

func (s *PlannerIntegrationSuite) TestRefineUnknownGoalLeavesStoreAlone() {
	plan := s.generatePlan()
	callsBefore := s.Generator.calls

	rec := s.do(http.MethodPost, "/planner/refine", map[string]string{
		"goalId":   "3f2a4c1e-5d6b-4e7f-8a9b-0c1d2e3f4a5b",
		"feedback": "this goal does not exist",
	})
	s.Require().Equal(http.StatusNotFound, rec.Code)

	var got apierrors.JsonErr
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &got))
	s.False(got.Success)
	s.Equal("Goal not found", got.ErrDetails.Message)

	// No model call, no mutation.
	s.Equal(callsBefore, s.Generator.calls)
	tasks, err := s.Store.GetTasks(context.Background(), plan.GoalID)
	s.Require().NoError(err)
	s.Len(tasks, 2)
}

func (s *PlannerIntegrationSuite) TestDeleteGoalFlow() {
	plan := s.generatePlan()

	rec := s.do(http.MethodDelete, "/planner/goal/"+plan.GoalID, nil)
	s.Require().Equal(http.StatusOK, rec.Code)

	rec = s.do(http.MethodDelete, "/planner/goal/"+plan.GoalID, nil)
	s.Require().Equal(http.StatusNotFound, rec.Code)

	rec = s.do(http.MethodGet, "/planner/goal/"+plan.GoalID, nil)
	s.Require().Equal(http.StatusNotFound, rec.Code)
}

func (s *PlannerIntegrationSuite) TestHealthReport() {
	rec := s.do(http.MethodGet, "/planner/health/report", nil)
	s.Require().Equal(http.StatusOK, rec.Code)

	var got map[string]any
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &got))
	status := got["status"].(map[string]any)
	s.Equal("ok", status["store"])
	s.Equal("ok", status["generator"])
}
