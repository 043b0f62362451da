package llm

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/RIVAL231/unthinkable-smart-task-planner/internal/core/domain"
)

func TestBuildGeneratePrompt(t *testing.T) {
	prompt := buildGeneratePrompt("Launch a mobile app in 3 months")

	require.Contains(t, prompt, `"Launch a mobile app in 3 months"`)
	require.Contains(t, prompt, "no markdown, no code blocks")
	require.Contains(t, prompt, `"totalEstimatedTime"`)
}

func TestBuildRefinePrompt_EmbedsCurrentPlanAndFeedback(t *testing.T) {
	current := []domain.Task{
		{
			ID:           "11111111-2222-4333-8444-555555555555",
			Title:        "Define MVP scope",
			Priority:     domain.TaskPriorityHigh,
			Status:       domain.TaskStatusCompleted,
			Dependencies: []string{},
		},
	}

	prompt := buildRefinePrompt("Launch a mobile app in 3 months", current, "add a beta phase")

	require.Contains(t, prompt, `"add a beta phase"`)
	require.Contains(t, prompt, "Define MVP scope")
	require.Contains(t, prompt, "11111111-2222-4333-8444-555555555555")
	require.Contains(t, prompt, `"completed"`)
}
