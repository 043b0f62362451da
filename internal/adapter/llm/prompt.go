package llm

import (
	"encoding/json"
	"fmt"

	"github.com/RIVAL231/unthinkable-smart-task-planner/internal/core/domain"
)

const systemPrompt = `You are an expert project management AI assistant specialized in breaking down goals into actionable tasks with realistic timelines and dependencies.

Your role is to:
1. Analyze the user's goal comprehensively
2. Break it down into logical, sequential tasks
3. Estimate realistic time durations for each task
4. Identify task dependencies (which tasks must be completed before others)
5. Assign appropriate priority levels
6. Set reasonable deadlines based on the goal's timeline

Guidelines:
- Be specific and actionable in task descriptions
- Consider real-world constraints and typical workflows
- Include preparation, execution, and review phases where appropriate
- Account for potential blockers and dependencies
- Provide detailed descriptions that help users understand what each task entails
- Use priority levels: high, medium, low
- Estimated durations should be realistic (e.g., "2 hours", "3 days", "1 week")`

const responseShape = `{
  "analysis": "Brief analysis of the goal and approach",
  "totalEstimatedTime": "Overall time estimate",
  "tasks": [
    {
      "title": "Task title",
      "description": "Detailed description",
      "estimatedDuration": "Time estimate",
      "priority": "high|medium|low",
      "dependencies": [],
      "deadline": "ISO date string or relative (e.g., 'Day 1', 'Week 1')"
    }
  ]
}`

func buildGeneratePrompt(goalText string) string {
	return fmt.Sprintf(
		"%s\n\nPlease break down this goal into a comprehensive task plan:\n\n%q\n\nProvide a detailed breakdown with tasks, dependencies, timelines, and priorities.\n\nRespond ONLY with valid JSON in this exact format (no markdown, no code blocks):\n%s",
		systemPrompt, goalText, responseShape,
	)
}

func buildRefinePrompt(goalText string, current []domain.Task, feedback string) string {
	return fmt.Sprintf(
		"%s\n\nOriginal goal: %q\n\nCurrent plan:\n%s\n\nUser feedback: %q\n\nPlease refine the task plan based on this feedback.\n\nRespond ONLY with valid JSON in this exact format (no markdown, no code blocks):\n%s",
		systemPrompt, goalText, serializeTasks(current), feedback, responseShape,
	)
}

// promptTask is the trimmed task view embedded in refinement prompts.
type promptTask struct {
	ID                string   `json:"id"`
	Title             string   `json:"title"`
	Description       string   `json:"description"`
	EstimatedDuration string   `json:"estimatedDuration"`
	Priority          string   `json:"priority"`
	Status            string   `json:"status"`
	Dependencies      []string `json:"dependencies"`
	Deadline          *string  `json:"deadline"`
}

func serializeTasks(tasks []domain.Task) string {
	view := make([]promptTask, 0, len(tasks))
	for _, t := range tasks {
		view = append(view, promptTask{
			ID:                t.ID,
			Title:             t.Title,
			Description:       t.Description,
			EstimatedDuration: t.EstimatedDuration,
			Priority:          string(t.Priority),
			Status:            string(t.Status),
			Dependencies:      t.Dependencies,
			Deadline:          t.Deadline,
		})
	}

	out, err := json.MarshalIndent(view, "", "  ")
	if err != nil {
		return "[]"
	}
	return string(out)
}
