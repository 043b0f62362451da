package llm

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/RIVAL231/unthinkable-smart-task-planner/internal/core/domain"
)

// Fallbacks applied when the model omits a field. One table, used by both
// the generate and refine paths.
const (
	fallbackAnalysisGenerate = "Goal analyzed and broken down into tasks"
	fallbackAnalysisRefine   = "Task plan refined based on feedback"
	fallbackTotalTime        = "See individual tasks"
	fallbackDuration         = "Not specified"
)

type rawPlan struct {
	Analysis           string     `json:"analysis"`
	TotalEstimatedTime string     `json:"totalEstimatedTime"`
	Tasks              *[]rawTask `json:"tasks"`
}

type rawTask struct {
	Title             string            `json:"title"`
	Description       string            `json:"description"`
	EstimatedDuration string            `json:"estimatedDuration"`
	Priority          string            `json:"priority"`
	Dependencies      []json.RawMessage `json:"dependencies"`
	Deadline          *string           `json:"deadline"`
}

// normalizePlan parses the model's response text into a PlanDraft. The
// model occasionally wraps its JSON in a fenced code block despite being
// told not to, so the fence is stripped before parsing. Task IDs in the
// draft are sequential display references ("task-1", ...); dependency
// entries are normalized but not yet resolved against the plan.
func normalizePlan(response, analysisFallback string) (domain.PlanDraft, error) {
	payload := stripCodeFence(response)

	var parsed rawPlan
	if err := json.Unmarshal([]byte(payload), &parsed); err != nil {
		return domain.PlanDraft{}, &domain.GenerationFormatError{Reason: "malformed JSON", Err: err}
	}
	if parsed.Tasks == nil {
		return domain.PlanDraft{}, &domain.GenerationFormatError{Reason: "missing tasks array"}
	}
	if len(*parsed.Tasks) == 0 {
		return domain.PlanDraft{}, &domain.GenerationFormatError{Reason: "empty tasks array"}
	}

	tasks := make([]domain.Task, 0, len(*parsed.Tasks))
	for i, raw := range *parsed.Tasks {
		tasks = append(tasks, normalizeTask(raw, i))
	}

	draft := domain.PlanDraft{
		Analysis:           parsed.Analysis,
		TotalEstimatedTime: parsed.TotalEstimatedTime,
		Tasks:              tasks,
	}
	if draft.Analysis == "" {
		draft.Analysis = analysisFallback
	}
	if draft.TotalEstimatedTime == "" {
		draft.TotalEstimatedTime = fallbackTotalTime
	}
	return draft, nil
}

func normalizeTask(raw rawTask, index int) domain.Task {
	task := domain.Task{
		ID:                fmt.Sprintf("task-%d", index+1),
		Title:             strings.TrimSpace(raw.Title),
		Description:       raw.Description,
		EstimatedDuration: raw.EstimatedDuration,
		Priority:          normalizePriority(raw.Priority),
		Status:            domain.TaskStatusPending,
		Deadline:          raw.Deadline,
		OrderIndex:        index,
		Dependencies:      normalizeDependencies(raw.Dependencies),
	}

	if task.Title == "" {
		task.Title = fmt.Sprintf("Task %d", index+1)
	}
	if task.EstimatedDuration == "" {
		task.EstimatedDuration = fallbackDuration
	}
	return task
}

func normalizePriority(value string) domain.TaskPriority {
	switch domain.TaskPriority(value) {
	case domain.TaskPriorityHigh, domain.TaskPriorityMedium, domain.TaskPriorityLow:
		return domain.TaskPriority(value)
	}
	return domain.TaskPriorityMedium
}

// normalizeDependencies accepts both forms the model produces: a numeric
// zero-based index k becomes the one-based display reference "task-{k+1}",
// a string passes through unchanged. Other JSON values are dropped.
func normalizeDependencies(entries []json.RawMessage) []string {
	deps := make([]string, 0, len(entries))
	for _, entry := range entries {
		var index int
		if err := json.Unmarshal(entry, &index); err == nil {
			deps = append(deps, fmt.Sprintf("task-%d", index+1))
			continue
		}

		var ref string
		if err := json.Unmarshal(entry, &ref); err == nil && ref != "" {
			deps = append(deps, ref)
		}
	}
	return deps
}

func stripCodeFence(response string) string {
	payload := strings.TrimSpace(response)
	if !strings.HasPrefix(payload, "```") {
		return payload
	}

	payload = strings.TrimPrefix(payload, "```json")
	payload = strings.TrimPrefix(payload, "```")
	if end := strings.LastIndex(payload, "```"); end >= 0 {
		payload = payload[:end]
	}
	return strings.TrimSpace(payload)
}
