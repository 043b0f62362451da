package dto

type GeneratePlanRequest struct {
	GoalText string `json:"goalText" binding:"required,min=10,max=1000"`
}

type RefinePlanRequest struct {
	GoalID   string `json:"goalId" binding:"required,uuid"`
	Feedback string `json:"feedback" binding:"required,min=5"`
}

type UpdateTaskStatusRequest struct {
	TaskID string `json:"taskId" binding:"required"`
	Status string `json:"status" binding:"required,oneof=pending in-progress completed blocked"`
}

type TaskItem struct {
	ID                string   `json:"id"`
	GoalID            string   `json:"goalId,omitempty"`
	Title             string   `json:"title"`
	Description       string   `json:"description"`
	EstimatedDuration string   `json:"estimatedDuration"`
	Priority          string   `json:"priority"`
	Status            string   `json:"status"`
	Deadline          *string  `json:"deadline"`
	OrderIndex        int      `json:"orderIndex"`
	Dependencies      []string `json:"dependencies"`
}

type GoalItem struct {
	ID        string `json:"id"`
	GoalText  string `json:"goalText"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

type GoalDetail struct {
	GoalItem
	Tasks []TaskItem `json:"tasks"`
}

// PlanData is the payload of generate and refine responses. CreatedAt is
// set on generation, UpdatedAt on refinement.
type PlanData struct {
	GoalID             string     `json:"goalId"`
	GoalText           string     `json:"goalText"`
	Analysis           string     `json:"analysis"`
	TotalEstimatedTime string     `json:"totalEstimatedTime"`
	Tasks              []TaskItem `json:"tasks"`
	CreatedAt          string     `json:"createdAt,omitempty"`
	UpdatedAt          string     `json:"updatedAt,omitempty"`
}

// DataResponse is the success envelope for endpoints returning data.
type DataResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

// MessageResponse is the success envelope for endpoints returning only a
// confirmation message.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
