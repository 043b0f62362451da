package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/RIVAL231/unthinkable-smart-task-planner/internal/adapter/http/dto"
	"github.com/RIVAL231/unthinkable-smart-task-planner/internal/adapter/http/mapper"
	"github.com/RIVAL231/unthinkable-smart-task-planner/internal/adapter/http/middleware"
	"github.com/RIVAL231/unthinkable-smart-task-planner/internal/core/domain"
	"github.com/RIVAL231/unthinkable-smart-task-planner/internal/core/ports"
	"github.com/RIVAL231/unthinkable-smart-task-planner/pkg/apierrors"
)

type PlannerHandler struct {
	plannerService ports.PlannerService
}

func NewPlannerHandler(plannerService ports.PlannerService) *PlannerHandler {
	return &PlannerHandler{plannerService: plannerService}
}

func (h *PlannerHandler) GeneratePlan(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.GeneratePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apierrors.CreateValidationError(lang, bindingDetails(err)))
		return
	}

	result, err := h.plannerService.GeneratePlan(c.Request.Context(), req.GoalText)
	if err != nil {
		zap.L().Error("failed to generate plan", zap.Error(err))
		h.respondGenerationError(c, err, apierrors.MsgFailGeneratePlan)
		return
	}

	zap.L().Info("plan generated",
		zap.String("goal_id", result.GoalID),
		zap.Int("task_count", len(result.Tasks)),
	)
	c.JSON(http.StatusOK, dto.DataResponse{Success: true, Data: mapper.ToGeneratedPlan(result)})
}

func (h *PlannerHandler) RefinePlan(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.RefinePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apierrors.CreateValidationError(lang, bindingDetails(err)))
		return
	}

	result, err := h.plannerService.RefinePlan(c.Request.Context(), req.GoalID, req.Feedback)
	if err != nil {
		if errors.Is(err, domain.ErrGoalNotFound) {
			c.JSON(http.StatusNotFound, apierrors.CreateError(apierrors.MsgGoalNotFound, lang))
			return
		}

		zap.L().Error("failed to refine plan", zap.String("goal_id", req.GoalID), zap.Error(err))
		h.respondGenerationError(c, err, apierrors.MsgFailRefinePlan)
		return
	}

	zap.L().Info("plan refined",
		zap.String("goal_id", result.GoalID),
		zap.Int("task_count", len(result.Tasks)),
	)
	c.JSON(http.StatusOK, dto.DataResponse{Success: true, Data: mapper.ToRefinedPlan(result)})
}

func (h *PlannerHandler) ListGoals(c *gin.Context) {
	lang := middleware.GetLang(c)

	goals, err := h.plannerService.ListGoals(c.Request.Context())
	if err != nil {
		zap.L().Error("failed to list goals", zap.Error(err))
		c.JSON(http.StatusInternalServerError, apierrors.CreateError(apierrors.MsgFailListGoals, lang))
		return
	}

	c.JSON(http.StatusOK, dto.DataResponse{Success: true, Data: mapper.ToGoalItems(goals)})
}

func (h *PlannerHandler) GetGoal(c *gin.Context) {
	lang := middleware.GetLang(c)

	goal, err := h.plannerService.GetGoalWithTasks(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrGoalNotFound) {
			c.JSON(http.StatusNotFound, apierrors.CreateError(apierrors.MsgGoalNotFound, lang))
			return
		}

		zap.L().Error("failed to get goal", zap.String("goal_id", c.Param("id")), zap.Error(err))
		c.JSON(http.StatusInternalServerError, apierrors.CreateError(apierrors.MsgFailGetGoal, lang))
		return
	}

	c.JSON(http.StatusOK, dto.DataResponse{Success: true, Data: mapper.ToGoalDetail(goal)})
}

func (h *PlannerHandler) UpdateTaskStatus(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.UpdateTaskStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apierrors.CreateValidationError(lang, bindingDetails(err)))
		return
	}

	err := h.plannerService.UpdateTaskStatus(c.Request.Context(), req.TaskID, domain.TaskStatus(req.Status))
	if err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, apierrors.CreateError(apierrors.MsgTaskNotFound, lang))
			return
		}

		zap.L().Error("failed to update task status", zap.String("task_id", req.TaskID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, apierrors.CreateError(apierrors.MsgFailUpdateTaskStatus, lang))
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{
		Success: true,
		Message: apierrors.GetTransErrorMsg(apierrors.MsgTaskStatusUpdated, lang),
	})
}

func (h *PlannerHandler) DeleteGoal(c *gin.Context) {
	lang := middleware.GetLang(c)

	err := h.plannerService.DeleteGoal(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrGoalNotFound) {
			c.JSON(http.StatusNotFound, apierrors.CreateError(apierrors.MsgGoalNotFound, lang))
			return
		}

		zap.L().Error("failed to delete goal", zap.String("goal_id", c.Param("id")), zap.Error(err))
		c.JSON(http.StatusInternalServerError, apierrors.CreateError(apierrors.MsgFailDeleteGoal, lang))
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{
		Success: true,
		Message: apierrors.GetTransErrorMsg(apierrors.MsgGoalDeleted, lang),
	})
}

// respondGenerationError maps generator failures: credential problems get
// the actionable configuration message, other provider failures surface as
// a bad gateway, malformed model output as a plain 500 with the reason.
func (h *PlannerHandler) respondGenerationError(c *gin.Context, err error, failKey string) {
	lang := middleware.GetLang(c)

	var providerErr *domain.GenerationProviderError
	if errors.As(err, &providerErr) {
		if providerErr.Credential {
			c.JSON(http.StatusInternalServerError, apierrors.CreateError(apierrors.MsgMissingAPIKey, lang))
			return
		}
		c.JSON(http.StatusBadGateway, apierrors.CreateErrorWithMessage(
			fmt.Sprintf("%s: %v", apierrors.GetTransErrorMsg(failKey, lang), providerErr.Err),
		))
		return
	}

	var formatErr *domain.GenerationFormatError
	if errors.As(err, &formatErr) {
		c.JSON(http.StatusInternalServerError, apierrors.CreateErrorWithMessage(
			fmt.Sprintf("%s: %v", apierrors.GetTransErrorMsg(failKey, lang), formatErr),
		))
		return
	}

	c.JSON(http.StatusInternalServerError, apierrors.CreateError(failKey, lang))
}

func bindingDetails(err error) []apierrors.FieldError {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return nil
	}

	details := make([]apierrors.FieldError, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		details = append(details, apierrors.FieldError{
			Field:   fieldErr.Field(),
			Message: fieldErrorMessage(fieldErr),
		})
	}
	return details
}

func fieldErrorMessage(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fieldErr.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", fieldErr.Field(), fieldErr.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fieldErr.Field(), fieldErr.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fieldErr.Field(), fieldErr.Param())
	case "uuid":
		return fmt.Sprintf("%s must be a valid UUID", fieldErr.Field())
	default:
		return fmt.Sprintf("%s is invalid", fieldErr.Field())
	}
}
