package http

import (
	"github.com/gin-gonic/gin"

	"github.com/RIVAL231/unthinkable-smart-task-planner/internal/adapter/http/handlers"
	"github.com/RIVAL231/unthinkable-smart-task-planner/internal/adapter/http/middleware"
)

func RegisterRoutes(r *gin.Engine, healthHandler *handlers.HealthHandler, plannerHandler *handlers.PlannerHandler) {
	api := r.Group("/planner")
	api.Use(middleware.LanguageMiddleware())
	{
		api.GET("/health", healthHandler.CheckHealth)
		api.GET("/health/report", healthHandler.CheckHealthReport)
		api.POST("/generate", plannerHandler.GeneratePlan)
		api.POST("/refine", plannerHandler.RefinePlan)
		api.GET("/goals", plannerHandler.ListGoals)
		api.GET("/goal/:id", plannerHandler.GetGoal)
		api.PATCH("/task/status", plannerHandler.UpdateTaskStatus)
		api.DELETE("/goal/:id", plannerHandler.DeleteGoal)
	}
}
