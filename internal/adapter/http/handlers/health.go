package handlers

import (
	"context"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/RIVAL231/unthinkable-smart-task-planner/internal/adapter/http/middleware"
	"github.com/RIVAL231/unthinkable-smart-task-planner/internal/core/ports"
)

const (
	StatusOk           = "ok"
	StatusDown         = "down"
	StatusUnconfigured = "unconfigured"

	healthStoreTimeout = 2 * time.Second
)

// GeneratorStatus is the slice of the generator the health report needs.
type GeneratorStatus interface {
	Configured() bool
}

type HealthBasic struct {
	AppName           string `json:"app_name"`
	AppVersion        string `json:"app_version"`
	CurrentSystemTime string `json:"current_system_time"`
	Message           string `json:"message"`
}

type HealthServices struct {
	Store     string `json:"store"`
	Generator string `json:"generator"`
}

type HealthAdvanced struct {
	AppName           string         `json:"app_name"`
	AppVersion        string         `json:"app_version"`
	CurrentSystemTime string         `json:"current_system_time"`
	Language          string         `json:"language"`
	Status            HealthServices `json:"status"`
}

type HealthHandler struct {
	store     ports.PlanStore
	generator GeneratorStatus
}

func NewHealthHandler(store ports.PlanStore, generator GeneratorStatus) *HealthHandler {
	return &HealthHandler{store: store, generator: generator}
}

func (h *HealthHandler) CheckHealth(c *gin.Context) {
	ctx := c.Request.Context()
	statusCode := 200
	message := StatusOk

	if !h.checkStore(ctx) {
		statusCode = 500
		message = StatusDown
	}

	c.JSON(statusCode, HealthBasic{
		AppName:           os.Getenv("APP_NAME"),
		AppVersion:        getAppVersion(),
		CurrentSystemTime: time.Now().Format("2006-01-02 15:04:05"),
		Message:           message,
	})
}

func (h *HealthHandler) CheckHealthReport(c *gin.Context) {
	ctx := c.Request.Context()

	storeStatus := StatusDown
	if h.checkStore(ctx) {
		storeStatus = StatusOk
	}

	generatorStatus := StatusUnconfigured
	if h.generator != nil && h.generator.Configured() {
		generatorStatus = StatusOk
	}

	c.JSON(200, HealthAdvanced{
		AppName:           os.Getenv("APP_NAME"),
		AppVersion:        getAppVersion(),
		CurrentSystemTime: time.Now().Format("2006-01-02 15:04:05"),
		Language:          middleware.GetLang(c),
		Status: HealthServices{
			Store:     storeStatus,
			Generator: generatorStatus,
		},
	})
}

func (h *HealthHandler) checkStore(ctx context.Context) bool {
	if h.store == nil {
		return false
	}
	// Avoid hanging health checks if the data directory stalls.
	timeoutCtx, cancel := context.WithTimeout(ctx, healthStoreTimeout)
	defer cancel()
	return h.store.Ping(timeoutCtx) == nil
}

func getAppVersion() string {
	version := os.Getenv("APP_VERSION")
	if version == "" {
		return "dev"
	}
	return version
}
