package main

import (
	"context"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/RIVAL231/unthinkable-smart-task-planner/internal/adapter/llm"
	"github.com/RIVAL231/unthinkable-smart-task-planner/internal/adapter/store"
	"github.com/RIVAL231/unthinkable-smart-task-planner/internal/app/service"
	"github.com/RIVAL231/unthinkable-smart-task-planner/internal/config"
	"github.com/RIVAL231/unthinkable-smart-task-planner/pkg/translator"

	httpadapter "github.com/RIVAL231/unthinkable-smart-task-planner/internal/adapter/http"
	"github.com/RIVAL231/unthinkable-smart-task-planner/internal/adapter/http/handlers"
	httpmiddleware "github.com/RIVAL231/unthinkable-smart-task-planner/internal/adapter/http/middleware"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	// Make zap available to packages that log through zap.L().
	zap.ReplaceGlobals(logger)
	defer func() {
		if err := logger.Sync(); err != nil {
			zap.L().Debug("failed to sync logger", zap.Error(err))
		}
	}()

	translator.InitTranslator(translator.Config{
		TranslationFolder:  "pkg/translator/translation",
		SupportedLanguages: []string{translator.LanguageFr, translator.LanguageEn},
	})

	cfg := config.LoadConfig()

	planStore, err := store.NewFileStore(cfg.DataDir)
	if err != nil {
		logger.Fatal("failed to open plan store", zap.Error(err))
	}

	generator, err := llm.NewGenerator(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel, cfg.LLMTimeout)
	if err != nil {
		logger.Fatal("failed to create plan generator", zap.Error(err))
	}
	defer func() {
		if err := generator.Close(); err != nil {
			logger.Warn("failed to close gemini client", zap.Error(err))
		}
	}()
	if cfg.GeminiAPIKey == "" {
		logger.Warn("GEMINI_API_KEY not set, plan generation will fail until configured")
	}

	plannerService := service.NewPlannerService(planStore, generator)

	r := gin.New()
	r.Use(gin.Recovery(), httpmiddleware.GinZapMiddleware(logger))
	if len(cfg.TrustedProxies) > 0 {
		if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
			logger.Fatal("invalid trusted proxies", zap.Error(err))
		}
	}

	healthHandler := handlers.NewHealthHandler(planStore, generator)
	plannerHandler := handlers.NewPlannerHandler(plannerService)
	httpadapter.RegisterRoutes(r, healthHandler, plannerHandler)

	port := cfg.AppPort
	if port == "" {
		port = "8080"
	}
	addr := ":" + port
	logger.Info("starting server", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		logger.Fatal("could not start server", zap.Error(err))
	}
}
