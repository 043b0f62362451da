package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"
	"google.golang.org/api/option"

	"github.com/RIVAL231/unthinkable-smart-task-planner/internal/core/domain"
	"github.com/RIVAL231/unthinkable-smart-task-planner/internal/core/ports"
)

// Generator turns goal text into a normalized task breakdown through a
// Gemini completion call.
type Generator struct {
	client  *genai.Client
	apiKey  string
	model   string
	timeout time.Duration
}

var _ ports.PlanGenerator = (*Generator)(nil)

func NewGenerator(ctx context.Context, apiKey, model string, timeout time.Duration) (*Generator, error) {
	// An empty key still yields a usable client; calls fail with a
	// credential error instead of the process refusing to start.
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &Generator{
		client:  client,
		apiKey:  apiKey,
		model:   model,
		timeout: timeout,
	}, nil
}

// Configured reports whether an API key was supplied. Used by the health
// report; a false value means every generation call will fail.
func (g *Generator) Configured() bool {
	return strings.TrimSpace(g.apiKey) != ""
}

func (g *Generator) Close() error {
	if g.client == nil {
		return nil
	}
	return g.client.Close()
}

func (g *Generator) Generate(ctx context.Context, goalText string) (domain.PlanDraft, error) {
	response, err := g.complete(ctx, buildGeneratePrompt(goalText))
	if err != nil {
		return domain.PlanDraft{}, err
	}
	return normalizePlan(response, fallbackAnalysisGenerate)
}

func (g *Generator) Refine(ctx context.Context, goalText string, current []domain.Task, feedback string) (domain.PlanDraft, error) {
	response, err := g.complete(ctx, buildRefinePrompt(goalText, current, feedback))
	if err != nil {
		return domain.PlanDraft{}, err
	}
	return normalizePlan(response, fallbackAnalysisRefine)
}

func (g *Generator) complete(ctx context.Context, prompt string) (string, error) {
	if !g.Configured() {
		return "", &domain.GenerationProviderError{
			Credential: true,
			Err:        errors.New("GEMINI_API_KEY is not set"),
		}
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	start := time.Now()
	model := g.client.GenerativeModel(g.model)
	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		zap.L().Warn("gemini call failed", zap.String("model", g.model), zap.Error(err))
		return "", &domain.GenerationProviderError{Credential: isCredentialError(err), Err: err}
	}
	zap.L().Debug("gemini call completed",
		zap.String("model", g.model),
		zap.Duration("latency", time.Since(start)),
	)

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", &domain.GenerationFormatError{Reason: "empty response from model"}
	}

	part := resp.Candidates[0].Content.Parts[0]
	text, ok := part.(genai.Text)
	if !ok {
		return "", &domain.GenerationFormatError{Reason: fmt.Sprintf("unexpected response part %T", part)}
	}

	return string(text), nil
}

func isCredentialError(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "API key") ||
		strings.Contains(msg, "API_KEY_INVALID") ||
		strings.Contains(msg, "PERMISSION_DENIED")
}
