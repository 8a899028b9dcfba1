package advisor

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/juju/errors"
	openai "github.com/sashabaranov/go-openai"
	"golang.org/x/time/rate"

	"github.com/DhavalSuthar-24/acecourt/internal/models"
)

const DefaultModel = openai.GPT4o

type OpenAIConfig struct {
	APIKey string
	// BaseURL overrides the API endpoint, e.g. for a compatible gateway.
	BaseURL string
	Model   string
	// RequestsPerMinute caps outgoing calls. Zero or less disables the cap.
	RequestsPerMinute int
	HTTPClient        *http.Client
}

// OpenAI generates content through the chat completions API in JSON mode.
type OpenAI struct {
	client  *openai.Client
	model   string
	limiter *rate.Limiter
}

var _ Advisor = (*OpenAI)(nil)

func NewOpenAI(cfg OpenAIConfig) *OpenAI {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	if cfg.HTTPClient != nil {
		clientCfg.HTTPClient = cfg.HTTPClient
	}
	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}
	limit := rate.Inf
	if cfg.RequestsPerMinute > 0 {
		limit = rate.Every(time.Minute / time.Duration(cfg.RequestsPerMinute))
	}
	return &OpenAI{
		client:  openai.NewClientWithConfig(clientCfg),
		model:   model,
		limiter: rate.NewLimiter(limit, 1),
	}
}

// complete sends one system+user exchange and decodes the JSON answer into out.
func (o *OpenAI) complete(ctx context.Context, system, prompt string, out interface{}) error {
	if err := o.limiter.Wait(ctx); err != nil {
		return errors.Annotate(err, "rate limit")
	}
	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return errors.Annotate(err, "chat completion")
	}
	if len(resp.Choices) == 0 {
		return errors.Annotate(ErrMalformed, "no choices")
	}
	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if err := json.Unmarshal([]byte(content), out); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return nil
}

func (o *OpenAI) GenerateTrainingPlan(ctx context.Context, req PlanRequest) (*models.WeeklyPlan, error) {
	var plan models.WeeklyPlan
	if err := o.complete(ctx, planSystemPrompt, planPrompt(req), &plan); err != nil {
		return nil, errors.Annotate(err, OpTrainingPlan)
	}
	if len(plan.Days) == 0 {
		return nil, errors.Annotate(ErrMalformed, "plan has no days")
	}
	if plan.Week < 1 {
		plan.Week = 1
	}
	return &plan, nil
}

func (o *OpenAI) GenerateProgressSummary(ctx context.Context, req ProgressRequest) (*ProgressInsight, error) {
	var insight ProgressInsight
	if err := o.complete(ctx, progressSystemPrompt, progressPrompt(req), &insight); err != nil {
		return nil, errors.Annotate(err, OpProgressSummary)
	}
	if insight.Summary == "" {
		return nil, errors.Annotate(ErrMalformed, "empty summary")
	}
	return &insight, nil
}

func (o *OpenAI) RecommendDrills(ctx context.Context, req DrillRequest) ([]models.Drill, error) {
	var result struct {
		Drills []models.Drill `json:"drills"`
	}
	if err := o.complete(ctx, drillSystemPrompt, drillPrompt(req), &result); err != nil {
		return nil, errors.Annotate(err, OpRecommendDrills)
	}
	if len(result.Drills) == 0 {
		return nil, errors.Annotate(ErrMalformed, "no drills")
	}
	return result.Drills, nil
}

func (o *OpenAI) AnalyzeDropoutRisk(ctx context.Context, req RiskRequest) (*RetentionPlan, error) {
	var plan RetentionPlan
	if err := o.complete(ctx, riskSystemPrompt, riskPrompt(req), &plan); err != nil {
		return nil, errors.Annotate(err, OpDropoutRisk)
	}
	if len(plan.Interventions) == 0 {
		return nil, errors.Annotate(ErrMalformed, "no interventions")
	}
	return &plan, nil
}
