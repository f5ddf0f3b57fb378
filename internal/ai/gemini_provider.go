package ai

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"math/big"
	"net"
	"net/http"
	"time"

	"resumeforge/internal/config"
	forgeErrors "resumeforge/internal/errors"
	"resumeforge/internal/types"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/api/googleapi"
	"google.golang.org/genai"
)

// modelCheckTimeout bounds availability probes against the Models API.
// TODO: read observability.healthCheck.aiModelCheckTimeout instead of this fixed value.
const modelCheckTimeout = 10 * time.Second

// GeminiProvider talks to Google Gemini. Each instance is bound to one
// operation (analyze or rewrite) and carries that operation's config and
// circuit breakers.
type GeminiProvider struct {
	client         *genai.Client
	httpClient     *http.Client
	config         *config.OperationAIConfig
	circuitBreaker *AICircuitBreaker
	modelBreaker   *ModelCircuitBreaker
	logger         *forgeErrors.Logger
}

var _ AIProvider = (*GeminiProvider)(nil)

// NewGeminiProvider builds a provider for one operation. The config must
// come from GetAnalyzeConfig or GetRewriteConfig so its pointer fields are set.
func NewGeminiProvider(cfg *config.OperationAIConfig, operationType string, logger *forgeErrors.Logger) (*GeminiProvider, error) {
	if cfg.APIKey == "" {
		return nil, forgeErrors.NewConfigError(forgeErrors.ErrCodeMissingAPIKey,
			"AI API key is required (set RESUMEFORGE_AI_APIKEY environment variable)", nil)
	}

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey: cfg.APIKey,
	})
	if err != nil {
		return nil, forgeErrors.NewAIError(forgeErrors.ErrCodeAIServiceFailed,
			"Failed to create Gemini client", err)
	}

	return &GeminiProvider{
		client: client,
		httpClient: &http.Client{
			Timeout: *cfg.Timeout,
		},
		config:         cfg,
		circuitBreaker: NewAICircuitBreaker(operationType, cfg, logger),
		modelBreaker:   NewModelCircuitBreaker(operationType, cfg, logger),
		logger:         logger,
	}, nil
}

// ModelInfo describes the configured model as reported by the provider.
type ModelInfo struct {
	Name        string `json:"name"`
	DisplayName string `json:"displayName,omitempty"`
	Version     string `json:"version,omitempty"`
	Available   bool   `json:"available"`
	Error       string `json:"error,omitempty"`
}

// GetModelInfo probes the Models API for the configured model. A failed
// probe is reported in the returned struct, not as an error, so health
// endpoints can surface it without aborting.
func (g *GeminiProvider) GetModelInfo(ctx context.Context) *ModelInfo {
	info := &ModelInfo{
		Name:      g.config.Model,
		Available: false,
	}

	checkCtx, cancel := context.WithTimeout(ctx, modelCheckTimeout)
	defer cancel()

	model, err := g.modelBreaker.ExecuteModel(func() (*genai.Model, error) {
		return g.client.Models.Get(checkCtx, g.config.Model, &genai.GetModelConfig{})
	})
	if err != nil {
		info.Error = fmt.Sprintf("Failed to get model info: %v", err)
		g.logger.Warn("Model availability check failed",
			"model", g.config.Model,
			"provider", g.config.Provider,
			"error", err.Error())
		return info
	}

	info.Available = true
	info.DisplayName = model.DisplayName
	info.Version = model.Version

	g.logger.Debug("Model availability check successful",
		"model", g.config.Model,
		"provider", g.config.Provider,
		"display_name", info.DisplayName,
		"version", info.Version)

	return info
}

// retryBackoff computes the delay before the given retry attempt:
// exponential in the attempt number, plus up to 10% jitter so that
// clients retrying in lockstep spread out, capped at 30 seconds.
func retryBackoff(attempt int) time.Duration {
	base := time.Duration(math.Pow(2, float64(attempt-1))) * time.Second
	jitterBig, _ := rand.Int(rand.Reader, big.NewInt(int64(float64(base)*0.1)))
	return min(base+time.Duration(jitterBig.Int64()), 30*time.Second)
}

// generateWithRetry runs fn up to MaxRetries+1 times, backing off between
// attempts. Non-retryable errors (auth failures, bad input) stop the loop
// immediately.
func (g *GeminiProvider) generateWithRetry(ctx context.Context, operation string, fn func() (*genai.GenerateContentResponse, error)) (*genai.GenerateContentResponse, error) {
	var lastErr error

	for attempt := 0; attempt <= *g.config.MaxRetries; attempt++ {
		if attempt > 0 {
			g.logger.Warn("Retrying AI operation",
				"operation", operation,
				"attempt", attempt,
				"max_retries", *g.config.MaxRetries,
				"error", lastErr.Error())

			select {
			case <-time.After(retryBackoff(attempt)):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		result, err := fn()
		if err == nil {
			if attempt > 0 {
				g.logger.Info("AI operation succeeded after retry",
					"operation", operation,
					"successful_attempt", attempt+1,
					"total_attempts", attempt+1)
			}
			return result, nil
		}

		lastErr = err
		if !retryable(err) {
			g.logger.Debug("Error is not retryable, stopping retry attempts",
				"operation", operation,
				"error", err.Error())
			break
		}
	}

	g.logger.LogError(lastErr, "AI operation failed after all retry attempts",
		"operation", operation,
		"total_attempts", *g.config.MaxRetries+1)

	return nil, fmt.Errorf("operation '%s' failed after %d retries: %w", operation, *g.config.MaxRetries, lastErr)
}

// retryable reports whether another attempt could plausibly succeed.
func retryable(err error) bool {
	if err == nil {
		return false
	}

	// Network trouble, timeouts included, is worth another attempt.
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case http.StatusTooManyRequests,
			http.StatusInternalServerError,
			http.StatusBadGateway,
			http.StatusServiceUnavailable,
			http.StatusGatewayTimeout:
			return true
		}
	}

	return false
}

// generate runs one structured-output request through the circuit breaker
// and retry loop, then unmarshals the JSON response into Out. It owns the
// per-call span; callers add operation-specific attributes via extraAttrs.
func generate[Out any](
	g *GeminiProvider,
	ctx context.Context,
	operationName string,
	systemPrompt string,
	userPrompt string,
	genConfig *genai.GenerateContentConfig,
	extraAttrs ...attribute.KeyValue,
) (Out, *TokenUsage, error) {
	var output Out
	ctx, span := otel.Tracer("resumeforge.ai.gemini").Start(ctx, "gemini."+operationName)
	defer span.End()

	span.SetAttributes(
		attribute.String("ai.provider", "gemini"),
		attribute.String("ai.model", g.config.Model),
		attribute.Float64("ai.temperature", float64(*g.config.Temperature)),
	)
	span.SetAttributes(extraAttrs...)

	if *g.config.UseSystemPrompts && systemPrompt != "" {
		genConfig.SystemInstruction = genai.NewContentFromText(systemPrompt, genai.RoleUser)
	}

	result, err := g.circuitBreaker.Execute(func() (*genai.GenerateContentResponse, error) {
		return g.generateWithRetry(ctx, operationName, func() (*genai.GenerateContentResponse, error) {
			return g.client.Models.GenerateContent(ctx, g.config.Model, genai.Text(userPrompt), genConfig)
		})
	})
	if err != nil {
		span.RecordError(err)
		span.SetAttributes(attribute.Bool("success", false))
		return output, nil, forgeErrors.NewAIError(forgeErrors.ErrCodeAIServiceFailed, "Failed to generate content for "+operationName, err)
	}

	if err := json.Unmarshal([]byte(result.Text()), &output); err != nil {
		span.RecordError(err)
		span.SetAttributes(attribute.Bool("success", false))
		return output, nil, forgeErrors.NewAIError("AI_RESPONSE_PARSE_FAILED", "Failed to parse AI response for "+operationName, err)
	}

	tokenUsage := extractTokenUsage(result)
	if tokenUsage != nil {
		span.SetAttributes(
			attribute.Int64("ai.tokens.input", tokenUsage.InputTokens),
			attribute.Int64("ai.tokens.output", tokenUsage.OutputTokens),
			attribute.Int64("ai.tokens.total", tokenUsage.TotalTokens),
		)
	}

	span.SetAttributes(attribute.Bool("success", true))
	return output, tokenUsage, nil
}

// Response schemas force the model into the JSON shapes our output types
// unmarshal from. Property names must match the types package json tags.
var analyzeSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"strengths": {
			Type:  genai.TypeArray,
			Items: &genai.Schema{Type: genai.TypeString},
		},
		"weaknesses": {
			Type:  genai.TypeArray,
			Items: &genai.Schema{Type: genai.TypeString},
		},
		"recommendations": {
			Type:  genai.TypeArray,
			Items: &genai.Schema{Type: genai.TypeString},
		},
		"summary": {Type: genai.TypeString},
	},
	Required: []string{"strengths", "weaknesses", "recommendations", "summary"},
}

var rewriteSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"rewrittenResume": {Type: genai.TypeString},
		"changes": {
			Type:  genai.TypeArray,
			Items: &genai.Schema{Type: genai.TypeString},
		},
	},
	Required: []string{"rewrittenResume", "changes"},
}

// generationConfig wraps a response schema in a structured-output request
// config, carrying over the operation's temperature when one is set.
func (g *GeminiProvider) generationConfig(schema *genai.Schema) *genai.GenerateContentConfig {
	cfg := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   schema,
	}
	if *g.config.Temperature > 0 {
		cfg.Temperature = g.config.Temperature
	}
	return cfg
}

// AnalyzeResume implements AIProvider.
func (g *GeminiProvider) AnalyzeResume(ctx context.Context, input types.AnalyzeResumeInput) (types.AnalyzeResumeOutput, *TokenUsage, error) {
	systemPrompt, userPrompt := g.operationPrompts("analyze")

	output, tokenUsage, err := generate[types.AnalyzeResumeOutput](
		g,
		ctx,
		"analyze_resume",
		systemPrompt,
		fmt.Sprintf(userPrompt, input.Resume, input.JobDescription),
		g.generationConfig(analyzeSchema),
		attribute.Int("input.resume_length", len(input.Resume)),
		attribute.Int("input.job_length", len(input.JobDescription)),
	)
	if err != nil {
		return types.AnalyzeResumeOutput{}, nil, err
	}

	// Result shape lands on the caller's span, next to the request attributes.
	if span := trace.SpanFromContext(ctx); span.IsRecording() {
		span.SetAttributes(
			attribute.Int("output.strengths_count", len(output.Strengths)),
			attribute.Int("output.weaknesses_count", len(output.Weaknesses)),
			attribute.Int("output.recommendations_count", len(output.Recommendations)),
		)
	}

	return output, tokenUsage, nil
}

// RewriteResume implements AIProvider.
func (g *GeminiProvider) RewriteResume(ctx context.Context, input types.RewriteResumeInput) (types.RewriteResumeOutput, *TokenUsage, error) {
	systemPrompt, userPrompt := g.operationPrompts("rewrite")

	output, tokenUsage, err := generate[types.RewriteResumeOutput](
		g,
		ctx,
		"rewrite_resume",
		systemPrompt,
		fmt.Sprintf(userPrompt, input.Resume, input.JobDescription),
		g.generationConfig(rewriteSchema),
		attribute.Int("input.resume_length", len(input.Resume)),
		attribute.Int("input.job_length", len(input.JobDescription)),
	)
	if err != nil {
		return types.RewriteResumeOutput{}, nil, err
	}

	if span := trace.SpanFromContext(ctx); span.IsRecording() {
		span.SetAttributes(
			attribute.Int("output.rewritten_length", len(output.RewrittenResume)),
			attribute.Int("output.changes_count", len(output.Changes)),
		)
	}

	return output, tokenUsage, nil
}

// GetCircuitBreakerStats reports both breakers plus a combined health flag.
func (g *GeminiProvider) GetCircuitBreakerStats() map[string]any {
	return map[string]any{
		"ai_operations":    g.circuitBreaker.GetStats(),
		"model_operations": g.modelBreaker.GetModelStats(),
		"overall_healthy":  g.circuitBreaker.IsHealthy() && g.modelBreaker.IsModelHealthy(),
	}
}

// Close implements AIProvider. The genai client holds no resources that
// need explicit release under our single-request usage.
func (g *GeminiProvider) Close() error {
	return nil
}

// operationPrompts resolves the system and user prompts for an operation.
// Prompts loaded from files win over prompts set inline in config, which
// win over the compiled-in defaults.
func (g *GeminiProvider) operationPrompts(promptType string) (system, user string) {
	loaded := config.GetPromptsForOperation(promptType)
	custom := g.config.CustomPrompts

	switch promptType {
	case "analyze":
		system = firstNonEmpty(loaded.SystemPrompts.AnalyzeResume, custom.SystemPrompts.AnalyzeResume, DefaultSystemPrompts.AnalyzeResume)
		user = firstNonEmpty(loaded.UserPrompts.AnalyzeResume, custom.UserPrompts.AnalyzeResume, DefaultUserPrompts.AnalyzeResume)
	case "rewrite":
		system = firstNonEmpty(loaded.SystemPrompts.RewriteResume, custom.SystemPrompts.RewriteResume, DefaultSystemPrompts.RewriteResume)
		user = firstNonEmpty(loaded.UserPrompts.RewriteResume, custom.UserPrompts.RewriteResume, DefaultUserPrompts.RewriteResume)
	}
	return system, user
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// TokenUsage is the token accounting reported by a single AI call.
type TokenUsage struct {
	InputTokens  int64
	OutputTokens int64
	TotalTokens  int64
}

// AIOperationResult pairs an operation's error with its token usage so
// both reach the metrics layer in one value.
type AIOperationResult struct {
	Error      error
	TokenUsage *TokenUsage
}

// extractTokenUsage pulls token counts out of a Gemini response, or nil
// when the response carries no usage metadata.
func extractTokenUsage(result *genai.GenerateContentResponse) *TokenUsage {
	if result == nil || result.UsageMetadata == nil {
		return nil
	}
	return &TokenUsage{
		InputTokens:  int64(result.UsageMetadata.PromptTokenCount),
		OutputTokens: int64(result.UsageMetadata.CandidatesTokenCount),
		TotalTokens:  int64(result.UsageMetadata.TotalTokenCount),
	}
}
