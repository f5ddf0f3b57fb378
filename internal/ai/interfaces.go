package ai

import (
	"context"

	"resumeforge/internal/types"
)

// AIProvider abstracts the model backend. Every call reports token usage;
// callers that do not track usage can ignore it.
type AIProvider interface {
	AnalyzeResume(ctx context.Context, input types.AnalyzeResumeInput) (types.AnalyzeResumeOutput, *TokenUsage, error)
	RewriteResume(ctx context.Context, input types.RewriteResumeInput) (types.RewriteResumeOutput, *TokenUsage, error)
	GetModelInfo(ctx context.Context) *ModelInfo
	Close() error
}

// PromptBuilder assembles the prompt text sent for each operation.
type PromptBuilder interface {
	BuildAnalyzePrompt(resume, jobDescription string) string
	BuildRewritePrompt(resume, jobDescription string) string
}
