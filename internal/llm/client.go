package llm

import (
	"context"
)

// LLMClient is the single capability the synthesis layer needs: turn a
// prompt into raw text. The text is untrusted and validated downstream.
type LLMClient interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
