package synthesis

import (
	"context"
	"fmt"
	"strings"

	"github.com/synthlab/crucible/internal/core/common"
	"github.com/synthlab/crucible/internal/core/model"
	"github.com/synthlab/crucible/internal/llm"
)

// Synthesizer asks the model to invent the concept two element names combine
// into. The raw response is untrusted; it is parsed and validated here and
// nowhere else.
type Synthesizer struct {
	LLM    llm.LLMClient
	Prompt string
}

func NewSynthesizer(llmClient llm.LLMClient, prompt string) *Synthesizer {
	return &Synthesizer{
		LLM:    llmClient,
		Prompt: prompt,
	}
}

// Combine generates and validates a new concept for the pair of names.
// The prompt is deterministic in the names; the model output is not.
func (s *Synthesizer) Combine(ctx context.Context, nameA, nameB string) (model.SynthesizedConcept, error) {
	prompt := fmt.Sprintf(s.Prompt, nameA, nameB)

	response, err := s.LLM.Generate(ctx, prompt)
	if err != nil {
		return model.SynthesizedConcept{}, fmt.Errorf("failed to generate combination: %w", err)
	}

	concept, err := common.ParseJSON[model.SynthesizedConcept](response)
	if err != nil {
		return model.SynthesizedConcept{}, fmt.Errorf("failed to parse combination response: %w", err)
	}

	concept.Text = strings.TrimSpace(concept.Text)
	concept.Emoji = strings.TrimSpace(concept.Emoji)
	if concept.Text == "" || concept.Emoji == "" {
		return model.SynthesizedConcept{}, fmt.Errorf("combination response missing text or emoji")
	}

	return concept, nil
}
