package source

import (
	"context"
	"strings"

	"github.com/limbor-ai/limbor/src/models"
)

const llmPromptPrefix = "Answer the question concisely and factually. If you do not know, say so in one sentence."

// LLM adapts a language model into the provider chain so a configured cloud
// or local model can answer when the cheaper sources come up empty. Model
// errors are absorbed into no-result like any other provider failure.
type LLM struct {
	Model models.Agent
	Label string
}

// NewLLM wraps the given model. A nil model yields a provider that always
// reports no result.
func NewLLM(model models.Agent) *LLM {
	return &LLM{Model: model, Label: "Language Model"}
}

func (l *LLM) Name() string {
	if l.Label == "" {
		return "Language Model"
	}
	return l.Label
}

func (l *LLM) Lookup(ctx context.Context, query string) (*Result, error) {
	if l.Model == nil || strings.TrimSpace(query) == "" {
		return nil, nil
	}

	answer, err := l.Model.Generate(ctx, llmPromptPrefix+"\n\n"+query)
	if err != nil {
		return nil, nil
	}
	answer = strings.TrimSpace(answer)
	if answer == "" {
		return nil, nil
	}

	return &Result{Source: l.Name(), Kind: KindText, Text: answer}, nil
}
