package models

import (
	"context"
	"fmt"
)

// NewLLMProvider returns a concrete Agent for the named provider. Supported
// names: openai, gemini (alias google), anthropic (alias claude), ollama,
// dummy.
func NewLLMProvider(ctx context.Context, provider, model, promptPrefix string) (Agent, error) {
	switch provider {
	case "openai":
		return NewOpenAILLM(model, promptPrefix), nil
	case "gemini", "google":
		return NewGeminiLLM(ctx, model, promptPrefix)
	case "anthropic", "claude":
		return NewAnthropicLLM(model, promptPrefix), nil
	case "ollama":
		return NewOllamaLLM(model, promptPrefix)
	case "dummy":
		return NewDummyLLM(promptPrefix), nil
	default:
		return nil, fmt.Errorf("unknown provider: %s", provider)
	}
}
