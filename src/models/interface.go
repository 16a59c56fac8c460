// Package models provides interchangeable language-model clients. Every
// client implements Agent; the concrete provider is picked by configuration
// through NewLLMProvider.
package models

import "context"

// Agent is a single-turn text completion backend.
type Agent interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
