// Package limbor orchestrates the answer engine: it routes free-text input
// to the extractive summarizer, the restricted math evaluator or the
// multi-source answer compiler, and renders the result as user-facing text.
package limbor

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/limbor-ai/limbor/src/mathexpr"
	"github.com/limbor-ai/limbor/src/source"
	"github.com/limbor-ai/limbor/src/summarize"
)

const defaultProviderTimeout = 8 * time.Second

// Options configure a new Engine.
type Options struct {
	// Providers in priority order. When empty the engine answers from the
	// built-in knowledge table only.
	Providers []source.Provider
	// MaxProviders caps how many providers are consulted per query.
	// Zero means all of them.
	MaxProviders int
	// PerProviderTimeout bounds each provider call. Zero means 8s.
	PerProviderTimeout time.Duration
	// Concurrent fans provider calls out in parallel. Results are still
	// ordered by provider priority, not arrival.
	Concurrent bool
	// FirstMatchOnly stops consulting providers after the first result.
	FirstMatchOnly bool
}

// Engine answers free-text questions and summarizes text. It holds no
// per-request state; a single Engine is safe for concurrent use.
type Engine struct {
	registry        *ProviderRegistry
	maxProviders    int
	providerTimeout time.Duration
	concurrent      bool
	firstMatchOnly  bool
}

// New creates an Engine with the provided options.
func New(opts Options) (*Engine, error) {
	providers := opts.Providers
	if len(providers) == 0 {
		providers = []source.Provider{source.NewKnowledge()}
	}

	registry := NewProviderRegistry(nil)
	for _, p := range providers {
		if p == nil {
			continue
		}
		if err := registry.Register(p); err != nil {
			return nil, err
		}
	}

	timeout := opts.PerProviderTimeout
	if timeout <= 0 {
		timeout = defaultProviderTimeout
	}

	return &Engine{
		registry:        registry,
		maxProviders:    opts.MaxProviders,
		providerTimeout: timeout,
		concurrent:      opts.Concurrent,
		firstMatchOnly:  opts.FirstMatchOnly,
	}, nil
}

// Providers returns the configured providers in priority order.
func (e *Engine) Providers() []source.Provider {
	return e.registry.All()
}

// Respond is the conversational front door: it classifies the input and
// routes it to summarization, arithmetic or the answer compiler. It records
// both turns in the session when one is supplied, and it always returns a
// non-empty reply.
func (e *Engine) Respond(ctx context.Context, session *Session, input string) string {
	reply := e.respond(ctx, input)
	if session != nil {
		session.Add(RoleUser, input)
		session.Add(RoleAssistant, reply)
	}
	return reply
}

func (e *Engine) respond(ctx context.Context, input string) string {
	trimmed := strings.TrimSpace(input)

	switch classifyQuery(trimmed) {
	case QueryMath:
		if reply, ok := e.evaluateMath(trimmed); ok {
			return reply
		}
	case QuerySummarize:
		return e.summarizeRequest(trimmed)
	}

	return e.Answer(ctx, trimmed).RenderedText
}

func (e *Engine) evaluateMath(input string) (string, bool) {
	expr := extractMathExpression(input)
	if expr == "" {
		return "", false
	}
	val, err := mathexpr.Eval(expr)
	if err != nil {
		// Unparseable math falls through to the lookup path.
		return "", false
	}
	return fmt.Sprintf("%s = %s", strings.TrimSpace(expr), mathexpr.Format(val)), true
}

func (e *Engine) summarizeRequest(input string) string {
	text, ok := extractSummaryText(input)
	if !ok {
		return summarizeUsage
	}
	summary := summarize.Summarize(text)
	return fmt.Sprintf("**Summary:**\n\n%s\n\n**Original length:** %d characters\n**Summary length:** %d characters",
		summary, len(text), len(summary))
}

const summarizeUsage = `I can summarize text for you. Paste the content after your request, for example:

"Summarize this: <your text>"
"TLDR: <your text>"

Articles, reports, long emails and meeting notes all work.`
