package limbor

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/limbor-ai/limbor/src/concurrent"
	"github.com/limbor-ai/limbor/src/source"
)

// SourceEntry pairs a provider name with the result it returned.
type SourceEntry struct {
	Name   string
	Result *source.Result
}

// CompiledAnswer is the request-scoped outcome of one query: the consulted
// sources in priority order plus the rendered reply. It is built once and
// never cached.
type CompiledAnswer struct {
	Query        string
	Sources      []SourceEntry
	RenderedText string
	Timestamp    time.Time
}

// Answer consults the configured providers in priority order and compiles
// their results. The rendered text is never empty: when every provider comes
// up dry it explains the failure and suggests refining the query. Answer
// never returns an error for any input, including the empty string.
func (e *Engine) Answer(ctx context.Context, query string) *CompiledAnswer {
	providers := e.registry.All()
	if e.maxProviders > 0 && len(providers) > e.maxProviders {
		providers = providers[:e.maxProviders]
	}

	var results []*source.Result
	if e.concurrent && !e.firstMatchOnly {
		results = e.consultConcurrent(ctx, providers, query)
	} else {
		results = e.consultSequential(ctx, providers, query)
	}

	answer := &CompiledAnswer{
		Query:     query,
		Timestamp: time.Now(),
	}
	for i, res := range results {
		if res == nil {
			continue
		}
		answer.Sources = append(answer.Sources, SourceEntry{Name: providers[i].Name(), Result: res})
	}
	answer.RenderedText = renderAnswer(query, answer.Sources)
	return answer
}

func (e *Engine) consultSequential(ctx context.Context, providers []source.Provider, query string) []*source.Result {
	results := make([]*source.Result, len(providers))
	for i, p := range providers {
		callCtx, cancel := context.WithTimeout(ctx, e.providerTimeout)
		res, err := p.Lookup(callCtx, query)
		cancel()
		if err != nil || res == nil {
			continue
		}
		results[i] = res
		if e.firstMatchOnly {
			break
		}
	}
	return results
}

// consultConcurrent fans out across all providers at once. Result order
// follows provider priority, not arrival, so output stays reproducible.
func (e *Engine) consultConcurrent(ctx context.Context, providers []source.Provider, query string) []*source.Result {
	return concurrent.ParallelMap(ctx, providers, func(callCtx context.Context, p source.Provider) *source.Result {
		res, err := p.Lookup(callCtx, query)
		if err != nil {
			return nil
		}
		return res
	}, len(providers), e.providerTimeout)
}

// renderAnswer builds the user-facing reply: the first source supplies the
// primary answer, later ones are appended as additional sources, and zero
// sources yields the terminal no-answer message.
func renderAnswer(query string, sources []SourceEntry) string {
	if len(sources) == 0 {
		return renderNoAnswer(query)
	}

	var sb strings.Builder
	sb.WriteString(renderResult(sources[0].Result))

	if len(sources) > 1 {
		sb.WriteString("\n\n**Additional sources:**\n")
		for _, entry := range sources[1:] {
			sb.WriteString(fmt.Sprintf("- %s: %s\n", entry.Name, resultPreview(entry.Result)))
		}
	}
	return strings.TrimRight(sb.String(), "\n")
}

func renderNoAnswer(query string) string {
	topic := strings.TrimSpace(query)
	if topic == "" {
		topic = "(empty query)"
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "I couldn't find information about %q.\n\n", topic)
	sb.WriteString("This might be because:\n")
	sb.WriteString("• The topic is very new or specialized\n")
	sb.WriteString("• The search terms need to be more specific\n\n")
	sb.WriteString("Try rephrasing your question or being more specific.")
	return sb.String()
}

// renderResult formats a single provider result as the primary answer.
// Structured results lead with the definition field so the most useful
// sentence comes first.
func renderResult(res *source.Result) string {
	switch res.Kind {
	case source.KindStructured:
		return renderStructured(res.Fields)
	case source.KindSnippets:
		return renderSnippets(res.Snippets)
	default:
		return res.Text
	}
}

func renderStructured(fields []source.Field) string {
	if len(fields) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(fields[0].Value)
	if len(fields) > 1 {
		sb.WriteString("\n")
		for _, f := range fields[1:] {
			sb.WriteString(fmt.Sprintf("\n• %s: %s", f.Name, f.Value))
		}
	}
	return sb.String()
}

func renderSnippets(snippets []source.Snippet) string {
	var sb strings.Builder
	sb.WriteString("**Key Information Found:**\n")
	for i, snip := range snippets {
		sb.WriteString(fmt.Sprintf("%d. %s", i+1, snip.Snippet))
		if snip.Title != "" {
			sb.WriteString(fmt.Sprintf(" (%s)", snip.Title))
		}
		sb.WriteString("\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}

// resultPreview condenses a result to one line for the additional-sources
// block.
func resultPreview(res *source.Result) string {
	var text string
	switch res.Kind {
	case source.KindStructured:
		if len(res.Fields) > 0 {
			text = res.Fields[0].Value
		}
	case source.KindSnippets:
		if len(res.Snippets) > 0 {
			text = res.Snippets[0].Snippet
		}
	default:
		text = res.Text
	}
	text = strings.Join(strings.Fields(text), " ")
	return source.Truncate(text, 160)
}
