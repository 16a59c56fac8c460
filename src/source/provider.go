// Package source defines the provider contract used by the answer compiler
// and the concrete lookup providers: the built-in knowledge table, the
// Wikipedia summary client, the DuckDuckGo snippet scraper and the language
// model bridge.
package source

import "context"

// Kind discriminates the Result union.
type Kind int

const (
	// KindStructured carries an ordered list of named fields; the first
	// field is always the definition.
	KindStructured Kind = iota
	// KindText carries a single plain-text answer.
	KindText
	// KindSnippets carries an ordered list of search snippets.
	KindSnippets
)

// Field is one named value of a structured result. Fields are ordered so
// rendering stays deterministic.
type Field struct {
	Name  string
	Value string
}

// Snippet is a short excerpt extracted from a search results page.
type Snippet struct {
	Title   string
	Snippet string
	URL     string
}

// Result is what a provider returns for a query. It is immutable once
// returned: providers build a fresh value per lookup and never retain it.
type Result struct {
	Source   string
	URL      string
	Kind     Kind
	Fields   []Field
	Text     string
	Snippets []Snippet
}

// Provider is an independent source of candidate answer content. A nil
// result with a nil error means "nothing found", which is a normal outcome.
// Implementations absorb transport failures at this boundary; a non-nil
// error is reserved for programmer mistakes and is also treated as
// no-result by the compiler.
type Provider interface {
	Name() string
	Lookup(ctx context.Context, query string) (*Result, error)
}
