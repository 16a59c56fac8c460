package helpers

import (
	"strings"

	"github.com/limbor-ai/limbor/src/source"
)

// ParseCSVList splits a comma-separated flag value into trimmed, non-empty
// entries.
func ParseCSVList(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// ProviderNames renders the configured providers for display.
func ProviderNames(providers []source.Provider) string {
	if len(providers) == 0 {
		return "<none>"
	}
	names := make([]string, len(providers))
	for i, p := range providers {
		names[i] = p.Name()
	}
	return strings.Join(names, ", ")
}
