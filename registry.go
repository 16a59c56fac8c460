package limbor

import (
	"fmt"
	"strings"
	"sync"

	"github.com/limbor-ai/limbor/src/source"
)

// ProviderRegistry holds the configured providers keyed by lower-cased name,
// preserving registration order because order is consultation priority.
type ProviderRegistry struct {
	mu        sync.RWMutex
	providers map[string]source.Provider
	order     []string
}

// NewProviderRegistry constructs a registry seeded with the given providers,
// silently skipping nil or duplicate entries.
func NewProviderRegistry(providers []source.Provider) *ProviderRegistry {
	r := &ProviderRegistry{providers: make(map[string]source.Provider)}
	for _, p := range providers {
		_ = r.Register(p)
	}
	return r
}

// Register adds a provider. Duplicate names return an error.
func (r *ProviderRegistry) Register(p source.Provider) error {
	if p == nil {
		return fmt.Errorf("provider is nil")
	}
	key := strings.ToLower(strings.TrimSpace(p.Name()))
	if key == "" {
		return fmt.Errorf("provider name is empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.providers[key]; exists {
		return fmt.Errorf("provider %s already registered", p.Name())
	}
	r.providers[key] = p
	r.order = append(r.order, key)
	return nil
}

// Lookup retrieves a provider by name.
func (r *ProviderRegistry) Lookup(name string) (source.Provider, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.providers[strings.ToLower(strings.TrimSpace(name))]
	return p, ok
}

// All returns the providers in registration order.
func (r *ProviderRegistry) All() []source.Provider {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]source.Provider, 0, len(r.order))
	for _, key := range r.order {
		out = append(out, r.providers[key])
	}
	return out
}
