// Package source resolves manifest source types to their text-loading
// strategies.
package source

import (
	"fmt"

	"ProseCorpusBuilder/internal/domain"
	"ProseCorpusBuilder/internal/ports"
)

// Registry maps source type names to their TextSource implementations.
type Registry struct {
	sources map[string]ports.TextSource
}

// NewRegistry builds an empty registry.
func NewRegistry() *Registry {
	return &Registry{sources: map[string]ports.TextSource{}}
}

// Register adds or replaces a source implementation under its own name.
func (r *Registry) Register(src ports.TextSource) {
	if r.sources == nil {
		r.sources = map[string]ports.TextSource{}
	}
	r.sources[src.Name()] = src
}

// Resolve returns the source for a manifest source type, or an error if no
// strategy is registered for it.
func (r *Registry) Resolve(sourceType domain.SourceType) (ports.TextSource, error) {
	if src, ok := r.sources[string(sourceType)]; ok {
		return src, nil
	}
	return nil, fmt.Errorf("source type %s is not registered", sourceType)
}
