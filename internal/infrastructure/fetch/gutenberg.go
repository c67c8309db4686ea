package fetch

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"ProseCorpusBuilder/internal/domain"
	"ProseCorpusBuilder/internal/ports"
)

// Responses shorter than this are mirror error pages, not book text.
const minGutenbergBytes = 200

// GutenbergSource downloads plain-text books from Project Gutenberg,
// falling through an ordered list of mirror URL layouts and caching the
// first usable body per book id.
type GutenbergSource struct {
	client  *http.Client
	cache   ports.TextCache
	logger  *slog.Logger
	baseURL string
}

var _ ports.TextSource = (*GutenbergSource)(nil)

// NewGutenbergSource wires an HTTP client and an optional cache.
func NewGutenbergSource(client *http.Client, cache ports.TextCache, logger *slog.Logger) *GutenbergSource {
	if client == nil {
		client = defaultClient()
	}
	return &GutenbergSource{client: client, cache: cache, logger: logger, baseURL: "https://www.gutenberg.org"}
}

// Name identifies the strategy inside the registry.
func (g *GutenbergSource) Name() string {
	return string(domain.SourceGutenberg)
}

// Load returns the raw text for the work's Gutenberg id, trying each mirror
// candidate in order. On total failure the last underlying error surfaces.
func (g *GutenbergSource) Load(ctx context.Context, work domain.WorkSpec) (string, error) {
	id := work.Source.GutenbergID
	key := fmt.Sprintf("gutenberg-%d", id)

	if body, ok := g.cacheGet(ctx, key); ok {
		return body, nil
	}

	var lastErr error
	for _, candidate := range g.candidateURLs(id) {
		body, _, err := fetchURL(ctx, g.client, candidate)
		if err != nil {
			lastErr = err
			continue
		}
		if len(strings.TrimSpace(body)) < minGutenbergBytes {
			continue
		}
		g.cachePut(ctx, key, body)
		return body, nil
	}

	if lastErr != nil {
		return "", lastErr
	}
	return "", fmt.Errorf("no usable gutenberg text for id=%d", id)
}

func (g *GutenbergSource) candidateURLs(id int) []string {
	return []string{
		fmt.Sprintf("%s/cache/epub/%d/pg%d.txt", g.baseURL, id, id),
		fmt.Sprintf("%s/cache/epub/%d/pg%d.txt.utf-8", g.baseURL, id, id),
		fmt.Sprintf("%s/files/%d/%d-0.txt", g.baseURL, id, id),
		fmt.Sprintf("%s/files/%d/%d.txt", g.baseURL, id, id),
	}
}

func (g *GutenbergSource) cacheGet(ctx context.Context, key string) (string, bool) {
	if g.cache == nil {
		return "", false
	}
	body, ok, err := g.cache.Get(ctx, key)
	if err != nil {
		g.warn("cache read failed", "key", key, "error", err)
		return "", false
	}
	return body, ok
}

func (g *GutenbergSource) cachePut(ctx context.Context, key, body string) {
	if g.cache == nil {
		return
	}
	if err := g.cache.Put(ctx, key, body); err != nil {
		g.warn("cache write failed", "key", key, "error", err)
	}
}

func (g *GutenbergSource) warn(msg string, args ...any) {
	if g.logger != nil {
		g.logger.Warn(msg, args...)
	}
}
