package fetch

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ProseCorpusBuilder/internal/domain"
)

func gutenbergWork(id int) domain.WorkSpec {
	return domain.WorkSpec{
		WorkID: fmt.Sprintf("work-%d", id),
		Author: "Author",
		Title:  "Title",
		Source: domain.SourceSpec{Type: domain.SourceGutenberg, GutenbergID: id},
	}
}

// memoryCache is a map-backed TextCache for tests.
type memoryCache struct {
	entries map[string]string
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: map[string]string{}}
}

func (m *memoryCache) Get(_ context.Context, key string) (string, bool, error) {
	body, ok := m.entries[key]
	return body, ok, nil
}

func (m *memoryCache) Put(_ context.Context, key, body string) error {
	m.entries[key] = body
	return nil
}

func (m *memoryCache) Close() error { return nil }

func TestGutenbergSourceFallsThroughCandidates(t *testing.T) {
	t.Parallel()

	book := strings.Repeat("Call me Ishmael. ", 50)
	var requests []string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests = append(requests, r.URL.Path)
		switch r.URL.Path {
		case "/files/2701/2701-0.txt":
			_, _ = w.Write([]byte(book))
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	src := NewGutenbergSource(server.Client(), nil, nil)
	src.baseURL = server.URL

	got, err := src.Load(context.Background(), gutenbergWork(2701))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if got != book {
		t.Fatalf("unexpected body: %q", got[:40])
	}
	if len(requests) != 3 {
		t.Fatalf("expected 3 candidate requests, got %d: %v", len(requests), requests)
	}
}

func TestGutenbergSourceSkipsShortBodies(t *testing.T) {
	t.Parallel()

	book := strings.Repeat("A long enough body of text. ", 20)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "pg99.txt") {
			_, _ = w.Write([]byte("not found page")) // 200 but too short to be a book
			return
		}
		_, _ = w.Write([]byte(book))
	}))
	defer server.Close()

	src := NewGutenbergSource(server.Client(), nil, nil)
	src.baseURL = server.URL

	got, err := src.Load(context.Background(), gutenbergWork(99))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if got != book {
		t.Fatalf("short body was not skipped")
	}
}

func TestGutenbergSourceExhaustedSurfacesLastError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusGone)
	}))
	defer server.Close()

	src := NewGutenbergSource(server.Client(), nil, nil)
	src.baseURL = server.URL

	_, err := src.Load(context.Background(), gutenbergWork(1))
	if err == nil {
		t.Fatal("expected error after exhausting candidates")
	}
	if !strings.Contains(err.Error(), "410") {
		t.Fatalf("expected last underlying error, got: %v", err)
	}
}

func TestGutenbergSourceUsesCache(t *testing.T) {
	t.Parallel()

	book := strings.Repeat("Cached text body. ", 30)
	hits := 0

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		_, _ = w.Write([]byte(book))
	}))
	defer server.Close()

	cache := newMemoryCache()
	src := NewGutenbergSource(server.Client(), cache, nil)
	src.baseURL = server.URL

	ctx := context.Background()
	if _, err := src.Load(ctx, gutenbergWork(11)); err != nil {
		t.Fatalf("first Load error: %v", err)
	}
	if _, err := src.Load(ctx, gutenbergWork(11)); err != nil {
		t.Fatalf("second Load error: %v", err)
	}

	if hits != 1 {
		t.Fatalf("expected 1 upstream request, got %d", hits)
	}
	if _, ok := cache.entries["gutenberg-11"]; !ok {
		t.Fatalf("cache entry missing: %v", cache.entries)
	}
}
