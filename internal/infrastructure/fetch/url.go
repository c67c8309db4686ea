package fetch

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"ProseCorpusBuilder/internal/domain"
	"ProseCorpusBuilder/internal/ports"
)

// URLSource fetches a work from an arbitrary URL. HTML payloads are reduced
// to their visible text; anything else passes through as-is.
type URLSource struct {
	client *http.Client
	cache  ports.TextCache
	logger *slog.Logger
}

var _ ports.TextSource = (*URLSource)(nil)

// NewURLSource wires an HTTP client and an optional cache.
func NewURLSource(client *http.Client, cache ports.TextCache, logger *slog.Logger) *URLSource {
	if client == nil {
		client = defaultClient()
	}
	return &URLSource{client: client, cache: cache, logger: logger}
}

// Name identifies the strategy inside the registry.
func (u *URLSource) Name() string {
	return string(domain.SourceURL)
}

// Load performs a single GET against the work's URL.
func (u *URLSource) Load(ctx context.Context, work domain.WorkSpec) (string, error) {
	key := cacheKey(work.Source.URL)
	if u.cache != nil {
		if body, ok, err := u.cache.Get(ctx, key); err != nil {
			u.warn("cache read failed", "key", key, "error", err)
		} else if ok {
			return body, nil
		}
	}

	body, contentType, err := fetchURL(ctx, u.client, work.Source.URL)
	if err != nil {
		return "", err
	}

	if isHTML(contentType, body) {
		body, err = extractHTMLText(body)
		if err != nil {
			return "", err
		}
	}

	if u.cache != nil {
		if err := u.cache.Put(ctx, key, body); err != nil {
			u.warn("cache write failed", "key", key, "error", err)
		}
	}
	return body, nil
}

func cacheKey(url string) string {
	sum := sha256.Sum256([]byte(url))
	return "url-" + hex.EncodeToString(sum[:8])
}

func isHTML(contentType, body string) bool {
	if strings.Contains(strings.ToLower(contentType), "html") {
		return true
	}
	head := strings.ToLower(strings.TrimSpace(body))
	return strings.HasPrefix(head, "<!doctype html") || strings.HasPrefix(head, "<html")
}

// extractHTMLText strips markup, scripts, and styles, keeping the visible
// body text with paragraph breaks preserved well enough for the normalizer.
func extractHTMLText(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", err
	}
	doc.Find("script, style, noscript").Remove()

	scope := doc.Find("body")
	if scope.Length() == 0 {
		scope = doc.Selection
	}

	var b strings.Builder
	scope.Find("p, h1, h2, h3, h4, h5, h6, li, blockquote, pre").Each(func(_ int, sel *goquery.Selection) {
		text := strings.TrimSpace(sel.Text())
		if text == "" {
			return
		}
		b.WriteString(text)
		b.WriteString("\n\n")
	})
	if b.Len() == 0 {
		return strings.TrimSpace(scope.Text()), nil
	}
	return strings.TrimSpace(b.String()), nil
}

func (u *URLSource) warn(msg string, args ...any) {
	if u.logger != nil {
		u.logger.Warn(msg, args...)
	}
}
