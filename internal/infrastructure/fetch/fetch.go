// Package fetch implements the text source strategies: Project Gutenberg
// mirrors, arbitrary URLs, and local files.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

const userAgent = "ProseCorpusBuilder/1.0 (speed-reading drill corpus builder)"

// defaultClient matches the upstream timeout budget for a single candidate.
func defaultClient() *http.Client {
	return &http.Client{Timeout: 60 * time.Second}
}

func fetchURL(ctx context.Context, client *http.Client, pageURL string) (body, contentType string, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := client.Do(req)
	if err != nil {
		return "", "", fmt.Errorf("request text: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", "", fmt.Errorf("%s returned %s", pageURL, resp.Status)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", "", fmt.Errorf("read body: %w", err)
	}
	return string(raw), resp.Header.Get("Content-Type"), nil
}
