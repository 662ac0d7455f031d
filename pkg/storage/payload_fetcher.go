package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// PayloadFetcher retrieves a knowledge payload by path. The payload is a JSON
// object of shape {"content": ["...", ...]}; only the strings are returned.
type PayloadFetcher interface {
	Fetch(ctx context.Context, path string) ([]string, error)
}

type httpPayloadFetcher struct {
	baseURL string
	client  *http.Client
}

// NewHTTPPayloadFetcher fetches payloads from an HTTP blob store. Paths like
// "rag/active/infra_policy.json" are resolved against the base URL.
func NewHTTPPayloadFetcher(baseURL string) PayloadFetcher {
	return &httpPayloadFetcher{
		baseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

type payloadDocument struct {
	Content []string `json:"content"`
}

func (f *httpPayloadFetcher) Fetch(ctx context.Context, path string) ([]string, error) {
	// Escape per segment so the path separators survive.
	segments := strings.Split(strings.TrimLeft(path, "/"), "/")
	for i, segment := range segments {
		segments[i] = url.PathEscape(segment)
	}
	target := f.baseURL + "/" + strings.Join(segments, "/")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, err
	}

	res, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}

	if res.StatusCode == http.StatusForbidden || res.StatusCode == http.StatusUnauthorized {
		return nil, fmt.Errorf("payload fetch %s: permission denied (status %d)", path, res.StatusCode)
	}
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("payload fetch %s: status %d", path, res.StatusCode)
	}

	var doc payloadDocument
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("payload fetch %s: malformed body: %w", path, err)
	}

	return doc.Content, nil
}
