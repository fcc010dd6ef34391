package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

// Source fetches the default (non-edited) dataset document. It is consulted
// only when no local snapshot exists.
type Source interface {
	// Fetch returns the raw JSON document. Failures must be wrapped in a
	// *LoadError so callers can surface them uniformly.
	Fetch(ctx context.Context) ([]byte, error)
}

// FileSource reads the dataset from a file on disk (the deployed
// data/data.json of the static site).
type FileSource struct {
	Path string
}

func (s FileSource) Fetch(ctx context.Context) ([]byte, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, &LoadError{Source: "file", Reason: "cannot read " + s.Path, Err: err}
	}
	return data, nil
}

// DefaultFetchTimeout bounds the dataset fetch; an unbounded fetch against a
// slow host would wedge the load cycle.
const DefaultFetchTimeout = 10 * time.Second

// HTTPSource fetches the dataset over HTTP with cache-bypassing semantics,
// so that admin edits pushed to shared hosting are not masked by stale
// caches.
type HTTPSource struct {
	URL     string
	Timeout time.Duration
	Client  *http.Client
}

func (s HTTPSource) Fetch(ctx context.Context) ([]byte, error) {
	timeout := s.Timeout
	if timeout <= 0 {
		timeout = DefaultFetchTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	// Cache-bust the URL the same way the site appends a timestamp param.
	bustedURL := s.URL
	sep := "?"
	for _, c := range s.URL {
		if c == '?' {
			sep = "&"
			break
		}
	}
	bustedURL += fmt.Sprintf("%st=%d", sep, time.Now().UnixNano())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, bustedURL, nil)
	if err != nil {
		return nil, &LoadError{Source: "network", Reason: "bad dataset URL", Err: err}
	}
	req.Header.Set("Cache-Control", "no-store")
	req.Header.Set("Pragma", "no-cache")

	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, &LoadError{Source: "network", Reason: "fetch timed out", Timeout: true, Err: err}
		}
		return nil, &LoadError{Source: "network", Reason: "fetch failed", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &LoadError{Source: "network", Reason: fmt.Sprintf("unexpected status %d", resp.StatusCode)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, &LoadError{Source: "network", Reason: "fetch timed out", Timeout: true, Err: err}
		}
		return nil, &LoadError{Source: "network", Reason: "reading response body", Err: err}
	}
	return body, nil
}
