// Copyright (C) 2025 the travel-agency maintainers
// See root-dir/LICENSE for more information

package content

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Fetcher retrieves the raw content document.
type Fetcher interface {
	Fetch(ctx context.Context) ([]byte, error)
}

// FileFetcher reads the content document from the local filesystem.
type FileFetcher struct {
	Path string
}

func (f *FileFetcher) Fetch(ctx context.Context) ([]byte, error) {
	var span trace.Span
	_, span = tracer.Start(ctx, "FileFetcher.Fetch")
	defer span.End()

	data, err := os.ReadFile(f.Path)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("%w: read %s: %v", ErrTransport, f.Path, err)
	}
	return data, nil
}

// NewHTTPFetcher fetches the content document from a static resource URL.
func NewHTTPFetcher(url string) *HTTPFetcher {
	return &HTTPFetcher{
		url:    url,
		client: &http.Client{Timeout: 15 * time.Second},
	}
}

type HTTPFetcher struct {
	url    string
	client *http.Client
}

func (f *HTTPFetcher) Fetch(ctx context.Context) ([]byte, error) {
	var span trace.Span
	ctx, span = tracer.Start(ctx, "HTTPFetcher.Fetch")
	defer span.End()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		err := fmt.Errorf("%w: unexpected status %s", ErrTransport, resp.Status)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("%w: read body: %v", ErrTransport, err)
	}
	return body, nil
}
