// Package api is the HTTP client for the news assistant backend.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	pkgerrors "github.com/zhubert/newsdesk/internal/errors"
	"github.com/zhubert/newsdesk/internal/logger"
)

// Endpoint paths
const (
	PathChat    = "/api/chat"
	PathSummary = "/api/summary"
	PathSearch  = "/api/search"
	PathNews    = "/api/news"
	PathWeeks   = "/api/weeks"
)

// RequestIDHeader carries a per-request correlation id.
const RequestIDHeader = "X-Request-ID"

// Client is the set of backend calls the controller makes.
type Client interface {
	Chat(ctx context.Context, req ChatRequest) (*ChatResponse, error)
	Summary(ctx context.Context) (*SummaryResponse, error)
	Search(ctx context.Context, req SearchRequest) (*SearchResponse, error)
	News(ctx context.Context, week string) (*NewsResponse, error)
	Weeks(ctx context.Context) ([]Week, error)
}

// HTTPClient implements Client over HTTP+JSON.
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration // 0 = no deadline
	log        *slog.Logger
}

var _ Client = (*HTTPClient)(nil)

// New creates a client for the backend at baseURL. A zero timeout means
// requests wait until the backend answers or the context is cancelled.
func New(baseURL string, timeout time.Duration) *HTTPClient {
	return NewWithHTTPClient(baseURL, &http.Client{}, timeout)
}

// NewWithHTTPClient creates a client with a custom HTTP client (for testing).
func NewWithHTTPClient(baseURL string, hc *http.Client, timeout time.Duration) *HTTPClient {
	if hc == nil {
		hc = &http.Client{}
	}
	return &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: hc,
		timeout:    timeout,
		log:        logger.ComponentLogger("api"),
	}
}

// BaseURL returns the backend root the client talks to.
func (c *HTTPClient) BaseURL() string {
	return c.baseURL
}

// Chat sends one chat turn.
func (c *HTTPClient) Chat(ctx context.Context, req ChatRequest) (*ChatResponse, error) {
	var resp ChatResponse
	if err := c.do(ctx, http.MethodPost, PathChat, req, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, pkgerrors.ApplicationFailed(PathChat, resp.Error)
	}
	return &resp, nil
}

// Summary asks the backend to generate the weekly summary.
func (c *HTTPClient) Summary(ctx context.Context) (*SummaryResponse, error) {
	var resp SummaryResponse
	if err := c.do(ctx, http.MethodGet, PathSummary, nil, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, pkgerrors.ApplicationFailed(PathSummary, resp.Error)
	}
	return &resp, nil
}

// Search runs a semantic search over the article store.
func (c *HTTPClient) Search(ctx context.Context, req SearchRequest) (*SearchResponse, error) {
	var resp SearchResponse
	if err := c.do(ctx, http.MethodPost, PathSearch, req, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, pkgerrors.ApplicationFailed(PathSearch, resp.Error)
	}
	return &resp, nil
}

// News loads the articles for week. An empty week or WeekAll sends no filter.
func (c *HTTPClient) News(ctx context.Context, week string) (*NewsResponse, error) {
	path := PathNews
	if week != "" && week != WeekAll {
		path += "?week=" + url.QueryEscape(week)
	}
	var resp NewsResponse
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Weeks lists the weeks the backend has articles for.
func (c *HTTPClient) Weeks(ctx context.Context) ([]Week, error) {
	var weeks []Week
	if err := c.do(ctx, http.MethodGet, PathWeeks, nil, &weeks); err != nil {
		return nil, err
	}
	return weeks, nil
}

// do performs one request and decodes the JSON reply into out.
func (c *HTTPClient) do(ctx context.Context, method, path string, body, out any) error {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	endpoint := path
	if i := strings.IndexByte(endpoint, '?'); i >= 0 {
		endpoint = endpoint[:i]
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return pkgerrors.E(pkgerrors.Op("api.Do"), pkgerrors.KindInvalid, "failed to encode request", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return pkgerrors.TransportFailed(endpoint, err)
	}
	requestID := uuid.New().String()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, requestID)

	log := c.log.With("requestID", requestID, "method", method, "endpoint", endpoint)
	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Warn("request failed", "error", err)
		if errors.Is(err, context.DeadlineExceeded) {
			return pkgerrors.E(pkgerrors.Op("api.Do"), pkgerrors.KindTimeout, fmt.Sprintf("request to %s timed out", endpoint), err)
		}
		return pkgerrors.TransportFailed(endpoint, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Warn("failed to read response", "error", err)
		return pkgerrors.TransportFailed(endpoint, err)
	}
	log.Debug("response received", "status", resp.StatusCode, "bytes", len(data), "duration", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var env envelope
		if json.Unmarshal(data, &env) == nil && env.Success != nil && !*env.Success {
			return pkgerrors.ApplicationFailed(endpoint, env.Error)
		}
		return pkgerrors.TransportFailed(endpoint, fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	if err := json.Unmarshal(data, out); err != nil {
		log.Warn("malformed response", "error", err)
		return pkgerrors.TransportFailed(endpoint, fmt.Errorf("malformed response: %w", err))
	}
	return nil
}
