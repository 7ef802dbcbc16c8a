package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/zhubert/newsdesk/internal/api"
	"github.com/zhubert/newsdesk/internal/demo"
	pkgerrors "github.com/zhubert/newsdesk/internal/errors"
)

// newDemoClient starts the canned backend and returns a client for it.
func newDemoClient(t *testing.T, b *demo.Backend) *api.HTTPClient {
	t.Helper()
	srv := httptest.NewServer(b.Handler())
	t.Cleanup(srv.Close)
	return api.NewWithHTTPClient(srv.URL, srv.Client(), 0)
}

// newStubClient serves a fixed status and body for every request.
func newStubClient(t *testing.T, status int, body string, seen *http.Request) *api.HTTPClient {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if seen != nil {
			*seen = *r.Clone(context.Background())
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return api.NewWithHTTPClient(srv.URL, srv.Client(), 0)
}

func TestChat_EchoesSession(t *testing.T) {
	c := newDemoClient(t, demo.NewBackend())

	resp, err := c.Chat(context.Background(), api.ChatRequest{Message: "what's new?", SessionID: "session_abc_1"})
	if err != nil {
		t.Fatalf("Chat() error = %v", err)
	}
	if resp.SessionID != "session_abc_1" {
		t.Errorf("session = %q, want echo of request", resp.SessionID)
	}
	if !strings.Contains(resp.Response, "Here is what I found") {
		t.Errorf("unexpected reply %q", resp.Response)
	}
}

func TestChat_SendsHeadersAndBody(t *testing.T) {
	var seen http.Request
	var body api.ChatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = *r.Clone(context.Background())
		_ = json.NewDecoder(r.Body).Decode(&body)
		_, _ = w.Write([]byte(`{"success":true,"response":"ok","session_id":"s"}`))
	}))
	defer srv.Close()

	c := api.NewWithHTTPClient(srv.URL+"/", srv.Client(), 0)
	if _, err := c.Chat(context.Background(), api.ChatRequest{Message: "hi", SessionID: "s"}); err != nil {
		t.Fatalf("Chat() error = %v", err)
	}

	if seen.Method != http.MethodPost || seen.URL.Path != api.PathChat {
		t.Errorf("request = %s %s", seen.Method, seen.URL.Path)
	}
	if ct := seen.Header.Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}
	if seen.Header.Get(api.RequestIDHeader) == "" {
		t.Error("missing request id header")
	}
	if body.Message != "hi" || body.SessionID != "s" {
		t.Errorf("body = %+v", body)
	}
}

func TestSearch_WireFormat(t *testing.T) {
	var body map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&body)
		_, _ = w.Write([]byte(`{"success":true,"query":"ai safety","total_results":1,
			"results":[{"title":"T","summary":"S","link":"L","confidence":0.87}]}`))
	}))
	defer srv.Close()

	c := api.NewWithHTTPClient(srv.URL, srv.Client(), 0)
	resp, err := c.Search(context.Background(), api.SearchRequest{Query: "ai safety", WeekFilter: "all", Limit: 10})
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}

	for _, key := range []string{"query", "week_filter", "limit"} {
		if _, ok := body[key]; !ok {
			t.Errorf("request body missing %q: %v", key, body)
		}
	}
	if resp.TotalResults != 1 || len(resp.Results) != 1 || resp.Results[0].Confidence != 0.87 {
		t.Errorf("response = %+v", resp)
	}
}

func TestNews_WeekQuery(t *testing.T) {
	tests := []struct {
		name      string
		week      string
		wantQuery string
	}{
		{"all sends no filter", api.WeekAll, ""},
		{"empty sends no filter", "", ""},
		{"specific week", "2025-W35", "week=2025-W35"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var seen http.Request
			c := newStubClient(t, http.StatusOK, `{"articles":[]}`, &seen)
			if _, err := c.News(context.Background(), tt.week); err != nil {
				t.Fatalf("News() error = %v", err)
			}
			if seen.URL.RawQuery != tt.wantQuery {
				t.Errorf("query = %q, want %q", seen.URL.RawQuery, tt.wantQuery)
			}
		})
	}
}

func TestNews_DemoBackend(t *testing.T) {
	c := newDemoClient(t, demo.NewBackend())

	resp, err := c.News(context.Background(), demo.WeekPrevious)
	if err != nil {
		t.Fatalf("News() error = %v", err)
	}
	if len(resp.Articles) != 2 || resp.Week != demo.WeekPrevious {
		t.Errorf("response = %+v", resp)
	}

	resp, err = c.News(context.Background(), "1999-W01")
	if err != nil {
		t.Fatalf("News() error = %v", err)
	}
	if len(resp.Articles) != 0 {
		t.Errorf("unknown week should have no articles, got %d", len(resp.Articles))
	}
}

func TestWeeks(t *testing.T) {
	c := newDemoClient(t, demo.NewBackend())

	weeks, err := c.Weeks(context.Background())
	if err != nil {
		t.Fatalf("Weeks() error = %v", err)
	}
	if len(weeks) != 3 {
		t.Fatalf("got %d weeks, want 3", len(weeks))
	}
	if weeks[0].Value != api.WeekAll || weeks[1].Value != demo.WeekCurrent {
		t.Errorf("weeks = %+v, want all then newest first", weeks)
	}
}

func TestSummary(t *testing.T) {
	c := newDemoClient(t, demo.NewBackend())

	resp, err := c.Summary(context.Background())
	if err != nil {
		t.Fatalf("Summary() error = %v", err)
	}
	if resp.Summary != demo.DefaultSummary {
		t.Errorf("summary = %q", resp.Summary)
	}
}

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantKind   pkgerrors.Kind
		wantServer string
	}{
		{"success false with 200", http.StatusOK, `{"success":false,"error":"index offline"}`, pkgerrors.KindApplication, "index offline"},
		{"success false with 400", http.StatusBadRequest, `{"success":false,"error":"Query is required"}`, pkgerrors.KindApplication, "Query is required"},
		{"success false without message", http.StatusInternalServerError, `{"success":false}`, pkgerrors.KindApplication, ""},
		{"non-2xx without envelope", http.StatusBadRequest, `{"error":"No message provided"}`, pkgerrors.KindTransport, ""},
		{"non-2xx html", http.StatusBadGateway, `<html>bad gateway</html>`, pkgerrors.KindTransport, ""},
		{"malformed json", http.StatusOK, `{"success":tru`, pkgerrors.KindTransport, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newStubClient(t, tt.status, tt.body, nil)
			_, err := c.Search(context.Background(), api.SearchRequest{Query: "q", WeekFilter: "all", Limit: 5})
			if err == nil {
				t.Fatal("expected error")
			}
			if !pkgerrors.Is(err, tt.wantKind) {
				t.Errorf("kind = %v, want %v (err: %v)", pkgerrors.GetKind(err), tt.wantKind, err)
			}
			if got := pkgerrors.ServerMessage(err); got != tt.wantServer {
				t.Errorf("ServerMessage() = %q, want %q", got, tt.wantServer)
			}
		})
	}
}

func TestTransportFailure_ServerDown(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := api.New(url, 0)
	_, err := c.Summary(context.Background())
	if !pkgerrors.Is(err, pkgerrors.KindTransport) {
		t.Errorf("kind = %v, want transport (err: %v)", pkgerrors.GetKind(err), err)
	}
}

func TestTimeout(t *testing.T) {
	b := demo.NewBackend()
	b.Delay = 500 * time.Millisecond
	srv := httptest.NewServer(b.Handler())
	defer srv.Close()

	c := api.NewWithHTTPClient(srv.URL, srv.Client(), 20*time.Millisecond)
	_, err := c.Summary(context.Background())
	if !pkgerrors.Is(err, pkgerrors.KindTimeout) {
		t.Errorf("kind = %v, want timeout (err: %v)", pkgerrors.GetKind(err), err)
	}
}

func TestContextCancel(t *testing.T) {
	b := demo.NewBackend()
	b.Delay = time.Second
	c := newDemoClient(t, b)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := c.Weeks(ctx); err == nil {
		t.Error("expected error for cancelled context")
	}
}
