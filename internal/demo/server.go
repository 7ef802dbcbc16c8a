// Package demo serves a canned news assistant backend.
//
// It answers the same endpoints as the real backend from fixed fixtures so
// the terminal client can be demonstrated, and tested, without one.
package demo

import (
	"context"
	"fmt"
	"math"
	"net"
	"net/http"
	"sort"
	"strings"
	"sync"
	"time"
	"unicode"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/zhubert/newsdesk/internal/api"
	"github.com/zhubert/newsdesk/internal/logger"
)

// Backend is an in-process stand-in for the news assistant backend.
type Backend struct {
	// Articles keyed by week tag.
	Articles map[string][]api.Article
	Summary  string
	// Delay is added before every reply so loading states are visible.
	Delay time.Duration

	// Hooks replace the canned behavior of single endpoints.
	OnChat    func(req api.ChatRequest) (*api.ChatResponse, int)
	OnSummary func() (*api.SummaryResponse, int)
	OnSearch  func(req api.SearchRequest) (*api.SearchResponse, int)
	OnNews    func(week string) (*api.NewsResponse, int)

	mu    sync.Mutex
	calls map[string]int
}

// NewBackend returns a backend loaded with the default fixtures.
func NewBackend() *Backend {
	return &Backend{
		Articles: DefaultArticles(),
		Summary:  DefaultSummary,
		calls:    make(map[string]int),
	}
}

// Calls returns how many requests hit path.
func (b *Backend) Calls(path string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.calls[path]
}

// Handler builds the echo router for the backend.
func (b *Backend) Handler() *echo.Echo {
	log := logger.ComponentLogger("demo")

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			log.Debug("request", "method", v.Method, "uri", v.URI, "status", v.Status, "requestID", c.Request().Header.Get(api.RequestIDHeader))
			return nil
		},
	}))
	e.Use(b.count, b.delay)

	e.POST(api.PathChat, b.chat)
	e.GET(api.PathSummary, b.summary)
	e.POST(api.PathSearch, b.search)
	e.GET(api.PathNews, b.news)
	e.GET(api.PathWeeks, b.weeks)
	return e
}

func (b *Backend) count(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		b.mu.Lock()
		if b.calls == nil {
			b.calls = make(map[string]int)
		}
		b.calls[c.Request().URL.Path]++
		b.mu.Unlock()
		return next(c)
	}
}

func (b *Backend) delay(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if b.Delay > 0 {
			select {
			case <-time.After(b.Delay):
			case <-c.Request().Context().Done():
				return c.Request().Context().Err()
			}
		}
		return next(c)
	}
}

// Serve listens on addr ("127.0.0.1:0" picks a free port) and serves until
// ctx is cancelled. It returns the base URL clients should use.
func (b *Backend) Serve(ctx context.Context, addr string) (string, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return "", fmt.Errorf("failed to listen on %s: %w", addr, err)
	}

	e := b.Handler()
	e.Listener = ln

	go func() {
		if err := e.Start(""); err != nil && err != http.ErrServerClosed {
			logger.Error("Demo backend stopped: %v", err)
		}
	}()
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = e.Shutdown(shutdownCtx)
	}()

	url := "http://" + ln.Addr().String()
	logger.Info("Demo backend listening on %s", url)
	return url, nil
}

func (b *Backend) chat(c echo.Context) error {
	var req api.ChatRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "invalid request", "success": false})
	}
	if b.OnChat != nil {
		resp, code := b.OnChat(req)
		return c.JSON(code, resp)
	}
	if strings.TrimSpace(req.Message) == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "No message provided"})
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.New().String()
	}
	return c.JSON(http.StatusOK, api.ChatResponse{
		Success:   true,
		Response:  b.reply(req.Message),
		SessionID: sessionID,
	})
}

func (b *Backend) reply(message string) string {
	const askPrefix = "Tell me more about this article: "
	if strings.HasPrefix(message, askPrefix) {
		title := strings.Trim(strings.TrimPrefix(message, askPrefix), `"`)
		for _, a := range b.allArticles() {
			if a.Title == title {
				return fmt.Sprintf("### %s\n\n%s\n\nRead more: [%s](%s)", a.Title, a.Summary, a.Title, a.Link)
			}
		}
		return fmt.Sprintf("I could not find **%s** in this week's articles.", title)
	}

	var sb strings.Builder
	sb.WriteString("### Here is what I found\n\n")
	for i, a := range b.latestArticles() {
		if i == 3 {
			break
		}
		fmt.Fprintf(&sb, "- **%s**: %s\n", a.Title, a.Summary)
	}
	sb.WriteString("\nAsk me about any of these for more detail.")
	return sb.String()
}

func (b *Backend) summary(c echo.Context) error {
	if b.OnSummary != nil {
		resp, code := b.OnSummary()
		return c.JSON(code, resp)
	}
	return c.JSON(http.StatusOK, api.SummaryResponse{Success: true, Summary: b.Summary})
}

func (b *Backend) search(c echo.Context) error {
	var req api.SearchRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "invalid request", "success": false})
	}
	if b.OnSearch != nil {
		resp, code := b.OnSearch(req)
		return c.JSON(code, resp)
	}

	query := strings.TrimSpace(req.Query)
	if query == "" {
		return c.JSON(http.StatusBadRequest, api.SearchResponse{Success: false, Error: "Query is required"})
	}
	limit := req.Limit
	if limit <= 0 {
		limit = 10
	}

	results := b.match(query, req.WeekFilter)
	if len(results) > limit {
		results = results[:limit]
	}
	return c.JSON(http.StatusOK, api.SearchResponse{
		Success:      true,
		Results:      results,
		Query:        query,
		WeekFilter:   req.WeekFilter,
		TotalResults: len(results),
	})
}

// match scores articles by the share of query words found in title or summary.
func (b *Backend) match(query, week string) []api.SearchResult {
	terms := strings.Fields(strings.ToLower(query))
	var results []api.SearchResult
	for _, a := range b.allArticles() {
		if week != "" && week != api.WeekAll && a.Week != week {
			continue
		}
		words := wordSet(a.Title + " " + a.Summary)
		hits := 0
		for _, t := range terms {
			if words[t] {
				hits++
			}
		}
		if hits == 0 {
			continue
		}
		conf := 0.5 + 0.45*float64(hits)/float64(len(terms))
		results = append(results, api.SearchResult{
			Title:      a.Title,
			Summary:    a.Summary,
			Link:       a.Link,
			Confidence: math.Round(conf*1000) / 1000,
		})
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Confidence > results[j].Confidence
	})
	return results
}

func wordSet(text string) map[string]bool {
	set := make(map[string]bool)
	for _, w := range strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	}) {
		set[w] = true
	}
	return set
}

func (b *Backend) news(c echo.Context) error {
	week := c.QueryParam("week")
	if b.OnNews != nil {
		resp, code := b.OnNews(week)
		return c.JSON(code, resp)
	}

	switch {
	case week == api.WeekAll:
		return c.JSON(http.StatusOK, api.NewsResponse{Articles: b.allArticles(), Week: api.WeekAll})
	case week == "":
		weeks := b.weekTags()
		if len(weeks) == 0 {
			return c.JSON(http.StatusOK, api.NewsResponse{Articles: []api.Article{}, Week: "Unknown"})
		}
		return c.JSON(http.StatusOK, api.NewsResponse{Articles: b.Articles[weeks[0]], Week: weeks[0]})
	default:
		articles := b.Articles[week]
		if articles == nil {
			articles = []api.Article{}
		}
		return c.JSON(http.StatusOK, api.NewsResponse{Articles: articles, Week: week})
	}
}

func (b *Backend) weeks(c echo.Context) error {
	weeks := []api.Week{{Value: api.WeekAll, Label: "All Articles"}}
	for _, w := range b.weekTags() {
		weeks = append(weeks, api.Week{Value: w, Label: "Week " + w})
	}
	return c.JSON(http.StatusOK, weeks)
}

// weekTags returns fixture weeks newest first.
func (b *Backend) weekTags() []string {
	tags := make([]string, 0, len(b.Articles))
	for w := range b.Articles {
		tags = append(tags, w)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(tags)))
	return tags
}

func (b *Backend) latestArticles() []api.Article {
	tags := b.weekTags()
	if len(tags) == 0 {
		return nil
	}
	return b.Articles[tags[0]]
}

func (b *Backend) allArticles() []api.Article {
	var all []api.Article
	for _, w := range b.weekTags() {
		all = append(all, b.Articles[w]...)
	}
	return all
}
