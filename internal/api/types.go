package api

// WeekAll is the pseudo-week meaning "no week filter".
const WeekAll = "all"

// ChatRequest is the body of POST /api/chat.
type ChatRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id"`
}

// ChatResponse is the reply to POST /api/chat.
type ChatResponse struct {
	Success   bool   `json:"success"`
	Response  string `json:"response"`
	SessionID string `json:"session_id"`
	Error     string `json:"error,omitempty"`
}

// SummaryResponse is the reply to GET /api/summary.
type SummaryResponse struct {
	Success bool   `json:"success"`
	Summary string `json:"summary"`
	Error   string `json:"error,omitempty"`
}

// SearchRequest is the body of POST /api/search.
type SearchRequest struct {
	Query      string `json:"query"`
	WeekFilter string `json:"week_filter"`
	Limit      int    `json:"limit"`
}

// SearchResult is one article matched by a search.
type SearchResult struct {
	Title      string  `json:"title"`
	Summary    string  `json:"summary"`
	Link       string  `json:"link"`
	Confidence float64 `json:"confidence"` // 0..1
}

// SearchResponse is the reply to POST /api/search.
type SearchResponse struct {
	Success      bool           `json:"success"`
	Results      []SearchResult `json:"results"`
	Query        string         `json:"query"`
	WeekFilter   string         `json:"week_filter,omitempty"`
	TotalResults int            `json:"total_results"`
	Error        string         `json:"error,omitempty"`
}

// Article is one news item as served by GET /api/news.
type Article struct {
	Title   string `json:"title"`
	Summary string `json:"summary"`
	Link    string `json:"link"`
	Date    string `json:"date,omitempty"`
	Week    string `json:"week,omitempty"`
}

// NewsResponse is the reply to GET /api/news. It carries no success flag.
type NewsResponse struct {
	Articles []Article `json:"articles"`
	Week     string    `json:"week,omitempty"`
}

// Week is one entry of GET /api/weeks.
type Week struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// envelope captures the failure fields shared by most responses.
type envelope struct {
	Success *bool  `json:"success"`
	Error   string `json:"error"`
}
