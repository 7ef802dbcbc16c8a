package demo

import "github.com/zhubert/newsdesk/internal/api"

// Fixture weeks, newest first.
const (
	WeekCurrent  = "2025-W35"
	WeekPrevious = "2025-W34"
)

// DefaultArticles returns the canned article set keyed by week.
func DefaultArticles() map[string][]api.Article {
	return map[string][]api.Article{
		WeekCurrent: {
			{
				Title:   "AI Safety Institute publishes model evaluation framework",
				Summary: "The framework defines red-teaming and capability tests that frontier labs agreed to run before release.",
				Link:    "https://example.com/news/ai-safety-framework",
				Date:    "2025-08-27",
				Week:    WeekCurrent,
			},
			{
				Title:   "Open-weight model tops coding benchmark",
				Summary: "A 70B open-weight model matched proprietary systems on a popular code-generation benchmark.",
				Link:    "https://example.com/news/open-weight-coding",
				Date:    "2025-08-26",
				Week:    WeekCurrent,
			},
			{
				Title:   "Chipmaker announces inference accelerator",
				Summary: "The new accelerator targets low-latency serving of large language models in data centers.",
				Link:    "https://example.com/news/inference-accelerator",
				Date:    "2025-08-25",
				Week:    WeekCurrent,
			},
		},
		WeekPrevious: {
			{
				Title:   "EU publishes guidance for general-purpose AI models",
				Summary: "Providers of general-purpose models get a code of practice covering transparency and copyright.",
				Link:    "https://example.com/news/eu-gpai-guidance",
				Date:    "2025-08-20",
				Week:    WeekPrevious,
			},
			{
				Title:   "Robotics startup raises Series B for warehouse agents",
				Summary: "The company plans to scale deployments of language-driven picking robots.",
				Link:    "https://example.com/news/robotics-series-b",
				Week:    WeekPrevious,
			},
		},
	}
}

// DefaultSummary is the canned weekly summary.
const DefaultSummary = `### This week in AI

**Safety** took center stage as the AI Safety Institute published its evaluation framework.

- Open-weight models closed the gap on coding benchmarks
- New inference hardware targets LLM serving costs

Regulators continued to publish [guidance](https://example.com/news/eu-gpai-guidance) for model providers.`
