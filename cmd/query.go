package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zhubert/newsdesk/internal/api"
	"github.com/zhubert/newsdesk/internal/app"
	"github.com/zhubert/newsdesk/internal/markup"
	"github.com/zhubert/newsdesk/internal/session"
)

var (
	askSession  string
	searchWeek  string
	searchLimit int
	newsWeek    string
)

var askCmd = &cobra.Command{
	Use:   "ask <message>",
	Short: "Send one chat message and print the reply",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runAsk,
}

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print the weekly summary",
	Args:  cobra.NoArgs,
	RunE:  runSummary,
}

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search articles",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSearch,
}

var newsCmd = &cobra.Command{
	Use:   "news",
	Short: "List news articles for a week",
	Args:  cobra.NoArgs,
	RunE:  runNews,
}

var weeksCmd = &cobra.Command{
	Use:   "weeks",
	Short: "List the weeks the backend has articles for",
	Args:  cobra.NoArgs,
	RunE:  runWeeks,
}

func init() {
	askCmd.Flags().StringVar(&askSession, "session", "", "Continue an existing conversation")
	searchCmd.Flags().StringVar(&searchWeek, "week", api.WeekAll, "Week filter")
	searchCmd.Flags().IntVar(&searchLimit, "limit", 0, "Maximum results (default from config)")
	newsCmd.Flags().StringVar(&newsWeek, "week", "", "Week to list (default: latest)")

	rootCmd.AddCommand(askCmd, summaryCmd, searchCmd, newsCmd, weeksCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	sessionID := askSession
	if sessionID == "" {
		sessionID = session.NewID()
	}
	resp, err := newClient(cfg).Chat(cmd.Context(), api.ChatRequest{
		Message:   strings.Join(args, " "),
		SessionID: sessionID,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, markup.Format(resp.Response))
	if resp.SessionID != "" {
		fmt.Fprintf(cmd.ErrOrStderr(), "session: %s\n", resp.SessionID)
	}
	return nil
}

func runSummary(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	resp, err := newClient(cfg).Summary(cmd.Context())
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), strings.Join(app.SummaryParagraphs(resp.Summary), "\n\n"))
	return nil
}

func runSearch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	limit := searchLimit
	if limit <= 0 {
		limit = cfg.GetDefaultSearchLimit()
	}
	query := strings.Join(args, " ")
	resp, err := newClient(cfg).Search(cmd.Context(), api.SearchRequest{
		Query:      query,
		WeekFilter: searchWeek,
		Limit:      limit,
	})
	if err != nil {
		return err
	}

	if q := markup.Sanitize(resp.Query); q != "" {
		query = q
	}
	out := cmd.OutOrStdout()
	if len(resp.Results) == 0 {
		fmt.Fprintf(out, "No articles found for %q\n", query)
		return nil
	}
	fmt.Fprintf(out, "Found %d articles for %q\n", app.TotalResults(resp), query)
	for _, r := range resp.Results {
		fmt.Fprintln(out)
		fmt.Fprintf(out, "%s (%d%% match)\n", markup.Sanitize(r.Title), app.ConfidencePercent(r.Confidence))
		printDetail(out, "", r.Summary, r.Link)
	}
	return nil
}

func runNews(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	resp, err := newClient(cfg).News(cmd.Context(), newsWeek)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(resp.Articles) == 0 {
		fmt.Fprintln(out, app.NewsEmptyText)
		return nil
	}
	for i, a := range resp.Articles {
		if i > 0 {
			fmt.Fprintln(out)
		}
		fmt.Fprintln(out, markup.Sanitize(a.Title))
		printDetail(out, a.Date, a.Summary, a.Link)
	}
	return nil
}

func runWeeks(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	weeks, err := newClient(cfg).Weeks(cmd.Context())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, w := range weeks {
		label := w.Label
		if label == "" {
			label = w.Value
		}
		fmt.Fprintf(out, "%-12s %s\n", w.Value, markup.Sanitize(label))
	}
	return nil
}

// printDetail writes the indented lines under a card title, skipping empties.
func printDetail(out io.Writer, lines ...string) {
	for _, l := range lines {
		if l = strings.TrimSpace(markup.Sanitize(l)); l != "" {
			fmt.Fprintf(out, "  %s\n", l)
		}
	}
}
