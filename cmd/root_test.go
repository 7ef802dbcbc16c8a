package cmd

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/zhubert/newsdesk/internal/api"
	"github.com/zhubert/newsdesk/internal/config"
	"github.com/zhubert/newsdesk/internal/demo"
	"github.com/zhubert/newsdesk/internal/logger"
)

func TestDebugFlagDefaultTrue(t *testing.T) {
	flag := rootCmd.PersistentFlags().Lookup("debug")
	if flag == nil {
		t.Fatal("--debug flag not found")
	}
	if flag.DefValue != "true" {
		t.Errorf("--debug default = %q, want %q", flag.DefValue, "true")
	}
}

func TestQuietFlagExists(t *testing.T) {
	flag := rootCmd.PersistentFlags().Lookup("quiet")
	if flag == nil {
		t.Fatal("--quiet flag not found")
	}
	if flag.DefValue != "false" {
		t.Errorf("--quiet default = %q, want %q", flag.DefValue, "false")
	}
	if flag.Shorthand != "q" {
		t.Errorf("--quiet shorthand = %q, want %q", flag.Shorthand, "q")
	}
}

func TestInitConfig_QuietOverridesDebug(t *testing.T) {
	origDebug, origQuiet := debugMode, quietMode
	defer func() { debugMode, quietMode = origDebug, origQuiet }()

	debugMode = true
	quietMode = true

	// Should not panic - quiet should take precedence
	initConfig()
}

func TestVersionTemplate(t *testing.T) {
	origV, origC, origD := version, commit, date
	defer SetVersionInfo(origV, origC, origD)

	SetVersionInfo("1.2.3", "none", "unknown")
	if got := versionTemplate(); got != "newsdesk 1.2.3\n" {
		t.Errorf("versionTemplate() = %q", got)
	}

	SetVersionInfo("1.2.3", "abc123", "2025-08-27")
	got := versionTemplate()
	if !strings.Contains(got, "commit: abc123") || !strings.Contains(got, "built:  2025-08-27") {
		t.Errorf("versionTemplate() = %q, want commit and date", got)
	}
}

func TestSubcommandsRegistered(t *testing.T) {
	for _, name := range []string{"demo", "ask", "summary", "search", "news", "weeks", "config", "logs"} {
		t.Run(name, func(t *testing.T) {
			cmd, _, err := rootCmd.Find([]string{name})
			if err != nil || cmd == rootCmd {
				t.Errorf("subcommand %q not registered", name)
			}
		})
	}
}

// execute runs the root command with args against the demo backend and
// returns stdout.
func execute(t *testing.T, b *demo.Backend, args ...string) (string, error) {
	t.Helper()

	srv := httptest.NewServer(b.Handler())
	t.Cleanup(srv.Close)

	reset := func() {
		configPath, serverURL, logFilePath = "", "", ""
		logsClear = false
		askSession, searchWeek, searchLimit, newsWeek = "", api.WeekAll, 0, ""
		configForce = false
	}
	reset()
	t.Cleanup(reset)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	cfgFile := filepath.Join(t.TempDir(), "config.yaml")
	rootCmd.SetArgs(append([]string{"--config", cfgFile, "--server", srv.URL}, args...))
	err := rootCmd.Execute()
	return out.String(), err
}

func TestAskCommand(t *testing.T) {
	out, err := execute(t, demo.NewBackend(), "ask", "what", "happened?")
	if err != nil {
		t.Fatalf("ask error = %v", err)
	}
	if !strings.Contains(out, "Here is what I found") {
		t.Errorf("ask output = %q, want formatted reply", out)
	}
	if strings.Contains(out, "###") || strings.Contains(out, "**") {
		t.Errorf("ask output should be formatted, got %q", out)
	}
}

func TestAskCommand_ApplicationError(t *testing.T) {
	b := demo.NewBackend()
	b.OnChat = func(req api.ChatRequest) (*api.ChatResponse, int) {
		return &api.ChatResponse{Success: false, Error: "model unavailable"}, http.StatusOK
	}
	if _, err := execute(t, b, "ask", "hello"); err == nil {
		t.Fatal("expected an error for an unsuccessful chat")
	}
}

func TestSummaryCommand(t *testing.T) {
	out, err := execute(t, demo.NewBackend(), "summary")
	if err != nil {
		t.Fatalf("summary error = %v", err)
	}
	if !strings.Contains(out, "This week in AI") {
		t.Errorf("summary output = %q", out)
	}
}

func TestSearchCommand(t *testing.T) {
	out, err := execute(t, demo.NewBackend(), "search", "ai", "safety", "--limit", "5")
	if err != nil {
		t.Fatalf("search error = %v", err)
	}
	if !strings.HasPrefix(out, `Found `) || !strings.Contains(out, `for "ai safety"`) {
		t.Errorf("search output = %q, want stats line", out)
	}
	if !strings.Contains(out, "% match)") {
		t.Errorf("search output = %q, want match percentage", out)
	}
}

func TestSearchCommand_ServerTotal(t *testing.T) {
	b := demo.NewBackend()
	b.OnSearch = func(req api.SearchRequest) (*api.SearchResponse, int) {
		return &api.SearchResponse{
			Success:      true,
			Query:        "agents",
			Results:      []api.SearchResult{{Title: "Agents everywhere", Confidence: 0.5}},
			TotalResults: 42,
		}, http.StatusOK
	}
	out, err := execute(t, b, "search", "  agents")
	if err != nil {
		t.Fatalf("search error = %v", err)
	}
	if !strings.HasPrefix(out, "Found 42 articles for \"agents\"\n") {
		t.Errorf("search output = %q, want the server's total", out)
	}
}

func TestSearchCommand_NoResults(t *testing.T) {
	out, err := execute(t, demo.NewBackend(), "search", "zzzzqqq")
	if err != nil {
		t.Fatalf("search error = %v", err)
	}
	if want := "No articles found for \"zzzzqqq\"\n"; out != want {
		t.Errorf("search output = %q, want %q", out, want)
	}
}

func TestNewsCommand(t *testing.T) {
	out, err := execute(t, demo.NewBackend(), "news", "--week", demo.WeekPrevious)
	if err != nil {
		t.Fatalf("news error = %v", err)
	}
	if !strings.Contains(out, "EU publishes guidance") {
		t.Errorf("news output = %q", out)
	}
	if strings.Contains(out, "AI Safety Institute") {
		t.Errorf("news output should only list %s, got %q", demo.WeekPrevious, out)
	}
}

func TestNewsCommand_Empty(t *testing.T) {
	out, err := execute(t, demo.NewBackend(), "news", "--week", "1999-W01")
	if err != nil {
		t.Fatalf("news error = %v", err)
	}
	if out != "No articles found\n" {
		t.Errorf("news output = %q", out)
	}
}

func TestWeeksCommand(t *testing.T) {
	out, err := execute(t, demo.NewBackend(), "weeks")
	if err != nil {
		t.Fatalf("weeks error = %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 3 {
		t.Fatalf("weeks output has %d lines, want 3: %q", len(lines), out)
	}
	if !strings.HasPrefix(lines[0], api.WeekAll) || !strings.HasPrefix(lines[1], demo.WeekCurrent) {
		t.Errorf("weeks output = %q", out)
	}
}

func TestLoadConfig_RejectsBadServer(t *testing.T) {
	defer func() { configPath, serverURL = "", "" }()
	configPath = filepath.Join(t.TempDir(), "config.yaml")
	serverURL = "ftp://example.com"

	if _, err := loadConfig(); err == nil {
		t.Fatal("expected validation error for non-http server URL")
	}
}

func TestConfigInit(t *testing.T) {
	defer func() { configPath, configForce = "", false }()
	path := filepath.Join(t.TempDir(), "config.yaml")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	defer rootCmd.SetOut(nil)
	defer rootCmd.SetArgs(nil)

	rootCmd.SetArgs([]string{"--config", path, "config", "init"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("config init error = %v", err)
	}
	if !strings.Contains(out.String(), path) {
		t.Errorf("output = %q, want path", out.String())
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config file not written: %v", err)
	}
	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("config.Load() error = %v", err)
	}
	if cfg.GetServerURL() != config.DefaultServerURL {
		t.Errorf("server_url = %q, want default", cfg.GetServerURL())
	}

	rootCmd.SetArgs([]string{"--config", path, "config", "init"})
	if err := rootCmd.Execute(); err == nil {
		t.Error("expected error when config exists without --force")
	}

	rootCmd.SetArgs([]string{"--config", path, "config", "init", "--force"})
	if err := rootCmd.Execute(); err != nil {
		t.Errorf("config init --force error = %v", err)
	}
}

func TestLogsCommand(t *testing.T) {
	logger.Reset()
	t.Cleanup(logger.Reset)
	path := filepath.Join(t.TempDir(), "newsdesk.log")

	out, err := execute(t, demo.NewBackend(), "--log-file", path, "logs")
	if err != nil {
		t.Fatalf("logs error = %v", err)
	}
	if out != path+"\n" {
		t.Errorf("logs output = %q, want %q", out, path)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("--log-file should create the log: %v", err)
	}

	out, err = execute(t, demo.NewBackend(), "--log-file", path, "logs", "--clear")
	if err != nil {
		t.Fatalf("logs --clear error = %v", err)
	}
	if out != "Removed "+path+"\n" {
		t.Errorf("logs --clear output = %q", out)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("log file should be removed, stat err = %v", err)
	}
}
