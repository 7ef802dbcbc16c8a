package cmd

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/zhubert/newsdesk/internal/api"
	"github.com/zhubert/newsdesk/internal/app"
	"github.com/zhubert/newsdesk/internal/config"
	"github.com/zhubert/newsdesk/internal/logger"
)

var (
	debugMode             bool
	quietMode             bool
	configPath            string
	serverURL             string
	logFilePath           string
	version, commit, date string
)

// SetVersionInfo sets version information from ldflags
func SetVersionInfo(v, c, d string) {
	version, commit, date = v, c, d
}

var rootCmd = &cobra.Command{
	Use:   "newsdesk",
	Short: "Terminal client for the AI news assistant",
	Long: `newsdesk is a terminal client for the AI news assistant backend.
It has four tabs: chat with the assistant, the weekly summary, semantic
article search, and the news feed browsable by week.`,
	RunE:          runTUI,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", true, "Enable debug logging (on by default)")
	rootCmd.PersistentFlags().BoolVarP(&quietMode, "quiet", "q", false, "Reduce logging to info level only")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ~/.config/newsdesk/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "Backend base URL (overrides server_url)")
	rootCmd.PersistentFlags().StringVar(&logFilePath, "log-file", "", "Debug log file (default "+logger.DefaultLogPath+")")
}

func initConfig() {
	if quietMode {
		logger.SetDebug(false)
	} else if debugMode {
		logger.SetDebug(true)
	}
	if logFilePath != "" {
		if err := logger.Init(logFilePath); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		}
	}
}

// Execute runs the root command
func Execute() error {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(versionTemplate())
	return rootCmd.Execute()
}

func versionTemplate() string {
	if commit != "none" && commit != "" {
		return fmt.Sprintf("newsdesk %s\n  commit: %s\n  built:  %s\n", version, commit, date)
	}
	return fmt.Sprintf("newsdesk %s\n", version)
}

// loadConfig reads the config file and applies the --server override.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}
	if serverURL != "" {
		cfg.SetServerURL(serverURL)
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

func newClient(cfg *config.Config) *api.HTTPClient {
	return api.New(cfg.GetServerURL(), cfg.GetRequestTimeout())
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	return runApp(cfg, newClient(cfg))
}

func runApp(cfg *config.Config, client api.Client) error {
	// Ensure logger is closed on exit
	defer logger.Close()

	m := app.New(cfg, client, version)
	defer m.Close()
	p := tea.NewProgram(m)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running app: %w", err)
	}
	return nil
}
