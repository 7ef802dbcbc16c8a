package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zhubert/newsdesk/internal/demo"
	"github.com/zhubert/newsdesk/internal/logger"
)

var demoAddr string

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the TUI against a built-in demo backend",
	Long: `Starts a canned news backend on a loopback port and runs the TUI
against it. Useful for trying newsdesk without a running server.`,
	Args: cobra.NoArgs,
	RunE: runDemo,
}

func init() {
	demoCmd.Flags().StringVar(&demoAddr, "addr", "127.0.0.1:0", "Listen address for the demo backend")
	rootCmd.AddCommand(demoCmd)
}

func runDemo(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	url, err := demo.NewBackend().Serve(ctx, demoAddr)
	if err != nil {
		return fmt.Errorf("error starting demo backend: %w", err)
	}
	logger.Info("Running TUI against demo backend at %s", url)

	cfg.SetServerURL(url)
	return runApp(cfg, newClient(cfg))
}
