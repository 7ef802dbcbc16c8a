package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zhubert/newsdesk/internal/logger"
)

var logsClear bool

var logsCmd = &cobra.Command{
	Use:   "logs",
	Short: "Print or remove the debug log file",
	Long: `Print the location of the debug log file.

With --clear the file is removed instead. Use --log-file to point at a
log other than the default.`,
	Args: cobra.NoArgs,
	RunE: runLogs,
}

func init() {
	logsCmd.Flags().BoolVar(&logsClear, "clear", false, "Remove the log file")
	rootCmd.AddCommand(logsCmd)
}

func runLogs(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	if !logsClear {
		fmt.Fprintln(out, logger.Path())
		return nil
	}

	removed, err := logger.ClearLogs()
	if err != nil {
		return fmt.Errorf("failed to clear logs: %w", err)
	}
	if removed == 0 {
		fmt.Fprintln(out, "No log file to remove")
		return nil
	}
	fmt.Fprintf(out, "Removed %s\n", logger.Path())
	return nil
}
