package cli

import (
	"fmt"

	"github.com/Troyanovsky/ai-task-assistant-sub000/internal/config"
	"github.com/Troyanovsky/ai-task-assistant-sub000/internal/logger"
	"github.com/spf13/cobra"
)

var (
	logLevel   string
	logFile    string
	logConsole bool
)

var rootCmd = &cobra.Command{
	Use:   "assistant",
	Short: "Personal task assistant with day planning",
	Long: `A personal task and project manager with an embedded SQLite store,
a working-hours day planner, and task reminders.

Run 'assistant plan' to schedule today's tasks, or 'assistant serve'
to start the local API with live reminders.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			cfg = config.DefaultConfig()
		}

		// Override with CLI flags if provided
		if cmd.Flags().Changed("log-level") {
			cfg.LogLevel = logLevel
		}
		if cmd.Flags().Changed("log-file") {
			cfg.LogFile = logFile
		}
		if cmd.Flags().Changed("log-console") {
			cfg.LogConsole = logConsole
		}

		logConfig := logger.Config{
			Level:    logger.ParseLevel(cfg.LogLevel),
			FilePath: cfg.LogFile,
			MaxSize:  10 * 1024 * 1024, // 10MB
			Console:  cfg.LogConsole,
		}

		if err := logger.Init(logConfig); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		logger.Info("Assistant started", logger.F("command", cmd.Name()))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Info("Assistant exiting", logger.F("command", cmd.Name()))
		logger.Close()
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (DEBUG, INFO, WARN, ERROR)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Path to log file")
	rootCmd.PersistentFlags().BoolVar(&logConsole, "log-console", false, "Enable console logging")

	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(doneCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(projectCmd)
	rootCmd.AddCommand(remindCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(rescheduleCmd)
	rootCmd.AddCommand(serveCmd)
}
