package cli

import (
	"context"
	"fmt"

	"github.com/Troyanovsky/ai-task-assistant-sub000/internal/config"
	"github.com/Troyanovsky/ai-task-assistant-sub000/internal/db"
	"github.com/Troyanovsky/ai-task-assistant-sub000/internal/logger"
	"github.com/Troyanovsky/ai-task-assistant-sub000/internal/notify"
	"github.com/Troyanovsky/ai-task-assistant-sub000/server"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the local API server with live reminders",
	Long: `Start the local HTTP API. While the server runs, persisted reminders
are armed and fire at their scheduled times.`,
	RunE: runServe,
}

var servePort string

func init() {
	serveCmd.Flags().StringVar(&servePort, "port", "", "Port to listen on")
}

func runServe(cmd *cobra.Command, args []string) error {
	dbConn, err := db.OpenDefault()
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		_ = dbConn.Close()
		logger.Info("Database closed")
	}()

	cfg, err := config.Load()
	if err != nil {
		cfg = config.DefaultConfig()
	}

	port := cfg.Port
	if servePort != "" {
		port = servePort
	}

	scheduler := notify.NewScheduler(dbConn, notify.NewConsolePresenter())
	defer scheduler.Close()

	// Re-derive timers from persisted state; they do not survive restart.
	if err := scheduler.LoadScheduled(context.Background(), dbConn); err != nil {
		logger.Warn("Could not load persisted reminders", logger.F("error", err))
	}

	srv := server.New(dbConn, scheduler, cfg)

	fmt.Printf("Assistant API listening on :%s\n", port)
	if err := srv.Start(":" + port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}
