package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Troyanovsky/ai-task-assistant-sub000/internal/db"
	"github.com/Troyanovsky/ai-task-assistant-sub000/internal/model"
	"github.com/Troyanovsky/ai-task-assistant-sub000/internal/timeutil"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var remindCmd = &cobra.Command{
	Use:   "remind",
	Short: "Manage task reminders",
	Long: `Attach reminders to tasks. Reminders fire while 'assistant serve'
is running.`,
}

var remindAddCmd = &cobra.Command{
	Use:   "add [task-id] [time]",
	Short: "Add a reminder to a task",
	Long: `Add a reminder that fires at the given time.

Examples:
  assistant remind add abc123 "2026-09-01 14:30"
  assistant remind add abc123 2026-09-01T14:30:00+02:00 --message "Prep the call"`,
	Args: cobra.ExactArgs(2),
	RunE: runRemindAdd,
}

var remindListCmd = &cobra.Command{
	Use:     "list [task-id]",
	Aliases: []string{"ls"},
	Short:   "List reminders for a task",
	Args:    cobra.ExactArgs(1),
	RunE:    runRemindList,
}

var remindDeleteCmd = &cobra.Command{
	Use:     "delete [reminder-id]",
	Aliases: []string{"rm"},
	Short:   "Delete a reminder",
	Args:    cobra.ExactArgs(1),
	RunE:    runRemindDelete,
}

var remindMessage string

func init() {
	remindAddCmd.Flags().StringVarP(&remindMessage, "message", "m", "", "Reminder message")

	remindCmd.AddCommand(remindAddCmd)
	remindCmd.AddCommand(remindListCmd)
	remindCmd.AddCommand(remindDeleteCmd)
}

func runRemindAdd(cmd *cobra.Command, args []string) error {
	dbConn, err := db.OpenDefault()
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer dbConn.Close()

	ctx := context.Background()
	task, err := findTask(ctx, dbConn, args[0])
	if err != nil {
		return err
	}

	at, err := timeutil.NormalizeDate(args[1])
	if err != nil {
		return fmt.Errorf("invalid reminder time: %w", err)
	}
	if !at.After(time.Now()) {
		return fmt.Errorf("reminder time %s is in the past", at.Format(time.RFC3339))
	}

	notification := model.NewNotification(uuid.New().String(), task.ID, at)
	notification.Message = remindMessage

	if err := dbConn.CreateNotification(ctx, notification); err != nil {
		return fmt.Errorf("failed to create reminder: %w", err)
	}

	fmt.Printf("⏰ Reminder for \"%s\" at %s\n", task.Name, at.Format("Jan 2 15:04"))
	return nil
}

func runRemindList(cmd *cobra.Command, args []string) error {
	dbConn, err := db.OpenDefault()
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer dbConn.Close()

	ctx := context.Background()
	task, err := findTask(ctx, dbConn, args[0])
	if err != nil {
		return err
	}

	notifications, err := dbConn.GetNotificationsByTask(ctx, task.ID)
	if err != nil {
		return fmt.Errorf("failed to list reminders: %w", err)
	}

	if len(notifications) == 0 {
		fmt.Printf("No reminders for \"%s\".\n", task.Name)
		return nil
	}

	fmt.Printf("\n⏰ Reminders for \"%s\"\n", task.Name)
	fmt.Println(strings.Repeat("─", 56))
	for _, n := range notifications {
		shortID := n.ID
		if len(shortID) > 8 {
			shortID = shortID[:8]
		}
		fmt.Printf("  %-8s  %-20s  %s\n", shortID, n.Time.Format("Jan 2 2006 15:04"), n.Message)
	}
	fmt.Println()
	return nil
}

func runRemindDelete(cmd *cobra.Command, args []string) error {
	dbConn, err := db.OpenDefault()
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer dbConn.Close()

	if err := dbConn.DeleteNotification(context.Background(), args[0]); err != nil {
		return fmt.Errorf("failed to delete reminder: %w", err)
	}

	fmt.Printf("🗑️  Deleted reminder %s\n", args[0])
	return nil
}
