package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"rubik3d/internal/history"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Manage recorded sessions",
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent sessions",
	RunE:  runHistoryList,
}

var historyShowCmd = &cobra.Command{
	Use:   "show <session-id>",
	Short: "Show the moves of one session",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

var historyDeleteCmd = &cobra.Command{
	Use:   "delete <session-id>",
	Short: "Delete a session and its moves",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryDelete,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.AddCommand(historyListCmd, historyShowCmd, historyDeleteCmd)
	historyListCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Maximum sessions to list")
}

func runHistoryList(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	sessions, err := history.NewSessionRepository(db).List(historyLimit)
	if err != nil {
		return err
	}
	if len(sessions) == 0 {
		fmt.Println("No sessions recorded. Start one with: rubik3d play")
		return nil
	}

	moves := history.NewMoveRepository(db)
	for _, s := range sessions {
		count, err := moves.Count(s.SessionID)
		if err != nil {
			return err
		}
		duration := "open"
		if s.DurationMs != nil {
			duration = (time.Duration(*s.DurationMs) * time.Millisecond).Round(time.Second).String()
		}
		fmt.Printf("%s  %s  %4d moves  %s\n",
			s.SessionID, s.StartedAt.Local().Format("2006-01-02 15:04"), count, duration)
	}
	return nil
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	s, err := history.NewSessionRepository(db).Get(args[0])
	if err != nil {
		return err
	}
	if s == nil {
		return fmt.Errorf("session %s not found", args[0])
	}

	records, err := history.NewMoveRepository(db).GetBySession(s.SessionID)
	if err != nil {
		return err
	}

	fmt.Printf("Session: %s\n", s.SessionID)
	fmt.Printf("Started: %s\n", s.StartedAt.Local().Format(time.RFC1123))
	if s.ScrambleText != nil {
		fmt.Printf("Scramble: %s\n", *s.ScrambleText)
	}
	if s.Notes != nil {
		fmt.Printf("Notes: %s\n", *s.Notes)
	}
	fmt.Printf("Moves (%d):\n", len(records))
	for _, r := range records {
		ts := time.UnixMilli(r.TsMs).Local().Format("15:04:05.000")
		fmt.Printf("  %4d  %s  %s\n", r.MoveIndex, ts, r.Notation)
	}
	return nil
}

func runHistoryDelete(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	if err := history.NewSessionRepository(db).Delete(args[0]); err != nil {
		return err
	}
	fmt.Printf("Deleted session %s\n", args[0])
	return nil
}
