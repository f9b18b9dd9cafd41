package cli

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubeascii/internal/recorder"
	"github.com/SeamusWaldron/cubeascii/internal/storage"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent sessions",
	Long: `List recent sessions from the journal, newest first.

The journal is an audit trail only; sessions are never resumed.`,
	RunE: runHistory,
}

var historyShowCmd = &cobra.Command{
	Use:   "show <session-id|last>",
	Short: "Print the events of one session",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

var historyLimit int

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Number of sessions to list")
	historyCmd.AddCommand(historyShowCmd)
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	db, err := openDB(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	sessions, err := storage.NewSessionRepository(db).List(historyLimit)
	if err != nil {
		return err
	}
	printSessions(cmd.OutOrStdout(), sessions)
	return nil
}

func printSessions(out io.Writer, sessions []storage.Session) {
	if len(sessions) == 0 {
		fmt.Fprintln(out, "No sessions recorded")
		return
	}

	fmt.Fprintln(out, titleStyle.Render(fmt.Sprintf("%-36s  %-19s  %8s  %5s  %9s  %6s  %s",
		"SESSION", "STARTED", "DURATION", "MOVES", "SCRAMBLES", "RESETS", "SOLVED")))
	for _, s := range sessions {
		fmt.Fprintf(out, "%-36s  %-19s  %8s  %5d  %9d  %6d  %s\n",
			s.SessionID,
			s.StartedAt.Local().Format("2006-01-02 15:04:05"),
			formatDuration(s),
			s.MovesApplied, s.Scrambles, s.Resets,
			formatSolved(s.SolvedAtEnd),
		)
	}
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	db, err := openDB(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	sessions := storage.NewSessionRepository(db)
	session, err := resolveSession(sessions, args[0])
	if err != nil {
		return err
	}
	events, err := storage.NewEventRepository(db).GetBySession(session.SessionID)
	if err != nil {
		return err
	}
	printSession(cmd.OutOrStdout(), session, events)
	return nil
}

// resolveSession accepts an ID or "last". "last" prefers the state file and
// falls back to the newest session in the database.
func resolveSession(repo *storage.SessionRepository, arg string) (*storage.Session, error) {
	if arg != "last" {
		return repo.Get(arg)
	}

	if sf, err := recorder.NewDefaultStateFile(); err == nil && sf.LastSessionID() != "" {
		s, err := repo.Get(sf.LastSessionID())
		if err == nil {
			return s, nil
		}
		if !errors.Is(err, storage.ErrSessionNotFound) {
			return nil, err
		}
	}
	return repo.GetLast()
}

func printSession(out io.Writer, s *storage.Session, events []storage.Event) {
	fmt.Fprintln(out, titleStyle.Render("Session "+s.SessionID))
	fmt.Fprintf(out, "Started:  %s\n", s.StartedAt.Local().Format(time.RFC3339))
	fmt.Fprintf(out, "Duration: %s\n", formatDuration(*s))
	fmt.Fprintf(out, "Seed:     %d\n", s.Seed)
	fmt.Fprintf(out, "Solved:   %s\n\n", formatSolved(s.SolvedAtEnd))

	if len(events) == 0 {
		fmt.Fprintln(out, statusStyle.Render("No events"))
		return
	}
	for _, e := range events {
		ts := time.Duration(e.TsMs) * time.Millisecond
		fmt.Fprintf(out, "%4d  %9s  %-8s  %s\n", e.Seq, ts.Round(time.Millisecond), e.Kind, moveStyle.Render(e.Notation))
	}
}

func formatDuration(s storage.Session) string {
	if s.EndedAt == nil {
		return "-"
	}
	return s.EndedAt.Sub(s.StartedAt).Round(time.Second).String()
}

func formatSolved(solved *bool) string {
	switch {
	case solved == nil:
		return "-"
	case *solved:
		return solvedStyle.Render("yes")
	default:
		return "no"
	}
}
