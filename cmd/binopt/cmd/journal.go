package cmd

import (
	"fmt"
	"time"

	"github.com/rustyeddy/binopt/journal"
	"github.com/spf13/cobra"
)

var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "Query journaled sessions",
	Long: `Query and display past sessions from a SQLite journal.

Subcommands:
  latest  - Show the most recent session and its trades
  session - Show a specific session by ID
  day     - List sessions started on a specific day

Examples:
  binopt journal latest
  binopt journal session <session-id>
  binopt journal day 2024-01-15`,
}

var journalLatestCmd = &cobra.Command{
	Use:   "latest",
	Short: "Show the most recent session and its trades",
	Args:  cobra.NoArgs,
	RunE:  runJournalLatest,
}

var journalSessionCmd = &cobra.Command{
	Use:   "session <session-id>",
	Short: "Show a specific session and its trades",
	Args:  cobra.ExactArgs(1),
	RunE:  runJournalSession,
}

var journalDayCmd = &cobra.Command{
	Use:   "day <YYYY-MM-DD>",
	Short: "List sessions started on a specific day",
	Args:  cobra.ExactArgs(1),
	RunE:  runJournalDay,
}

var journalDBPath string

func init() {
	rootCmd.AddCommand(journalCmd)
	journalCmd.AddCommand(journalLatestCmd)
	journalCmd.AddCommand(journalSessionCmd)
	journalCmd.AddCommand(journalDayCmd)

	journalCmd.PersistentFlags().StringVarP(&journalDBPath, "db", "d", "./binopt.sqlite", "path to SQLite journal DB")
}

func runJournalLatest(cmd *cobra.Command, args []string) error {
	j, err := journal.NewSQLite(journalDBPath)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer j.Close()

	rec, err := j.LatestSession()
	if err != nil {
		return fmt.Errorf("latest session: %w", err)
	}

	return printSessionWithTrades(j, rec)
}

func runJournalSession(cmd *cobra.Command, args []string) error {
	j, err := journal.NewSQLite(journalDBPath)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer j.Close()

	rec, err := j.GetSession(args[0])
	if err != nil {
		return fmt.Errorf("get session: %w", err)
	}

	return printSessionWithTrades(j, rec)
}

func runJournalDay(cmd *cobra.Command, args []string) error {
	j, err := journal.NewSQLite(journalDBPath)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer j.Close()

	loc := time.Local
	start, end, err := dayBounds(loc, args[0])
	if err != nil {
		return fmt.Errorf("date: %w", err)
	}

	recs, err := j.ListSessionsBetween(start, end)
	if err != nil {
		return fmt.Errorf("query sessions: %w", err)
	}

	fmt.Println(journal.FormatSessionsOrg(recs))
	return nil
}

func printSessionWithTrades(j *journal.SQLiteJournal, rec journal.SessionRecord) error {
	fmt.Println(journal.FormatSessionOrg(rec))

	trades, err := j.ListTradesBySession(rec.ID)
	if err != nil {
		return fmt.Errorf("query trades: %w", err)
	}
	if len(trades) > 0 {
		fmt.Println()
		fmt.Println(journal.FormatTradesOrg(trades))
	}
	return nil
}

func dayBounds(loc *time.Location, day string) (time.Time, time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", day, loc)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
	end := start.Add(24 * time.Hour)
	return start, end, nil
}
