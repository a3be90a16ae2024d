package cmd

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rustyeddy/binopt/config"
	"github.com/rustyeddy/binopt/internal/report"
	"github.com/rustyeddy/binopt/journal"
	"github.com/rustyeddy/binopt/session"
	"github.com/rustyeddy/binopt/tui"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start an interactive trading session",
	Long: `Start a live session dashboard in the terminal.

The config file sets the bankroll, per-trade risk, payout, and stop limits.
When the file is missing the built-in defaults apply, so binopt run works
without any setup.

Dashboard keys:
  w/l/p  log a win, loss, or push
  u      undo the last trade
  j/k    scroll the trade history
  :      enter command mode (:help lists commands)
  q      quit

Example:
  binopt run --config examples/configs/conservative.yml`,
	RunE: runRun,
}

var runConfigPath string

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&runConfigPath, "config", "c", "config.yml", "path to config file (YAML or JSON)")
}

func runRun(cmd *cobra.Command, args []string) error {
	if !cmd.Flags().Changed("config") {
		// An optional .env can supply BINOPT_CONFIG; an explicit flag wins.
		_ = godotenv.Load()
		if env := os.Getenv("BINOPT_CONFIG"); env != "" {
			runConfigPath = env
		}
	}

	cfg, err := config.LoadFromFile(runConfigPath)
	if errors.Is(err, os.ErrNotExist) {
		fmt.Printf("No config at %s, using defaults\n", runConfigPath)
		cfg = config.Default()
	} else if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	final, stopReason, err := tui.Run(session.New(cfg.SessionConfig()))
	if err != nil {
		return fmt.Errorf("run dashboard: %w", err)
	}
	end := time.Now()

	report.PrintSummary(os.Stdout, final, end, stopReason)

	if cfg.Journal != nil {
		// The session already happened; losing the journal write should not
		// turn the run into a failure.
		if err := exportSession(cfg.Journal, final, end, stopReason); err != nil {
			log.Printf("journal export failed: %v", err)
		}
	}
	return nil
}

func exportSession(jc *config.JournalConfig, s *session.Session, end time.Time, stopReason string) error {
	dest := jc.Path
	if jc.Type == config.JournalCSV {
		dest = jc.Dir
	}

	j, err := journal.New(jc.Type, dest)
	if err != nil {
		return fmt.Errorf("create journal: %w", err)
	}
	defer j.Close()

	id, err := journal.Export(j, s, end, stopReason)
	if err != nil {
		return err
	}

	fmt.Printf("\nSession %s saved to: %s\n", id, dest)
	return nil
}
