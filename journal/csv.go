package journal

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

var sessionHeader = []string{
	"id", "start_time", "end_time", "initial_balance", "final_balance",
	"total_trades", "wins", "losses", "pushes", "win_rate",
	"total_pl", "roi_percent", "expectancy", "max_drawdown_percent", "stop_reason",
}

var tradeHeader = []string{
	"id", "session_id", "time", "type", "outcome",
	"risk", "payout", "profit_loss", "balance_after",
}

// CSVJournal appends records to sessions.csv and trades.csv in a directory.
// Files grow across runs; headers are written only when a file is new.
type CSVJournal struct {
	sessionsFile *os.File
	tradesFile   *os.File
	sessions     *csv.Writer
	trades       *csv.Writer
}

// NewCSV opens (creating if needed) the journal directory and its two files.
func NewCSV(dir string) (*CSVJournal, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create journal dir: %w", err)
	}
	sf, sw, err := openAppend(filepath.Join(dir, "sessions.csv"), sessionHeader)
	if err != nil {
		return nil, err
	}
	tf, tw, err := openAppend(filepath.Join(dir, "trades.csv"), tradeHeader)
	if err != nil {
		sf.Close()
		return nil, err
	}
	return &CSVJournal{sessionsFile: sf, tradesFile: tf, sessions: sw, trades: tw}, nil
}

func openAppend(path string, header []string) (*os.File, *csv.Writer, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s: %w", path, err)
	}
	w := csv.NewWriter(f)
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.Size() == 0 {
		if err := w.Write(header); err != nil {
			f.Close()
			return nil, nil, fmt.Errorf("write header to %s: %w", path, err)
		}
		w.Flush()
		if err := w.Error(); err != nil {
			f.Close()
			return nil, nil, fmt.Errorf("write header to %s: %w", path, err)
		}
	}
	return f, w, nil
}

func (j *CSVJournal) RecordSession(rec SessionRecord) error {
	row := []string{
		rec.ID,
		rec.StartTime.Format(time.RFC3339),
		rec.EndTime.Format(time.RFC3339),
		f(rec.InitialBalance),
		f(rec.FinalBalance),
		strconv.Itoa(rec.TotalTrades),
		strconv.Itoa(rec.Wins),
		strconv.Itoa(rec.Losses),
		strconv.Itoa(rec.Pushes),
		f(rec.WinRate),
		f(rec.TotalPL),
		f(rec.ROIPercent),
		f(rec.Expectancy),
		f(rec.MaxDrawdownPercent),
		rec.StopReason,
	}
	if err := j.sessions.Write(row); err != nil {
		return fmt.Errorf("write session row: %w", err)
	}
	j.sessions.Flush()
	if err := j.sessions.Error(); err != nil {
		return fmt.Errorf("flush session row: %w", err)
	}
	return nil
}

func (j *CSVJournal) RecordTrade(tr TradeRecord) error {
	row := []string{
		tr.ID,
		tr.SessionID,
		tr.Time.Format(time.RFC3339),
		tr.Type,
		tr.Outcome,
		f(tr.Risk),
		f(tr.Payout),
		f(tr.ProfitLoss),
		f(tr.BalanceAfter),
	}
	if err := j.trades.Write(row); err != nil {
		return fmt.Errorf("write trade row: %w", err)
	}
	j.trades.Flush()
	if err := j.trades.Error(); err != nil {
		return fmt.Errorf("flush trade row: %w", err)
	}
	return nil
}

// Close flushes and closes both files.
func (j *CSVJournal) Close() error {
	j.sessions.Flush()
	j.trades.Flush()
	if err := j.sessions.Error(); err != nil {
		j.sessionsFile.Close()
		j.tradesFile.Close()
		return err
	}
	if err := j.trades.Error(); err != nil {
		j.sessionsFile.Close()
		j.tradesFile.Close()
		return err
	}
	if err := j.sessionsFile.Close(); err != nil {
		j.tradesFile.Close()
		return err
	}
	return j.tradesFile.Close()
}

// f formats money and percentages with two decimals, matching how the
// dashboard displays them.
func f(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
