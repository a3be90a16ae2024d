package journal

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteJournal stores session and trade records in a single SQLite file.
type SQLiteJournal struct {
	db *sql.DB
}

// NewSQLite opens (creating if needed) the database at path and ensures the
// schema exists.
func NewSQLite(path string) (*SQLiteJournal, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite journal: %w", err)
	}
	if _, err := db.Exec(Schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init journal schema: %w", err)
	}
	return &SQLiteJournal{db: db}, nil
}

func (j *SQLiteJournal) RecordSession(rec SessionRecord) error {
	_, err := j.db.Exec(`INSERT INTO sessions
		(id, start_time, end_time, initial_balance, final_balance,
		 total_trades, wins, losses, pushes, win_rate,
		 total_pl, roi_percent, expectancy, max_drawdown_percent, stop_reason)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.StartTime, rec.EndTime, rec.InitialBalance, rec.FinalBalance,
		rec.TotalTrades, rec.Wins, rec.Losses, rec.Pushes, rec.WinRate,
		rec.TotalPL, rec.ROIPercent, rec.Expectancy, rec.MaxDrawdownPercent, rec.StopReason)
	if err != nil {
		return fmt.Errorf("insert session %s: %w", rec.ID, err)
	}
	return nil
}

func (j *SQLiteJournal) RecordTrade(tr TradeRecord) error {
	_, err := j.db.Exec(`INSERT INTO trades
		(id, session_id, time, type, outcome, risk, payout, profit_loss, balance_after)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		tr.ID, tr.SessionID, tr.Time, tr.Type, tr.Outcome,
		tr.Risk, tr.Payout, tr.ProfitLoss, tr.BalanceAfter)
	if err != nil {
		return fmt.Errorf("insert trade %s: %w", tr.ID, err)
	}
	return nil
}

// Close releases the underlying database handle.
func (j *SQLiteJournal) Close() error {
	return j.db.Close()
}
