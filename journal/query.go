package journal

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

const sessionColumns = `id, start_time, end_time, initial_balance, final_balance,
	total_trades, wins, losses, pushes, win_rate,
	total_pl, roi_percent, expectancy, max_drawdown_percent, stop_reason`

func scanSession(row interface{ Scan(...any) error }) (SessionRecord, error) {
	var rec SessionRecord
	err := row.Scan(&rec.ID, &rec.StartTime, &rec.EndTime, &rec.InitialBalance, &rec.FinalBalance,
		&rec.TotalTrades, &rec.Wins, &rec.Losses, &rec.Pushes, &rec.WinRate,
		&rec.TotalPL, &rec.ROIPercent, &rec.Expectancy, &rec.MaxDrawdownPercent, &rec.StopReason)
	return rec, err
}

// GetSession returns the session with the given ID.
func (j *SQLiteJournal) GetSession(id string) (SessionRecord, error) {
	row := j.db.QueryRow(`SELECT `+sessionColumns+` FROM sessions WHERE id = ?`, id)
	rec, err := scanSession(row)
	if errors.Is(err, sql.ErrNoRows) {
		return SessionRecord{}, fmt.Errorf("session %q not found", id)
	}
	if err != nil {
		return SessionRecord{}, fmt.Errorf("query session %q: %w", id, err)
	}
	return rec, nil
}

// LatestSession returns the most recently started session.
func (j *SQLiteJournal) LatestSession() (SessionRecord, error) {
	row := j.db.QueryRow(`SELECT ` + sessionColumns + ` FROM sessions ORDER BY start_time DESC LIMIT 1`)
	rec, err := scanSession(row)
	if errors.Is(err, sql.ErrNoRows) {
		return SessionRecord{}, errors.New("journal is empty")
	}
	if err != nil {
		return SessionRecord{}, fmt.Errorf("query latest session: %w", err)
	}
	return rec, nil
}

// ListSessionsBetween returns sessions whose start time falls in [start, end),
// oldest first.
func (j *SQLiteJournal) ListSessionsBetween(start, end time.Time) ([]SessionRecord, error) {
	rows, err := j.db.Query(`SELECT `+sessionColumns+` FROM sessions
		WHERE start_time >= ? AND start_time < ? ORDER BY start_time ASC`, start, end)
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}
	defer rows.Close()

	var recs []SessionRecord
	for rows.Next() {
		rec, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		recs = append(recs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}
	return recs, nil
}

// ListTradesBySession returns the trades of one session in the order they
// were placed.
func (j *SQLiteJournal) ListTradesBySession(sessionID string) ([]TradeRecord, error) {
	rows, err := j.db.Query(`SELECT id, session_id, time, type, outcome, risk, payout, profit_loss, balance_after
		FROM trades WHERE session_id = ? ORDER BY time ASC`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("query trades for %q: %w", sessionID, err)
	}
	defer rows.Close()

	var trs []TradeRecord
	for rows.Next() {
		var tr TradeRecord
		if err := rows.Scan(&tr.ID, &tr.SessionID, &tr.Time, &tr.Type, &tr.Outcome,
			&tr.Risk, &tr.Payout, &tr.ProfitLoss, &tr.BalanceAfter); err != nil {
			return nil, fmt.Errorf("scan trade: %w", err)
		}
		trs = append(trs, tr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query trades for %q: %w", sessionID, err)
	}
	return trs, nil
}
