// Package journal persists finished sessions for later review. Records are
// append-only audit output: the tracker writes them once when a session
// ends and never reads them back. The read side serves the `binopt journal`
// subcommand.
package journal

import (
	"fmt"
	"time"

	"github.com/rustyeddy/binopt/internal/id"
	"github.com/rustyeddy/binopt/session"
)

// SessionRecord summarizes one finished session.
type SessionRecord struct {
	ID                 string
	StartTime          time.Time
	EndTime            time.Time
	InitialBalance     float64
	FinalBalance       float64
	TotalTrades        int
	Wins               int
	Losses             int
	Pushes             int
	WinRate            float64
	TotalPL            float64
	ROIPercent         float64
	Expectancy         float64
	MaxDrawdownPercent float64
	StopReason         string // empty when the user quit on their own
}

// TradeRecord is one surviving history row of a finished session.
type TradeRecord struct {
	ID           string
	SessionID    string
	Time         time.Time
	Type         string
	Outcome      string
	Risk         float64
	Payout       float64
	ProfitLoss   float64
	BalanceAfter float64
}

// Journal is an append-only sink for finished sessions.
type Journal interface {
	RecordSession(SessionRecord) error
	RecordTrade(TradeRecord) error
	Close() error
}

// New returns the backend named by kind: "sqlite" (path is the database
// file) or "csv" (path is a directory).
func New(kind, path string) (Journal, error) {
	switch kind {
	case "sqlite":
		return NewSQLite(path)
	case "csv":
		return NewCSV(path)
	}
	return nil, fmt.Errorf("unknown journal type %q", kind)
}

// Export writes the finished session and its surviving trades through j.
// Undone trades never reach the journal; only the history as it stood at
// exit is recorded. The generated session ID ties the trade rows to the
// session row and is returned for display.
func Export(j Journal, s *session.Session, end time.Time, stopReason string) (string, error) {
	st := s.Stats()
	rec := SessionRecord{
		ID:                 id.New(),
		StartTime:          s.StartTime(),
		EndTime:            end,
		InitialBalance:     s.InitialBalance(),
		FinalBalance:       s.CurrentBalance(),
		TotalTrades:        st.TotalTrades,
		Wins:               st.Wins,
		Losses:             st.Losses,
		Pushes:             st.Pushes,
		WinRate:            st.WinRate,
		TotalPL:            st.TotalPL,
		ROIPercent:         st.ROIPercent,
		Expectancy:         st.Expectancy,
		MaxDrawdownPercent: st.MaxDrawdownPercent,
		StopReason:         stopReason,
	}
	if err := j.RecordSession(rec); err != nil {
		return "", fmt.Errorf("record session: %w", err)
	}

	for _, t := range s.Trades() {
		tr := TradeRecord{
			ID:           t.ID,
			SessionID:    rec.ID,
			Time:         t.Time,
			Type:         t.Type,
			Outcome:      t.Outcome.String(),
			Risk:         t.Risk,
			Payout:       t.Payout,
			ProfitLoss:   t.ProfitLoss(),
			BalanceAfter: t.BalanceAfter,
		}
		if err := j.RecordTrade(tr); err != nil {
			return "", fmt.Errorf("record trade %s: %w", t.ID, err)
		}
	}
	return rec.ID, nil
}
