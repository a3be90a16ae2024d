package journal

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/binopt/session"
)

type captureJournal struct {
	sessions   []SessionRecord
	trades     []TradeRecord
	sessionErr error
	tradeErr   error
}

func (c *captureJournal) RecordSession(rec SessionRecord) error {
	if c.sessionErr != nil {
		return c.sessionErr
	}
	c.sessions = append(c.sessions, rec)
	return nil
}

func (c *captureJournal) RecordTrade(tr TradeRecord) error {
	if c.tradeErr != nil {
		return c.tradeErr
	}
	c.trades = append(c.trades, tr)
	return nil
}

func (c *captureJournal) Close() error { return nil }

func TestNew(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	j, err := New("sqlite", filepath.Join(dir, "j.db"))
	require.NoError(t, err)
	assert.IsType(t, &SQLiteJournal{}, j)
	assert.NoError(t, j.Close())

	j, err = New("csv", filepath.Join(dir, "csvdir"))
	require.NoError(t, err)
	assert.IsType(t, &CSVJournal{}, j)
	assert.NoError(t, j.Close())

	_, err = New("bogus", "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown journal type "bogus"`)
}

func TestExport(t *testing.T) {
	t.Parallel()

	s := session.New(session.Config{
		InitialBalance:       2000,
		RiskPercent:          5,
		PayoutPercent:        80,
		StopLossPercent:      20,
		MaxConsecutiveLosses: 5,
	})
	s.Record(session.Win, "CALL")
	s.Record(session.Loss, "CALL")
	s.Record(session.Push, "CALL")

	c := &captureJournal{}
	end := time.Now()
	id, err := Export(c, s, end, "Max consecutive losses: 5")
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	require.Len(t, c.sessions, 1)
	rec := c.sessions[0]
	assert.Equal(t, id, rec.ID)
	assert.True(t, rec.StartTime.Equal(s.StartTime()))
	assert.True(t, rec.EndTime.Equal(end))
	assert.InDelta(t, 2000, rec.InitialBalance, 1e-9)
	assert.InDelta(t, s.CurrentBalance(), rec.FinalBalance, 1e-9)
	assert.Equal(t, 3, rec.TotalTrades)
	assert.Equal(t, 1, rec.Wins)
	assert.Equal(t, 1, rec.Losses)
	assert.Equal(t, 1, rec.Pushes)
	assert.Equal(t, "Max consecutive losses: 5", rec.StopReason)

	require.Len(t, c.trades, 3)
	assert.Equal(t, "WIN", c.trades[0].Outcome)
	assert.Equal(t, "LOSS", c.trades[1].Outcome)
	assert.Equal(t, "PUSH", c.trades[2].Outcome)
	for _, tr := range c.trades {
		assert.Equal(t, id, tr.SessionID)
		assert.Equal(t, "CALL", tr.Type)
		assert.NotEmpty(t, tr.ID)
	}
	assert.InDelta(t, 80, c.trades[0].ProfitLoss, 1e-9)
	assert.InDelta(t, -104, c.trades[1].ProfitLoss, 1e-9)
	assert.InDelta(t, 0, c.trades[2].ProfitLoss, 1e-9)
	assert.InDelta(t, 2080, c.trades[0].BalanceAfter, 1e-9)
	assert.InDelta(t, 1976, c.trades[1].BalanceAfter, 1e-9)
}

func TestExportEmptySession(t *testing.T) {
	t.Parallel()

	s := session.New(session.Config{
		InitialBalance:       2000,
		RiskPercent:          5,
		PayoutPercent:        80,
		StopLossPercent:      20,
		MaxConsecutiveLosses: 5,
	})

	c := &captureJournal{}
	id, err := Export(c, s, time.Now(), "")
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	require.Len(t, c.sessions, 1)
	assert.Equal(t, 0, c.sessions[0].TotalTrades)
	assert.Empty(t, c.sessions[0].StopReason)
	assert.Empty(t, c.trades)
}

func TestExportPropagatesErrors(t *testing.T) {
	t.Parallel()

	s := session.New(session.Config{
		InitialBalance:       2000,
		RiskPercent:          5,
		PayoutPercent:        80,
		StopLossPercent:      20,
		MaxConsecutiveLosses: 5,
	})
	s.Record(session.Win, "CALL")

	_, err := Export(&captureJournal{sessionErr: errors.New("disk full")}, s, time.Now(), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "record session")

	_, err = Export(&captureJournal{tradeErr: errors.New("disk full")}, s, time.Now(), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "record trade")
}
